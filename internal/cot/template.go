package cot

import "fmt"

const systemPrompt = `You are a careful reasoner. Work through the problem step by step.

Rules:
- Number each step on its own line as "Step 1:", "Step 2:", and so on.
- Keep each step short and self-contained.
- State any given facts or assumptions explicitly.
- Show every calculation.
- End with a clear conclusion starting with "Therefore,".`

// templates maps each problem type to its prompt template.
// Each template has exactly one %s slot for the problem text.
var templates = map[ProblemType]string{
	TypeGeneral: "Let's think step by step.\n\nProblem: %s\n\nSolution:",
	TypeMath:    "Let's solve this math problem step by step.\n\nProblem: %s\n\nStep-by-step solution:",
	TypeLogic:   "Let's analyze this logic problem step by step.\n\nProblem: %s\n\nReasoning:",
	TypeRiddle:  "Let's think through this riddle step by step.\n\nRiddle: %s\n\nStep-by-step thinking:",
}

// PromptFor formats the prompt for the given problem type and text.
// Unknown types use the general template.
func PromptFor(t ProblemType, problem string) string {
	tmpl, ok := templates[t]
	if !ok {
		tmpl = templates[TypeGeneral]
	}
	return fmt.Sprintf(tmpl, problem)
}
