package cot

import (
	"regexp"
	"strings"
)

// stepPatterns match the markers that start a new reasoning step. A marker
// anywhere in a line counts, not just at the start, so a line like
// "... and therefore, X" opens a new step.
var stepPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)Step \d+:`),
	regexp.MustCompile(`\d+\.`),
	regexp.MustCompile(`(?i)First,`),
	regexp.MustCompile(`(?i)Second,`),
	regexp.MustCompile(`(?i)Third,`),
	regexp.MustCompile(`(?i)Next,`),
	regexp.MustCompile(`(?i)Then,`),
	regexp.MustCompile(`(?i)Finally,`),
	regexp.MustCompile(`(?i)Therefore,`),
	regexp.MustCompile(`(?i)So,`),
}

// Step type keyword rules, checked in order.
var (
	calculationWords = []string{"calculate", "multiply", "divide", "add", "subtract"}
	conclusionWords  = []string{"therefore", "so", "conclude", "answer"}
	assumptionWords  = []string{"assume", "given", "known", "fact"}
)

// ParseSteps splits raw model output into an ordered list of typed steps.
// Lines that contain a step marker start a new step; other lines continue
// the current one. If no markers match, the entire response becomes a single
// step. Parsing never fails: the worst case is one reasoning step holding
// the whole text. Step indices are contiguous starting at 0.
func ParseSteps(raw string) []Step {
	var steps []Step
	var current string

	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if startsNewStep(line) && current != "" {
			steps = append(steps, newStep(len(steps), current))
			current = line
			continue
		}

		if current != "" {
			current += " " + line
		} else {
			current = line
		}
	}

	if current != "" {
		steps = append(steps, newStep(len(steps), current))
	}

	if len(steps) == 0 {
		steps = append(steps, Step{
			Index: 0,
			Text:  strings.TrimSpace(raw),
			Type:  StepReasoning,
		})
	}

	return steps
}

func startsNewStep(line string) bool {
	for _, p := range stepPatterns {
		if p.MatchString(line) {
			return true
		}
	}
	return false
}

func newStep(index int, text string) Step {
	return Step{
		Index: index,
		Text:  strings.TrimSpace(text),
		Type:  ClassifyStep(text),
	}
}

// ClassifyStep tags a step's content with a StepType using keyword rules.
func ClassifyStep(text string) StepType {
	lower := strings.ToLower(text)

	if matchesAny(lower, calculationWords) {
		return StepCalculation
	}
	if matchesAny(lower, conclusionWords) {
		return StepConclusion
	}
	if matchesAny(lower, assumptionWords) {
		return StepAssumption
	}
	return StepReasoning
}
