package cot

import (
	"strings"
	"testing"
)

func TestPromptForIncludesProblem(t *testing.T) {
	problem := "A train travels 60 mph for 2 hours."

	for _, pt := range ProblemTypes {
		prompt := PromptFor(pt, problem)
		if !strings.Contains(prompt, problem) {
			t.Errorf("prompt for %q missing problem text", pt)
		}
	}
}

func TestPromptForPerType(t *testing.T) {
	cases := []struct {
		ptype ProblemType
		want  string
	}{
		{TypeMath, "math problem"},
		{TypeLogic, "logic problem"},
		{TypeRiddle, "riddle"},
		{TypeGeneral, "step by step"},
	}

	for _, tc := range cases {
		prompt := PromptFor(tc.ptype, "x")
		if !strings.Contains(prompt, tc.want) {
			t.Errorf("prompt for %q missing %q:\n%s", tc.ptype, tc.want, prompt)
		}
	}
}

func TestPromptForUnknownTypeUsesGeneral(t *testing.T) {
	got := PromptFor(ProblemType("nonsense"), "x")
	want := PromptFor(TypeGeneral, "x")
	if got != want {
		t.Errorf("unknown type prompt = %q, want general template", got)
	}
}
