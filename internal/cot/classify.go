package cot

import "strings"

// Keyword sets for problem type detection. Matching is case-insensitive
// substring matching, checked in priority order: math, logic, riddle.
var (
	mathKeywords = []string{
		"calculate", "solve", "equation", "multiply", "divide", "add", "subtract",
		"percent", "%", "fraction", "decimal", "number", "sum", "difference",
	}

	logicKeywords = []string{
		"if", "then", "either", "or", "all", "some", "none", "always", "never",
		"taller", "shorter", "faster", "slower", "before", "after",
	}

	riddleKeywords = []string{
		"riddle", "what am i", "guess", "mystery", "puzzle",
	}
)

// DetectProblemType classifies free text into a ProblemType using keyword
// matching. Unmatched text falls through to TypeGeneral.
func DetectProblemType(problem string) ProblemType {
	lower := strings.ToLower(problem)

	if matchesAny(lower, mathKeywords) {
		return TypeMath
	}
	if matchesAny(lower, logicKeywords) {
		return TypeLogic
	}
	if matchesAny(lower, riddleKeywords) {
		return TypeRiddle
	}
	return TypeGeneral
}

func matchesAny(s string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}
