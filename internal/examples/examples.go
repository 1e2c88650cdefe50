// Package examples ships a small built-in bank of practice problems
// organized by kind, category, and difficulty.
package examples

import (
	"math/rand"

	"github.com/ipveka/ThoughtChain/internal/cot"
)

// Difficulty rates how hard an example is.
type Difficulty string

const (
	Easy   Difficulty = "easy"
	Medium Difficulty = "medium"
	Hard   Difficulty = "hard"
)

// Problem is one entry in the example bank.
type Problem struct {
	Question   string
	Kind       cot.ProblemType
	Category   string
	Difficulty Difficulty
}

var mathProblems = []Problem{
	{
		Question:   "If a train leaves the station at 3 PM traveling at 60 mph and needs to cover 180 miles, what time will it arrive?",
		Kind:       cot.TypeMath,
		Category:   "time_distance",
		Difficulty: Medium,
	},
	{
		Question:   "A store offers a 25% discount on a $80 item. What is the final price after a 8% sales tax is applied?",
		Kind:       cot.TypeMath,
		Category:   "percentage",
		Difficulty: Medium,
	},
	{
		Question:   "If 3 workers can build a wall in 6 days, how many days will it take 9 workers to build the same wall?",
		Kind:       cot.TypeMath,
		Category:   "work_rate",
		Difficulty: Medium,
	},
	{
		Question:   "What is 123 × 45?",
		Kind:       cot.TypeMath,
		Category:   "arithmetic",
		Difficulty: Easy,
	},
	{
		Question:   "A rectangular garden is 15 feet long and 8 feet wide. If you want to put a fence around it, how many feet of fencing do you need?",
		Kind:       cot.TypeMath,
		Category:   "geometry",
		Difficulty: Easy,
	},
}

var logicProblems = []Problem{
	{
		Question:   "Alice is taller than Bob. Bob is taller than Carol. Carol is taller than David. Who is the tallest?",
		Kind:       cot.TypeLogic,
		Category:   "ordering",
		Difficulty: Easy,
	},
	{
		Question:   "If all roses are flowers, and some flowers are red, can we conclude that some roses are red?",
		Kind:       cot.TypeLogic,
		Category:   "logical_reasoning",
		Difficulty: Medium,
	},
	{
		Question:   "In a race, Tom finished before Jerry, Jerry finished before Spike, and Spike finished before Tyke. If there were only these 4 participants, what was Jerry's position?",
		Kind:       cot.TypeLogic,
		Category:   "ordering",
		Difficulty: Easy,
	},
	{
		Question:   "Every student in the class passed the test. Sarah is in the class. Did Sarah pass the test?",
		Kind:       cot.TypeLogic,
		Category:   "deduction",
		Difficulty: Easy,
	},
	{
		Question:   "If it rains, then the ground gets wet. The ground is wet. Did it rain?",
		Kind:       cot.TypeLogic,
		Category:   "logical_fallacy",
		Difficulty: Medium,
	},
}

var riddles = []Problem{
	{
		Question:   "I have keys but no locks. I have space but no room. You can enter but not go outside. What am I?",
		Kind:       cot.TypeRiddle,
		Category:   "wordplay",
		Difficulty: Medium,
	},
	{
		Question:   "What gets wetter as it dries?",
		Kind:       cot.TypeRiddle,
		Category:   "wordplay",
		Difficulty: Easy,
	},
	{
		Question:   "I'm tall when I'm young and short when I'm old. What am I?",
		Kind:       cot.TypeRiddle,
		Category:   "metaphor",
		Difficulty: Easy,
	},
	{
		Question:   "What has an eye but cannot see?",
		Kind:       cot.TypeRiddle,
		Category:   "wordplay",
		Difficulty: Easy,
	},
	{
		Question:   "The more you take, the more you leave behind. What am I?",
		Kind:       cot.TypeRiddle,
		Category:   "wordplay",
		Difficulty: Medium,
	},
}

// All returns every example problem, math first, then logic, then riddles.
func All() []Problem {
	out := make([]Problem, 0, len(mathProblems)+len(logicProblems)+len(riddles))
	out = append(out, mathProblems...)
	out = append(out, logicProblems...)
	out = append(out, riddles...)
	return out
}

// ByKind returns the examples of one problem kind. Kinds without a bank
// return nil.
func ByKind(kind cot.ProblemType) []Problem {
	switch kind {
	case cot.TypeMath:
		return append([]Problem(nil), mathProblems...)
	case cot.TypeLogic:
		return append([]Problem(nil), logicProblems...)
	case cot.TypeRiddle:
		return append([]Problem(nil), riddles...)
	default:
		return nil
	}
}

// ByCategory filters all examples by category name.
func ByCategory(category string) []Problem {
	var out []Problem
	for _, p := range All() {
		if p.Category == category {
			out = append(out, p)
		}
	}
	return out
}

// ByDifficulty filters all examples by difficulty.
func ByDifficulty(d Difficulty) []Problem {
	var out []Problem
	for _, p := range All() {
		if p.Difficulty == d {
			out = append(out, p)
		}
	}
	return out
}

// Categories returns the distinct category names in bank order.
func Categories() []string {
	seen := make(map[string]bool)
	var out []string
	for _, p := range All() {
		if !seen[p.Category] {
			seen[p.Category] = true
			out = append(out, p.Category)
		}
	}
	return out
}

// Random picks a random example, optionally restricted to one kind.
// Passing an unknown kind falls back to the full bank.
func Random(kind cot.ProblemType) Problem {
	pool := ByKind(kind)
	if len(pool) == 0 {
		pool = All()
	}
	return pool[rand.Intn(len(pool))]
}
