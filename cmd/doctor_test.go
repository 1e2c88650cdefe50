package cmd

import (
	"strings"
	"testing"
)

func TestCheckTerminal(t *testing.T) {
	cases := []struct {
		term     string
		wantGood bool
		wantIn   string
	}{
		{"xterm-256color", true, "TERM=xterm-256color"},
		{"", false, "not set"},
		{"dumb", false, "thoughtchain solve"},
	}

	for _, tc := range cases {
		msg, good := checkTerminal(tc.term)
		if good != tc.wantGood {
			t.Errorf("checkTerminal(%q) good = %v, want %v", tc.term, good, tc.wantGood)
		}
		if !strings.Contains(msg, tc.wantIn) {
			t.Errorf("checkTerminal(%q) = %q, want substring %q", tc.term, msg, tc.wantIn)
		}
	}
}
