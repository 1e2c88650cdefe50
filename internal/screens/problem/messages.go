package problem

import (
	"time"

	"github.com/ipveka/ThoughtChain/internal/cot"
)

// resultReadyMsg is sent when a generation attempt finishes.
type resultReadyMsg struct {
	Result *cot.Result
	Err    error
}

// spinnerTickMsg animates the thinking indicator while generating.
type spinnerTickMsg time.Time
