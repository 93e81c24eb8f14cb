package usecase

import "math/rand/v2"

// Approver decides whether a newly submitted archive is approved on the
// spot. It stands in for a manual review step.
type Approver interface {
	Approve() bool
}

// ApproverFunc adapts a plain function to Approver.
type ApproverFunc func() bool

func (f ApproverFunc) Approve() bool { return f() }

type randomApprover struct {
	rate float64
}

// NewRandomApprover approves with probability rate, clamped to [0, 1].
func NewRandomApprover(rate float64) Approver {
	switch {
	case rate < 0:
		rate = 0
	case rate > 1:
		rate = 1
	}
	return randomApprover{rate: rate}
}

func (a randomApprover) Approve() bool {
	// Float64 is in [0, 1), so rate 0 never approves and rate 1 always does.
	return rand.Float64() < a.rate
}
