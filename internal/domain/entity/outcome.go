package entity

import "errors"

// Outcome classifies how an operation ended. Probe and best-effort operations
// convert everything but OutcomeOK to their swallowed form; blocking waits
// propagate the underlying sentinel instead.
type Outcome string

const (
	OutcomeOK       Outcome = "ok"
	OutcomeTimeout  Outcome = "timeout"
	OutcomeNotFound Outcome = "not_found"
	OutcomeFailed   Outcome = "failed"
)

func OutcomeOf(err error) Outcome {
	switch {
	case err == nil:
		return OutcomeOK
	case errors.Is(err, ErrNotFound):
		return OutcomeNotFound
	case errors.Is(err, ErrTimeout):
		return OutcomeTimeout
	default:
		return OutcomeFailed
	}
}
