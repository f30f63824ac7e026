package valueobject

import "errors"

// ---------------------------------------------------------------------------
// Sentinel errors
// ---------------------------------------------------------------------------

var (
	// ErrIncompleteProfile is returned when a risk profile is missing one of
	// the required fields (age, occupation, annual income, employment status).
	ErrIncompleteProfile = errors.New("risk profile is incomplete")

	// ErrInvalidPolicyType is returned when a policy type has no rate table entry.
	ErrInvalidPolicyType = errors.New("invalid policy type")

	// ErrInvalidFrequency is returned when a payment frequency is not recognised.
	ErrInvalidFrequency = errors.New("invalid payment frequency")

	// ErrPolicyNotActive is returned when a claim is filed against a policy
	// that is not in ACTIVE status.
	ErrPolicyNotActive = errors.New("policy is not active")

	// ErrCoverageExceeded is returned when a claimed amount exceeds the sum of
	// the policy's coverage amounts.
	ErrCoverageExceeded = errors.New("claimed amount exceeds policy coverage")

	// ErrInvalidTransition is returned when a status change is not permitted
	// by the transition table.
	ErrInvalidTransition = errors.New("invalid status transition")

	// ErrInvalidAmount is returned when an approved amount exceeds the claimed
	// amount, or when a payout is attempted without a prior approved amount.
	ErrInvalidAmount = errors.New("invalid amount")
)
