package valueobject

import "fmt"

// ---------------------------------------------------------------------------
// PolicyStatus – immutable value object
// ---------------------------------------------------------------------------

// PolicyStatus represents the lifecycle stage of a policy.
type PolicyStatus struct {
	value string
}

const (
	policyStatusDraft     = "DRAFT"
	policyStatusActive    = "ACTIVE"
	policyStatusExpired   = "EXPIRED"
	policyStatusCancelled = "CANCELLED"
	policyStatusLapsed    = "LAPSED"
)

var (
	PolicyStatusDraft     = PolicyStatus{value: policyStatusDraft}
	PolicyStatusActive    = PolicyStatus{value: policyStatusActive}
	PolicyStatusExpired   = PolicyStatus{value: policyStatusExpired}
	PolicyStatusCancelled = PolicyStatus{value: policyStatusCancelled}
	PolicyStatusLapsed    = PolicyStatus{value: policyStatusLapsed}
)

var validPolicyStatuses = map[string]PolicyStatus{
	policyStatusDraft:     PolicyStatusDraft,
	policyStatusActive:    PolicyStatusActive,
	policyStatusExpired:   PolicyStatusExpired,
	policyStatusCancelled: PolicyStatusCancelled,
	policyStatusLapsed:    PolicyStatusLapsed,
}

// NewPolicyStatus creates a PolicyStatus from a raw string.
func NewPolicyStatus(s string) (PolicyStatus, error) {
	v, ok := validPolicyStatuses[s]
	if !ok {
		return PolicyStatus{}, fmt.Errorf("invalid policy status: %q", s)
	}
	return v, nil
}

// String returns the string representation of the status.
func (s PolicyStatus) String() string { return s.value }

// IsZero returns true if the status has not been initialised.
func (s PolicyStatus) IsZero() bool { return s.value == "" }

// Equal returns true when both statuses carry the same value.
func (s PolicyStatus) Equal(other PolicyStatus) bool { return s.value == other.value }
