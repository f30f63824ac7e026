package valueobject

import "fmt"

// ---------------------------------------------------------------------------
// ClaimStatus – immutable value object
// ---------------------------------------------------------------------------

// ClaimStatus represents the lifecycle stage of a filed claim.
type ClaimStatus struct {
	value string
}

const (
	claimStatusSubmitted    = "SUBMITTED"
	claimStatusUnderReview  = "UNDER_REVIEW"
	claimStatusDocsRequired = "DOCUMENTATION_REQUIRED"
	claimStatusApproved     = "APPROVED"
	claimStatusRejected     = "REJECTED"
	claimStatusPaid         = "PAID"
	claimStatusClosed       = "CLOSED"
)

var (
	ClaimStatusSubmitted             = ClaimStatus{value: claimStatusSubmitted}
	ClaimStatusUnderReview           = ClaimStatus{value: claimStatusUnderReview}
	ClaimStatusDocumentationRequired = ClaimStatus{value: claimStatusDocsRequired}
	ClaimStatusApproved              = ClaimStatus{value: claimStatusApproved}
	ClaimStatusRejected              = ClaimStatus{value: claimStatusRejected}
	ClaimStatusPaid                  = ClaimStatus{value: claimStatusPaid}
	ClaimStatusClosed                = ClaimStatus{value: claimStatusClosed}
)

var validClaimStatuses = map[string]ClaimStatus{
	claimStatusSubmitted:    ClaimStatusSubmitted,
	claimStatusUnderReview:  ClaimStatusUnderReview,
	claimStatusDocsRequired: ClaimStatusDocumentationRequired,
	claimStatusApproved:     ClaimStatusApproved,
	claimStatusRejected:     ClaimStatusRejected,
	claimStatusPaid:         ClaimStatusPaid,
	claimStatusClosed:       ClaimStatusClosed,
}

// claimTransitions is the complete transition table. Statuses absent from the
// map (CLOSED) are terminal.
var claimTransitions = map[string][]ClaimStatus{
	claimStatusSubmitted:    {ClaimStatusUnderReview, ClaimStatusDocumentationRequired, ClaimStatusRejected},
	claimStatusUnderReview:  {ClaimStatusApproved, ClaimStatusRejected, ClaimStatusDocumentationRequired},
	claimStatusDocsRequired: {ClaimStatusUnderReview, ClaimStatusRejected},
	claimStatusApproved:     {ClaimStatusPaid, ClaimStatusRejected},
	claimStatusRejected:     {ClaimStatusClosed},
	claimStatusPaid:         {ClaimStatusClosed},
}

// NewClaimStatus creates a ClaimStatus from a raw string.
func NewClaimStatus(s string) (ClaimStatus, error) {
	v, ok := validClaimStatuses[s]
	if !ok {
		return ClaimStatus{}, fmt.Errorf("invalid claim status: %q", s)
	}
	return v, nil
}

// String returns the string representation of the status.
func (s ClaimStatus) String() string { return s.value }

// IsZero returns true if the status has not been initialised.
func (s ClaimStatus) IsZero() bool { return s.value == "" }

// Equal returns true when both statuses carry the same value.
func (s ClaimStatus) Equal(other ClaimStatus) bool { return s.value == other.value }

// CanTransitionTo reports whether the transition table permits moving from
// this status to next.
func (s ClaimStatus) CanTransitionTo(next ClaimStatus) bool {
	for _, allowed := range claimTransitions[s.value] {
		if allowed.Equal(next) {
			return true
		}
	}
	return false
}

// IsTerminal reports whether the status has no outgoing transitions.
func (s ClaimStatus) IsTerminal() bool {
	return len(claimTransitions[s.value]) == 0 && !s.IsZero()
}
