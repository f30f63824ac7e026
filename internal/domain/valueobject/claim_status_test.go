package valueobject_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/covergrid/insurance-service/internal/domain/valueobject"
)

func TestNewClaimStatus(t *testing.T) {
	for _, raw := range []string{
		"SUBMITTED", "UNDER_REVIEW", "DOCUMENTATION_REQUIRED",
		"APPROVED", "REJECTED", "PAID", "CLOSED",
	} {
		status, err := valueobject.NewClaimStatus(raw)
		require.NoError(t, err)
		assert.Equal(t, raw, status.String())
	}

	_, err := valueobject.NewClaimStatus("PENDING")
	require.Error(t, err)
	_, err = valueobject.NewClaimStatus("")
	require.Error(t, err)
	_, err = valueobject.NewClaimStatus("submitted")
	require.Error(t, err)
}

func TestClaimStatus_CanTransitionTo(t *testing.T) {
	type pair struct {
		from, to valueobject.ClaimStatus
	}
	allowed := []pair{
		{valueobject.ClaimStatusSubmitted, valueobject.ClaimStatusUnderReview},
		{valueobject.ClaimStatusSubmitted, valueobject.ClaimStatusDocumentationRequired},
		{valueobject.ClaimStatusSubmitted, valueobject.ClaimStatusRejected},
		{valueobject.ClaimStatusUnderReview, valueobject.ClaimStatusApproved},
		{valueobject.ClaimStatusUnderReview, valueobject.ClaimStatusRejected},
		{valueobject.ClaimStatusUnderReview, valueobject.ClaimStatusDocumentationRequired},
		{valueobject.ClaimStatusDocumentationRequired, valueobject.ClaimStatusUnderReview},
		{valueobject.ClaimStatusDocumentationRequired, valueobject.ClaimStatusRejected},
		{valueobject.ClaimStatusApproved, valueobject.ClaimStatusPaid},
		{valueobject.ClaimStatusApproved, valueobject.ClaimStatusRejected},
		{valueobject.ClaimStatusRejected, valueobject.ClaimStatusClosed},
		{valueobject.ClaimStatusPaid, valueobject.ClaimStatusClosed},
	}
	allowedSet := map[pair]bool{}
	for _, p := range allowed {
		allowedSet[p] = true
	}

	all := []valueobject.ClaimStatus{
		valueobject.ClaimStatusSubmitted, valueobject.ClaimStatusUnderReview,
		valueobject.ClaimStatusDocumentationRequired, valueobject.ClaimStatusApproved,
		valueobject.ClaimStatusRejected, valueobject.ClaimStatusPaid,
		valueobject.ClaimStatusClosed,
	}
	for _, from := range all {
		for _, to := range all {
			want := allowedSet[pair{from, to}]
			assert.Equal(t, want, from.CanTransitionTo(to),
				"%s -> %s", from, to)
		}
	}
}

func TestClaimStatus_IsTerminal(t *testing.T) {
	assert.True(t, valueobject.ClaimStatusClosed.IsTerminal())

	for _, status := range []valueobject.ClaimStatus{
		valueobject.ClaimStatusSubmitted, valueobject.ClaimStatusUnderReview,
		valueobject.ClaimStatusDocumentationRequired, valueobject.ClaimStatusApproved,
		valueobject.ClaimStatusRejected, valueobject.ClaimStatusPaid,
	} {
		assert.False(t, status.IsTerminal(), "%s", status)
	}

	// The zero value is uninitialised, not terminal.
	assert.False(t, valueobject.ClaimStatus{}.IsTerminal())
	assert.True(t, valueobject.ClaimStatus{}.IsZero())
}
