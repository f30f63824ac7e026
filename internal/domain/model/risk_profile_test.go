package model_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/covergrid/insurance-service/internal/domain/event"
	"github.com/covergrid/insurance-service/internal/domain/model"
	"github.com/covergrid/insurance-service/internal/domain/valueobject"
)

func completeAttributes() model.ProfileAttributes {
	income := decimal.NewFromInt(55_000)
	return model.ProfileAttributes{
		Age:              42,
		Occupation:       valueobject.OccupationOffice,
		AnnualIncome:     &income,
		EmploymentStatus: valueobject.EmploymentStatusEmployed,
	}
}

func TestNewRiskProfile(t *testing.T) {
	t.Run("complete attributes", func(t *testing.T) {
		profile, err := model.NewRiskProfile("applicant-007", completeAttributes(), testNow)
		require.NoError(t, err)

		assert.NotEmpty(t, profile.ID())
		assert.Equal(t, "applicant-007", profile.ApplicantID())
		assert.True(t, profile.IsComplete())
		assert.False(t, profile.IsAssessed())
		assert.Equal(t, 1, profile.Version())
	})

	t.Run("missing applicant ID", func(t *testing.T) {
		_, err := model.NewRiskProfile("", completeAttributes(), testNow)
		require.Error(t, err)
	})

	t.Run("partial attributes are allowed", func(t *testing.T) {
		profile, err := model.NewRiskProfile("applicant-007", model.ProfileAttributes{
			Age: 42,
		}, testNow)
		require.NoError(t, err)
		assert.False(t, profile.IsComplete())
	})
}

func TestRiskProfile_AttributeValidation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(a *model.ProfileAttributes)
	}{
		{"age below minimum", func(a *model.ProfileAttributes) { a.Age = 17 }},
		{"age above maximum", func(a *model.ProfileAttributes) { a.Age = 101 }},
		{"negative income", func(a *model.ProfileAttributes) {
			income := decimal.NewFromInt(-1)
			a.AnnualIncome = &income
		}},
		{"bmi below range", func(a *model.ProfileAttributes) {
			bmi := 9.9
			a.BMI = &bmi
		}},
		{"bmi above range", func(a *model.ProfileAttributes) {
			bmi := 50.1
			a.BMI = &bmi
		}},
		{"credit score below range", func(a *model.ProfileAttributes) {
			score := 299
			a.CreditScore = &score
		}},
		{"credit score above range", func(a *model.ProfileAttributes) {
			score := 851
			a.CreditScore = &score
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			attrs := completeAttributes()
			tt.mutate(&attrs)

			_, err := model.NewRiskProfile("applicant-007", attrs, testNow)
			require.Error(t, err)

			// The same rules apply on update.
			profile, perr := model.NewRiskProfile("applicant-007", completeAttributes(), testNow)
			require.NoError(t, perr)
			_, err = profile.UpdateAttributes(attrs, testNow)
			require.Error(t, err)
		})
	}
}

func TestRiskProfile_UpdateAttributesClearsAssessment(t *testing.T) {
	profile, err := model.NewRiskProfile("applicant-007", completeAttributes(), testNow)
	require.NoError(t, err)

	assessed := profile.ApplyAssessment(model.RiskAssessment{
		OverallScore:      40,
		Category:          valueobject.RiskCategoryModerate,
		PremiumMultiplier: 0.8,
	}, testNow)
	require.True(t, assessed.IsAssessed())

	attrs := completeAttributes()
	attrs.Smoker = true
	updated, err := assessed.UpdateAttributes(attrs, testNow)
	require.NoError(t, err)

	// Derived state never survives an input change.
	assert.False(t, updated.IsAssessed())
	assert.Zero(t, updated.Assessment().OverallScore)
	assert.True(t, updated.Attributes().Smoker)

	// The previous copy is untouched.
	assert.True(t, assessed.IsAssessed())
}

func TestRiskProfile_ApplyAssessmentEmitsEvent(t *testing.T) {
	profile, err := model.NewRiskProfile("applicant-007", completeAttributes(), testNow)
	require.NoError(t, err)
	require.Empty(t, profile.DomainEvents())

	assessed := profile.ApplyAssessment(model.RiskAssessment{
		OverallScore:      65,
		Category:          valueobject.RiskCategoryHigh,
		PremiumMultiplier: 1.4,
	}, testNow)

	events := assessed.DomainEvents()
	require.Len(t, events, 1)
	ev, ok := events[0].(event.RiskProfileAssessed)
	require.True(t, ok)
	assert.Equal(t, profile.ID(), ev.AggregateID())
	assert.Equal(t, "applicant-007", ev.ApplicantID)
	assert.Equal(t, 65, ev.OverallScore)
	assert.Equal(t, "HIGH", ev.Category)

	cleared := assessed.ClearEvents()
	assert.Empty(t, cleared.DomainEvents())
	assert.True(t, cleared.IsAssessed())
}

func TestRiskProfile_AttributesAreCopied(t *testing.T) {
	attrs := completeAttributes()
	attrs.Hobbies = []string{"skydiving"}

	profile, err := model.NewRiskProfile("applicant-007", attrs, testNow)
	require.NoError(t, err)

	// Mutating the caller's slice or the returned copy must not leak in.
	attrs.Hobbies[0] = "chess"
	got := profile.Attributes()
	assert.Equal(t, []string{"skydiving"}, got.Hobbies)

	got.Hobbies[0] = "knitting"
	assert.Equal(t, []string{"skydiving"}, profile.Attributes().Hobbies)

	*got.AnnualIncome = decimal.NewFromInt(1)
	assert.True(t, profile.Attributes().AnnualIncome.Equal(decimal.NewFromInt(55_000)))
}
