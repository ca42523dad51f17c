package wizard

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPlanSessionValues() url.Values {
	values := url.Values{}
	values.Set("account", "Daily Grind Coffee")
	values.Set("accountId", "7")
	values.Set("newType", "Medical")
	values.Set("planName", "Aetna Medical")
	values.Set("carrier", "Aetna")
	values.Set("billingType", "List Bill")
	values.Set("effectiveDate", "2024-12-15")
	values.Set("continuousPolicy", "true")
	return values
}

func newReplacementSessionValues() url.Values {
	values := newPlanSessionValues()
	values.Del("newType")
	values.Set("isReplacement", "true")
	values.Set("replaceId", "42")
	values.Set("replaceType", "Dental")
	values.Set("nonBrokered", "true")
	values.Set("includeSplits", "Yes")
	values.Set("includeContributions", "No")
	values.Set("includeEligibilityRules", "Yes")
	values.Set("originalPlanId", "42")
	values.Set("originalPlanName", "Aetna Medical")
	values.Set("originalCarrier", "Aetna")
	values.Set("originalPlanType", "Medical")
	values.Set("originalStatus", "active")
	values.Set("originalEffectiveDate", "2024-01-01")
	values.Set("originalRenewalDate", "2025-01-01")
	return values
}

func TestParsePlanSession(t *testing.T) {
	sess, err := Parse(newPlanSessionValues())
	require.NoError(t, err)

	assert.Equal(t, "Daily Grind Coffee", sess.Account)
	assert.Equal(t, uint(7), sess.AccountID)
	assert.Equal(t, "Medical", sess.NewType)
	assert.True(t, sess.ContinuousPolicy)
	assert.False(t, sess.IsReplacement)
	assert.Nil(t, sess.Original)
	assert.Equal(t, "Medical", sess.SelectedPlanType())
}

func TestParseReplacementSession(t *testing.T) {
	sess, err := Parse(newReplacementSessionValues())
	require.NoError(t, err)

	assert.True(t, sess.IsReplacement)
	assert.Equal(t, uint(42), sess.ReplaceID)
	assert.Equal(t, "Dental", sess.ReplaceType)
	assert.Equal(t, "Dental", sess.SelectedPlanType())
	assert.True(t, sess.NonBrokered)
	require.NotNil(t, sess.Original)
	assert.Equal(t, uint(42), sess.Original.PlanID)
	assert.Equal(t, "Aetna", sess.Original.Carrier)
	assert.Equal(t, "2024-01-01", sess.Original.EffectiveDate)
}

func TestSessionRoundTrip(t *testing.T) {
	sess, err := Parse(newReplacementSessionValues())
	require.NoError(t, err)

	reparsed, err := Parse(sess.Values())
	require.NoError(t, err)
	assert.Equal(t, sess, reparsed)
}

func TestParseRejectsMalformedValues(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{name: "non-numeric account id", key: "accountId", value: "abc"},
		{name: "non-numeric replace id", key: "replaceId", value: "4.5"},
		{name: "non-boolean replacement flag", key: "isReplacement", value: "maybe"},
		{name: "non-boolean continuous policy", key: "continuousPolicy", value: "yes please"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			values := newPlanSessionValues()
			values.Set(tt.key, tt.value)
			_, err := Parse(values)
			require.ErrorIs(t, err, ErrInvalidSession)
		})
	}
}

func TestParseReplacementRejectsBadOriginalPlanID(t *testing.T) {
	values := newReplacementSessionValues()
	values.Set("originalPlanId", "not-a-number")
	_, err := Parse(values)
	require.ErrorIs(t, err, ErrInvalidSession)
}

func TestValidateTypeSelection(t *testing.T) {
	sess := &Session{NewType: "Medical"}
	assert.NoError(t, sess.ValidateTypeSelection())

	sess = &Session{IsReplacement: true, ReplaceType: "Dental"}
	assert.NoError(t, sess.ValidateTypeSelection())

	// A new-plan type does not satisfy the replacement flow.
	sess = &Session{IsReplacement: true, NewType: "Medical"}
	require.ErrorIs(t, sess.ValidateTypeSelection(), ErrIncompleteStep)
}

func TestValidateConfiguration(t *testing.T) {
	complete := Session{
		Carrier:       "Aetna",
		BillingType:   "List Bill",
		PlanName:      "Aetna Medical",
		EffectiveDate: "2024-12-15",
	}

	tests := []struct {
		name   string
		mutate func(s *Session)
		wantOK bool
	}{
		{name: "complete", mutate: func(s *Session) {}, wantOK: true},
		{name: "missing carrier", mutate: func(s *Session) { s.Carrier = "" }},
		{name: "missing billing type", mutate: func(s *Session) { s.BillingType = "" }},
		{name: "missing plan name", mutate: func(s *Session) { s.PlanName = "" }},
		{name: "missing effective date", mutate: func(s *Session) { s.EffectiveDate = "" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sess := complete
			tt.mutate(&sess)
			err := sess.ValidateConfiguration()
			if tt.wantOK {
				assert.NoError(t, err)
			} else {
				require.ErrorIs(t, err, ErrIncompleteStep)
			}
		})
	}
}

func TestValidateConfigurationFull(t *testing.T) {
	sess := Session{
		Carrier:                   "Aetna",
		BillingType:               "List Bill",
		PlanName:                  "Aetna Medical",
		EffectiveDate:             "2024-12-15",
		OriginalPlanEffectiveDate: "2024-01-01",
		RenewalDate:               "2025-12-15",
		CommissionStartDate:       "2024-12-15",
		CommissionsPaidBy:         "Carrier",
		PolicyGroupNumber:         "PG-100",
		PriorPlan:                 "None",
	}
	assert.NoError(t, sess.ValidateConfigurationFull())

	sess.PriorPlan = ""
	require.ErrorIs(t, sess.ValidateConfigurationFull(), ErrIncompleteStep)
}

func TestInitialStep(t *testing.T) {
	assert.Equal(t, StepSelectTargetPlan, InitialStep(true))
	assert.Equal(t, StepSelectPlanType, InitialStep(false))
	assert.Equal(t, "select_plan_type", StepSelectPlanType.String())
}
