package wizard

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"
)

// ErrInvalidSession marks a parameter bag that cannot be deserialized into
// a session.
var ErrInvalidSession = errors.New("invalid wizard session")

// ErrIncompleteStep marks a step whose required fields are not all filled.
var ErrIncompleteStep = errors.New("incomplete wizard step")

// OriginalPlan is the snapshot of the plan being replaced, carried through
// the wizard so every later step can render it without refetching.
type OriginalPlan struct {
	PlanID                  uint
	PlanName                string
	Carrier                 string
	PlanType                string
	Status                  string
	EffectiveDate           string
	RenewalDate             string
	CancellationDate        string
	CommissionPaidByCarrier string
	PolicyGroupNumber       string
	Billing                 string
	AccountName             string
	AccountOfficeDivision   string
	AccountPrimarySalesLead string
	AccountClassification   string
	Enrollment              string
	AnnualRevenue           string
	CreatedDate             string
	UpdatedDate             string
}

// Session is the accumulating wizard state. Its only persistence is the
// query string between pages; Parse and Values are the single
// serialize/deserialize boundary, and parsing validates the typed fields
// instead of trusting caller-supplied strings at every read site.
type Session struct {
	// Account context
	Account   string
	AccountID uint

	// Plan type selection
	NewType string

	// Configuration fields
	PlanName                  string
	Carrier                   string
	BillingType               string
	CommissionsPaidBy         string
	FundingType               string
	PolicyGroupNumber         string
	OriginalPlanEffectiveDate string
	EffectiveDate             string
	RenewalDate               string
	CommissionStartDate       string
	NewBusinessUntil          string
	ContinuousPolicy          bool
	OriginationReason         string
	PriorPlan                 string
	AutomaticActivityLog      string
	AttributeView             string
	EligibleEmployees         string
	MetalLevel                string
	ACASafeHarbor             string
	ReportingYear             string
	SecondaryPlanType         string
	BenefitAttributes         string
	CurrentPlan               string

	// Replacement context
	IsReplacement           bool
	ReplaceID               uint
	ReplaceType             string
	NonBrokered             bool
	IncludeSplits           string
	IncludeContributions    string
	IncludeEligibilityRules string
	Original                *OriginalPlan
}

// Parse deserializes a session from the flat query parameters carried
// between wizard pages. Boolean and numeric fields are validated here, once.
func Parse(values url.Values) (*Session, error) {
	s := &Session{
		Account:                   values.Get("account"),
		NewType:                   values.Get("newType"),
		PlanName:                  values.Get("planName"),
		Carrier:                   values.Get("carrier"),
		BillingType:               values.Get("billingType"),
		CommissionsPaidBy:         values.Get("commissionsPaidBy"),
		FundingType:               values.Get("fundingType"),
		PolicyGroupNumber:         values.Get("policyGroupNumber"),
		OriginalPlanEffectiveDate: values.Get("originalPlanEffectiveDate"),
		EffectiveDate:             values.Get("effectiveDate"),
		RenewalDate:               values.Get("renewalDate"),
		CommissionStartDate:       values.Get("commissionStartDate"),
		NewBusinessUntil:          values.Get("newBusinessUntil"),
		OriginationReason:         values.Get("originationReason"),
		PriorPlan:                 values.Get("priorPlan"),
		AutomaticActivityLog:      values.Get("automaticActivityLog"),
		AttributeView:             values.Get("attributeView"),
		EligibleEmployees:         values.Get("eligibleEmployees"),
		MetalLevel:                values.Get("metalLevel"),
		ACASafeHarbor:             values.Get("acaSafeHarbor"),
		ReportingYear:             values.Get("reportingYear"),
		SecondaryPlanType:         values.Get("secondaryPlanType"),
		BenefitAttributes:         values.Get("benefitAttributes"),
		CurrentPlan:               values.Get("currentPlan"),
		ReplaceType:               values.Get("replaceType"),
		IncludeSplits:             values.Get("includeSplits"),
		IncludeContributions:      values.Get("includeContributions"),
		IncludeEligibilityRules:   values.Get("includeEligibilityRules"),
	}

	var err error
	if s.AccountID, err = parseUint(values, "accountId"); err != nil {
		return nil, err
	}
	if s.ReplaceID, err = parseUint(values, "replaceId"); err != nil {
		return nil, err
	}
	if s.ContinuousPolicy, err = parseBool(values, "continuousPolicy"); err != nil {
		return nil, err
	}
	if s.IsReplacement, err = parseBool(values, "isReplacement"); err != nil {
		return nil, err
	}
	if s.NonBrokered, err = parseBool(values, "nonBrokered"); err != nil {
		return nil, err
	}

	if s.IsReplacement {
		originalPlanID, err := parseUint(values, "originalPlanId")
		if err != nil {
			return nil, err
		}
		s.Original = &OriginalPlan{
			PlanID:                  originalPlanID,
			PlanName:                values.Get("originalPlanName"),
			Carrier:                 values.Get("originalCarrier"),
			PlanType:                values.Get("originalPlanType"),
			Status:                  values.Get("originalStatus"),
			EffectiveDate:           values.Get("originalEffectiveDate"),
			RenewalDate:             values.Get("originalRenewalDate"),
			CancellationDate:        values.Get("originalCancellationDate"),
			CommissionPaidByCarrier: values.Get("originalCommissionPaidByCarrier"),
			PolicyGroupNumber:       values.Get("originalPolicyGroupNumber"),
			Billing:                 values.Get("originalBilling"),
			AccountName:             values.Get("originalAccountName"),
			AccountOfficeDivision:   values.Get("originalAccountOfficeDivision"),
			AccountPrimarySalesLead: values.Get("originalAccountPrimarySalesLead"),
			AccountClassification:   values.Get("originalAccountClassification"),
			Enrollment:              values.Get("originalEnrollment"),
			AnnualRevenue:           values.Get("originalAnnualRevenue"),
			CreatedDate:             values.Get("originalCreatedDate"),
			UpdatedDate:             values.Get("originalUpdatedDate"),
		}
	}

	return s, nil
}

// Values serializes the session back into the flat parameter bag that is
// forwarded to the next wizard page.
func (s *Session) Values() url.Values {
	values := url.Values{}
	values.Set("account", s.Account)
	if s.AccountID != 0 {
		values.Set("accountId", strconv.FormatUint(uint64(s.AccountID), 10))
	}
	if s.NewType != "" {
		values.Set("newType", s.NewType)
	}
	values.Set("planName", s.PlanName)
	values.Set("carrier", s.Carrier)
	values.Set("billingType", s.BillingType)
	values.Set("commissionsPaidBy", s.CommissionsPaidBy)
	values.Set("fundingType", s.FundingType)
	values.Set("policyGroupNumber", s.PolicyGroupNumber)
	values.Set("originalPlanEffectiveDate", s.OriginalPlanEffectiveDate)
	values.Set("effectiveDate", s.EffectiveDate)
	values.Set("renewalDate", s.RenewalDate)
	values.Set("commissionStartDate", s.CommissionStartDate)
	values.Set("newBusinessUntil", s.NewBusinessUntil)
	values.Set("continuousPolicy", strconv.FormatBool(s.ContinuousPolicy))
	values.Set("originationReason", s.OriginationReason)
	values.Set("priorPlan", s.PriorPlan)
	values.Set("automaticActivityLog", s.AutomaticActivityLog)
	values.Set("attributeView", s.AttributeView)
	values.Set("eligibleEmployees", s.EligibleEmployees)
	values.Set("metalLevel", s.MetalLevel)
	values.Set("acaSafeHarbor", s.ACASafeHarbor)
	values.Set("reportingYear", s.ReportingYear)
	values.Set("secondaryPlanType", s.SecondaryPlanType)
	values.Set("benefitAttributes", s.BenefitAttributes)
	values.Set("currentPlan", s.CurrentPlan)
	values.Set("isReplacement", strconv.FormatBool(s.IsReplacement))
	if s.ReplaceID != 0 {
		values.Set("replaceId", strconv.FormatUint(uint64(s.ReplaceID), 10))
	}
	if s.ReplaceType != "" {
		values.Set("replaceType", s.ReplaceType)
	}

	if s.IsReplacement && s.Original != nil {
		values.Set("originalPlanId", strconv.FormatUint(uint64(s.Original.PlanID), 10))
		values.Set("originalPlanName", s.Original.PlanName)
		values.Set("originalCarrier", s.Original.Carrier)
		values.Set("originalPlanType", s.Original.PlanType)
		values.Set("originalStatus", s.Original.Status)
		values.Set("originalEffectiveDate", s.Original.EffectiveDate)
		values.Set("originalRenewalDate", s.Original.RenewalDate)
		values.Set("originalCancellationDate", s.Original.CancellationDate)
		values.Set("originalCommissionPaidByCarrier", s.Original.CommissionPaidByCarrier)
		values.Set("originalPolicyGroupNumber", s.Original.PolicyGroupNumber)
		values.Set("originalBilling", s.Original.Billing)
		values.Set("originalAccountName", s.Original.AccountName)
		values.Set("originalAccountOfficeDivision", s.Original.AccountOfficeDivision)
		values.Set("originalAccountPrimarySalesLead", s.Original.AccountPrimarySalesLead)
		values.Set("originalAccountClassification", s.Original.AccountClassification)
		values.Set("originalEnrollment", s.Original.Enrollment)
		values.Set("originalAnnualRevenue", s.Original.AnnualRevenue)
		values.Set("originalCreatedDate", s.Original.CreatedDate)
		values.Set("originalUpdatedDate", s.Original.UpdatedDate)
		values.Set("nonBrokered", strconv.FormatBool(s.NonBrokered))
		values.Set("includeSplits", s.IncludeSplits)
		values.Set("includeContributions", s.IncludeContributions)
		values.Set("includeEligibilityRules", s.IncludeEligibilityRules)
	}

	return values
}

// SelectedPlanType returns the plan type chosen at the type-selection step,
// which lives in a different parameter depending on the flow.
func (s *Session) SelectedPlanType() string {
	if s.IsReplacement {
		return s.ReplaceType
	}
	return s.NewType
}

// ValidateTypeSelection gates SelectPlanType → ConfigurePlan: a plan type
// must have been chosen.
func (s *Session) ValidateTypeSelection() error {
	if s.SelectedPlanType() == "" {
		return fmt.Errorf("%w: a plan type must be selected", ErrIncompleteStep)
	}
	return nil
}

// ValidateConfiguration gates ConfigurePlan → Review with the minimal
// required fields.
func (s *Session) ValidateConfiguration() error {
	required := map[string]string{
		"carrier":       s.Carrier,
		"billingType":   s.BillingType,
		"planName":      s.PlanName,
		"effectiveDate": s.EffectiveDate,
	}
	return checkRequired(required)
}

// ValidateConfigurationFull gates ConfigurePlan → Review for the full form
// variant, which demands every dated and commission field as well.
func (s *Session) ValidateConfigurationFull() error {
	if err := s.ValidateConfiguration(); err != nil {
		return err
	}
	required := map[string]string{
		"originalPlanEffectiveDate": s.OriginalPlanEffectiveDate,
		"renewalDate":               s.RenewalDate,
		"commissionStartDate":       s.CommissionStartDate,
		"commissionsPaidBy":         s.CommissionsPaidBy,
		"policyGroupNumber":         s.PolicyGroupNumber,
		"priorPlan":                 s.PriorPlan,
	}
	return checkRequired(required)
}

func checkRequired(fields map[string]string) error {
	for name, value := range fields {
		if value == "" {
			return fmt.Errorf("%w: %s is required", ErrIncompleteStep, name)
		}
	}
	return nil
}

func parseUint(values url.Values, key string) (uint, error) {
	raw := values.Get(key)
	if raw == "" {
		return 0, nil
	}
	parsed, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be numeric, got %q", ErrInvalidSession, key, raw)
	}
	return uint(parsed), nil
}

func parseBool(values url.Values, key string) (bool, error) {
	raw := values.Get(key)
	if raw == "" {
		return false, nil
	}
	parsed, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf("%w: %s must be a boolean, got %q", ErrInvalidSession, key, raw)
	}
	return parsed, nil
}
