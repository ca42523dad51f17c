package dto

// PlanDto is the camelCase plan shape consumed by the frontend. When the
// plan is fetched with its account, accountName and accountOfficeDivision
// come from the joined row; otherwise they fall back to placeholders.
type PlanDto struct {
	PlanID                  uint   `json:"planId"`
	AccountID               uint   `json:"accountId"`
	AccountName             string `json:"accountName"`
	AccountOfficeDivision   string `json:"accountOfficeDivision"`
	AccountPrimarySalesLead string `json:"accountPrimarySalesLead,omitempty"`
	AccountClassification   string `json:"accountClassification,omitempty"`
	Carrier                 string `json:"carrier"`
	PlanType                string `json:"planType"`
	PlanTypeID              *uint  `json:"planTypeId,omitempty"`
	PlanName                string `json:"planName"`
	PolicyGroupNumber       string `json:"policyGroupNumber,omitempty"`
	EffectiveDate           string `json:"effectiveDate"`
	RenewalDate             string `json:"renewalDate"`
	CancellationDate        string `json:"cancellationDate,omitempty"`
	Status                  string `json:"status"`
	CommissionPaidByCarrier string `json:"commissionPaidByCarrier,omitempty"`
	Billing                 string `json:"billing,omitempty"`
	Enrollment              string `json:"enrollment,omitempty"`
	AnnualRevenue           string `json:"annualRevenue,omitempty"`
	CreatedDate             string `json:"createdDate"`
	UpdatedDate             string `json:"updatedDate,omitempty"`
}

// PlanFilters are the recognized conjunctive filters for plan queries.
// Date bounds are YYYY-MM-DD strings; pass both bounds or neither.
type PlanFilters struct {
	SearchTerm        string
	AccountID         uint
	Carrier           string
	PlanType          string
	Status            string
	EffectiveDateFrom string
	EffectiveDateTo   string
	RenewalDateFrom   string
	RenewalDateTo     string
	Offset            *int
	Limit             int
}

// CreatePlanData carries the fields accepted when creating a plan
type CreatePlanData struct {
	AccountID               uint   `json:"accountId" validate:"required"`
	Carrier                 string `json:"carrier" validate:"required"`
	PlanType                string `json:"planType" validate:"required"`
	PlanTypeID              *uint  `json:"planTypeId,omitempty"`
	CommissionPaidByCarrier string `json:"commissionPaidByCarrier,omitempty"`
	Billing                 string `json:"billing,omitempty"`
	PolicyGroupNumber       string `json:"policyGroupNumber,omitempty"`
	EffectiveDate           string `json:"effectiveDate" validate:"required"`
	RenewalDate             string `json:"renewalDate" validate:"required"`
	CancellationDate        string `json:"cancellationDate,omitempty"`
	Status                  string `json:"status" validate:"required"`
}

// UpdatePlanData carries a partial-field plan patch. Nil fields are left
// unchanged; the owning account is immutable after creation.
type UpdatePlanData struct {
	Carrier                 *string `json:"carrier,omitempty"`
	PlanType                *string `json:"planType,omitempty"`
	PlanTypeID              *uint   `json:"planTypeId,omitempty"`
	CommissionPaidByCarrier *string `json:"commissionPaidByCarrier,omitempty"`
	Billing                 *string `json:"billing,omitempty"`
	PolicyGroupNumber       *string `json:"policyGroupNumber,omitempty"`
	EffectiveDate           *string `json:"effectiveDate,omitempty"`
	RenewalDate             *string `json:"renewalDate,omitempty"`
	CancellationDate        *string `json:"cancellationDate,omitempty"`
	Status                  *string `json:"status,omitempty"`
}

// ReplacePlanConfig is the payload for creating a replacement plan
type ReplacePlanConfig struct {
	OriginalPlanID          uint   `json:"originalPlanId"`
	AccountID               uint   `json:"accountId"`
	AccountName             string `json:"accountName,omitempty"`
	ReplacementPlanTypeID   uint   `json:"replacementPlanTypeId,omitempty"`
	ReplacementPlanTypeName string `json:"replacementPlanTypeName"`
	NonBrokered             bool   `json:"nonBrokered"`
	IncludeSplits           string `json:"includeSplits,omitempty"`
	IncludeContributions    string `json:"includeContributions,omitempty"`
	IncludeEligibilityRules string `json:"includeEligibilityRules,omitempty"`
}
