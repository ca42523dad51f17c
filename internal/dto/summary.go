package dto

// PlanBuckets counts plans by renewal/expiration/new-business state
type PlanBuckets struct {
	UpForRenewal    int `json:"upForRenewal"`
	ExpiredNoAction int `json:"expiredNoAction"`
	NewBusiness     int `json:"newBusiness"`
}

// DueCounts counts dated work items relative to today
type DueCounts struct {
	DueToday int `json:"dueToday"`
	PastDue  int `json:"pastDue"`
	Upcoming int `json:"upcoming"`
}

// RequestCounts counts open requests and their responses
type RequestCounts struct {
	DueToday  int `json:"dueToday"`
	PastDue   int `json:"pastDue"`
	Responses int `json:"responses"`
}

// DashboardSummary is the derived, non-persisted dashboard aggregate.
// Products currently mirrors plans; record assignments, activities and
// requests come from the work-items provider.
type DashboardSummary struct {
	Plans             PlanBuckets   `json:"plans"`
	Products          PlanBuckets   `json:"products"`
	RecordAssignments DueCounts     `json:"recordAssignments"`
	Activities        DueCounts     `json:"activities"`
	Requests          RequestCounts `json:"requests"`
}

// PlanConfigDto is the camelCase plan configuration shape
type PlanConfigDto struct {
	ID                    uint   `json:"id"`
	PlanID                *uint  `json:"planId,omitempty"`
	Carrier               string `json:"carrier"`
	BillingType           string `json:"billingType"`
	PlanName              string `json:"planName"`
	PolicyNumber          string `json:"policyNumber,omitempty"`
	OriginalEffectiveDate string `json:"originalEffectiveDate,omitempty"`
	EffectiveDate         string `json:"effectiveDate"`
	CommissionStartDate   string `json:"commissionStartDate,omitempty"`
	Funding               string `json:"funding,omitempty"`
	CreatedAt             string `json:"createdAt"`
	UpdatedAt             string `json:"updatedAt,omitempty"`
}

// CreatePlanConfigData carries the fields accepted when saving a plan
// configuration
type CreatePlanConfigData struct {
	PlanID                *uint  `json:"planId,omitempty"`
	Carrier               string `json:"carrier" validate:"required"`
	BillingType           string `json:"billingType" validate:"required"`
	PlanName              string `json:"planName" validate:"required"`
	PolicyNumber          string `json:"policyNumber,omitempty"`
	OriginalEffectiveDate string `json:"originalEffectiveDate,omitempty"`
	EffectiveDate         string `json:"effectiveDate" validate:"required"`
	CommissionStartDate   string `json:"commissionStartDate,omitempty"`
	Funding               string `json:"funding,omitempty"`
}
