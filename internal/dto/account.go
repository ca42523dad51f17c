package dto

// DateLayout is the wire format for all date fields exposed to the frontend.
const DateLayout = "2006-01-02"

// AccountDto is the camelCase account shape consumed by the frontend
type AccountDto struct {
	AccountID        uint    `json:"accountId"`
	AccountName      string  `json:"accountName"`
	SBA              int     `json:"sba"`
	State            string  `json:"state"`
	OfficeDivision   string  `json:"officeDivision"`
	PrimarySalesLead string  `json:"primarySalesLead,omitempty"`
	Classification   string  `json:"classification,omitempty"`
	CommissionBasis1 string  `json:"commissionBasis1"`
	CommissionBasis2 string  `json:"commissionBasis2"`
	FlatFee          float64 `json:"flatFee"`
	Percentage       float64 `json:"percentage"`
	CreatedDate      string  `json:"createdDate"`
	UpdatedDate      string  `json:"updatedDate,omitempty"`
}

// AccountWithPlansDto is an account with its plans and renewal summary
type AccountWithPlansDto struct {
	AccountID               uint      `json:"accountId"`
	AccountName             string    `json:"accountName"`
	AccountOfficeDivision   string    `json:"accountOfficeDivision"`
	AccountPrimarySalesLead string    `json:"accountPrimarySalesLead,omitempty"`
	AccountClassification   string    `json:"accountClassification,omitempty"`
	Plans                   []PlanDto `json:"plans"`
	TotalPlans              int       `json:"totalPlans"`
	UpcomingRenewals        int       `json:"upcomingRenewals"`
}

// AccountFilters are the recognized conjunctive filters for account queries
type AccountFilters struct {
	SearchTerm string
	State      string
	SBA        int
	Offset     *int
	Limit      int
}

// CreateAccountData carries the fields accepted when creating an account
type CreateAccountData struct {
	AccountName      string  `json:"accountName" validate:"required"`
	SBA              int     `json:"sba"`
	State            string  `json:"state"`
	CommissionBasis1 string  `json:"commissionBasis1"`
	CommissionBasis2 string  `json:"commissionBasis2"`
	FlatFee          float64 `json:"flatFee"`
	Percentage       float64 `json:"percentage"`
}

// UpdateAccountData carries a partial-field account patch. Nil fields are
// left unchanged.
type UpdateAccountData struct {
	AccountName      *string  `json:"accountName,omitempty"`
	SBA              *int     `json:"sba,omitempty"`
	State            *string  `json:"state,omitempty"`
	CommissionBasis1 *string  `json:"commissionBasis1,omitempty"`
	CommissionBasis2 *string  `json:"commissionBasis2,omitempty"`
	FlatFee          *float64 `json:"flatFee,omitempty"`
	Percentage       *float64 `json:"percentage,omitempty"`
}
