package dto

// CarrierDto is the camelCase carrier shape consumed by the frontend
type CarrierDto struct {
	CarrierID   uint   `json:"carrierId"`
	CompanyName string `json:"companyName"`
	IsActive    bool   `json:"isActive"`
	CreatedAt   string `json:"createdAt"`
	UpdatedAt   string `json:"updatedAt,omitempty"`
}

// CarrierFilters are the recognized conjunctive filters for carrier queries
type CarrierFilters struct {
	SearchTerm string
	IsActive   *bool
	Offset     *int
	Limit      int
}

// CreateCarrierData carries the fields accepted when creating a carrier
type CreateCarrierData struct {
	CompanyName string `json:"companyName" validate:"required"`
	IsActive    *bool  `json:"isActive,omitempty"`
}

// UpdateCarrierData carries a partial-field carrier patch
type UpdateCarrierData struct {
	CompanyName *string `json:"companyName,omitempty"`
	IsActive    *bool   `json:"isActive,omitempty"`
}
