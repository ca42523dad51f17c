package model

import (
	"time"
)

// Plan status values used by the portal. Status is free text in storage;
// these cover the values the application itself writes.
const (
	PlanStatusActive               = "active"
	PlanStatusPendingConfiguration = "pending_configuration"
	PlanStatusCancelled            = "cancelled"
)

// Plan represents a single benefit product row owned by an account
type Plan struct {
	PlanID                  uint       `json:"plan_id" gorm:"column:plan_id;primarykey"`
	AccountID               uint       `json:"account_id" gorm:"index;not null"`
	Carrier                 string     `json:"carrier" gorm:"type:varchar(255);not null"`
	PlanType                string     `json:"plan_type" gorm:"type:varchar(100);not null"`
	PlanTypeID              *uint      `json:"plan_type_id,omitempty" gorm:"column:plan_type_id"`
	CommissionPaidByCarrier string     `json:"commission_paid_by_carrier,omitempty" gorm:"type:varchar(20)"`
	Billing                 string     `json:"billing,omitempty" gorm:"type:varchar(100)"`
	PolicyGroupNumber       string     `json:"policy_group_number,omitempty" gorm:"type:varchar(100)"`
	EffectiveDate           time.Time  `json:"effective_date" gorm:"type:date;not null"`
	RenewalDate             time.Time  `json:"renewal_date" gorm:"type:date;not null"`
	CancellationDate        *time.Time `json:"cancellation_date,omitempty" gorm:"type:date"`
	Status                  string     `json:"status" gorm:"type:varchar(50);not null"`
	CreatedDate             time.Time  `json:"created_date"`
	UpdatedDate             *time.Time `json:"updated_date,omitempty"`

	// Joined account row, populated only when fetched with its account
	Account *Account `json:"account,omitempty" gorm:"foreignKey:AccountID;references:AccountID"`
}

// TableName overrides the table name used by GORM
func (Plan) TableName() string {
	return "plans"
}
