package model

import (
	"time"
)

// PlanConfig is a saved plan configuration row. The wizard's final write does
// not consume these rows; they are kept for configurations saved directly.
type PlanConfig struct {
	ID                    uint       `json:"id" gorm:"primarykey"`
	PlanID                *uint      `json:"plan_id,omitempty" gorm:"column:plan_id;index"`
	Carrier               string     `json:"carrier" gorm:"type:varchar(255);not null"`
	BillingType           string     `json:"billing_type" gorm:"type:varchar(100);not null"`
	PlanName              string     `json:"plan_name" gorm:"type:varchar(255);not null"`
	PolicyNumber          string     `json:"policy_number,omitempty" gorm:"type:varchar(100)"`
	OriginalEffectiveDate *time.Time `json:"original_effective_date,omitempty" gorm:"type:date"`
	EffectiveDate         time.Time  `json:"effective_date" gorm:"type:date;not null"`
	CommissionStartDate   *time.Time `json:"commission_start_date,omitempty" gorm:"type:date"`
	Funding               string     `json:"funding" gorm:"type:varchar(100)"`
	CreatedAt             time.Time  `json:"created_at"`
	UpdatedAt             *time.Time `json:"updated_at,omitempty"`
}

// TableName overrides the table name used by GORM
func (PlanConfig) TableName() string {
	return "plan_configs"
}
