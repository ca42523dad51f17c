package model

import (
	"time"
)

// Carrier represents an insurance company underwriting plans
type Carrier struct {
	CarrierID   uint       `json:"carrier_id" gorm:"column:carrier_id;primarykey"`
	CompanyName string     `json:"company_name" gorm:"type:varchar(255);not null"`
	IsActive    bool       `json:"is_active" gorm:"default:true"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   *time.Time `json:"updated_at,omitempty"`
}

// TableName overrides the table name used by GORM
func (Carrier) TableName() string {
	return "carriers"
}
