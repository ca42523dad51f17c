package model

import (
	"time"
)

// Account represents a brokerage client organization row
type Account struct {
	AccountID        uint       `json:"account_id" gorm:"column:account_id;primarykey"`
	Account          string     `json:"account" gorm:"type:varchar(255);not null"`
	SBA              int        `json:"sba" gorm:"column:sba"`
	State            string     `json:"state" gorm:"type:varchar(100)"`
	Commission1Basis string     `json:"commission_1_basis" gorm:"column:commission_1_basis;type:varchar(100)"`
	Commission2Basis string     `json:"commission_2_basis" gorm:"column:commission_2_basis;type:varchar(100)"`
	FlatFee          float64    `json:"flat_fee"`
	Percentage       float64    `json:"percentage"`
	CreatedDate      time.Time  `json:"created_date"`
	UpdatedDate      *time.Time `json:"updated_date,omitempty"`
}

// TableName overrides the table name used by GORM
func (Account) TableName() string {
	return "accounts"
}
