package model

// PlanType is read-only reference data used to populate selection menus
type PlanType struct {
	PlanTypeID   uint   `json:"plan_type_id" gorm:"column:plan_type_id;primarykey"`
	PlanTypeName string `json:"plan_type_name" gorm:"type:varchar(100);not null"`
	Category     string `json:"category" gorm:"type:varchar(100)"`
	IsActive     bool   `json:"is_active" gorm:"default:true"`
}

// TableName overrides the table name used by GORM
func (PlanType) TableName() string {
	return "plan_types"
}
