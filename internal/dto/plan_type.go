package dto

// PlanTypeDto is the camelCase plan-type shape used to populate menus
type PlanTypeDto struct {
	ID       uint   `json:"id"`
	Name     string `json:"name"`
	Category string `json:"category"`
}
