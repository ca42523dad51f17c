package repository

import (
	"github.com/baladi39/hippo-portal/internal/dto"
	"github.com/baladi39/hippo-portal/internal/model"
)

// Store interfaces consumed by the repositories. The concrete
// implementations live in internal/store; tests substitute fakes.

type AccountStore interface {
	FetchAccounts(filters *dto.AccountFilters) ([]model.Account, int64, error)
	FetchAccountByID(accountID uint) (*model.Account, error)
	FetchAccountByName(name string) (*model.Account, error)
	CreateAccount(account *model.Account) error
	UpdateAccount(accountID uint, updates map[string]interface{}) (*model.Account, error)
}

type PlanStore interface {
	FetchPlansWithAccounts(filters *dto.PlanFilters) ([]model.Plan, int64, error)
	FetchPlanByID(planID uint) (*model.Plan, error)
	FetchPlansByAccountID(accountID uint) ([]model.Plan, error)
	CreatePlan(plan *model.Plan) error
	UpdatePlan(planID uint, updates map[string]interface{}) (*model.Plan, error)
	UpdatePlanStatus(planID uint, status string) (*model.Plan, error)
	DeletePlan(planID uint) error
}

type CarrierStore interface {
	FetchCarriers(filters *dto.CarrierFilters) ([]model.Carrier, int64, error)
	FetchCarrierByID(carrierID uint) (*model.Carrier, error)
	CreateCarrier(carrier *model.Carrier) error
	UpdateCarrier(carrierID uint, updates map[string]interface{}) (*model.Carrier, error)
	DeleteCarrier(carrierID uint) (*model.Carrier, error)
}

type PlanTypeStore interface {
	FetchPlanTypes() ([]model.PlanType, error)
	FetchPlanTypeByID(planTypeID uint) (*model.PlanType, error)
}

type PlanConfigStore interface {
	CreatePlanConfig(config *model.PlanConfig) error
	FetchPlanConfigByPlanID(planID uint) (*model.PlanConfig, error)
}
