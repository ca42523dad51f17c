package repository

import (
	"github.com/baladi39/hippo-portal/internal/dto"

	"go.uber.org/zap"
)

// PlanTypesRepo translates plan type reference rows into frontend DTOs
type PlanTypesRepo struct {
	planTypes PlanTypeStore
	log       *zap.Logger
}

// NewPlanTypesRepo creates a new plan types repository instance
func NewPlanTypesRepo(planTypes PlanTypeStore, log *zap.Logger) *PlanTypesRepo {
	return &PlanTypesRepo{planTypes: planTypes, log: log}
}

// FindAll retrieves all active plan types
func (r *PlanTypesRepo) FindAll() ([]dto.PlanTypeDto, error) {
	planTypes, err := r.planTypes.FetchPlanTypes()
	if err != nil {
		r.log.Error("Failed to list plan types", zap.Error(err))
		return nil, err
	}

	dtos := make([]dto.PlanTypeDto, 0, len(planTypes))
	for i := range planTypes {
		dtos = append(dtos, *mapPlanTypeToDto(&planTypes[i]))
	}
	return dtos, nil
}

// FindByID retrieves a single active plan type
func (r *PlanTypesRepo) FindByID(planTypeID uint) (*dto.PlanTypeDto, error) {
	planType, err := r.planTypes.FetchPlanTypeByID(planTypeID)
	if err != nil {
		r.log.Error("Failed to fetch plan type", zap.Uint("plan_type_id", planTypeID), zap.Error(err))
		return nil, err
	}
	return mapPlanTypeToDto(planType), nil
}
