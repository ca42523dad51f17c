package repository

import (
	"github.com/baladi39/hippo-portal/internal/dto"
	"github.com/baladi39/hippo-portal/internal/model"

	"go.uber.org/zap"
)

// PlanConfigsRepo stores and retrieves saved plan configurations
type PlanConfigsRepo struct {
	configs PlanConfigStore
	log     *zap.Logger
}

// NewPlanConfigsRepo creates a new plan configs repository instance
func NewPlanConfigsRepo(configs PlanConfigStore, log *zap.Logger) *PlanConfigsRepo {
	return &PlanConfigsRepo{configs: configs, log: log}
}

// Create saves a plan configuration
func (r *PlanConfigsRepo) Create(data *dto.CreatePlanConfigData) (*dto.PlanConfigDto, error) {
	effectiveDate, err := parseDate(data.EffectiveDate, "effectiveDate")
	if err != nil {
		return nil, err
	}

	config := &model.PlanConfig{
		PlanID:        data.PlanID,
		Carrier:       data.Carrier,
		BillingType:   data.BillingType,
		PlanName:      data.PlanName,
		PolicyNumber:  data.PolicyNumber,
		EffectiveDate: effectiveDate,
		Funding:       data.Funding,
	}
	if data.OriginalEffectiveDate != "" {
		date, err := parseDate(data.OriginalEffectiveDate, "originalEffectiveDate")
		if err != nil {
			return nil, err
		}
		config.OriginalEffectiveDate = &date
	}
	if data.CommissionStartDate != "" {
		date, err := parseDate(data.CommissionStartDate, "commissionStartDate")
		if err != nil {
			return nil, err
		}
		config.CommissionStartDate = &date
	}

	if err := r.configs.CreatePlanConfig(config); err != nil {
		r.log.Error("Failed to create plan config", zap.String("plan_name", data.PlanName), zap.Error(err))
		return nil, err
	}
	return mapPlanConfigToDto(config), nil
}

// FindByPlanID retrieves the configuration saved for a plan
func (r *PlanConfigsRepo) FindByPlanID(planID uint) (*dto.PlanConfigDto, error) {
	config, err := r.configs.FetchPlanConfigByPlanID(planID)
	if err != nil {
		r.log.Error("Failed to fetch plan config", zap.Uint("plan_id", planID), zap.Error(err))
		return nil, err
	}
	return mapPlanConfigToDto(config), nil
}
