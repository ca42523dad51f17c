package repository

import (
	"fmt"
	"time"

	"github.com/baladi39/hippo-portal/internal/dto"
	"github.com/baladi39/hippo-portal/internal/model"
)

// fieldPlaceholder stands in for columns that are not modeled in storage yet
// (primary sales lead, classification).
const fieldPlaceholder = "TBD"

func formatDate(t time.Time) string {
	return t.Format(dto.DateLayout)
}

func formatDatePtr(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(dto.DateLayout)
}

func parseDate(value, field string) (time.Time, error) {
	t, err := time.Parse(dto.DateLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %s must be a %s date", ErrValidation, field, dto.DateLayout)
	}
	return t, nil
}

// mapAccountToDto translates an account row into its frontend shape
func mapAccountToDto(account *model.Account) *dto.AccountDto {
	return &dto.AccountDto{
		AccountID:        account.AccountID,
		AccountName:      account.Account,
		SBA:              account.SBA,
		State:            account.State,
		OfficeDivision:   account.State, // state doubles as office division until modeled
		PrimarySalesLead: fieldPlaceholder,
		Classification:   fieldPlaceholder,
		CommissionBasis1: account.Commission1Basis,
		CommissionBasis2: account.Commission2Basis,
		FlatFee:          account.FlatFee,
		Percentage:       account.Percentage,
		CreatedDate:      formatDate(account.CreatedDate),
		UpdatedDate:      formatDatePtr(account.UpdatedDate),
	}
}

// mapPlanToDto translates a plan row into its frontend shape. planName is
// synthesized from carrier and plan type; account fields come from the
// joined row when present and fall back to placeholders when the plan was
// fetched without its account.
func mapPlanToDto(plan *model.Plan) *dto.PlanDto {
	accountName := "Unknown Account"
	officeDivision := ""
	if plan.Account != nil {
		accountName = plan.Account.Account
		officeDivision = plan.Account.State
	}

	return &dto.PlanDto{
		PlanID:                  plan.PlanID,
		AccountID:               plan.AccountID,
		AccountName:             accountName,
		AccountOfficeDivision:   officeDivision,
		AccountPrimarySalesLead: fieldPlaceholder,
		AccountClassification:   fieldPlaceholder,
		Carrier:                 plan.Carrier,
		PlanType:                plan.PlanType,
		PlanTypeID:              plan.PlanTypeID,
		PlanName:                plan.Carrier + " " + plan.PlanType,
		PolicyGroupNumber:       plan.PolicyGroupNumber,
		EffectiveDate:           formatDate(plan.EffectiveDate),
		RenewalDate:             formatDate(plan.RenewalDate),
		CancellationDate:        formatDatePtr(plan.CancellationDate),
		Status:                  plan.Status,
		CommissionPaidByCarrier: plan.CommissionPaidByCarrier,
		Billing:                 plan.Billing,
		CreatedDate:             formatDate(plan.CreatedDate),
		UpdatedDate:             formatDatePtr(plan.UpdatedDate),
	}
}

func mapPlansToDtos(plans []model.Plan) []dto.PlanDto {
	dtos := make([]dto.PlanDto, 0, len(plans))
	for i := range plans {
		dtos = append(dtos, *mapPlanToDto(&plans[i]))
	}
	return dtos
}

// mapCarrierToDto translates a carrier row into its frontend shape
func mapCarrierToDto(carrier *model.Carrier) *dto.CarrierDto {
	return &dto.CarrierDto{
		CarrierID:   carrier.CarrierID,
		CompanyName: carrier.CompanyName,
		IsActive:    carrier.IsActive,
		CreatedAt:   formatDate(carrier.CreatedAt),
		UpdatedAt:   formatDatePtr(carrier.UpdatedAt),
	}
}

// mapPlanTypeToDto translates a plan type row into its frontend shape
func mapPlanTypeToDto(planType *model.PlanType) *dto.PlanTypeDto {
	return &dto.PlanTypeDto{
		ID:       planType.PlanTypeID,
		Name:     planType.PlanTypeName,
		Category: planType.Category,
	}
}

// mapPlanConfigToDto translates a plan config row into its frontend shape
func mapPlanConfigToDto(config *model.PlanConfig) *dto.PlanConfigDto {
	return &dto.PlanConfigDto{
		ID:                    config.ID,
		PlanID:                config.PlanID,
		Carrier:               config.Carrier,
		BillingType:           config.BillingType,
		PlanName:              config.PlanName,
		PolicyNumber:          config.PolicyNumber,
		OriginalEffectiveDate: formatDatePtr(config.OriginalEffectiveDate),
		EffectiveDate:         formatDate(config.EffectiveDate),
		CommissionStartDate:   formatDatePtr(config.CommissionStartDate),
		Funding:               config.Funding,
		CreatedAt:             formatDate(config.CreatedAt),
		UpdatedAt:             formatDatePtr(config.UpdatedAt),
	}
}
