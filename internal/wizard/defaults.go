package wizard

import (
	"strings"

	"github.com/baladi39/hippo-portal/internal/dto"
)

// ReplacementToggles are the replacement-behavior choices presented on the
// target-plan page. Defaults are seeded from the original plan but every
// toggle stays user-overridable.
type ReplacementToggles struct {
	NonBrokered             bool   `json:"nonBrokered"`
	IncludeSplits           string `json:"includeSplits"`
	IncludeContributions    string `json:"includeContributions"`
	IncludeEligibilityRules string `json:"includeEligibilityRules"`
}

// ReplacementDefaults derives the display defaults for the toggles from the
// plan being replaced:
//   - non-brokered when the original carrier paid no commission
//   - splits carried over for commission-bearing plan types
//   - contributions carried over for retirement-style plan types
//   - eligibility rules carried over only from a still-active plan
func ReplacementDefaults(plan *dto.PlanDto) ReplacementToggles {
	toggles := ReplacementToggles{
		IncludeSplits:           "No",
		IncludeContributions:    "No",
		IncludeEligibilityRules: "No",
	}
	if plan == nil {
		return toggles
	}

	if plan.CommissionPaidByCarrier == "No" || plan.CommissionPaidByCarrier == "N/A" {
		toggles.NonBrokered = true
	}

	planType := strings.ToLower(plan.PlanType)
	if strings.Contains(planType, "commission") {
		toggles.IncludeSplits = "Yes"
	}
	if strings.Contains(planType, "401") || strings.Contains(planType, "retirement") {
		toggles.IncludeContributions = "Yes"
	}
	if strings.EqualFold(plan.Status, "active") {
		toggles.IncludeEligibilityRules = "Yes"
	}
	return toggles
}

// SnapshotFromPlan captures the original plan's fields for carrying through
// the remaining wizard steps.
func SnapshotFromPlan(plan *dto.PlanDto) *OriginalPlan {
	if plan == nil {
		return nil
	}
	return &OriginalPlan{
		PlanID:                  plan.PlanID,
		PlanName:                plan.PlanName,
		Carrier:                 plan.Carrier,
		PlanType:                plan.PlanType,
		Status:                  plan.Status,
		EffectiveDate:           plan.EffectiveDate,
		RenewalDate:             plan.RenewalDate,
		CancellationDate:        plan.CancellationDate,
		CommissionPaidByCarrier: plan.CommissionPaidByCarrier,
		PolicyGroupNumber:       plan.PolicyGroupNumber,
		Billing:                 plan.Billing,
		AccountName:             plan.AccountName,
		AccountOfficeDivision:   plan.AccountOfficeDivision,
		AccountPrimarySalesLead: plan.AccountPrimarySalesLead,
		AccountClassification:   plan.AccountClassification,
		Enrollment:              plan.Enrollment,
		AnnualRevenue:           plan.AnnualRevenue,
		CreatedDate:             plan.CreatedDate,
		UpdatedDate:             plan.UpdatedDate,
	}
}
