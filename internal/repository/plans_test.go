package repository

import (
	"testing"
	"time"

	"github.com/baladi39/hippo-portal/internal/dto"
	"github.com/baladi39/hippo-portal/internal/model"
	"github.com/baladi39/hippo-portal/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newPlansRepoForTest(plans *fakePlanStore, now time.Time) *PlansRepo {
	repo := NewPlansRepo(plans, zap.NewNop())
	repo.now = func() time.Time { return now }
	return repo
}

func TestCreateReplacementPlan(t *testing.T) {
	plans := &fakePlanStore{plans: []model.Plan{
		{PlanID: 42, AccountID: 7, Carrier: "Aetna", PlanType: "Medical",
			EffectiveDate: date("2024-01-01"), RenewalDate: date("2025-01-01"),
			Status: model.PlanStatusActive},
	}}
	repo := newPlansRepoForTest(plans, date("2024-12-15"))

	created, err := repo.CreateReplacementPlan(&dto.ReplacePlanConfig{
		OriginalPlanID:          42,
		AccountID:               7,
		ReplacementPlanTypeID:   3,
		ReplacementPlanTypeName: "Dental",
	})
	require.NoError(t, err)
	require.Len(t, plans.created, 1)

	row := plans.created[0]
	assert.Equal(t, uint(7), row.AccountID)
	assert.Equal(t, "TBD", row.Carrier)
	assert.Equal(t, "Dental", row.PlanType)
	assert.Equal(t, model.PlanStatusPendingConfiguration, row.Status)
	assert.Equal(t, date("2024-12-15"), row.EffectiveDate)
	assert.Equal(t, date("2025-12-15"), row.RenewalDate)
	require.NotNil(t, row.PlanTypeID)
	assert.Equal(t, uint(3), *row.PlanTypeID)

	assert.Equal(t, "2024-12-15", created.EffectiveDate)
	assert.Equal(t, "2025-12-15", created.RenewalDate)
	assert.Equal(t, model.PlanStatusPendingConfiguration, created.Status)
}

func TestCreateReplacementPlanValidation(t *testing.T) {
	tests := []struct {
		name   string
		config dto.ReplacePlanConfig
	}{
		{name: "missing original plan id", config: dto.ReplacePlanConfig{AccountID: 7, ReplacementPlanTypeName: "Dental"}},
		{name: "missing account id", config: dto.ReplacePlanConfig{OriginalPlanID: 42, ReplacementPlanTypeName: "Dental"}},
		{name: "missing plan type", config: dto.ReplacePlanConfig{OriginalPlanID: 42, AccountID: 7}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plans := &fakePlanStore{plans: []model.Plan{{PlanID: 42, AccountID: 7}}}
			repo := newPlansRepoForTest(plans, date("2024-12-15"))

			_, err := repo.CreateReplacementPlan(&tt.config)
			require.ErrorIs(t, err, ErrValidation)
			assert.Empty(t, plans.created)
		})
	}
}

func TestCreateReplacementPlanOriginalMissing(t *testing.T) {
	plans := &fakePlanStore{}
	repo := newPlansRepoForTest(plans, date("2024-12-15"))

	_, err := repo.CreateReplacementPlan(&dto.ReplacePlanConfig{
		OriginalPlanID:          42,
		AccountID:               7,
		ReplacementPlanTypeName: "Dental",
	})
	require.ErrorIs(t, err, store.ErrNotFound)
	assert.Empty(t, plans.created)
}

func TestCancelPlanReplacement(t *testing.T) {
	plans := &fakePlanStore{plans: []model.Plan{
		{PlanID: 9, AccountID: 7, Status: model.PlanStatusPendingConfiguration,
			EffectiveDate: date("2024-12-15"), RenewalDate: date("2025-12-15")},
	}}
	repo := newPlansRepoForTest(plans, date("2024-12-15"))

	cancelled, err := repo.CancelPlanReplacement(9)
	require.NoError(t, err)
	assert.Equal(t, model.PlanStatusCancelled, cancelled.Status)
	assert.Equal(t, model.PlanStatusCancelled, plans.plans[0].Status)
}

func TestGetUpcomingRenewalsFiltersAndSorts(t *testing.T) {
	today := date("2024-12-15")
	plans := &fakePlanStore{plans: []model.Plan{
		{PlanID: 1, EffectiveDate: date("2024-01-01"), RenewalDate: date("2025-01-05"), Status: model.PlanStatusActive},
		{PlanID: 2, EffectiveDate: date("2024-02-01"), RenewalDate: date("2024-12-18"), Status: model.PlanStatusActive},
	}}
	repo := newPlansRepoForTest(plans, today)

	renewals, total, err := repo.GetUpcomingRenewals(30)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)

	require.NotNil(t, plans.lastFilters)
	assert.Equal(t, model.PlanStatusActive, plans.lastFilters.Status)
	assert.Equal(t, "2024-12-15", plans.lastFilters.RenewalDateFrom)
	assert.Equal(t, "2025-01-14", plans.lastFilters.RenewalDateTo)

	require.Len(t, renewals, 2)
	assert.Equal(t, uint(2), renewals[0].PlanID)
	assert.Equal(t, uint(1), renewals[1].PlanID)
}

func TestGetUpcomingRenewalsDefaultsWindow(t *testing.T) {
	plans := &fakePlanStore{}
	repo := newPlansRepoForTest(plans, date("2024-12-15"))

	_, _, err := repo.GetUpcomingRenewals(0)
	require.NoError(t, err)
	require.NotNil(t, plans.lastFilters)
	assert.Equal(t, "2025-01-14", plans.lastFilters.RenewalDateTo)
}

func TestDeletePlanSoftCancels(t *testing.T) {
	plans := &fakePlanStore{plans: []model.Plan{
		{PlanID: 4, Status: model.PlanStatusActive,
			EffectiveDate: date("2024-01-01"), RenewalDate: date("2025-01-01")},
	}}
	repo := newPlansRepoForTest(plans, date("2024-12-15"))

	require.NoError(t, repo.Delete(4))
	assert.Equal(t, model.PlanStatusCancelled, plans.plans[0].Status)
}

func TestUpdatePlanRejectsBadDate(t *testing.T) {
	plans := &fakePlanStore{plans: []model.Plan{
		{PlanID: 4, EffectiveDate: date("2024-01-01"), RenewalDate: date("2025-01-01")},
	}}
	repo := newPlansRepoForTest(plans, date("2024-12-15"))

	bad := "12/15/2024"
	_, err := repo.Update(4, &dto.UpdatePlanData{EffectiveDate: &bad})
	require.ErrorIs(t, err, ErrValidation)
}
