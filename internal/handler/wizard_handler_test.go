package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"testing"
	"time"

	"github.com/baladi39/hippo-portal/internal/dto"
	"github.com/baladi39/hippo-portal/internal/model"
	"github.com/baladi39/hippo-portal/internal/repository"
	"github.com/baladi39/hippo-portal/internal/store"
	"github.com/baladi39/hippo-portal/pkg/config"
	"github.com/baladi39/hippo-portal/prometheus"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestMain(m *testing.M) {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}
	prometheus.InitMetrics(cfg)
	os.Exit(m.Run())
}

type fakePlanStore struct {
	plans   []model.Plan
	created []*model.Plan
}

func (f *fakePlanStore) FetchPlansWithAccounts(filters *dto.PlanFilters) ([]model.Plan, int64, error) {
	return f.plans, int64(len(f.plans)), nil
}

func (f *fakePlanStore) FetchPlanByID(planID uint) (*model.Plan, error) {
	for i := range f.plans {
		if f.plans[i].PlanID == planID {
			return &f.plans[i], nil
		}
	}
	return nil, store.ErrNotFound
}

func (f *fakePlanStore) FetchPlansByAccountID(accountID uint) ([]model.Plan, error) {
	return f.plans, nil
}

func (f *fakePlanStore) CreatePlan(plan *model.Plan) error {
	plan.PlanID = uint(len(f.plans) + 1)
	plan.CreatedDate = time.Now()
	f.plans = append(f.plans, *plan)
	f.created = append(f.created, plan)
	return nil
}

func (f *fakePlanStore) UpdatePlan(planID uint, updates map[string]interface{}) (*model.Plan, error) {
	return f.FetchPlanByID(planID)
}

func (f *fakePlanStore) UpdatePlanStatus(planID uint, status string) (*model.Plan, error) {
	plan, err := f.FetchPlanByID(planID)
	if err != nil {
		return nil, err
	}
	plan.Status = status
	return plan, nil
}

func (f *fakePlanStore) DeletePlan(planID uint) error {
	_, err := f.UpdatePlanStatus(planID, model.PlanStatusCancelled)
	return err
}

type fakePlanTypeStore struct {
	planTypes []model.PlanType
}

func (f *fakePlanTypeStore) FetchPlanTypes() ([]model.PlanType, error) {
	return f.planTypes, nil
}

func (f *fakePlanTypeStore) FetchPlanTypeByID(planTypeID uint) (*model.PlanType, error) {
	for i := range f.planTypes {
		if f.planTypes[i].PlanTypeID == planTypeID {
			return &f.planTypes[i], nil
		}
	}
	return nil, store.ErrNotFound
}

func testDate(value string) time.Time {
	t, err := time.Parse(dto.DateLayout, value)
	if err != nil {
		panic(err)
	}
	return t
}

func newWizardHandlerForTest(plans *fakePlanStore, planTypes *fakePlanTypeStore) *WizardHandler {
	log := zap.NewNop()
	return NewWizardHandler(
		repository.NewPlansRepo(plans, log),
		repository.NewPlanTypesRepo(planTypes, log),
	)
}

func originalPlanFixture() model.Plan {
	return model.Plan{
		PlanID:                  42,
		AccountID:               7,
		Carrier:                 "Aetna",
		PlanType:                "Medical",
		CommissionPaidByCarrier: "No",
		EffectiveDate:           testDate("2024-01-01"),
		RenewalDate:             testDate("2025-01-01"),
		Status:                  model.PlanStatusActive,
		CreatedDate:             testDate("2023-12-01"),
		Account:                 &model.Account{AccountID: 7, Account: "Daily Grind Coffee", State: "WA"},
	}
}

func TestStartReplaceSeedsSession(t *testing.T) {
	plans := &fakePlanStore{plans: []model.Plan{originalPlanFixture()}}
	planTypes := &fakePlanTypeStore{planTypes: []model.PlanType{
		{PlanTypeID: 1, PlanTypeName: "Medical", IsActive: true},
		{PlanTypeID: 2, PlanTypeName: "Dental", IsActive: true},
	}}
	h := newWizardHandlerForTest(plans, planTypes)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("planId")
	c.SetParamValues("42")

	require.NoError(t, h.StartReplace(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		OriginalPlan dto.PlanDto `json:"originalPlan"`
		Defaults     struct {
			NonBrokered             bool   `json:"nonBrokered"`
			IncludeEligibilityRules string `json:"includeEligibilityRules"`
		} `json:"defaults"`
		Step   string `json:"step"`
		Params string `json:"params"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	assert.Equal(t, uint(42), body.OriginalPlan.PlanID)
	assert.Equal(t, "Daily Grind Coffee", body.OriginalPlan.AccountName)
	// The original carrier pays no commission, so the replacement defaults
	// to non-brokered; the plan is active, so eligibility rules carry over.
	assert.True(t, body.Defaults.NonBrokered)
	assert.Equal(t, "Yes", body.Defaults.IncludeEligibilityRules)
	assert.Equal(t, "select_target_plan", body.Step)

	params, err := url.ParseQuery(body.Params)
	require.NoError(t, err)
	assert.Equal(t, "true", params.Get("isReplacement"))
	assert.Equal(t, "42", params.Get("originalPlanId"))
	assert.Equal(t, "7", params.Get("accountId"))
}

func TestStartReplaceUnknownPlan(t *testing.T) {
	h := newWizardHandlerForTest(&fakePlanStore{}, &fakePlanTypeStore{})

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("planId")
	c.SetParamValues("99")

	require.NoError(t, h.StartReplace(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestValidateRejectsMalformedSession(t *testing.T) {
	h := newWizardHandlerForTest(&fakePlanStore{}, &fakePlanTypeStore{})

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/?step=type&accountId=not-a-number", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h.Validate(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestValidateGatesTypeSelection(t *testing.T) {
	h := newWizardHandlerForTest(&fakePlanStore{}, &fakePlanTypeStore{})

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/?step=type&accountId=7", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h.Validate(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	req = httptest.NewRequest(http.MethodPost, "/?step=type&accountId=7&newType=Medical", nil)
	rec = httptest.NewRecorder()
	c = e.NewContext(req, rec)

	require.NoError(t, h.Validate(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestSaveReplacementCreatesPendingPlan(t *testing.T) {
	plans := &fakePlanStore{plans: []model.Plan{originalPlanFixture()}}
	h := newWizardHandlerForTest(plans, &fakePlanTypeStore{})

	query := url.Values{}
	query.Set("isReplacement", "true")
	query.Set("accountId", "7")
	query.Set("replaceId", "42")
	query.Set("replaceType", "Dental")
	query.Set("originalPlanId", "42")

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/?"+query.Encode(), nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h.Save(c))
	require.Equal(t, http.StatusCreated, rec.Code)

	require.Len(t, plans.created, 1)
	row := plans.created[0]
	assert.Equal(t, "TBD", row.Carrier)
	assert.Equal(t, "Dental", row.PlanType)
	assert.Equal(t, model.PlanStatusPendingConfiguration, row.Status)
	assert.Equal(t, uint(7), row.AccountID)
}

func TestSaveNewPlanRequiresConfiguration(t *testing.T) {
	plans := &fakePlanStore{}
	h := newWizardHandlerForTest(plans, &fakePlanTypeStore{})

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/?accountId=7&newType=Medical", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h.Save(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Empty(t, plans.created)
}

func TestSaveNewPlanDefaultsRenewal(t *testing.T) {
	plans := &fakePlanStore{}
	h := newWizardHandlerForTest(plans, &fakePlanTypeStore{})

	query := url.Values{}
	query.Set("accountId", "7")
	query.Set("newType", "Medical")
	query.Set("carrier", "Aetna")
	query.Set("billingType", "List Bill")
	query.Set("planName", "Aetna Medical")
	query.Set("effectiveDate", "2024-12-15")

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/?"+query.Encode(), nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h.Save(c))
	require.Equal(t, http.StatusCreated, rec.Code)

	require.Len(t, plans.created, 1)
	row := plans.created[0]
	assert.Equal(t, "Aetna", row.Carrier)
	assert.Equal(t, model.PlanStatusActive, row.Status)
	assert.Equal(t, testDate("2024-12-15"), row.EffectiveDate)
	assert.Equal(t, testDate("2025-12-15"), row.RenewalDate)
}

func TestCancelReplaceCancelsPlan(t *testing.T) {
	plan := originalPlanFixture()
	plan.Status = model.PlanStatusPendingConfiguration
	plans := &fakePlanStore{plans: []model.Plan{plan}}
	h := newWizardHandlerForTest(plans, &fakePlanTypeStore{})

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("planId")
	c.SetParamValues("42")

	require.NoError(t, h.CancelReplace(c))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, model.PlanStatusCancelled, plans.plans[0].Status)
}
