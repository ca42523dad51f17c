package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/baladi39/hippo-portal/internal/dto"
	"github.com/baladi39/hippo-portal/internal/model"
	"github.com/baladi39/hippo-portal/internal/repository"
	"github.com/baladi39/hippo-portal/internal/store"
	"github.com/baladi39/hippo-portal/internal/workitems"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeAccountStore struct {
	accounts []model.Account
}

func (f *fakeAccountStore) FetchAccounts(filters *dto.AccountFilters) ([]model.Account, int64, error) {
	return f.accounts, int64(len(f.accounts)), nil
}

func (f *fakeAccountStore) FetchAccountByID(accountID uint) (*model.Account, error) {
	for i := range f.accounts {
		if f.accounts[i].AccountID == accountID {
			return &f.accounts[i], nil
		}
	}
	return nil, store.ErrNotFound
}

func (f *fakeAccountStore) FetchAccountByName(name string) (*model.Account, error) {
	for i := range f.accounts {
		if f.accounts[i].Account == name {
			return &f.accounts[i], nil
		}
	}
	return nil, store.ErrNotFound
}

func (f *fakeAccountStore) CreateAccount(account *model.Account) error {
	account.AccountID = uint(len(f.accounts) + 1)
	f.accounts = append(f.accounts, *account)
	return nil
}

func (f *fakeAccountStore) UpdateAccount(accountID uint, updates map[string]interface{}) (*model.Account, error) {
	return f.FetchAccountByID(accountID)
}

func newAccountHandlerForTest(accounts *fakeAccountStore, plans *fakePlanStore) *AccountHandler {
	log := zap.NewNop()
	accountsRepo := repository.NewAccountsRepo(accounts, plans, workitems.NewStubProvider(), log)
	plansRepo := repository.NewPlansRepo(plans, log)
	return NewAccountHandler(accountsRepo, plansRepo)
}

type accountDashboardBody struct {
	Account    dto.AccountDto `json:"account"`
	Plans      []dto.PlanDto  `json:"plans"`
	TotalPlans int            `json:"totalPlans"`
}

func TestGetAccountDashboardByID(t *testing.T) {
	accounts := &fakeAccountStore{accounts: []model.Account{
		{AccountID: 7, Account: "Daily Grind Coffee", State: "WA", CreatedDate: testDate("2023-12-01")},
	}}
	plans := &fakePlanStore{plans: []model.Plan{
		{PlanID: 1, AccountID: 7, Carrier: "Aetna", PlanType: "Medical",
			EffectiveDate: testDate("2024-01-01"), RenewalDate: testDate("2025-01-01"),
			Status: model.PlanStatusActive, CreatedDate: testDate("2023-12-01")},
	}}
	h := newAccountHandlerForTest(accounts, plans)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("7")

	require.NoError(t, h.GetAccountDashboard(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var body accountDashboardBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Daily Grind Coffee", body.Account.AccountName)
	assert.Equal(t, 1, body.TotalPlans)
}

func TestGetAccountDashboardByLegacyName(t *testing.T) {
	accounts := &fakeAccountStore{accounts: []model.Account{
		{AccountID: 7, Account: "Daily Grind Coffee", State: "WA", CreatedDate: testDate("2023-12-01")},
	}}
	plans := &fakePlanStore{plans: []model.Plan{
		{PlanID: 1, AccountID: 7, Carrier: "Aetna", PlanType: "Medical",
			EffectiveDate: testDate("2024-01-01"), RenewalDate: testDate("2025-01-01"),
			Status: model.PlanStatusActive, CreatedDate: testDate("2023-12-01")},
	}}
	h := newAccountHandlerForTest(accounts, plans)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/?account=Daily+Grind+Coffee", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h.GetAccountDashboard(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var body accountDashboardBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, uint(7), body.Account.AccountID)
	assert.Equal(t, "Daily Grind Coffee", body.Account.AccountName)
	require.Len(t, body.Plans, 1)
	assert.Equal(t, uint(1), body.Plans[0].PlanID)
}

func TestGetAccountDashboardUnknownName(t *testing.T) {
	h := newAccountHandlerForTest(&fakeAccountStore{}, &fakePlanStore{})

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/?account=Nobody", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h.GetAccountDashboard(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
