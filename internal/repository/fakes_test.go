package repository

import (
	"time"

	"github.com/baladi39/hippo-portal/internal/dto"
	"github.com/baladi39/hippo-portal/internal/model"
	"github.com/baladi39/hippo-portal/internal/store"
)

// date parses a YYYY-MM-DD literal for test fixtures
func date(value string) time.Time {
	t, err := time.Parse(dto.DateLayout, value)
	if err != nil {
		panic(err)
	}
	return t
}

type fakeAccountStore struct {
	accounts []model.Account
	created  []*model.Account
	err      error
}

func (f *fakeAccountStore) FetchAccounts(filters *dto.AccountFilters) ([]model.Account, int64, error) {
	if f.err != nil {
		return nil, 0, f.err
	}
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
	if f.err != nil {
		return f.err
	}
	account.AccountID = uint(len(f.accounts) + 1)
	account.CreatedDate = time.Now()
	f.accounts = append(f.accounts, *account)
	f.created = append(f.created, account)
	return nil
}

func (f *fakeAccountStore) UpdateAccount(accountID uint, updates map[string]interface{}) (*model.Account, error) {
	account, err := f.FetchAccountByID(accountID)
	if err != nil {
		return nil, err
	}
	if name, ok := updates["account"].(string); ok {
		account.Account = name
	}
	if state, ok := updates["state"].(string); ok {
		account.State = state
	}
	return account, nil
}

type fakePlanStore struct {
	plans       []model.Plan
	created     []*model.Plan
	err         error
	lastFilters *dto.PlanFilters
}

func (f *fakePlanStore) FetchPlansWithAccounts(filters *dto.PlanFilters) ([]model.Plan, int64, error) {
	f.lastFilters = filters
	if f.err != nil {
		return nil, 0, f.err
	}
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
	if f.err != nil {
		return nil, f.err
	}
	matched := make([]model.Plan, 0)
	for i := range f.plans {
		if f.plans[i].AccountID == accountID {
			matched = append(matched, f.plans[i])
		}
	}
	return matched, nil
}

func (f *fakePlanStore) CreatePlan(plan *model.Plan) error {
	if f.err != nil {
		return f.err
	}
	plan.PlanID = uint(len(f.plans) + 1)
	plan.CreatedDate = time.Now()
	f.plans = append(f.plans, *plan)
	f.created = append(f.created, plan)
	return nil
}

func (f *fakePlanStore) UpdatePlan(planID uint, updates map[string]interface{}) (*model.Plan, error) {
	plan, err := f.FetchPlanByID(planID)
	if err != nil {
		return nil, err
	}
	if carrier, ok := updates["carrier"].(string); ok {
		plan.Carrier = carrier
	}
	if status, ok := updates["status"].(string); ok {
		plan.Status = status
	}
	return plan, nil
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
