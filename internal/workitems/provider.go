package workitems

import (
	"github.com/baladi39/hippo-portal/internal/dto"
)

// Provider supplies the record-assignment, activity and request counters
// shown on the dashboard. No real data source exists for these yet; the
// contract is only that every count is a non-negative integer.
type Provider interface {
	RecordAssignments() dto.DueCounts
	Activities() dto.DueCounts
	Requests() dto.RequestCounts
}

// StubProvider returns empty counters until a real work-item source exists
type StubProvider struct{}

// NewStubProvider creates the placeholder work-items provider
func NewStubProvider() *StubProvider {
	return &StubProvider{}
}

func (p *StubProvider) RecordAssignments() dto.DueCounts {
	return dto.DueCounts{}
}

func (p *StubProvider) Activities() dto.DueCounts {
	return dto.DueCounts{}
}

func (p *StubProvider) Requests() dto.RequestCounts {
	return dto.RequestCounts{}
}
