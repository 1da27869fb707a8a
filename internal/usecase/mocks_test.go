package usecase

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/levamidia/dimarzio-crm/internal/entity"
	"github.com/levamidia/dimarzio-crm/internal/infra/integration/metropole"
	"github.com/levamidia/dimarzio-crm/internal/infra/queue"
)

// MockLeadAPIClient
type MockLeadAPIClient struct {
	mock.Mock
}

func (m *MockLeadAPIClient) ListLeads(ctx context.Context, tenantID int, productID string) ([]entity.Lead, error) {
	args := m.Called(ctx, tenantID, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Lead), args.Error(1)
}

func (m *MockLeadAPIClient) UpdateStatus(ctx context.Context, leadID int64, status string) error {
	args := m.Called(ctx, leadID, status)
	return args.Error(0)
}

func (m *MockLeadAPIClient) SubmitLead(ctx context.Context, input metropole.SubmitLeadInput) error {
	args := m.Called(ctx, input)
	return args.Error(0)
}

// MockCatalogRepository
type MockCatalogRepository struct {
	mock.Mock
}

func (m *MockCatalogRepository) List(ctx context.Context) (entity.Catalog, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(entity.Catalog), args.Error(1)
}

func (m *MockCatalogRepository) Create(ctx context.Context, p *entity.Product) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockCatalogRepository) SetActive(ctx context.Context, id string, active bool) error {
	args := m.Called(ctx, id, active)
	return args.Error(0)
}

// MockQueueProducer
type MockQueueProducer struct {
	mock.Mock
}

func (m *MockQueueProducer) PublishLeadEvent(ctx context.Context, payload queue.LeadEventPayload) error {
	args := m.Called(ctx, payload)
	return args.Error(0)
}
