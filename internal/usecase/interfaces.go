package usecase

import (
	"context"

	"github.com/levamidia/dimarzio-crm/internal/entity"
	"github.com/levamidia/dimarzio-crm/internal/infra/integration/metropole"
	"github.com/levamidia/dimarzio-crm/internal/infra/queue"
)

// LeadAPIClient é o contrato de fio com o backend metropole.
type LeadAPIClient interface {
	ListLeads(ctx context.Context, tenantID int, productID string) ([]entity.Lead, error)
	UpdateStatus(ctx context.Context, leadID int64, status string) error
	SubmitLead(ctx context.Context, input metropole.SubmitLeadInput) error
}

type CatalogRepositoryInterface interface {
	List(ctx context.Context) (entity.Catalog, error)
	Create(ctx context.Context, p *entity.Product) error
	SetActive(ctx context.Context, id string, active bool) error
}

type QueueProducerInterface interface {
	PublishLeadEvent(ctx context.Context, payload queue.LeadEventPayload) error
}
