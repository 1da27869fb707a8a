package usecase

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/levamidia/dimarzio-crm/internal/entity"
	"github.com/levamidia/dimarzio-crm/internal/infra/http/middleware"
	"github.com/levamidia/dimarzio-crm/internal/infra/queue"
)

type UpdateLeadStatusUseCase struct {
	Gateway  *LeadGateway
	Queue    QueueProducerInterface
	TenantID int
}

func NewUpdateLeadStatusUseCase(gateway *LeadGateway, producer QueueProducerInterface, tenantID int) *UpdateLeadStatusUseCase {
	return &UpdateLeadStatusUseCase{
		Gateway:  gateway,
		Queue:    producer,
		TenantID: tenantID,
	}
}

// Execute valida o status contra o funil e só então chama o backend.
// Erro aqui significa que o backend NÃO aplicou a mudança: o chamador não
// deve tocar na cópia local. O UI mantém uma única atualização em voo por
// lead; atualizações concorrentes para o mesmo id são erro do chamador.
func (uc *UpdateLeadStatusUseCase) Execute(ctx context.Context, leadID int64, status string) error {
	if !entity.IsValidStatus(status) {
		return &DomainError{
			Code:    "INVALID_STATUS",
			Message: fmt.Sprintf("status desconhecido: %q", status),
		}
	}

	if err := uc.Gateway.UpdateStatus(ctx, leadID, status); err != nil {
		middleware.RecordStatusUpdate(status, "error")
		return &TechnicalError{
			Code:    "UPSTREAM_ERROR",
			Message: "falha ao atualizar status: " + err.Error(),
		}
	}
	middleware.RecordStatusUpdate(status, "ok")

	if uc.Queue != nil {
		payload := queue.LeadEventPayload{
			Event:    queue.EventStatusUpdated,
			LeadID:   leadID,
			TenantID: uc.TenantID,
			Status:   status,
		}
		if err := uc.Queue.PublishLeadEvent(ctx, payload); err != nil {
			log.Warn().Err(err).Int64("lead_id", leadID).Msg("falha ao publicar evento de status")
		}
	}

	return nil
}
