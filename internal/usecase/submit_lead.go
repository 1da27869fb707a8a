package usecase

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/levamidia/dimarzio-crm/internal/infra/integration/metropole"
	"github.com/levamidia/dimarzio-crm/internal/infra/queue"
)

type SubmitLeadInput struct {
	Name               string `json:"name"`
	Email              string `json:"email"`
	CellPhone          string `json:"cellPhone"`
	Product            string `json:"product"`
	InteressePrincipal string `json:"interessePrincipal"`
	Field01            string `json:"field01"`
	Field02            string `json:"field02"`
	Field04            string `json:"field04"`
	Field05            string `json:"field05"`
	Field06            string `json:"field06"`
	Field07            string `json:"field07"`
	Field08            string `json:"field08"`
	Field09            string `json:"field09"`
	Field18            string `json:"field18"`
	Field19            string `json:"field19"`
}

type SubmitLeadUseCase struct {
	Gateway        *LeadGateway
	Queue          QueueProducerInterface
	TenantID       int
	DefaultProduct string
}

func NewSubmitLeadUseCase(gateway *LeadGateway, producer QueueProducerInterface, tenantID int, defaultProduct string) *SubmitLeadUseCase {
	return &SubmitLeadUseCase{
		Gateway:        gateway,
		Queue:          producer,
		TenantID:       tenantID,
		DefaultProduct: defaultProduct,
	}
}

// Execute envia o lead para o backend. O status sai sempre NOVO,
// independente do que veio do formulário, e o evento de captura só é
// publicado depois da confirmação do metropole.
func (uc *SubmitLeadUseCase) Execute(ctx context.Context, input SubmitLeadInput) error {
	if input.Product == "" {
		input.Product = uc.DefaultProduct
	}

	if validationErrors := ValidateSubmitLeadInput(input); len(validationErrors) > 0 {
		errMsg := "validation failed: "
		for _, e := range validationErrors {
			errMsg += e.Field + " (" + e.Message + "), "
		}
		return &DomainError{
			Code:    "VALIDATION_ERROR",
			Message: errMsg,
		}
	}

	err := uc.Gateway.SubmitLead(ctx, metropole.SubmitLeadInput{
		TenantID:           uc.TenantID,
		Name:               input.Name,
		Email:              input.Email,
		CellPhone:          input.CellPhone,
		Product:            input.Product,
		InteressePrincipal: input.InteressePrincipal,
		Field01:            input.Field01,
		Field02:            input.Field02,
		Field04:            input.Field04,
		Field05:            input.Field05,
		Field06:            input.Field06,
		Field07:            input.Field07,
		Field08:            input.Field08,
		Field09:            input.Field09,
		Field18:            input.Field18,
		Field19:            input.Field19,
	})
	if err != nil {
		return &TechnicalError{
			Code:    "UPSTREAM_ERROR",
			Message: "falha ao enviar lead: " + err.Error(),
		}
	}

	if uc.Queue != nil {
		payload := queue.LeadEventPayload{
			Event:    queue.EventLeadCaptured,
			TenantID: uc.TenantID,
			Product:  input.Product,
			Name:     input.Name,
			Email:    input.Email,
			Phone:    input.CellPhone,
		}
		if err := uc.Queue.PublishLeadEvent(ctx, payload); err != nil {
			// Notificação é best-effort; o lead já está no backend.
			log.Warn().Err(err).Str("lead", input.Name).Msg("falha ao publicar evento de captura")
		}
	}

	return nil
}
