package queue

import (
	"context"
	"encoding/json"
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/levamidia/dimarzio-crm/internal/infra/http/middleware"
)

// Eventos publicados depois que o backend metropole confirmou a escrita.
const (
	EventLeadCaptured  = "lead_captured"
	EventStatusUpdated = "status_updated"
)

type LeadEventPayload struct {
	Event    string `json:"event"`
	LeadID   int64  `json:"lead_id,omitempty"`
	TenantID int    `json:"tenant_id"`
	Product  string `json:"product,omitempty"`
	Status   string `json:"status,omitempty"`
	Name     string `json:"name,omitempty"`
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
}

type RabbitMQProducer struct {
	Conn *amqp.Connection
	Ch   *amqp.Channel
}

func NewProducer(conn *amqp.Connection, ch *amqp.Channel) *RabbitMQProducer {
	return &RabbitMQProducer{
		Conn: conn,
		Ch:   ch,
	}
}

func (p *RabbitMQProducer) PublishLeadEvent(ctx context.Context, payload LeadEventPayload) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("erro ao converter payload: %v", err)
	}

	err = p.Ch.PublishWithContext(ctx,
		ExchangeName,
		RoutingKey,
		false, // Mandatory
		false, // Immediate
		amqp.Publishing{
			ContentType:  "application/json",
			Body:         body,
			DeliveryMode: amqp.Persistent,
		},
	)
	if err != nil {
		return fmt.Errorf("falha ao publicar no RabbitMQ: %v", err)
	}

	middleware.RecordLeadEvent(payload.Event)
	return nil
}
