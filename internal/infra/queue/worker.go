package queue

import (
	"encoding/json"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/rs/zerolog/log"

	"github.com/levamidia/dimarzio-crm/internal/entity"
)

// WhatsAppNotifier manda a mensagem de primeiro contato para o lead.
type WhatsAppNotifier interface {
	SendFollowUp(phone, name string) error
}

// MailNotifier avisa a equipe comercial.
type MailNotifier interface {
	SendNewLeadAlert(name, email, phone, product string) error
	SendDealClosedAlert(leadID int64, status string) error
}

// Worker consome os eventos de lead e dispara as notificações. Desacoplado
// do resto: só conhece o canal e os notificadores.
type Worker struct {
	Channel  *amqp.Channel
	WhatsApp WhatsAppNotifier
	Mail     MailNotifier
}

func NewWorker(ch *amqp.Channel, whatsapp WhatsAppNotifier, mail MailNotifier) *Worker {
	return &Worker{
		Channel:  ch,
		WhatsApp: whatsapp,
		Mail:     mail,
	}
}

func (w *Worker) Start(queueName string) {
	msgs, err := w.Channel.Consume(
		queueName,
		"",    // consumer
		false, // auto-ack (manual é mais seguro)
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,   // args
	)
	if err != nil {
		log.Fatal().Err(err).Msg("falha ao registrar consumidor RabbitMQ")
	}

	forever := make(chan bool)

	go func() {
		for d := range msgs {
			var payload LeadEventPayload
			if err := json.Unmarshal(d.Body, &payload); err != nil {
				log.Error().Err(err).Msg("worker: JSON inválido, mandando para a DLQ")
				// Mensagem podre: rejeita sem requeue para não travar a fila.
				d.Nack(false, false)
				continue
			}

			log.Info().
				Str("event", payload.Event).
				Int64("lead_id", payload.LeadID).
				Msg("worker: processando evento de lead")

			if err := w.processEvent(payload); err != nil {
				log.Error().Err(err).Str("event", payload.Event).Msg("worker: falha na notificação")
				d.Nack(false, false)
			} else {
				d.Ack(false)
			}
		}
	}()

	log.Info().Str("queue", queueName).Msg("worker de notificações aguardando eventos")
	<-forever
}

func (w *Worker) processEvent(payload LeadEventPayload) error {
	switch payload.Event {
	case EventLeadCaptured:
		if w.Mail != nil {
			if err := w.Mail.SendNewLeadAlert(payload.Name, payload.Email, payload.Phone, payload.Product); err != nil {
				return err
			}
		}
		// Sem telefone não há follow-up; o alerta por email já saiu.
		if w.WhatsApp != nil && payload.Phone != "" {
			return w.WhatsApp.SendFollowUp(payload.Phone, payload.Name)
		}
		return nil

	case EventStatusUpdated:
		if payload.Status == entity.StatusFechado && w.Mail != nil {
			return w.Mail.SendDealClosedAlert(payload.LeadID, payload.Status)
		}
		return nil

	default:
		log.Warn().Str("event", payload.Event).Msg("worker: evento desconhecido, apenas ignorando")
		// Ack para tirar da fila: não sabemos tratar e reprocessar não ajuda.
		return nil
	}
}
