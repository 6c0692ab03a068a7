package queue

import (
	"context"
	"encoding/json"
	"log"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/kinesiszgz/kinesis-backend/internal/infra/http/middleware"
)

// LeadNotifier define el contrato de aviso al equipo (correo, y mañana
// lo que haga falta) sin acoplar el worker al transporte concreto.
type LeadNotifier interface {
	NotifyLeadCaptured(ctx context.Context, payload LeadCapturedPayload) error
}

type Worker struct {
	Channel  *amqp.Channel
	Notifier LeadNotifier
}

func NewWorker(ch *amqp.Channel, notifier LeadNotifier) *Worker {
	return &Worker{
		Channel:  ch,
		Notifier: notifier,
	}
}

func (w *Worker) Start(queueName string) {
	msgs, err := w.Channel.Consume(
		queueName, // cola
		"",        // consumer
		false,     // auto-ack (manual es más seguro)
		false,     // exclusive
		false,     // no-local
		false,     // no-wait
		nil,       // args
	)
	if err != nil {
		log.Fatalf("❌ Falla al registrar consumidor RabbitMQ: %s", err)
	}

	forever := make(chan bool)

	go func() {
		for d := range msgs {
			var payload LeadCapturedPayload
			if err := json.Unmarshal(d.Body, &payload); err != nil {
				log.Printf("❌ [WORKER] JSON inválido: %s", err)
				// Mensaje corrupto: se rechaza sin requeue para no
				// bloquear la cola. Acaba en la DLQ.
				d.Nack(false, false)
				continue
			}

			log.Printf("📥 [WORKER] Lead recibido: %s (%s)", payload.Name, payload.Type)

			if err := w.Notifier.NotifyLeadCaptured(context.Background(), payload); err != nil {
				log.Printf("❌ [WORKER] Error enviando notificación: %s", err)
				middleware.RecordLeadNotification("failed")
				d.Nack(false, false)
			} else {
				log.Printf("✅ [WORKER] Equipo notificado del lead %s", payload.LeadID)
				middleware.RecordLeadNotification("sent")
				d.Ack(false)
			}
		}
	}()

	log.Printf(" [*] Worker esperando mensajes en la cola '%s'", queueName)
	<-forever
}
