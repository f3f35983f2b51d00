package helpers

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/oksasatya/job-portal-api/pkg/mailer"
)

// DefaultEmailQueue is used when no queue name is configured.
const DefaultEmailQueue = "job-portal.emails"

// emailMessageType tags queued EmailJob payloads.
const emailMessageType = "email"

var ErrNoRecipient = errors.New("email job has no recipient")

// RabbitPublisher puts email jobs on a durable queue for cmd/email_worker.
type RabbitPublisher struct {
	conn  *amqp.Connection
	ch    *amqp.Channel
	Queue string
}

func NewRabbitPublisher(url, queue string) (*RabbitPublisher, error) {
	if queue == "" {
		queue = DefaultEmailQueue
	}
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, err
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, err
	}
	// durable, survives broker restarts together with persistent messages
	if _, err := ch.QueueDeclare(queue, true, false, false, false, nil); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, err
	}
	return &RabbitPublisher{conn: conn, ch: ch, Queue: queue}, nil
}

func (p *RabbitPublisher) Close() {
	if p == nil {
		return
	}
	if p.ch != nil {
		_ = p.ch.Close()
	}
	if p.conn != nil {
		_ = p.conn.Close()
	}
}

// emailPublishing builds the persistent AMQP message for job.
func emailPublishing(job mailer.EmailJob) (amqp.Publishing, error) {
	if strings.TrimSpace(job.To) == "" {
		return amqp.Publishing{}, ErrNoRecipient
	}
	b, err := json.Marshal(job)
	if err != nil {
		return amqp.Publishing{}, err
	}
	return amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		MessageId:    uuid.NewString(),
		Type:         emailMessageType,
		Timestamp:    time.Now().UTC(),
		Body:         b,
	}, nil
}

// PublishEmail queues job on the publisher's queue via the default exchange.
func (p *RabbitPublisher) PublishEmail(ctx context.Context, job mailer.EmailJob) error {
	msg, err := emailPublishing(job)
	if err != nil {
		return err
	}
	return p.ch.PublishWithContext(ctx, "", p.Queue, false, false, msg)
}
