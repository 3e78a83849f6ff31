package eventbus

import (
	"context"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"google.golang.org/protobuf/proto"

	patientpb "github.com/raidhealth/patient-platform/proto/patientevents"
)

// EventTypePatientCreated tags events emitted after a successful registration.
const EventTypePatientCreated = "PATIENT_CREATED"

// Publisher emits patient domain events. A nil error means the broker
// accepted the message, not that any consumer has processed it.
type Publisher interface {
	PatientCreated(ctx context.Context, patientID, name, email string) error
}

// RabbitPublisher wraps an AMQP channel and queue for publishing patient events.
type RabbitPublisher struct {
	conn  *amqp.Connection
	ch    *amqp.Channel
	Queue string
}

func NewRabbitPublisher(url, queue string) (*RabbitPublisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, err
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, err
	}
	// Declare durable queue
	_, err = ch.QueueDeclare(
		queue,
		true,  // durable
		false, // autoDelete
		false, // exclusive
		false, // noWait
		nil,
	)
	if err != nil {
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

// PatientCreated publishes a PATIENT_CREATED event to the patient queue.
func (p *RabbitPublisher) PatientCreated(ctx context.Context, patientID, name, email string) error {
	body, err := encodeEvent(patientID, name, email, EventTypePatientCreated)
	if err != nil {
		return err
	}
	return p.ch.PublishWithContext(ctx,
		"",      // default exchange
		p.Queue, // routing key = queue
		false,   // mandatory
		false,   // immediate
		amqp.Publishing{
			ContentType:  "application/x-protobuf",
			Type:         EventTypePatientCreated,
			DeliveryMode: amqp.Persistent,
			Timestamp:    time.Now().UTC(),
			Body:         body,
		},
	)
}

func encodeEvent(patientID, name, email, eventType string) ([]byte, error) {
	return proto.Marshal(&patientpb.PatientEvent{
		PatientId: patientID,
		Name:      name,
		Email:     email,
		EventType: eventType,
	})
}

var _ Publisher = (*RabbitPublisher)(nil)
