package payroll

import (
	"context"
	"encoding/json"

	"github.com/cmlabs-hris/hris-payroll-go/internal/domain/payroll"
	"github.com/segmentio/kafka-go"
)

type noopEventPublisher struct{}

// NewNoopEventPublisher is used when no broker is configured
func NewNoopEventPublisher() payroll.EventPublisher {
	return noopEventPublisher{}
}

func (noopEventPublisher) PublishApproved(context.Context, payroll.ApprovedEvent) error {
	return nil
}

type kafkaEventPublisher struct {
	writer *kafka.Writer
}

func NewKafkaEventPublisher(writer *kafka.Writer) payroll.EventPublisher {
	return &kafkaEventPublisher{writer: writer}
}

func (p *kafkaEventPublisher) PublishApproved(ctx context.Context, event payroll.ApprovedEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}

	return p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(event.EmployeeID),
		Value: payload,
		Headers: []kafka.Header{
			{Key: "event_type", Value: []byte("payroll.approved")},
		},
	})
}
