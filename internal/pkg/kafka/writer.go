package kafka

import (
	"time"

	kafkago "github.com/segmentio/kafka-go"
)

type WriterConfig struct {
	Brokers []string
	Topic   string
}

// NewWriter returns a writer bound to a single topic. Messages with the same
// key land on the same partition.
func NewWriter(cfg WriterConfig) *kafkago.Writer {
	return &kafkago.Writer{
		Addr:                   kafkago.TCP(cfg.Brokers...),
		Topic:                  cfg.Topic,
		Balancer:               &kafkago.Hash{},
		RequiredAcks:           kafkago.RequireAll,
		BatchTimeout:           10 * time.Millisecond,
		WriteTimeout:           10 * time.Second,
		AllowAutoTopicCreation: true,
	}
}
