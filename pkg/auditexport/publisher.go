// Package auditexport forwards Access Grid event log entries to a
// Kafka/Redpanda topic so they can be retained alongside other audit streams.
package auditexport

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/go-hclog"
	"github.com/twmb/franz-go/pkg/kgo"

	"github.com/access-grid/accessgrid-go/pkg/accessgrid"
)

// DefaultTopic is used when Config.Topic is empty.
const DefaultTopic = "accessgrid.events"

// Record is the message published for each event.
type Record struct {
	ID         string           `json:"id"`
	AccountID  string           `json:"account_id"`
	TemplateID string           `json:"template_id"`
	ExportedAt time.Time        `json:"exported_at"`
	Event      accessgrid.Event `json:"event"`
}

// Config holds configuration for the publisher
type Config struct {
	Brokers []string
	Topic   string

	Logger hclog.Logger
}

// producer is the subset of *kgo.Client the publisher needs.
type producer interface {
	ProduceSync(ctx context.Context, rs ...*kgo.Record) kgo.ProduceResults
	Close()
}

// Publisher publishes event log entries to Kafka.
type Publisher struct {
	client producer
	topic  string
	logger hclog.Logger
}

// NewPublisher creates a new event publisher
func NewPublisher(cfg Config) (*Publisher, error) {
	if len(cfg.Brokers) == 0 {
		return nil, fmt.Errorf("at least one broker is required")
	}

	client, err := kgo.NewClient(
		kgo.SeedBrokers(cfg.Brokers...),

		// Audit records must not be lost once acknowledged.
		kgo.RequiredAcks(kgo.AllISRAcks()),
		kgo.ProducerBatchCompression(kgo.GzipCompression()),
		kgo.RetryBackoffFn(func(tries int) time.Duration {
			backoff := time.Duration(tries) * 100 * time.Millisecond
			if backoff > 10*time.Second {
				backoff = 10 * time.Second
			}
			return backoff
		}),
		kgo.RequestRetries(10),
		kgo.ProducerLinger(10*time.Millisecond),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create kafka client: %w", err)
	}

	return newPublisher(client, cfg), nil
}

func newPublisher(client producer, cfg Config) *Publisher {
	if cfg.Topic == "" {
		cfg.Topic = DefaultTopic
	}
	if cfg.Logger == nil {
		cfg.Logger = hclog.NewNullLogger()
	}

	return &Publisher{
		client: client,
		topic:  cfg.Topic,
		logger: cfg.Logger.Named("auditexport"),
	}
}

// Publish writes one record per event, keyed by template id so a template's
// events stay ordered within a partition. It returns the number of records
// acknowledged by the brokers.
func (p *Publisher) Publish(ctx context.Context, accountID, templateID string, events []accessgrid.Event) (int, error) {
	if len(events) == 0 {
		return 0, nil
	}

	now := time.Now().UTC()
	records := make([]*kgo.Record, 0, len(events))
	for _, event := range events {
		value, err := json.Marshal(Record{
			ID:         uuid.NewString(),
			AccountID:  accountID,
			TemplateID: templateID,
			ExportedAt: now,
			Event:      event,
		})
		if err != nil {
			return 0, fmt.Errorf("failed to marshal event record: %w", err)
		}

		records = append(records, &kgo.Record{
			Topic: p.topic,
			Key:   []byte(templateID),
			Value: value,
		})
	}

	results := p.client.ProduceSync(ctx, records...)

	published := 0
	for _, r := range results {
		if r.Err == nil {
			published++
		}
	}

	if err := results.FirstErr(); err != nil {
		p.logger.Error("failed to publish event records",
			"topic", p.topic,
			"template_id", templateID,
			"published", published,
			"total", len(records),
			"error", err,
		)
		return published, fmt.Errorf("failed to publish event records: %w", err)
	}

	p.logger.Debug("published event records",
		"topic", p.topic,
		"template_id", templateID,
		"count", published,
	)

	return published, nil
}

// Close closes the publisher
func (p *Publisher) Close() {
	p.client.Close()
}
