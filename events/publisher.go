// Package events publishes ledger exports to Kafka.
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"
	"kastelo.dev/ledger"
)

const DefaultTopic = "ledger.monthly_summaries"

// MonthlySummaryPublished is the message body for one monthly row.
type MonthlySummaryPublished struct {
	RunID      string `json:"run_id"`
	CustomerID string `json:"customer_id"`
	Month      string `json:"month"`  // MM/YYYY
	Period     string `json:"period"` // YYYY-MM
	Min        int64  `json:"min_balance"`
	Max        int64  `json:"max_balance"`
	Ending     int64  `json:"ending_balance"`
}

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type Publisher struct {
	writer messageWriter
	now    func() time.Time
}

// NewPublisher returns a publisher writing to topic on the given brokers.
// Messages are keyed by customer id so that all months of a customer end
// up on the same partition, in order.
func NewPublisher(brokers []string, topic string) *Publisher {
	if topic == "" {
		topic = DefaultTopic
	}
	return newPublisher(&kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireAll,
	})
}

func newPublisher(w messageWriter) *Publisher {
	return &Publisher{writer: w, now: time.Now}
}

// PublishMonthlyRows sends one message per row as a single batch.
func (p *Publisher) PublishMonthlyRows(ctx context.Context, runID string, rows []ledger.MonthlyRow) error {
	if len(rows) == 0 {
		return nil
	}

	now := p.now()
	msgs := make([]kafka.Message, len(rows))
	for i, r := range rows {
		data, err := json.Marshal(MonthlySummaryPublished{
			RunID:      runID,
			CustomerID: r.CustomerID,
			Month:      r.MonthYear,
			Period:     r.Period(),
			Min:        r.Min,
			Max:        r.Max,
			Ending:     r.Ending,
		})
		if err != nil {
			return err
		}
		msgs[i] = kafka.Message{
			Key:   []byte(r.CustomerID),
			Value: data,
			Time:  now,
		}
	}

	if err := p.writer.WriteMessages(ctx, msgs...); err != nil {
		return fmt.Errorf("publish %d monthly summaries: %w", len(msgs), err)
	}
	return nil
}

func (p *Publisher) Close() error {
	return p.writer.Close()
}
