package main

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"
	"kastelo.dev/ledger"
	"kastelo.dev/ledger/events"
	"kastelo.dev/ledger/postgres"
)

type exportOptions struct {
	postgresDSN  string
	kafkaBrokers string
	kafkaTopic   string
	timeout      time.Duration
}

func (o exportOptions) brokers() []string {
	var res []string
	for _, b := range strings.Split(o.kafkaBrokers, ",") {
		if b = strings.TrimSpace(b); b != "" {
			res = append(res, b)
		}
	}
	return res
}

// export sends the engine's rows to every configured sink concurrently.
// The engine is only read.
func export(runID string, eng *ledger.Engine, opts exportOptions) error {
	brokers := opts.brokers()
	if opts.postgresDSN == "" && len(brokers) == 0 {
		return errors.New("no export target; set --postgres-dsn and/or --kafka-brokers")
	}

	monthly := eng.AllMonthlyRows()
	daily := eng.AllDailyRows()

	ctx, cancel := context.WithTimeout(context.Background(), opts.timeout)
	defer cancel()
	g, ctx := errgroup.WithContext(ctx)

	if opts.postgresDSN != "" {
		g.Go(func() error {
			store, err := postgres.Open(ctx, opts.postgresDSN)
			if err != nil {
				return err
			}
			defer store.Close()
			if err := store.SaveMonthlyRows(ctx, runID, monthly); err != nil {
				return err
			}
			if err := store.SaveDailyRows(ctx, runID, daily); err != nil {
				return err
			}
			slog.Info("Saved to PostgreSQL", "monthly", len(monthly), "daily", len(daily))
			return nil
		})
	}

	if len(brokers) > 0 {
		g.Go(func() error {
			pub := events.NewPublisher(brokers, opts.kafkaTopic)
			defer pub.Close()
			if err := pub.PublishMonthlyRows(ctx, runID, monthly); err != nil {
				return err
			}
			slog.Info("Published to Kafka", "topic", opts.kafkaTopic, "messages", len(monthly))
			return nil
		})
	}

	return g.Wait()
}
