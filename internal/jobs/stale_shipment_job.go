package jobs

import (
	"context"
	"time"

	"shiptracker/internal/core/application/usecases/queries"
	"shiptracker/pkg/logger"
	"shiptracker/pkg/metrics"

	"github.com/robfig/cron/v3"
)

// StaleShipmentJob periodically scans for shipments that stopped moving:
// still in a non-terminal status with no update for longer than the
// configured threshold. Each stalled shipment is logged so operators can
// chase it up, and the count is exported as a gauge.
type StaleShipmentJob struct {
	handler    queries.GetStaleShipmentsQueryHandler
	staleAfter time.Duration
	schedule   string
	cron       *cron.Cron
	metrics    *metrics.Metrics
	logger     logger.Logger
}

// NewStaleShipmentJob creates a watchdog job. The schedule is a standard
// five-field cron expression.
func NewStaleShipmentJob(
	handler queries.GetStaleShipmentsQueryHandler,
	staleAfter time.Duration,
	schedule string,
	m *metrics.Metrics,
	log logger.Logger,
) *StaleShipmentJob {
	return &StaleShipmentJob{
		handler:    handler,
		staleAfter: staleAfter,
		schedule:   schedule,
		cron:       cron.New(),
		metrics:    m,
		logger:     log.With("component", "stale_shipment_job"),
	}
}

// Start registers the watchdog with the scheduler and begins running it.
func (j *StaleShipmentJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, j.run)
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.Info("stale shipment job started", "schedule", j.schedule, "staleAfter", j.staleAfter.String())
	return nil
}

// Stop stops the watchdog.
func (j *StaleShipmentJob) Stop() {
	j.cron.Stop()
	j.logger.Info("stale shipment job stopped")
}

func (j *StaleShipmentJob) run() {
	ctx := context.Background()

	query, err := queries.NewGetStaleShipmentsQuery(j.staleAfter, queries.MaxPageSize)
	if err != nil {
		j.logger.Error("stale shipment query rejected", "error", err)
		return
	}

	items, err := j.handler.Handle(ctx, query)
	if err != nil {
		j.metrics.ErrorsCount.WithLabelValues("stale_shipment_scan").Inc()
		j.logger.Error("stale shipment scan failed", "error", err)
		return
	}

	j.metrics.StaleShipments.Set(float64(len(items)))

	for _, item := range items {
		j.logger.Warn("shipment stalled",
			"id", item.ID,
			"customer", item.CustomerName,
			"status", item.CurrentStatus,
			"lastUpdate", item.UpdatedAt,
		)
	}
}
