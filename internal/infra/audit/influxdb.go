package audit

import (
	"context"
	"log/slog"
	"time"

	influxdb2 "github.com/influxdata/influxdb-client-go/v2"
	"github.com/influxdata/influxdb-client-go/v2/api"
)

type influxDBRecorder struct {
	client   influxdb2.Client
	writeAPI api.WriteAPIBlocking
}

// NewRecorder returns an InfluxDB-backed recorder, or the noop recorder
// when auditing is disabled or unconfigured.
func NewRecorder(ctx context.Context, cfg *Config) (Recorder, error) {
	if cfg.Disabled {
		slog.InfoContext(ctx, "plan audit recording disabled")
		return NewNoopRecorder(), nil
	}

	if cfg.InfluxDBToken == "" || cfg.InfluxDBOrg == "" {
		slog.WarnContext(ctx, "InfluxDB token or org not configured, plan audit recording disabled",
			slog.String("url", cfg.InfluxDBURL),
		)
		return NewNoopRecorder(), nil
	}

	client := influxdb2.NewClient(cfg.InfluxDBURL, cfg.InfluxDBToken)
	writeAPI := client.WriteAPIBlocking(cfg.InfluxDBOrg, cfg.InfluxDBBucket)

	slog.InfoContext(ctx, "plan audit recorder initialized",
		slog.String("type", "influxdb"),
		slog.String("url", cfg.InfluxDBURL),
		slog.String("bucket", cfg.InfluxDBBucket),
	)

	return &influxDBRecorder{
		client:   client,
		writeAPI: writeAPI,
	}, nil
}

func (r *influxDBRecorder) RecordPlan(ctx context.Context, record PlanRecord) error {
	plannedAt := record.PlannedAt
	if plannedAt.IsZero() {
		plannedAt = time.Now().UTC()
	}

	point := influxdb2.NewPoint(
		"reminder_plan",
		map[string]string{
			"category": record.Category,
		},
		map[string]any{
			"scheduled_count": record.ScheduledCount,
			"cancelled_count": record.CancelledCount,
			"skipped_count":   record.SkippedCount,
			"failed_count":    record.FailedCount,
		},
		plannedAt,
	)

	return r.writeAPI.WritePoint(ctx, point)
}

func (r *influxDBRecorder) Close() error {
	r.client.Close()
	return nil
}
