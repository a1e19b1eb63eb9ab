// Package observability emits business metrics for the work item service.
// Framework auto-instrumentation (otelhttp) covers request latency; the
// metrics here track bulk transition throughput and rejections directly so
// they can feed SLI panels without log scraping.
package observability

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/ghuser/worktrack/services/workitem/domain/models"
)

// MeterName identifies the work item meter in exported metrics.
const MeterName = "worktrack.workitem"

// BulkTransitionMetrics records bulk transition outcomes on the global OTel
// meter provider. It satisfies the application service's TransitionRecorder.
type BulkTransitionMetrics struct {
	batchSize metric.Int64Histogram
	updated   metric.Int64Counter
	rejected  metric.Int64Counter
}

// NewBulkTransitionMetrics registers the bulk transition instruments.
func NewBulkTransitionMetrics() (*BulkTransitionMetrics, error) {
	meter := otel.Meter(MeterName)

	batchSize, err := meter.Int64Histogram(
		"work_items.bulk_transition.batch_size",
		metric.WithUnit("{items}"),
		metric.WithDescription("Number of work items requested in each bulk transition operation."),
	)
	if err != nil {
		return nil, fmt.Errorf("create batch size histogram: %w", err)
	}

	updated, err := meter.Int64Counter(
		"work_items.bulk_transition.updated_count",
		metric.WithUnit("{items}"),
		metric.WithDescription("Number of work items successfully transitioned in bulk operations."),
	)
	if err != nil {
		return nil, fmt.Errorf("create updated counter: %w", err)
	}

	rejected, err := meter.Int64Counter(
		"work_items.bulk_transition.rejected_count",
		metric.WithUnit("{items}"),
		metric.WithDescription("Number of work items rejected in bulk operations."),
	)
	if err != nil {
		return nil, fmt.Errorf("create rejected counter: %w", err)
	}

	return &BulkTransitionMetrics{
		batchSize: batchSize,
		updated:   updated,
		rejected:  rejected,
	}, nil
}

// RecordBulkTransition records one bulk transition outcome tagged by target status.
func (m *BulkTransitionMetrics) RecordBulkTransition(
	ctx context.Context,
	batchSize, updatedCount, rejectedCount int,
	targetStatus models.WorkItemStatus,
) {
	attrs := metric.WithAttributes(attribute.String("target_status", targetStatus.String()))

	m.batchSize.Record(ctx, int64(batchSize), attrs)
	m.updated.Add(ctx, int64(updatedCount), attrs)
	m.rejected.Add(ctx, int64(rejectedCount), attrs)
}
