package telemetry

import (
	"context"
	"sync"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Metric names
const (
	MetricUnitsProducedTotal      = "broker_units_produced_total"
	MetricUnitsDeliveredTotal     = "broker_units_delivered_total"
	MetricProductionRequestsTotal = "broker_production_requests_total"
	MetricExhaustionAbortsTotal   = "broker_exhaustion_aborts_total"
	MetricConsumersRejectedTotal  = "broker_consumers_rejected_total"
	MetricPoolSize                = "broker_pool_size"
	MetricProducersActive         = "broker_producers_active"
	MetricConsumersActive         = "broker_consumers_active"
	MetricAllocationBatchSize     = "broker_allocation_batch_size"
)

// MetricsHolder holds initialized instruments
type MetricsHolder struct {
	UnitsProducedTotal      metric.Int64Counter
	UnitsDeliveredTotal     metric.Int64Counter
	ProductionRequestsTotal metric.Int64Counter
	ExhaustionAbortsTotal   metric.Int64Counter
	ConsumersRejectedTotal  metric.Int64Counter
	PoolSize                metric.Int64ObservableGauge
	ProducersActive         metric.Int64ObservableGauge
	ConsumersActive         metric.Int64ObservableGauge
	AllocationBatchSize     metric.Int64Histogram

	// State for observable gauges
	mu           sync.RWMutex
	poolSizeMap  map[string]int64
	producersMap map[string]int64
	consumersMap map[string]int64
}

var (
	globalMetrics *MetricsHolder
	initOnce      sync.Once
)

// GetGlobalMetrics returns the singleton metrics holder
func GetGlobalMetrics() *MetricsHolder {
	initOnce.Do(func() {
		globalMetrics = &MetricsHolder{
			poolSizeMap:  make(map[string]int64),
			producersMap: make(map[string]int64),
			consumersMap: make(map[string]int64),
		}
		// Initialization of instruments happens in InitMetrics
	})
	return globalMetrics
}

// InitMetrics initializes instruments using the meter
func (m *MetricsHolder) InitMetrics(meter metric.Meter) error {
	var err error

	m.UnitsProducedTotal, err = meter.Int64Counter(MetricUnitsProducedTotal, metric.WithDescription("Total resource units received from producers"))
	if err != nil {
		return err
	}

	m.UnitsDeliveredTotal, err = meter.Int64Counter(MetricUnitsDeliveredTotal, metric.WithDescription("Total resource units delivered to consumers"))
	if err != nil {
		return err
	}

	m.ProductionRequestsTotal, err = meter.Int64Counter(MetricProductionRequestsTotal, metric.WithDescription("Total production requests pushed to producers"))
	if err != nil {
		return err
	}

	m.ExhaustionAbortsTotal, err = meter.Int64Counter(MetricExhaustionAbortsTotal, metric.WithDescription("Total produce streams aborted with RESOURCE_EXHAUSTED"))
	if err != nil {
		return err
	}

	m.ConsumersRejectedTotal, err = meter.Int64Counter(MetricConsumersRejectedTotal, metric.WithDescription("Total consumption requests rejected at open"))
	if err != nil {
		return err
	}

	m.AllocationBatchSize, err = meter.Int64Histogram(MetricAllocationBatchSize, metric.WithDescription("Units granted to one consumer in one allocation pass"))
	if err != nil {
		return err
	}

	// Observables
	m.PoolSize, err = meter.Int64ObservableGauge(MetricPoolSize, metric.WithDescription("Produced-but-undelivered units per resource"),
		metric.WithInt64Callback(func(ctx context.Context, obs metric.Int64Observer) error {
			m.mu.RLock()
			defer m.mu.RUnlock()
			for res, val := range m.poolSizeMap {
				obs.Observe(val, metric.WithAttributes(attribute.String("resource_id", res)))
			}
			return nil
		}))
	if err != nil {
		return err
	}

	m.ProducersActive, err = meter.Int64ObservableGauge(MetricProducersActive, metric.WithDescription("Registered producers per resource"),
		metric.WithInt64Callback(func(ctx context.Context, obs metric.Int64Observer) error {
			m.mu.RLock()
			defer m.mu.RUnlock()
			for res, val := range m.producersMap {
				obs.Observe(val, metric.WithAttributes(attribute.String("resource_id", res)))
			}
			return nil
		}))
	if err != nil {
		return err
	}

	m.ConsumersActive, err = meter.Int64ObservableGauge(MetricConsumersActive, metric.WithDescription("Active consumers per resource"),
		metric.WithInt64Callback(func(ctx context.Context, obs metric.Int64Observer) error {
			m.mu.RLock()
			defer m.mu.RUnlock()
			for res, val := range m.consumersMap {
				obs.Observe(val, metric.WithAttributes(attribute.String("resource_id", res)))
			}
			return nil
		}))
	if err != nil {
		return err
	}

	return nil
}

// Helpers to update observable state

func (m *MetricsHolder) SetPoolSize(resourceID string, size int64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.poolSizeMap[resourceID] = size
}

func (m *MetricsHolder) SetProducersActive(resourceID string, count int64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.producersMap[resourceID] = count
}

func (m *MetricsHolder) SetConsumersActive(resourceID string, count int64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.consumersMap[resourceID] = count
}

// Counter helpers guard against use before InitMetrics (e.g. in tests)

func (m *MetricsHolder) AddUnitsProduced(ctx context.Context, resourceID string, n int64) {
	if m.UnitsProducedTotal == nil {
		return
	}
	m.UnitsProducedTotal.Add(ctx, n, metric.WithAttributes(attribute.String("resource_id", resourceID)))
}

func (m *MetricsHolder) AddUnitsDelivered(ctx context.Context, resourceID string, n int64) {
	if m.UnitsDeliveredTotal == nil {
		return
	}
	m.UnitsDeliveredTotal.Add(ctx, n, metric.WithAttributes(attribute.String("resource_id", resourceID)))
}

func (m *MetricsHolder) AddProductionRequest(ctx context.Context, resourceID string) {
	if m.ProductionRequestsTotal == nil {
		return
	}
	m.ProductionRequestsTotal.Add(ctx, 1, metric.WithAttributes(attribute.String("resource_id", resourceID)))
}

func (m *MetricsHolder) AddExhaustionAbort(ctx context.Context, resourceID string) {
	if m.ExhaustionAbortsTotal == nil {
		return
	}
	m.ExhaustionAbortsTotal.Add(ctx, 1, metric.WithAttributes(attribute.String("resource_id", resourceID)))
}

func (m *MetricsHolder) AddConsumerRejected(ctx context.Context, resourceID string) {
	if m.ConsumersRejectedTotal == nil {
		return
	}
	m.ConsumersRejectedTotal.Add(ctx, 1, metric.WithAttributes(attribute.String("resource_id", resourceID)))
}

func (m *MetricsHolder) RecordAllocationBatch(ctx context.Context, resourceID string, n int64) {
	if m.AllocationBatchSize == nil {
		return
	}
	m.AllocationBatchSize.Record(ctx, n, metric.WithAttributes(attribute.String("resource_id", resourceID)))
}

// Snapshot getters used by the status endpoint

func (m *MetricsHolder) GetPoolSizes() map[string]int64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make(map[string]int64, len(m.poolSizeMap))
	for k, v := range m.poolSizeMap {
		out[k] = v
	}
	return out
}

func (m *MetricsHolder) GetActiveConsumers() map[string]int64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make(map[string]int64, len(m.consumersMap))
	for k, v := range m.consumersMap {
		out[k] = v
	}
	return out
}
