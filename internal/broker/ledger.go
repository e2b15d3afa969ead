// Package broker implements the matching and flow-control engine between
// producer and consumer streams.
package broker

import (
	"sync"

	"resource_broker/internal/core"
	apperrors "resource_broker/pkg/errors"
	"resource_broker/pkg/telemetry"
)

// resourceState is the per-resource bookkeeping unit. All mutations happen
// under its mutex; unrelated resource ids proceed fully in parallel.
type resourceState struct {
	mu sync.Mutex

	id   string
	pool int64

	// producers in registration order, with a round-robin cursor for
	// production request selection.
	producers []*ProducerSession
	rrCursor  int

	// consumers in registration order. Slice order is the allocation order.
	consumers []*ConsumerSession

	// parkTimer wakes the coordinator when a saturated consumer regains
	// headroom. At most one timer per resource id.
	parkTimer *timerHandle
}

// Ledger is the authoritative per-resource registry of producers, consumers
// and the production pool.
type Ledger struct {
	mu        sync.RWMutex
	resources map[string]*resourceState
	logger    core.ILogger
}

// NewLedger creates an empty ledger
func NewLedger(logger core.ILogger) *Ledger {
	return &Ledger{
		resources: make(map[string]*resourceState),
		logger:    logger.WithField("component", "ledger"),
	}
}

// state returns the bookkeeping for a resource id, creating it on first use.
// Resource ids are never garbage collected; the set is expected to be small
// and stable.
func (l *Ledger) state(resourceID string) *resourceState {
	l.mu.RLock()
	rs, ok := l.resources[resourceID]
	l.mu.RUnlock()
	if ok {
		return rs
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	if rs, ok = l.resources[resourceID]; ok {
		return rs
	}
	rs = &resourceState{id: resourceID}
	l.resources[resourceID] = rs
	return rs
}

// ResourceIDs returns a snapshot of all known resource ids
func (l *Ledger) ResourceIDs() []string {
	l.mu.RLock()
	defer l.mu.RUnlock()
	ids := make([]string, 0, len(l.resources))
	for id := range l.resources {
		ids = append(ids, id)
	}
	return ids
}

// RegisterProducer adds a producer to the set eligible for a resource id.
// Registering the same session twice is a no-op. Multiple producers may
// offer the same resource.
func (l *Ledger) RegisterProducer(resourceID string, p *ProducerSession) {
	rs := l.state(resourceID)
	rs.mu.Lock()
	defer rs.mu.Unlock()

	for _, existing := range rs.producers {
		if existing == p {
			return
		}
	}
	rs.producers = append(rs.producers, p)
	telemetry.GetGlobalMetrics().SetProducersActive(resourceID, int64(len(rs.producers)))
	l.logger.Info("Producer registered", "resource_id", resourceID, "client_id", p.ClientID(), "producers", len(rs.producers))
}

// UnregisterProducer removes a producer; no-op if absent
func (l *Ledger) UnregisterProducer(resourceID string, p *ProducerSession) {
	rs := l.state(resourceID)
	rs.mu.Lock()
	defer rs.mu.Unlock()

	for i, existing := range rs.producers {
		if existing == p {
			rs.producers = append(rs.producers[:i], rs.producers[i+1:]...)
			if rs.rrCursor > i {
				rs.rrCursor--
			}
			telemetry.GetGlobalMetrics().SetProducersActive(resourceID, int64(len(rs.producers)))
			l.logger.Info("Producer unregistered", "resource_id", resourceID, "client_id", p.ClientID(), "producers", len(rs.producers))
			return
		}
	}
}

// RegisterConsumer appends a consumer. Slice order is registration order,
// which the coordinator uses for first-registered-first-served allocation.
func (l *Ledger) RegisterConsumer(resourceID string, c *ConsumerSession) {
	rs := l.state(resourceID)
	rs.mu.Lock()
	defer rs.mu.Unlock()

	for _, existing := range rs.consumers {
		if existing == c {
			return
		}
	}
	rs.consumers = append(rs.consumers, c)
	telemetry.GetGlobalMetrics().SetConsumersActive(resourceID, int64(len(rs.consumers)))
	l.logger.Info("Consumer registered", "resource_id", resourceID, "consumer_id", c.ConsumerID(), "consumers", len(rs.consumers))
}

// UnregisterConsumer removes a consumer; no-op if absent
func (l *Ledger) UnregisterConsumer(resourceID string, c *ConsumerSession) {
	rs := l.state(resourceID)
	rs.mu.Lock()
	defer rs.mu.Unlock()

	for i, existing := range rs.consumers {
		if existing == c {
			rs.consumers = append(rs.consumers[:i], rs.consumers[i+1:]...)
			telemetry.GetGlobalMetrics().SetConsumersActive(resourceID, int64(len(rs.consumers)))
			l.logger.Info("Consumer unregistered", "resource_id", resourceID, "consumer_id", c.ConsumerID(), "consumers", len(rs.consumers))
			return
		}
	}
}

// AddToPool increments the available units for a resource id. Amounts must
// be non-negative.
func (l *Ledger) AddToPool(resourceID string, amount int64) error {
	if amount < 0 {
		return apperrors.ErrInvalidAmount
	}
	rs := l.state(resourceID)
	rs.mu.Lock()
	defer rs.mu.Unlock()

	rs.pool += amount
	telemetry.GetGlobalMetrics().SetPoolSize(resourceID, rs.pool)
	return nil
}

// DrainFromPool atomically removes up to amount units and returns the
// actual units removed. The pool never goes negative.
func (l *Ledger) DrainFromPool(resourceID string, amount int64) int64 {
	if amount <= 0 {
		return 0
	}
	rs := l.state(resourceID)
	rs.mu.Lock()
	defer rs.mu.Unlock()

	drained := amount
	if drained > rs.pool {
		drained = rs.pool
	}
	rs.pool -= drained
	telemetry.GetGlobalMetrics().SetPoolSize(resourceID, rs.pool)
	return drained
}

// Pool returns the current pool size for a resource id
func (l *Ledger) Pool(resourceID string) int64 {
	rs := l.state(resourceID)
	rs.mu.Lock()
	defer rs.mu.Unlock()
	return rs.pool
}
