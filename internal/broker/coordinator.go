package broker

import (
	"context"
	"sync"
	"time"

	"resource_broker/internal/core"
	"resource_broker/pkg/concurrency"
	apperrors "resource_broker/pkg/errors"
	"resource_broker/pkg/telemetry"
)

// timerHandle is a pending coordinator wakeup for one resource id
type timerHandle struct {
	timer *time.Timer
	at    time.Time
}

// Coordinator bridges pooled supply to waiting demand. It runs one
// evaluation pass per resource id on every state change: supply arrival,
// consumer registration or deregistration, producer state change. There is
// no fixed timer; saturated consumers park a wakeup for the moment their
// headroom reopens.
type Coordinator struct {
	ledger *Ledger
	pool   *concurrency.WorkerPool
	events core.IEventSink
	logger core.ILogger

	mu      sync.Mutex
	pending map[string]bool
}

// NewCoordinator creates a coordinator. The worker pool may be nil, in
// which case pokes evaluate inline (used in tests).
func NewCoordinator(ledger *Ledger, pool *concurrency.WorkerPool, events core.IEventSink, logger core.ILogger) *Coordinator {
	return &Coordinator{
		ledger:  ledger,
		pool:    pool,
		events:  events,
		logger:  logger.WithField("component", "coordinator"),
		pending: make(map[string]bool),
	}
}

// publish forwards an event to the sink when one is attached
func (c *Coordinator) publish(eventType string, data interface{}) {
	if c.events != nil {
		c.events.Publish(eventType, data)
	}
}

// Poke schedules an evaluation pass for a resource id on the worker pool.
// Multiple pokes for the same resource id coalesce into one pending pass.
func (c *Coordinator) Poke(resourceID string) {
	if c.pool == nil {
		c.Evaluate(resourceID)
		return
	}

	c.mu.Lock()
	if c.pending[resourceID] {
		c.mu.Unlock()
		return
	}
	c.pending[resourceID] = true
	c.mu.Unlock()

	err := c.pool.Submit(func() {
		c.mu.Lock()
		delete(c.pending, resourceID)
		c.mu.Unlock()
		c.Evaluate(resourceID)
	})
	if err != nil {
		c.mu.Lock()
		delete(c.pending, resourceID)
		c.mu.Unlock()
		c.logger.Warn("Evaluation pass dropped, worker pool full", "resource_id", resourceID, "error", err)
	}
}

// Evaluate runs one pass for a resource id under its lock. A panicking
// pass is contained to this resource id: the pool is clamped and dead
// sessions are dropped so the next pass starts from consistent state.
func (c *Coordinator) Evaluate(resourceID string) {
	rs := c.ledger.state(resourceID)
	rs.mu.Lock()
	defer rs.mu.Unlock()

	defer func() {
		if r := recover(); r != nil {
			c.logger.Error("Evaluation pass failed",
				"resource_id", resourceID,
				"panic", r,
				"error", apperrors.ErrInternalInconsistency)
			c.resyncLocked(rs)
		}
	}()

	c.evaluateLocked(rs)
}

// resyncAfterFault restores invariants for a resource id outside a pass
func (c *Coordinator) resyncAfterFault(resourceID string) {
	rs := c.ledger.state(resourceID)
	rs.mu.Lock()
	defer rs.mu.Unlock()
	c.resyncLocked(rs)
}

// resyncLocked restores per-resource invariants after a failed pass
func (c *Coordinator) resyncLocked(rs *resourceState) {
	if rs.pool < 0 {
		rs.pool = 0
	}
	live := rs.consumers[:0]
	for _, cs := range rs.consumers {
		if cs.State() == ConsumerActive {
			live = append(live, cs)
		}
	}
	rs.consumers = live

	producers := rs.producers[:0]
	for _, p := range rs.producers {
		if !p.Closed() {
			producers = append(producers, p)
		}
	}
	rs.producers = producers
	if rs.rrCursor >= len(rs.producers) {
		rs.rrCursor = 0
	}
	telemetry.GetGlobalMetrics().SetPoolSize(rs.id, rs.pool)
	telemetry.GetGlobalMetrics().SetProducersActive(rs.id, int64(len(rs.producers)))
	telemetry.GetGlobalMetrics().SetConsumersActive(rs.id, int64(len(rs.consumers)))
}

func (c *Coordinator) evaluateLocked(rs *resourceState) {
	metrics := telemetry.GetGlobalMetrics()
	ctx := context.Background()

	// 1. Allocate pooled units first-registered-first-served, each grant
	// capped by the consumer's own rate and buffer headroom.
	for _, cs := range rs.consumers {
		if rs.pool <= 0 {
			break
		}
		h := cs.Headroom()
		if h <= 0 {
			continue
		}
		n := h
		if n > rs.pool {
			n = rs.pool
		}
		if !cs.Grant(n) {
			continue
		}
		rs.pool -= n
		metrics.RecordAllocationBatch(ctx, rs.id, n)
		c.publish("allocation", map[string]interface{}{
			"resource_id": rs.id,
			"consumer_id": cs.ConsumerID(),
			"amount":      n,
			"pool":        rs.pool,
		})
	}
	metrics.SetPoolSize(rs.id, rs.pool)

	// 2. Residual headroom decides the production side
	var headroom int64
	active := 0
	for _, cs := range rs.consumers {
		if cs.State() != ConsumerActive {
			continue
		}
		active++
		headroom += cs.Headroom()
	}

	if headroom > 0 {
		for _, p := range rs.producers {
			p.Reactivate()
		}
		if !c.productionPendingLocked(rs) {
			c.requestProductionLocked(rs)
		}
	} else {
		// Demand is covered (or no consumers remain); stop any active
		// production stream with a backpressure abort.
		for _, p := range rs.producers {
			if p.State() == ProducerProducing && p.Abort() {
				metrics.AddExhaustionAbort(ctx, rs.id)
				c.publish("exhaustion", map[string]interface{}{
					"resource_id": rs.id,
					"client_id":   p.ClientID(),
					"pool":        rs.pool,
				})
			}
		}
	}

	// 3. Saturated consumers with any potential supply, pooled or offered,
	// park a wakeup for the moment headroom reopens. Without it nothing
	// triggers another pass once the fill estimate decays.
	if headroom == 0 && active > 0 && (rs.pool > 0 || len(rs.producers) > 0) {
		c.parkLocked(rs)
	}
}

// productionPendingLocked reports whether production is already requested
// or flowing for this resource id.
func (c *Coordinator) productionPendingLocked(rs *resourceState) bool {
	for _, p := range rs.producers {
		switch p.State() {
		case ProducerRequested, ProducerProducing:
			return true
		}
	}
	return false
}

// requestProductionLocked signals one eligible producer, chosen round-robin
// to spread load across producers of the same resource.
func (c *Coordinator) requestProductionLocked(rs *resourceState) {
	n := len(rs.producers)
	if n == 0 {
		return
	}
	for i := 0; i < n; i++ {
		idx := (rs.rrCursor + i) % n
		p := rs.producers[idx]
		if p.SignalRequest() {
			rs.rrCursor = (idx + 1) % n
			telemetry.GetGlobalMetrics().AddProductionRequest(context.Background(), rs.id)
			c.publish("production_request", map[string]interface{}{
				"resource_id": rs.id,
				"client_id":   p.ClientID(),
			})
			return
		}
	}
}

// parkLocked arms (or advances) the per-resource wakeup timer to the
// earliest instant any saturated consumer regains headroom.
func (c *Coordinator) parkLocked(rs *resourceState) {
	var earliest time.Time
	for _, cs := range rs.consumers {
		at, ok := cs.NextHeadroomAt()
		if !ok {
			continue
		}
		if earliest.IsZero() || at.Before(earliest) {
			earliest = at
		}
	}
	if earliest.IsZero() {
		return
	}

	if rs.parkTimer != nil {
		if !rs.parkTimer.at.After(earliest) {
			return
		}
		rs.parkTimer.timer.Stop()
	}

	resourceID := rs.id
	d := time.Until(earliest)
	if d < 0 {
		d = 0
	}
	rs.parkTimer = &timerHandle{
		at: earliest,
		timer: time.AfterFunc(d, func() {
			rsInner := c.ledger.state(resourceID)
			rsInner.mu.Lock()
			rsInner.parkTimer = nil
			rsInner.mu.Unlock()
			c.Poke(resourceID)
		}),
	}
}
