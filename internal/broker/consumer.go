package broker

import (
	"fmt"
	"math"
	"sync"
	"time"

	"resource_broker/internal/core"
	apperrors "resource_broker/pkg/errors"
)

// ConsumerState is the lifecycle state of a consumption stream
type ConsumerState int32

const (
	// ConsumerActive means the stream is open and eligible for allocation
	ConsumerActive ConsumerState = iota
	// ConsumerExhausted means the client cancelled deliberately
	ConsumerExhausted
	// ConsumerClosed means the stream ended normally
	ConsumerClosed
)

func (s ConsumerState) String() string {
	switch s {
	case ConsumerActive:
		return "active"
	case ConsumerExhausted:
		return "exhausted"
	case ConsumerClosed:
		return "closed"
	default:
		return "unknown"
	}
}

// deliveryGrant is one allocation inside the rolling rate window
type deliveryGrant struct {
	at     time.Time
	amount int64
}

// rateWindow is the span over which max_rate applies
const rateWindow = time.Minute

// ConsumerParams are the validated fields of a consumption request
type ConsumerParams struct {
	ConsumerID          string
	ResourceID          string
	MaxRate             uint32
	BufferLimit         uint32
	CurrentBufferAmount uint32
}

// ValidateConsumerParams applies defaulting and validation rules to raw
// request fields: max_rate must be positive, buffer_limit defaults to
// max_rate when zero, the starting fill defaults to zero and must not
// exceed the limit.
func ValidateConsumerParams(consumerID, resourceID string, maxRate, currentBuffer, bufferLimit uint32) (ConsumerParams, error) {
	if consumerID == "" {
		return ConsumerParams{}, fmt.Errorf("%w: consumer_id is required", apperrors.ErrInvalidRequest)
	}
	if resourceID == "" {
		return ConsumerParams{}, fmt.Errorf("%w: resource_id is required", apperrors.ErrInvalidRequest)
	}
	if maxRate == 0 {
		return ConsumerParams{}, fmt.Errorf("%w: max_rate must be positive", apperrors.ErrInvalidRequest)
	}
	if bufferLimit == 0 {
		bufferLimit = maxRate
	}
	if bufferLimit < currentBuffer {
		return ConsumerParams{}, fmt.Errorf("%w: buffer_limit %d below current_buffer_amount %d", apperrors.ErrInvalidRequest, bufferLimit, currentBuffer)
	}
	return ConsumerParams{
		ConsumerID:          consumerID,
		ResourceID:          resourceID,
		MaxRate:             maxRate,
		BufferLimit:         bufferLimit,
		CurrentBufferAmount: currentBuffer,
	}, nil
}

// ConsumerSession is the per-consumption-stream state machine. The stream
// handler drains the deliveries channel; the coordinator grants into it
// under the resource lock. Allocation order equals send order.
type ConsumerSession struct {
	params ConsumerParams
	logger core.ILogger

	mu    sync.Mutex
	state ConsumerState

	// estFill is the server-side estimate of the client's buffer fill.
	// It grows with each delivery and decays at max_rate per minute to
	// model client consumption, never below zero.
	estFill   float64
	lastDecay time.Time

	// window holds deliveries inside the rolling rate window; their sum
	// never exceeds max_rate.
	window []deliveryGrant

	deliveries chan uint32

	// now is the clock, replaceable in tests
	now func() time.Time
}

// NewConsumerSession creates an active session from validated parameters
func NewConsumerSession(params ConsumerParams, queueDepth int, logger core.ILogger) *ConsumerSession {
	if queueDepth < 1 {
		queueDepth = 1
	}
	return &ConsumerSession{
		params:     params,
		state:      ConsumerActive,
		estFill:    float64(params.CurrentBufferAmount),
		lastDecay:  time.Now(),
		deliveries: make(chan uint32, queueDepth),
		now:        time.Now,
		logger: logger.WithFields(map[string]interface{}{
			"component":   "consumer_session",
			"consumer_id": params.ConsumerID,
			"resource_id": params.ResourceID,
		}),
	}
}

// ConsumerID returns the client-declared consumer identity
func (c *ConsumerSession) ConsumerID() string { return c.params.ConsumerID }

// ResourceID returns the consumed resource id
func (c *ConsumerSession) ResourceID() string { return c.params.ResourceID }

// MaxRate returns the declared rate limit in units per minute
func (c *ConsumerSession) MaxRate() uint32 { return c.params.MaxRate }

// State returns the current lifecycle state
func (c *ConsumerSession) State() ConsumerState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Deliveries exposes the channel the stream handler drains to send
// ResourceConsumption messages.
func (c *ConsumerSession) Deliveries() <-chan uint32 {
	return c.deliveries
}

// decayLocked advances the fill estimate to now
func (c *ConsumerSession) decayLocked(now time.Time) {
	elapsed := now.Sub(c.lastDecay)
	if elapsed <= 0 {
		return
	}
	c.estFill -= elapsed.Minutes() * float64(c.params.MaxRate)
	if c.estFill < 0 {
		c.estFill = 0
	}
	c.lastDecay = now
}

// pruneWindowLocked drops grants that left the rolling window
func (c *ConsumerSession) pruneWindowLocked(now time.Time) {
	cutoff := now.Add(-rateWindow)
	i := 0
	for i < len(c.window) && !c.window[i].at.After(cutoff) {
		i++
	}
	if i > 0 {
		c.window = append(c.window[:0], c.window[i:]...)
	}
}

// windowSumLocked is the amount delivered inside the current window
func (c *ConsumerSession) windowSumLocked() int64 {
	var sum int64
	for _, g := range c.window {
		sum += g.amount
	}
	return sum
}

// Headroom returns how many units this consumer can absorb right now,
// bounded by both the remaining rate budget and the estimated buffer room.
func (c *ConsumerSession) Headroom() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state != ConsumerActive {
		return 0
	}

	now := c.now()
	c.decayLocked(now)
	c.pruneWindowLocked(now)

	rateBudget := int64(c.params.MaxRate) - c.windowSumLocked()
	bufferRoom := int64(c.params.BufferLimit) - int64(math.Ceil(c.estFill))

	h := rateBudget
	if bufferRoom < h {
		h = bufferRoom
	}
	if h < 0 {
		h = 0
	}
	return h
}

// Grant allocates amount units: the delivery is queued for the stream
// handler and the fill estimate and rate window are charged. Returns false
// without side effects when the delivery queue is full or the session is
// no longer active; the caller must not drain the pool in that case.
func (c *ConsumerSession) Grant(amount int64) bool {
	if amount <= 0 {
		return false
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state != ConsumerActive {
		return false
	}
	select {
	case c.deliveries <- uint32(amount):
	default:
		return false
	}

	now := c.now()
	c.decayLocked(now)
	c.estFill += float64(amount)
	c.window = append(c.window, deliveryGrant{at: now, amount: amount})
	return true
}

// NextHeadroomAt reports when a currently saturated consumer will regain
// headroom: the later of the oldest window entry expiring and the fill
// estimate decaying below the buffer limit. The second return is false
// when the consumer already has headroom or is not active.
func (c *ConsumerSession) NextHeadroomAt() (time.Time, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state != ConsumerActive {
		return time.Time{}, false
	}

	now := c.now()
	c.decayLocked(now)
	c.pruneWindowLocked(now)

	rateBudget := int64(c.params.MaxRate) - c.windowSumLocked()
	bufferRoom := int64(c.params.BufferLimit) - int64(math.Ceil(c.estFill))
	if rateBudget > 0 && bufferRoom > 0 {
		return time.Time{}, false
	}

	at := now
	if rateBudget <= 0 && len(c.window) > 0 {
		if exp := c.window[0].at.Add(rateWindow); exp.After(at) {
			at = exp
		}
	}
	if bufferRoom <= 0 {
		// Time for the estimate to decay one unit below the limit
		excess := c.estFill - float64(c.params.BufferLimit) + 1
		perSecond := float64(c.params.MaxRate) / rateWindow.Seconds()
		if decayAt := now.Add(time.Duration(excess / perSecond * float64(time.Second))); decayAt.After(at) {
			at = decayAt
		}
	}
	return at, true
}

// MarkExhausted records a deliberate client cancellation. Further grants
// are refused.
func (c *ConsumerSession) MarkExhausted() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state == ConsumerActive {
		c.state = ConsumerExhausted
		c.logger.Info("Consumer exhausted")
	}
}

// Close records a normal stream end. Further grants are refused.
func (c *ConsumerSession) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state == ConsumerActive {
		c.state = ConsumerClosed
	}
}

// EstimatedFill returns the current server-side fill estimate
func (c *ConsumerSession) EstimatedFill() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.decayLocked(c.now())
	return c.estFill
}
