package broker

import (
	"sync"

	"resource_broker/internal/core"
	apperrors "resource_broker/pkg/errors"
)

// ProducerState is the lifecycle state of a production offer
type ProducerState int32

const (
	// ProducerOffered means the offer stream is open and no production has
	// been requested yet.
	ProducerOffered ProducerState = iota
	// ProducerRequested means a ProductionRequest was pushed and no data
	// stream has arrived yet.
	ProducerRequested
	// ProducerProducing means a Produce data stream is active.
	ProducerProducing
	// ProducerStopped means the last data stream ended normally; the
	// producer stays registered and may be requested again.
	ProducerStopped
	// ProducerExhausted means the last data stream was aborted for
	// backpressure; the producer is not requested again until demand
	// reappears.
	ProducerExhausted
)

func (s ProducerState) String() string {
	switch s {
	case ProducerOffered:
		return "offered"
	case ProducerRequested:
		return "requested"
	case ProducerProducing:
		return "producing"
	case ProducerStopped:
		return "stopped"
	case ProducerExhausted:
		return "exhausted"
	default:
		return "unknown"
	}
}

// ProducerSession is the per-offer state machine. The offer stream handler
// owns the session; the coordinator reaches it only through SignalRequest
// and Abort, which never block.
type ProducerSession struct {
	clientID   string
	resourceID string
	logger     core.ILogger

	mu        sync.Mutex
	state     ProducerState
	closed    bool
	producing bool

	// requestCh carries "start producing" signals toward the offer stream
	// handler. Depth 1: a signal already pending makes further sends
	// redundant.
	requestCh chan struct{}

	// abortCh belongs to the currently active Produce stream, nil otherwise
	abortCh chan struct{}
}

// NewProducerSession creates a session in the Offered state
func NewProducerSession(clientID, resourceID string, logger core.ILogger) *ProducerSession {
	return &ProducerSession{
		clientID:   clientID,
		resourceID: resourceID,
		state:      ProducerOffered,
		requestCh:  make(chan struct{}, 1),
		logger: logger.WithFields(map[string]interface{}{
			"component":   "producer_session",
			"client_id":   clientID,
			"resource_id": resourceID,
		}),
	}
}

// ClientID returns the producer's caller identity
func (p *ProducerSession) ClientID() string { return p.clientID }

// ResourceID returns the offered resource id
func (p *ProducerSession) ResourceID() string { return p.resourceID }

// State returns the current lifecycle state
func (p *ProducerSession) State() ProducerState {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state
}

// Requests exposes the channel the offer stream handler drains to push
// ProductionRequest messages to the client.
func (p *ProducerSession) Requests() <-chan struct{} {
	return p.requestCh
}

// SignalRequest asks the producer to start producing. It only fires from
// Offered or Stopped and never blocks; returns whether a signal was sent.
func (p *ProducerSession) SignalRequest() bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed || (p.state != ProducerOffered && p.state != ProducerStopped) {
		return false
	}
	select {
	case p.requestCh <- struct{}{}:
		p.state = ProducerRequested
		p.logger.Debug("Production requested")
		return true
	default:
		// A pending signal the handler has not drained yet
		return false
	}
}

// Reactivate flips an Exhausted producer back to Stopped so it becomes
// eligible for the next production request.
func (p *ProducerSession) Reactivate() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.state == ProducerExhausted && !p.producing {
		p.state = ProducerStopped
	}
}

// BeginProduce marks the start of a Produce data stream and returns the
// abort channel the stream handler must watch. At most one data stream is
// accepted per session at a time.
func (p *ProducerSession) BeginProduce() (<-chan struct{}, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return nil, apperrors.ErrSessionClosed
	}
	if p.producing {
		return nil, apperrors.ErrAlreadyProducing
	}
	p.producing = true
	p.state = ProducerProducing
	p.abortCh = make(chan struct{}, 1)
	return p.abortCh, nil
}

// EndProduce marks the end of the active data stream. An exhausted end
// parks the producer until demand reappears; a normal end leaves it
// eligible for the next request.
func (p *ProducerSession) EndProduce(exhausted bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.producing {
		return
	}
	p.producing = false
	p.abortCh = nil
	if exhausted {
		p.state = ProducerExhausted
	} else {
		p.state = ProducerStopped
	}
}

// Abort signals the active Produce stream to stop for backpressure.
// No-op when no data stream is active; never blocks.
func (p *ProducerSession) Abort() bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.producing || p.abortCh == nil {
		return false
	}
	select {
	case p.abortCh <- struct{}{}:
		return true
	default:
		return false
	}
}

// Close marks the offer stream as gone. The session must be unregistered
// from the ledger by the caller.
func (p *ProducerSession) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.closed = true
	p.state = ProducerStopped
}

// Closed reports whether the offer stream has ended
func (p *ProducerSession) Closed() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.closed
}
