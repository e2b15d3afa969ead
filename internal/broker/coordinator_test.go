package broker

import (
	"sync"
	"testing"
	"time"
)

// recordingSink captures published events for assertions
type recordingSink struct {
	mu     sync.Mutex
	events []string
}

func (r *recordingSink) Publish(eventType string, data interface{}) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, eventType)
}

func (r *recordingSink) count(eventType string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, e := range r.events {
		if e == eventType {
			n++
		}
	}
	return n
}

// newTestCoordinator builds a ledger and an inline coordinator (no worker
// pool, pokes evaluate synchronously).
func newTestCoordinator() (*Ledger, *Coordinator, *recordingSink) {
	l := NewLedger(&noopLogger{})
	sink := &recordingSink{}
	return l, NewCoordinator(l, nil, sink, &noopLogger{}), sink
}

func drainDeliveries(c *ConsumerSession) int64 {
	var total int64
	for {
		select {
		case n := <-c.Deliveries():
			total += int64(n)
		default:
			return total
		}
	}
}

// Demand-pull: with an active consumer but no producer nothing happens;
// once a producer offers, exactly one production request fires.
func TestCoordinatorDemandPull(t *testing.T) {
	l, coord, _ := newTestCoordinator()

	c := testConsumer(t, "c1", "water", 60, 0, 30)
	l.RegisterConsumer("water", c)
	coord.Evaluate("water")

	p := testProducer("p1", "water")
	if got := p.State(); got != ProducerOffered {
		t.Fatalf("producer state = %v, want offered", got)
	}

	l.RegisterProducer("water", p)
	coord.Evaluate("water")

	if got := p.State(); got != ProducerRequested {
		t.Errorf("producer state = %v, want requested after demand", got)
	}
	select {
	case <-p.Requests():
	default:
		t.Fatal("no production request signal queued")
	}

	// A second pass does not duplicate the request
	coord.Evaluate("water")
	select {
	case <-p.Requests():
		t.Error("duplicate production request")
	default:
	}
}

// No request fires when no consumer has headroom
func TestCoordinatorNoRequestWithoutDemand(t *testing.T) {
	l, coord, _ := newTestCoordinator()

	p := testProducer("p1", "water")
	l.RegisterProducer("water", p)
	coord.Evaluate("water")

	if got := p.State(); got != ProducerOffered {
		t.Errorf("producer state = %v, want offered (no demand)", got)
	}
}

// Oversupply: 40 produced units against 30 of headroom delivers 30,
// retains 10 and aborts the producing stream.
func TestCoordinatorOversupplyAbortsProducer(t *testing.T) {
	l, coord, _ := newTestCoordinator()

	c := testConsumer(t, "c1", "water", 60, 0, 30)
	l.RegisterConsumer("water", c)

	p := testProducer("p1", "water")
	l.RegisterProducer("water", p)
	coord.Evaluate("water")
	<-p.Requests()

	abort, err := p.BeginProduce()
	if err != nil {
		t.Fatalf("BeginProduce failed: %v", err)
	}

	if err := l.AddToPool("water", 40); err != nil {
		t.Fatalf("AddToPool failed: %v", err)
	}
	coord.Evaluate("water")

	if got := drainDeliveries(c); got != 30 {
		t.Errorf("delivered %d units, want 30", got)
	}
	if got := l.Pool("water"); got != 10 {
		t.Errorf("retained pool = %d, want 10", got)
	}
	select {
	case <-abort:
	default:
		t.Fatal("producing stream not aborted with demand covered")
	}
}

// FIFO fairness: the earlier-registered consumer is served first when the
// pool covers only one.
func TestCoordinatorFIFOAllocation(t *testing.T) {
	l, coord, _ := newTestCoordinator()

	c1 := testConsumer(t, "c1", "water", 60, 0, 30)
	c2 := testConsumer(t, "c2", "water", 60, 0, 30)
	l.RegisterConsumer("water", c1)
	l.RegisterConsumer("water", c2)

	if err := l.AddToPool("water", 20); err != nil {
		t.Fatalf("AddToPool failed: %v", err)
	}
	coord.Evaluate("water")

	if got := drainDeliveries(c1); got != 20 {
		t.Errorf("first-registered consumer got %d, want 20", got)
	}
	if got := drainDeliveries(c2); got != 0 {
		t.Errorf("second consumer got %d, want 0", got)
	}
}

// A partial pool splits across consumers in one pass once the first
// consumer's headroom is filled.
func TestCoordinatorAllocationSplits(t *testing.T) {
	l, coord, _ := newTestCoordinator()

	c1 := testConsumer(t, "c1", "water", 60, 0, 10)
	c2 := testConsumer(t, "c2", "water", 60, 0, 30)
	l.RegisterConsumer("water", c1)
	l.RegisterConsumer("water", c2)

	if err := l.AddToPool("water", 25); err != nil {
		t.Fatalf("AddToPool failed: %v", err)
	}
	coord.Evaluate("water")

	if got := drainDeliveries(c1); got != 10 {
		t.Errorf("c1 got %d, want 10", got)
	}
	if got := drainDeliveries(c2); got != 15 {
		t.Errorf("c2 got %d, want 15", got)
	}
	if got := l.Pool("water"); got != 0 {
		t.Errorf("pool = %d, want 0", got)
	}
}

// Sole consumer cancels: demand vanishes and any producing stream stops
func TestCoordinatorConsumerCancelStopsProducer(t *testing.T) {
	l, coord, _ := newTestCoordinator()

	c := testConsumer(t, "c1", "water", 60, 0, 30)
	l.RegisterConsumer("water", c)

	p := testProducer("p1", "water")
	l.RegisterProducer("water", p)
	coord.Evaluate("water")
	<-p.Requests()
	abort, err := p.BeginProduce()
	if err != nil {
		t.Fatalf("BeginProduce failed: %v", err)
	}

	c.MarkExhausted()
	l.UnregisterConsumer("water", c)
	coord.Evaluate("water")

	select {
	case <-abort:
	default:
		t.Fatal("producer not stopped after sole consumer cancelled")
	}
}

// Exhausted producers become eligible again once headroom reappears
func TestCoordinatorReactivatesExhaustedProducer(t *testing.T) {
	l, coord, _ := newTestCoordinator()

	p := testProducer("p1", "water")
	l.RegisterProducer("water", p)
	if _, err := p.BeginProduce(); err != nil {
		t.Fatalf("BeginProduce failed: %v", err)
	}
	p.EndProduce(true)
	if got := p.State(); got != ProducerExhausted {
		t.Fatalf("state = %v, want exhausted", got)
	}

	c := testConsumer(t, "c1", "water", 60, 0, 30)
	l.RegisterConsumer("water", c)
	coord.Evaluate("water")

	if got := p.State(); got != ProducerRequested {
		t.Errorf("state = %v, want requested after demand reappeared", got)
	}
}

// Round-robin: successive production requests spread across producers
func TestCoordinatorRoundRobinSelection(t *testing.T) {
	l, coord, _ := newTestCoordinator()

	p1 := testProducer("p1", "water")
	p2 := testProducer("p2", "water")
	l.RegisterProducer("water", p1)
	l.RegisterProducer("water", p2)

	c := testConsumer(t, "c1", "water", 60, 0, 30)
	l.RegisterConsumer("water", c)

	coord.Evaluate("water")
	if p1.State() != ProducerRequested {
		t.Fatalf("first request went to %v/%v, want p1", p1.State(), p2.State())
	}

	// p1 finished a stream; next request must go to p2
	<-p1.Requests()
	if _, err := p1.BeginProduce(); err != nil {
		t.Fatal(err)
	}
	p1.EndProduce(false)

	coord.Evaluate("water")
	if p2.State() != ProducerRequested {
		t.Errorf("second request went to %v/%v, want p2", p1.State(), p2.State())
	}
}

// A panicking pass is contained to its resource id and state recovers
func TestCoordinatorPanicContained(t *testing.T) {
	l, coord, _ := newTestCoordinator()

	c := testConsumer(t, "c1", "water", 60, 0, 30)
	l.RegisterConsumer("water", c)
	// Force an inconsistent pool the pass recovery must clamp
	rs := l.state("water")
	rs.mu.Lock()
	rs.pool = -5
	rs.mu.Unlock()

	coord.resyncAfterFault("water")

	if got := l.Pool("water"); got != 0 {
		t.Errorf("pool after resync = %d, want 0", got)
	}
}

// A consumer that saturates exactly as the pool drains to zero still gets
// a wakeup parked; once its fill decays, production is requested again.
func TestCoordinatorParksWakeupWithEmptyPool(t *testing.T) {
	l, coord, _ := newTestCoordinator()

	c, clk := clockedConsumer(t, 60, 0, 30)
	l.RegisterConsumer("water", c)
	p := testProducer("p1", "water")
	l.RegisterProducer("water", p)

	coord.Evaluate("water")
	<-p.Requests()
	abort, err := p.BeginProduce()
	if err != nil {
		t.Fatalf("BeginProduce failed: %v", err)
	}

	// Exactly the headroom arrives: the pool empties and the consumer
	// saturates in the same pass.
	if err := l.AddToPool("water", 30); err != nil {
		t.Fatal(err)
	}
	coord.Evaluate("water")

	if got := drainDeliveries(c); got != 30 {
		t.Fatalf("delivered %d units, want 30", got)
	}
	if got := l.Pool("water"); got != 0 {
		t.Fatalf("pool = %d, want 0", got)
	}
	select {
	case <-abort:
	default:
		t.Fatal("producing stream not aborted with demand covered")
	}
	p.EndProduce(true)

	rs := l.state("water")
	rs.mu.Lock()
	parked := rs.parkTimer != nil
	rs.mu.Unlock()
	if !parked {
		t.Fatal("no wakeup parked for the saturated consumer with an empty pool")
	}

	// Fill decays, headroom reopens; the woken pass must request
	// production from the exhausted producer again.
	clk.advance(2 * time.Second)
	coord.Evaluate("water")

	if got := p.State(); got != ProducerRequested {
		t.Errorf("producer state = %v, want requested after headroom reopened", got)
	}
}

// Events are published for allocations and production requests
func TestCoordinatorPublishesEvents(t *testing.T) {
	l, coord, sink := newTestCoordinator()

	c := testConsumer(t, "c1", "water", 60, 0, 30)
	l.RegisterConsumer("water", c)
	p := testProducer("p1", "water")
	l.RegisterProducer("water", p)

	if err := l.AddToPool("water", 10); err != nil {
		t.Fatal(err)
	}
	coord.Evaluate("water")

	if sink.count("allocation") == 0 {
		t.Error("no allocation event published")
	}
	if sink.count("production_request") == 0 {
		t.Error("no production_request event published")
	}
}
