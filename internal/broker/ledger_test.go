package broker

import (
	"errors"
	"sync"
	"testing"

	"resource_broker/internal/core"
	apperrors "resource_broker/pkg/errors"
)

type noopLogger struct{}

func (l *noopLogger) Debug(msg string, fields ...interface{})               {}
func (l *noopLogger) Info(msg string, fields ...interface{})                {}
func (l *noopLogger) Warn(msg string, fields ...interface{})                {}
func (l *noopLogger) Error(msg string, fields ...interface{})               {}
func (l *noopLogger) Fatal(msg string, fields ...interface{})               {}
func (l *noopLogger) WithField(key string, value interface{}) core.ILogger  { return l }
func (l *noopLogger) WithFields(fields map[string]interface{}) core.ILogger { return l }

func testProducer(clientID, resourceID string) *ProducerSession {
	return NewProducerSession(clientID, resourceID, &noopLogger{})
}

func testConsumer(t *testing.T, consumerID, resourceID string, maxRate, currentBuffer, bufferLimit uint32) *ConsumerSession {
	t.Helper()
	params, err := ValidateConsumerParams(consumerID, resourceID, maxRate, currentBuffer, bufferLimit)
	if err != nil {
		t.Fatalf("ValidateConsumerParams failed: %v", err)
	}
	return NewConsumerSession(params, 16, &noopLogger{})
}

func TestLedgerPoolAccounting(t *testing.T) {
	l := NewLedger(&noopLogger{})

	if err := l.AddToPool("water", 40); err != nil {
		t.Fatalf("AddToPool failed: %v", err)
	}
	if got := l.Pool("water"); got != 40 {
		t.Errorf("Pool() = %d, want 40", got)
	}

	if got := l.DrainFromPool("water", 30); got != 30 {
		t.Errorf("DrainFromPool(30) = %d, want 30", got)
	}
	if got := l.Pool("water"); got != 10 {
		t.Errorf("Pool() = %d, want 10", got)
	}

	// Drain beyond the pool is clamped, never negative
	if got := l.DrainFromPool("water", 100); got != 10 {
		t.Errorf("DrainFromPool(100) = %d, want 10", got)
	}
	if got := l.Pool("water"); got != 0 {
		t.Errorf("Pool() = %d, want 0", got)
	}
	if got := l.DrainFromPool("water", 5); got != 0 {
		t.Errorf("DrainFromPool on empty pool = %d, want 0", got)
	}
}

func TestLedgerAddToPoolRejectsNegative(t *testing.T) {
	l := NewLedger(&noopLogger{})
	err := l.AddToPool("water", -1)
	if !errors.Is(err, apperrors.ErrInvalidAmount) {
		t.Errorf("AddToPool(-1) error = %v, want ErrInvalidAmount", err)
	}
	if got := l.Pool("water"); got != 0 {
		t.Errorf("Pool() after rejected add = %d, want 0", got)
	}
}

func TestLedgerZeroAmountIsNoop(t *testing.T) {
	l := NewLedger(&noopLogger{})
	if err := l.AddToPool("water", 0); err != nil {
		t.Errorf("AddToPool(0) = %v, want nil", err)
	}
	if got := l.DrainFromPool("water", 0); got != 0 {
		t.Errorf("DrainFromPool(0) = %d, want 0", got)
	}
}

func TestLedgerProducerRegistrationIdempotent(t *testing.T) {
	l := NewLedger(&noopLogger{})
	p := testProducer("p1", "water")

	l.RegisterProducer("water", p)
	l.RegisterProducer("water", p)

	rs := l.state("water")
	rs.mu.Lock()
	count := len(rs.producers)
	rs.mu.Unlock()
	if count != 1 {
		t.Errorf("producer registered %d times, want 1", count)
	}

	// Unregistering twice is a no-op, never an error
	l.UnregisterProducer("water", p)
	l.UnregisterProducer("water", p)

	rs.mu.Lock()
	count = len(rs.producers)
	rs.mu.Unlock()
	if count != 0 {
		t.Errorf("producers after unregister = %d, want 0", count)
	}
}

func TestLedgerMultipleProducersSameResource(t *testing.T) {
	l := NewLedger(&noopLogger{})
	p1 := testProducer("p1", "water")
	p2 := testProducer("p2", "water")

	l.RegisterProducer("water", p1)
	l.RegisterProducer("water", p2)

	rs := l.state("water")
	rs.mu.Lock()
	defer rs.mu.Unlock()
	if len(rs.producers) != 2 {
		t.Fatalf("producers = %d, want 2", len(rs.producers))
	}
	if rs.producers[0] != p1 || rs.producers[1] != p2 {
		t.Error("producers not in registration order")
	}
}

func TestLedgerConsumerRegistrationOrder(t *testing.T) {
	l := NewLedger(&noopLogger{})
	c1 := testConsumer(t, "c1", "water", 60, 0, 30)
	c2 := testConsumer(t, "c2", "water", 60, 0, 30)

	l.RegisterConsumer("water", c1)
	l.RegisterConsumer("water", c2)

	rs := l.state("water")
	rs.mu.Lock()
	if len(rs.consumers) != 2 || rs.consumers[0] != c1 || rs.consumers[1] != c2 {
		t.Error("consumers not in registration order")
	}
	rs.mu.Unlock()

	l.UnregisterConsumer("water", c1)
	l.UnregisterConsumer("water", c1)

	rs.mu.Lock()
	if len(rs.consumers) != 1 || rs.consumers[0] != c2 {
		t.Error("unregister removed wrong consumer")
	}
	rs.mu.Unlock()
}

func TestLedgerPoolNeverNegativeConcurrent(t *testing.T) {
	l := NewLedger(&noopLogger{})
	const workers = 8

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 200; j++ {
				_ = l.AddToPool("water", 3)
				l.DrainFromPool("water", 5)
				if got := l.Pool("water"); got < 0 {
					t.Errorf("pool went negative: %d", got)
					return
				}
			}
		}()
	}
	wg.Wait()

	if got := l.Pool("water"); got < 0 {
		t.Errorf("final pool negative: %d", got)
	}
}

func TestLedgerResourceIsolation(t *testing.T) {
	l := NewLedger(&noopLogger{})
	_ = l.AddToPool("water", 10)
	_ = l.AddToPool("ore", 20)

	if got := l.DrainFromPool("water", 100); got != 10 {
		t.Errorf("water drain = %d, want 10", got)
	}
	if got := l.Pool("ore"); got != 20 {
		t.Errorf("ore pool affected by water drain: %d", got)
	}
}
