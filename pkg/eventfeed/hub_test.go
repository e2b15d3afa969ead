package eventfeed

import (
	"context"
	"fmt"
	"testing"
	"time"

	"resource_broker/internal/core"

	"github.com/stretchr/testify/assert"
)

type noopLogger struct{}

func (l *noopLogger) Debug(msg string, fields ...interface{})               {}
func (l *noopLogger) Info(msg string, fields ...interface{})                {}
func (l *noopLogger) Warn(msg string, fields ...interface{})                {}
func (l *noopLogger) Error(msg string, fields ...interface{})               {}
func (l *noopLogger) Fatal(msg string, fields ...interface{})               {}
func (l *noopLogger) WithField(key string, value interface{}) core.ILogger  { return l }
func (l *noopLogger) WithFields(fields map[string]interface{}) core.ILogger { return l }

func TestHubRegisterUnregister(t *testing.T) {
	hub := NewHub(&noopLogger{})
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go hub.Run(ctx)

	client := NewClient("observer-1")
	hub.Register(client)
	time.Sleep(10 * time.Millisecond)
	assert.Equal(t, 1, hub.ClientCount())

	hub.Unregister(client)
	time.Sleep(10 * time.Millisecond)
	assert.Equal(t, 0, hub.ClientCount())
}

func TestHubBroadcast(t *testing.T) {
	hub := NewHub(&noopLogger{})
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go hub.Run(ctx)

	client := NewClient("observer-1")
	hub.Register(client)
	time.Sleep(10 * time.Millisecond)

	msg := Message{Type: TypeAllocation, Data: map[string]interface{}{"resource_id": "water", "amount": 30}}
	hub.Broadcast(msg)

	select {
	case received := <-client.Messages():
		assert.Equal(t, msg.Type, received.Type)
		assert.Equal(t, msg.Data, received.Data)
	case <-time.After(100 * time.Millisecond):
		t.Fatal("Client did not receive message")
	}
}

func TestHubBroadcastToMultipleClients(t *testing.T) {
	hub := NewHub(&noopLogger{})
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go hub.Run(ctx)

	clients := make([]*Client, 3)
	for i := range clients {
		clients[i] = NewClient(fmt.Sprintf("observer-%d", i))
		hub.Register(clients[i])
	}
	time.Sleep(10 * time.Millisecond)

	hub.Broadcast(Message{Type: TypeProduction, Data: "x"})

	for i, client := range clients {
		select {
		case received := <-client.Messages():
			assert.Equal(t, TypeProduction, received.Type)
		case <-time.After(100 * time.Millisecond):
			t.Fatalf("client %d did not receive message", i)
		}
	}
}

func TestHubSlowClientDropped(t *testing.T) {
	hub := NewHub(&noopLogger{})
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go hub.Run(ctx)

	client := NewClient("slow-observer")
	hub.Register(client)
	time.Sleep(10 * time.Millisecond)

	// Fill the client's queue past capacity without draining it
	for i := 0; i < 300; i++ {
		hub.Broadcast(Message{Type: TypeDelivery, Data: i})
		time.Sleep(time.Millisecond / 10)
	}

	// The slow client eventually gets unregistered
	deadline := time.After(2 * time.Second)
	for hub.ClientCount() > 0 {
		select {
		case <-deadline:
			t.Fatal("slow client never dropped")
		case <-time.After(10 * time.Millisecond):
		}
	}
}

func TestHubShutdownClosesClients(t *testing.T) {
	hub := NewHub(&noopLogger{})
	ctx, cancel := context.WithCancel(context.Background())
	go hub.Run(ctx)

	client := NewClient("observer-1")
	hub.Register(client)
	time.Sleep(10 * time.Millisecond)

	cancel()
	select {
	case _, ok := <-client.Messages():
		assert.False(t, ok, "send channel should be closed")
	case <-time.After(time.Second):
		t.Fatal("client not closed on shutdown")
	}
}

func TestClientSendAfterClose(t *testing.T) {
	client := NewClient("observer-1")
	client.Close()
	assert.False(t, client.Send(Message{Type: TypeDelivery}))
	// Closing twice is safe
	client.Close()
}

func TestFeedPublishImplementsEventSink(t *testing.T) {
	var sink core.IEventSink = NewFeed(testFeedConfig(), &noopLogger{})
	feed := sink.(*Feed)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go feed.Hub().Run(ctx)

	client := NewClient("observer-1")
	feed.Hub().Register(client)
	time.Sleep(10 * time.Millisecond)

	sink.Publish(TypeExhaustion, map[string]interface{}{"resource_id": "water"})

	select {
	case received := <-client.Messages():
		assert.Equal(t, TypeExhaustion, received.Type)
	case <-time.After(100 * time.Millisecond):
		t.Fatal("published event not broadcast")
	}
}
