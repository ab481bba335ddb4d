package network

import (
	"sync"
	"testing"

	"github.com/automoto/tundra/shared/messages"
)

func TestDrainKeepsArrivalOrder(t *testing.T) {
	c := NewClient()
	c.Enqueue(messages.EntitySpawn{ID: 1})
	c.Enqueue(messages.EntityUpdate{ID: 1})
	c.Enqueue(messages.EntityRemove{ID: 1})

	got := c.Drain()
	if len(got) != 3 {
		t.Fatalf("drained %d messages, want 3", len(got))
	}
	if _, ok := got[0].(messages.EntitySpawn); !ok {
		t.Errorf("first message = %T, want EntitySpawn", got[0])
	}
	if _, ok := got[2].(messages.EntityRemove); !ok {
		t.Errorf("last message = %T, want EntityRemove", got[2])
	}
	if again := c.Drain(); len(again) != 0 {
		t.Errorf("second drain returned %d messages", len(again))
	}
}

func TestEnqueueFromManyGoroutines(t *testing.T) {
	c := NewClient()
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				c.Enqueue(messages.EntityRemove{ID: 1})
			}
		}()
	}
	wg.Wait()

	if got := len(c.Drain()); got != 800 {
		t.Errorf("drained %d messages, want 800", got)
	}
}

func TestNewClientIsDisconnected(t *testing.T) {
	c := NewClient()
	if c.State() != StateDisconnected {
		t.Errorf("state = %s, want disconnected", c.State())
	}
	if err := c.SendMessage(messages.JoinRequest{}); err == nil {
		t.Error("SendMessage without a connection should fail")
	}
}
