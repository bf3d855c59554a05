package ecs

import (
	"testing"

	"github.com/blipjoy/blitter"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

func TestNewDonburiListener(t *testing.T) {
	world := donburi.NewWorld()
	listener := NewDonburiListener(world)
	if listener == nil {
		t.Fatal("NewDonburiListener returned nil")
	}
}

func TestDonburiListener_PlacementRemoved(t *testing.T) {
	world := donburi.NewWorld()
	listener := NewDonburiListener(world)

	var received []blitter.RemovalEvent
	RemovalEventType.Subscribe(world, func(w donburi.World, e blitter.RemovalEvent) {
		received = append(received, e)
	})

	listener.PlacementRemoved(7)
	listener.PlacementRemoved(42)

	// Events are queued until processed.
	RemovalEventType.ProcessEvents(world)

	if len(received) != 2 {
		t.Fatalf("expected 2 events, got %d", len(received))
	}
	if received[0].ID != 7 || received[1].ID != 42 {
		t.Errorf("event IDs = %d, %d; want 7, 42", received[0].ID, received[1].ID)
	}
}

func TestDonburiListener_MultipleSubscribers(t *testing.T) {
	world := donburi.NewWorld()
	listener := NewDonburiListener(world)

	var count1, count2 int
	RemovalEventType.Subscribe(world, func(w donburi.World, e blitter.RemovalEvent) {
		count1++
	})
	RemovalEventType.Subscribe(world, func(w donburi.World, e blitter.RemovalEvent) {
		count2++
	})

	listener.PlacementRemoved(1)
	events.ProcessAllEvents(world)

	if count1 != 1 || count2 != 1 {
		t.Errorf("expected both subscribers called once, got %d and %d", count1, count2)
	}
}
