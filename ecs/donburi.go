package ecs

import (
	"github.com/blipjoy/blitter"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// RemovalEventType is the Donburi event type for placement removals.
// Subscribe to this in your ECS systems to despawn entities whose fades
// have completed.
var RemovalEventType = events.NewEventType[blitter.RemovalEvent]()

type donburiListener struct {
	world donburi.World
}

// NewDonburiListener creates a RemovalListener backed by a Donburi world.
// Removal notifications are published to RemovalEventType and can be consumed
// with events.Subscribe and ProcessEvents.
func NewDonburiListener(world donburi.World) blitter.RemovalListener {
	return &donburiListener{world: world}
}

func (l *donburiListener) PlacementRemoved(id blitter.PlacementID) {
	RemovalEventType.Publish(l.world, blitter.RemovalEvent{ID: id})
}
