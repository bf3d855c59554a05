// Package ecs provides ECS adapters for blitter's removal notifications.
//
// The primary adapter is [NewDonburiListener], which bridges placement-removal
// signals (fired when a viewport fade completes) into a [Donburi] world as
// typed events. Subscribe to [RemovalEventType] in your ECS systems to despawn
// the entities that owned the faded placements.
//
// Usage:
//
//	listener := ecs.NewDonburiListener(world)
//	fades.SetRemovalListener(listener)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
