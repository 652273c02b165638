package engine

import "github.com/lixenwraith/nova-fighter/event"

// System is the per-tick simulation unit. Update runs once per tick in
// Priority order (lower first). HandleEvent receives the event types the
// system declared in EventTypes, delivered before Update at tick start
type System interface {
	// Init resets all run-local system state
	Init()

	// Name identifies the system for diagnostics
	Name() string

	// Priority orders Update calls; lower values run first
	Priority() int

	// EventTypes lists the events routed to this system
	EventTypes() []event.EventType

	// HandleEvent processes a routed event
	HandleEvent(ev event.GameEvent)

	// Update advances the system by one tick
	Update()
}
