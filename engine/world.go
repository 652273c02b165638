package engine

import (
	"sync"

	"github.com/lixenwraith/nova-fighter/component"
	"github.com/lixenwraith/nova-fighter/core"
	"github.com/lixenwraith/nova-fighter/event"
)

// Components groups the typed stores, one per entity population concern
type Components struct {
	Position *Store[component.Position]
	Health   *Store[component.Health]
	Player   *Store[component.Player]
	Enemy    *Store[component.Enemy]
	Bullet   *Store[component.Bullet]
	PowerUp  *Store[component.PowerUp]
	Particle *Store[component.Particle]
	Buff     *Store[component.Buff]
	Death    *Store[component.Death]
}

// World contains all entities and their components using typed stores
type World struct {
	mu           sync.Mutex
	nextEntityID core.Entity

	Components Components
	Resources  *Resources

	systems []System

	// Direct pointers for the PushEvent hot path
	eventQueue  *event.Queue
	frameSource *int64
}

// NewWorld creates a new ECS world
func NewWorld() *World {
	return &World{
		nextEntityID: 1,
		Components: Components{
			Position: NewStore[component.Position](),
			Health:   NewStore[component.Health](),
			Player:   NewStore[component.Player](),
			Enemy:    NewStore[component.Enemy](),
			Bullet:   NewStore[component.Bullet](),
			PowerUp:  NewStore[component.PowerUp](),
			Particle: NewStore[component.Particle](),
			Buff:     NewStore[component.Buff](),
			Death:    NewStore[component.Death](),
		},
		Resources: &Resources{},
		systems:   make([]System, 0),
	}
}

// CreateEntity reserves a new entity ID
func (w *World) CreateEntity() core.Entity {
	w.mu.Lock()
	defer w.mu.Unlock()

	id := w.nextEntityID
	w.nextEntityID++
	return id
}

// DestroyEntity removes all components associated with an entity
func (w *World) DestroyEntity(e core.Entity) {
	c := &w.Components
	c.Position.Remove(e)
	c.Health.Remove(e)
	c.Player.Remove(e)
	c.Enemy.Remove(e)
	c.Bullet.Remove(e)
	c.PowerUp.Remove(e)
	c.Particle.Remove(e)
	c.Buff.Remove(e)
	c.Death.Remove(e)
}

// Clear removes all entities and components from the world
func (w *World) Clear() {
	w.mu.Lock()
	w.nextEntityID = 1
	w.mu.Unlock()

	c := &w.Components
	c.Position.Clear()
	c.Health.Clear()
	c.Player.Clear()
	c.Enemy.Clear()
	c.Bullet.Clear()
	c.PowerUp.Clear()
	c.Particle.Clear()
	c.Buff.Clear()
	c.Death.Clear()
}

// AddSystem adds a system to the world and sorts by priority
func (w *World) AddSystem(system System) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.systems = append(w.systems, system)

	// Sort by priority (bubble sort, small N)
	for i := 0; i < len(w.systems)-1; i++ {
		for j := 0; j < len(w.systems)-i-1; j++ {
			if w.systems[j].Priority() > w.systems[j+1].Priority() {
				w.systems[j], w.systems[j+1] = w.systems[j+1], w.systems[j]
			}
		}
	}
}

// Systems returns a copy of all registered systems
func (w *World) Systems() []System {
	w.mu.Lock()
	defer w.mu.Unlock()
	result := make([]System, len(w.systems))
	copy(result, w.systems)
	return result
}

// Update runs all systems in priority order
func (w *World) Update() {
	w.mu.Lock()
	systems := make([]System, len(w.systems))
	copy(systems, w.systems)
	w.mu.Unlock()

	for _, system := range systems {
		system.Update()
	}
}

// PushEvent queues a game event stamped with the current frame
func (w *World) PushEvent(t event.EventType, payload any) {
	if w.eventQueue == nil {
		return
	}
	var frame int64
	if w.frameSource != nil {
		frame = *w.frameSource
	}
	w.eventQueue.Push(event.GameEvent{Type: t, Frame: frame, Payload: payload})
}

// SetEventMetadata wires the direct pointers for PushEvent
// Called once during GameContext initialization
func (w *World) SetEventMetadata(q *event.Queue, frame *int64) {
	w.eventQueue = q
	w.frameSource = frame
}
