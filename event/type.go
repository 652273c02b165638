package event

// EventType represents the type of game event
type EventType int

const (
	// EventGameReset requests all systems to drop run state
	// Trigger: run start/restart | Consumer: every system | Payload: nil
	EventGameReset EventType = iota

	// EventSoundRequest requests a fire-and-forget audio cue
	// Trigger: weapon/collision systems | Consumer: AudioSystem
	// Payload: *SoundRequestPayload
	EventSoundRequest

	// EventExplosionRequest requests a cosmetic particle burst
	// Trigger: CollisionSystem | Consumer: ParticleSystem
	// Payload: *ExplosionRequestPayload
	EventExplosionRequest

	// EventBossDefeated records the adjusted-time anchor for the next
	// boss's eligibility window
	// Trigger: CollisionSystem | Consumer: SpawnSystem
	// Payload: *BossDefeatedPayload
	EventBossDefeated

	// EventGameOver signals the run has terminated
	// Trigger: ProgressSystem | Consumer: main loop / presentation
	// Payload: *GameOverPayload
	EventGameOver
)
