package constant

import "time"

// Playfield
const (
	// PlayfieldWidth is the logical playfield width in pixels
	PlayfieldWidth = 480.0

	// PlayfieldHeight is the logical playfield height in pixels
	PlayfieldHeight = 640.0

	// CullMargin is the extra distance past the playfield edges before
	// bullets and power-ups are removed
	CullMargin = 20.0

	// StarCount is the number of background starfield points
	StarCount = 56

	// StarScrollSpeed is the base downward drift of the starfield in
	// logical pixels per second; deeper parallax layers scroll faster
	StarScrollSpeed = 12.0
)

// Frame Timing
const (
	// TickRate is the target simulation/render frequency
	TickRate = 60

	// FrameDuration is the nominal time per tick
	FrameDuration = time.Second / TickRate
)

// Enemy Spawn Logic
const (
	// EnemySpawnIntervalStart is the spawn interval at run start
	EnemySpawnIntervalStart = 3000 * time.Millisecond

	// EnemySpawnIntervalFloor is the minimum spawn interval after ramp-up
	EnemySpawnIntervalFloor = 800 * time.Millisecond

	// EnemySpawnRampDuration is how long the interval takes to shrink
	// from start to floor
	EnemySpawnRampDuration = 120 * time.Second
)

// Power-Up Spawn Logic
const (
	// PowerUpSpawnInterval is the fixed interval between power-up drops
	PowerUpSpawnInterval = 8000 * time.Millisecond

	// PowerUpDuration is how long a collected buff stays active
	PowerUpDuration = 10 * time.Second
)

// Boss Spawn Logic
const (
	// BossSpawnDelay is the adjusted-time gap after a boss defeat (or run
	// start) before the next boss appears
	BossSpawnDelay = 60 * time.Second

	// BossBaseHealth is the first boss's health pool
	BossBaseHealth = 500

	// BossHealthStep is the health added per successive boss
	BossHealthStep = 300
)

// Countdown
// Digit timing mirrors observed pause-resume UX; tune here, not inline
const (
	// CountdownStart is the first digit displayed on resume
	CountdownStart = 3

	// CountdownInitialDelay is how long the first digit shows before the
	// first decrement
	CountdownInitialDelay = 500 * time.Millisecond

	// CountdownDigitInterval is the wall-clock time each subsequent digit shows
	CountdownDigitInterval = 1000 * time.Millisecond
)

// Particles
const (
	// ParticleLifeDecrement is the per-tick life reduction (unit interval)
	ParticleLifeDecrement = 0.02

	// ParticleBurstCount is the number of particles per explosion burst
	ParticleBurstCount = 8
)
