package constant

import "time"

// Player Movement
const (
	// PlayerWidth and PlayerHeight are the player's collision box
	PlayerWidth  = 30.0
	PlayerHeight = 30.0

	// PlayerContactDamage is the flat damage from enemy body contact
	PlayerContactDamage = 20
)

// Enemy Stats
const (
	EnemyWidth  = 30.0
	EnemyHeight = 30.0

	EnemySpeedBasic = 1.0
	EnemySpeedFast  = 1.5
	EnemySpeedHeavy = 0.6

	EnemyHealthBasic = 20
	EnemyHealthHeavy = 50

	EnemyFireRateBasic = 2500 * time.Millisecond
	EnemyFireRateHeavy = 1500 * time.Millisecond

	// EnemyBulletDamage is the damage of a regular enemy's straight shot
	EnemyBulletDamage = 10
	EnemyBulletSpeed  = 4.0
	EnemyBulletSize   = 6.0
)

// Boss Stats
const (
	BossWidth  = 80.0
	BossHeight = 60.0
	BossSpeed  = 0.5

	// BossHoldY is the descent threshold; the boss's y freezes here and
	// horizontal oscillation takes over
	BossHoldY = 80.0

	// BossOscillationAmplitude is the per-tick sine displacement factor
	BossOscillationAmplitude = 1.5

	// BossOscillationFreq scales adjusted seconds inside the sine
	BossOscillationFreq = 2.0

	// BossEdgeMargin is the minimum horizontal distance kept from each edge
	BossEdgeMargin = 20.0

	// BossFireRate gates every boss pattern uniformly
	BossFireRate = 800 * time.Millisecond

	// BossPatternPeriod is how long each attack pattern stays selected
	BossPatternPeriod = 5000 * time.Millisecond

	BossSpreadDamage   = 20
	BossSpreadSpeed    = 2.5
	BossCircleCount    = 12
	BossCircleDamage   = 15
	BossCircleSpeed    = 2.0
	BossTargetedDamage = 25
	BossTargetedSpeed  = 3.5
)

// Player Bullets
const (
	PlayerBulletSpeed = 8.0

	// Standard loadout bullet box
	BulletWidth  = 4.0
	BulletHeight = 12.0

	// SpreadShotOffset is the horizontal spawn offset of the side bullets
	SpreadShotOffset = 12.0
)

// Scoring
const (
	ScoreBoss  = 5000
	ScoreHeavy = 500
	ScoreBasic = 100
)

// Power-Ups
const (
	PowerUpSize  = 20.0
	PowerUpSpeed = 1.2
)
