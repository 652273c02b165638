package core

// SoundCue represents different sound effects
type SoundCue int

const (
	CueShoot      SoundCue = iota // Player cannon
	CueEnemyShoot                 // Enemy/boss cannon
	CueExplosion                  // Entity destroyed
	CuePowerUp                    // Power-up collected
	CueHit                        // Player took damage
	SoundCueCount
)
