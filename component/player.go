package component

import "time"

// Player marks the single player-controlled craft.
// LastShot is in adjusted time; FireRate is the base cooldown between
// shots before buff modifiers
type Player struct {
	CraftID  string
	Score    int
	LastShot time.Time
	FireRate time.Duration
}
