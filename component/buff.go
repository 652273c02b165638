package component

import "time"

// BuffKind identifies a time-bounded player modifier
type BuffKind uint8

const (
	BuffRapidFire BuffKind = iota
	BuffShield
	BuffSpreadShot
	BuffKindCount
)

// String returns the buff name for HUD display
func (k BuffKind) String() string {
	switch k {
	case BuffRapidFire:
		return "rapid"
	case BuffShield:
		return "shield"
	case BuffSpreadShot:
		return "spread"
	default:
		return "unknown"
	}
}

// Buff holds the player's active modifiers keyed by kind.
// One entry per kind; re-acquiring refreshes the expiry in place.
// Expiry values are absolute adjusted time
type Buff struct {
	Expiry map[BuffKind]time.Time
}

// NewBuff creates an empty buff set
func NewBuff() Buff {
	return Buff{Expiry: make(map[BuffKind]time.Time)}
}

// Active reports whether kind has not expired at the given adjusted time
func (b Buff) Active(kind BuffKind, now time.Time) bool {
	exp, ok := b.Expiry[kind]
	return ok && exp.After(now)
}
