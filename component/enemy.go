package component

import "time"

// EnemyKind is the tagged variant for enemy behavior dispatch
type EnemyKind uint8

const (
	EnemyBasic EnemyKind = iota
	EnemyFast
	EnemyHeavy
	EnemyBoss
)

// Enemy marks a hostile craft. LastShot is in adjusted time
type Enemy struct {
	Kind     EnemyKind
	LastShot time.Time
	FireRate time.Duration
}
