package component

// Health tracks an entity's damage pool. Current may go transiently
// negative; anything at or below zero counts as dead
type Health struct {
	Current int
	Max     int
}

// Dead reports whether the pool is exhausted
func (h Health) Dead() bool { return h.Current <= 0 }
