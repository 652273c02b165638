package physics

import "math"

// Aim returns a unit vector from (fromX, fromY) to (toX, toY) scaled to
// speed. A zero-length direction falls back to straight down so the
// caller never receives a non-finite component
func Aim(fromX, fromY, toX, toY, speed float64) (vx, vy float64) {
	dx := toX - fromX
	dy := toY - fromY
	dist := math.Hypot(dx, dy)
	if dist == 0 {
		return 0, speed
	}
	return dx / dist * speed, dy / dist * speed
}

// Clamp bounds v into [lo, hi]
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
