package component

// ParticleColor is a rendering hint for cosmetic burst particles
type ParticleColor uint8

const (
	ParticleWhite ParticleColor = iota
	ParticleRed
	ParticleBlue
	ParticleGreen
	ParticleOrange
)

// Particle is a purely cosmetic debris fragment. Life is a unit
// interval decremented each tick; the particle dies at zero
type Particle struct {
	VX, VY float64
	Life   float64
	Size   float64
	Color  ParticleColor
}
