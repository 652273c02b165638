package component

// BulletOwner identifies which population a projectile damages
type BulletOwner uint8

const (
	OwnerPlayer BulletOwner = iota
	OwnerEnemy
)

// Bullet marks a projectile. When HasVelocity is set the explicit
// (VX, VY) vector is integrated each tick; otherwise the bullet travels
// along its owner's natural axis at Position.Speed (up for the player,
// down for enemies)
type Bullet struct {
	Owner       BulletOwner
	Damage      int
	VX, VY      float64
	HasVelocity bool
}
