package constant

// System Priorities
// Lower values run first. The tick order is fixed: buff expiry must precede
// every system that queries buff state, and cull runs last so all systems see
// tagged state before compaction
const (
	PriorityBuff      = 10
	PrioritySpawn     = 20
	PriorityMovement  = 30
	PriorityWeapon    = 40
	PriorityCollision = 50
	PriorityParticle  = 55
	PriorityProgress  = 60
	PriorityAudio     = 70
	PriorityCleanup   = 90
)
