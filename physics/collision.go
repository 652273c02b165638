package physics

import "github.com/lixenwraith/nova-fighter/component"

// Overlaps performs the axis-aligned bounding-box intersection test.
// Used identically for every interaction pair in the resolver;
// population sizes stay small enough that no partitioning is needed
func Overlaps(a, b component.Position) bool {
	return a.X < b.X+b.W &&
		a.X+a.W > b.X &&
		a.Y < b.Y+b.H &&
		a.Y+a.H > b.Y
}
