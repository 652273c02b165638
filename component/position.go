package component

// Position is the shared spatial base for every playfield entity.
// X, Y are the top-left corner in logical pixels. Speed is the scalar
// rate along the entity's natural axis, in pixels per tick
type Position struct {
	X, Y  float64
	W, H  float64
	Speed float64
}

// CenterX returns the horizontal center of the bounding box
func (p Position) CenterX() float64 { return p.X + p.W/2 }

// CenterY returns the vertical center of the bounding box
func (p Position) CenterY() float64 { return p.Y + p.H/2 }
