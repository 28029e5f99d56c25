package terrain

// HeightField maps each column x in [0, width) to the y-coordinate of the
// ground surface at that column. The y axis grows downward, so a smaller
// value means higher ground.
type HeightField []float64

// Clone returns an independent copy of the field.
func (f HeightField) Clone() HeightField {
	if f == nil {
		return nil
	}
	out := make(HeightField, len(f))
	copy(out, f)
	return out
}

// Position is a point in terrain space.
type Position struct {
	X float64
	Y float64
}

// Vec is a 2D direction. Normals are unit length.
type Vec struct {
	X float64
	Y float64
}

// CollisionResult reports whether a query point touches the ground.
// Point and Normal are meaningful only when Hit is true.
type CollisionResult struct {
	Hit    bool
	Point  Position
	Normal Vec
}

// DestructionRegion is a circular area in terrain coordinates whose
// interior is carved out of the surface.
type DestructionRegion struct {
	X      float64
	Y      float64
	Radius float64
}
