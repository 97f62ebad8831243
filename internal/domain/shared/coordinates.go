package shared

import (
	"fmt"
	"math"
)

// Coordinates represents an immutable position in 3D galactic space
type Coordinates struct {
	X int `json:"x"`
	Y int `json:"y"`
	Z int `json:"z"`
}

// NewCoordinates creates a coordinate value object
func NewCoordinates(x, y, z int) Coordinates {
	return Coordinates{X: x, Y: y, Z: z}
}

// DistanceTo calculates Euclidean distance to another position.
// Travel distances come from warp tunnels, not coordinates; this is
// only used for display and heuristics.
func (c Coordinates) DistanceTo(other Coordinates) float64 {
	dx := float64(other.X - c.X)
	dy := float64(other.Y - c.Y)
	dz := float64(other.Z - c.Z)
	return math.Sqrt(dx*dx + dy*dy + dz*dz)
}

func (c Coordinates) String() string {
	return fmt.Sprintf("(%d, %d, %d)", c.X, c.Y, c.Z)
}
