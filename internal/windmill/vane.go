// Package windmill builds the procedural geometry for animated windmills:
// triangular vanes spinning about their own axis of symmetry, double-sided,
// with per-face normals and texture coordinates.
package windmill

import (
	"github.com/chewxy/math32"

	"github.com/Faultbox/windmill/pkg/math"
)

// Distances from a windmill's center to a vane's tip and to its two base
// corners. All vane shape parameters derive from these.
const (
	innerRadius = 0.25
	outerRadius = 0.5
)

// VanesPerWindmill is the number of blades on one windmill.
const VanesPerWindmill = 3

// Face selects a side of a vane. It determines winding order, normal
// direction and texture mapping.
type Face int

// The two sides of a vane.
const (
	FaceFront Face = iota
	FaceBack
)

// Vane describes one triangular windmill blade spinning about the axis
// through its tip and the midpoint of its base. Only Spin changes after
// construction; the Scene overwrites it once per frame.
type Vane struct {
	// Tip is the corner that lies on the axis of rotation.
	Tip math.Vec3

	// BaseMidpt is the midpoint of the side opposite the tip.
	BaseMidpt math.Vec3

	// BaseRadius is the distance from BaseMidpt to each adjacent corner.
	BaseRadius float32

	// BaseUnitI points from BaseMidpt to the corner clockwise from the
	// tip, in the unrotated state.
	BaseUnitI math.Vec3

	// BaseUnitJ is the outward unit normal of the front face in the
	// unrotated state. Orthogonal to BaseUnitI by construction.
	BaseUnitJ math.Vec3

	// Spin is the current rotation about the tip-to-base axis, in radians.
	Spin float32
}

// NewVane builds the vane of the windmill centered at center whose tip
// points angle radians counter-clockwise from the X axis. The vane starts
// unrotated, with its front face toward +Z.
func NewVane(center math.Vec3, angle float32) Vane {
	unitTip := math.UnitAtAngle(angle)
	unit1 := math.UnitAtAngle(angle + math32.Pi*7/6)
	unit2 := math.UnitAtAngle(angle + math32.Pi*5/6)

	corner1 := unit1.Scale(outerRadius)
	corner2 := unit2.Scale(outerRadius)
	baseMidpt := math.Midpoint(corner1, corner2)
	toCorner1 := corner1.Sub(baseMidpt)

	return Vane{
		Tip:        center.Add(unitTip.Scale(innerRadius)),
		BaseMidpt:  center.Add(baseMidpt),
		BaseRadius: toCorner1.Length(),
		BaseUnitI:  toCorner1.Normalize(),
		BaseUnitJ:  math.Vec3{Z: 1},
	}
}

// Corners returns the positions of the three corners of the given face at
// the current spin. Viewed from outside that face the corners appear in
// clockwise order, which is what the renderer's culling setup expects.
func (v *Vane) Corners(face Face) [3]math.Vec3 {
	towardCorner := math.MixByAngle(v.BaseUnitI, v.BaseUnitJ, v.Spin)
	offset := towardCorner.Scale(v.BaseRadius)
	corner1 := v.BaseMidpt.Add(offset)
	corner2 := v.BaseMidpt.Sub(offset)
	if face == FaceBack {
		return [3]math.Vec3{v.Tip, corner2, corner1}
	}
	return [3]math.Vec3{v.Tip, corner1, corner2}
}

// Normal returns the outward unit normal of the given face at the current
// spin. The back normal is the exact negation of the front normal.
func (v *Vane) Normal(face Face) math.Vec3 {
	n := math.MixByAngle(v.BaseUnitI, v.BaseUnitJ, v.Spin+math32.Pi/2)
	if face == FaceBack {
		return n.Neg()
	}
	return n
}

// TextureCorners returns the texture coordinates of a face's three corners.
// They are fixed per face, independent of geometry and spin. The back face
// swaps the two base corners to match the swapped vertex order, so the same
// image reads consistently from either side.
func TextureCorners(face Face) [3]math.Vec2 {
	if face == FaceBack {
		return [3]math.Vec2{{X: 0.50, Y: 0.05}, {X: 0.05, Y: 0.95}, {X: 0.95, Y: 0.95}}
	}
	return [3]math.Vec2{{X: 0.50, Y: 0.05}, {X: 0.95, Y: 0.95}, {X: 0.05, Y: 0.95}}
}
