package math

import "github.com/chewxy/math32"

// Vec3 is a 3D vector.
type Vec3 struct {
	X, Y, Z float32
}

// Add returns v + other.
func (v Vec3) Add(other Vec3) Vec3 {
	return Vec3{v.X + other.X, v.Y + other.Y, v.Z + other.Z}
}

// Sub returns v - other.
func (v Vec3) Sub(other Vec3) Vec3 {
	return Vec3{v.X - other.X, v.Y - other.Y, v.Z - other.Z}
}

// Scale returns v * scalar.
func (v Vec3) Scale(s float32) Vec3 {
	return Vec3{v.X * s, v.Y * s, v.Z * s}
}

// Neg returns -v.
func (v Vec3) Neg() Vec3 {
	return v.Scale(-1)
}

// Dot returns the dot product.
func (v Vec3) Dot(other Vec3) float32 {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z
}

// Cross returns the cross product.
func (v Vec3) Cross(other Vec3) Vec3 {
	return Vec3{
		v.Y*other.Z - v.Z*other.Y,
		v.Z*other.X - v.X*other.Z,
		v.X*other.Y - v.Y*other.X,
	}
}

// Length returns the magnitude.
func (v Vec3) Length() float32 {
	return math32.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// Normalize returns a unit vector pointing in the same direction as v.
// A zero-length vector has no direction; normalizing one means the caller
// constructed degenerate geometry, so it panics rather than returning a
// garbage direction.
func (v Vec3) Normalize() Vec3 {
	l := v.Length()
	if l == 0 {
		panic("math: Normalize of zero-length Vec3")
	}
	return v.Scale(1 / l)
}

// Distance returns the distance to another point.
func (v Vec3) Distance(other Vec3) float32 {
	return v.Sub(other).Length()
}

// Midpoint returns the point halfway between a and b.
func Midpoint(a, b Vec3) Vec3 {
	return a.Add(b).Scale(0.5)
}

// MixByAngle returns the point angle radians around the origin-centered
// ellipse whose semi-axis at zero radians is i and whose semi-axis at
// pi/2 is j.
func MixByAngle(i, j Vec3, angle float32) Vec3 {
	return i.Scale(math32.Cos(angle)).Add(j.Scale(math32.Sin(angle)))
}

// UnitAtAngle returns the unit vector in the XY plane rotated angle
// radians counter-clockwise from the X axis.
func UnitAtAngle(angle float32) Vec3 {
	return Vec3{math32.Cos(angle), math32.Sin(angle), 0}
}
