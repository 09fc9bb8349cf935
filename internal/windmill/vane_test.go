package windmill

import (
	"testing"

	"github.com/chewxy/math32"

	"github.com/Faultbox/windmill/pkg/math"
)

const eps = 1e-3

func vecNear(a, b math.Vec3) bool {
	return a.Distance(b) < eps
}

func TestNewVaneReferenceShape(t *testing.T) {
	v := NewVane(math.Vec3{}, 0)

	wantTip := math.Vec3{X: innerRadius}
	if !vecNear(v.Tip, wantTip) {
		t.Errorf("Tip = %v, want ~%v", v.Tip, wantTip)
	}

	// The two base corners sit at 210 and 150 degrees, mirror images about
	// the X axis, so the base midpoint lies on the negative X axis.
	wantMidpt := math.Vec3{X: outerRadius * math32.Cos(math32.Pi*7/6)}
	if !vecNear(v.BaseMidpt, wantMidpt) {
		t.Errorf("BaseMidpt = %v, want ~%v", v.BaseMidpt, wantMidpt)
	}

	wantRadius := outerRadius * math32.Abs(math32.Sin(math32.Pi*7/6))
	if math32.Abs(v.BaseRadius-wantRadius) > eps {
		t.Errorf("BaseRadius = %v, want ~%v", v.BaseRadius, wantRadius)
	}

	if !vecNear(v.BaseUnitI, (math.Vec3{Y: -1})) {
		t.Errorf("BaseUnitI = %v, want ~(0,-1,0)", v.BaseUnitI)
	}
	if v.BaseUnitJ != (math.Vec3{Z: 1}) {
		t.Errorf("BaseUnitJ = %v, want (0,0,1)", v.BaseUnitJ)
	}
	if v.Spin != 0 {
		t.Errorf("Spin = %v, want 0", v.Spin)
	}
}

func TestNewVaneTranslated(t *testing.T) {
	center := math.Vec3{X: 2, Y: -1, Z: 0.5}
	origin := NewVane(math.Vec3{}, 1.2)
	moved := NewVane(center, 1.2)

	if !vecNear(moved.Tip, origin.Tip.Add(center)) {
		t.Errorf("translated Tip = %v, want %v", moved.Tip, origin.Tip.Add(center))
	}
	if !vecNear(moved.BaseMidpt, origin.BaseMidpt.Add(center)) {
		t.Errorf("translated BaseMidpt = %v, want %v", moved.BaseMidpt, origin.BaseMidpt.Add(center))
	}
	// Shape is translation invariant.
	if math32.Abs(moved.BaseRadius-origin.BaseRadius) > eps {
		t.Errorf("translated BaseRadius = %v, want %v", moved.BaseRadius, origin.BaseRadius)
	}
	if !vecNear(moved.BaseUnitI, origin.BaseUnitI) {
		t.Errorf("translated BaseUnitI = %v, want %v", moved.BaseUnitI, origin.BaseUnitI)
	}
}

func TestCornersUnrotated(t *testing.T) {
	v := NewVane(math.Vec3{}, 0)
	corners := v.Corners(FaceFront)

	// At spin 0 the corners are exactly as constructed: tip, then the
	// corner clockwise from the tip, then its mirror.
	if !vecNear(corners[0], v.Tip) {
		t.Errorf("corner 0 = %v, want tip %v", corners[0], v.Tip)
	}
	wantCorner1 := v.BaseMidpt.Add(v.BaseUnitI.Scale(v.BaseRadius))
	if !vecNear(corners[1], wantCorner1) {
		t.Errorf("corner 1 = %v, want %v", corners[1], wantCorner1)
	}
	wantCorner2 := v.BaseMidpt.Sub(v.BaseUnitI.Scale(v.BaseRadius))
	if !vecNear(corners[2], wantCorner2) {
		t.Errorf("corner 2 = %v, want %v", corners[2], wantCorner2)
	}
}

func TestCornersFacePairing(t *testing.T) {
	v := NewVane(math.Vec3{X: 0.3}, 2.1)
	for _, spin := range []float32{0, 0.5, 1.7, 3.2, 5.9} {
		v.Spin = spin
		front := v.Corners(FaceFront)
		back := v.Corners(FaceBack)

		// Both faces share the tip; the base corners appear reversed.
		if front[0] != back[0] {
			t.Errorf("spin %v: tips differ: %v vs %v", spin, front[0], back[0])
		}
		if front[1] != back[2] || front[2] != back[1] {
			t.Errorf("spin %v: back corners are not the reverse of front", spin)
		}
	}
}

func TestNormalFacesAreNegations(t *testing.T) {
	v := NewVane(math.Vec3{}, math32.Pi*2/3)
	for _, spin := range []float32{0, 0.9, 2.4, 4.8} {
		v.Spin = spin
		front := v.Normal(FaceFront)
		back := v.Normal(FaceBack)
		if front.Neg() != back {
			t.Errorf("spin %v: Normal(Back) = %v, want %v", spin, back, front.Neg())
		}
		l := front.Length()
		if l < 0.999 || l > 1.001 {
			t.Errorf("spin %v: Normal(Front).Length() = %v, want ~1", spin, l)
		}
	}
}

func TestWindingClockwiseFromOutside(t *testing.T) {
	v := NewVane(math.Vec3{}, 0)
	for spin := float32(0); spin < 2*math32.Pi; spin += 0.1 {
		v.Spin = spin
		for _, face := range [2]Face{FaceFront, FaceBack} {
			corners := v.Corners(face)
			normal := v.Normal(face)

			// For corners in clockwise order as seen from outside the
			// face, the edge cross product points against the normal.
			e1 := corners[1].Sub(corners[0])
			e2 := corners[2].Sub(corners[0])
			if d := e1.Cross(e2).Dot(normal); d >= 0 {
				t.Fatalf("face %v spin %v: winding not clockwise from outside (dot = %v)", face, spin, d)
			}
		}
	}
}

func TestGeometryQueriesArePure(t *testing.T) {
	v := NewVane(math.Vec3{Y: 1}, 0.4)
	v.Spin = 1.3

	if v.Corners(FaceFront) != v.Corners(FaceFront) {
		t.Error("Corners is not deterministic")
	}
	if v.Normal(FaceBack) != v.Normal(FaceBack) {
		t.Error("Normal is not deterministic")
	}
	if TextureCorners(FaceFront) != TextureCorners(FaceFront) {
		t.Error("TextureCorners is not deterministic")
	}
}

func TestTextureCorners(t *testing.T) {
	front := TextureCorners(FaceFront)
	back := TextureCorners(FaceBack)

	if front[0] != (math.Vec2{X: 0.50, Y: 0.05}) {
		t.Errorf("front tip UV = %v, want (0.50,0.05)", front[0])
	}
	// The tip UV is shared; the base corner UVs are swapped between faces,
	// mirroring the swapped vertex order.
	if back[0] != front[0] {
		t.Errorf("back tip UV = %v, want %v", back[0], front[0])
	}
	if back[1] != front[2] || back[2] != front[1] {
		t.Errorf("back base UVs %v,%v are not the swap of front %v,%v", back[1], back[2], front[1], front[2])
	}
}
