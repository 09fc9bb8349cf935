package windmill

import "github.com/Faultbox/windmill/pkg/math"

// Vertex is one entry in the per-frame vertex stream.
type Vertex struct {
	Position math.Vec3
	Normal   math.Vec3
	Texture  math.Vec2
}

// Frame holds the geometry for one rendered frame: an unindexed triangle
// list covering every vane's front faces followed by every back face, and
// a line-list index buffer outlining the front faces. Frames are rebuilt
// from scratch every frame and never retained.
type Frame struct {
	Vertices      []Vertex
	BorderIndices []uint16
}

// Assemble builds the vertex and border-index streams for the scene's
// current spin state. All front faces come first, in scene order, so their
// vertices double as the source for the border draw; the back faces follow
// in the same order.
func Assemble(s *Scene) Frame {
	n := s.VaneCount()
	f := Frame{
		Vertices:      make([]Vertex, 0, 2*3*n),
		BorderIndices: make([]uint16, 0, 6*n),
	}

	for _, face := range [2]Face{FaceFront, FaceBack} {
		for i := range s.slots {
			v := &s.slots[i].vane
			normal := v.Normal(face)
			uvs := TextureCorners(face)
			for c, pos := range v.Corners(face) {
				f.Vertices = append(f.Vertices, Vertex{
					Position: pos,
					Normal:   normal,
					Texture:  uvs[c],
				})
			}
		}
	}

	// Three edges per vane as line segments over the front block.
	for i := 0; i < n; i++ {
		base := uint16(i * 3)
		f.BorderIndices = append(f.BorderIndices,
			base, base+1,
			base+1, base+2,
			base+2, base,
		)
	}

	return f
}

// FrontCount returns the number of vertices in the leading front-face
// block, the sub-range the border indices address.
func (f Frame) FrontCount() int {
	return len(f.Vertices) / 2
}
