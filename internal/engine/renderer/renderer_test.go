package renderer

import (
	"testing"

	"github.com/Faultbox/windmill/internal/windmill"
	"github.com/Faultbox/windmill/pkg/math"
)

func TestFlattenLayout(t *testing.T) {
	verts := []windmill.Vertex{
		{
			Position: math.Vec3{X: 1, Y: 2, Z: 3},
			Normal:   math.Vec3{X: 0, Y: 0, Z: 1},
			Texture:  math.Vec2{X: 0.5, Y: 0.05},
		},
		{
			Position: math.Vec3{X: -1, Y: -2, Z: -3},
			Normal:   math.Vec3{X: 0, Y: 1, Z: 0},
			Texture:  math.Vec2{X: 0.95, Y: 0.95},
		},
	}

	data := flatten(verts)

	if got, want := len(data), len(verts)*floatsPerVertex; got != want {
		t.Fatalf("len(data) = %d, want %d", got, want)
	}

	want := []float32{
		1, 2, 3, 0, 0, 1, 0.5, 0.05,
		-1, -2, -3, 0, 1, 0, 0.95, 0.95,
	}
	for i, v := range want {
		if data[i] != v {
			t.Errorf("data[%d] = %v, want %v", i, data[i], v)
		}
	}
}

func TestFlattenEmpty(t *testing.T) {
	if got := flatten(nil); len(got) != 0 {
		t.Errorf("flatten(nil) = %v, want empty", got)
	}
}
