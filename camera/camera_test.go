package camera

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/spatial/r3"
)

func newDefault() *Camera {
	return New(r3.Vec{}, r3.Vec{X: 5, Y: 5, Z: 5}, 2, 20, math.Pi/2)
}

func near(a, b r3.Vec, tol float64) bool {
	return r3.Norm(r3.Sub(a, b)) <= tol
}

func TestNew(t *testing.T) {
	cam := newDefault()

	if math.Abs(cam.Distance-math.Sqrt(75)) > 1e-9 {
		t.Errorf("distance = %v, want %v", cam.Distance, math.Sqrt(75))
	}
	if pos := cam.Position(); !near(pos, r3.Vec{X: 5, Y: 5, Z: 5}, 1e-9) {
		t.Errorf("position = %v, want (5, 5, 5)", pos)
	}
}

func TestZoomClamps(t *testing.T) {
	tests := []struct {
		name  string
		delta float64
		want  float64
	}{
		{"zoom in past min", -100, 2},
		{"zoom out past max", 100, 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cam := newDefault()
			cam.Zoom(tt.delta)
			if cam.Distance != tt.want {
				t.Errorf("distance = %v, want %v", cam.Distance, tt.want)
			}
			if d := r3.Norm(cam.Position()); math.Abs(d-tt.want) > 1e-9 {
				t.Errorf("position distance = %v, want %v", d, tt.want)
			}
		})
	}
}

func TestRotatePolarClamp(t *testing.T) {
	cam := newDefault()

	// Cannot go below the ground plane
	cam.Rotate(0, 10)
	if cam.Polar != math.Pi/2 {
		t.Errorf("polar = %v, want pi/2", cam.Polar)
	}
	if y := cam.Position().Y; math.Abs(y) > 1e-9 {
		t.Errorf("camera y = %v at max polar, want 0", y)
	}

	// Cannot flip over the top
	cam.Rotate(0, -10)
	if cam.Polar != minPolar {
		t.Errorf("polar = %v, want %v", cam.Polar, minPolar)
	}
}

func TestRotateAzimuthKeepsDistance(t *testing.T) {
	cam := newDefault()
	before := cam.Distance

	for i := 0; i < 100; i++ {
		cam.Rotate(0.37, 0)
		if d := r3.Norm(r3.Sub(cam.Position(), cam.Target)); math.Abs(d-before) > 1e-9 {
			t.Fatalf("distance drifted to %v", d)
		}
	}
}

func TestNewClampsStartPosition(t *testing.T) {
	cam := New(r3.Vec{}, r3.Vec{Y: 100}, 2, 20, math.Pi/2)
	if cam.Distance != 20 {
		t.Errorf("distance = %v, want 20", cam.Distance)
	}
	if cam.Polar != minPolar {
		t.Errorf("polar = %v, want %v", cam.Polar, minPolar)
	}
}
