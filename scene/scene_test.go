package scene

import (
	"math"
	"math/rand"
	"testing"

	"gonum.org/v1/gonum/spatial/r3"
)

func TestGenerateStars_Shell(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	stars := GenerateStars(rng, 2000, 100, 50)

	if len(stars) != 2000 {
		t.Fatalf("got %d stars, want 2000", len(stars))
	}

	var mean r3.Vec
	for _, s := range stars {
		d := r3.Norm(s.Position)
		if d < 100-1e-9 || d > 150+1e-9 {
			t.Fatalf("star at distance %v outside [100, 150]", d)
		}
		if s.Brightness < 0.3 || s.Brightness > 1 {
			t.Fatalf("brightness %v outside [0.3, 1]", s.Brightness)
		}
		mean = r3.Add(mean, r3.Scale(1/d, s.Position))
	}

	// Directions are uniform, so unit vectors average near zero
	mean = r3.Scale(1.0/2000, mean)
	if r3.Norm(mean) > 0.1 {
		t.Errorf("mean direction %v is biased", mean)
	}
}

func TestFogFactor(t *testing.T) {
	tests := []struct {
		name string
		d    float64
		want float64
	}{
		{"inside near", 1, 1},
		{"at near", 5, 1},
		{"midway", 17.5, 0.5},
		{"at far", 30, 0},
		{"beyond far", 100, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FogFactor(tt.d, 5, 30); math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("FogFactor(%v) = %v, want %v", tt.d, got, tt.want)
			}
		})
	}

	if got := FogFactor(10, 5, 5); got != 1 {
		t.Errorf("degenerate fog = %v, want 1", got)
	}
}

func TestFade(t *testing.T) {
	c := Fade(LinkColor, 0.5)
	if c.A != 39 && c.A != 38 {
		t.Errorf("alpha = %d, want ~38", c.A)
	}
	if c.R != LinkColor.R {
		t.Error("fade changed rgb")
	}
	if Fade(RootColor, 2).A != 255 {
		t.Error("fade above 1 should clamp")
	}
}

func TestNodeColorFor(t *testing.T) {
	if NodeColorFor(false) != RootColor {
		t.Error("root should use root color")
	}
	if NodeColorFor(true) != NodeColor {
		t.Error("branch should use node color")
	}
}

func TestBounds(t *testing.T) {
	box := Bounds([]r3.Vec{{X: 1, Y: 2, Z: 3}, {X: -1, Y: 5, Z: 0}, {X: 0, Y: 0, Z: -2}})
	want := r3.Box{Min: r3.Vec{X: -1, Y: 0, Z: -2}, Max: r3.Vec{X: 1, Y: 5, Z: 3}}
	if box != want {
		t.Errorf("Bounds = %v, want %v", box, want)
	}
	if Bounds(nil) != (r3.Box{}) {
		t.Error("empty bounds should be zero")
	}
}
