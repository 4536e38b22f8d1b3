package physics

import (
	"math"
	"testing"

	"github.com/jbeda/geom"
)

// restY is where the default square's center settles on the platform
const restY = 404.10828316745585

func TestLandingClampsOntoPlatform(t *testing.T) {
	w := NewWorldWithScene(DefaultConfig(), DefaultScene())
	square := w.Shape(1)
	rest := w.Rest(1)

	landed := -1
	for tick := 1; tick <= 200; tick++ {
		w.Step()
		if rest.InContact() {
			landed = tick
			break
		}
	}
	if landed < 0 {
		t.Fatal("expected the square to land within 200 ticks")
	}
	if math.Abs(square.Position.Y-restY) > 1e-6 {
		t.Fatalf("expected clamped y=%f, got=%f", restY, square.Position.Y)
	}
	if square.Velocity.Y <= 0 {
		t.Fatalf("expected downward velocity at landing, got=%f", square.Velocity.Y)
	}

	w.Step()
	if square.Velocity.Y >= 0 {
		t.Fatalf("expected reflected velocity after landing, got=%f", square.Velocity.Y)
	}
}

func TestProbesResetEveryStep(t *testing.T) {
	w := NewWorldWithScene(DefaultConfig(), DefaultScene())
	for range 3 {
		w.Step()
		// four square vertices against three platform vertices
		if got := len(w.Collisions().Probes()); got != 12 {
			t.Fatalf("expected 12 probes, got=%d", got)
		}
	}
}

func TestDetectIgnoresStaticShapes(t *testing.T) {
	w := NewWorldWithScene(DefaultConfig(), DefaultScene())
	platform := w.Shape(2)
	w.Collisions().Detect(platform, w.Rest(2))
	if len(w.Collisions().Probes()) != 0 || w.Rest(2).InContact() {
		t.Fatal("expected no probing for a static shape")
	}
}

func TestNoContactAwayFromPlatform(t *testing.T) {
	w := NewWorldWithScene(DefaultConfig(), DefaultScene())
	w.Shape(1).Position = geom.Coord{X: 900, Y: 100}
	for range 10 {
		w.Step()
		if w.Rest(1).InContact() {
			t.Fatal("expected no contact far from the platform")
		}
	}
}

func TestNearestByYKeepsEarliestOnTie(t *testing.T) {
	cands := []geom.Coord{{X: 1, Y: 8}, {X: 2, Y: 12}, {X: 3, Y: 20}}
	if got := nearestByY(cands, 10); got.X != 1 {
		t.Fatalf("expected the earlier candidate on a tie, got=%+v", got)
	}
	if got := nearestByY(cands, 19); got.X != 3 {
		t.Fatalf("expected the closest candidate, got=%+v", got)
	}
}

func TestRoundHalfUp(t *testing.T) {
	cases := map[float64]float64{2.5: 3, -2.5: -2, 2.4: 2, -0.6: -1}
	for in, want := range cases {
		if got := roundHalfUp(in); got != want {
			t.Fatalf("roundHalfUp(%v): expected %v, got=%v", in, want, got)
		}
	}
}

func platformScene(rotation float64) []ShapeConfig {
	scene := DefaultScene()
	scene[1].Rotation = rotation
	return scene
}

func TestVerticalEdgeDirectionYieldsNoProbe(t *testing.T) {
	// rotation 0 sends the second edge direction to 270 degrees
	w := NewWorldWithScene(DefaultConfig(), platformScene(0))
	square := w.Shape(1)

	for range 200 {
		w.Step()
		if square.Position.Y <= w.Config.CullY {
			if got := len(w.Collisions().Probes()); got != 8 {
				t.Fatalf("tick %d: expected 8 probes, got=%d", w.Tick(), got)
			}
		}
		for _, p := range w.Collisions().Probes() {
			if !finite(p.Point) {
				t.Fatalf("tick %d: non-finite probe %+v", w.Tick(), p.Point)
			}
		}
		for _, s := range w.Shapes() {
			if !finite(s.Position) || !finite(s.Velocity) {
				t.Fatalf("tick %d: shape %d went non-finite: pos=%+v vel=%+v", w.Tick(), s.ID, s.Position, s.Velocity)
			}
		}
	}
}

func TestVerticalEdgeSpanSkipsShape(t *testing.T) {
	// rotation -60 puts the edge span angle at 90 degrees
	w := NewWorldWithScene(DefaultConfig(), platformScene(-60))
	square := w.Shape(1)

	for range 50 {
		w.Step()
		if got := len(w.Collisions().Probes()); got != 0 {
			t.Fatalf("tick %d: expected no probes, got=%d", w.Tick(), got)
		}
		if w.Rest(1).InContact() {
			t.Fatalf("tick %d: unexpected contact", w.Tick())
		}
		if !finite(square.Position) {
			t.Fatalf("tick %d: non-finite position %+v", w.Tick(), square.Position)
		}
	}
}

func finite(c geom.Coord) bool {
	return !math.IsNaN(c.X) && !math.IsInf(c.X, 0) && !math.IsNaN(c.Y) && !math.IsInf(c.Y, 0)
}
