package physics

import (
	"math"
	"testing"

	"github.com/jbeda/geom"
)

func TestSettleWithoutContactKeepsVelocity(t *testing.T) {
	s := &Shape{Velocity: geom.Coord{Y: 3}}
	r := NewRestState()
	r.settle(s)
	if s.Velocity.Y != 3 || r.Resting {
		t.Fatalf("expected untouched velocity, got vy=%f resting=%v", s.Velocity.Y, r.Resting)
	}
}

func TestSettleBouncesOnContact(t *testing.T) {
	s := &Shape{
		Position:     geom.Coord{X: 0, Y: 10},
		LastPosition: geom.Coord{X: 0, Y: 7},
		Velocity:     geom.Coord{Y: 10},
	}
	r := NewRestState()
	r.recordContact(0)
	r.settle(s)

	if s.Velocity.Y != -10 {
		t.Fatalf("expected reflected vy=-10, got=%f", s.Velocity.Y)
	}
	if r.LastVelocityY != -10 {
		t.Fatalf("expected last vy=-10, got=%f", r.LastVelocityY)
	}
	if r.LastVelocityDelta != 9 {
		t.Fatalf("expected delta 9, got=%f", r.LastVelocityDelta)
	}
	if r.Displacement != 3 {
		t.Fatalf("expected displacement 3, got=%f", r.Displacement)
	}
	if r.Resting {
		t.Fatal("a first bounce must not rest")
	}
}

func TestSettleRestsWhenBounceStopsDecaying(t *testing.T) {
	s := &Shape{Velocity: geom.Coord{Y: 2}}
	r := NewRestState()
	r.LastVelocityY = -2
	r.LastVelocityDelta = 0
	r.recordContact(1)
	r.settle(s)

	if s.Velocity.Y != 0 || !r.Resting {
		t.Fatalf("expected rest, got vy=%f resting=%v", s.Velocity.Y, r.Resting)
	}
	if r.LastVelocityY != 0 {
		t.Fatalf("expected last vy 0, got=%f", r.LastVelocityY)
	}
}

func TestSettleIgnoresFastBounces(t *testing.T) {
	s := &Shape{Velocity: geom.Coord{Y: 6}}
	r := NewRestState()
	r.LastVelocityY = -6
	r.LastVelocityDelta = 0
	r.recordContact(1)
	r.settle(s)

	if s.Velocity.Y != -6 || r.Resting {
		t.Fatalf("expected plain bounce above the speed limit, got vy=%f resting=%v", s.Velocity.Y, r.Resting)
	}
}

func TestRestIsSticky(t *testing.T) {
	s := &Shape{Velocity: geom.Coord{Y: 0.2}}
	r := NewRestState()
	r.LastVelocityY = math.Copysign(0, -1)
	r.settle(s)
	if s.Velocity.Y != 0 || !r.Resting {
		t.Fatalf("expected sticky rest, got vy=%f resting=%v", s.Velocity.Y, r.Resting)
	}

	// upward motion is left alone
	s.Velocity.Y = -1
	r.settle(s)
	if s.Velocity.Y != -1 {
		t.Fatalf("expected upward velocity kept, got=%f", s.Velocity.Y)
	}
}

func TestIntegrateClearsContacts(t *testing.T) {
	s := NewShape(1, ShapeConfig{Sides: 4, Size: Size{Length: 10}}, 0.2)
	r := NewRestState()
	r.recordContact(2)
	Integrate(s, r)
	if r.InContact() {
		t.Fatalf("expected contacts cleared, got=%v", r.Contacts)
	}
}

func TestSimulationStateKeepsOneRecordPerShape(t *testing.T) {
	st := NewSimulationState()
	a := st.Rest(1)
	if st.Rest(1) != a {
		t.Fatal("expected the same rest state for the same id")
	}
	if st.Rest(2) == a {
		t.Fatal("expected distinct rest states for distinct ids")
	}
	if a.LastVelocityY != -1 || a.LastVelocityDelta != -1 {
		t.Fatalf("expected unset history, got=%+v", a)
	}
}
