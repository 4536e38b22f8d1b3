package physics

import (
	"math"
	"sort"

	"github.com/jbeda/geom"
)

const (
	// probeAngleOffset skews the probe direction away from each edge's vertex angle
	probeAngleOffset = 30.0

	// minProbeCos is the smallest cosine a probe may be divided by
	minProbeCos = 1e-9
)

// Probe is a candidate contact point evaluated during detection
type Probe struct {
	Point geom.Coord

	// Accepted is true when the probe falls within the edge span
	Accepted bool
}

// CollisionSystem detects vertex contacts between a moving shape and the rest of the world
type CollisionSystem struct {
	world  *World
	probes []Probe
}

// NewCollisionSystem creates a new collision system
func NewCollisionSystem(world *World) *CollisionSystem {
	return &CollisionSystem{
		world:  world,
		probes: make([]Probe, 0, 64),
	}
}

// Probes returns the probes evaluated since the last Reset
func (c *CollisionSystem) Probes() []Probe {
	return c.probes
}

// Reset forgets the probes of the previous tick
func (c *CollisionSystem) Reset() {
	c.probes = c.probes[:0]
}

// Detect casts every vertex of s against the edges of the other shapes and
// clamps s vertically onto the nearest contact when a vertex has sunk into a band.
// Contacts are recorded in rest and consumed by the next Integrate.
func (c *CollisionSystem) Detect(s *Shape, rest *RestState) {
	if s.Static {
		return
	}

	for index, coords := range s.Vertices {
		candidates := make([]geom.Coord, 0, 4)
		for _, other := range c.world.shapes {
			if other.ID == s.ID {
				continue
			}
			candidates = c.castVertex(s, coords, other, candidates)
		}
		if len(candidates) < 2 {
			continue
		}

		sort.SliceStable(candidates, func(i, j int) bool {
			return candidates[i].Y < candidates[j].Y
		})

		vertexY := s.Position.Y + coords.Y
		if vertexY > candidates[0].Y && vertexY < candidates[1].Y {
			closest := nearestByY(candidates, s.Position.Y)
			s.Position.Y = closest.Y - coords.Y
			rest.recordContact(index)
		}
	}
}

// castVertex probes one vertex of the moving shape against every edge of other
func (c *CollisionSystem) castVertex(s *Shape, coords geom.Coord, other *Shape, out []geom.Coord) []geom.Coord {
	angle := 360 / float64(other.Sides)

	fullCos := Cos(angle + probeAngleOffset + other.Rotation)
	if math.Abs(fullCos) < minProbeCos {
		return out
	}
	fullLength := math.Abs((other.Position.X + other.Vertices[0].X - (other.Position.X + other.Vertices[1].X)) / fullCos)

	initialPoint := s.Position.X + coords.X
	for i, o := range other.Vertices {
		secondPoint := other.Position.X + o.X
		angleUsed := angle*float64(i+1) + probeAngleOffset + other.Rotation

		usedCos := Cos(angleUsed)
		if math.Abs(usedCos) < minProbeCos {
			continue
		}
		testLength := math.Abs((initialPoint - secondPoint) / usedCos)

		wrapped := math.Mod(angleUsed, 360)
		point := geom.Coord{
			X: other.Position.X + o.X + Cos(wrapped)*testLength,
			Y: other.Position.Y + o.Y + Sin(wrapped)*testLength,
		}
		c.probes = append(c.probes, Probe{Point: point, Accepted: testLength <= fullLength})

		if roundHalfUp(initialPoint) == roundHalfUp(point.X) && testLength < fullLength {
			out = append(out, point)
		}
	}
	return out
}

// nearestByY returns the candidate whose Y is closest to goal, keeping the earliest on ties
func nearestByY(candidates []geom.Coord, goal float64) geom.Coord {
	best := candidates[0]
	for _, cand := range candidates[1:] {
		if math.Abs(cand.Y-goal) < math.Abs(best.Y-goal) {
			best = cand
		}
	}
	return best
}

// roundHalfUp rounds to the nearest integer with halves going toward +Inf
func roundHalfUp(x float64) float64 {
	return math.Floor(x + 0.5)
}
