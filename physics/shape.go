package physics

import (
	"fmt"
	"image/color"
	"math"

	"github.com/jbeda/geom"
)

// circleSides is the side count used when a shape is configured with zero sides
const circleSides = 16

// Size describes the nominal length of a shape and its outline width
type Size struct {
	Length float64
	Width  float64
}

// Style describes how a shape is drawn
type Style struct {
	Color color.NRGBA
	Fill  bool
}

// ShapeConfig holds everything needed to build a shape
type ShapeConfig struct {
	// Sides is the number of polygon sides (0 approximates a circle)
	Sides int

	// Size is the nominal length and outline width
	Size Size

	// Rotation is the construction rotation in degrees
	Rotation float64

	// Position is the initial center in world coordinates
	Position geom.Coord

	// Style is the draw style
	Style Style

	// Static shapes act as immovable platforms
	Static bool

	// AngularMomentum is added to Rotation every tick
	AngularMomentum float64

	// Velocity is the initial velocity in pixels per tick
	Velocity geom.Coord
}

// Shape represents a regular polygon in the world
type Shape struct {
	// ID is unique within a world
	ID int

	// Vertices are offsets from Position, baked at construction rotation
	Vertices []geom.Coord

	// Position of the center in world coordinates
	Position geom.Coord

	// LastPosition is Position before the most recent integration
	LastPosition geom.Coord

	// Velocity in pixels per tick
	Velocity geom.Coord

	// Acceleration in pixels per tick squared
	Acceleration geom.Coord

	// Rotation in degrees
	Rotation float64

	// AngularMomentum in degrees per tick
	AngularMomentum float64

	Sides  int
	Size   Size
	Style  Style
	Static bool
}

// Radius returns the effective vertex radius for a size.
// The stroke width is folded in so the outline fits inside the nominal length.
func (s Size) Radius() float64 {
	return s.Length - s.Length/math.Pi + s.Width
}

// NewShape builds a regular polygon from its configuration
func NewShape(id int, cfg ShapeConfig, gravity float64) *Shape {
	sides := cfg.Sides
	if sides == 0 {
		sides = circleSides
	}
	if sides < 3 {
		panic(fmt.Sprintf("physics: shape needs at least 3 sides, got %d", cfg.Sides))
	}

	length := cfg.Size.Radius()
	vertices := make([]geom.Coord, 0, sides)
	for i := 0; i < sides; i++ {
		startingAngle := (360 / float64(sides)) * float64(i)
		vertices = append(vertices, geom.Coord{
			X: Cos(startingAngle+cfg.Rotation) * length,
			Y: Sin(startingAngle+cfg.Rotation) * length,
		})
	}

	return &Shape{
		ID:              id,
		Vertices:        vertices,
		Position:        cfg.Position,
		Velocity:        cfg.Velocity,
		Acceleration:    geom.Coord{X: 0, Y: gravity},
		Rotation:        cfg.Rotation,
		AngularMomentum: cfg.AngularMomentum,
		Sides:           sides,
		Size:            cfg.Size,
		Style:           cfg.Style,
		Static:          cfg.Static,
	}
}

// WorldVertices returns the vertex ring translated to the shape's position
func (s *Shape) WorldVertices() []geom.Coord {
	out := make([]geom.Coord, len(s.Vertices))
	for i, v := range s.Vertices {
		out[i] = s.Position.Plus(v)
	}
	return out
}

// Bounds returns the world-space bounding box of the vertex ring
func (s *Shape) Bounds() geom.Rect {
	vs := s.WorldVertices()
	r := geom.Rect{Min: vs[0], Max: vs[0]}
	for _, v := range vs[1:] {
		r.ExpandToContainCoord(v)
	}
	return r
}
