package physics

import (
	"image/color"

	"github.com/jbeda/geom"
)

var (
	orange = color.NRGBA{R: 255, G: 165, B: 0, A: 255}
	white  = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
)

// DefaultScene returns a square dropped above a static triangle platform
func DefaultScene() []ShapeConfig {
	return []ShapeConfig{
		{
			Sides:    4,
			Size:     Size{Length: 50, Width: 3},
			Rotation: 45,
			Position: geom.Coord{X: 400, Y: 100},
			Style:    Style{Color: orange},
		},
		{
			Sides:           3,
			Size:            Size{Length: 200, Width: 3},
			Rotation:        90,
			Position:        geom.Coord{X: 320, Y: 500},
			Style:           Style{Color: white},
			Static:          true,
			AngularMomentum: 1,
		},
	}
}
