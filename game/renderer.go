package game

import (
	"fmt"
	"image"
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/jbeda/geom"
	"golang.org/x/image/font/basicfont"

	"polyfall/physics"
)

var (
	probeAcceptedColor = color.RGBA{0, 255, 255, 255} // Cyan
	probeRejectedColor = color.RGBA{255, 0, 0, 255}   // Red
	hudColor           = color.RGBA{200, 200, 200, 255}
)

const (
	probeRadius   = 2
	hudMargin     = 8
	hudLineHeight = 16
)

// whiteSubImage is the source texture for filled polygons, created on first fill
var whiteSubImage *ebiten.Image

func fillSource() *ebiten.Image {
	if whiteSubImage == nil {
		img := ebiten.NewImage(3, 3)
		img.Fill(color.White)
		whiteSubImage = img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	}
	return whiteSubImage
}

// Renderer handles drawing the world onto the screen
type Renderer struct {
	face     text.Face
	vertices []ebiten.Vertex
	indices  []uint16
}

// NewRenderer creates a new renderer
func NewRenderer() *Renderer {
	return &Renderer{
		face: text.NewGoXFace(basicfont.Face7x13),
	}
}

// Render draws every shape, then the debug overlays that are enabled
func (r *Renderer) Render(screen *ebiten.Image, world *physics.World, paused bool) {
	for _, s := range world.Shapes() {
		r.RenderShape(screen, s)
	}

	debug := GetDebugState()
	if debug.ShowProbes {
		r.renderProbes(screen, world.Collisions().Probes())
	}
	if debug.ShowHUD {
		r.renderHUD(screen, world, paused)
	}
}

// RenderShape draws one shape as a closed vertex loop
func (r *Renderer) RenderShape(screen *ebiten.Image, s *physics.Shape) {
	vs := s.WorldVertices()

	if s.Style.Fill {
		r.fillPolygon(screen, vs, s.Style.Color)
	}

	width := float32(s.Size.Width)
	for i, v := range vs {
		next := vs[(i+1)%len(vs)]
		vector.StrokeLine(screen, float32(v.X), float32(v.Y), float32(next.X), float32(next.Y), width, s.Style.Color, true)
	}
}

func (r *Renderer) fillPolygon(screen *ebiten.Image, vs []geom.Coord, clr color.NRGBA) {
	var path vector.Path
	path.MoveTo(float32(vs[0].X), float32(vs[0].Y))
	for _, v := range vs[1:] {
		path.LineTo(float32(v.X), float32(v.Y))
	}
	path.Close()

	r.vertices, r.indices = path.AppendVerticesAndIndicesForFilling(r.vertices[:0], r.indices[:0])
	cr, cg, cb, ca := float32(clr.R)/255, float32(clr.G)/255, float32(clr.B)/255, float32(clr.A)/255
	for i := range r.vertices {
		r.vertices[i].SrcX = 1
		r.vertices[i].SrcY = 1
		r.vertices[i].ColorR = cr * ca
		r.vertices[i].ColorG = cg * ca
		r.vertices[i].ColorB = cb * ca
		r.vertices[i].ColorA = ca
	}

	op := &ebiten.DrawTrianglesOptions{}
	op.AntiAlias = true
	op.FillRule = ebiten.FillRuleNonZero
	screen.DrawTriangles(r.vertices, r.indices, fillSource(), op)
}

func (r *Renderer) renderProbes(screen *ebiten.Image, probes []physics.Probe) {
	for _, p := range probes {
		clr := probeRejectedColor
		if p.Accepted {
			clr = probeAcceptedColor
		}
		vector.DrawFilledCircle(screen, float32(p.Point.X), float32(p.Point.Y), probeRadius, clr, true)
	}
}

func (r *Renderer) renderHUD(screen *ebiten.Image, world *physics.World, paused bool) {
	lines := make([]string, 0, len(world.Shapes())+1)

	status := "running"
	if paused {
		status = "paused"
	}
	lines = append(lines, fmt.Sprintf("tick %d (%s)", world.Tick(), status))

	for _, s := range world.Shapes() {
		if s.Static {
			lines = append(lines, fmt.Sprintf("#%d static at (%.1f, %.1f)", s.ID, s.Position.X, s.Position.Y))
			continue
		}
		rest := world.Rest(s.ID)
		lines = append(lines, fmt.Sprintf("#%d pos (%.2f, %.2f) vel (%.2f, %.2f) resting=%v",
			s.ID, s.Position.X, s.Position.Y, s.Velocity.X, s.Velocity.Y, rest.Resting))
	}

	op := &text.DrawOptions{}
	op.GeoM.Translate(hudMargin, hudMargin)
	op.ColorScale.ScaleWithColor(hudColor)
	op.LineSpacing = hudLineHeight
	text.Draw(screen, strings.Join(lines, "\n"), r.face, op)
}
