// Package render draws simulation frames without a window.
package render

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"

	"polyfall/physics"
)

// Rasterizer renders shapes into RGBA frames
type Rasterizer struct {
	width      int
	height     int
	background color.Color
}

// NewRasterizer creates a rasterizer for frames of the given size
func NewRasterizer(width, height int, background color.Color) *Rasterizer {
	return &Rasterizer{
		width:      width,
		height:     height,
		background: background,
	}
}

// Draw renders the shapes onto a fresh frame cleared to the background color
func (r *Rasterizer) Draw(shapes []*physics.Shape) (*image.RGBA, error) {
	img := image.NewRGBA(image.Rect(0, 0, r.width, r.height))
	draw.Draw(img, img.Bounds(), image.NewUniform(r.background), image.Point{}, draw.Src)

	var buf bytes.Buffer
	if err := WriteSVG(&buf, r.width, r.height, shapes); err != nil {
		return nil, err
	}
	icon, err := oksvg.ReadIconStream(&buf)
	if err != nil {
		return nil, fmt.Errorf("failed to parse frame: %w", err)
	}
	icon.SetTarget(0, 0, float64(r.width), float64(r.height))

	scanner := rasterx.NewScannerGV(r.width, r.height, img, img.Bounds())
	raster := rasterx.NewDasher(r.width, r.height, scanner)
	icon.Draw(raster, 1.0)

	return img, nil
}

// WritePNG renders the shapes and encodes the frame as PNG
func (r *Rasterizer) WritePNG(w io.Writer, shapes []*physics.Shape) error {
	img, err := r.Draw(shapes)
	if err != nil {
		return err
	}
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("failed to encode png: %w", err)
	}
	return nil
}
