package render

import (
	"bufio"
	"fmt"
	"image/color"
	"io"
	"strings"

	"polyfall/physics"
)

// WriteSVG writes the shapes as an SVG document of the given size.
// Each shape becomes a closed polygon in world coordinates.
func WriteSVG(w io.Writer, width, height int, shapes []*physics.Shape) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, `<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">`+"\n",
		width, height, width, height)
	for _, s := range shapes {
		fill := "none"
		if s.Style.Fill {
			fill = hexColor(s.Style.Color)
		}
		fmt.Fprintf(bw, `  <polygon points="%s" fill="%s" stroke="%s" stroke-width="%g" stroke-linejoin="round" stroke-opacity="%g"/>`+"\n",
			points(s), fill, hexColor(s.Style.Color), s.Size.Width, float64(s.Style.Color.A)/255)
	}
	fmt.Fprint(bw, "</svg>\n")
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("failed to write svg: %w", err)
	}
	return nil
}

func points(s *physics.Shape) string {
	var sb strings.Builder
	for i, v := range s.WorldVertices() {
		if i > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "%.3f,%.3f", v.X, v.Y)
	}
	return sb.String()
}

func hexColor(c color.NRGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
