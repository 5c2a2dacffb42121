/*
Package svg materializes a scene as an SVG document.

PURPOSE:
  One concrete rendering surface for scene.Scene. Owns all presentation
  styling - palette, fonts, stroke widths, dash pattern, the arrowhead
  marker - so the scene package stays geometry-only. Swapping this package
  for a canvas or PDF backend requires no core changes.

OUTPUT:
  A standalone <svg> document string. Pure string assembly, no display
  environment needed; safe to run server-side.

SEE ALSO:
  - scene package: The primitive model this package consumes
*/
package svg

import (
	"fmt"
	"strings"

	"github.com/warp/comp-curve/scene"
)

// Palette maps tones and roles to presentation styling.
type Palette struct {
	Background string
	Axis       string
	Grid       string
	Curve      string
	Text       string
	Caution    string
	Success    string
	FontFamily string
	FontSize   int
}

// DefaultPalette returns the standard chart styling.
func DefaultPalette() Palette {
	return Palette{
		Background: "#ffffff",
		Axis:       "#333333",
		Grid:       "#d4d4d4",
		Curve:      "#2563eb",
		Text:       "#333333",
		Caution:    "#b45309",
		Success:    "#15803d",
		FontFamily: "system-ui, sans-serif",
		FontSize:   12,
	}
}

const arrowMarkerID = "curve-arrow"

// Render serializes a scene with the default palette.
func Render(s scene.Scene) string {
	return RenderWithPalette(s, DefaultPalette())
}

// RenderWithPalette serializes a scene as an SVG document.
func RenderWithPalette(s scene.Scene, pal Palette) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(
		`<svg xmlns="http://www.w3.org/2000/svg" width="%g" height="%g" viewBox="0 0 %g %g" font-family="%s" font-size="%d">`,
		s.Width, s.Height, s.Width, s.Height, pal.FontFamily, pal.FontSize))

	if hasArrowPath(s) {
		sb.WriteString(fmt.Sprintf(
			`<defs><marker id="%s" markerWidth="10" markerHeight="8" refX="8" refY="4" orient="auto"><path d="M0,0 L8,4 L0,8 z" fill="%s"/></marker></defs>`,
			arrowMarkerID, pal.Curve))
	}

	sb.WriteString(fmt.Sprintf(`<rect x="0" y="0" width="%g" height="%g" fill="%s"/>`,
		s.Width, s.Height, pal.Background))

	for _, p := range s.Primitives {
		switch p.Kind {
		case scene.KindLine:
			writeLine(&sb, p, pal)
		case scene.KindPath:
			writePath(&sb, p, pal)
		case scene.KindText:
			writeText(&sb, p, pal)
		}
	}

	sb.WriteString("</svg>")
	return sb.String()
}

func writeLine(sb *strings.Builder, p scene.Primitive, pal Palette) {
	stroke := pal.Grid
	width := 1.0
	switch {
	case p.Role == scene.RoleAxis:
		stroke = pal.Axis
		width = 1.5
	case p.Tone != scene.ToneNeutral:
		stroke = toneColor(p.Tone, pal)
	}

	dash := ""
	if p.Dashed {
		dash = ` stroke-dasharray="6,4"`
	}

	fmt.Fprintf(sb, `<line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="%s" stroke-width="%g"%s/>`,
		p.From.X, p.From.Y, p.To.X, p.To.Y, stroke, width, dash)
}

func writePath(sb *strings.Builder, p scene.Primitive, pal Palette) {
	if len(p.Points) == 0 {
		return
	}

	parts := make([]string, 0, len(p.Points))
	for i, pt := range p.Points {
		cmd := "L"
		if i == 0 {
			cmd = "M"
		}
		parts = append(parts, fmt.Sprintf("%s%.1f,%.1f", cmd, pt.X, pt.Y))
	}

	marker := ""
	if p.Arrow {
		marker = fmt.Sprintf(` marker-end="url(#%s)"`, arrowMarkerID)
	}

	fmt.Fprintf(sb, `<path d="%s" fill="none" stroke="%s" stroke-width="2"%s/>`,
		strings.Join(parts, " "), pal.Curve, marker)
}

func writeText(sb *strings.Builder, p scene.Primitive, pal Palette) {
	fill := pal.Text
	if p.Tone != scene.ToneNeutral {
		fill = toneColor(p.Tone, pal)
	}

	anchor := p.Anchor
	if anchor == "" {
		anchor = scene.AnchorStart
	}

	rotate := ""
	if p.Rotation != 0 {
		rotate = fmt.Sprintf(` transform="rotate(%g,%.1f,%.1f)"`, p.Rotation, p.At.X, p.At.Y)
	}

	fmt.Fprintf(sb, `<text x="%.1f" y="%.1f" fill="%s" text-anchor="%s"%s>%s</text>`,
		p.At.X, p.At.Y, fill, anchor, rotate, escapeXML(p.Text))
}

func toneColor(t scene.Tone, pal Palette) string {
	switch t {
	case scene.ToneCaution:
		return pal.Caution
	case scene.ToneSuccess:
		return pal.Success
	default:
		return pal.Text
	}
}

func hasArrowPath(s scene.Scene) bool {
	for _, p := range s.Primitives {
		if p.Kind == scene.KindPath && p.Arrow {
			return true
		}
	}
	return false
}

func escapeXML(s string) string {
	r := strings.NewReplacer(
		"&", "&amp;",
		"<", "&lt;",
		">", "&gt;",
		`"`, "&quot;",
	)
	return r.Replace(s)
}
