/*
Package scene maps an evaluated curve dataset into a renderable scene.

PURPOSE:
  Converts curve boundary points plus chart dimensions into a flat list of
  positioned drawable primitives: axis lines, gridlines, tick labels, the
  curve polyline, per-segment rate labels, and optional gate annotations.
  The package never touches a display surface; a renderer (the svg package,
  or any 2-D drawing API) materializes the primitives.

KEY CONCEPTS IN THIS FILE (scene.go):
  - Primitive: one drawable thing (line, path, or text) in pixel space
  - Role: what the primitive is semantically (axis, gridline, curve, ...)
  - Tone: color-intent signaling without owning presentation styling
  - Scene: the flat primitive list for one render pass

LIFECYCLE:
  A Scene is ephemeral - rebuilt from scratch on every render, never
  persisted. Build is a pure function; re-invoking with identical inputs
  produces an identical Scene.

SEE ALSO:
  - config.go: Chart dimensions and padding
  - builder.go: The Build function
  - svg package: One concrete rendering surface
*/
package scene

// =============================================================================
// PRIMITIVE MODEL
// =============================================================================

// Kind is the geometric shape of a primitive.
type Kind string

const (
	KindLine Kind = "line"
	KindPath Kind = "path"
	KindText Kind = "text"
)

// Role tags a primitive with its semantic purpose so renderers and tests
// can select primitives without geometry heuristics.
type Role string

const (
	RoleAxis       Role = "axis"
	RoleGridlineX  Role = "gridline_x"
	RoleGridlineY  Role = "gridline_y"
	RoleAxisLabelX Role = "axis_label_x"
	RoleAxisLabelY Role = "axis_label_y"
	RoleAxisTitle  Role = "axis_title"
	RoleCurve      Role = "curve"
	RoleRateLabel  Role = "rate_label"
	RoleGateMet    Role = "gate_met"
	RoleGateNotMet Role = "gate_not_met"
)

// Tone signals color intent. The renderer owns the actual palette.
type Tone string

const (
	ToneNeutral Tone = ""
	ToneCaution Tone = "caution"
	ToneSuccess Tone = "success"
)

// Anchor is horizontal text alignment relative to the text position.
type Anchor string

const (
	AnchorStart  Anchor = "start"
	AnchorMiddle Anchor = "middle"
	AnchorEnd    Anchor = "end"
)

// Point is a pixel-space coordinate. Y grows downward.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Primitive is one drawable element. Which fields are meaningful depends on
// Kind: lines use From/To, paths use Points, text uses At/Text/Anchor.
type Primitive struct {
	Kind Kind `json:"kind"`
	Role Role `json:"role"`

	// KindLine
	From Point `json:"from,omitempty"`
	To   Point `json:"to,omitempty"`

	// KindPath
	Points []Point `json:"points,omitempty"`

	// KindText
	At       Point   `json:"at,omitempty"`
	Text     string  `json:"text,omitempty"`
	Anchor   Anchor  `json:"anchor,omitempty"`
	Rotation float64 `json:"rotation,omitempty"` // degrees, about At

	// Styling intent
	Dashed bool `json:"dashed,omitempty"`
	Arrow  bool `json:"arrow,omitempty"` // directional arrowhead at path end
	Tone   Tone `json:"tone,omitempty"`
}

// Scene is the flat set of positioned primitives for one render pass.
type Scene struct {
	Width      float64     `json:"width"`
	Height     float64     `json:"height"`
	Primitives []Primitive `json:"primitives"`
}

// ByRole returns the primitives tagged with the given role, in emission
// order.
func (s Scene) ByRole(role Role) []Primitive {
	var out []Primitive
	for _, p := range s.Primitives {
		if p.Role == role {
			out = append(out, p)
		}
	}
	return out
}

// CountRole returns how many primitives carry the given role.
func (s Scene) CountRole(role Role) int {
	n := 0
	for _, p := range s.Primitives {
		if p.Role == role {
			n++
		}
	}
	return n
}
