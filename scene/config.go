package scene

// =============================================================================
// CHART CONFIGURATION
// =============================================================================

// Padding reserves margin around the drawing area for axis titles and value
// labels. Left and Bottom are larger because they host the value labels.
type Padding struct {
	Left   float64 `json:"left"`
	Right  float64 `json:"right"`
	Top    float64 `json:"top"`
	Bottom float64 `json:"bottom"`
}

// Config holds the rendering parameters for one chart. The host owns the
// defaults (see DefaultConfig and the factory package); Build never reads
// ambient state and never substitutes defaults itself.
type Config struct {
	Width   float64 `json:"width"`
	Height  float64 `json:"height"`
	Padding Padding `json:"padding"`

	// HasGate asks for the gate met/not-met annotations. It is
	// caller-asserted metadata, independent of the band data shape.
	HasGate bool `json:"has_gate"`
}

// DefaultConfig returns the standard chart dimensions.
func DefaultConfig() Config {
	return Config{
		Width:  700,
		Height: 420,
		Padding: Padding{
			Left:   60,
			Right:  40,
			Top:    30,
			Bottom: 50,
		},
	}
}

// plotWidth is the horizontal extent available to data.
func (c Config) plotWidth() float64 { return c.Width - c.Padding.Left - c.Padding.Right }

// plotHeight is the vertical extent available to data.
func (c Config) plotHeight() float64 { return c.Height - c.Padding.Top - c.Padding.Bottom }

// baselineY is the pixel Y of payout zero. Both Top and Bottom are
// subtracted here; the Y transform mirrors this so the curve still lands on
// the baseline.
func (c Config) baselineY() float64 { return c.Height - c.Padding.Bottom - c.Padding.Top }
