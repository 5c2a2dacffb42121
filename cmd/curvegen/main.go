/*
main.go - One-shot curve renderer CLI

PURPOSE:
  Renders a plan config JSON file to an SVG without running the server.
  Useful for batch generation and for embedding curve images in docs.

COMMAND-LINE FLAGS:
  -in       Plan config JSON file (default: plan.json)
  -out      Output SVG file (default: curve.svg)
  -width    Chart width override in pixels (0 keeps the config value)
  -height   Chart height override in pixels (0 keeps the config value)

PARSE MODE:
  Lenient. A malformed config still produces an SVG (a degenerate empty
  chart) so pipelines never fail on a single bad plan. Diagnostics go to
  stderr via the standard logger.

EXAMPLES:
  ./curvegen -in=fy26.json -out=fy26.svg
  ./curvegen -in=fy26.json -out=wide.svg -width=1000

SEE ALSO:
  - factory/plan.go: Config schema and lenient parse
  - svg/render.go: SVG emission
*/
package main

import (
	"flag"
	"log"
	"os"

	"github.com/warp/comp-curve/curve"
	"github.com/warp/comp-curve/factory"
	"github.com/warp/comp-curve/scene"
	"github.com/warp/comp-curve/svg"
)

func main() {
	in := flag.String("in", "plan.json", "Plan config JSON file")
	out := flag.String("out", "curve.svg", "Output SVG file")
	width := flag.Int("width", 0, "Chart width override in pixels (0 keeps config)")
	height := flag.Int("height", 0, "Chart height override in pixels (0 keeps config)")
	flag.Parse()

	raw, err := os.ReadFile(*in)
	if err != nil {
		log.Fatalf("Failed to read config: %v", err)
	}

	plan := factory.NewPlanFactory().ParsePlanLenient(string(raw))
	if *width > 0 {
		plan.Config.Width = float64(*width)
	}
	if *height > 0 {
		plan.Config.Height = float64(*height)
	}

	ds := curve.Evaluate(plan.Bands)
	doc := svg.Render(scene.Build(ds, plan.Bands, plan.Config))

	if err := os.WriteFile(*out, []byte(doc), 0o644); err != nil {
		log.Fatalf("Failed to write SVG: %v", err)
	}
	log.Printf("Wrote %s (%d bands, %d points)", *out, len(plan.Bands), len(ds.Points))
}
