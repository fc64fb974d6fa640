package prsplot

import (
	"fmt"

	"github.com/fogleman/gg"
	"golang.org/x/image/font/basicfont"

	"github.com/momole/riskmap/prscore"
)

// geneSetRegion assigns gene sets to world regions for the risk map. The
// assignment is illustrative scaffolding only: it exists so the map has
// something to color, and it implies no real geographic inference.
var geneSetRegion = map[string]string{
	"Cardiac_Function":    "North America",
	"DNA_Repair":          "South America",
	"Lipid_Metabolism":    "Western Europe",
	"Immune_Response":     "Africa",
	"Glucose_Homeostasis": "South Asia",
	"Neuro_Development":   "East Asia",
}

// regionTile places each region on a fixed grid of colored tiles standing
// in for country boundaries.
type regionTile struct {
	Name     string
	Col, Row int
}

var regionTiles = []regionTile{
	{"North America", 0, 0},
	{"South America", 0, 1},
	{"Western Europe", 1, 0},
	{"Africa", 1, 1},
	{"South Asia", 2, 0},
	{"East Asia", 2, 1},
}

const (
	tileWidth  = 220
	tileHeight = 140
	tileMargin = 10
)

// RiskMap renders a simulated choropleth of gene-set scores and writes it
// as a PNG to filename. Gene sets with no region assignment are skipped;
// regions with no score render gray.
func RiskMap(filename string, results []prscore.Result) error {
	if len(results) == 0 {
		return fmt.Errorf("no scores to map")
	}

	scores := regionScores(results)

	width := 3*tileWidth + 4*tileMargin
	height := 2*tileHeight + 3*tileMargin

	ctx := gg.NewContext(width, height)
	ctx.SetRGB(1, 1, 1)
	ctx.Clear()
	ctx.SetFontFace(basicfont.Face7x13)

	min, max := scoreRange(scores)

	for _, tile := range regionTiles {
		x := float64(tileMargin + tile.Col*(tileWidth+tileMargin))
		y := float64(tileMargin + tile.Row*(tileHeight+tileMargin))

		score, scored := scores[tile.Name]

		if scored {
			r, g, b := scoreColor(score, min, max)
			ctx.SetRGB(r, g, b)
		} else {
			// Undefined/missing-value color
			ctx.SetRGB(0.8, 0.8, 0.8)
		}
		ctx.DrawRectangle(x, y, tileWidth, tileHeight)
		ctx.Fill()

		ctx.SetRGB(0, 0, 0)
		ctx.DrawRectangle(x, y, tileWidth, tileHeight)
		ctx.Stroke()

		ctx.DrawString(tile.Name, x+8, y+18)
		if scored {
			ctx.DrawString(fmt.Sprintf("PRS %.4g", score), x+8, y+34)
		} else {
			ctx.DrawString("no data", x+8, y+34)
		}
	}

	return ctx.SavePNG(filename)
}

// regionScores sums scores per region. Keys absent from geneSetRegion do
// not contribute.
func regionScores(results []prscore.Result) map[string]float64 {
	out := make(map[string]float64)
	for _, r := range results {
		region, exists := geneSetRegion[r.Key]
		if !exists {
			continue
		}

		out[region] += r.Score
	}

	return out
}

func scoreRange(scores map[string]float64) (min, max float64) {
	first := true
	for _, score := range scores {
		if first {
			min, max = score, score
			first = false
			continue
		}

		if score < min {
			min = score
		}
		if score > max {
			max = score
		}
	}

	return min, max
}

// scoreColor shades from near-white at the low end of the observed range
// to saturated red at the high end.
func scoreColor(score, min, max float64) (r, g, b float64) {
	t := 0.5
	if max > min {
		t = (score - min) / (max - min)
	}

	return 1, 0.9 * (1 - t), 0.9 * (1 - t)
}
