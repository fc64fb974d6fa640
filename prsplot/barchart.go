// Package prsplot renders optional, purely cosmetic views of a score
// table. Nothing in the core pipeline depends on it.
package prsplot

import (
	"bytes"
	"fmt"
	"os"

	"github.com/wcharczuk/go-chart/v2"

	"github.com/momole/riskmap/prscore"
)

// BarChart renders one bar per aggregation key, bar height equal to the
// score, and writes the chart as a PNG to filename.
func BarChart(filename, keyColumn string, results []prscore.Result) error {
	if len(results) == 0 {
		return fmt.Errorf("no scores to plot")
	}

	bars := make([]chart.Value, 0, len(results))
	for _, r := range results {
		bars = append(bars, chart.Value{Label: r.Key, Value: r.Score})
	}

	graph := chart.BarChart{
		Title:    "PRS by " + keyColumn,
		Width:    1024,
		Height:   512,
		BarWidth: 60,
		XAxis: chart.Style{
			TextRotationDegrees: 45,
		},
		Bars: bars,
	}

	// Render to a byte buffer
	buffer := bytes.NewBuffer([]byte{})
	if err := graph.Render(chart.PNG, buffer); err != nil {
		return err
	}

	outFile, err := os.Create(filename)
	if err != nil {
		return err
	}
	if _, err := buffer.WriteTo(outFile); err != nil {
		outFile.Close()
		return err
	}

	return outFile.Close()
}
