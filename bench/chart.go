// SPDX-License-Identifier: MIT
// Package bench: HTML chart rendering of sweep results.

package bench

import (
	"fmt"
	"io"
	"sort"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// seriesName labels one chart line, e.g. "sequential" or "parallel(4)".
func seriesName(m Measurement) string {
	if m.Variant == VariantSequential {
		return VariantSequential
	}
	return fmt.Sprintf("%s(%d)", m.Variant, m.Threads)
}

// RenderChart writes an HTML page with one line per (variant, threads)
// series, average milliseconds over vertex count. Useful to eyeball the
// crossover point where the parallel runner starts paying off.
func RenderChart(w io.Writer, measurements []Measurement) error {
	// Collect the sorted size axis and group values per series.
	sizeSet := make(map[int]struct{})
	series := make(map[string]map[int]float64)
	order := make([]string, 0, 8)
	for _, m := range measurements {
		sizeSet[m.Vertices] = struct{}{}
		name := seriesName(m)
		if _, ok := series[name]; !ok {
			series[name] = make(map[int]float64)
			order = append(order, name)
		}
		series[name][m.Vertices] = m.AverageMS
	}

	sizes := make([]int, 0, len(sizeSet))
	for s := range sizeSet {
		sizes = append(sizes, s)
	}
	sort.Ints(sizes)

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "Ant colony solver scaling"}),
		charts.WithXAxisOpts(opts.XAxis{Name: "vertices"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "average ms"}),
		charts.WithLegendOpts(opts.Legend{Show: true}),
	)
	line.SetXAxis(sizes)
	for _, name := range order {
		points := make([]opts.LineData, 0, len(sizes))
		for _, s := range sizes {
			points = append(points, opts.LineData{Value: series[name][s]})
		}
		line.AddSeries(name, points)
	}

	if err := line.Render(w); err != nil {
		return fmt.Errorf("bench: render chart: %w", err)
	}
	return nil
}
