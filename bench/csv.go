// SPDX-License-Identifier: MIT
// Package bench: CSV rendering of sweep results.

package bench

import (
	"fmt"
	"io"
)

// csvHeader is the fixed column set consumed by downstream tooling.
const csvHeader = "vertices,variant,threads,average_ms"

// WriteCSV renders measurements as CSV with six fractional digits on the
// millisecond column, one row per measurement in input order.
func WriteCSV(w io.Writer, measurements []Measurement) error {
	if _, err := fmt.Fprintln(w, csvHeader); err != nil {
		return fmt.Errorf("bench: write csv header: %w", err)
	}
	for _, m := range measurements {
		_, err := fmt.Fprintf(w, "%d,%s,%d,%.6f\n", m.Vertices, m.Variant, m.Threads, m.AverageMS)
		if err != nil {
			return fmt.Errorf("bench: write csv row: %w", err)
		}
	}
	return nil
}
