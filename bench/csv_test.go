package bench_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/antcolony/bench"
)

func TestWriteCSV(t *testing.T) {
	measurements := []bench.Measurement{
		{Vertices: 3000, Variant: bench.VariantSequential, Threads: 1, AverageMS: 12.5},
		{Vertices: 3000, Variant: bench.VariantParallel, Threads: 4, AverageMS: 4.25},
	}

	var sb strings.Builder
	require.NoError(t, bench.WriteCSV(&sb, measurements))

	lines := strings.Split(strings.TrimRight(sb.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "vertices,variant,threads,average_ms", lines[0])
	assert.Equal(t, "3000,sequential,1,12.500000", lines[1])
	assert.Equal(t, "3000,parallel,4,4.250000", lines[2])
}

func TestWriteCSV_Empty(t *testing.T) {
	var sb strings.Builder
	require.NoError(t, bench.WriteCSV(&sb, nil))
	assert.Equal(t, "vertices,variant,threads,average_ms\n", sb.String())
}
