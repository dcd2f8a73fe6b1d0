// antbench sweeps the ant colony solvers over a range of generated graph
// sizes and worker counts, writes the averaged wall times as CSV and,
// optionally, as an HTML chart.
package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/katalvlaran/antcolony/bench"
	"github.com/katalvlaran/antcolony/colony"
	"github.com/katalvlaran/antcolony/logger"
)

var app = &cli.App{
	Name:  "antbench",
	Usage: "benchmark the sequential and parallel ant colony solvers over generated graphs",
	Flags: []cli.Flag{
		&cli.StringFlag{Name: "sizes", Usage: "comma-separated vertex counts", Value: "3000,3500,4000,4500,5000,5500,6000,6500,7000"},
		&cli.IntFlag{Name: "runs", Usage: "runs averaged per cell", Value: 100},
		&cli.StringFlag{Name: "output", Usage: "CSV output path", Value: "benchmark_results.csv"},
		&cli.StringFlag{Name: "chart", Usage: "optional HTML chart output path"},
		&cli.StringFlag{Name: "threads", Usage: "comma-separated worker counts (default 1,2,4,8xCPU)"},
		&cli.IntFlag{Name: "ants", Usage: "tours constructed per iteration", Value: 128},
		&cli.IntFlag{Name: "iterations", Usage: "iteration count", Value: 150},
		&cli.Float64Flag{Name: "alpha", Usage: "pheromone influence exponent", Value: 1.0},
		&cli.Float64Flag{Name: "beta", Usage: "heuristic influence exponent", Value: 3.0},
		&cli.Float64Flag{Name: "evaporation", Usage: "pheromone evaporation rate", Value: 0.5},
		&cli.Float64Flag{Name: "q", Usage: "pheromone deposit factor", Value: 100.0},
		&cli.Int64Flag{Name: "seed", Usage: "base random seed", Value: 42},
		&cli.IntFlag{Name: "max-out-degree", Usage: "out-degree cap of generated vertices", Value: 15},
		&cli.StringFlag{Name: "log-level", Usage: "log level (DEBUG, INFO, ...)", Value: "INFO"},
	},
	Action: run,
}

func main() {
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx *cli.Context) error {
	log := logger.NewLogger(ctx.String("log-level"), "antbench")

	sizes, err := parseIntList(ctx.String("sizes"))
	if err != nil {
		return cli.Exit(fmt.Sprintf("invalid --sizes: %v", err), 1)
	}
	var threads []int
	if raw := ctx.String("threads"); raw != "" {
		if threads, err = parseIntList(raw); err != nil {
			return cli.Exit(fmt.Sprintf("invalid --threads: %v", err), 1)
		}
	}

	cfg := bench.Config{
		Sizes:        sizes,
		Runs:         ctx.Int("runs"),
		ThreadCounts: threads,
		MaxOutDegree: ctx.Int("max-out-degree"),
		Params: colony.Parameters{
			Ants:        ctx.Int("ants"),
			Iterations:  ctx.Int("iterations"),
			Alpha:       ctx.Float64("alpha"),
			Beta:        ctx.Float64("beta"),
			Evaporation: ctx.Float64("evaporation"),
			Q:           ctx.Float64("q"),
			Seed:        ctx.Int64("seed"),
		},
	}

	measurements, err := bench.Run(cfg, log)
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}

	if err = writeCSVFile(ctx.String("output"), measurements); err != nil {
		return cli.Exit(err.Error(), 1)
	}
	log.Infof("results written to %s", ctx.String("output"))

	if chartPath := ctx.String("chart"); chartPath != "" {
		if err = writeChartFile(chartPath, measurements); err != nil {
			return cli.Exit(err.Error(), 1)
		}
		log.Infof("chart written to %s", chartPath)
	}
	return nil
}

func writeCSVFile(path string, measurements []bench.Measurement) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return bench.WriteCSV(f, measurements)
}

func writeChartFile(path string, measurements []bench.Measurement) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return bench.RenderChart(f, measurements)
}

// parseIntList splits a comma-separated list of positive integers.
func parseIntList(raw string) ([]int, error) {
	parts := strings.Split(raw, ",")
	out := make([]int, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		v, err := strconv.Atoi(part)
		if err != nil {
			return nil, err
		}
		if v < 1 {
			return nil, fmt.Errorf("value %d is not positive", v)
		}
		out = append(out, v)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("empty list")
	}
	return out, nil
}
