// antsolve runs the ant colony TSP solver over one Graphviz-style .dot
// file and prints the best tours found by the sequential and parallel
// runners.
package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/urfave/cli/v2"

	"github.com/katalvlaran/antcolony/colony"
	"github.com/katalvlaran/antcolony/graph"
	"github.com/katalvlaran/antcolony/logger"
)

var app = &cli.App{
	Name:  "antsolve",
	Usage: "solve the traveling salesman problem on a .dot graph with ant colony optimization",
	Flags: []cli.Flag{
		&cli.StringFlag{Name: "graph", Usage: "path to the .dot graph file", Required: true},
		&cli.IntFlag{Name: "ants", Usage: "tours constructed per iteration", Value: 128},
		&cli.IntFlag{Name: "iterations", Usage: "iteration count", Value: 150},
		&cli.IntFlag{Name: "threads", Usage: "worker count for the parallel runner", Value: runtime.NumCPU()},
		&cli.Int64Flag{Name: "seed", Usage: "random seed", Value: 42},
		&cli.Float64Flag{Name: "alpha", Usage: "pheromone influence exponent", Value: 1.0},
		&cli.Float64Flag{Name: "beta", Usage: "heuristic influence exponent", Value: 3.0},
		&cli.Float64Flag{Name: "evaporation", Usage: "pheromone evaporation rate", Value: 0.5},
		&cli.Float64Flag{Name: "q", Usage: "pheromone deposit factor", Value: 100.0},
		&cli.BoolFlag{Name: "only-seq", Usage: "run only the sequential solver"},
		&cli.BoolFlag{Name: "only-par", Usage: "run only the parallel solver"},
		&cli.BoolFlag{Name: "print-paths", Usage: "print the best tours", Value: true},
		&cli.StringFlag{Name: "log-level", Usage: "log level (DEBUG, INFO, ...)", Value: "INFO"},
	},
	Action: solve,
}

func main() {
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func solve(ctx *cli.Context) error {
	log := logger.NewLogger(ctx.String("log-level"), "antsolve")

	g, err := graph.ParseDOTFile(ctx.String("graph"))
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}
	solver, err := colony.New(g)
	if err != nil {
		return err
	}

	params := colony.Parameters{
		Ants:        ctx.Int("ants"),
		Iterations:  ctx.Int("iterations"),
		Alpha:       ctx.Float64("alpha"),
		Beta:        ctx.Float64("beta"),
		Evaporation: ctx.Float64("evaporation"),
		Q:           ctx.Float64("q"),
		Seed:        ctx.Int64("seed"),
	}
	threads := ctx.Int("threads")
	if threads < 1 {
		threads = 1
	}

	log.Infof("graph has %d vertices", g.VertexCount())
	log.Infof("ants=%d iterations=%d threads=%d seed=%d", params.Ants, params.Iterations, threads, params.Seed)

	printPaths := ctx.Bool("print-paths")
	if !ctx.Bool("only-par") {
		printResult("sequential", solver.RunSequential(params), printPaths)
	}
	if !ctx.Bool("only-seq") {
		printResult(fmt.Sprintf("parallel (%d workers)", threads), solver.RunParallel(params, threads), printPaths)
	}
	return nil
}

func printResult(title string, result colony.Result, printPaths bool) {
	fmt.Printf("== %s ==\n", title)
	if len(result.BestTours) == 0 {
		fmt.Println("no feasible cycle found")
		return
	}
	fmt.Printf("best tour length: %.3f\n", result.BestLength)
	fmt.Printf("tours with the best length: %d\n", len(result.BestTours))
	fmt.Printf("elapsed: %.2f ms\n", result.Elapsed.Seconds()*1000)
	if !printPaths {
		return
	}

	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.AppendHeader(table.Row{"#", "tour"})
	for i, labels := range result.BestLabels {
		t.AppendRow(table.Row{i + 1, labels})
	}
	t.Render()
}
