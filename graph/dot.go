// SPDX-License-Identifier: MIT
// Package graph: line-oriented reader for the Graphviz edge-list subset.
//
// Recognized forms (whitespace-trimmed, trailing ';' optional):
//
//	<src> -> <dst> [ ... weight=<number> ... ]
//	<src> -> <dst> [ ... label=<number>  ... ]
//	<src> -> <dst> [ ... w=<number>      ... ]
//	<src> -> <dst> [ <number> ]
//	<src> -- <dst> [ ... ]     undirected, written in both directions
//	<src> -> <dst>             weight defaults to 1.0
//
// Endpoint tokens may be bare or single/double-quoted. Blank lines, lines
// starting with '#', and lines containing neither "->" nor "--" are
// ignored. Malformed edge lines are skipped silently; only an input that
// produces no vertices at all is an error.
//
// Vertex indices are assigned by the lexicographic order of all labels
// seen in the stream, so the same label set always maps to the same
// indices. A later edge with the same endpoints overwrites an earlier one.
//
// Complexity: O(L·len) to scan L lines, O(n²) to allocate the matrix.
package graph

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"os"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/mat"
)

// defaultEdgeWeight applies when an edge carries no weight attribute.
const defaultEdgeWeight = 1.0

var (
	// keyedWeightRe extracts "weight=<num>", "label=<num>" or "w=<num>"
	// from an attribute block.
	keyedWeightRe = regexp.MustCompile(`(?:weight|label|w)\s*=\s*([-+]?(?:[0-9]*\.[0-9]+|[0-9]+)(?:[eE][-+]?[0-9]+)?)`)

	// bareNumberRe matches the first numeric literal in an attribute block,
	// the fallback when no keyed weight is present.
	bareNumberRe = regexp.MustCompile(`[-+]?(?:[0-9]*\.[0-9]+|[0-9]+)(?:[eE][-+]?[0-9]+)?`)
)

// rawEdge is one parsed edge line before index assignment.
type rawEdge struct {
	from, to      string
	weight        float64
	bidirectional bool
}

// ParseDOTFile reads the file at path and delegates to ParseDOT.
func ParseDOTFile(path string) (*Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("graph: open %s: %w", path, err)
	}
	defer f.Close()

	g, err := ParseDOT(f)
	if err != nil {
		return nil, fmt.Errorf("graph: parse %s: %w", path, err)
	}
	return g, nil
}

// ParseDOT scans the stream line by line and assembles a Graph.
// Returns ErrEmptyGraph when no edge line yields a vertex.
func ParseDOT(r io.Reader) (*Graph, error) {
	var (
		edges []rawEdge
		seen  = make(map[string]struct{})
	)

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		e, ok := parseEdgeLine(sc.Text())
		if !ok {
			continue
		}
		seen[e.from] = struct{}{}
		seen[e.to] = struct{}{}
		edges = append(edges, e)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("graph: read: %w", err)
	}
	if len(seen) == 0 {
		return nil, ErrEmptyGraph
	}

	// Sorted label order fixes the canonical index for this label set.
	labels := make([]string, 0, len(seen))
	for label := range seen {
		labels = append(labels, label)
	}
	sort.Strings(labels)

	n := len(labels)
	index := make(map[string]int, n)
	for i, label := range labels {
		index[label] = i
	}

	weights := mat.NewDense(n, n, nil)
	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if i != j {
				weights.Set(i, j, math.Inf(1))
			}
		}
	}
	for _, e := range edges {
		u := index[e.from]
		v := index[e.to]
		if u == v {
			// Self-loops only introduce the vertex; the diagonal stays 0.
			continue
		}
		weights.Set(u, v, e.weight)
		if e.bidirectional {
			weights.Set(v, u, e.weight)
		}
	}

	return &Graph{labels: labels, index: index, weights: weights}, nil
}

// parseEdgeLine extracts one edge from a line. The second return value is
// false for every line that should be skipped (blank, comment, no edge
// operator, empty endpoint token).
func parseEdgeLine(line string) (rawEdge, bool) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" || strings.HasPrefix(trimmed, "#") {
		return rawEdge{}, false
	}

	// "->" wins over "--" so that a directed edge whose label contains a
	// dash is not misread as undirected.
	op := strings.Index(trimmed, "->")
	bidirectional := false
	if op < 0 {
		op = strings.Index(trimmed, "--")
		bidirectional = true
	}
	if op < 0 {
		return rawEdge{}, false
	}

	fromToken := strings.TrimSpace(trimmed[:op])
	rest := trimmed[op+2:]

	toToken := rest
	attributes := ""
	if bracket := strings.IndexByte(rest, '['); bracket >= 0 {
		toToken = rest[:bracket]
		attributes = rest[bracket:]
	}
	if semi := strings.IndexByte(toToken, ';'); semi >= 0 {
		toToken = toToken[:semi]
	}
	toToken = strings.TrimSpace(toToken)

	if fromToken == "" || toToken == "" {
		return rawEdge{}, false
	}

	e := rawEdge{
		from:          stripQuotes(fromToken),
		to:            stripQuotes(toToken),
		weight:        defaultEdgeWeight,
		bidirectional: bidirectional,
	}
	if e.from == "" || e.to == "" {
		return rawEdge{}, false
	}
	if attributes != "" {
		if w, ok := parseWeight(attributes); ok {
			e.weight = w
		}
	}
	return e, true
}

// parseWeight pulls a weight out of an attribute block: a keyed
// weight/label/w attribute first, otherwise the first numeric literal.
func parseWeight(attributes string) (float64, bool) {
	if m := keyedWeightRe.FindStringSubmatch(attributes); m != nil {
		if w, err := strconv.ParseFloat(m[1], 64); err == nil {
			return w, true
		}
	}
	if m := bareNumberRe.FindString(attributes); m != "" {
		if w, err := strconv.ParseFloat(m, 64); err == nil {
			return w, true
		}
	}
	return 0, false
}

// stripQuotes removes one level of matching single or double quotes.
func stripQuotes(token string) string {
	if len(token) >= 2 {
		first, last := token[0], token[len(token)-1]
		if (first == '"' && last == '"') || (first == '\'' && last == '\'') {
			return token[1 : len(token)-1]
		}
	}
	return token
}
