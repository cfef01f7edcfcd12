// SPDX-License-Identifier: MIT
//
// File: edgelist.go
// Role: Whitespace-separated edge lists.
//
// One edge per line ("u v", extra columns ignored); a line with a single ID
// declares an isolated vertex. '#' starts a comment.

package export

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/sirg/core"
)

// WriteEdgeList writes every edge of g, then every isolate on its own line.
func WriteEdgeList(w io.Writer, g *core.Graph) error {
	if g == nil {
		return fmt.Errorf("WriteEdgeList: %w", core.ErrGraphNil)
	}
	bw := bufio.NewWriter(w)
	if name := g.Name(); name != "" {
		fmt.Fprintf(bw, "# %s\n", name)
	}
	for _, e := range g.Edges() {
		fmt.Fprintf(bw, "%d %d\n", e.From, e.To)
	}
	for _, v := range g.Isolates() {
		fmt.Fprintf(bw, "%d\n", v)
	}

	return bw.Flush()
}

// ReadEdgeList parses an edge list. Duplicate edges collapse into one;
// self-loops are rejected.
func ReadEdgeList(r io.Reader) (*core.Graph, error) {
	g := core.NewGraph()
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text, _, _ := strings.Cut(sc.Text(), "#")
		f := strings.Fields(text)
		if len(f) == 0 {
			continue
		}
		u, err := strconv.ParseInt(f[0], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("ReadEdgeList: line %d: %q: %w", line, f[0], ErrFormat)
		}
		if len(f) == 1 {
			if err := g.AddVertex(u); err != nil {
				return nil, fmt.Errorf("ReadEdgeList: line %d: %w", line, err)
			}
			continue
		}
		v, err := strconv.ParseInt(f[1], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("ReadEdgeList: line %d: %q: %w", line, f[1], ErrFormat)
		}
		if _, err := g.MergeEdges([][2]int64{{u, v}}); err != nil {
			return nil, fmt.Errorf("ReadEdgeList: line %d: %w", line, err)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("ReadEdgeList: %w", err)
	}

	return g, nil
}
