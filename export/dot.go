package export

import (
	"fmt"
	"io"
	"strings"
	"unicode"

	"gonum.org/v1/gonum/graph/encoding/dot"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/katalvlaran/sirg/core"
)

// ToGonum copies g into a gonum undirected graph with the same node IDs.
func ToGonum(g *core.Graph) *simple.UndirectedGraph {
	out := simple.NewUndirectedGraph()
	for _, v := range g.Vertices() {
		out.AddNode(simple.Node(v))
	}
	for _, e := range g.Edges() {
		out.SetEdge(out.NewEdge(simple.Node(e.From), simple.Node(e.To)))
	}

	return out
}

// WriteDOT writes g in Graphviz DOT format.
func WriteDOT(w io.Writer, g *core.Graph) error {
	if g == nil {
		return fmt.Errorf("WriteDOT: %w", core.ErrGraphNil)
	}
	b, err := dot.Marshal(ToGonum(g), dotName(g.Name()), "", "\t")
	if err != nil {
		return fmt.Errorf("WriteDOT: %w", err)
	}
	if _, err := w.Write(append(b, '\n')); err != nil {
		return fmt.Errorf("WriteDOT: %w", err)
	}

	return nil
}

// dotName keeps letters, digits and underscores so the name is a bare DOT ID.
func dotName(name string) string {
	return strings.Map(func(r rune) rune {
		if r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r) {
			return r
		}
		return '_'
	}, name)
}
