// SPDX-License-Identifier: MIT
//
// File: pajek.go
// Role: Pajek .net reader and writer.
//
// Written files hold one *Vertices section (1-based index, quoted label equal
// to the vertex ID) and one *Edges section. The reader also accepts *Arcs
// sections and unquoted labels. If every label is a distinct non-negative
// integer it becomes the vertex ID, otherwise index-1 does.

package export

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"

	"github.com/katalvlaran/sirg/core"
)

// WritePajek writes g in Pajek format.
func WritePajek(w io.Writer, g *core.Graph) error {
	if g == nil {
		return fmt.Errorf("WritePajek: %w", core.ErrGraphNil)
	}
	bw := bufio.NewWriter(w)
	if name := g.Name(); name != "" {
		fmt.Fprintf(bw, "*Network %s\n", name)
	}
	vs := g.Vertices()
	index := make(map[int64]int, len(vs))
	fmt.Fprintf(bw, "*Vertices %d\n", len(vs))
	for i, v := range vs {
		index[v] = i + 1
		fmt.Fprintf(bw, "%d \"%d\"\n", i+1, v)
	}
	fmt.Fprintln(bw, "*Edges")
	for _, e := range g.Edges() {
		fmt.Fprintf(bw, "%d %d\n", index[e.From], index[e.To])
	}

	return bw.Flush()
}

// ReadPajek parses a Pajek network. Edge weights and vertex coordinates are ignored.
//
// Errors: ErrFormat with the offending line number.
func ReadPajek(r io.Reader) (*core.Graph, error) {
	var (
		name    string
		labels  []string
		pairs   [][2]int
		section string
	)
	declared := -1
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "%") {
			continue
		}
		if strings.HasPrefix(text, "*") {
			head, rest, _ := strings.Cut(text[1:], " ")
			section = strings.ToLower(head)
			switch section {
			case "network":
				name = strings.TrimSpace(rest)
			case "vertices":
				f := strings.Fields(rest)
				if len(f) == 0 {
					return nil, fmt.Errorf("ReadPajek: line %d: missing vertex count: %w", line, ErrFormat)
				}
				n, err := strconv.Atoi(f[0])
				if err != nil || n < 0 {
					return nil, fmt.Errorf("ReadPajek: line %d: vertex count %q: %w", line, rest, ErrFormat)
				}
				declared = n
				labels = make([]string, n)
			case "edges", "arcs":
			default:
				return nil, fmt.Errorf("ReadPajek: line %d: section %q: %w", line, head, ErrFormat)
			}
			continue
		}
		switch section {
		case "vertices":
			idx, label, err := vertexLine(text)
			if err != nil || idx < 1 || idx > declared {
				return nil, fmt.Errorf("ReadPajek: line %d: %q: %w", line, text, ErrFormat)
			}
			labels[idx-1] = label
		case "edges", "arcs":
			f := strings.Fields(text)
			if len(f) < 2 {
				return nil, fmt.Errorf("ReadPajek: line %d: %q: %w", line, text, ErrFormat)
			}
			a, errA := strconv.Atoi(f[0])
			b, errB := strconv.Atoi(f[1])
			if errA != nil || errB != nil || a < 1 || b < 1 || a > declared || b > declared {
				return nil, fmt.Errorf("ReadPajek: line %d: %q: %w", line, text, ErrFormat)
			}
			pairs = append(pairs, [2]int{a, b})
		default:
			return nil, fmt.Errorf("ReadPajek: line %d: data outside a section: %w", line, ErrFormat)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("ReadPajek: %w", err)
	}
	if declared < 0 {
		return nil, fmt.Errorf("ReadPajek: no *Vertices section: %w", ErrFormat)
	}

	ids := labelIDs(labels)
	g := core.NewGraph(core.WithName(name))
	for _, id := range ids {
		if err := g.AddVertex(id); err != nil {
			return nil, fmt.Errorf("ReadPajek: %w", err)
		}
	}
	for _, p := range pairs {
		u, v := ids[p[0]-1], ids[p[1]-1]
		if u == v || g.HasEdge(u, v) {
			continue
		}
		if _, err := g.AddEdge(u, v); err != nil {
			return nil, fmt.Errorf("ReadPajek: %w", err)
		}
	}

	return g, nil
}

// vertexLine splits `12 "label" x y ...` into index and label.
func vertexLine(text string) (int, string, error) {
	text = strings.TrimSpace(text)
	head, rest := text, ""
	if i := strings.IndexFunc(text, unicode.IsSpace); i >= 0 {
		head, rest = text[:i], text[i:]
	}
	idx, err := strconv.Atoi(head)
	if err != nil {
		return 0, "", err
	}
	rest = strings.TrimSpace(rest)
	if strings.HasPrefix(rest, "\"") {
		end := strings.Index(rest[1:], "\"")
		if end < 0 {
			return 0, "", ErrFormat
		}

		return idx, rest[1 : end+1], nil
	}
	if f := strings.Fields(rest); len(f) > 0 {
		return idx, f[0], nil
	}

	return idx, "", nil
}

// labelIDs maps labels to vertex IDs: the labels themselves when all are
// distinct non-negative integers, positions otherwise.
func labelIDs(labels []string) []int64 {
	ids := make([]int64, len(labels))
	seen := make(map[int64]bool, len(labels))
	numeric := true
	for i, l := range labels {
		id, err := strconv.ParseInt(l, 10, 64)
		if err != nil || id < 0 || seen[id] {
			numeric = false
			break
		}
		seen[id] = true
		ids[i] = id
	}
	if !numeric {
		for i := range ids {
			ids[i] = int64(i)
		}
	}

	return ids
}
