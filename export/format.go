package export

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/katalvlaran/sirg/core"
)

// Format is a graph file format.
type Format int

const (
	Pajek Format = iota
	EdgeList
	DOT
)

func (f Format) String() string {
	switch f {
	case Pajek:
		return "pajek"
	case EdgeList:
		return "edgelist"
	case DOT:
		return "dot"
	default:
		return "unknown"
	}
}

// Ext returns the file extension for f, dot included.
func (f Format) Ext() string {
	switch f {
	case EdgeList:
		return ".edges"
	case DOT:
		return ".dot"
	default:
		return ".net"
	}
}

// ParseFormat accepts "pajek"/"net", "edgelist"/"edges" and "dot"/"gv".
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "pajek", "net", "":
		return Pajek, nil
	case "edgelist", "edges", "txt":
		return EdgeList, nil
	case "dot", "gv":
		return DOT, nil
	}

	return 0, fmt.Errorf("ParseFormat(%q): %w", s, ErrUnknownFormat)
}

// FormatFromPath picks a format from the file extension.
func FormatFromPath(path string) (Format, error) {
	return ParseFormat(strings.TrimPrefix(filepath.Ext(path), "."))
}

// Write encodes g in format f.
func Write(w io.Writer, g *core.Graph, f Format) error {
	switch f {
	case Pajek:
		return WritePajek(w, g)
	case EdgeList:
		return WriteEdgeList(w, g)
	case DOT:
		return WriteDOT(w, g)
	}

	return fmt.Errorf("Write: %v: %w", f, ErrUnknownFormat)
}

// Read decodes a graph in format f. DOT is write-only.
func Read(r io.Reader, f Format) (*core.Graph, error) {
	switch f {
	case Pajek:
		return ReadPajek(r)
	case EdgeList:
		return ReadEdgeList(r)
	}

	return nil, fmt.Errorf("Read: %v: %w", f, ErrUnknownFormat)
}

// WriteFile writes g to path in the format implied by its extension.
func WriteFile(path string, g *core.Graph) error {
	f, err := FormatFromPath(path)
	if err != nil {
		return err
	}
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("WriteFile: %w", err)
	}
	if err := Write(file, g, f); err != nil {
		_ = file.Close()
		return err
	}

	return file.Close()
}

// ReadFile reads a graph from path in the format implied by its extension.
func ReadFile(path string) (*core.Graph, error) {
	f, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("ReadFile: %w", err)
	}
	defer file.Close()

	return Read(file, f)
}
