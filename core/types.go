// Package core defines the central Graph and Edge types and provides
// thread-safe primitives for building, querying, and cloning simple
// undirected graphs with integer vertex identifiers.
//
// All core APIs use separate sync.RWMutex locks internally (muVert for vertices,
// muEdgeAdj for edges and adjacency), so a graph may be read from many goroutines
// while a single owner mutates it.
//
// This file declares Edge, Graph, GraphOption, sentinel errors, and the
// NewGraph constructor.
//
// Errors:
//
//	ErrGraphNil            - a nil *Graph was passed where a graph is required.
//	ErrBadVertexID         - vertex identifier is negative.
//	ErrVertexNotFound      - requested vertex does not exist.
//	ErrEdgeNotFound        - requested edge does not exist.
//	ErrLoopNotAllowed      - self-loop when loops are disabled.
//	ErrMultiEdgeNotAllowed - second edge between the same endpoints.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrGraphNil indicates a nil graph argument.
	ErrGraphNil = errors.New("core: graph is nil")

	// ErrBadVertexID indicates a negative vertex identifier.
	ErrBadVertexID = errors.New("core: vertex ID is negative")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a parallel edge was attempted.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")
)

// Edge represents an undirected connection between two vertices.
//
// From is always the smaller endpoint, so an edge has one canonical form
// regardless of the argument order used when it was added.
type Edge struct {
	// ID uniquely identifies this edge in the Graph ("e1", "e2", ...).
	ID string

	// From is the smaller endpoint.
	From int64

	// To is the larger endpoint (equal to From only for loops).
	To int64
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithLoops permits self-loops (edges from a vertex to itself).
func WithLoops() GraphOption {
	return func(g *Graph) { g.allowLoops = true }
}

// WithName sets the descriptive graph name carried by Clone and written by
// file exporters.
func WithName(name string) GraphOption {
	return func(g *Graph) { g.name = name }
}

// Graph is the core in-memory graph data structure: an undirected simple
// graph over non-negative int64 vertex identifiers.
//
// muVert protects vertices, name and maxID; muEdgeAdj protects edges and adjacency.
// Lock order is always muVert before muEdgeAdj.
// nextEdgeID is an atomic counter for unique Edge.ID generation.
type Graph struct {
	muVert    sync.RWMutex // guards vertices, name, maxID
	muEdgeAdj sync.RWMutex // guards edges and adjacency

	allowLoops bool
	name       string

	// Storage
	nextEdgeID uint64             // atomic edge ID generator
	maxID      int64              // largest vertex ID ever inserted, -1 when none
	vertices   map[int64]struct{} // vertex set
	edges      map[string]*Edge   // edge ID → Edge

	// adjacency[u][v] = edge ID; mirrored for v != u.
	adjacency map[int64]map[int64]string
}

// NewGraph creates an empty Graph with the given options.
// By default, Graph is unnamed and rejects self-loops.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		maxID:     -1,
		vertices:  make(map[int64]struct{}),
		edges:     make(map[string]*Edge),
		adjacency: make(map[int64]map[int64]string),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// Stats is a point-in-time summary of a graph.
type Stats struct {
	Name        string
	VertexCount int
	EdgeCount   int
	Isolates    int
	MaxVertexID int64
}
