package growth

import (
	"context"
	"errors"

	"github.com/katalvlaran/sirg/core"
)

// Sink persists intermediate graphs. Save must not retain g after returning
// unless it copies it; the engine keeps mutating its own graph.
type Sink interface {
	Save(ctx context.Context, iteration int, g *core.Graph) error
}

// SinkFunc adapts a function to Sink.
type SinkFunc func(ctx context.Context, iteration int, g *core.Graph) error

// Save calls f.
func (f SinkFunc) Save(ctx context.Context, iteration int, g *core.Graph) error {
	return f(ctx, iteration, g)
}

// MultiSink saves to every sink in order and joins their errors.
type MultiSink []Sink

// Save implements Sink.
func (m MultiSink) Save(ctx context.Context, iteration int, g *core.Graph) error {
	var errs []error
	for _, s := range m {
		if err := s.Save(ctx, iteration, g); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}
