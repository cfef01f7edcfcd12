package export

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/katalvlaran/sirg/core"
)

// DefaultPrefix names progress files progress_estimate<iteration>.<ext>.
const DefaultPrefix = "progress_estimate"

// FileSink writes each saved graph to Dir/<Prefix><iteration><ext>.
// It satisfies growth.Sink.
type FileSink struct {
	Dir    string
	Prefix string
	Format Format
}

// Path returns the file a given iteration is written to.
func (s FileSink) Path(iteration int) string {
	prefix := s.Prefix
	if prefix == "" {
		prefix = DefaultPrefix
	}

	return filepath.Join(s.Dir, fmt.Sprintf("%s%d%s", prefix, iteration, s.Format.Ext()))
}

// Save writes g, creating Dir if needed.
func (s FileSink) Save(ctx context.Context, iteration int, g *core.Graph) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s.Dir != "" {
		if err := os.MkdirAll(s.Dir, 0o750); err != nil {
			return fmt.Errorf("FileSink: %w", err)
		}
	}
	path := s.Path(iteration)
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("FileSink: %w", err)
	}
	if err := Write(file, g, s.Format); err != nil {
		_ = file.Close()
		return fmt.Errorf("FileSink %s: %w", path, err)
	}

	return file.Close()
}
