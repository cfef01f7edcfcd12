package export

import "errors"

var (
	// ErrFormat indicates malformed input to a reader.
	ErrFormat = errors.New("export: malformed graph file")

	// ErrNotFound indicates a snapshot that does not exist.
	ErrNotFound = errors.New("export: snapshot not found")

	// ErrUnknownFormat indicates an unsupported file format name.
	ErrUnknownFormat = errors.New("export: unknown format")
)
