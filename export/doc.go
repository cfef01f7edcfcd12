// Package export reads and writes graphs and persists growth snapshots.
//
// Pajek (.net) and edge-list files can be read and written; DOT is written
// through gonum's encoding. FileSink and SnapshotStore.Sink both satisfy
// growth.Sink, so a run can mirror its progress to disk files, to a badger
// database, or to both through growth.MultiSink.
package export
