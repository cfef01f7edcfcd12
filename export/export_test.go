package export_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/katalvlaran/sirg/builder"
	"github.com/katalvlaran/sirg/core"
	"github.com/katalvlaran/sirg/export"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sample(t *testing.T) *core.Graph {
	t.Helper()
	g, err := builder.BuildGraph([]core.GraphOption{core.WithName("sample")}, nil, builder.Cycle(4))
	require.NoError(t, err)
	_, err = g.AddEdge(3, 10)
	require.NoError(t, err)
	require.NoError(t, g.AddVertex(20))

	return g
}

func assertSameGraph(t *testing.T, want, got *core.Graph) {
	t.Helper()
	assert.Equal(t, want.Vertices(), got.Vertices())
	require.Equal(t, want.EdgeCount(), got.EdgeCount())
	for _, e := range want.Edges() {
		assert.True(t, got.HasEdge(e.From, e.To), "missing %d-%d", e.From, e.To)
	}
}

func TestPajekRoundTrip(t *testing.T) {
	t.Parallel()
	g := sample(t)
	var buf bytes.Buffer
	require.NoError(t, export.WritePajek(&buf, g))
	assert.True(t, strings.HasPrefix(buf.String(), "*Network sample\n*Vertices 6\n1 \"0\"\n"))

	back, err := export.ReadPajek(&buf)
	require.NoError(t, err)
	assertSameGraph(t, g, back)
	assert.Equal(t, "sample", back.Name())
}

func TestReadPajek_ForeignFile(t *testing.T) {
	t.Parallel()
	src := `% written elsewhere
*Vertices 3
1 "a" 0.1 0.2 ellipse
2 "b"
3 c
*Arcs
1 2 1.0
2 3 2.5
3 2
`
	g, err := export.ReadPajek(strings.NewReader(src))
	require.NoError(t, err)
	assert.Equal(t, []int64{0, 1, 2}, g.Vertices())
	assert.Equal(t, 2, g.EdgeCount())
	assert.True(t, g.HasEdge(1, 2))

	tabbed := "*Vertices 2\n1\t\"10\"\n2\t20\n*Edges\n1\t2\n"
	g, err = export.ReadPajek(strings.NewReader(tabbed))
	require.NoError(t, err, "tab-separated vertex lines")
	assert.Equal(t, []int64{10, 20}, g.Vertices())
	assert.True(t, g.HasEdge(10, 20))

	for _, bad := range []string{
		"1 2\n",
		"*Vertices x\n",
		"*Vertices 2\n1 \"0\"\n*Edges\n1 5\n",
		"*Vertices 2\n9 \"0\"\n",
		"*Matrix\n",
		"*Edges\n",
	} {
		_, err := export.ReadPajek(strings.NewReader(bad))
		assert.ErrorIs(t, err, export.ErrFormat, bad)
	}
}

func TestEdgeListRoundTrip(t *testing.T) {
	t.Parallel()
	g := sample(t)
	var buf bytes.Buffer
	require.NoError(t, export.WriteEdgeList(&buf, g))
	assert.Contains(t, buf.String(), "\n20\n", "isolates written on their own line")

	back, err := export.ReadEdgeList(&buf)
	require.NoError(t, err)
	assertSameGraph(t, g, back)

	_, err = export.ReadEdgeList(strings.NewReader("1 x\n"))
	assert.ErrorIs(t, err, export.ErrFormat)
	_, err = export.ReadEdgeList(strings.NewReader("4 4\n"))
	assert.ErrorIs(t, err, core.ErrLoopNotAllowed)

	dup, err := export.ReadEdgeList(strings.NewReader("# comment\n0 1 0.5\n1 0\n\n2 3 # trailing\n"))
	require.NoError(t, err)
	assert.Equal(t, 2, dup.EdgeCount())
}

func TestWriteDOT(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	require.NoError(t, export.WriteDOT(&buf, sample(t)))
	out := buf.String()
	assert.Contains(t, out, "graph sample {")
	assert.Regexp(t, regexp.MustCompile(`(3 -- 10|10 -- 3)`), out)
	assert.Contains(t, out, "20;")

	assert.ErrorIs(t, export.WriteDOT(&buf, nil), core.ErrGraphNil)
}

func TestFormats(t *testing.T) {
	t.Parallel()
	for in, want := range map[string]export.Format{"net": export.Pajek, "EDGES": export.EdgeList, "gv": export.DOT} {
		f, err := export.ParseFormat(in)
		require.NoError(t, err)
		assert.Equal(t, want, f)
	}
	_, err := export.ParseFormat("graphml")
	assert.ErrorIs(t, err, export.ErrUnknownFormat)
	_, err = export.Read(strings.NewReader(""), export.DOT)
	assert.ErrorIs(t, err, export.ErrUnknownFormat)

	dir := t.TempDir()
	path := filepath.Join(dir, "g.net")
	require.NoError(t, export.WriteFile(path, sample(t)))
	back, err := export.ReadFile(path)
	require.NoError(t, err)
	assertSameGraph(t, sample(t), back)
}

func TestFileSink(t *testing.T) {
	t.Parallel()
	dir := filepath.Join(t.TempDir(), "progress")
	sink := export.FileSink{Dir: dir}
	require.NoError(t, sink.Save(context.Background(), 10, sample(t)))
	assert.Equal(t, filepath.Join(dir, "progress_estimate10.net"), sink.Path(10))
	_, err := os.Stat(sink.Path(10))
	require.NoError(t, err)

	dotSink := export.FileSink{Dir: dir, Prefix: "run", Format: export.DOT}
	require.NoError(t, dotSink.Save(context.Background(), 3, sample(t)))
	_, err = os.Stat(filepath.Join(dir, "run3.dot"))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, sink.Save(ctx, 20, sample(t)), context.Canceled)
}

func TestSnapshotStore(t *testing.T) {
	t.Parallel()
	store, err := export.OpenSnapshotStore(filepath.Join(t.TempDir(), "db"))
	require.NoError(t, err)
	defer store.Close()

	run, other := uuid.New(), uuid.New()
	sink := store.Sink(run)
	g := sample(t)
	for _, it := range []int{20, 10, 30} {
		require.NoError(t, sink.Save(context.Background(), it, g))
	}
	require.NoError(t, store.Put(other, 1, g))

	its, err := store.Iterations(run)
	require.NoError(t, err)
	assert.Equal(t, []int{10, 20, 30}, its)

	back, err := store.Get(run, 20)
	require.NoError(t, err)
	assertSameGraph(t, g, back)

	last, latest, err := store.Latest(run)
	require.NoError(t, err)
	assert.Equal(t, 30, last)
	assertSameGraph(t, g, latest)

	_, err = store.Get(run, 99)
	assert.ErrorIs(t, err, export.ErrNotFound)
	_, _, err = store.Latest(uuid.New())
	assert.ErrorIs(t, err, export.ErrNotFound)
}

func TestSnapshotStore_InMemory(t *testing.T) {
	t.Parallel()
	store, err := export.OpenSnapshotStore("", export.WithInMemory())
	require.NoError(t, err)
	defer store.Close()
	run := uuid.New()
	require.NoError(t, store.Put(run, 5, sample(t)))
	its, err := store.Iterations(run)
	require.NoError(t, err)
	assert.Equal(t, []int{5}, its)

	_, err = export.OpenSnapshotStore("")
	assert.ErrorIs(t, err, os.ErrInvalid)
}
