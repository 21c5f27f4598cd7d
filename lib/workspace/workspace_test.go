package workspace

import (
	"bytes"
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pescuma/commitsize/lib/consoles"
	"github.com/pescuma/commitsize/lib/exporters"
	"github.com/pescuma/commitsize/lib/importers/git"
	"github.com/pescuma/commitsize/lib/model"
)

type fakeReader struct {
	commits []*model.Commit
	err     error
}

func (f *fakeReader) Read(context.Context, *git.HistoryOptions) ([]*model.Commit, error) {
	return f.commits, f.err
}

func newTestWorkspace(reader git.CommitReader) *Workspace {
	return NewWorkspaceWithReader(consoles.NewWriterConsole(&bytes.Buffer{}, false), reader, &Config{})
}

func createCommits() []*model.Commit {
	commit := func(author string, id string, ins int) *model.Commit {
		return model.NewCommit(1700000000, author, id, nil, false, []model.FileMod{
			model.NewFileMod("a.go", model.KnownLines(ins), model.KnownLines(1)),
		})
	}

	return []*model.Commit{
		commit("alice", "c1", 10),
		commit("bob", "c2", 5),
		commit("alice", "c3", 20),
	}
}

func TestStatsAllAuthors(t *testing.T) {
	t.Parallel()

	ws := newTestWorkspace(&fakeReader{commits: createCommits()})

	out := &bytes.Buffer{}
	err := ws.Stats(context.Background(), "", out)
	require.NoError(t, err)

	assert.Contains(t, out.String(), "alice [2 commits]\n")
	assert.Contains(t, out.String(), "bob [1 commit]\n")
	assert.Less(t, bytes.Index(out.Bytes(), []byte("alice")), bytes.Index(out.Bytes(), []byte("bob")))
	assert.Contains(t, out.String(), "Within 1.96 σ")
	assert.Contains(t, out.String(), "Within 2.3263 σ")
}

func TestStatsOneAuthor(t *testing.T) {
	t.Parallel()

	ws := newTestWorkspace(&fakeReader{commits: createCommits()})

	out := &bytes.Buffer{}
	err := ws.Stats(context.Background(), "bob", out)
	require.NoError(t, err)

	assert.Contains(t, out.String(), "bob [1 commit]\n")
	assert.NotContains(t, out.String(), "alice")
}

func TestStatsUnknownAuthor(t *testing.T) {
	t.Parallel()

	console := &bytes.Buffer{}
	ws := NewWorkspaceWithReader(consoles.NewWriterConsole(console, false), &fakeReader{commits: createCommits()}, &Config{})

	out := &bytes.Buffer{}
	err := ws.Stats(context.Background(), "zoe", out)
	require.NoError(t, err)

	assert.Contains(t, console.String(), "No commits found for zoe\n")

	assert.Contains(t, out.String(), "zoe [0 commits]\n")
	assert.Contains(t, out.String(), "Insertions: mean 0.00, std dev 0.00 [0 commits, 0 lines]")
}

func TestStatsAuthorNamesAreCaseSensitive(t *testing.T) {
	t.Parallel()

	commits := append(createCommits(), model.NewCommit(1700000000, "Alice", "c4", nil, false, nil))
	ws := newTestWorkspace(&fakeReader{commits: commits})

	out := &bytes.Buffer{}
	err := ws.Stats(context.Background(), "Alice", out)
	require.NoError(t, err)

	assert.Contains(t, out.String(), "Alice [1 commit]\n")
}

func TestLoadCommitsSummary(t *testing.T) {
	t.Parallel()

	console := &bytes.Buffer{}
	commits := append(createCommits(), model.NewCommit(1700200000, "carol", "c4", nil, false, []model.FileMod{
		model.NewFileMod("b.go", model.KnownLines(1000), model.KnownLines(0)),
	}))
	ws := NewWorkspaceWithReader(consoles.NewWriterConsole(console, true), &fakeReader{commits: commits}, &Config{})

	_, err := ws.LoadCommits(context.Background())
	require.NoError(t, err)

	assert.Contains(t, console.String(), "Found 4 commits from 2023-11-14 to 2023-11-17, with 1,038 lines changed\n")
}

func TestLoadCommitsEmpty(t *testing.T) {
	t.Parallel()

	console := &bytes.Buffer{}
	ws := NewWorkspaceWithReader(consoles.NewWriterConsole(console, true), &fakeReader{}, &Config{})

	commits, err := ws.LoadCommits(context.Background())
	require.NoError(t, err)

	assert.Empty(t, commits)
	assert.Contains(t, console.String(), "Found no commits\n")
}

func TestStatsCustomThresholds(t *testing.T) {
	t.Parallel()

	ws := NewWorkspaceWithReader(consoles.NewWriterConsole(&bytes.Buffer{}, false), &fakeReader{commits: createCommits()},
		&Config{Thresholds: []float64{3}})

	out := &bytes.Buffer{}
	err := ws.Stats(context.Background(), "", out)
	require.NoError(t, err)

	assert.Contains(t, out.String(), "Within 3 σ")
	assert.NotContains(t, out.String(), "Within 1.96 σ")
}

func TestStatsReaderError(t *testing.T) {
	t.Parallel()

	ws := newTestWorkspace(&fakeReader{err: errors.New("boom")})

	out := &bytes.Buffer{}
	err := ws.Stats(context.Background(), "", out)

	assert.EqualError(t, err, "boom")
	assert.Empty(t, out.String())
}

func TestExport(t *testing.T) {
	t.Parallel()

	dir := filepath.Join(t.TempDir(), "export")
	ws := newTestWorkspace(&fakeReader{commits: createCommits()})

	err := ws.Export(context.Background(), dir)
	require.NoError(t, err)

	rows, err := exporters.ReadCSV(filepath.Join(dir, "alice.csv"))
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "c1", rows[0].ID)
	assert.Equal(t, "c3", rows[1].ID)

	rows, err = exporters.ReadCSV(filepath.Join(dir, "bob.csv"))
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}

func TestUnknownEngine(t *testing.T) {
	t.Parallel()

	_, err := NewWorkspace(consoles.NewWriterConsole(&bytes.Buffer{}, false), &Config{Engine: "svn"})

	assert.Error(t, err)
}
