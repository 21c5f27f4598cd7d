package exporters

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pescuma/commitsize/lib/consoles"
	"github.com/pescuma/commitsize/lib/model"
)

func newTestExporter() *CSVExporter {
	return NewCSVExporter(consoles.NewWriterConsole(&bytes.Buffer{}, false))
}

func createCommits(subject bool) []*model.Commit {
	s := func(text string) *string { return lo.Ternary(subject, lo.ToPtr(text), nil) }

	return []*model.Commit{
		model.NewCommit(1700000300, "alice", "c3", s("Third, with comma"), false, []model.FileMod{
			model.NewFileMod("a.go", model.KnownLines(10), model.KnownLines(2)),
		}),
		model.NewCommit(1700000200, "bob", "c2", s("Second"), false, []model.FileMod{
			model.NewFileMod("b.go", model.KnownLines(1), model.KnownLines(1)),
		}),
		model.NewCommit(1700000100, "alice", "c1", s("First \"quoted\""), true, nil),
	}
}

func TestExportRoundTrip(t *testing.T) {
	t.Parallel()

	dir := filepath.Join(t.TempDir(), "out")
	commits := createCommits(false)
	authors := model.GroupByAuthor(commits)

	err := newTestExporter().Export(dir, authors, &ExportOptions{})
	require.NoError(t, err)

	for _, name := range authors.Names() {
		rows, err := ReadCSV(filepath.Join(dir, name+".csv"))
		require.NoError(t, err)

		expected := authors.Get(name)
		require.Len(t, rows, len(expected))
		for i, c := range expected {
			assert.Equal(t, c.Timestamp, rows[i].Timestamp)
			assert.Equal(t, c.Author, rows[i].Author)
			assert.Equal(t, c.ID, rows[i].ID)
			assert.Equal(t, c.Insertions, rows[i].Insertions)
			assert.Equal(t, c.Deletions, rows[i].Deletions)
			assert.Equal(t, "", rows[i].Subject)
		}
	}

	alice, err := ReadCSV(filepath.Join(dir, "alice.csv"))
	require.NoError(t, err)
	assert.Equal(t, 0, alice[0].Merge)
	assert.Equal(t, 1, alice[1].Merge)
}

func TestExportColumns(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	err := newTestExporter().Export(dir, model.GroupByAuthor(createCommits(false)), &ExportOptions{})
	require.NoError(t, err)

	content, err := os.ReadFile(filepath.Join(dir, "bob.csv"))
	require.NoError(t, err)
	assert.Equal(t, "timestamp,author,id,insertions,deletions,merge\n1700000200,bob,c2,1,1,0\n", string(content))
}

func TestExportWithSubject(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	err := newTestExporter().Export(dir, model.GroupByAuthor(createCommits(true)), &ExportOptions{Subject: true})
	require.NoError(t, err)

	content, err := os.ReadFile(filepath.Join(dir, "bob.csv"))
	require.NoError(t, err)
	assert.Equal(t, "timestamp,author,id,subject,insertions,deletions,merge\n1700000200,bob,c2,Second,1,1,0\n", string(content))

	rows, err := ReadCSV(filepath.Join(dir, "alice.csv"))
	require.NoError(t, err)
	assert.Equal(t, "Third, with comma", rows[0].Subject)
	assert.Equal(t, "First \"quoted\"", rows[1].Subject)
}

func TestExportToExistingDir(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	authors := model.GroupByAuthor(createCommits(false))

	require.NoError(t, newTestExporter().Export(dir, authors, &ExportOptions{}))
	require.NoError(t, newTestExporter().Export(dir, authors, &ExportOptions{}))

	rows, err := ReadCSV(filepath.Join(dir, "alice.csv"))
	require.NoError(t, err)
	assert.Len(t, rows, 2)
}

func TestExportAuthorsDifferingInCase(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	authors := model.GroupByAuthor([]*model.Commit{
		model.NewCommit(1, "Bob", "c1", nil, false, nil),
		model.NewCommit(2, "bob", "c2", nil, false, nil),
		model.NewCommit(3, "BOB", "c3", nil, false, nil),
	})

	err := newTestExporter().Export(dir, authors, &ExportOptions{})
	require.NoError(t, err)

	for file, id := range map[string]string{"Bob.csv": "c1", "bob (2).csv": "c2", "BOB (3).csv": "c3"} {
		rows, err := ReadCSV(filepath.Join(dir, file))
		require.NoError(t, err, file)
		require.Len(t, rows, 1, file)
		assert.Equal(t, id, rows[0].ID, file)
	}
}

func TestExportFileNameCollision(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	authors := model.GroupByAuthor([]*model.Commit{
		model.NewCommit(1, "a/b", "c1", nil, false, nil),
		model.NewCommit(2, "a_b", "c2", nil, false, nil),
	})

	err := newTestExporter().Export(dir, authors, &ExportOptions{})
	require.NoError(t, err)

	first, err := ReadCSV(filepath.Join(dir, "a_b.csv"))
	require.NoError(t, err)
	assert.Equal(t, "a/b", first[0].Author)

	second, err := ReadCSV(filepath.Join(dir, "a_b (2).csv"))
	require.NoError(t, err)
	assert.Equal(t, "a_b", second[0].Author)
}

func TestFileName(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "John Doe.csv", FileName("John Doe"))
	assert.Equal(t, "a_b.csv", FileName("a/b"))
	assert.Equal(t, "_.csv", FileName(""))
	assert.Equal(t, "_...csv", FileName(".."))
}
