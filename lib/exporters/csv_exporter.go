package exporters

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gocarina/gocsv"
	"github.com/hashicorp/go-set/v2"
	"github.com/pkg/errors"
	"github.com/samber/lo"

	"github.com/pescuma/commitsize/lib/consoles"
	"github.com/pescuma/commitsize/lib/model"
	"github.com/pescuma/commitsize/lib/utils"
)

// Row is one commit of an exported file. Subject is empty when the file has no subject column.
type Row struct {
	Timestamp  int64  `csv:"timestamp"`
	Author     string `csv:"author"`
	ID         string `csv:"id"`
	Subject    string `csv:"subject"`
	Insertions int    `csv:"insertions"`
	Deletions  int    `csv:"deletions"`
	Merge      int    `csv:"merge"`
}

type rowWithoutSubject struct {
	Timestamp  int64  `csv:"timestamp"`
	Author     string `csv:"author"`
	ID         string `csv:"id"`
	Insertions int    `csv:"insertions"`
	Deletions  int    `csv:"deletions"`
	Merge      int    `csv:"merge"`
}

type ExportOptions struct {
	Subject  bool
	Progress bool
}

type CSVExporter struct {
	console consoles.Console
}

func NewCSVExporter(console consoles.Console) *CSVExporter {
	return &CSVExporter{
		console: console,
	}
}

// Export writes one <author>.csv file per author inside dir, creating dir if needed.
func (e *CSVExporter) Export(dir string, authors *model.Authors, opts *ExportOptions) error {
	files := fileNames(dir, authors.Names())

	err := os.MkdirAll(dir, 0o755)
	if err != nil {
		return errors.Wrapf(err, "error creating %v", dir)
	}

	var bar utils.ProgressBar = utils.NoProgressBar{}
	if opts.Progress {
		bar = utils.NewProgressBar(authors.Len(), e.console.Writer())
	}
	defer bar.Finish()

	for _, name := range authors.Names() {
		bar.Describe(name)

		e.console.Verbosef("Writing %v\n", files[name])

		err = writeFile(files[name], authors.Get(name), opts)
		if err != nil {
			return err
		}

		_ = bar.Add(1)
	}

	return nil
}

// fileNames gives each author a file of its own. Names that are equal ignoring case after
// sanitizing get a " (2)", " (3)"... suffix, in author order.
func fileNames(dir string, names []string) map[string]string {
	result := make(map[string]string, len(names))
	seen := set.New[string](len(names))

	for _, name := range names {
		base := fileBase(name)

		file := base + ".csv"
		for i := 2; !seen.Insert(strings.ToLower(file)); i++ {
			file = fmt.Sprintf("%v (%v).csv", base, i)
		}

		result[name] = filepath.Join(dir, file)
	}

	return result
}

// FileName returns the name of the file the commits of an author are exported to, when no
// other author uses the same name.
func FileName(author string) string {
	return fileBase(author) + ".csv"
}

func fileBase(author string) string {
	author = strings.NewReplacer("/", "_", "\\", "_", "\x00", "_").Replace(author)

	if author == "" || author == "." || author == ".." {
		author = "_" + author
	}

	return author
}

func writeFile(path string, commits []*model.Commit, opts *ExportOptions) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "error creating %v", path)
	}

	if opts.Subject {
		err = gocsv.MarshalFile(toRows(commits), f)
	} else {
		err = gocsv.MarshalFile(toRowsWithoutSubject(commits), f)
	}
	if err != nil {
		_ = f.Close()
		_ = os.Remove(path)
		return errors.Wrapf(err, "error writing %v", path)
	}

	return f.Close()
}

func toRows(commits []*model.Commit) []*Row {
	return lo.Map(commits, func(c *model.Commit, _ int) *Row {
		return &Row{
			Timestamp:  c.Timestamp,
			Author:     c.Author,
			ID:         c.ID,
			Subject:    c.GetSubject(),
			Insertions: c.Insertions,
			Deletions:  c.Deletions,
			Merge:      utils.IIf(c.Merge, 1, 0),
		}
	})
}

func toRowsWithoutSubject(commits []*model.Commit) []*rowWithoutSubject {
	return lo.Map(commits, func(c *model.Commit, _ int) *rowWithoutSubject {
		return &rowWithoutSubject{
			Timestamp:  c.Timestamp,
			Author:     c.Author,
			ID:         c.ID,
			Insertions: c.Insertions,
			Deletions:  c.Deletions,
			Merge:      utils.IIf(c.Merge, 1, 0),
		}
	})
}

// ReadCSV reads back a file written by Export.
func ReadCSV(path string) ([]*Row, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "error opening %v", path)
	}
	defer f.Close()

	var result []*Row
	err = gocsv.UnmarshalFile(f, &result)
	if err != nil {
		return nil, errors.Wrapf(err, "error reading %v", path)
	}

	return result, nil
}
