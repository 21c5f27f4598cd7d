package workspace

import (
	"context"
	"io"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"
	"github.com/samber/lo"

	"github.com/pescuma/commitsize/lib/consoles"
	"github.com/pescuma/commitsize/lib/exporters"
	"github.com/pescuma/commitsize/lib/filters"
	"github.com/pescuma/commitsize/lib/importers/git"
	"github.com/pescuma/commitsize/lib/model"
	"github.com/pescuma/commitsize/lib/reports"
	"github.com/pescuma/commitsize/lib/stats"
	"github.com/pescuma/commitsize/lib/utils"
)

type Engine string

const (
	EngineCLI   Engine = "cli"
	EngineGoGit Engine = "go-git"
)

type Config struct {
	History    git.HistoryOptions
	Thresholds []float64
	Engine     Engine
}

type Workspace struct {
	console consoles.Console
	reader  git.CommitReader
	config  *Config
}

func NewWorkspace(console consoles.Console, config *Config) (*Workspace, error) {
	var reader git.CommitReader
	switch config.Engine {
	case "", EngineCLI:
		reader = git.NewHistoryReader(console, git.NewExecRunner(console))
	case EngineGoGit:
		reader = git.NewGoGitReader(console)
	default:
		return nil, errors.Errorf("unknown engine: %v", config.Engine)
	}

	return NewWorkspaceWithReader(console, reader, config), nil
}

func NewWorkspaceWithReader(console consoles.Console, reader git.CommitReader, config *Config) *Workspace {
	if config.Thresholds == nil {
		config.Thresholds = stats.DefaultThresholds
	}

	return &Workspace{
		console: console,
		reader:  reader,
		config:  config,
	}
}

func (w *Workspace) LoadCommits(ctx context.Context) ([]*model.Commit, error) {
	w.console.Verbosef("Reading history of %v...\n", utils.IIf(w.config.History.Dir == "", ".", w.config.History.Dir))

	commits, err := w.reader.Read(ctx, &w.config.History)
	if err != nil {
		return nil, err
	}

	if len(commits) == 0 {
		w.console.Verbosef("Found no commits\n")
		return commits, nil
	}

	total := lo.Reduce(commits, func(agg model.Changes, c *model.Commit, _ int) model.Changes {
		return agg.Add(c.Changes())
	}, model.Changes{})
	first := lo.MinBy(commits, func(a, b *model.Commit) bool { return a.Timestamp < b.Timestamp })
	last := lo.MaxBy(commits, func(a, b *model.Commit) bool { return a.Timestamp > b.Timestamp })

	w.console.Verbosef("Found %v commits from %v to %v, with %v lines changed\n", len(commits),
		first.Time().Format(time.DateOnly), last.Time().Format(time.DateOnly), humanize.Comma(int64(total.Total())))

	return commits, nil
}

// Stats writes the stats of author, or of every author if author is empty.
func (w *Workspace) Stats(ctx context.Context, author string, out io.Writer) error {
	commits, err := w.LoadCommits(ctx)
	if err != nil {
		return err
	}

	reporter := reports.NewTextReporter()

	if author != "" {
		cs := stats.ComputeCommitStats(filters.Apply(filters.Author(author), commits), w.config.Thresholds)
		if cs.All.Insertions.Empty() {
			w.console.Printf("No commits found for %v\n", author)
		}

		return reporter.Report(out, author, cs)
	}

	authors := model.GroupByAuthor(commits)
	for _, name := range authors.Names() {
		cs := stats.ComputeCommitStats(authors.Get(name), w.config.Thresholds)

		err = reporter.Report(out, name, cs)
		if err != nil {
			return err
		}
	}

	return nil
}

func (w *Workspace) Export(ctx context.Context, dir string) error {
	dir, err := utils.PathAbs(dir)
	if err != nil {
		return err
	}

	commits, err := w.LoadCommits(ctx)
	if err != nil {
		return err
	}

	authors := model.GroupByAuthor(commits)

	w.console.Printf("Exporting %v authors to %v...\n", authors.Len(), dir)

	exporter := exporters.NewCSVExporter(w.console)
	return exporter.Export(dir, authors, &exporters.ExportOptions{
		Subject:  w.config.History.Subject,
		Progress: w.config.History.Progress,
	})
}
