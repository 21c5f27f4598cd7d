package git

import (
	"context"
	"strings"

	"github.com/pescuma/commitsize/lib/consoles"
	"github.com/pescuma/commitsize/lib/filters"
	"github.com/pescuma/commitsize/lib/model"
	"github.com/pescuma/commitsize/lib/utils"
)

// HistoryReader reads commits from the output of git log.
type HistoryReader struct {
	console consoles.Console
	runner  Runner
}

func NewHistoryReader(console consoles.Console, runner Runner) *HistoryReader {
	return &HistoryReader{
		console: console,
		runner:  runner,
	}
}

// Read runs git log once per merge state requested, one after the other, and returns the
// commits in the order git listed them.
func (r *HistoryReader) Read(ctx context.Context, opts *HistoryOptions) ([]*model.Commit, error) {
	ignored, err := IgnoreFilter(opts.Ignore)
	if err != nil {
		return nil, err
	}

	var result []*model.Commit

	for _, merges := range opts.Merges.passes() {
		blocks, err := r.ReadBlocks(ctx, opts, merges)
		if err != nil {
			return nil, err
		}

		r.console.Verbosef("Parsing %v %v...\n", len(blocks), utils.IIf(merges, "merge commits", "commits"))

		commits, err := r.parseBlocks(blocks, opts, ignored, merges)
		if err != nil {
			return nil, err
		}

		result = append(result, commits...)
	}

	return result, nil
}

func (r *HistoryReader) parseBlocks(blocks []string, opts *HistoryOptions, ignored filters.FileFilter, merges bool,
) ([]*model.Commit, error) {
	parseOpts := ParseOptions{
		Subject: opts.Subject,
		Merge:   merges,
		Ignore:  ignored,
	}

	var bar utils.ProgressBar = utils.NoProgressBar{}
	if opts.Progress {
		bar = utils.NewProgressBar(len(blocks), r.console.Writer())
	}
	defer bar.Finish()

	result := make([]*model.Commit, 0, len(blocks))
	for _, block := range blocks {
		commit, err := ParseCommit(block, parseOpts)
		if err != nil {
			return nil, err
		}

		result = append(result, commit)

		_ = bar.Add(1)
	}

	return result, nil
}

// ReadBlocks runs git log and returns the text of each commit.
func (r *HistoryReader) ReadBlocks(ctx context.Context, opts *HistoryOptions, merges bool) ([]string, error) {
	out, err := r.runner.Run(ctx, opts.dir(), logArgs(opts, merges)...)
	if err != nil {
		return nil, err
	}

	return SplitBlocks(string(out), opts.delimiter()), nil
}

func logArgs(opts *HistoryOptions, merges bool) []string {
	format := "%x00" + opts.delimiter() + "%x00%n%at%n%an%n%H"
	if opts.Subject {
		format += "%n%s"
	}

	args := []string{"log", "--format=" + format, "--numstat"}
	args = append(args, utils.IIf(merges, "--merges", "--no-merges"))

	if opts.Branch != "" {
		args = append(args, opts.Branch)
	}

	return args
}

// SplitBlocks splits git log output on the delimiter, ignoring anything before the first one.
// git prints the delimiter between NUL bytes, which can not be part of a path or a subject.
func SplitBlocks(out string, delimiter string) []string {
	parts := strings.Split(out, "\x00"+delimiter+"\x00")[1:]

	result := make([]string, 0, len(parts))
	for _, p := range parts {
		result = append(result, strings.Trim(p, "\r\n"))
	}
	return result
}
