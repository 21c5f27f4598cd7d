package git

import (
	"context"
	"strings"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/pkg/errors"
	"github.com/samber/lo"

	"github.com/pescuma/commitsize/lib/consoles"
	"github.com/pescuma/commitsize/lib/filters"
	"github.com/pescuma/commitsize/lib/model"
	"github.com/pescuma/commitsize/lib/utils"
)

// GoGitReader reads the same commits as HistoryReader, without needing a git binary.
// As with git log --numstat, merge commits have no file modifications.
type GoGitReader struct {
	console consoles.Console
}

func NewGoGitReader(console consoles.Console) *GoGitReader {
	return &GoGitReader{
		console: console,
	}
}

func (r *GoGitReader) Read(ctx context.Context, opts *HistoryOptions) ([]*model.Commit, error) {
	gitRepo, err := git.PlainOpenWithOptions(opts.dir(), &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return nil, errors.Wrapf(err, "error opening git repository at %v", opts.dir())
	}

	return r.ReadRepository(ctx, gitRepo, opts)
}

func (r *GoGitReader) ReadRepository(ctx context.Context, gitRepo *git.Repository, opts *HistoryOptions) ([]*model.Commit, error) {
	ignored, err := IgnoreFilter(opts.Ignore)
	if err != nil {
		return nil, err
	}

	gitRevision, err := findBranchHash(gitRepo, opts.Branch)
	if err != nil {
		return nil, err
	}

	var result []*model.Commit

	for _, merges := range opts.Merges.passes() {
		r.console.Verbosef("Reading %v...\n", utils.IIf(merges, "merge commits", "commits"))

		commits, err := r.readPass(ctx, gitRepo, gitRevision, opts, ignored, merges)
		if err != nil {
			return nil, err
		}

		result = append(result, commits...)
	}

	return result, nil
}

func (r *GoGitReader) readPass(ctx context.Context, gitRepo *git.Repository, gitRevision plumbing.Hash,
	opts *HistoryOptions, ignored filters.FileFilter, merges bool,
) ([]*model.Commit, error) {
	commitsIter, err := log(gitRepo, gitRevision)
	if err != nil {
		return nil, err
	}
	defer commitsIter.Close()

	var bar utils.ProgressBar = utils.NoProgressBar{}
	if opts.Progress {
		bar = utils.NewProgressBar(-1, r.console.Writer())
	}
	defer bar.Finish()

	var result []*model.Commit
	err = commitsIter.ForEach(func(gitCommit *object.Commit) error {
		if ctx.Err() != nil {
			return ctx.Err()
		}

		if (gitCommit.NumParents() > 1) != merges {
			return nil
		}

		bar.Describe(gitCommit.Committer.When.Format("2006-01-02 15"))
		_ = bar.Add(1)

		commit, err := r.toCommit(ctx, gitCommit, opts, ignored, merges)
		if err != nil {
			return err
		}

		result = append(result, commit)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

func (r *GoGitReader) toCommit(ctx context.Context, gitCommit *object.Commit, opts *HistoryOptions, ignored filters.FileFilter,
	merge bool,
) (*model.Commit, error) {
	var subject *string
	if opts.Subject {
		subject = lo.ToPtr(firstLine(gitCommit.Message))
	}

	var files []model.FileMod
	if !merge {
		gitStats, err := gitCommit.StatsContext(ctx)
		if err != nil {
			return nil, errors.Wrapf(err, "error computing changes of %v", gitCommit.Hash)
		}

		for _, s := range gitStats {
			if ignored != nil && ignored(s.Name) {
				continue
			}

			files = append(files, model.NewFileMod(s.Name, model.KnownLines(s.Addition), model.KnownLines(s.Deletion)))
		}
	}

	return model.NewCommit(gitCommit.Author.When.Unix(), gitCommit.Author.Name, gitCommit.Hash.String(), subject, merge, files), nil
}

func firstLine(message string) string {
	message = strings.TrimSpace(message)

	line, _, _ := strings.Cut(message, "\n")
	return strings.TrimSpace(line)
}
