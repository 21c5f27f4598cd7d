package git

import (
	"context"
	"strings"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/pkg/errors"
	"github.com/samber/lo"

	"github.com/pescuma/commitsize/lib/filters"
	"github.com/pescuma/commitsize/lib/model"
)

type CommitReader interface {
	Read(ctx context.Context, opts *HistoryOptions) ([]*model.Commit, error)
}

// IgnoreFilter matches the files to skip. Each pattern uses the file filter syntax and
// blank patterns are skipped. Without patterns it returns nil.
func IgnoreFilter(patterns []string) (filters.FileFilter, error) {
	patterns = lo.Filter(patterns, func(p string, _ int) bool { return strings.TrimSpace(p) != "" })

	if len(patterns) == 0 {
		return nil, nil
	}

	fs, err := filters.ParseFileFilterList(patterns)
	if err != nil {
		return nil, errors.Wrap(err, "invalid ignore pattern")
	}

	return filters.AnyFile(fs), nil
}

func findBranchHash(gitRepo *git.Repository, branch string) (plumbing.Hash, error) {
	if branch == "" {
		gitHead, err := gitRepo.Head()
		if err != nil {
			return plumbing.ZeroHash, errors.Wrap(err, "error resolving HEAD")
		}

		return gitHead.Hash(), nil
	}

	revision, err := gitRepo.ResolveRevision(plumbing.Revision(branch))
	if err != nil {
		return plumbing.ZeroHash, errors.Wrapf(err, "no branch found with name: %v", branch)
	}

	return *revision, nil
}

func log(gitRepo *git.Repository, gitRevision plumbing.Hash) (object.CommitIter, error) {
	return gitRepo.Log(&git.LogOptions{
		From:  gitRevision,
		Order: git.LogOrderCommitterTime,
	})
}
