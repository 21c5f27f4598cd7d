package filters

import (
	"github.com/samber/lo"

	"github.com/pescuma/commitsize/lib/model"
)

func Apply(filter CommitFilter, commits []*model.Commit) []*model.Commit {
	if filter == nil {
		return commits
	}

	return lo.Filter(commits, func(c *model.Commit, _ int) bool { return filter(c) })
}
