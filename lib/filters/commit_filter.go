package filters

import (
	"math"

	"github.com/pescuma/commitsize/lib/model"
)

// CommitFilter decides if a commit is part of a population. A nil CommitFilter includes everything.
type CommitFilter func(*model.Commit) bool

func Author(name string) CommitFilter {
	return func(c *model.Commit) bool {
		return c.Author == name
	}
}

// WithinSigma includes commits whose value is strictly less than sigma standard deviations
// away from mean.
func WithinSigma(value func(*model.Commit) int, mean float64, stdDev float64, sigma float64) CommitFilter {
	limit := sigma * stdDev

	return func(c *model.Commit) bool {
		return math.Abs(float64(value(c))-mean) < limit
	}
}
