package stats

import (
	mstats "github.com/montanaflynn/stats"
	"github.com/samber/lo"

	"github.com/pescuma/commitsize/lib/filters"
	"github.com/pescuma/commitsize/lib/model"
)

// DefaultThresholds are the two-tailed 95% and 98% cutoffs of a normal distribution.
var DefaultThresholds = []float64{1.96, 2.3263}

// Compute returns the stats of attr over the commits accepted by filter.
// The standard deviation is the population one.
func Compute(commits []*model.Commit, attr Attribute, filter filters.CommitFilter) model.Stats {
	commits = filters.Apply(filter, commits)
	if len(commits) == 0 {
		return model.Stats{}
	}

	values := lo.Map(commits, func(c *model.Commit, _ int) int { return attr.Of(c) })
	data := mstats.LoadRawData(values)

	// Both only fail for empty input
	mean, _ := mstats.Mean(data)
	stdDev, _ := mstats.StandardDeviationPopulation(data)

	return model.Stats{
		Count:  len(values),
		Total:  lo.Sum(values),
		Mean:   mean,
		StdDev: stdDev,
	}
}

func ComputeChanges(commits []*model.Commit, filter filters.CommitFilter) model.ChangesStats {
	return model.ChangesStats{
		Insertions: Compute(commits, Insertions, filter),
		Deletions:  Compute(commits, Deletions, filter),
	}
}

// ComputeCommitStats computes the stats of all commits and then, for each threshold, the stats
// of the commits less than threshold standard deviations away from the mean of all commits.
// Insertions and deletions are filtered independently.
func ComputeCommitStats(commits []*model.Commit, thresholds []float64) model.CommitStats {
	all := ComputeChanges(commits, nil)

	result := model.CommitStats{
		All: all,
	}

	for _, sigma := range thresholds {
		result.Thresholds = append(result.Thresholds, model.ThresholdStats{
			Sigma: sigma,
			Changes: model.ChangesStats{
				Insertions: computeWithin(commits, Insertions, all.Insertions, sigma),
				Deletions:  computeWithin(commits, Deletions, all.Deletions, sigma),
			},
		})
	}

	return result
}

func computeWithin(commits []*model.Commit, attr Attribute, baseline model.Stats, sigma float64) model.Stats {
	return Compute(commits, attr, filters.WithinSigma(attr.Of, baseline.Mean, baseline.StdDev, sigma))
}
