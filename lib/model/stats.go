package model

// Stats describes a numeric attribute over a population of commits.
// The zero value is the result for an empty population.
type Stats struct {
	Count  int
	Total  int
	Mean   float64
	StdDev float64
}

func (s Stats) Empty() bool {
	return s.Count == 0
}

type ChangesStats struct {
	Insertions Stats
	Deletions  Stats
}

// ThresholdStats holds the stats of the commits that are less than Sigma standard
// deviations away from the unfiltered mean.
type ThresholdStats struct {
	Sigma   float64
	Changes ChangesStats
}

type CommitStats struct {
	All        ChangesStats
	Thresholds []ThresholdStats
}
