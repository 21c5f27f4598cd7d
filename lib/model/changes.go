package model

type Changes struct {
	Insertions int
	Deletions  int
}

func (c Changes) Total() int {
	return c.Insertions + c.Deletions
}

func (c Changes) Add(other Changes) Changes {
	return Changes{
		Insertions: c.Insertions + other.Insertions,
		Deletions:  c.Deletions + other.Deletions,
	}
}
