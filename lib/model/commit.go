package model

import (
	"time"

	"github.com/samber/lo"
)

// Commit is immutable after NewCommit. Insertions and Deletions are the sums over Files.
type Commit struct {
	Timestamp int64
	Author    string
	ID        string
	Subject   *string
	Merge     bool

	Files []FileMod

	Insertions int
	Deletions  int
}

// NewCommit drops binary file modifications, so they are not part of Files nor of the totals.
func NewCommit(timestamp int64, author string, id string, subject *string, merge bool, files []FileMod) *Commit {
	files = lo.Filter(files, func(f FileMod, _ int) bool { return !f.Binary() })

	return &Commit{
		Timestamp:  timestamp,
		Author:     author,
		ID:         id,
		Subject:    subject,
		Merge:      merge,
		Files:      files,
		Insertions: lo.SumBy(files, func(f FileMod) int { return f.Insertions.Value() }),
		Deletions:  lo.SumBy(files, func(f FileMod) int { return f.Deletions.Value() }),
	}
}

func (c *Commit) Time() time.Time {
	return time.Unix(c.Timestamp, 0).UTC()
}

func (c *Commit) HasSubject() bool {
	return c.Subject != nil
}

func (c *Commit) GetSubject() string {
	if c.Subject == nil {
		return ""
	}

	return *c.Subject
}

func (c *Commit) Changes() Changes {
	return Changes{
		Insertions: c.Insertions,
		Deletions:  c.Deletions,
	}
}
