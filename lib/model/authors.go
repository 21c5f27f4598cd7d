package model

import (
	"github.com/samber/lo"
)

// Authors partitions commits by author name. Names keep the order they were first seen.
type Authors struct {
	names   []string
	commits map[string][]*Commit
}

func GroupByAuthor(commits []*Commit) *Authors {
	return &Authors{
		names:   lo.Uniq(lo.Map(commits, func(c *Commit, _ int) string { return c.Author })),
		commits: lo.GroupBy(commits, func(c *Commit) string { return c.Author }),
	}
}

func (a *Authors) Names() []string {
	return a.names
}

func (a *Authors) Len() int {
	return len(a.names)
}

// Get returns nil for unknown authors.
func (a *Authors) Get(name string) []*Commit {
	return a.commits[name]
}

// All returns the commits of every author, author by author.
func (a *Authors) All() []*Commit {
	var result []*Commit
	for _, name := range a.names {
		result = append(result, a.commits[name]...)
	}
	return result
}
