package stats

import (
	"fmt"

	"github.com/pescuma/commitsize/lib/model"
)

type Attribute int

const (
	Insertions Attribute = iota
	Deletions
)

func (a Attribute) Of(c *model.Commit) int {
	switch a {
	case Insertions:
		return c.Insertions
	case Deletions:
		return c.Deletions
	default:
		panic(fmt.Sprintf("unknown attribute: %v", int(a)))
	}
}
