package git

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/pescuma/commitsize/lib/filters"
)

const DefaultDelimiter = "BEGINCOMMIT"

type MergeMode int

const (
	MergesBoth MergeMode = iota
	MergesOnly
	MergesExclude
)

func ParseMergeMode(text string) (MergeMode, error) {
	switch text {
	case "", "both":
		return MergesBoth, nil
	case "only":
		return MergesOnly, nil
	case "exclude":
		return MergesExclude, nil
	default:
		return MergesBoth, errors.Errorf("unknown merges mode: %v", text)
	}
}

func (m MergeMode) String() string {
	switch m {
	case MergesBoth:
		return "both"
	case MergesOnly:
		return "only"
	case MergesExclude:
		return "exclude"
	default:
		return fmt.Sprintf("MergeMode(%v)", int(m))
	}
}

// passes returns the merge state of each history read needed, in order.
func (m MergeMode) passes() []bool {
	switch m {
	case MergesOnly:
		return []bool{true}
	case MergesExclude:
		return []bool{false}
	default:
		return []bool{false, true}
	}
}

type HistoryOptions struct {
	Dir       string
	Branch    string
	Merges    MergeMode
	Subject   bool
	Delimiter string
	Ignore    []string
	Progress  bool
}

func (o *HistoryOptions) delimiter() string {
	if o.Delimiter == "" {
		return DefaultDelimiter
	}

	return o.Delimiter
}

func (o *HistoryOptions) dir() string {
	if o.Dir == "" {
		return "."
	}

	return o.Dir
}

type ParseOptions struct {
	Subject bool
	Merge   bool
	// Ignore drops the matching files. Nil keeps every file.
	Ignore filters.FileFilter
}
