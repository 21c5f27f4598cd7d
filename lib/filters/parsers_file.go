package filters

import (
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/pkg/errors"
)

// FileFilter matches file names as git prints them, relative to the repository root.
type FileFilter func(name string) bool

// ParseFileFilter parses a glob, a negation (!rule), or a list of rules joined by | or &.
func ParseFileFilter(rule string) (FileFilter, error) {
	rule = strings.TrimSpace(rule)

	switch {
	case rule == "":
		return func(string) bool {
			return true
		}, nil

	case strings.Contains(rule, "|"):
		clauses, err := parseClauses(rule, "|")
		if err != nil {
			return nil, err
		}

		return AnyFile(clauses), nil

	case strings.Contains(rule, "&"):
		clauses, err := parseClauses(rule, "&")
		if err != nil {
			return nil, err
		}

		return func(name string) bool {
			result := true
			for _, f := range clauses {
				result = result && f(name)
			}
			return result
		}, nil

	case strings.HasPrefix(rule, "!"):
		f, err := ParseFileFilter(rule[1:])
		if err != nil {
			return nil, err
		}

		return func(name string) bool {
			return !f(name)
		}, nil

	default:
		if !doublestar.ValidatePattern(rule) {
			return nil, errors.Errorf("invalid file glob: %v", rule)
		}

		return func(name string) bool {
			m, err := doublestar.Match(rule, name)
			return err == nil && m
		}, nil
	}
}

func ParseFileFilterList(rules []string) ([]FileFilter, error) {
	result := make([]FileFilter, 0, len(rules))

	for _, rule := range rules {
		f, err := ParseFileFilter(rule)
		if err != nil {
			return nil, err
		}

		result = append(result, f)
	}

	return result, nil
}

// parseClauses splits rule on sep. Empty clauses are an error.
func parseClauses(rule string, sep string) ([]FileFilter, error) {
	parts := strings.Split(rule, sep)

	for _, p := range parts {
		if strings.TrimSpace(p) == "" {
			return nil, errors.Errorf("empty clause in file rule: %v", rule)
		}
	}

	return ParseFileFilterList(parts)
}

// AnyFile matches if any of the filters match. With no filters it matches nothing.
func AnyFile(filters []FileFilter) FileFilter {
	return func(name string) bool {
		for _, f := range filters {
			if f(name) {
				return true
			}
		}
		return false
	}
}
