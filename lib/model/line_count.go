package model

import "strconv"

// LineCount is a number of lines that git may not know, as happens with binary files.
type LineCount struct {
	value int
	known bool
}

func KnownLines(value int) LineCount {
	if value < 0 {
		panic("negative line count")
	}

	return LineCount{value: value, known: true}
}

func UnknownLines() LineCount {
	return LineCount{}
}

func (c LineCount) Known() bool {
	return c.known
}

// Value returns 0 for unknown counts.
func (c LineCount) Value() int {
	return c.value
}

func (c LineCount) String() string {
	if !c.known {
		return "-"
	}

	return strconv.Itoa(c.value)
}
