package git

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/samber/lo"

	"github.com/pescuma/commitsize/lib/model"
)

const (
	headerLines        = 3
	headerLinesSubject = 4
	binaryMarker       = "-"
)

// ParseError means git log output did not have the expected shape.
type ParseError struct {
	CommitID string
	Line     int
	Text     string
	Reason   string
}

func (e *ParseError) Error() string {
	var sb strings.Builder
	sb.WriteString("error parsing commit")
	if e.CommitID != "" {
		sb.WriteString(" ")
		sb.WriteString(e.CommitID)
	}
	if e.Line > 0 {
		sb.WriteString(fmt.Sprintf(" at line %v", e.Line))
	}
	sb.WriteString(": ")
	sb.WriteString(e.Reason)
	if e.Text != "" {
		sb.WriteString(fmt.Sprintf(" (%q)", e.Text))
	}
	return sb.String()
}

// ParseCommit parses one commit from git log output, without the delimiter.
//
// The header lines are positional: timestamp, author, hash and, if requested, subject. The
// remaining non-empty lines are numstat records: insertions, deletions and file name
// separated by tabs.
func ParseCommit(block string, opts ParseOptions) (*model.Commit, error) {
	lines := strings.Split(block, "\n")
	lines = lo.Map(lines, func(l string, _ int) string { return strings.TrimSuffix(l, "\r") })

	if len(lines) < headerLines {
		return nil, &ParseError{
			Text:   block,
			Reason: fmt.Sprintf("expected at least %v header lines, found %v", headerLines, len(lines)),
		}
	}

	id := lines[2]

	timestamp, err := strconv.ParseInt(strings.TrimSpace(lines[0]), 10, 64)
	if err != nil {
		return nil, &ParseError{CommitID: id, Line: 1, Text: lines[0], Reason: "invalid timestamp"}
	}

	var subject *string
	records := lines[headerLines:]
	if opts.Subject {
		subject = lo.ToPtr("")

		if len(lines) >= headerLinesSubject {
			subject = lo.ToPtr(lines[3])
			records = lines[headerLinesSubject:]
		}
	}
	firstRecordLine := len(lines) - len(records) + 1

	var files []model.FileMod
	for i, line := range records {
		if strings.TrimSpace(line) == "" {
			continue
		}

		file, err := parseFileMod(line)
		if err != nil {
			return nil, &ParseError{CommitID: id, Line: firstRecordLine + i, Text: line, Reason: err.Error()}
		}

		if opts.Ignore != nil && opts.Ignore(file.Name) {
			continue
		}

		files = append(files, file)
	}

	return model.NewCommit(timestamp, lines[1], id, subject, opts.Merge, files), nil
}

func parseFileMod(line string) (model.FileMod, error) {
	fields := strings.Split(line, "\t")
	if len(fields) != 3 {
		return model.FileMod{}, fmt.Errorf("expected 3 tab separated fields, found %v", len(fields))
	}

	insertions, err := parseLineCount(fields[0])
	if err != nil {
		return model.FileMod{}, err
	}

	deletions, err := parseLineCount(fields[1])
	if err != nil {
		return model.FileMod{}, err
	}

	return model.NewFileMod(fields[2], insertions, deletions), nil
}

func parseLineCount(text string) (model.LineCount, error) {
	if text == binaryMarker {
		return model.UnknownLines(), nil
	}

	value, err := strconv.Atoi(text)
	if err != nil || value < 0 {
		return model.LineCount{}, fmt.Errorf("invalid line count: %v", text)
	}

	return model.KnownLines(value), nil
}
