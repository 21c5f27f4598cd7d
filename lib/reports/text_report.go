package reports

import (
	"fmt"
	"io"
	"strconv"

	"github.com/dustin/go-humanize"
	"github.com/gertd/go-pluralize"

	"github.com/pescuma/commitsize/lib/model"
)

type TextReporter struct {
	plural *pluralize.Client
}

func NewTextReporter() *TextReporter {
	return &TextReporter{
		plural: pluralize.NewClient(),
	}
}

// Report writes the stats of one author. An author without commits gets all zero stats.
func (r *TextReporter) Report(w io.Writer, author string, cs model.CommitStats) error {
	p := &printer{w: w}

	p.println("", author, "["+r.plural.Pluralize("commit", cs.All.Insertions.Count, true)+"]")
	r.printChanges(p, "All", cs.All)

	for _, th := range cs.Thresholds {
		r.printChanges(p, fmt.Sprintf("Within %v σ", strconv.FormatFloat(th.Sigma, 'f', -1, 64)), th.Changes)
	}

	return p.err
}

func (r *TextReporter) printChanges(p *printer, name string, cs model.ChangesStats) {
	p.println("   ", name, "")
	p.println("      ", "Insertions:", r.statsText(cs.Insertions))
	p.println("      ", "Deletions:", r.statsText(cs.Deletions))
}

func (r *TextReporter) statsText(s model.Stats) string {
	return fmt.Sprintf("mean %.2f, std dev %.2f [%v, %v]",
		s.Mean, s.StdDev,
		r.plural.Pluralize("commit", s.Count, true),
		humanize.Comma(int64(s.Total))+" "+r.plural.Pluralize("line", s.Total, false))
}

type printer struct {
	w   io.Writer
	err error
}

func (p *printer) println(prefix, name, text string) {
	if p.err != nil {
		return
	}

	if text == "" {
		_, p.err = fmt.Fprintf(p.w, "%v%v\n", prefix, name)
	} else if name == "" {
		_, p.err = fmt.Fprintf(p.w, "%v%v\n", prefix, text)
	} else {
		_, p.err = fmt.Fprintf(p.w, "%v%v %v\n", prefix, name, text)
	}
}
