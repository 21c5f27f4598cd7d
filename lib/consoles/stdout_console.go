package consoles

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"
)

type stdoutConsole struct {
	out      io.Writer
	verbose  bool
	prefixes []string
}

// NewStdOutConsole creates a console that writes to stderr, leaving stdout to the reports.
func NewStdOutConsole(verbose bool) Console {
	return NewWriterConsole(os.Stderr, verbose)
}

func NewWriterConsole(out io.Writer, verbose bool) Console {
	return &stdoutConsole{
		out:     out,
		verbose: verbose,
	}
}

func (o *stdoutConsole) Printf(format string, a ...any) {
	_, _ = io.WriteString(o.out, o.Prepare(format, a...))
}

func (o *stdoutConsole) Verbosef(format string, a ...any) {
	if !o.verbose {
		return
	}

	o.Printf(format, a...)
}

func (o *stdoutConsole) Prepare(format string, a ...any) string {
	builder := strings.Builder{}
	builder.WriteString("[")
	builder.WriteString(time.Now().Format("15:04:05"))
	builder.WriteString("] ")
	for _, prefix := range o.prefixes {
		builder.WriteString(prefix)
	}
	builder.WriteString(fmt.Sprintf(format, a...))
	return builder.String()
}

func (o *stdoutConsole) PushPrefix(format string, a ...any) {
	o.prefixes = append(o.prefixes, fmt.Sprintf(format, a...))
}

func (o *stdoutConsole) PopPrefix() {
	o.prefixes = o.prefixes[:len(o.prefixes)-1]
}

func (o *stdoutConsole) Writer() io.Writer {
	return o.out
}
