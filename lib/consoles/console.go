package consoles

import "io"

type Console interface {
	Printf(format string, a ...any)

	// Verbosef only prints when the console is verbose.
	Verbosef(format string, a ...any)

	// Prepare returns the text Printf would print, without printing it.
	Prepare(format string, a ...any) string

	PushPrefix(format string, a ...any)
	PopPrefix()

	Writer() io.Writer
}
