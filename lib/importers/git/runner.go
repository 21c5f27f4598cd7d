package git

import (
	"bytes"
	"context"
	"io"
	"os/exec"
	"strings"

	"github.com/abiosoft/lineprefix"
	"github.com/pkg/errors"

	"github.com/pescuma/commitsize/lib/consoles"
)

// Runner executes git and returns its standard output.
type Runner interface {
	Run(ctx context.Context, dir string, args ...string) ([]byte, error)
}

type ExecRunner struct {
	console consoles.Console
	binary  string
}

func NewExecRunner(console consoles.Console) *ExecRunner {
	return &ExecRunner{
		console: console,
		binary:  "git",
	}
}

func (r *ExecRunner) Run(ctx context.Context, dir string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, r.binary, args...)
	cmd.Dir = dir

	r.console.Verbosef("Executing '%v' in %v\n", strings.Join(cmd.Args, "' '"), dir)

	r.console.PushPrefix("git: ")
	defer r.console.PopPrefix()

	prefix := lineprefix.PrefixFunc(func() string {
		return r.console.Prepare("")
	})

	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	forward := lineprefix.New(lineprefix.Writer(r.console.Writer()), prefix)

	cmd.Stdout = stdout
	cmd.Stderr = io.MultiWriter(stderr, forward)

	err := cmd.Run()
	_ = forward.Close()
	if err != nil {
		return nil, errors.Wrapf(err, "error executing git %v: %v", strings.Join(args, " "), strings.TrimSpace(stderr.String()))
	}

	return stdout.Bytes(), nil
}
