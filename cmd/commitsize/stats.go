package main

import (
	"os"
)

type StatsCmd struct {
	Author string `arg:"" optional:"" help:"Only show this author. Unknown authors get zeroed statistics. Use 'stats <author>' for authors named like a command, such as 'stats export'."`
}

func (c *StatsCmd) Run(ctx *runContext) error {
	return ctx.ws.Stats(ctx.ctx, c.Author, os.Stdout)
}
