package main

type ExportCmd struct {
	Dir string `arg:"" type:"path" help:"Directory to write the files to. Created if needed."`
}

func (c *ExportCmd) Run(ctx *runContext) error {
	return ctx.ws.Export(ctx.ctx, c.Dir)
}
