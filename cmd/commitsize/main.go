package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/alecthomas/kong"

	"github.com/pescuma/commitsize/lib/consoles"
	"github.com/pescuma/commitsize/lib/importers/git"
	"github.com/pescuma/commitsize/lib/utils"
	"github.com/pescuma/commitsize/lib/workspace"
)

var cli struct {
	Repo     string    `short:"C" default:"." type:"existingdir" env:"COMMITSIZE_REPO" help:"Git repository to analyze."`
	Branch   string    `short:"b" env:"COMMITSIZE_BRANCH" help:"Branch or revision to read. Default is HEAD."`
	Merges   string    `default:"both" enum:"both,only,exclude" env:"COMMITSIZE_MERGES" help:"Which commits to read regarding merges (${enum})."`
	Subject  bool      `env:"COMMITSIZE_SUBJECT" help:"Also read the commit subjects."`
	Sigma    []float64 `default:"1.96,2.3263" env:"COMMITSIZE_SIGMA" help:"Outlier thresholds, in standard deviations."`
	Ignore   []string  `env:"COMMITSIZE_IGNORE" sep:"none" help:"Files to ignore, like '**/*.lock' or 'vendor/** & !vendor/keep/**'. Can be repeated."`
	Engine   string    `default:"cli" enum:"cli,go-git" env:"COMMITSIZE_ENGINE" help:"How to read git history (${enum})."`
	Progress bool      `env:"COMMITSIZE_PROGRESS" help:"Show progress bars."`
	Verbose  bool      `short:"v" env:"COMMITSIZE_VERBOSE" help:"Print what is being done."`

	Config kong.ConfigFlag `help:"Load defaults from a JSON file."`

	Stats  StatsCmd  `cmd:"" default:"withargs" help:"Show commit size statistics per author. This is the default command."`
	Export ExportCmd `cmd:"" help:"Export the commits of each author to <author>.csv files."`
}

type runContext struct {
	ctx context.Context
	ws  *workspace.Workspace
}

func main() {
	ctx := kong.Parse(&cli,
		kong.Name("commitsize"),
		kong.Description("Statistics of commit sizes per author."),
		kong.ShortUsageOnError(),
		kong.Configuration(kong.JSON, ".commitsize.json", "~/.commitsize.json"),
	)

	ws, err := createWorkspace()
	ctx.FatalIfErrorf(err)

	sctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err = ctx.Run(&runContext{
		ctx: sctx,
		ws:  ws,
	})
	ctx.FatalIfErrorf(err)
}

func createWorkspace() (*workspace.Workspace, error) {
	dir, err := utils.PathAbs(cli.Repo)
	if err != nil {
		return nil, err
	}

	merges, err := git.ParseMergeMode(cli.Merges)
	if err != nil {
		return nil, err
	}

	console := consoles.NewStdOutConsole(cli.Verbose)

	return workspace.NewWorkspace(console, &workspace.Config{
		History: git.HistoryOptions{
			Dir:      dir,
			Branch:   cli.Branch,
			Merges:   merges,
			Subject:  cli.Subject,
			Ignore:   cli.Ignore,
			Progress: cli.Progress,
		},
		Thresholds: cli.Sigma,
		Engine:     workspace.Engine(cli.Engine),
	})
}
