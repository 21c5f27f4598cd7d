package utils

import (
	"io"
	"time"

	"github.com/schollz/progressbar/v3"
)

type ProgressBar interface {
	Add(num int) error
	Describe(description string)
	Finish() error
}

// NewProgressBar creates a bar for total items, or a spinner if total is -1.
func NewProgressBar(total int, out io.Writer) ProgressBar {
	return progressbar.NewOptions(total,
		progressbar.OptionSetWriter(out),
		progressbar.OptionThrottle(time.Second),
		progressbar.OptionShowCount(),
		progressbar.OptionShowIts(),
		progressbar.OptionSetTheme(progressbar.Theme{Saucer: "#", SaucerPadding: " ", BarStart: "|", BarEnd: "|"}),
		progressbar.OptionClearOnFinish(),
		progressbar.OptionFullWidth(),
		progressbar.OptionSetRenderBlankState(true),
	)
}

type NoProgressBar struct{}

func (NoProgressBar) Add(int) error {
	return nil
}

func (NoProgressBar) Describe(string) {
}

func (NoProgressBar) Finish() error {
	return nil
}
