package cmd

import (
	"fmt"
	"io"

	"github.com/schollz/progressbar/v3"
)

// pullProgress draws a progress bar while tool images are pulled.
type pullProgress struct {
	out io.Writer
	bar *progressbar.ProgressBar
}

func newPullProgress(out io.Writer) *pullProgress {
	return &pullProgress{out: out}
}

func (p *pullProgress) PullStarted(total int) {
	p.bar = progressbar.NewOptions(total,
		progressbar.OptionSetWriter(p.out),
		progressbar.OptionSetDescription("Pulling tool images"),
		progressbar.OptionShowCount(),
		progressbar.OptionSetWidth(30),
		progressbar.OptionClearOnFinish(),
	)
}

func (p *pullProgress) ImagePulled(image string, err error) {
	if err != nil {
		_ = p.bar.Clear()
		fmt.Fprintf(p.out, "Failed to pull %s\n", image)
	}
	_ = p.bar.Add(1)
}

func (p *pullProgress) PullFinished() {
	_ = p.bar.Finish()
}
