package cli

import (
	"fmt"
	"time"

	"github.com/schollz/progressbar/v3"
)

// barReporter renders per-file mining progress as a terminal progress bar.
// It satisfies miner.Progress; the miner serializes FileDone calls.
type barReporter struct {
	quiet bool
	bar   *progressbar.ProgressBar
}

func newBarReporter(quiet bool) *barReporter {
	return &barReporter{quiet: quiet}
}

func (r *barReporter) Start(totalFiles int) {
	if r.quiet || totalFiles == 0 {
		return
	}
	r.bar = progressbar.NewOptions(totalFiles,
		progressbar.OptionSetDescription("Mining files"),
		progressbar.OptionSetWidth(40),
		progressbar.OptionShowCount(),
		progressbar.OptionShowIts(),
		progressbar.OptionSetItsString("files/s"),
		progressbar.OptionThrottle(65*time.Millisecond),
		progressbar.OptionShowElapsedTimeOnFinish(),
		progressbar.OptionOnCompletion(func() {
			fmt.Println()
		}),
	)
}

func (r *barReporter) FileDone(path string) {
	if r.bar == nil {
		return
	}
	_ = r.bar.Add(1)
}
