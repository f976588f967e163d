package utils

import (
	"io"
	"os"

	"github.com/schollz/progressbar/v3"
)

// Standard progress bar descriptions
const (
	DescScanning   = "Scanning"
	DescValidating = "Validating"
)

// NewProgressBar creates a progress bar on stderr. See NewProgressBarTo.
func NewProgressBar(total int, description string) *progressbar.ProgressBar {
	return NewProgressBarTo(os.Stderr, total, description)
}

// NewProgressBarTo creates a consistently styled progress bar writing to w.
//
// A negative total renders a spinner; otherwise the bar shows the count and
// manifests per second. A nil w falls back to io.Discard.
//
//	bar := utils.NewProgressBarTo(os.Stderr, len(paths), utils.DescValidating)
//	defer bar.Finish()
func NewProgressBarTo(w io.Writer, total int, description string) *progressbar.ProgressBar {
	if w == nil {
		w = io.Discard
	}

	opts := []progressbar.Option{
		progressbar.OptionSetWriter(w),
		progressbar.OptionSetDescription(description),
		progressbar.OptionShowCount(),
		progressbar.OptionOnCompletion(func() {
			_, _ = io.WriteString(w, "\n")
		}),
	}

	if total < 0 {
		opts = append(opts,
			progressbar.OptionSpinnerType(14),
			progressbar.OptionSetRenderBlankState(true),
		)
	} else {
		opts = append(opts, progressbar.OptionShowIts())
	}

	return progressbar.NewOptions(total, opts...)
}
