package miner

import (
	"time"

	"github.com/specminer/core/pkg/extract"
)

// Options configures pipeline behavior.
type Options struct {
	// Capabilities selects which extractor families run.
	// Empty means all of them.
	Capabilities []extract.Capability

	// Corpora is the allowlist of subdirectory names under the corpus root.
	// A missing corpus is reported as a discovery warning, never fatal.
	Corpora []string

	// ExcludeDirs specifies directory basenames to skip during the walk.
	// These are combined with DefaultSkipDirs.
	ExcludeDirs []string

	// IncludePatterns specifies doublestar globs, relative to the root
	// passed to Mine, that candidate files must match.
	// Empty means all candidates.
	IncludePatterns []string

	// MaxFileSize is the maximum file size in bytes to process.
	// Larger files are skipped and counted.
	MaxFileSize int64

	// Progress optionally receives per-file progress callbacks.
	Progress Progress

	// Timeout is the maximum duration for the entire run.
	// Zero or negative values use DefaultTimeout.
	Timeout time.Duration

	// Workers specifies the number of concurrent file extractors.
	// Zero or negative values use runtime.GOMAXPROCS(0).
	Workers int
}

// Option is a functional option for configuring the Miner.
type Option func(*Options)

// WithCapabilities selects the extractor families to run.
func WithCapabilities(caps []extract.Capability) Option {
	return func(o *Options) {
		o.Capabilities = caps
	}
}

// WithCorpora sets the allowlist of corpus subdirectory names.
func WithCorpora(names []string) Option {
	return func(o *Options) {
		o.Corpora = names
	}
}

// WithExcludeDirs adds directory basenames to skip during discovery.
func WithExcludeDirs(dirs []string) Option {
	return func(o *Options) {
		o.ExcludeDirs = dirs
	}
}

// WithIncludePatterns sets glob patterns candidate files must match.
func WithIncludePatterns(patterns []string) Option {
	return func(o *Options) {
		o.IncludePatterns = patterns
	}
}

// WithMaxFileSize sets the maximum file size to process.
func WithMaxFileSize(size int64) Option {
	return func(o *Options) {
		if size >= 0 {
			o.MaxFileSize = size
		}
	}
}

// WithTimeout sets the run timeout duration. Negative values are ignored.
func WithTimeout(d time.Duration) Option {
	return func(o *Options) {
		if d >= 0 {
			o.Timeout = d
		}
	}
}

// WithWorkers sets the number of concurrent file extractors.
// Negative values are ignored.
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n >= 0 {
			o.Workers = n
		}
	}
}

func applyDefaults(opts *Options) {
	if len(opts.Corpora) == 0 {
		opts.Corpora = append([]string(nil), DefaultCorpora...)
	}
	if opts.MaxFileSize <= 0 {
		opts.MaxFileSize = DefaultMaxFileSize
	}
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultTimeout
	}
}
