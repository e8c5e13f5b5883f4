package miner

// Progress receives pipeline progress callbacks. Implementations must be
// safe for concurrent FileDone calls; the miner invokes it from worker
// goroutines under its accumulator lock.
type Progress interface {
	// Start reports the number of candidate files about to be processed.
	Start(totalFiles int)

	// FileDone reports one file finished, whatever its outcome.
	FileDone(path string)
}

// WithProgress attaches a progress reporter to the run. Nil disables
// reporting.
func WithProgress(p Progress) Option {
	return func(o *Options) {
		o.Progress = p
	}
}
