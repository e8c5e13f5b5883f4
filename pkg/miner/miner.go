// Package miner drives the extraction pipeline: corpus discovery, per-file
// parsing and record mining, canonical ordering, and deduplication.
//
// Every per-file failure is recovered locally and surfaced as a MineError on
// the result; a run only fails outright on cancellation or timeout.
package miner

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"

	"github.com/specminer/core/pkg/document"
	"github.com/specminer/core/pkg/domain"
	"github.com/specminer/core/pkg/extract"
)

const (
	// DefaultTimeout is the default run timeout duration.
	DefaultTimeout = 5 * time.Minute
	// DefaultMaxFileSize is the default maximum file size to process (10MB).
	DefaultMaxFileSize = 10 * 1024 * 1024
	// MaxWorkers is the maximum number of concurrent workers allowed.
	MaxWorkers = 1024
)

// DefaultCorpora is the allowlist of corpus subdirectories mined by default.
var DefaultCorpora = []string{"broken", "business", "deployed", "public", "specs-3.0"}

// DefaultSkipDirs contains directory names skipped during discovery.
var DefaultSkipDirs = []string{".git", "node_modules", "vendor", "__pycache__", ".cache"}

var (
	// ErrMineCancelled is returned when a run is cancelled via context.
	ErrMineCancelled = errors.New("miner: run cancelled")
	// ErrMineTimeout is returned when a run exceeds the timeout duration.
	ErrMineTimeout = errors.New("miner: run timeout")
)

// Phase values for MineError.
const (
	PhaseDiscovery = "discovery"
	PhaseParse     = "parse"
	PhaseExtract   = "extract"
)

// MineError represents a recovered failure during a specific phase of a run.
type MineError struct {
	// Err is the underlying error.
	Err error

	// Path is the file or corpus path the error occurred on.
	Path string

	// Phase indicates which phase the error occurred in.
	// Values: "discovery", "parse", "extract".
	Phase string
}

// Error implements the error interface.
func (e MineError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("[%s] %v", e.Phase, e.Err)
	}
	return fmt.Sprintf("[%s] %s: %v", e.Phase, e.Path, e.Err)
}

// MineStats provides statistics about a run.
type MineStats struct {
	// FilesScanned is the total number of candidate files discovered.
	FilesScanned int

	// FilesParsed is the number of files parsed successfully,
	// including files whose root was not a mapping.
	FilesParsed int

	// FilesFailed is the number of files that failed to parse or extract.
	FilesFailed int

	// FilesSkipped is the number of files skipped before parsing
	// (currently only oversize files).
	FilesSkipped int

	// RecordsExtracted is the record count before deduplication.
	RecordsExtracted int

	// DuplicatesDropped is the number of records removed by deduplication.
	DuplicatesDropped int

	// TypeBreakdown counts deduplicated records per type.
	TypeBreakdown map[domain.RecordType]int

	// Duration is the total run duration.
	Duration time.Duration
}

// Result contains the outcome of a mining run.
type Result struct {
	// Records is the deduplicated record sequence in canonical order.
	Records []domain.Record

	// Errors contains non-fatal errors recovered during the run.
	Errors []MineError

	// Stats provides run statistics.
	Stats MineStats
}

// Miner mines training records from a specification corpus.
type Miner struct {
	extractors []extract.Extractor
	options    *Options
}

// New creates a miner with the given options.
func New(opts ...Option) *Miner {
	options := &Options{}
	for _, opt := range opts {
		opt(options)
	}
	applyDefaults(options)

	return &Miner{
		extractors: extract.ForCapabilities(options.Capabilities),
		options:    options,
	}
}

// Mine runs the full pipeline over the corpus root:
//  1. Discover candidate files under the allowlisted corpora
//  2. Parse and extract each file in parallel
//  3. Restore canonical record order
//  4. Deduplicate on input text, first occurrence wins
//
// Per-file failures never abort the run; they accumulate on Result.Errors.
func (m *Miner) Mine(ctx context.Context, root string) (*Result, error) {
	startTime := time.Now()

	ctx, cancel := context.WithTimeout(ctx, m.options.Timeout)
	defer cancel()

	result := &Result{
		Records: []domain.Record{},
		Errors:  []MineError{},
	}

	files, errs := m.discoverFiles(ctx, root)
	result.Errors = append(result.Errors, errs...)
	result.Stats.FilesScanned = len(files)

	mined, mineErrors, skipped := m.extractFilesParallel(ctx, root, files)
	result.Errors = append(result.Errors, mineErrors...)
	result.Stats.FilesFailed = len(mineErrors)
	result.Stats.FilesSkipped = skipped
	result.Stats.FilesParsed = len(files) - len(mineErrors) - skipped

	records := flattenCanonical(mined)
	result.Stats.RecordsExtracted = len(records)

	result.Records = Dedupe(records)
	result.Stats.DuplicatesDropped = len(records) - len(result.Records)
	result.Stats.TypeBreakdown = domain.TypeBreakdown(result.Records)
	result.Stats.Duration = time.Since(startTime)

	if err := ctx.Err(); err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return result, ErrMineTimeout
		}
		return result, ErrMineCancelled
	}

	return result, nil
}

// fileRecords pairs one file's relative path with the records mined from it.
// The path is the sort key that restores canonical order after parallel
// extraction; record order within a file is already deterministic.
type fileRecords struct {
	path    string
	records []domain.Record
}

func (m *Miner) extractFilesParallel(ctx context.Context, root string, files []string) ([]fileRecords, []MineError, int) {
	workers := m.options.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers > MaxWorkers {
		workers = MaxWorkers
	}

	if m.options.Progress != nil {
		m.options.Progress.Start(len(files))
	}

	sem := semaphore.NewWeighted(int64(workers))
	g, gCtx := errgroup.WithContext(ctx)

	var (
		mu      sync.Mutex
		mined   = make([]fileRecords, 0, len(files))
		errs    = make([]MineError, 0)
		skipped int
	)

	for _, file := range files {
		g.Go(func() error {
			if err := sem.Acquire(gCtx, 1); err != nil {
				return nil
			}
			defer sem.Release(1)

			records, mineErr, skip := m.extractFile(gCtx, root, file)

			mu.Lock()
			defer mu.Unlock()

			if m.options.Progress != nil {
				m.options.Progress.FileDone(file)
			}

			if skip {
				skipped++
				return nil
			}
			if mineErr != nil {
				errs = append(errs, *mineErr)
				return nil
			}
			mined = append(mined, fileRecords{path: file, records: records})
			return nil
		})
	}

	_ = g.Wait()

	// Goroutines complete in arbitrary order; sorting by path restores the
	// canonical ordering that dedup and split determinism depend on.
	sort.Slice(mined, func(i, j int) bool {
		return mined[i].path < mined[j].path
	})

	return mined, errs, skipped
}

// extractFile mines one file. A parse failure or a panicking extractor is
// returned as a MineError; the skip flag reports an oversize file.
func (m *Miner) extractFile(ctx context.Context, root, relPath string) (records []domain.Record, mineErr *MineError, skip bool) {
	if err := ctx.Err(); err != nil {
		return nil, &MineError{Err: err, Path: relPath, Phase: PhaseParse}, false
	}

	// Extraction trusts nothing about the tree, but a hostile document could
	// still find an unguarded path; one file must never take down the run.
	defer func() {
		if r := recover(); r != nil {
			records = nil
			mineErr = &MineError{
				Err:   fmt.Errorf("recovered panic: %v", r),
				Path:  relPath,
				Phase: PhaseExtract,
			}
			skip = false
		}
	}()

	fullPath := filepath.Join(root, relPath)

	if m.options.MaxFileSize > 0 {
		info, err := os.Stat(fullPath)
		if err != nil {
			return nil, &MineError{Err: err, Path: relPath, Phase: PhaseParse}, false
		}
		if info.Size() > m.options.MaxFileSize {
			return nil, nil, true
		}
	}

	content, err := os.ReadFile(fullPath)
	if err != nil {
		return nil, &MineError{Err: err, Path: relPath, Phase: PhaseParse}, false
	}

	docRoot, err := document.Parse(content)
	if err != nil {
		return nil, &MineError{Err: err, Path: relPath, Phase: PhaseParse}, false
	}

	// A root that is not a mapping yields zero records but is not a failure.
	if _, ok := document.Mapping(docRoot); !ok {
		return nil, nil, false
	}

	sourceFile := filepath.Base(relPath)
	for _, ex := range m.extractors {
		records = append(records, ex.Extract(docRoot, sourceFile)...)
	}
	return records, nil, false
}

func flattenCanonical(mined []fileRecords) []domain.Record {
	total := 0
	for _, fr := range mined {
		total += len(fr.records)
	}
	records := make([]domain.Record, 0, total)
	for _, fr := range mined {
		records = append(records, fr.records...)
	}
	return records
}

// Dedupe removes records with duplicate input text, keeping the first
// occurrence. Order among kept records is the original encounter order.
func Dedupe(records []domain.Record) []domain.Record {
	seen := make(map[string]bool, len(records))
	kept := make([]domain.Record, 0, len(records))
	for _, r := range records {
		if seen[r.InputText] {
			continue
		}
		seen[r.InputText] = true
		kept = append(kept, r)
	}
	return kept
}

// Mine runs a one-shot pipeline with the given options.
func Mine(ctx context.Context, root string, opts ...Option) (*Result, error) {
	return New(opts...).Mine(ctx, root)
}
