package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"sort"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/specminer/core/internal/config"
	"github.com/specminer/core/pkg/dataset"
	"github.com/specminer/core/pkg/domain"
	"github.com/specminer/core/pkg/miner"
)

var (
	rootFlag       string
	outputFlag     string
	corporaFlag    []string
	extractorsFlag []string
	seedFlag       int64
	workersFlag    int
)

// mineCmd runs the full pipeline: discover, extract, dedupe, split, write.
var mineCmd = &cobra.Command{
	Use:   "mine",
	Short: "Extract training records and write dataset splits",
	Long: `Mine walks the allowlisted corpora under the corpus root, extracts
training records from every parseable document, deduplicates them on
context, and writes train.json, val.json, test.json and
dataset_summary.json to the output directory.

Examples:
  # Mine with defaults (open_api_specs root, all extractors)
  specminer mine

  # Operations only, custom root and output
  specminer mine --root ./corpus --output ./out --extractors operations

  # Reproduce a split with a different seed
  specminer mine --seed 7`,
	RunE: runMine,
}

func init() {
	rootCmd.AddCommand(mineCmd)
	mineCmd.Flags().StringVar(&rootFlag, "root", "", "corpus root directory")
	mineCmd.Flags().StringVarP(&outputFlag, "output", "o", "", "output directory for split files")
	mineCmd.Flags().StringSliceVar(&corporaFlag, "corpora", nil, "allowlisted corpus subdirectories")
	mineCmd.Flags().StringSliceVar(&extractorsFlag, "extractors", nil, "extractor families to run (operations, examples, schemas)")
	mineCmd.Flags().Int64Var(&seedFlag, "seed", -1, "split seed (default from config)")
	mineCmd.Flags().IntVar(&workersFlag, "workers", -1, "concurrent file workers (0 = GOMAXPROCS)")
}

func runMine(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		fmt.Fprintln(os.Stderr, "\ninterrupted, cancelling run...")
		cancel()
	}()

	cfg, err := config.Load(cfgFile)
	if err != nil {
		return err
	}
	applyFlagOverrides(cfg, cmd)

	caps, err := cfg.Capabilities()
	if err != nil {
		return err
	}

	m := miner.New(
		miner.WithCorpora(cfg.Corpora),
		miner.WithCapabilities(caps),
		miner.WithWorkers(cfg.Workers),
		miner.WithMaxFileSize(cfg.MaxFileSize),
		miner.WithProgress(newBarReporter(quiet)),
	)

	if !quiet {
		fmt.Fprintf(os.Stderr, "mining %s (corpora: %v, extractors: %v)\n", cfg.Root, cfg.Corpora, caps)
	}

	result, err := m.Mine(ctx, cfg.Root)
	if err != nil {
		return err
	}

	reportRun(result)

	ds, err := dataset.Split(result.Records, cfg.Seed, cfg.SplitRatios())
	if err != nil {
		if errors.Is(err, dataset.ErrEmptyCorpus) {
			return fmt.Errorf("no records extracted from %s: check the corpus root and corpora list", cfg.Root)
		}
		return err
	}

	if err := dataset.Write(cfg.Output, ds); err != nil {
		return err
	}

	if !quiet {
		fmt.Fprintf(os.Stderr, "wrote %s: train=%d val=%d test=%d\n",
			cfg.Output, len(ds.Train), len(ds.Val), len(ds.Test))
	}
	return nil
}

// applyFlagOverrides layers explicit command-line flags over the loaded
// configuration. Only flags the user actually set win.
func applyFlagOverrides(cfg *config.Config, cmd *cobra.Command) {
	if cmd.Flags().Changed("root") {
		cfg.Root = rootFlag
	}
	if cmd.Flags().Changed("output") {
		cfg.Output = outputFlag
	}
	if cmd.Flags().Changed("corpora") {
		cfg.Corpora = corporaFlag
	}
	if cmd.Flags().Changed("extractors") {
		cfg.Extractors = extractorsFlag
	}
	if cmd.Flags().Changed("seed") {
		cfg.Seed = seedFlag
	}
	if cmd.Flags().Changed("workers") {
		cfg.Workers = workersFlag
	}
}

func reportRun(result *miner.Result) {
	if quiet {
		return
	}
	s := result.Stats
	fmt.Fprintf(os.Stderr, "scanned %d files: %d parsed, %d failed, %d skipped\n",
		s.FilesScanned, s.FilesParsed, s.FilesFailed, s.FilesSkipped)
	fmt.Fprintf(os.Stderr, "extracted %d records, %d duplicates dropped, %d kept\n",
		s.RecordsExtracted, s.DuplicatesDropped, len(result.Records))
	types := make([]string, 0, len(s.TypeBreakdown))
	for t := range s.TypeBreakdown {
		types = append(types, string(t))
	}
	sort.Strings(types)
	for _, t := range types {
		fmt.Fprintf(os.Stderr, "  %s: %d\n", t, s.TypeBreakdown[domain.RecordType(t)])
	}
	if verbose {
		for _, mineErr := range result.Errors {
			fmt.Fprintf(os.Stderr, "  warn: %v\n", mineErr)
		}
	} else if len(result.Errors) > 0 {
		fmt.Fprintf(os.Stderr, "%d files reported problems (rerun with --verbose to list them)\n", len(result.Errors))
	}
}
