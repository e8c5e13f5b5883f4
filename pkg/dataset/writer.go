package dataset

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"

	"github.com/goccy/go-json"

	"github.com/specminer/core/pkg/domain"
)

// Output file names, fixed by the downstream fine-tuning contract.
const (
	TrainFile   = "train.json"
	ValFile     = "val.json"
	TestFile    = "test.json"
	SummaryFile = "dataset_summary.json"
)

// Write persists the dataset as JSON-lines split files plus a summary
// object under dir, creating the directory if needed. Records are written
// one per line, UTF-8, with non-ASCII and markup characters preserved.
//
// Write refuses an empty dataset so that no split file ever exists without
// usable content behind it.
func Write(dir string, ds domain.Dataset) error {
	if ds.Size() == 0 {
		return ErrEmptyCorpus
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	splits := []struct {
		name    string
		records []domain.Record
	}{
		{TrainFile, ds.Train},
		{ValFile, ds.Val},
		{TestFile, ds.Test},
	}
	for _, split := range splits {
		if err := writeLines(filepath.Join(dir, split.name), split.records); err != nil {
			return err
		}
	}

	return writeSummary(filepath.Join(dir, SummaryFile), ds.Summary())
}

func writeLines(path string, records []domain.Record) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	for _, r := range records {
		if err := enc.Encode(r); err != nil {
			return fmt.Errorf("encode record from %s: %w", r.SourceFile, err)
		}
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("flush %s: %w", path, err)
	}
	return f.Close()
}

func writeSummary(path string, summary domain.Summary) error {
	data, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		return fmt.Errorf("encode summary: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
