package miner

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/bmatcuk/doublestar/v4"
)

// specExtensions are the file suffixes recognized as specification documents.
var specExtensions = []string{".yaml", ".yml", ".json"}

// discoverFiles enumerates candidate files under the allowlisted corpora.
// Returned paths are relative to root for stable provenance and ordering.
// A corpus directory that does not exist contributes a discovery warning.
func (m *Miner) discoverFiles(ctx context.Context, root string) ([]string, []MineError) {
	skipSet := buildSkipSet(append(append([]string(nil), DefaultSkipDirs...), m.options.ExcludeDirs...))

	var (
		files []string
		errs  []MineError
		mu    sync.Mutex
	)

	for _, corpus := range m.options.Corpora {
		corpusPath := filepath.Join(root, corpus)

		if info, err := os.Stat(corpusPath); err != nil || !info.IsDir() {
			errs = append(errs, MineError{
				Err:   fmt.Errorf("corpus directory not found: %s", corpusPath),
				Path:  corpus,
				Phase: PhaseDiscovery,
			})
			continue
		}

		walkErr := filepath.WalkDir(corpusPath, func(path string, d fs.DirEntry, err error) error {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			if err != nil {
				mu.Lock()
				errs = append(errs, MineError{
					Err:   fmt.Errorf("access error: %w", err),
					Path:  path,
					Phase: PhaseDiscovery,
				})
				mu.Unlock()
				return nil
			}

			if d.IsDir() {
				if path != corpusPath && skipSet[filepath.Base(path)] {
					return filepath.SkipDir
				}
				return nil
			}

			if !isSpecFile(path) {
				return nil
			}

			relPath, err := filepath.Rel(root, path)
			if err != nil {
				mu.Lock()
				errs = append(errs, MineError{
					Err:   fmt.Errorf("compute relative path: %w", err),
					Path:  path,
					Phase: PhaseDiscovery,
				})
				mu.Unlock()
				return nil
			}

			if len(m.options.IncludePatterns) > 0 && !matchesAnyPattern(relPath, m.options.IncludePatterns) {
				return nil
			}

			mu.Lock()
			files = append(files, relPath)
			mu.Unlock()
			return nil
		})

		if walkErr != nil && ctx.Err() == nil {
			errs = append(errs, MineError{
				Err:   walkErr,
				Path:  corpus,
				Phase: PhaseDiscovery,
			})
		}
	}

	return files, errs
}

func isSpecFile(path string) bool {
	name := strings.ToLower(filepath.Base(path))
	for _, ext := range specExtensions {
		if strings.HasSuffix(name, ext) {
			return true
		}
	}
	return false
}

func matchesAnyPattern(relPath string, patterns []string) bool {
	relPath = filepath.ToSlash(relPath)
	for _, pattern := range patterns {
		matched, err := doublestar.Match(pattern, relPath)
		if err != nil {
			continue
		}
		if matched {
			return true
		}
	}
	return false
}

func buildSkipSet(patterns []string) map[string]bool {
	skipSet := make(map[string]bool, len(patterns))
	for _, p := range patterns {
		skipSet[p] = true
	}
	return skipSet
}
