package convert

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Batch is the outcome of converting a set of checklist files.
type Batch struct {
	Results  []*Result
	Failures []Failure
}

// Failure records one file that could not be converted.
type Failure struct {
	Path string
	Err  error
}

// Failed returns true when any file failed.
func (b *Batch) Failed() bool {
	return len(b.Failures) > 0
}

// Dir scans the configured input directory for checklist XML files and
// converts each one. An empty scan is not an error.
func (c *Converter) Dir() (*Batch, error) {
	files, err := scanDir(c.cfg.InputDir)
	if err != nil {
		return nil, err
	}

	if len(files) == 0 {
		c.logger.Warn().Str("dir", c.cfg.InputDir).Msg("no XML files found")

		return &Batch{}, nil
	}

	return c.Files(files), nil
}

// Files converts the given checklist files in order. One file's failure
// does not stop the others unless the configuration says fail fast.
func (c *Converter) Files(paths []string) *Batch {
	b := &Batch{}

	c.logger.Info().Int("files", len(paths)).Msg("processing checklist files")

	for _, path := range paths {
		res, err := c.File(path)
		if err != nil {
			c.logger.Error().Err(err).Str("file", path).Msg("conversion failed")
			b.Failures = append(b.Failures, Failure{Path: path, Err: err})

			if c.cfg.FailFast {
				break
			}

			continue
		}

		b.Results = append(b.Results, res)
	}

	c.logger.Info().
		Int("converted", len(b.Results)).
		Int("failed", len(b.Failures)).
		Msg("batch finished")

	return b
}

// scanDir lists the directory entries whose extension is .xml,
// case-insensitively, sorted by name.
func scanDir(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read input directory: %w", err)
	}

	var files []string

	for _, e := range entries {
		if e.IsDir() {
			continue
		}

		if !strings.EqualFold(filepath.Ext(e.Name()), ".xml") {
			continue
		}

		files = append(files, filepath.Join(dir, e.Name()))
	}

	sort.Strings(files)

	return files, nil
}
