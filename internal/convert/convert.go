package convert

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/timrozday-mgnify/ena-submission-dataharmonizer/internal/checklist"
	"github.com/timrozday-mgnify/ena-submission-dataharmonizer/internal/diagnostic"
	"github.com/timrozday-mgnify/ena-submission-dataharmonizer/internal/linkml"
)

// File permission constants.
const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// Converter drives checklist files through parse, build and serialize.
type Converter struct {
	cfg    Config
	logger zerolog.Logger
}

// New returns a Converter for the given configuration.
func New(cfg Config, logger zerolog.Logger) *Converter {
	return &Converter{cfg: cfg, logger: logger}
}

// Result describes one successfully converted checklist.
type Result struct {
	// Accession of the source checklist.
	Accession string
	// Path of the written schema file.
	Path string
	// Slots, Required and Enums count the schema entries.
	Slots    int
	Required int
	Enums    int
	// Diagnostics collected while deriving the schema.
	Diagnostics diagnostic.Diagnostics
}

// File converts one checklist XML file and writes <accession>.yaml into
// the output directory. Nothing is written unless the full document
// rendered successfully.
func (c *Converter) File(path string) (*Result, error) {
	cl, err := checklist.ParseFile(path)
	if err != nil {
		return nil, err
	}

	schema, diags := linkml.Build(cl, c.cfg.BuildOptions())

	data, err := linkml.Marshal(schema)
	if err != nil {
		return nil, fmt.Errorf("render schema for %s: %w", cl.Accession, err)
	}

	outPath := filepath.Join(c.cfg.OutputDir, cl.Accession+".yaml")
	if err := writeFile(outPath, data); err != nil {
		return nil, err
	}

	res := &Result{
		Accession:   cl.Accession,
		Path:        outPath,
		Slots:       schema.Slots.Len(),
		Required:    schema.RequiredCount(),
		Enums:       schema.Enums.Len(),
		Diagnostics: diags,
	}

	c.logResult(res)

	return res, nil
}

// writeFile writes data, creating the target directory if needed.
func writeFile(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), dirPerm); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	if err := os.WriteFile(path, data, filePerm); err != nil {
		return fmt.Errorf("writing file %s: %w", path, err)
	}

	return nil
}

func (c *Converter) logResult(res *Result) {
	for _, w := range res.Diagnostics.Warnings {
		c.logger.Warn().
			Str("accession", w.Accession).
			Str("code", w.Code).
			Str("field", w.Field).
			Msg(w.Message)
	}

	for _, i := range res.Diagnostics.Infos {
		c.logger.Debug().
			Str("accession", i.Accession).
			Str("code", i.Code).
			Str("field", i.Field).
			Msg(i.Message)
	}

	c.logger.Info().
		Str("accession", res.Accession).
		Int("slots", res.Slots).
		Int("required", res.Required).
		Int("enums", res.Enums).
		Str("output", res.Path).
		Msg("converted checklist")
}
