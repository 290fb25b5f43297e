package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/timrozday-mgnify/ena-submission-dataharmonizer/internal/convert"
)

var convertCmd = &cobra.Command{
	Use:   "convert [files...]",
	Short: "Convert checklist XML files to LinkML YAML schemas",
	Long: `Convert ENA checklist definitions to LinkML schema files.

With file arguments, converts exactly those files. Without arguments,
scans the input directory for *.xml files (case-insensitive) and
converts them in name order. Each checklist is written to
<output-dir>/<accession>.yaml.

One file's failure does not stop the rest of the batch unless
--fail-fast is set; the command exits non-zero when any file failed.

Examples:
  ena2linkml convert
  ena2linkml convert -i assets/ena_schema -o schemas
  ena2linkml convert ERC000012.xml ERC000024.xml`,
	RunE: runConvert,
}

var (
	convertInputDir  string
	convertOutputDir string
	convertBaseURI   string
	convertVersion   string
	convertFailFast  bool
)

func init() {
	rootCmd.AddCommand(convertCmd)

	convertCmd.Flags().StringVarP(&convertInputDir, "input-dir", "i", convert.DefaultInputDir, "directory scanned for checklist XML files")
	convertCmd.Flags().StringVarP(&convertOutputDir, "output-dir", "o", convert.DefaultOutputDir, "directory receiving schema YAML files")
	convertCmd.Flags().StringVar(&convertBaseURI, "base-uri", "", "base URI forming each schema id")
	convertCmd.Flags().StringVar(&convertVersion, "schema-version", "", "version stamped on every schema")
	convertCmd.Flags().BoolVar(&convertFailFast, "fail-fast", false, "stop the batch at the first failure")
}

func runConvert(cmd *cobra.Command, args []string) error {
	applyConvertFlags(cmd)

	conv := convert.New(cfg, logger)

	var batch *convert.Batch

	if len(args) > 0 {
		batch = conv.Files(args)
	} else {
		var err error

		batch, err = conv.Dir()
		if err != nil {
			return err
		}
	}

	if batch.Failed() {
		return fmt.Errorf("%d of %d files failed", len(batch.Failures), len(batch.Failures)+len(batch.Results))
	}

	return nil
}

// applyConvertFlags overrides config values with flags the user actually set.
func applyConvertFlags(cmd *cobra.Command) {
	if cmd.Flags().Changed("input-dir") {
		cfg.InputDir = convertInputDir
	}

	if cmd.Flags().Changed("output-dir") {
		cfg.OutputDir = convertOutputDir
	}

	if cmd.Flags().Changed("base-uri") {
		cfg.BaseURI = convertBaseURI
	}

	if cmd.Flags().Changed("schema-version") {
		cfg.SchemaVersion = convertVersion
	}

	if cmd.Flags().Changed("fail-fast") {
		cfg.FailFast = convertFailFast
	}
}
