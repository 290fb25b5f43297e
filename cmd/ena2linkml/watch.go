package main

import (
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/timrozday-mgnify/ena-submission-dataharmonizer/internal/convert"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Re-convert checklists as they change on disk",
	Long: `Watch the input directory and re-convert any checklist XML file
that is created or written. Runs until interrupted.

Examples:
  ena2linkml watch
  ena2linkml watch -c ena2linkml.yaml`,
	RunE: runWatch,
}

var (
	watchInputDir  string
	watchOutputDir string
)

func init() {
	rootCmd.AddCommand(watchCmd)

	watchCmd.Flags().StringVarP(&watchInputDir, "input-dir", "i", convert.DefaultInputDir, "directory watched for checklist XML files")
	watchCmd.Flags().StringVarP(&watchOutputDir, "output-dir", "o", convert.DefaultOutputDir, "directory receiving schema YAML files")
}

func runWatch(cmd *cobra.Command, args []string) error {
	if cmd.Flags().Changed("input-dir") {
		cfg.InputDir = watchInputDir
	}

	if cmd.Flags().Changed("output-dir") {
		cfg.OutputDir = watchOutputDir
	}

	w, err := convert.NewWatcher(convert.New(cfg, logger))
	if err != nil {
		return err
	}
	defer w.Close()

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	return w.Run(ctx)
}
