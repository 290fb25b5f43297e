package main

import (
	"fmt"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"

	"github.com/timrozday-mgnify/ena-submission-dataharmonizer/internal/checklist"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <file>",
	Short: "Summarize a checklist file without converting it",
	Long: `Parse one checklist XML file and print a human-readable summary:
accession, type, label, authority, and per-group field counts with
kind and requirement tallies.

Examples:
  ena2linkml inspect assets/ena_schema/ERC000024.xml
  ena2linkml inspect --dump ERC000024.xml`,
	Args: cobra.ExactArgs(1),
	RunE: runInspect,
}

var inspectDump bool

func init() {
	rootCmd.AddCommand(inspectCmd)

	inspectCmd.Flags().BoolVar(&inspectDump, "dump", false, "dump the parsed tree for debugging")
}

func runInspect(cmd *cobra.Command, args []string) error {
	cl, err := checklist.ParseFile(args[0])
	if err != nil {
		return err
	}

	fmt.Printf("%s (%s)\n", cl.Accession, cl.Type)
	fmt.Printf("  label:       %s\n", cl.Label)
	fmt.Printf("  name:        %s\n", cl.Name)
	fmt.Printf("  authority:   %s\n", cl.Authority)
	fmt.Printf("  groups:      %d\n", len(cl.Groups))
	fmt.Printf("  fields:      %d\n", cl.FieldCount())

	for _, g := range cl.Groups {
		fmt.Printf("\n  %s (%d fields)\n", g.Name, len(g.Fields))

		kinds := map[checklist.FieldKind]int{}
		mandatory := 0

		for _, f := range g.Fields {
			kinds[f.Kind]++

			if f.Mandatory {
				mandatory++
			}
		}

		fmt.Printf("    mandatory:   %d\n", mandatory)

		for _, k := range []checklist.FieldKind{checklist.KindPlainText, checklist.KindPatternText, checklist.KindChoice} {
			if kinds[k] > 0 {
				fmt.Printf("    %-12s %d\n", k.String()+":", kinds[k])
			}
		}
	}

	if inspectDump {
		spew.Dump(cl)
	}

	return nil
}
