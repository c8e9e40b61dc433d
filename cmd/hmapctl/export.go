package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/joshuapare/isolate/internal/kvtext"
	"github.com/joshuapare/isolate/memtrack"
)

var (
	exportOutput   string
	exportEncoding string
	exportSection  string
)

func init() {
	cmd := newExportCmd()
	cmd.Flags().StringVarP(&exportOutput, "output", "o", "", "Write to this file instead of stdout")
	cmd.Flags().StringVar(&exportEncoding, "to-encoding", string(kvtext.EncodingUTF8), "Output encoding (utf-8, utf-16le, windows-1252)")
	cmd.Flags().StringVar(&exportSection, "section", "", "Export a single table")
	rootCmd.AddCommand(cmd)
}

func newExportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export <file>",
		Short: "Rewrite a table file from its loaded tables",
		Long: `The export command loads every table of a table file and writes the
tables back out in table file syntax. Pairs are written in bucket order, so
keys that were inserted twice appear once with their last value.

Example:
  hmapctl export resources.kv
  hmapctl export resources.kv --to-encoding utf-16le -o resources16.kv`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(args)
		},
	}
	return cmd
}

func runExport(args []string) error {
	path := args[0]

	enc, err := kvtext.ParseEncoding(exportEncoding)
	if err != nil {
		return err
	}

	tables, err := loadTables(path, exportSection, memtrack.New())
	if err != nil {
		return err
	}
	defer deleteTables(tables)

	sections := make([]*kvtext.Section, 0, len(tables))
	for _, nt := range tables {
		sec := &kvtext.Section{Name: nt.table.Name(), Capacity: nt.table.Capacity()}
		for k, v := range nt.table.All() {
			sec.Pairs = append(sec.Pairs, kvtext.Pair{Key: k, Value: v})
		}
		sections = append(sections, sec)
	}

	var w io.Writer = os.Stdout
	if exportOutput != "" {
		f, err := os.Create(exportOutput)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		w = f
	}

	if err := kvtext.Emit(w, sections, enc); err != nil {
		return err
	}
	if exportOutput != "" {
		printVerbose("Exported %d tables to %s\n", len(sections), exportOutput)
	}
	return nil
}
