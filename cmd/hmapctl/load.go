package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/joshuapare/isolate/memtrack"
)

var (
	loadSection string
)

func init() {
	cmd := newLoadCmd()
	cmd.Flags().StringVar(&loadSection, "section", "", "Load only this table")
	rootCmd.AddCommand(cmd)
}

func newLoadCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "load <file>",
		Short: "Build tables from a table file and dump their buckets",
		Long: `The load command builds one table per section of a table file, dumps
every non-empty bucket in chain order, then deletes the tables and reports any
table memory left outstanding.

Example:
  hmapctl load resources.kv
  hmapctl load resources.kv --section cameras
  hmapctl load resources.kv --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLoad(args)
		},
	}
	return cmd
}

type entryJSON struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

type bucketJSON struct {
	Index   int         `json:"index"`
	Entries []entryJSON `json:"entries"`
}

type tableJSON struct {
	Name     string       `json:"name"`
	Capacity int          `json:"capacity"`
	Entries  int          `json:"entries"`
	Buckets  []bucketJSON `json:"buckets"`
}

func runLoad(args []string) error {
	path := args[0]
	printVerbose("Loading table file: %s\n", path)

	tr := memtrack.New()
	tables, err := loadTables(path, loadSection, tr)
	if err != nil {
		return err
	}

	if jsonOut {
		out := make([]tableJSON, 0, len(tables))
		for _, nt := range tables {
			out = append(out, tableToJSON(nt))
		}
		deleteTables(tables)
		return printJSON(map[string]interface{}{
			"file":        path,
			"tables":      out,
			"outstanding": tr.Outstanding(),
		})
	}

	for _, nt := range tables {
		t := nt.table
		printInfo("[%s] capacity=%d entries=%d\n", t.Name(), t.Capacity(), t.Len())
		if !quiet {
			t.DumpTo(os.Stdout, "%q", "%q")
		}
	}

	deleteTables(tables)
	if n := tr.Report(os.Stdout); n == 0 {
		printVerbose("All table memory released\n")
	}
	return nil
}

func tableToJSON(nt namedTable) tableJSON {
	t := nt.table
	out := tableJSON{
		Name:     t.Name(),
		Capacity: t.Capacity(),
		Entries:  t.Len(),
		Buckets:  []bucketJSON{},
	}
	for i := range t.Capacity() {
		keys := t.Chain(i)
		if len(keys) == 0 {
			continue
		}
		b := bucketJSON{Index: i}
		for _, k := range keys {
			v, _ := t.Lookup(k)
			b.Entries = append(b.Entries, entryJSON{Key: k, Value: v})
		}
		out.Buckets = append(out.Buckets, b)
	}
	return out
}
