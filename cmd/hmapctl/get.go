package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/joshuapare/isolate/hmap"
	"github.com/joshuapare/isolate/memtrack"
)

func init() {
	rootCmd.AddCommand(newGetCmd())
}

func newGetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "get <file> <table> <key>",
		Short: "Look up one key",
		Long: `The get command loads a table and prints the value stored for a key.
A missing key is reported as an error.

Example:
  hmapctl get resources.kv cameras main
  hmapctl get resources.kv cameras main --json`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGet(args)
		},
	}
	return cmd
}

func runGet(args []string) error {
	path, name, key := args[0], args[1], args[2]

	tables, err := loadTables(path, name, memtrack.New())
	if err != nil {
		return err
	}
	defer deleteTables(tables)

	t, _ := findTable(tables, name)
	val, ok := t.Lookup(key)
	if !ok {
		return fmt.Errorf("key %q in table %q: %w", key, name, hmap.ErrKeyNotFound)
	}

	if jsonOut {
		return printJSON(map[string]string{
			"table": name,
			"key":   key,
			"value": val,
		})
	}

	printInfo("%s\n", val)
	return nil
}
