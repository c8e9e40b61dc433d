package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/joshuapare/isolate/hmap"
	"github.com/joshuapare/isolate/memtrack"
)

var (
	statsSection string
)

func init() {
	cmd := newStatsCmd()
	cmd.Flags().StringVar(&statsSection, "section", "", "Stats for a single table")
	rootCmd.AddCommand(cmd)
}

func newStatsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats <file>",
		Short: "Show bucket and allocation statistics",
		Long: `The stats command loads every table of a table file and shows bucket
usage, chain lengths and tracked allocations.

Example:
  hmapctl stats resources.kv
  hmapctl stats resources.kv --section cameras
  hmapctl stats resources.kv --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStats(args)
		},
	}
	return cmd
}

type FileStats struct {
	FilePath string
	FileSize int64
	Tables   []hmap.Stats
	Memory   memtrack.Stats
}

func runStats(args []string) error {
	path := args[0]
	printVerbose("Opening table file: %s\n", path)

	fileInfo, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("failed to stat file: %w", err)
	}

	tr := memtrack.New()
	tables, err := loadTables(path, statsSection, tr)
	if err != nil {
		return err
	}

	stats := FileStats{
		FilePath: path,
		FileSize: fileInfo.Size(),
	}
	for _, nt := range tables {
		stats.Tables = append(stats.Tables, nt.table.Stats())
	}
	stats.Memory = tr.Stats()
	deleteTables(tables)

	if jsonOut {
		return printJSON(stats)
	}

	printInfo("\nTable Statistics: %s\n", path)
	printInfo("%s\n\n", strings.Repeat("=", 40))

	printInfo("File Information:\n")
	printInfo("  Path: %s\n", path)
	printInfo("  Size: %s\n\n", formatBytes(stats.FileSize))

	for _, s := range stats.Tables {
		used := 0.0
		if s.Capacity > 0 {
			used = float64(s.UsedBuckets) * 100.0 / float64(s.Capacity)
		}
		printInfo("[%s]\n", s.Name)
		printInfo("  Key Kind: %s\n", s.Kind)
		printInfo("  Capacity: %d buckets\n", s.Capacity)
		printInfo("  Entries: %d\n", s.Entries)
		printInfo("  Used Buckets: %d (%.1f%%)\n", s.UsedBuckets, used)
		printInfo("  Longest Chain: %d\n", s.LongestChain)
		printInfo("  Load Factor: %.2f\n\n", s.LoadFactor)
	}

	printInfo("Memory:\n")
	printInfo("  Live Blocks: %d\n", stats.Memory.Outstanding)
	printInfo("  Live Bytes: %s\n", formatBytes(int64(stats.Memory.Bytes)))
	printInfo("  Peak Bytes: %s\n", formatBytes(int64(stats.Memory.Peak)))
	printInfo("  Allocations: %d\n", stats.Memory.Allocs)

	return nil
}

func formatBytes(bytes int64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}
	div, exp := int64(unit), 0
	for n := bytes / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %cB", float64(bytes)/float64(div), "KMGTPE"[exp])
}
