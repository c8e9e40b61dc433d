package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/joshuapare/isolate/hmap"
)

var (
	hashCapacity int
)

func init() {
	cmd := newHashCmd()
	cmd.Flags().IntVarP(&hashCapacity, "capacity", "c", 100, "Bucket count used to compute the index")
	rootCmd.AddCommand(cmd)
}

func newHashCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hash <key>...",
		Short: "Print the hash and bucket index of string keys",
		Long: `The hash command prints the 64-bit string hash of each key and the
bucket it lands in for the given capacity.

Example:
  hmapctl hash resources/shaders/basic.glsl
  hmapctl hash name_1 name_2 name_3 --capacity 3`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHash(args)
		},
	}
	return cmd
}

type hashJSON struct {
	Key   string `json:"key"`
	Hash  int64  `json:"hash"`
	Index int    `json:"index"`
}

func runHash(args []string) error {
	if hashCapacity <= 0 {
		return fmt.Errorf("capacity must be positive, got %d", hashCapacity)
	}

	out := make([]hashJSON, 0, len(args))
	for _, key := range args {
		h := hmap.HashString(key)
		out = append(out, hashJSON{Key: key, Hash: h, Index: hmap.IndexOf(h, hashCapacity)})
	}

	if jsonOut {
		return printJSON(out)
	}

	for _, r := range out {
		printInfo("%s\thash=%d\tindex=%d\n", r.Key, r.Hash, r.Index)
	}
	return nil
}
