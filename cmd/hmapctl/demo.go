package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/joshuapare/isolate/hmap"
	"github.com/joshuapare/isolate/memtrack"
)

func init() {
	rootCmd.AddCommand(newDemoCmd())
}

func newDemoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Run the reference table exercises",
		Long: `The demo command fills an int table of capacity 5 and a string table of
capacity 3, dumps both, reads one key back from each, deletes them and reports
any unreleased table memory.

Example:
  hmapctl demo`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDemo()
		},
	}
	return cmd
}

func runDemo() error {
	ints := hmap.NewScalar[int, int](5, hmap.WithName("int_map"))
	ints.Insert(1, 10)
	ints.Insert(2, 10)
	ints.Insert(3, 10)
	ints.Insert(4, 11)
	ints.Insert(5, 10)
	ints.Dump("%d", "%d")
	printInfo("GOT: %d\n\n", ints.Get(1))
	ints.Delete()

	strs := hmap.NewString[string](3, hmap.WithName("char_map"))
	for i := 1; i <= 5; i++ {
		strs.Insert(fmt.Sprintf("name_%d", i), fmt.Sprintf("Helo_%d", i))
	}
	strs.Dump("%s", "%s")
	printInfo("GOT: %s\n\n", strs.Get("name_5"))
	strs.Delete()

	if n := memtrack.Alert(); n != 0 {
		return fmt.Errorf("%d table blocks were not released", n)
	}
	printVerbose("All table memory released\n")
	return nil
}
