package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/ib-77/calcpipe/internal/debuglog"
	"github.com/ib-77/calcpipe/pkg/calc"
	"github.com/ib-77/calcpipe/pkg/pipe"
)

var version = "1.0.0"

func main() {
	rootCmd := &cobra.Command{
		Use:     "calcpipe",
		Short:   "Run the fixed transform/filter/accumulate pipeline",
		Long: `calcpipe feeds a fixed list of integers through a transform -> filter ->
accumulate pipeline and prints the final total. Built with the debug tag it
also emits [DEBUG] diagnostic lines and asserts the total is positive.`,
		Version: version,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			run(cmd.Context(), os.Stdout, debugBuild)
			return nil
		},
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// run executes the fixed scenario and writes the final line to w.
func run(ctx context.Context, w io.Writer, debug bool) {
	input := 10

	if debug {
		debuglog.Enable(w)
		defer debuglog.Disable()

		debuglog.Printf("Starting in debug mode")

		// The doubled probe is diagnostic only; the fixed value list below
		// never reads it, so both builds print the same final total.
		debugValue := input * 2
		input = debugValue
	}

	processor := calc.NewDataProcessor()

	pipe.Each(ctx, []int{5, 10, 15, 20}, processor.Process)

	result := processor.Result()

	if debug {
		debuglog.Printf("Final result: %d", result)
		if result <= 0 {
			panic(fmt.Sprintf("final result must be positive, got %d", result))
		}
	}

	fmt.Fprintf(w, "Result: %d\n", result)
}
