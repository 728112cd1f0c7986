package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/propq/propq/cli"
	"github.com/propq/propq/gen"
)

var sampleCmd = &cobra.Command{
	Use:   "sample <int|bool|float|string|ints>",
	Short: "Print example values from a built-in generator",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		count, _ := cmd.Flags().GetInt("count")
		seed, _ := cmd.Flags().GetInt64("seed")
		min, _ := cmd.Flags().GetInt("min")
		max, _ := cmd.Flags().GetInt("max")
		if min > max {
			return fmt.Errorf("--min %d is greater than --max %d", min, max)
		}

		src := gen.NewSource(seed)
		cli.Infof("%d samples of %s (seed %d)", count, args[0], src.Seed())

		switch args[0] {
		case "int":
			printAll(gen.Sample(src, count, gen.IntRange(min, max)))
		case "bool":
			printAll(gen.Sample(src, count, gen.Bool()))
		case "float":
			printAll(gen.Sample(src, count, gen.Float64Range(float64(min), float64(max))))
		case "string":
			printAll(gen.Sample(src, count, gen.String(20)))
		case "ints":
			printAll(gen.Sample(src, count, gen.SliceOf(8, gen.IntRange(min, max))))
		default:
			return fmt.Errorf("unknown generator %q", args[0])
		}
		return nil
	},
}

func init() {
	sampleCmd.Flags().Int("count", 10, "number of samples to print")
	sampleCmd.Flags().Int64("seed", 0, "random seed (0 means unpredictable)")
	sampleCmd.Flags().Int("min", -100, "lower bound for numeric generators")
	sampleCmd.Flags().Int("max", 100, "upper bound for numeric generators")
}

func printAll[T any](values []T) {
	for _, v := range values {
		fmt.Printf("  %v\n", v)
	}
}
