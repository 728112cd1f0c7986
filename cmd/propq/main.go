package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/spf13/cobra"
)

// Build-time variables injected via ldflags
var (
	version = "dev"
	commit  = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "propq",
	Short: "Property-based testing engine",
	Long: `propq checks boolean-valued properties against randomly generated inputs.

It runs repeated randomized trials, stops at the first counter-example, and
reports the seed needed to replay a failing run. The demo command exercises
the engine against a merge sort; the sample command prints example values
from the built-in generators.`,
	SilenceUsage: true,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("propq version %s\n", version)
		fmt.Printf("  commit: %s\n", commit)
		fmt.Printf("  go version: %s\n", runtime.Version())
		fmt.Printf("  platform: %s/%s\n", runtime.GOOS, runtime.GOARCH)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(demoCmd)
	rootCmd.AddCommand(sampleCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
