package main

import (
	"os"

	"github.com/spf13/cobra"
)

//nolint:gochecknoglobals // Cobra boilerplate
var verbose bool

//nolint:gochecknoglobals // Cobra boilerplate
var rootCmd = &cobra.Command{
	Use:   "portfolioctl",
	Short: "Build portfolio snapshots from GitHub data",
	Long: `portfolioctl builds the same derived portfolio snapshot the API server
serves, without running the server.

It reads the server's environment variables (GITHUB_USERNAME, GITHUB_TOKEN,
FEATURED_PROJECTS, ...), with flags taking precedence.`,
}

// Execute runs the root command.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output")
}

// getVerbose returns the verbose flag value.
func getVerbose() (result bool) {
	result = verbose
	return result
}
