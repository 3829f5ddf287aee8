package main

import (
	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check [flags] <file.xml|directory>...",
	Short: "Report what fix would change, without writing",
	Long:  "Run the same reduction as fix and print the full change log, but leave every file untouched. Skips, parse errors, and failed validation drive a non-zero exit.",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runCheck,
}

func init() {
	addEngineFlags(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	return runFixLike(cmd, args, true)
}
