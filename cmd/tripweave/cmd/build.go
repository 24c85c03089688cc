package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Reconcile the trip and print it",
	Long: `Build runs the reconciliation pipeline: activities are matched
against the attachment overrides, format specs become ticket slots, slots
are reconciled against the file inventory, map links and flight info are
extracted, gmail jumps are injected and patch rules are applied.

The assembled trip prints as YAML by default; warnings go to stderr.`,
	RunE: runBuild,
}

func init() {
	rootCmd.AddCommand(buildCmd)
}

func runBuild(cmd *cobra.Command, _ []string) error {
	tw, err := newTripweave()
	if err != nil {
		return err
	}

	result := tw.Build(cmd.Context())
	for _, w := range result.Warnings {
		fmt.Fprintln(os.Stderr, "warning:", w)
	}
	if !result.IsSuccess() {
		return fmt.Errorf("build failed: %w", result.Errors[0])
	}

	if !globalFlags.Quiet {
		fmt.Fprintln(os.Stderr, result.Summary())
	}

	format := globalFlags.Output
	if format == "" || format == "table" {
		format = "yaml"
	}
	return printStructured(format, result.Trip)
}
