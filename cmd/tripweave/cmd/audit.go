package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/tripweave/tripweave/pkg/pipeline"
)

var auditCmd = &cobra.Command{
	Use:   "audit",
	Short: "Cross-check attachment overrides against the built trip",
	Long: `Audit verifies every attachment-override row: does it reach an
activity, and does the activity's slot count agree with the files on
storage? Mismatched rows exit non-zero so the check can gate releases.`,
	RunE: runAudit,
}

func init() {
	rootCmd.AddCommand(auditCmd)
}

func runAudit(cmd *cobra.Command, _ []string) error {
	tw, err := newTripweave()
	if err != nil {
		return err
	}

	rows, err := tw.Audit(cmd.Context())
	if err != nil {
		return err
	}

	mismatches := 0
	for _, row := range rows {
		if row.Status != pipeline.StatusOK {
			mismatches++
		}
	}

	switch globalFlags.Output {
	case "json", "yaml":
		if err := printStructured(globalFlags.Output, rows); err != nil {
			return err
		}
	default:
		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "DATE\tACTIVITY\tSPEC\tFILES\tSLOTS\tSTATUS\tNOTES")
		for _, row := range rows {
			fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%d\t%s\t%s\n",
				row.Date, row.Activity, row.Spec,
				row.FileCount, row.SlotCount, row.Status, row.Notes)
		}
		if err := w.Flush(); err != nil {
			return err
		}
	}

	if mismatches > 0 {
		return fmt.Errorf("%d of %d override rows mismatched", mismatches, len(rows))
	}
	if !globalFlags.Quiet {
		fmt.Fprintf(os.Stderr, "All %d override rows check out\n", len(rows))
	}
	return nil
}
