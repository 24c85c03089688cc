package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var probeCmd = &cobra.Command{
	Use:   "probe",
	Short: "Probe attachment URLs for reachability",
	Long: `Probe issues a HEAD request (with GET fallback) against every
attachment URL in the inventory and verifies the response content type:
PDFs must not come back as HTML and QR images must be images. Use
--base-url to point at the deployed asset host.`,
	RunE: runProbe,
}

func init() {
	rootCmd.AddCommand(probeCmd)
}

func runProbe(cmd *cobra.Command, _ []string) error {
	tw, err := newTripweave()
	if err != nil {
		return err
	}

	results, err := tw.Probe(cmd.Context())
	if err != nil {
		return err
	}

	switch globalFlags.Output {
	case "json", "yaml":
		return printStructured(globalFlags.Output, results)
	}

	failed := 0
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "STATUS\tCODE\tFOLDER\tFILE\tCONTENT-TYPE")
	for _, r := range results {
		status := "ok"
		if !r.OK {
			status = "FAIL"
			failed++
		}
		fmt.Fprintf(w, "%s\t%d\t%s\t%s\t%s\n",
			status, r.StatusCode, r.Folder, r.File, r.ContentType)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d attachments failed the probe", failed, len(results))
	}
	return nil
}
