package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List reconciled activities",
	Long: `List prints the reconciled activities flattened across days: id,
time, title, place and how many ticket slots each carries.`,
	RunE: runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, _ []string) error {
	tw, err := newTripweave()
	if err != nil {
		return err
	}

	built, err := tw.Trip(cmd.Context())
	if err != nil {
		return err
	}

	activities := built.Activities()
	switch globalFlags.Output {
	case "json", "yaml":
		return printStructured(globalFlags.Output, activities)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTIME\tTITLE\tPLACE\tSLOTS")
	for _, act := range activities {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\n",
			act.ID, act.Time, act.Title, act.PlaceName, len(act.TicketSlots))
	}
	return w.Flush()
}
