package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
	mutualinfo "github.com/sragli/mutual-information"
	"github.com/sragli/mutual-information/dataset"
	"github.com/sragli/mutual-information/staticlog"
)

func GetLagMICmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lagmi <file> [col]",
		Short: "Mutual information against lagged copies of a column",
		Args:  cobra.RangeArgs(1, 2),
		RunE:  runLagMI,
	}
	cmd.Flags().Int("lags", 20, "number of lags (capped at len-1)")
	return cmd
}

func runLagMI(cmd *cobra.Command, args []string) error {
	ds, err := dataset.Load(args[0])
	if err != nil {
		return err
	}
	col, name := ds.Cols[0], ds.Names[0]
	if len(args) == 2 {
		if col, err = ds.Column(args[1]); err != nil {
			return err
		}
		name = args[1]
	}

	lags, _ := cmd.Flags().GetInt("lags")
	if lags >= len(col) {
		lags = len(col) - 1
	}
	staticlog.Log.Debugf("lagmi %s over %d lags", name, lags)

	r, err := mutualinfo.AutoMIParallel(col, lags, optionsFrom(cmd))
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 2, 4, 2, ' ', 0)
	fmt.Fprintln(w, "LAG\tMI")
	for tau, v := range r {
		fmt.Fprintf(w, "%d\t%.6f\n", tau, v)
	}
	return w.Flush()
}
