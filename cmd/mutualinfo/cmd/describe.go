package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/sragli/mutual-information/dataset"
)

func GetDescribeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "describe <file>",
		Short: "Per-column summary statistics",
		Args:  cobra.ExactArgs(1),
		RunE:  runDescribe,
	}
}

func runDescribe(cmd *cobra.Command, args []string) error {
	ds, err := dataset.Load(args[0])
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 2, 4, 2, ' ', 0)
	fmt.Fprintln(w, "COLUMN\tN\tMEAN\tSTD\tMIN\tMAX\tKIND")
	for _, s := range ds.DescribeAll() {
		kind := "continuous"
		if s.Integral {
			kind = "integral"
		}
		fmt.Fprintf(w, "%s\t%d\t%.6g\t%.6g\t%.6g\t%.6g\t%s\n",
			s.Name, s.N, s.Mean, s.Std, s.Min, s.Max, kind)
	}
	return w.Flush()
}
