package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
	mutualinfo "github.com/sragli/mutual-information"
	"github.com/sragli/mutual-information/dataset"
)

func GetEntropyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "entropy <file> [col...]",
		Short: "Shannon entropy per column",
		Args:  cobra.MinimumNArgs(1),
		RunE:  runEntropy,
	}
}

func runEntropy(cmd *cobra.Command, args []string) error {
	ds, err := dataset.Load(args[0])
	if err != nil {
		return err
	}

	names, cols := ds.Names, ds.Cols
	if len(args) > 1 {
		names, cols = nil, nil
		for _, key := range args[1:] {
			col, err := ds.Column(key)
			if err != nil {
				return err
			}
			names = append(names, key)
			cols = append(cols, col)
		}
	}

	opts := optionsFrom(cmd)
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 2, 4, 2, ' ', 0)
	fmt.Fprintln(w, "COLUMN\tENTROPY")
	for i, col := range cols {
		h, err := mutualinfo.Entropy(col, opts)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%s\t%.6f\n", names[i], h)
	}
	return w.Flush()
}
