package cmd

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	mutualinfo "github.com/sragli/mutual-information"
	"github.com/sragli/mutual-information/dataset"
	"github.com/sragli/mutual-information/staticlog"
	"gonum.org/v1/gonum/mat"
)

func GetMatrixCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "matrix <file>",
		Short: "Pairwise normalized mutual information matrix",
		Args:  cobra.ExactArgs(1),
		RunE:  runMatrix,
	}
	cmd.Flags().Bool("raw", false, "raw mutual information instead of normalized")
	cmd.Flags().Bool("pearson", false, "Pearson correlation as a linear baseline")
	return cmd
}

func runMatrix(cmd *cobra.Command, args []string) error {
	ds, err := dataset.Load(args[0])
	if err != nil {
		return err
	}
	opts := optionsFrom(cmd)
	raw, _ := cmd.Flags().GetBool("raw")
	pearson, _ := cmd.Flags().GetBool("pearson")
	staticlog.Log.Debugf("matrix over %d columns, bins=%d base=%v", len(ds.Cols), opts.Bins, opts.Base)

	var m *mat.SymDense
	switch {
	case pearson:
		m, err = mutualinfo.PairwiseCorrelation(ds.Cols)
	case raw:
		m, err = mutualinfo.PairwiseMatrix(ds.Cols, opts)
	default:
		m, err = mutualinfo.PairwiseNormalized(ds.Cols, opts)
	}
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 2, 4, 2, ' ', 0)
	fmt.Fprintln(w, "\t"+strings.Join(ds.Names, "\t"))
	n, _ := m.Dims()
	for i := 0; i < n; i++ {
		row := make([]string, 0, n+1)
		row = append(row, ds.Names[i])
		for j := 0; j < n; j++ {
			row = append(row, fmt.Sprintf("%.4f", m.At(i, j)))
		}
		fmt.Fprintln(w, strings.Join(row, "\t"))
	}
	return w.Flush()
}
