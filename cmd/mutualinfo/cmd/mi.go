package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	mutualinfo "github.com/sragli/mutual-information"
	"github.com/sragli/mutual-information/dataset"
	"github.com/sragli/mutual-information/errorx"
	"github.com/sragli/mutual-information/staticlog"
)

func GetMICmd() *cobra.Command {
	return &cobra.Command{
		Use:   "mi <file> [xcol ycol]",
		Short: "Mutual information between two columns",
		Args:  cobra.RangeArgs(1, 3),
		RunE:  runMI,
	}
}

func GetNMICmd() *cobra.Command {
	return &cobra.Command{
		Use:   "nmi <file> [xcol ycol]",
		Short: "Normalized mutual information between two columns",
		Args:  cobra.RangeArgs(1, 3),
		RunE:  runNMI,
	}
}

func runMI(cmd *cobra.Command, args []string) error {
	x, y, err := loadPair(args)
	if err != nil {
		return err
	}
	v, err := mutualinfo.Compute(x, y, optionsFrom(cmd))
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), v)
	return nil
}

func runNMI(cmd *cobra.Command, args []string) error {
	x, y, err := loadPair(args)
	if err != nil {
		return err
	}
	v, err := mutualinfo.Normalized(x, y, optionsFrom(cmd))
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), v)
	return nil
}

// loadPair 读取数据文件并取出两列, 不指定列名时取前两列
func loadPair(args []string) (x, y []float64, err error) {
	ds, err := dataset.Load(args[0])
	if err != nil {
		return nil, nil, err
	}
	staticlog.Log.Debugf("loaded %s: %d columns", args[0], len(ds.Cols))

	switch len(args) {
	case 1:
		if len(ds.Cols) < 2 {
			return nil, nil, errorx.Newf(errorx.ErrBadData, "%s has %d column(s), name two or provide more", args[0], len(ds.Cols))
		}
		return ds.Cols[0], ds.Cols[1], nil
	case 3:
		if x, err = ds.Column(args[1]); err != nil {
			return nil, nil, err
		}
		if y, err = ds.Column(args[2]); err != nil {
			return nil, nil, err
		}
		return x, y, nil
	default:
		return nil, nil, fmt.Errorf("name both columns or neither")
	}
}
