package cmd

import (
	"github.com/spf13/cobra"
	mutualinfo "github.com/sragli/mutual-information"
	"github.com/sragli/mutual-information/config"
	"github.com/sragli/mutual-information/staticlog"
)

// NewRootCmd 构造命令树, main 调用一次
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "mutualinfo",
		Short: "histogram-based mutual information toolkit",
		Long: `Estimate entropy and mutual information between columns of a dataset.

Integer-valued columns are treated as already discrete; continuous columns
are discretized into equal-width bins before the empirical distributions
are built. Input files may be CSV (header optional) or JSON (object of
arrays, or a bare numeric array).`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if path, _ := cmd.Flags().GetString("config"); path != "" {
				if err := config.Init(path); err != nil {
					return err
				}
			}
			c := config.Get()
			level := c.Log.Level
			if v, _ := cmd.Flags().GetBool("verbose"); v {
				level = "debug"
			}
			return staticlog.Init(level, c.Log.File, c.Log.MaxSizeMB)
		},
	}

	f := rootCmd.PersistentFlags()
	f.Int("bins", mutualinfo.DefaultBins, "equal-width bins for continuous columns")
	f.Float64("base", mutualinfo.DefaultBase, "logarithm base (2=bits, e≈2.718=nats, 10=hartleys)")
	f.String("config", "", "YAML config file")
	f.BoolP("verbose", "v", false, "debug logging")

	rootCmd.AddCommand(
		GetMICmd(),
		GetNMICmd(),
		GetEntropyCmd(),
		GetMatrixCmd(),
		GetLagMICmd(),
		GetDescribeCmd(),
	)
	return rootCmd
}

// optionsFrom 取配置文件值, 命令行显式给出的 flag 优先
func optionsFrom(cmd *cobra.Command) *mutualinfo.Options {
	opts := config.Get().Options()
	if cmd.Flags().Changed("bins") {
		opts.Bins, _ = cmd.Flags().GetInt("bins")
	}
	if cmd.Flags().Changed("base") {
		opts.Base, _ = cmd.Flags().GetFloat64("base")
	}
	return opts
}
