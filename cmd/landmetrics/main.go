// Command landmetrics computes landscape-ecology metrics from categorical
// rasters, one file at a time or in batch over a tile layer.
package main

import (
	"context"
	"log"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
)

func main() {
	logger := log.New(os.Stderr, "landmetrics: ", log.LstdFlags)

	rootCmd := &cobra.Command{
		Use:           "landmetrics",
		Short:         "Landscape-ecology metrics over categorical rasters",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(metricsCmd(logger))
	rootCmd.AddCommand(landscapeCmd(logger))
	rootCmd.AddCommand(listCmd())
	rootCmd.AddCommand(neighboursCmd())
	rootCmd.AddCommand(batchCmd(logger))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		logger.Print(err)
		stop()
		os.Exit(1)
	}
}

// analysisFlags are shared by the single-raster commands.
type analysisFlags struct {
	conn        int
	noNormalize bool
	nodata      float64
	nodataSet   bool
}

func (f *analysisFlags) register(cmd *cobra.Command) {
	cmd.Flags().IntVar(&f.conn, "connectivity", 8, "patch connectivity, 4 or 8")
	cmd.Flags().BoolVar(&f.noNormalize, "no-normalize", false, "do not divide patch areas by the class code")
	cmd.Flags().Float64Var(&f.nodata, "nodata", 0, "override the raster no-data value")
}

func metricsCmd(logger *log.Logger) *cobra.Command {
	var (
		af      analysisFlags
		classes []int
		metrics []string
		strict  bool
		sep     string
	)
	cmd := &cobra.Command{
		Use:   "metrics [raster]",
		Short: "Compute per-class metrics for one raster",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			af.nodataSet = cmd.Flags().Changed("nodata")
			return runMetrics(cmd.OutOrStdout(), logger, args[0], af, classes, metrics, strict, sep)
		},
	}
	af.register(cmd)
	cmd.Flags().IntSliceVar(&classes, "class", nil, "classes to analyse (default: every class in the raster)")
	cmd.Flags().StringArrayVar(&metrics, "metric", nil, "metric name, repeatable (default: all)")
	cmd.Flags().BoolVar(&strict, "strict", false, "fail on unknown metric names")
	cmd.Flags().StringVar(&sep, "sep", ";", "column separator")
	return cmd
}

func landscapeCmd(logger *log.Logger) *cobra.Command {
	var (
		af  analysisFlags
		sep string
	)
	cmd := &cobra.Command{
		Use:   "landscape [raster]",
		Short: "Compute landscape-level statistics (LC_*, DIV_*) for one raster",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			af.nodataSet = cmd.Flags().Changed("nodata")
			return runLandscape(cmd.OutOrStdout(), logger, args[0], af, sep)
		},
	}
	af.register(cmd)
	cmd.Flags().StringVar(&sep, "sep", ";", "column separator")
	return cmd
}

func listCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List metric names",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runList(cmd.OutOrStdout())
		},
	}
}

func neighboursCmd() *cobra.Command {
	var af analysisFlags
	cmd := &cobra.Command{
		Use:   "neighbours [raster]",
		Short: "Print the 8-neighbour class co-occurrence matrix",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			af.nodataSet = cmd.Flags().Changed("nodata")
			return runNeighbours(cmd.OutOrStdout(), args[0], af)
		},
	}
	cmd.Flags().Float64Var(&af.nodata, "nodata", 0, "override the raster no-data value")
	return cmd
}

func batchCmd(logger *log.Logger) *cobra.Command {
	var configPath string
	cmd := &cobra.Command{
		Use:   "batch",
		Short: "Run a configured batch over a tile layer",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runBatch(cmd.Context(), logger, configPath)
		},
	}
	cmd.Flags().StringVar(&configPath, "config", "", "YAML run configuration")
	_ = cmd.MarkFlagRequired("config")
	return cmd
}
