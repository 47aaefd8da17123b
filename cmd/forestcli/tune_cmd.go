package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"forestlab/forest/tuning"
	"forestlab/internal/ingest"
	"forestlab/internal/telemetry"

	"go.uber.org/zap"
)

type tuneCmdConfig struct {
	*rootCmdConfig
	input            string
	categoricalNames []string
	treeCounts       []int
	maxDepths        []int
	minSamplesSplits []int
	maxFeaturesSet   []int
	k                int
	seed             int64
	metric           string
}

func tuneCmd(rootConfig *rootCmdConfig) *cobra.Command {
	config := &tuneCmdConfig{rootCmdConfig: rootConfig}
	cmd := &cobra.Command{
		Use:   "tune",
		Short: "K-fold grid search over forest hyperparameters",
		Run: func(cmd *cobra.Command, args []string) {
			logger := telemetry.Logger("forestcli.tune")
			ds, err := ingest.LoadCSV(config.input, config.categoricalNames)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}

			metric, err := parseMetric(config.metric)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(2)
			}

			grid := tuning.ParameterGrid{
				TreeCounts:       config.treeCounts,
				MaxDepths:        config.maxDepths,
				MinSamplesSplits: config.minSamplesSplits,
				MaxFeatures:      config.maxFeaturesSet,
			}
			tuner := tuning.Tuner{K: config.k, Seed: config.seed, Metric: metric}

			logger.Info("tuning", zap.Int("k", config.k), zap.String("metric", metric.String()))
			result, err := tuner.Tune(ds, grid)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(3)
			}

			fmt.Printf("best: trees=%d max_depth=%d min_samples_split=%d max_features=%d mean_%s=%.4f std=%.4f\n",
				result.Tuple.NEstimators, result.Tuple.MaxDepth, result.Tuple.MinSamplesSplit, result.Tuple.MaxFeatures,
				metric.String(), result.MeanScore, result.StdScore,
			)
		},
	}
	cmd.Flags().StringVarP(&config.input, "input", "i", "", "path to the input CSV (required)")
	cmd.Flags().StringSliceVar(&config.categoricalNames, "categorical", nil, "comma-separated categorical column names")
	cmd.Flags().IntSliceVar(&config.treeCounts, "trees", []int{50, 100}, "candidate tree counts")
	cmd.Flags().IntSliceVar(&config.maxDepths, "max-depth", []int{5, 10}, "candidate max depths, -1 means unlimited")
	cmd.Flags().IntSliceVar(&config.minSamplesSplits, "min-samples-split", []int{2, 5}, "candidate min-samples-split values")
	cmd.Flags().IntSliceVar(&config.maxFeaturesSet, "max-features", nil, "candidate max-features values (required)")
	cmd.Flags().IntVar(&config.k, "k", 5, "number of folds")
	cmd.Flags().Int64Var(&config.seed, "seed", 1, "PRNG seed")
	cmd.Flags().StringVar(&config.metric, "metric", "f1", "metric to optimise: accuracy|f1|precision|recall")
	cmd.MarkFlagRequired("input")
	cmd.MarkFlagRequired("max-features")
	return cmd
}

func parseMetric(s string) (tuning.Metric, error) {
	switch s {
	case "accuracy":
		return tuning.MetricAccuracy, nil
	case "f1":
		return tuning.MetricF1, nil
	case "precision":
		return tuning.MetricPrecision, nil
	case "recall":
		return tuning.MetricRecall, nil
	default:
		return 0, fmt.Errorf("forestcli: unknown metric %q", s)
	}
}
