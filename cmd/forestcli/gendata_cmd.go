package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"forestlab/internal/gendata"
	"forestlab/internal/telemetry"

	"go.uber.org/zap"
)

type genDataCmdConfig struct {
	*rootCmdConfig
	output         string
	rows           int
	numNumeric     int
	numCategorical int
	categoryCounts int
	separability   float64
	positiveRate   float64
	seed           int64
}

func genDataCmd(rootConfig *rootCmdConfig) *cobra.Command {
	config := &genDataCmdConfig{rootCmdConfig: rootConfig}
	cmd := &cobra.Command{
		Use:   "gendata",
		Short: "Generate a synthetic tabular dataset",
		Long:  `Generate a synthetic CSV with numeric and categorical feature columns and a binary label, for exercising fit/predict/tune without a real dataset.`,
		Run: func(cmd *cobra.Command, args []string) {
			logger := telemetry.Logger("forestcli.gendata")
			cfg := gendata.Config{
				Rows:           config.rows,
				NumNumeric:     config.numNumeric,
				NumCategorical: config.numCategorical,
				CategoryCounts: config.categoryCounts,
				Separability:   config.separability,
				PositiveRate:   config.positiveRate,
				Seed:           config.seed,
			}
			if err := gendata.Generate(cfg, config.output); err != nil {
				logger.Error("generating dataset", zap.Error(err))
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
			logger.Info("dataset generated", zap.String("path", config.output), zap.Int("rows", config.rows))
		},
	}
	cmd.Flags().StringVarP(&config.output, "out", "o", "data/synthetic.csv", "path to the output CSV")
	cmd.Flags().IntVarP(&config.rows, "rows", "n", 2000, "number of rows to generate")
	cmd.Flags().IntVar(&config.numNumeric, "numeric", 4, "number of numeric feature columns")
	cmd.Flags().IntVar(&config.numCategorical, "categorical", 2, "number of categorical feature columns")
	cmd.Flags().IntVar(&config.categoryCounts, "categories", 4, "number of distinct categories per categorical column")
	cmd.Flags().Float64Var(&config.separability, "separability", 0.8, "how strongly label correlates with feature values, 0=no signal, larger=stronger signal")
	cmd.Flags().Float64Var(&config.positiveRate, "positive-rate", 0.4, "fraction of rows labeled 1")
	cmd.Flags().Int64Var(&config.seed, "seed", 1, "PRNG seed")
	return cmd
}
