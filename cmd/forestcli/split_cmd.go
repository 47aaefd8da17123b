package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"forestlab/forest/splitdata"
	"forestlab/internal/ingest"
	"forestlab/internal/telemetry"

	"go.uber.org/zap"
)

type splitCmdConfig struct {
	*rootCmdConfig
	input            string
	categoricalNames []string
	trainOut         string
	testOut          string
	testFraction     float64
	seed             int64
}

func splitCmd(rootConfig *rootCmdConfig) *cobra.Command {
	config := &splitCmdConfig{rootCmdConfig: rootConfig}
	cmd := &cobra.Command{
		Use:   "split",
		Short: "Split a CSV into a train and test CSV",
		Run: func(cmd *cobra.Command, args []string) {
			logger := telemetry.Logger("forestcli.split")
			ds, err := ingest.LoadCSV(config.input, config.categoricalNames)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
			train, test, err := splitdata.TrainTestSplit(ds, config.testFraction, config.seed)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(2)
			}
			if err := ingest.WriteCSV(train, config.trainOut); err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(3)
			}
			if err := ingest.WriteCSV(test, config.testOut); err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(4)
			}
			logger.Info("split written",
				zap.Int("train_rows", train.SampleCount()),
				zap.Int("test_rows", test.SampleCount()),
				zap.String("train_out", config.trainOut),
				zap.String("test_out", config.testOut),
			)
		},
	}
	cmd.Flags().StringVarP(&config.input, "input", "i", "", "path to the input CSV (required)")
	cmd.Flags().StringSliceVar(&config.categoricalNames, "categorical", nil, "comma-separated categorical column names")
	cmd.Flags().StringVar(&config.trainOut, "train-out", "data/train.csv", "path to write the train CSV")
	cmd.Flags().StringVar(&config.testOut, "test-out", "data/test.csv", "path to write the test CSV")
	cmd.Flags().Float64Var(&config.testFraction, "test-fraction", 0.2, "fraction of rows held out for test")
	cmd.Flags().Int64Var(&config.seed, "seed", 1, "PRNG seed for the shuffle")
	cmd.MarkFlagRequired("input")
	return cmd
}
