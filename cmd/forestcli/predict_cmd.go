package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"forestlab/internal/ingest"
	"forestlab/internal/persist"
	"forestlab/internal/telemetry"

	"go.uber.org/zap"
)

type predictCmdConfig struct {
	*rootCmdConfig
	modelPath        string
	input            string
	categoricalNames []string
}

func predictCmd(rootConfig *rootCmdConfig) *cobra.Command {
	config := &predictCmdConfig{rootCmdConfig: rootConfig}
	cmd := &cobra.Command{
		Use:   "predict",
		Short: "Predict labels and class-1 probabilities for every row of a CSV",
		Run: func(cmd *cobra.Command, args []string) {
			logger := telemetry.Logger("forestcli.predict")

			rf, err := persist.Load(config.modelPath)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
			ds, err := ingest.LoadCSV(config.input, config.categoricalNames)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(2)
			}

			logger.Info("predicting", zap.Int("rows", ds.SampleCount()), zap.String("model", config.modelPath))
			fmt.Println("row,predicted,probability")
			for i := 0; i < ds.SampleCount(); i++ {
				row := ds.Row(i)
				pred := rf.Predict(row)
				prob := rf.PredictProbability(row)
				fmt.Printf("%d,%d,%.6f\n", i, pred, prob)
			}
		},
	}
	cmd.Flags().StringVarP(&config.modelPath, "model", "m", "", "path to a model saved by 'fit' (required)")
	cmd.Flags().StringVarP(&config.input, "input", "i", "", "path to a CSV of rows to predict (required)")
	cmd.Flags().StringSliceVar(&config.categoricalNames, "categorical", nil, "comma-separated categorical column names")
	cmd.MarkFlagRequired("model")
	cmd.MarkFlagRequired("input")
	return cmd
}
