package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"forestlab/forest/ensemble"
	"forestlab/forest/metrics"
	"forestlab/forest/tuning"
	"forestlab/internal/ingest"
	"forestlab/internal/persist"
	"forestlab/internal/report"
	"forestlab/internal/telemetry"

	"go.uber.org/zap"
)

type fitCmdConfig struct {
	*rootCmdConfig
	trainInput       string
	testInput        string
	categoricalNames []string
	nEstimators      int
	maxDepth         int
	minSamplesSplit  int
	maxFeatures      int
	seed             int64
	modelOut         string
	reportDir        string
	curve            bool
	curvePoints      int
}

func fitCmd(rootConfig *rootCmdConfig) *cobra.Command {
	config := &fitCmdConfig{rootCmdConfig: rootConfig}
	cmd := &cobra.Command{
		Use:   "fit",
		Short: "Fit a random forest on a train CSV and evaluate it on a test CSV",
		Run: func(cmd *cobra.Command, args []string) {
			logger := telemetry.Logger("forestcli.fit")

			train, err := ingest.LoadCSV(config.trainInput, config.categoricalNames)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
			test, err := ingest.LoadCSV(config.testInput, config.categoricalNames)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(2)
			}

			maxFeatures := config.maxFeatures
			if maxFeatures <= 0 {
				maxFeatures = train.FeatureCount()
			}

			rf := ensemble.New(config.nEstimators, config.maxDepth, config.minSamplesSplit, maxFeatures, config.seed)
			logger.Info("fitting forest",
				zap.Int("n_estimators", config.nEstimators),
				zap.Int("max_depth", config.maxDepth),
				zap.Int("min_samples_split", config.minSamplesSplit),
				zap.Int("max_features", maxFeatures),
				zap.Int64("seed", config.seed),
			)
			if err := rf.Fit(train); err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(3)
			}

			n := test.SampleCount()
			predicted := make([]int, n)
			actual := make([]int, n)
			probabilities := make([]float64, n)
			for i := 0; i < n; i++ {
				row := test.Row(i)
				predicted[i] = rf.Predict(row)
				actual[i] = test.Label(i)
				probabilities[i] = rf.PredictProbability(row)
			}
			cm, err := metrics.Confusion(predicted, actual)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(4)
			}
			logger.Info("holdout metrics",
				zap.Float64("accuracy", cm.Accuracy()),
				zap.Float64("precision", cm.Precision()),
				zap.Float64("recall", cm.Recall()),
				zap.Float64("f1", cm.F1()),
			)

			if config.modelOut != "" {
				if err := os.MkdirAll(filepath.Dir(config.modelOut), 0o755); err != nil {
					fmt.Fprintln(os.Stderr, err)
					os.Exit(5)
				}
				if err := persist.Save(rf, config.modelOut); err != nil {
					fmt.Fprintln(os.Stderr, err)
					os.Exit(6)
				}
				logger.Info("model saved", zap.String("path", config.modelOut))
			}

			runDir, err := report.RunDir(config.reportDir, config.seed, time.Now().Format("20060102-150405"))
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(7)
			}

			tuple := tuning.Tuple{NEstimators: config.nEstimators, MaxDepth: config.maxDepth, MinSamplesSplit: config.minSamplesSplit, MaxFeatures: maxFeatures}
			summary := report.NewRunSummary(config.seed, tuple, cm, time.Now())
			if err := summary.WriteJSON(filepath.Join(runDir, "summary.json")); err != nil {
				logger.Warn("writing summary json", zap.Error(err))
			}
			if err := report.WritePredictionsCSV(filepath.Join(runDir, "test_predictions.csv"), predicted, actual, probabilities); err != nil {
				logger.Warn("writing test predictions csv", zap.Error(err))
			}
			if len(rf.Trees) > 0 {
				if err := report.WriteTreeDOT(runDir, 0, rf.Trees[0].DOT()); err != nil {
					logger.Warn("writing tree visualization", zap.Error(err))
				}
			}

			curvePNG := ""
			if config.curve {
				points, err := report.LearningCurve(train, test, tuple, config.seed, config.curvePoints)
				if err != nil {
					logger.Warn("computing learning curve", zap.Error(err))
				} else {
					if err := report.WriteCurveCSV(filepath.Join(runDir, "curve.csv"), points); err != nil {
						logger.Warn("writing curve csv", zap.Error(err))
					}
					curvePNG = filepath.Join(runDir, "curve.png")
					if err := report.PlotCurvePNG(curvePNG, points); err != nil {
						logger.Warn("plotting curve png", zap.Error(err))
						curvePNG = ""
					}
				}
			}

			if err := report.SummaryPDF(filepath.Join(runDir, "summary.pdf"), summary, curvePNG); err != nil {
				logger.Warn("writing summary pdf", zap.Error(err))
			}
			logger.Info("run artifacts written", zap.String("dir", runDir))
		},
	}
	cmd.Flags().StringVar(&config.trainInput, "train", "", "path to the train CSV (required)")
	cmd.Flags().StringVar(&config.testInput, "test", "", "path to the test CSV (required)")
	cmd.Flags().StringSliceVar(&config.categoricalNames, "categorical", nil, "comma-separated categorical column names")
	cmd.Flags().IntVar(&config.nEstimators, "trees", 100, "number of trees")
	cmd.Flags().IntVar(&config.maxDepth, "max-depth", 10, "maximum tree depth")
	cmd.Flags().IntVar(&config.minSamplesSplit, "min-samples-split", 2, "minimum samples required to split a node")
	cmd.Flags().IntVar(&config.maxFeatures, "max-features", 0, "features sampled per split, 0 uses all features")
	cmd.Flags().Int64Var(&config.seed, "seed", 1, "PRNG seed")
	cmd.Flags().StringVar(&config.modelOut, "model-out", "models/forest.gob", "path to save the fitted model, empty to skip")
	cmd.Flags().StringVar(&config.reportDir, "report-dir", "reports", "base directory for per-run report artifacts")
	cmd.Flags().BoolVar(&config.curve, "curve", true, "compute and plot a learning curve")
	cmd.Flags().IntVar(&config.curvePoints, "curve-points", 8, "number of points in the learning curve")
	cmd.MarkFlagRequired("train")
	cmd.MarkFlagRequired("test")
	return cmd
}
