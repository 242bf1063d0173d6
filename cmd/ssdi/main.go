package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"gossdi/adapters/ingest"
	"gossdi/adapters/report"
	"gossdi/adapters/rng"
	"gossdi/adapters/stats"
	"gossdi/app"
	"gossdi/domain/core"
	"gossdi/internal/config"
	"gossdi/internal/logging"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "ssdi",
		Short: "Calculate sexual size dimorphism indices and associated statistics",
	}

	rootCmd.AddCommand(newCalcCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newCalcCmd() *cobra.Command {
	var (
		input        string
		format       string
		outDir       string
		seed         int64
		permutations int
		workers      int
	)

	cmd := &cobra.Command{
		Use:   "calc",
		Short: "Run the full SSDi analysis over a delimited input file",
		Long: `Read per-species, per-sex body size records from a delimited text file
(or .xlsx workbook), compute the Lovich & Gibbons dimorphism index with
pairwise and permutation significance tests, and write tab-delimited and
CSV result tables to the output directory.

Example: ssdi calc --input sizes.txt --format tab --outdir ./results --seed 12345`,
		RunE: func(cmd *cobra.Command, args []string) error {
			fileFormat, err := ingest.ParseFormat(format)
			if err != nil {
				return err
			}

			if info, err := os.Stat(input); err != nil || info.IsDir() {
				return core.NewInvalidInputError(input, fmt.Errorf("not a readable file"))
			}
			if info, err := os.Stat(outDir); err != nil || !info.IsDir() {
				return core.NewInvalidOutputError(outDir, fmt.Errorf("not an existing directory"))
			}

			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("seed") {
				cfg.Seed = seed
			}
			if cmd.Flags().Changed("permutations") {
				cfg.Permutations = permutations
			}
			if cmd.Flags().Changed("workers") {
				cfg.PermutationWorkers = workers
			}

			return runCalc(cmd, input, fileFormat, outDir, cfg)
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", "", "Full path to the input data file")
	cmd.Flags().StringVarP(&format, "format", "f", "", "Input text format: tab or csv")
	cmd.Flags().StringVarP(&outDir, "outdir", "o", "", "Existing directory for output files")
	cmd.Flags().Int64Var(&seed, "seed", 42, "Random seed for permutation draws")
	cmd.Flags().IntVar(&permutations, "permutations", 10000, "Number of permutation draws per species")
	cmd.Flags().IntVar(&workers, "workers", 4, "Goroutines sharing each species' permutation draws")
	cobra.CheckErr(cmd.MarkFlagRequired("input"))
	cobra.CheckErr(cmd.MarkFlagRequired("format"))
	cobra.CheckErr(cmd.MarkFlagRequired("outdir"))

	return cmd
}

func runCalc(cmd *cobra.Command, input string, format ingest.Format, outDir string, cfg *config.Config) error {
	started := time.Now()
	runID := core.NewRunID()

	logger := logging.NewDefaultLogger()
	diag := logging.NewDiagnosticLogger(logger)
	logger.Info("run %s: reading input data file %s", runID, input)

	source, err := ingest.NewFileSource(input, format)
	if err != nil {
		return err
	}
	defer source.Close()

	aggregator := ingest.NewRecordAggregator(diag)
	cohorts, keys, err := aggregator.Aggregate(source)
	if err != nil {
		return err
	}
	logger.Info("found data for %d species", len(cohorts))

	pairwise := stats.NewPairwiseEstimator(diag)
	perm := stats.NewPermutationTester(pairwise, rng.NewAdapter(), diag, cfg.Seed)
	perm.SetNumDraws(cfg.Permutations)
	perm.SetWorkers(cfg.PermutationWorkers)

	analyzer := app.NewAnalyzerService(pairwise, perm, diag)
	analyzer.SetMaxConcurrent(cfg.MaxConcurrentSpecies)

	results, err := analyzer.Analyze(cmd.Context(), cohorts, keys)
	if err != nil {
		return err
	}

	writer := report.NewFileWriter(outDir)
	if err := writer.Write(results); err != nil {
		return err
	}

	logger.Info("wrote results for %d species to %s", len(results), outDir)
	logger.Info("finished, total elapsed time: %s", time.Since(started).Round(time.Millisecond))
	return nil
}
