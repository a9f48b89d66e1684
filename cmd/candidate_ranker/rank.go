package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jonathan/candidate-ranker/internal/config"
	"github.com/jonathan/candidate-ranker/internal/export"
	"github.com/jonathan/candidate-ranker/internal/geo"
	"github.com/jonathan/candidate-ranker/internal/ingestion"
	"github.com/jonathan/candidate-ranker/internal/logger"
	"github.com/jonathan/candidate-ranker/internal/ranking"
	"github.com/jonathan/candidate-ranker/internal/scoring"
)

var rankCommand = &cobra.Command{
	Use:   "rank",
	Short: "Score and rank a candidate batch against a job",
	Long: `Loads structured job requirements and a candidate profile batch, applies
strict location pre-filtering when the job requests it, scores the surviving
candidates, and writes the ranked results.

Configuration can be loaded from a JSON file using --config. Command-line
arguments override config file values.`,
	RunE: runRankCmd,
}

var (
	rankConfigPath string
	rankJob        string
	rankCandidates string
	rankOutput     string
	rankFormat     string
	rankWorkers    int
	rankDebug      bool
	rankLogJSON    bool
)

func init() {
	// Config file flag (processed first)
	rankCommand.Flags().StringVar(&rankConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")

	rankCommand.Flags().StringVarP(&rankJob, "job", "j", "", "Path to job requirements JSON file")
	rankCommand.Flags().StringVarP(&rankCandidates, "candidates", "c", "", "Path to candidate profiles JSON file")
	rankCommand.Flags().StringVarP(&rankOutput, "output", "o", "", "Output path (defaults to stdout)")
	rankCommand.Flags().StringVarP(&rankFormat, "format", "f", "", "Output format: json or csv (default json)")
	rankCommand.Flags().IntVar(&rankWorkers, "workers", 0, "Concurrent scoring workers (default 4)")
	rankCommand.Flags().BoolVar(&rankDebug, "debug", false, "Enable debug logging")
	rankCommand.Flags().BoolVar(&rankLogJSON, "log-json", false, "Emit JSON-encoded logs")

	rootCmd.AddCommand(rankCommand)
}

func runRankCmd(cmd *cobra.Command, _ []string) error {
	cfg := config.Config{
		Job:        rankJob,
		Candidates: rankCandidates,
		Output:     rankOutput,
		Format:     rankFormat,
		Workers:    rankWorkers,
		Debug:      rankDebug,
		LogJSON:    rankLogJSON,
	}

	if rankConfigPath != "" {
		fileCfg, err := config.Load(rankConfigPath)
		if err != nil {
			return err
		}
		cfg = cfg.MergeWithDefaults(*fileCfg)
	}
	if cfg.Format == "" {
		cfg.Format = config.FormatJSON
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	if cfg.Job == "" {
		return fmt.Errorf("--job is required (or set 'job' in the config file)")
	}
	if cfg.Candidates == "" {
		return fmt.Errorf("--candidates is required (or set 'candidates' in the config file)")
	}

	log, err := logger.New(cfg.LogJSON, cfg.Debug)
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	job, err := ingestion.LoadJob(cfg.Job)
	if err != nil {
		return err
	}
	candidates, err := ingestion.LoadCandidates(cfg.Candidates)
	if err != nil {
		return err
	}

	// Weight precedence: job document override, then config file, then defaults.
	var weights scoring.Weights
	if len(job.Weights) > 0 {
		weights = scoring.Weights(job.Weights)
	} else if len(cfg.Weights) > 0 {
		weights = scoring.Weights(cfg.Weights)
	}

	matcher := geo.NewMatcher(geo.NewIndex())
	engine, err := scoring.NewEngine(weights, matcher)
	if err != nil {
		return err
	}
	ranker, err := ranking.NewRanker(engine, matcher, log, cfg.Workers)
	if err != nil {
		return err
	}

	log.Info("ranking candidates",
		zap.String("role", job.RoleTitle),
		zap.Int("candidates", len(candidates)))

	ranked, err := ranker.Rank(context.Background(), job, candidates)
	if err != nil {
		return err
	}

	log.Info("ranking complete",
		zap.Int("ranked", len(ranked)),
		zap.Int("excluded", len(candidates)-len(ranked)))

	var out io.Writer = cmd.OutOrStdout()
	if cfg.Output != "" {
		file, err := os.Create(cfg.Output)
		if err != nil {
			return fmt.Errorf("failed to create output file %s: %w", cfg.Output, err)
		}
		defer func() { _ = file.Close() }()
		out = file
	}

	switch cfg.Format {
	case config.FormatCSV:
		return export.WriteCSV(out, ranked)
	default:
		return export.WriteJSON(out, ranked)
	}
}
