package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/SagarThalkiya/multi-agent-document-analysis/internal/analysis"
	"github.com/SagarThalkiya/multi-agent-document-analysis/internal/config"
	"github.com/SagarThalkiya/multi-agent-document-analysis/internal/core/extract"
	"github.com/SagarThalkiya/multi-agent-document-analysis/internal/core/orchestrator"
	"github.com/SagarThalkiya/multi-agent-document-analysis/pkg/docapi"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"
)

func analyzeCmd() *cli.Command {
	return &cli.Command{
		Name:      "analyze",
		Usage:     "Analyze a local document and print the aggregated results as JSON",
		ArgsUsage: "<file>",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.Args().Len() != 1 {
				return fmt.Errorf("expected exactly one file argument")
			}
			path := cmd.Args().First()

			cfg, err := config.Load(cmd.String("config"))
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}

			data, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("read document: %w", err)
			}

			text, err := extract.New().Extract(filepath.Base(path), data)
			if err != nil {
				return fmt.Errorf("extract text: %w", err)
			}

			runners := orchestrator.NewRunners(analysis.Default(cfg.Limits.MaxInputChars))
			agg := orchestrator.Execute(ctx, runners, text)

			log.Info().
				Int("agents_completed", agg.AgentsCompleted).
				Int("agents_failed", agg.AgentsFailed).
				Dur("elapsed", agg.TotalProcessingTime).
				Msg("analysis settled")

			out := struct {
				Status                     string                 `json:"status"`
				Results                    docapi.AnalysisResults `json:"results"`
				TotalProcessingTimeSeconds float64                `json:"total_processing_time_seconds"`
				AgentsCompleted            int                    `json:"agents_completed"`
				AgentsFailed               int                    `json:"agents_failed"`
			}{
				Status:                     string(agg.Status),
				Results:                    docapi.FromOutcomes(agg.Results),
				TotalProcessingTimeSeconds: agg.TotalProcessingTime.Seconds(),
				AgentsCompleted:            agg.AgentsCompleted,
				AgentsFailed:               agg.AgentsFailed,
			}

			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(out)
		},
	}
}
