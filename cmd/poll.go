package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/SagarThalkiya/multi-agent-document-analysis/internal/config"
	"github.com/SagarThalkiya/multi-agent-document-analysis/internal/pollclient"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"
)

func pollCmd() *cli.Command {
	return &cli.Command{
		Name:      "poll",
		Usage:     "Poll a job until it settles and print the final results as JSON",
		ArgsUsage: "<job_id>",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "server-url",
				Usage:   "Base URL of the analysis API server",
				Value:   "http://localhost:8080",
				Sources: cli.EnvVars("DOCA_SERVER_URL"),
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.Args().Len() != 1 {
				return fmt.Errorf("expected exactly one job_id argument")
			}
			jobID := cmd.Args().First()

			cfg, err := config.Load(cmd.String("config"))
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			interval, err := time.ParseDuration(cfg.Poll.Interval)
			if err != nil {
				return fmt.Errorf("parse poll interval %q: %w", cfg.Poll.Interval, err)
			}

			log.Debug().
				Str("job_id", jobID).
				Dur("interval", interval).
				Int("max_attempts", cfg.Poll.MaxAttempts).
				Msg("polling job status")

			client := pollclient.New(cmd.String("server-url"), interval, cfg.Poll.MaxAttempts)
			snapshot, err := client.Poll(ctx, jobID)
			if err != nil {
				return err
			}

			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(snapshot)
		},
	}
}
