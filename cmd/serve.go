package cmd

import (
	"context"
	"fmt"

	"github.com/SagarThalkiya/multi-agent-document-analysis/internal/config"
	"github.com/SagarThalkiya/multi-agent-document-analysis/internal/server"
	"github.com/urfave/cli/v3"
)

func serveCmd() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Run the analysis API server (upload, analyze, poll results)",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "host",
				Usage:   "Bind address",
				Sources: cli.EnvVars("DOCA_SERVER_HOST"),
			},
			&cli.IntFlag{
				Name:    "port",
				Usage:   "HTTP port",
				Sources: cli.EnvVars("DOCA_SERVER_PORT"),
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cfg, err := config.Load(cmd.String("config"))
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}

			if v := cmd.String("host"); v != "" {
				cfg.Server.Host = v
			}
			if v := cmd.Int("port"); v != 0 {
				cfg.Server.Port = int(v)
			}
			if v := cmd.String("log-level"); v != "" {
				cfg.Logging.Level = v
			}

			return server.Run(ctx, cfg)
		},
	}
}
