package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/simcoder/strapi-cms-mcp/app"
	"github.com/simcoder/strapi-cms-mcp/pkg/cli"
	"github.com/simcoder/strapi-cms-mcp/pkg/config"
	"github.com/simcoder/strapi-cms-mcp/pkg/logger"
)

var version string

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cmd := initApp()

	if err := cmd.Run(ctx, os.Args); err != nil {
		cli.Fatal(err)
	}
}

func initApp() *cli.Command {
	return &cli.Command{
		Name:  "strapi-mcp",
		Usage: "MCP server for the Strapi CMS REST API",

		Version: version,

		Writer:    os.Stderr,
		ErrWriter: os.Stderr,

		HideHelpCommand: true,

		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "env-file",
				Usage: "Environment file to load (defaults to .env when present)",
			},

			&cli.StringFlag{
				Name:  "config",
				Usage: "Config file (JSON or YAML)",
			},

			&cli.StringFlag{
				Name:  "url",
				Usage: "Strapi API base URL (" + config.EnvURL + ")",
			},

			&cli.StringFlag{
				Name:  "token",
				Usage: "Strapi API token (" + config.EnvToken + ")",
			},

			&cli.DurationFlag{
				Name:  "timeout",
				Usage: "Per request timeout (" + config.EnvTimeout + ")",
			},

			&cli.StringFlag{
				Name:  "log-level",
				Usage: "Log level: debug, info, warn, error (" + config.EnvLogLevel + ")",
			},

			&cli.StringFlag{
				Name:  "transport",
				Usage: "Transport: stdio or sse",
				Value: app.TransportStdio,
			},

			&cli.StringFlag{
				Name:  "addr",
				Usage: "Listen address for the sse transport",
				Value: "localhost:4200",
			},
		},

		Action: func(ctx context.Context, cmd *cli.Command) error {
			cfg, err := config.Load(cmd.String("env-file"), cmd.String("config"))

			if err != nil {
				return err
			}

			if cmd.IsSet("url") {
				cfg.URL = cmd.String("url")
			}

			if cmd.IsSet("token") {
				cfg.Token = cmd.String("token")
			}

			if cmd.IsSet("timeout") {
				cfg.Timeout = cmd.Duration("timeout")
			}

			if cmd.IsSet("log-level") {
				cfg.LogLevel = cmd.String("log-level")
			}

			if err := cfg.Validate(); err != nil {
				return err
			}

			log, err := logger.New(os.Stderr, cfg.LogLevel)

			if err != nil {
				return err
			}

			return app.Run(ctx, cfg, log, app.Options{
				Version: version,

				Transport: cmd.String("transport"),
				Addr:      cmd.String("addr"),
			})
		},
	}
}
