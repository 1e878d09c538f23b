package app

import (
	"context"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/mark3labs/mcp-go/server"
	"github.com/rs/zerolog"

	"github.com/simcoder/strapi-cms-mcp/pkg/bridge"
	"github.com/simcoder/strapi-cms-mcp/pkg/config"
	"github.com/simcoder/strapi-cms-mcp/pkg/rest"
	"github.com/simcoder/strapi-cms-mcp/pkg/tool"
	"github.com/simcoder/strapi-cms-mcp/pkg/tool/strapi"
)

const (
	TransportStdio = "stdio"
	TransportSSE   = "sse"
)

type Options struct {
	Version string

	Transport string
	Addr      string
}

func NewServer(ctx context.Context, cfg *config.Config, logger zerolog.Logger, version string) (*server.MCPServer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	client, err := rest.New(cfg.URL,
		rest.WithBearer(cfg.Token),
		rest.WithHeaders(cfg.Headers),
		rest.WithTimeout(cfg.Timeout),
		rest.WithLogger(logger),
	)

	if err != nil {
		return nil, err
	}

	registry, err := tool.NewRegistryFromProviders(ctx,
		strapi.New(client, strapi.WithLogger(logger)),
	)

	if err != nil {
		return nil, err
	}

	logger.Info().Strs("tools", registry.Names()).Msg("registered tools")

	if version == "" {
		version = bridge.Version
	}

	return bridge.New(bridge.Name, version, registry)
}

func Run(ctx context.Context, cfg *config.Config, logger zerolog.Logger, opts Options) error {
	logger.Info().Str("url", cfg.URL).Msg("initializing Strapi CMS MCP server")

	s, err := NewServer(ctx, cfg, logger, opts.Version)

	if err != nil {
		return errors.Wrap(err, "server initialization failed")
	}

	switch opts.Transport {
	case "", TransportStdio:
		return bridge.ServeStdio(ctx, s, os.Stdin, os.Stdout, logger)

	case TransportSSE:
		return bridge.ServeSSE(ctx, s, opts.Addr, logger)

	default:
		return errors.Newf("unknown transport %q", opts.Transport)
	}
}
