package bridge

import (
	"context"
	"io"
	"log"
	"net"
	"net/http"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/rs/cors"
	"github.com/rs/zerolog"
	"github.com/samber/lo"

	"github.com/simcoder/strapi-cms-mcp/pkg/tool"
)

const (
	Name    = "strapi-cms"
	Version = "0.1.0"
)

// fallbackTool receives calls for names the registry does not know. It is
// hidden from tools/list.
const fallbackTool = "__unknown_tool__"

// New registers every tool of the registry with an MCP server. Calls are
// routed back through the registry so failures always become error results,
// including calls for unknown tool names.
func New(name, version string, registry *tool.Registry) (*server.MCPServer, error) {
	hooks := &server.Hooks{}

	hooks.AddBeforeCallTool(func(ctx context.Context, id any, request *mcp.CallToolRequest) {
		if _, ok := registry.Lookup(request.Params.Name); ok {
			return
		}

		request.Params.Arguments = map[string]any{
			"name": request.Params.Name,
		}

		request.Params.Name = fallbackTool
	})

	s := server.NewMCPServer(
		name,
		version,
		server.WithToolCapabilities(false),
		server.WithHooks(hooks),
		server.WithToolFilter(func(ctx context.Context, tools []mcp.Tool) []mcp.Tool {
			return lo.Filter(tools, func(t mcp.Tool, _ int) bool {
				return t.Name != fallbackTool
			})
		}),
	)

	for _, t := range registry.Tools() {
		schema, err := t.InputSchema()

		if err != nil {
			return nil, err
		}

		descriptor := mcp.Tool{
			Name:           t.Name,
			Description:    t.Description,
			RawInputSchema: schema,
		}

		s.AddTool(descriptor, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return registry.Invoke(ctx, request.Params.Name, request.Params.Arguments), nil
		})
	}

	s.AddTool(mcp.NewTool(fallbackTool), func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		name, _ := request.Params.Arguments["name"].(string)
		return registry.Invoke(ctx, name, nil), nil
	})

	return s, nil
}

func ServeStdio(ctx context.Context, s *server.MCPServer, in io.Reader, out io.Writer, logger zerolog.Logger) error {
	stdio := server.NewStdioServer(s)
	stdio.SetErrorLogger(log.New(logger, "", 0))

	logger.Info().Msg("server running on stdio")

	if err := stdio.Listen(ctx, in, out); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}

	return nil
}

func ServeSSE(ctx context.Context, s *server.MCPServer, addr string, logger zerolog.Logger) error {
	sse := server.NewSSEServer(s,
		server.WithBaseURL("http://"+addr),
	)

	mux := http.NewServeMux()

	mux.Handle("/sse", sse)
	mux.Handle("/message", sse)

	srv := &http.Server{
		Addr:    addr,
		Handler: cors.AllowAll().Handler(mux),

		ReadHeaderTimeout: 10 * time.Second,

		// open event streams end when ctx does
		BaseContext: func(net.Listener) context.Context {
			return ctx
		},
	}

	go func() {
		<-ctx.Done()

		shutdown, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		srv.Shutdown(shutdown)
	}()

	logger.Info().Str("addr", addr).Msg("server running on sse")

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}
