package main

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	slackmcp "github.com/matillion/slack-log-export/internal/mcp"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/urfave/cli/v3"
	"go.uber.org/zap"
)

// serveTransport is the transport the serve command speaks MCP over
var serveTransport = func() mcp.Transport { return &mcp.StdioTransport{} }

func cmdServe(s *session) *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Serve the export operations as MCP tools over stdio",
		Action: func(ctx context.Context, c *cli.Command) error {
			if err := s.resolve(c); err != nil {
				return err
			}

			s.logger.Info("Starting MCP server",
				zap.String("version", version),
				s.slackCfg.Field(),
				zap.String("output_dir", s.exportCfg.OutputDir))

			client, err := s.connect(ctx)
			if err != nil {
				return err
			}

			return serve(ctx, s.logger, client, serveTransport())
		},
	}
}

// serve runs the MCP server on transport until the client disconnects or
// ctx is cancelled
func serve(ctx context.Context, logger *zap.Logger, handler slackmcp.ToolHandler, transport mcp.Transport) error {
	server := slackmcp.CreateServer(logger, handler, version)
	if err := server.Run(ctx, transport); err != nil {
		return goerr.Wrap(err, "MCP server stopped")
	}
	return nil
}
