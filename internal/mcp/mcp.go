package mcp

import (
	"context"

	slackclient "github.com/matillion/slack-log-export/internal/slack"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"go.uber.org/zap"
)

// errorWrappingHandler wraps a ToolHandler to provide enhanced error messages
type errorWrappingHandler struct {
	handler ToolHandler
	logger  *zap.Logger
}

func (h *errorWrappingHandler) ListChannels(ctx context.Context, req *mcp.CallToolRequest, input slackclient.ListChannelsInput) (*mcp.CallToolResult, slackclient.ListChannelsOutput, error) {
	result, output, err := h.handler.ListChannels(ctx, req, input)
	return result, output, slackclient.WrapError(h.logger, "list_channels", err)
}

func (h *errorWrappingHandler) ExportChannelLog(ctx context.Context, req *mcp.CallToolRequest, input slackclient.ExportChannelLogInput) (*mcp.CallToolResult, slackclient.ExportChannelLogOutput, error) {
	result, output, err := h.handler.ExportChannelLog(ctx, req, input)
	return result, output, slackclient.WrapError(h.logger, "export_channel_log", err)
}

func (h *errorWrappingHandler) SendChannelLog(ctx context.Context, req *mcp.CallToolRequest, input slackclient.SendChannelLogInput) (*mcp.CallToolResult, slackclient.SendChannelLogOutput, error) {
	result, output, err := h.handler.SendChannelLog(ctx, req, input)
	return result, output, slackclient.WrapError(h.logger, "send_channel_log", err)
}

// ToolHandler defines the interface for Slack log tool operations
//
//go:generate go tool mockgen -source=$GOFILE -destination=mcp_mocks.go -package=mcp
type ToolHandler interface {
	ListChannels(ctx context.Context, req *mcp.CallToolRequest, input slackclient.ListChannelsInput) (*mcp.CallToolResult, slackclient.ListChannelsOutput, error)
	ExportChannelLog(ctx context.Context, req *mcp.CallToolRequest, input slackclient.ExportChannelLogInput) (*mcp.CallToolResult, slackclient.ExportChannelLogOutput, error)
	SendChannelLog(ctx context.Context, req *mcp.CallToolRequest, input slackclient.SendChannelLogInput) (*mcp.CallToolResult, slackclient.SendChannelLogOutput, error)
}

// CreateServer creates an MCP server with all Slack log tools registered
func CreateServer(logger *zap.Logger, handler ToolHandler, version string) *mcp.Server {
	logger.Info("Starting MCP server")
	server := mcp.NewServer(
		&mcp.Implementation{
			Name:    "slack-log-export",
			Version: version,
		},
		nil,
	)

	// Wrap handler to provide enhanced error messages for auth failures
	wrappedHandler := &errorWrappingHandler{handler: handler, logger: logger}
	registerTools(server, wrappedHandler)
	logger.Info("Slack log export server initialized, starting transport")
	return server
}

// registerTools registers all Slack log tools with the MCP server
func registerTools(server *mcp.Server, handler ToolHandler) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "slack_list_channels",
		Description: "List the Slack channels known to the exporter. Returns channel names and IDs, optionally filtered by name prefix.",
	}, handler.ListChannels)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "slack_export_channel_log",
		Description: "Export a channel's messages since midnight N days ago to <channel>.log as a plain-text transcript, oldest first. Nothing is written when the channel has no messages.",
	}, handler.ExportChannelLog)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "slack_send_channel_log",
		Description: "Send a channel's plain-text transcript since midnight N days ago to a user as a file in a direct message. The user is given by Slack user name.",
	}, handler.SendChannelLog)
}
