package slack

import (
	"context"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// ListChannelsInput defines input for listing channels
type ListChannelsInput struct {
	Prefix string `json:"prefix,omitempty" jsonschema:"Only return channels whose name starts with this prefix"`
}

// ListChannelsOutput contains the directory's channels
type ListChannelsOutput struct {
	TotalCount int           `json:"total_count"`
	Channels   []ChannelInfo `json:"channels"`
}

// ListChannels lists the channels loaded into the directory at startup
func (c *Client) ListChannels(ctx context.Context, req *mcp.CallToolRequest, input ListChannelsInput) (*mcp.CallToolResult, ListChannelsOutput, error) {
	all := c.Channels()
	channels := make([]ChannelInfo, 0, len(all))
	for _, ch := range all {
		if !strings.HasPrefix(ch.Name, strings.TrimPrefix(input.Prefix, "#")) {
			continue
		}
		channels = append(channels, ch)
	}
	return nil, ListChannelsOutput{TotalCount: len(channels), Channels: channels}, nil
}

// ExportChannelLogInput defines input for exporting a channel log to disk
type ExportChannelLogInput struct {
	Channel    string `json:"channel" jsonschema:"Channel name (e.g., general or #general)"`
	DaysBefore int    `json:"days_before,omitempty" jsonschema:"Days before today's midnight to start from (default 0, today only)"`
}

// ExportChannelLogOutput contains the written log file
type ExportChannelLogOutput struct {
	Channel string  `json:"channel"`
	Written bool    `json:"written"`
	File    FileRef `json:"file,omitempty"`
}

// ExportChannelLog writes a channel's transcript to <channel>.log
func (c *Client) ExportChannelLog(ctx context.Context, req *mcp.CallToolRequest, input ExportChannelLogInput) (*mcp.CallToolResult, ExportChannelLogOutput, error) {
	if input.Channel == "" {
		return nil, ExportChannelLogOutput{}, fmt.Errorf("channel is required")
	}
	if input.DaysBefore < 0 {
		return nil, ExportChannelLogOutput{}, fmt.Errorf("days_before must not be negative")
	}

	ref, written, err := c.ExportToFile(ctx, input.Channel, input.DaysBefore)
	if err != nil {
		return nil, ExportChannelLogOutput{}, err
	}
	return nil, ExportChannelLogOutput{Channel: input.Channel, Written: written, File: ref}, nil
}

// SendChannelLogInput defines input for sending a channel log by direct message
type SendChannelLogInput struct {
	Channel    string `json:"channel" jsonschema:"Channel name (e.g., general or #general)"`
	DaysBefore int    `json:"days_before,omitempty" jsonschema:"Days before today's midnight to start from (default 0, today only)"`
	User       string `json:"user" jsonschema:"Slack user name that receives the log"`
}

// SendChannelLogOutput contains the delivery result
type SendChannelLogOutput struct {
	Channel string   `json:"channel"`
	Result  DMResult `json:"result"`
}

// SendChannelLog uploads a channel's transcript into a direct message
func (c *Client) SendChannelLog(ctx context.Context, req *mcp.CallToolRequest, input SendChannelLogInput) (*mcp.CallToolResult, SendChannelLogOutput, error) {
	if input.Channel == "" || input.User == "" {
		return nil, SendChannelLogOutput{}, fmt.Errorf("channel and user are required")
	}
	if input.DaysBefore < 0 {
		return nil, SendChannelLogOutput{}, fmt.Errorf("days_before must not be negative")
	}

	res, err := c.SendToUser(ctx, input.Channel, input.DaysBefore, input.User)
	if err != nil {
		return nil, SendChannelLogOutput{}, err
	}
	return nil, SendChannelLogOutput{Channel: input.Channel, Result: res}, nil
}
