package slack

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/slack-go/slack"
	"go.uber.org/zap"
)

// SlackAPI defines the Slack API methods used by the client
//
//go:generate go tool mockgen -source=$GOFILE -destination=client_mocks.go -package=slack
type SlackAPI interface {
	GetConversationsContext(ctx context.Context, params *slack.GetConversationsParameters) ([]slack.Channel, string, error)
	GetUsersContext(ctx context.Context, options ...slack.GetUsersOption) ([]slack.User, error)
	GetConversationHistoryContext(ctx context.Context, params *slack.GetConversationHistoryParameters) (*slack.GetConversationHistoryResponse, error)
	OpenConversationContext(ctx context.Context, params *slack.OpenConversationParameters) (*slack.Channel, bool, bool, error)
	UploadFileV2Context(ctx context.Context, params slack.UploadFileV2Parameters) (*slack.FileSummary, error)
}

// Config holds configuration for the Slack client
type Config struct {
	Token            string // Slack API token (required)
	Cookie           string // Slack cookie for xoxc token auth (optional)
	RetryRateLimited bool   // wait out Retry-After on rate limited history requests
	APIURL           string // Slack API base URL override (optional)
}

// FileRef describes a file written by LogWriter
type FileRef struct {
	Path  string `json:"path"`
	Name  string `json:"name"`
	Bytes int64  `json:"bytes"`
	Lines int    `json:"lines"`
}

// LogWriter writes transcripts to disk
type LogWriter interface {
	WriteLog(name string, content string) (FileRef, error)
	WriteTemp(name string, content string) (FileRef, error)
	Dir() string
}

type Client struct {
	api    SlackAPI
	dir    *directory
	logger *zap.Logger
	logs   LogWriter
	retry  bool
	now    func() time.Time
	loc    *time.Location
}

func NewClient(cfg Config, logger *zap.Logger, logs LogWriter) (*Client, error) {
	if cfg.Token == "" {
		return nil, fmt.Errorf("slack token is required")
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	opts := []slack.Option{}

	if cfg.Cookie != "" {
		logger.Info("Using cookie authentication for Slack client")
		httpClient := &http.Client{
			Transport: newCookieTransport(cfg.Cookie, logger),
		}
		opts = append(opts, slack.OptionHTTPClient(httpClient))
	}

	if cfg.APIURL != "" {
		opts = append(opts, slack.OptionAPIURL(cfg.APIURL))
	}

	api := slack.New(cfg.Token, opts...)

	c := newClientWithAPI(api, logger, logs)
	c.retry = cfg.RetryRateLimited
	return c, nil
}

// newClientWithAPI creates a client with a given SlackAPI (for testing)
func newClientWithAPI(api SlackAPI, logger *zap.Logger, logs LogWriter) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		api:    api,
		dir:    newDirectory(nil, nil),
		logger: logger,
		logs:   logs,
		now:    time.Now,
		loc:    time.Local,
	}
}

// LoadDirectory fetches the channel and user listings and replaces the
// client's directory with them. A failed listing is logged and leaves its
// half of the directory empty; only context cancellation is returned.
func (c *Client) LoadDirectory(ctx context.Context) error {
	channels, err := c.listAllChannels(ctx)
	if err != nil {
		c.logger.Debug("Channel listing failed, continuing with no channels", zap.Error(err))
		channels = nil
	}

	users, err := c.api.GetUsersContext(ctx)
	if err != nil {
		c.logger.Debug("User listing failed, continuing with no users", zap.Error(err))
		users = nil
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	c.dir = newDirectory(channels, users)
	c.logger.Info("Directory loaded",
		zap.Int("channels", c.dir.ChannelCount()),
		zap.Int("users", c.dir.UserCount()))
	return nil
}

// listAllChannels walks every page of conversations.list
func (c *Client) listAllChannels(ctx context.Context) ([]slack.Channel, error) {
	var all []slack.Channel
	params := &slack.GetConversationsParameters{
		Types: []string{"public_channel", "private_channel"},
		Limit: 1000,
	}
	for {
		channels, cursor, err := c.api.GetConversationsContext(ctx, params)
		if err != nil {
			return nil, err
		}
		all = append(all, channels...)
		if cursor == "" {
			return all, nil
		}
		params.Cursor = cursor
	}
}

// ChannelInfo is the listing view of a directory channel
type ChannelInfo struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	IsPrivate  bool   `json:"is_private"`
	IsArchived bool   `json:"is_archived"`
}

// Channels returns the directory's channels sorted by name
func (c *Client) Channels() []ChannelInfo {
	channels := c.dir.Channels()
	infos := make([]ChannelInfo, 0, len(channels))
	for _, ch := range channels {
		infos = append(infos, ChannelInfo{
			ID:         ch.ID,
			Name:       ch.Name,
			IsPrivate:  ch.IsPrivate,
			IsArchived: ch.IsArchived,
		})
	}
	return infos
}
