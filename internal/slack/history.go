package slack

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/slack-go/slack"
	"go.uber.org/zap"
)

// historyPageSize is the page size requested from conversations.history. A
// page of exactly this many messages means more may follow.
const historyPageSize = 1000

// windowStart returns local midnight of now's day, daysBefore days back
func windowStart(now time.Time, daysBefore int) time.Time {
	y, m, d := now.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, now.Location()).AddDate(0, 0, -daysBefore)
}

// walkHistory fetches a channel's history from oldest onwards and hands each
// page (newest-first, as returned by Slack) to fn. After a full page the
// newest timestamp in it becomes the exclusive lower bound of the next
// request; the walk ends on the first short page.
func (c *Client) walkHistory(ctx context.Context, channelID string, oldest string, fn func(page []slack.Message)) error {
	pages := 0
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		history, err := c.fetchHistoryPage(ctx, channelID, oldest)
		if err != nil {
			c.logger.Debug("History request failed",
				zap.String("channel_id", channelID),
				zap.String("oldest", oldest),
				zap.Error(err))
			return fmt.Errorf("failed to get history: %w", err)
		}
		pages++

		fn(history.Messages)

		if len(history.Messages) != historyPageSize {
			break
		}
		oldest = history.Messages[0].Timestamp
	}

	c.logger.Debug("History walk complete",
		zap.String("channel_id", channelID),
		zap.Int("pages", pages))
	return nil
}

func (c *Client) fetchHistoryPage(ctx context.Context, channelID string, oldest string) (*slack.GetConversationHistoryResponse, error) {
	params := &slack.GetConversationHistoryParameters{
		ChannelID: channelID,
		Oldest:    oldest,
		Limit:     historyPageSize,
		Inclusive: false,
	}

	if !c.retry {
		return c.api.GetConversationHistoryContext(ctx, params)
	}

	var history *slack.GetConversationHistoryResponse
	err := withRetry(ctx, c.logger, func() error {
		var e error
		history, e = c.api.GetConversationHistoryContext(ctx, params)
		return e
	})
	return history, err
}

// buildTranscript renders a channel's history since the start of the window
func (c *Client) buildTranscript(ctx context.Context, channelID string, daysBefore int) (string, error) {
	oldest := strconv.FormatInt(windowStart(c.now().In(c.loc), daysBefore).Unix(), 10)

	t := newTranscript(c.dir, c.loc)
	if err := c.walkHistory(ctx, channelID, oldest, t.AddPage); err != nil {
		return "", err
	}
	c.logger.Debug("Transcript built",
		zap.String("channel_id", channelID),
		zap.Int("messages", t.Len()))
	return t.String(), nil
}
