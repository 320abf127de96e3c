package slack

import (
	"context"
	"fmt"
	"os"

	"github.com/slack-go/slack"
	"go.uber.org/zap"
)

// ExportToFile writes the channel's transcript for the last daysBefore days
// to <channel>.log in the log directory. When the channel has no messages in
// the window nothing is written and written is false.
func (c *Client) ExportToFile(ctx context.Context, channelName string, daysBefore int) (ref FileRef, written bool, err error) {
	ch, err := c.dir.lookupChannelByName(channelName)
	if err != nil {
		return FileRef{}, false, err
	}

	text, err := c.buildTranscript(ctx, ch.ID, daysBefore)
	if err != nil {
		return FileRef{}, false, err
	}
	if text == "" {
		c.logger.Info("Channel has no log", zap.String("channel", ch.Name))
		return FileRef{}, false, nil
	}

	ref, err = c.logs.WriteLog(ch.Name, text)
	if err != nil {
		return FileRef{}, false, fmt.Errorf("failed to write log: %w", err)
	}

	c.logger.Info("Channel log written",
		zap.String("channel", ch.Name),
		zap.String("path", ref.Path),
		zap.Int("lines", ref.Lines))
	return ref, true, nil
}

// DMResult describes a transcript delivered by direct message
type DMResult struct {
	ChannelID string `json:"channel_id"`
	FileID    string `json:"file_id"`
	UserID    string `json:"user_id"`
	Sent      bool   `json:"sent"`
}

// SendToUser uploads the channel's transcript for the last daysBefore days
// into a direct message with userName. An empty transcript sends nothing.
func (c *Client) SendToUser(ctx context.Context, channelName string, daysBefore int, userName string) (DMResult, error) {
	ch, err := c.dir.lookupChannelByName(channelName)
	if err != nil {
		return DMResult{}, err
	}

	text, err := c.buildTranscript(ctx, ch.ID, daysBefore)
	if err != nil {
		return DMResult{}, err
	}
	if text == "" {
		c.logger.Info("Channel has no log", zap.String("channel", ch.Name))
		return DMResult{}, nil
	}

	user, err := c.dir.lookupUserByName(userName)
	if err != nil {
		return DMResult{}, err
	}
	if user.Deleted {
		return DMResult{}, fmt.Errorf("user %q is deleted: %w", userName, ErrNotFound)
	}

	dm, err := c.openDM(ctx, user.ID)
	if err != nil {
		return DMResult{}, err
	}

	file, err := c.uploadLog(ctx, dm, ch.Name, text)
	if err != nil {
		return DMResult{}, err
	}

	c.logger.Info("Channel log sent",
		zap.String("channel", ch.Name),
		zap.String("user", user.Name),
		zap.String("file_id", file.ID))
	return DMResult{ChannelID: dm, FileID: file.ID, UserID: user.ID, Sent: true}, nil
}

// openDM opens, or reuses, the direct message channel with userID
func (c *Client) openDM(ctx context.Context, userID string) (string, error) {
	ch, _, alreadyOpen, err := c.api.OpenConversationContext(ctx, &slack.OpenConversationParameters{
		Users: []string{userID},
	})
	if err != nil {
		c.logger.Debug("conversations.open failed", zap.String("user_id", userID), zap.Error(err))
		return "", fmt.Errorf("failed to open direct message: %w", err)
	}
	c.logger.Debug("Direct message channel opened",
		zap.String("channel_id", ch.ID),
		zap.Bool("already_open", alreadyOpen))
	return ch.ID, nil
}

// uploadLog stages the transcript in a temp file, uploads it and removes the
// temp file whether or not the upload succeeded
func (c *Client) uploadLog(ctx context.Context, channelID, channelName, text string) (*slack.FileSummary, error) {
	tmp, err := c.logs.WriteTemp(channelName, text)
	if err != nil {
		return nil, fmt.Errorf("failed to stage log: %w", err)
	}
	defer func() {
		if err := os.Remove(tmp.Path); err != nil {
			c.logger.Warn("Failed to remove staged log", zap.String("path", tmp.Path), zap.Error(err))
		}
	}()

	f, err := os.Open(tmp.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to open staged log: %w", err)
	}
	defer f.Close()

	file, err := c.api.UploadFileV2Context(ctx, slack.UploadFileV2Parameters{
		Reader:         f,
		FileSize:       int(tmp.Bytes),
		Filename:       logFileName(channelName),
		Title:          "log",
		InitialComment: fmt.Sprintf("#%s log", channelName),
		Channel:        channelID,
	})
	if err != nil {
		c.logger.Debug("Upload failed", zap.String("channel_id", channelID), zap.Error(err))
		return nil, fmt.Errorf("failed to upload log: %w", err)
	}
	return file, nil
}
