package config

import (
	"github.com/m-mizutani/goerr/v2"
	slackclient "github.com/matillion/slack-log-export/internal/slack"
	"github.com/urfave/cli/v3"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Slack holds Slack API configuration
type Slack struct {
	Token            string
	Cookie           string
	RetryRateLimited bool
	APIURL           string
}

// Flags returns CLI flags for Slack configuration
func (s *Slack) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "token",
			Usage:       "Slack API token",
			Category:    "Slack",
			Sources:     cli.EnvVars("SLACK_TOKEN"),
			Destination: &s.Token,
		},
		&cli.StringFlag{
			Name:        "cookie",
			Usage:       "Slack d cookie for xoxc tokens",
			Category:    "Slack",
			Sources:     cli.EnvVars("SLACK_COOKIE"),
			Destination: &s.Cookie,
		},
		&cli.BoolFlag{
			Name:        "retry-rate-limited",
			Usage:       "Wait and retry history requests that Slack rate limits",
			Category:    "Slack",
			Sources:     cli.EnvVars("SLACK_LOG_RETRY_RATE_LIMITED"),
			Destination: &s.RetryRateLimited,
		},
		&cli.StringFlag{
			Name:        "api-url",
			Usage:       "Slack API base URL",
			Category:    "Slack",
			Hidden:      true,
			Sources:     cli.EnvVars("SLACK_API_URL"),
			Destination: &s.APIURL,
		},
	}
}

// Validate validates the Slack configuration
func (s *Slack) Validate() error {
	if s.Token == "" {
		return goerr.New("slack token is required, set --token or SLACK_TOKEN")
	}
	return nil
}

// ClientConfig converts to the Slack client configuration
func (s *Slack) ClientConfig() slackclient.Config {
	return slackclient.Config{
		Token:            s.Token,
		Cookie:           s.Cookie,
		RetryRateLimited: s.RetryRateLimited,
		APIURL:           s.APIURL,
	}
}

// MarshalLogObject logs the configuration without secrets
func (s Slack) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddBool("has_token", s.Token != "")
	enc.AddBool("has_cookie", s.Cookie != "")
	enc.AddBool("retry_rate_limited", s.RetryRateLimited)
	return nil
}

// Field returns the configuration as a zap field
func (s Slack) Field() zap.Field {
	return zap.Object("slack", s)
}
