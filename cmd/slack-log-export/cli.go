package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/matillion/slack-log-export/internal/config"
	slackclient "github.com/matillion/slack-log-export/internal/slack"
	"github.com/urfave/cli/v3"
	"go.uber.org/zap"
)

// session carries the configuration parsed by the root command and the
// logger configured from it to the subcommands
type session struct {
	logger    *zap.Logger
	slackCfg  config.Slack
	exportCfg config.Export
}

// run runs the CLI application, writing command output to stdout
func run(ctx context.Context, args []string, stdout io.Writer) error {
	var loggerCfg config.Logger
	s := &session{logger: zap.NewNop()}

	app := &cli.Command{
		Name:           "slack-log-export",
		Usage:          "Export Slack channel history as plain-text logs",
		Version:        version,
		Writer:         stdout,
		Flags:          joinFlags(loggerCfg.Flags(), s.slackCfg.Flags(), s.exportCfg.Flags()),
		DefaultCommand: "export",
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			if err := loggerCfg.Validate(); err != nil {
				return ctx, err
			}
			logger, err := loggerCfg.Configure()
			if err != nil {
				return ctx, err
			}
			s.logger = logger
			return ctx, nil
		},
		After: func(ctx context.Context, c *cli.Command) error {
			_ = s.logger.Sync()
			return nil
		},
		Commands: []*cli.Command{
			cmdExport(s),
			cmdSend(s),
			cmdChannels(s),
			cmdServe(s),
		},
	}

	if err := app.Run(ctx, args); err != nil {
		s.logger.Error("Command failed", zap.Error(err))
		fmt.Fprintf(os.Stderr, "slack-log-export: %v\n", err)
		return err
	}
	return nil
}

// resolve fills export settings the command line left unset from the
// settings file
func (s *session) resolve(c *cli.Command) error {
	return s.exportCfg.Resolve(c)
}

// connect validates the Slack settings, prepares the output directory and
// loads the channel and user directory
func (s *session) connect(ctx context.Context) (*slackclient.Client, error) {
	if err := s.slackCfg.Validate(); err != nil {
		return nil, err
	}
	outputDir := s.exportCfg.OutputDir
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return nil, goerr.Wrap(err, "failed to create output directory", goerr.V("dir", outputDir))
	}

	logs := slackclient.NewFileLogWriter(outputDir)
	client, err := slackclient.NewClient(s.slackCfg.ClientConfig(), s.logger, logs)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create Slack client")
	}
	if err := client.LoadDirectory(ctx); err != nil {
		return nil, err
	}
	return client, nil
}

func joinFlags(sets ...[]cli.Flag) []cli.Flag {
	var flags []cli.Flag
	for _, set := range sets {
		flags = append(flags, set...)
	}
	return flags
}
