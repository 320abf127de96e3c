package main

import (
	"context"

	slackclient "github.com/matillion/slack-log-export/internal/slack"
	"github.com/urfave/cli/v3"
	"go.uber.org/zap"
)

func cmdExport(s *session) *cli.Command {
	return &cli.Command{
		Name:  "export",
		Usage: "Write <channel>.log for each configured channel",
		Action: func(ctx context.Context, c *cli.Command) error {
			if err := s.resolve(c); err != nil {
				return err
			}
			if err := s.exportCfg.Validate(false); err != nil {
				return err
			}

			s.logger.Info("Starting export",
				zap.String("version", version),
				s.slackCfg.Field(),
				s.exportCfg.Field())

			client, err := s.connect(ctx)
			if err != nil {
				return err
			}

			for _, name := range s.exportCfg.Channels {
				if _, _, err := client.ExportToFile(ctx, name, s.exportCfg.DaysBefore); err != nil {
					return slackclient.WrapError(s.logger, "export "+name, err)
				}
			}
			return nil
		},
	}
}

func cmdSend(s *session) *cli.Command {
	return &cli.Command{
		Name:  "send",
		Usage: "Upload each configured channel's log into a direct message",
		Action: func(ctx context.Context, c *cli.Command) error {
			if err := s.resolve(c); err != nil {
				return err
			}
			if err := s.exportCfg.Validate(true); err != nil {
				return err
			}

			s.logger.Info("Starting direct message delivery",
				zap.String("version", version),
				s.slackCfg.Field(),
				s.exportCfg.Field())

			client, err := s.connect(ctx)
			if err != nil {
				return err
			}

			for _, name := range s.exportCfg.Channels {
				if _, err := client.SendToUser(ctx, name, s.exportCfg.DaysBefore, s.exportCfg.SendDMUser); err != nil {
					return slackclient.WrapError(s.logger, "send "+name, err)
				}
			}
			return nil
		},
	}
}
