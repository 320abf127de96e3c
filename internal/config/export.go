package config

import (
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const defaultDaysBefore = 1

// FlagSetter reports whether a flag was given on the command line or
// through its environment variable
type FlagSetter interface {
	IsSet(name string) bool
}

// Export holds what to export and where to deliver it
type Export struct {
	SettingsPath string
	Channels     []string
	DaysBefore   int
	SendDMUser   string
	OutputDir    string
}

// Flags returns CLI flags for export configuration
func (e *Export) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "config",
			Usage:       "YAML settings file (channels, days_before, send_dm_user, output_dir)",
			Category:    "Export",
			Sources:     cli.EnvVars("SLACK_LOG_CONFIG"),
			Destination: &e.SettingsPath,
		},
		&cli.StringSliceFlag{
			Name:        "channel",
			Usage:       "Channel name to export (repeatable)",
			Category:    "Export",
			Sources:     cli.EnvVars("SLACK_LOG_CHANNELS"),
			Destination: &e.Channels,
		},
		&cli.IntFlag{
			Name:        "days-before",
			Usage:       "Start the log at midnight this many days ago",
			Category:    "Export",
			Value:       defaultDaysBefore,
			Sources:     cli.EnvVars("SLACK_LOG_DAYS_BEFORE"),
			Destination: &e.DaysBefore,
		},
		&cli.StringFlag{
			Name:        "send-dm-user",
			Usage:       "Slack user name that receives logs by direct message",
			Category:    "Export",
			Sources:     cli.EnvVars("SLACK_LOG_SEND_DM_USER"),
			Destination: &e.SendDMUser,
		},
		&cli.StringFlag{
			Name:        "output-dir",
			Usage:       "Directory for <channel>.log files",
			Category:    "Export",
			Value:       ".",
			Sources:     cli.EnvVars("SLACK_LOG_OUTPUT_DIR"),
			Destination: &e.OutputDir,
		},
	}
}

// Resolve fills anything not given by flag or environment from the settings
// file, when one is configured
func (e *Export) Resolve(flags FlagSetter) error {
	if e.SettingsPath == "" {
		return nil
	}

	settings, err := LoadSettingsFromFile(e.SettingsPath)
	if err != nil {
		return err
	}

	if !flags.IsSet("channel") && len(settings.Channels) > 0 {
		e.Channels = settings.Channels
	}
	if !flags.IsSet("days-before") && settings.DaysBefore != nil {
		e.DaysBefore = *settings.DaysBefore
	}
	if !flags.IsSet("send-dm-user") && settings.SendDMUser != "" {
		e.SendDMUser = settings.SendDMUser
	}
	if !flags.IsSet("output-dir") && settings.OutputDir != "" {
		e.OutputDir = settings.OutputDir
	}
	return nil
}

// Validate validates the export configuration. needUser is set for
// direct message delivery.
func (e *Export) Validate(needUser bool) error {
	if len(e.Channels) == 0 {
		return goerr.New("at least one channel is required, set --channel or channels in the settings file")
	}
	if e.DaysBefore < 0 {
		return goerr.New("days before must not be negative", goerr.V("days_before", e.DaysBefore))
	}
	if needUser && e.SendDMUser == "" {
		return goerr.New("a user is required for direct message delivery, set --send-dm-user")
	}
	return nil
}

// MarshalLogObject implements zapcore.ObjectMarshaler
func (e Export) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddString("settings", e.SettingsPath)
	enc.AddInt("channels", len(e.Channels))
	enc.AddInt("days_before", e.DaysBefore)
	enc.AddString("send_dm_user", e.SendDMUser)
	enc.AddString("output_dir", e.OutputDir)
	return nil
}

// Field returns the configuration as a zap field
func (e Export) Field() zap.Field {
	return zap.Object("export", e)
}
