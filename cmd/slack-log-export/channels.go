package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"
)

func cmdChannels(s *session) *cli.Command {
	return &cli.Command{
		Name:  "channels",
		Usage: "List the channels visible to the token",
		Action: func(ctx context.Context, c *cli.Command) error {
			if err := s.resolve(c); err != nil {
				return err
			}

			client, err := s.connect(ctx)
			if err != nil {
				return err
			}

			for _, ch := range client.Channels() {
				flags := ""
				if ch.IsPrivate {
					flags += " private"
				}
				if ch.IsArchived {
					flags += " archived"
				}
				fmt.Fprintf(c.Root().Writer, "%s\t%s%s\n", ch.ID, ch.Name, flags)
			}
			return nil
		},
	}
}
