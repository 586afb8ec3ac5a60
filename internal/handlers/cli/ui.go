package cli

import (
	"context"

	"github.com/gabapcia/waveportal/internal/handlers/tui"
	"github.com/gabapcia/waveportal/internal/portal"

	"github.com/urfave/cli/v3"
)

// uiCommand returns a CLI command that opens the interactive WaveClient.
//
// Usage example:
//
//	waveportal ui
func uiCommand(svc portal.Service) *cli.Command {
	return &cli.Command{
		Name:        "ui",
		Description: "Opens the interactive WaveClient.",
		Usage:       "Connect a wallet, write a message and wave from the terminal.",
		Action: func(ctx context.Context, c *cli.Command) error {
			return tui.Run(ctx, svc)
		},
	}
}
