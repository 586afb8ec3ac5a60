package cli

import (
	"context"
	"os"

	"github.com/gabapcia/waveportal/internal/portal"
	"github.com/gabapcia/waveportal/internal/session"

	"github.com/urfave/cli/v3"
)

// Run initializes and executes the waveportal CLI application.
//
// It registers all available commands, including:
//
//   - `ui`: Opens the interactive WaveClient.
//   - `waves`: Prints the wave history, most recent first.
//   - `wave`: Connects the wallet and sends a wave.
//   - `accounts`: Lists the accounts the wallet already authorized.
//   - `connect`: Requests wallet authorization.
//   - `watch`: Streams new waves until interrupted.
//
// A nil wallet means no wallet is configured; commands needing one fail with
// portal.ErrNoWallet.
func Run(ctx context.Context, svc portal.Service, wallet session.Wallet) error {
	app := &cli.Command{
		EnableShellCompletion: true,
		Name:                  "waveportal",
		Description:           "Command-line client for the WavePortal contract.",
		Usage:                 "waveportal [command] [flags]",
		Commands: []*cli.Command{
			uiCommand(svc),
			listWavesCommand(svc),
			sendWaveCommand(svc),
			accountsCommand(wallet),
			connectCommand(svc),
			watchCommand(svc),
		},
	}

	return app.Run(ctx, os.Args)
}
