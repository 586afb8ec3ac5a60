package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/big"

	"golang.org/x/sync/errgroup"

	"github.com/gabapcia/waveportal/internal/portal"
	"github.com/gabapcia/waveportal/internal/session"
	"github.com/gabapcia/waveportal/internal/wave"

	"github.com/urfave/cli/v3"
)

const timeLayout = "2006-01-02 15:04:05 MST"

func printWave(w io.Writer, wv wave.Wave) {
	fmt.Fprintf(w, "%s  %s  %s\n", wv.Timestamp.Local().Format(timeLayout), wv.Sender.Hex(), wv.Message)
}

// listWavesCommand returns a CLI command that prints every wave stored by the
// contract, most recent first, along with the contract's counter.
//
// Usage example:
//
//	waveportal waves
func listWavesCommand(svc portal.Service) *cli.Command {
	return &cli.Command{
		Name:        "waves",
		Description: "Prints every wave stored by the contract, most recent first.",
		Usage:       "Reads the wave history and the total wave count.",
		Action: func(ctx context.Context, c *cli.Command) error {
			var (
				state portal.State
				total *big.Int
			)

			g, gctx := errgroup.WithContext(ctx)
			g.Go(func() (err error) {
				state, err = svc.LoadAllWaves(gctx)
				return err
			})
			g.Go(func() (err error) {
				total, err = svc.TotalWaves(gctx)
				return err
			})
			if err := g.Wait(); err != nil {
				return err
			}

			out := c.Root().Writer
			fmt.Fprintf(out, "total waves: %s\n", total)
			for _, wv := range state.Feed.Recent() {
				printWave(out, wv)
			}

			return nil
		},
	}
}

// sendWaveCommand returns a CLI command that sends a wave from the wallet's
// account and waits until it is mined. An account the wallet already
// authorized is reused; otherwise authorization is requested.
//
// Usage example:
//
//	waveportal wave --message "gm"
func sendWaveCommand(svc portal.Service) *cli.Command {
	return &cli.Command{
		Name:        "wave",
		Description: "Sends a wave with a message and waits until it is mined.",
		Usage:       "Connects the wallet if needed and submits the wave.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "message",
				Usage:    "Message attached to the wave",
				Required: true,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			if _, err := svc.CheckExistingAuthorization(ctx); err != nil {
				if !errors.Is(err, session.ErrNoAuthorizedAccount) {
					return err
				}

				if _, err := svc.Connect(ctx); err != nil {
					return err
				}
			}

			submission, err := svc.SubmitWave(ctx, c.String("message"))
			if err != nil {
				return err
			}

			fmt.Fprintf(c.Root().Writer, "mined %s in block %s, total waves %s -> %s\n",
				submission.TxHash.Hex(),
				submission.BlockNumber,
				submission.TotalBefore,
				submission.TotalAfter,
			)
			return nil
		},
	}
}

// accountsCommand returns a CLI command that lists the accounts the wallet
// already authorized, without prompting.
//
// Usage example:
//
//	waveportal accounts
func accountsCommand(wallet session.Wallet) *cli.Command {
	return &cli.Command{
		Name:        "accounts",
		Description: "Lists the accounts the wallet already authorized.",
		Usage:       "Prints one address per line.",
		Action: func(ctx context.Context, c *cli.Command) error {
			if wallet == nil {
				return portal.ErrNoWallet
			}

			accounts, err := wallet.Accounts(ctx)
			if err != nil {
				return err
			}

			for _, account := range accounts {
				fmt.Fprintln(c.Root().Writer, account.Hex())
			}
			return nil
		},
	}
}

// connectCommand returns a CLI command that requests wallet authorization and
// prints the adopted account.
//
// Usage example:
//
//	waveportal connect
func connectCommand(svc portal.Service) *cli.Command {
	return &cli.Command{
		Name:        "connect",
		Description: "Requests wallet authorization and prints the adopted account.",
		Usage:       "Asks the wallet for an account.",
		Action: func(ctx context.Context, c *cli.Command) error {
			state, err := svc.Connect(ctx)
			if err != nil {
				return err
			}

			account, _ := state.Account()
			fmt.Fprintf(c.Root().Writer, "connected %s\n", account.Hex())
			return nil
		},
	}
}
