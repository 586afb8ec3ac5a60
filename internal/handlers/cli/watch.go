package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gabapcia/waveportal/internal/pkg/x/chflow"
	"github.com/gabapcia/waveportal/internal/portal"

	"github.com/urfave/cli/v3"
)

// watchCommand returns a CLI command that mounts the portal and prints every
// wave that arrives after the initial history load.
//
// Usage example:
//
//	waveportal watch
//
// The process runs until it receives an interrupt (SIGINT or SIGTERM).
func watchCommand(svc portal.Service) *cli.Command {
	return &cli.Command{
		Name:        "watch",
		Description: "Streams new waves as they are mined.",
		Usage:       "Follows the NewWave event. Terminates gracefully on Ctrl+C or termination signals.",
		Action: func(ctx context.Context, c *cli.Command) error {
			quit := make(chan os.Signal, 1)
			defer close(quit)

			signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
			defer signal.Stop(quit)

			ctx, cancel := context.WithCancel(ctx)
			defer cancel()

			go func() {
				if _, ok := chflow.Receive[os.Signal](ctx, quit); ok {
					cancel()
				}
			}()

			updates, err := svc.Mount(ctx)
			if err != nil {
				return err
			}
			defer svc.Unmount()

			out := c.Root().Writer
			printed := -1
			for {
				state, ok := chflow.Receive(ctx, updates)
				if !ok {
					return nil
				}

				if !state.Feed.Loaded() {
					continue
				}

				waves := state.Feed.Waves()
				if printed < 0 {
					fmt.Fprintf(out, "loaded %d waves, watching for new ones\n", len(waves))
					printed = len(waves)
					continue
				}

				for _, wv := range waves[printed:] {
					printWave(out, wv)
				}
				printed = len(waves)
			}
		},
	}
}
