// Package tui is the terminal WaveClient: a single screen to connect a
// wallet, write a message, wave and follow the waves as they arrive.
package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/gabapcia/waveportal/internal/pkg/logger"
	"github.com/gabapcia/waveportal/internal/portal"
)

// Run blocks until the user quits or ctx is done. The portal is unmounted
// before returning.
func Run(ctx context.Context, svc portal.Service, opts ...tea.ProgramOption) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	defer svc.Unmount()

	opts = append([]tea.ProgramOption{tea.WithContext(ctx), tea.WithAltScreen()}, opts...)
	p := tea.NewProgram(New(ctx, svc), opts...)
	if _, err := p.Run(); err != nil {
		return err
	}

	logger.Info(ctx, "waveportal ui closed")
	return nil
}
