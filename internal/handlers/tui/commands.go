package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/gabapcia/waveportal/internal/pkg/x/chflow"
	"github.com/gabapcia/waveportal/internal/portal"
)

func checkAuthorizationCmd(ctx context.Context, svc portal.Service) tea.Cmd {
	return func() tea.Msg {
		state, err := svc.CheckExistingAuthorization(ctx)
		return authorizationCheckedMsg{State: state, Err: err}
	}
}

func connectCmd(ctx context.Context, svc portal.Service) tea.Cmd {
	return func() tea.Msg {
		state, err := svc.Connect(ctx)
		return connectedMsg{State: state, Err: err}
	}
}

func mountCmd(ctx context.Context, svc portal.Service) tea.Cmd {
	return func() tea.Msg {
		updates, err := svc.Mount(ctx)
		return mountedMsg{Updates: updates, Err: err}
	}
}

// waitForStateCmd blocks until the next snapshot. It must be re-issued after
// every stateMsg to keep listening.
func waitForStateCmd(ctx context.Context, updates <-chan portal.State) tea.Cmd {
	return func() tea.Msg {
		state, ok := chflow.Receive(ctx, updates)
		if !ok {
			return updatesClosedMsg{}
		}

		return stateMsg{State: state}
	}
}

func submitCmd(ctx context.Context, svc portal.Service, message string) tea.Cmd {
	return func() tea.Msg {
		submission, err := svc.SubmitWave(ctx, message)
		return submittedMsg{Submission: submission, Err: err}
	}
}
