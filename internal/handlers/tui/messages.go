package tui

import "github.com/gabapcia/waveportal/internal/portal"

// authorizationCheckedMsg carries the result of the startup authorization check.
type authorizationCheckedMsg struct {
	State portal.State
	Err   error
}

// connectedMsg carries the result of a connect request.
type connectedMsg struct {
	State portal.State
	Err   error
}

// mountedMsg is sent once the portal is mounted. Updates is nil when Err is set.
type mountedMsg struct {
	Updates <-chan portal.State
	Err     error
}

// stateMsg is a snapshot published by the mounted portal.
type stateMsg struct {
	State portal.State
}

// updatesClosedMsg is sent when the portal stops publishing snapshots.
type updatesClosedMsg struct{}

// submittedMsg carries the result of a wave submission.
type submittedMsg struct {
	Submission portal.Submission
	Err        error
}

// dismissAlertMsg closes the alert overlay.
type dismissAlertMsg struct{}
