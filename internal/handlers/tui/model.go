package tui

import (
	"context"
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/gabapcia/waveportal/internal/pkg/logger"
	"github.com/gabapcia/waveportal/internal/portal"
	"github.com/gabapcia/waveportal/internal/session"
)

const (
	keyQuit    = "ctrl+c"
	keyConnect = "ctrl+o"
	keyWave    = "ctrl+s"

	timeLayout = "2006-01-02 15:04:05 MST"
)

type model struct {
	ctx context.Context
	svc portal.Service

	state   portal.State
	updates <-chan portal.State
	draft   textarea.Model
	alert   *alert
	mining  int
	lastTx  string

	width  int
	height int
}

var _ tea.Model = (*model)(nil)

func (m *model) Init() tea.Cmd {
	return tea.Batch(
		checkAuthorizationCmd(m.ctx, m.svc),
		mountCmd(m.ctx, m.svc),
	)
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.draft.SetWidth(max(msg.Width-4, 20))
		return m, nil

	case tea.KeyMsg:
		return m, m.handleKey(msg)

	case dismissAlertMsg:
		m.alert = nil
		return m, nil

	case authorizationCheckedMsg:
		return m, m.handleAuthorizationChecked(msg)

	case connectedMsg:
		return m, m.handleConnected(msg)

	case mountedMsg:
		if msg.Err != nil {
			logger.Error(m.ctx, "failed to mount portal", "error", msg.Err)
			return m, nil
		}

		m.updates = msg.Updates
		return m, waitForStateCmd(m.ctx, m.updates)

	case stateMsg:
		cmd := m.setState(msg.State)
		if m.updates == nil {
			return m, cmd
		}
		return m, tea.Batch(cmd, waitForStateCmd(m.ctx, m.updates))

	case updatesClosedMsg:
		m.updates = nil
		return m, nil

	case submittedMsg:
		m.mining = max(m.mining-1, 0)
		if msg.Err != nil {
			logger.Error(m.ctx, "failed to send wave", "error", msg.Err)
			return m, nil
		}

		m.lastTx = msg.Submission.TxHash.Hex()
		return m, nil
	}

	var cmd tea.Cmd
	m.draft, cmd = m.draft.Update(msg)
	return m, cmd
}

func (m *model) handleKey(msg tea.KeyMsg) tea.Cmd {
	if msg.String() == keyQuit {
		return tea.Quit
	}

	if m.alert != nil {
		return m.alert.Update(msg)
	}

	switch msg.String() {
	case keyConnect:
		return connectCmd(m.ctx, m.svc)
	case keyWave:
		m.mining++
		return submitCmd(m.ctx, m.svc, m.draft.Value())
	}

	if !m.state.Connected() {
		return nil
	}

	var cmd tea.Cmd
	m.draft, cmd = m.draft.Update(msg)
	return cmd
}

func (m *model) handleAuthorizationChecked(msg authorizationCheckedMsg) tea.Cmd {
	switch {
	case msg.Err == nil:
		return m.setState(m.state.WithSession(msg.State.Session))
	case errors.Is(msg.Err, session.ErrNoAuthorizedAccount):
		logger.Info(m.ctx, "no authorized account found")
	case errors.Is(msg.Err, portal.ErrNoWallet):
		logger.Info(m.ctx, "make sure you have a wallet configured")
	default:
		logger.Error(m.ctx, "failed to check existing authorization", "error", msg.Err)
	}

	return nil
}

func (m *model) handleConnected(msg connectedMsg) tea.Cmd {
	switch {
	case msg.Err == nil:
		return m.setState(m.state.WithSession(msg.State.Session))
	case errors.Is(msg.Err, portal.ErrNoWallet):
		if m.alert == nil {
			m.alert = newNoWalletAlert()
		}
	default:
		logger.Error(m.ctx, "failed to connect wallet", "error", msg.Err)
	}

	return nil
}

// setState replaces the displayed state and enables the draft once an
// account is connected. Only published snapshots carry the feed; call
// results may be older than the last one received.
func (m *model) setState(state portal.State) tea.Cmd {
	m.state = state
	if state.Connected() && !m.draft.Focused() {
		return m.draft.Focus()
	}

	return nil
}

func (m *model) View() string {
	if m.alert != nil {
		if m.width > 0 && m.height > 0 {
			return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, m.alert.View())
		}
		return m.alert.View()
	}

	var b strings.Builder
	b.WriteString(styles.Header.Render("👋 WELCOME!"))
	b.WriteString("\n")
	b.WriteString(styles.Bio.Render("Connect your Ethereum wallet, write a message and send a 👋 ✨"))
	b.WriteString("\n")

	if m.state.Connected() {
		b.WriteString(m.draft.View())
		b.WriteString("\n")
	}

	b.WriteString(m.viewButtons())
	b.WriteString("\n")

	if status := m.viewStatus(); status != "" {
		b.WriteString(status)
		b.WriteString("\n")
	}

	if m.state.Connected() {
		b.WriteString(m.viewWaves())
		b.WriteString("\n")
	}

	b.WriteString(styles.Hint.Render("ctrl+s: wave • ctrl+o: connect • ctrl+c: quit"))
	return b.String()
}

func (m *model) viewButtons() string {
	wave := styles.Button.Render("Wave at Me")
	connect := styles.Button.Render("Connect Wallet")
	if m.state.Connected() {
		connect = styles.Active.Render("Wallet Connected")
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, wave, connect)
}

func (m *model) viewStatus() string {
	var parts []string
	if account, ok := m.state.Account(); ok {
		parts = append(parts, "account "+account.Hex())
	}
	if m.mining > 0 {
		parts = append(parts, "mining...")
	} else if m.lastTx != "" {
		parts = append(parts, "mined "+m.lastTx)
	}

	if len(parts) == 0 {
		return ""
	}
	return styles.Status.Render(strings.Join(parts, " • "))
}

func (m *model) viewWaves() string {
	recent := m.state.Feed.Recent()
	if len(recent) == 0 {
		return styles.Empty.Render("No waves yet")
	}

	cards := make([]string, 0, len(recent))
	for _, w := range recent {
		card := styles.Label.Render("Address: ") + styles.Normal.Render(w.Sender.Hex()) + "\n" +
			styles.Label.Render("Time: ") + styles.Normal.Render(w.Timestamp.Local().Format(timeLayout)) + "\n" +
			styles.Label.Render("Message: ") + styles.Normal.Render(w.Message)
		cards = append(cards, styles.Card.Render(card))
	}

	return lipgloss.JoinVertical(lipgloss.Left, cards...)
}

func newDraft() textarea.Model {
	ta := textarea.New()
	ta.Placeholder = "Write your message here"
	ta.ShowLineNumbers = false
	ta.CharLimit = 280
	ta.SetHeight(3)
	ta.Blur()
	return ta
}

// New creates the WaveClient model. Every portal call is bound to ctx.
func New(ctx context.Context, svc portal.Service) *model {
	return &model{
		ctx:   ctx,
		svc:   svc,
		draft: newDraft(),
	}
}
