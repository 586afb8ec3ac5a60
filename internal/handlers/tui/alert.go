package tui

import tea "github.com/charmbracelet/bubbletea"

// alert is a blocking message box. While shown it receives every key and
// closes on enter or esc.
type alert struct {
	Title   string
	Message string
}

func newNoWalletAlert() *alert {
	return &alert{
		Title:   "No wallet found",
		Message: "Please get a wallet: set WAVEPORTAL_PROVIDER_URL to an Ethereum endpoint.",
	}
}

func (a *alert) Update(msg tea.Msg) tea.Cmd {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "enter", "esc":
			return func() tea.Msg { return dismissAlertMsg{} }
		}
	}

	return nil
}

func (a *alert) View() string {
	content := styles.AlertTitle.Render(a.Title) + "\n\n" +
		styles.Normal.Render(a.Message) + "\n\n" +
		styles.Hint.Render("enter: OK")

	return styles.AlertBox.Render(content)
}
