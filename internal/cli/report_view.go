package cli

import (
	"fmt"
	"strings"

	"github.com/averylane/shiftwise/internal/cli/formatter"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

// reportBrowser is a scrollable pager over an already rendered report.
type reportBrowser struct {
	title   string
	content string
	vp      viewport.Model
	ready   bool
}

func runReportBrowser(title, content string) error {
	m := reportBrowser{title: title, content: content}
	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}

func (m reportBrowser) Init() tea.Cmd {
	return nil
}

func (m reportBrowser) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		headerHeight := 2
		footerHeight := 1
		if !m.ready {
			m.vp = viewport.New(msg.Width, msg.Height-headerHeight-footerHeight)
			m.vp.SetContent(m.content)
			m.ready = true
		} else {
			m.vp.Width = msg.Width
			m.vp.Height = msg.Height - headerHeight - footerHeight
		}
	}

	var cmd tea.Cmd
	m.vp, cmd = m.vp.Update(msg)
	return m, cmd
}

func (m reportBrowser) View() string {
	if !m.ready {
		return "Loading..."
	}

	var b strings.Builder
	b.WriteString(formatter.Header(m.title))
	b.WriteString("\n")
	b.WriteString(m.vp.View())
	b.WriteString("\n")
	b.WriteString(formatter.Dim(fmt.Sprintf("%3.0f%%  ↑/↓ scroll  q quit", m.vp.ScrollPercent()*100)))
	return b.String()
}
