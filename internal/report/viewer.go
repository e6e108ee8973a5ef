package report

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/GowthamanS-2001/Berlin-jobs/internal/model"
)

var (
	viewerHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("39")).
				Padding(0, 1)

	viewerStatusStyle = lipgloss.NewStyle().
				Padding(0, 1).
				Foreground(lipgloss.Color("252")).
				Background(lipgloss.Color("236"))

	listingTitleStyle = lipgloss.NewStyle().
				Bold(true)

	listingMetaStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("245"))

	listingLinkStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("33"))
)

type viewerModel struct {
	run      model.RunSummary
	viewport viewport.Model
	content  string
	ready    bool
}

func (m viewerModel) Init() tea.Cmd {
	return nil
}

func (m viewerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		headerHeight := 1
		footerHeight := 1
		if !m.ready {
			m.viewport = viewport.New(msg.Width, msg.Height-headerHeight-footerHeight)
			m.viewport.SetContent(m.content)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = msg.Height - headerHeight - footerHeight
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m viewerModel) View() string {
	if !m.ready {
		return "loading..."
	}
	header := viewerHeaderStyle.Render(fmt.Sprintf("Digest %s — %d rows", m.run.RanAt.Format("2006-01-02"), m.run.RowCount))
	status := viewerStatusStyle.Render(fmt.Sprintf("%3.0f%%  ↑/↓ scroll  q quit", m.viewport.ScrollPercent()*100))
	return header + "\n" + m.viewport.View() + "\n" + status
}

// renderListings builds the scrollable body: one block per listing.
func renderListings(listings []model.Listing) string {
	var b strings.Builder
	for i, l := range listings {
		b.WriteString(listingTitleStyle.Render(fmt.Sprintf("%d. %s", i+1, l.Title)))
		b.WriteString("\n")

		meta := l.Company
		if l.Location != "" {
			meta += "  ·  " + l.Location
		}
		if l.Posted != "" {
			meta += "  ·  " + l.Posted
		}
		if l.Source != "" {
			meta += "  ·  via " + l.Source
		}
		b.WriteString(listingMetaStyle.Render(meta))
		b.WriteString("\n")

		if l.Salary != "" {
			b.WriteString(listingMetaStyle.Render("salary: " + l.Salary))
			b.WriteString("\n")
		}
		if l.Link != "" {
			b.WriteString(listingLinkStyle.Render(l.Link))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}
	return b.String()
}

// RunViewer opens a scrollable view of one archived run's listings.
func RunViewer(run model.RunSummary, listings []model.Listing) error {
	m := viewerModel{
		run:     run,
		content: renderListings(listings),
	}

	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
