package tui

import (
	"fmt"
	"strings"
	"time"

	"charm.land/bubbles/v2/viewport"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
)

const keyCtrlC = "ctrl+c"

// scrollbarWidth is the space reserved for the scrollbar column (space + char).
const scrollbarWidth = 2

const viewerHeaderLines = 4 // rule + title + subtitle + blank line
const viewerFooterLines = 2 // blank line + help text

// renderScrollbar returns a single-column string (one char per row) showing
// a scrollbar track with a proportional thumb. Returns empty string when
// all content fits on screen.
func renderScrollbar(trackHeight, totalItems, visibleItems int, scrollPercent float64, theme *Theme) string {
	if totalItems <= visibleItems || trackHeight < 1 {
		return ""
	}
	thumbSize := max(1, trackHeight*visibleItems/totalItems)
	thumbStart := max(0, int(scrollPercent*float64(trackHeight-thumbSize)))
	if thumbStart+thumbSize > trackHeight {
		thumbStart = trackHeight - thumbSize
	}

	track := lipgloss.NewStyle().Foreground(theme.Muted)
	thumb := lipgloss.NewStyle().Foreground(theme.Secondary)

	lines := make([]string, trackHeight)
	for i := range lines {
		if i >= thumbStart && i < thumbStart+thumbSize {
			lines[i] = thumb.Render("┃")
		} else {
			lines[i] = track.Render("│")
		}
	}
	return strings.Join(lines, "\n")
}

// viewerCopiedMsg clears the "Copied!" flash after a delay.
type viewerCopiedMsg struct{}

// ViewerModel shows a generated file in a scrollable viewport with a title
// bar, a summary line and a help footer.
type ViewerModel struct {
	title    string
	subtitle string
	content  string
	viewport viewport.Model
	theme    *Theme
	ready    bool
	copied   bool
	width    int
	height   int
}

// NewViewer creates a viewer for content. The viewport is sized on the
// first WindowSizeMsg or by SetSize.
func NewViewer(title, subtitle, content string, theme *Theme) *ViewerModel {
	return &ViewerModel{
		title:    title,
		subtitle: subtitle,
		content:  content,
		theme:    theme,
	}
}

// SetSize initializes or resizes the viewport to the given dimensions.
func (m *ViewerModel) SetSize(width, height int) {
	m.width = width
	m.height = height
	vpHeight := max(1, height-viewerHeaderLines-viewerFooterLines)
	vpWidth := max(1, width-scrollbarWidth)
	if !m.ready {
		m.viewport = viewport.New(viewport.WithWidth(vpWidth), viewport.WithHeight(vpHeight))
		m.viewport.SetContent(m.content)
		m.ready = true
		return
	}
	m.viewport.SetWidth(vpWidth)
	m.viewport.SetHeight(vpHeight)
}

func (m *ViewerModel) Init() tea.Cmd {
	return nil
}

func (m *ViewerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case viewerCopiedMsg:
		m.copied = false
		return m, nil

	case tea.KeyPressMsg:
		switch msg.String() {
		case "q", keyCtrlC, "esc":
			return m, tea.Quit
		case "g":
			m.viewport.GotoTop()
			return m, nil
		case "G":
			m.viewport.GotoBottom()
			return m, nil
		case "y":
			m.copied = true
			return m, tea.Batch(
				tea.SetClipboard(m.content),
				tea.Tick(2*time.Second, func(time.Time) tea.Msg {
					return viewerCopiedMsg{}
				}),
			)
		}
	}

	if m.ready {
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *ViewerModel) View() tea.View {
	var b strings.Builder

	b.WriteString(m.theme.SectionBanner(m.title))
	b.WriteString("  ")
	b.WriteString(lipgloss.NewStyle().Foreground(m.theme.Muted).Render(m.subtitle))
	b.WriteString("\n")

	if m.ready {
		vpContent := m.viewport.View()
		totalLines := strings.Count(m.content, "\n") + 1
		vpHeight := m.viewport.Height()
		bar := renderScrollbar(vpHeight, totalLines, vpHeight, m.viewport.ScrollPercent(), m.theme)
		if bar != "" {
			b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, vpContent, " ", bar))
		} else {
			b.WriteString(vpContent)
		}
		b.WriteString("\n")
	}

	pct := int(m.viewport.ScrollPercent() * 100)
	var trail string
	if m.copied {
		trail = lipgloss.NewStyle().Foreground(m.theme.Success).Bold(true).Render("Copied!")
	} else {
		trail = m.theme.HelpKey.Render(fmt.Sprintf("%d", pct)) + "%"
	}
	help := fmt.Sprintf(
		"%s scroll  %s page  %s/%s top/bottom  %s copy  %s quit  %s",
		m.theme.HelpKey.Render("j/k"),
		m.theme.HelpKey.Render("pgup/pgdn"),
		m.theme.HelpKey.Render("g"),
		m.theme.HelpKey.Render("G"),
		m.theme.HelpKey.Render("y"),
		m.theme.HelpKey.Render("q"),
		trail,
	)
	b.WriteString(help)

	v := tea.NewView(b.String())
	v.AltScreen = true
	return v
}
