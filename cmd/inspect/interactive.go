package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/wippyai/choice/interop"
	"github.com/wippyai/choice/layout"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	shapeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	typeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4"))

	nichedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#90EE90"))

	taggedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFD580"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

type interactiveModel struct {
	calc     *layout.Calculator
	filter   textinput.Model
	visible  []shapeEntry
	selected int
}

func newInteractiveModel() *interactiveModel {
	filter := textinput.New()
	filter.Placeholder = "filter shapes"
	filter.Focus()

	return &interactiveModel{
		calc:    layout.NewCalculator(),
		filter:  filter,
		visible: shapes,
	}
}

func (m *interactiveModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *interactiveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyUp:
			if m.selected > 0 {
				m.selected--
			}
			return m, nil
		case tea.KeyDown:
			if m.selected < len(m.visible)-1 {
				m.selected++
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.filter, cmd = m.filter.Update(msg)
	m.refilter()
	return m, cmd
}

func (m *interactiveModel) refilter() {
	query := strings.ToLower(m.filter.Value())
	m.visible = nil
	for _, s := range shapes {
		if query == "" || strings.Contains(s.name, query) || strings.Contains(s.desc, query) {
			m.visible = append(m.visible, s)
		}
	}
	if m.selected >= len(m.visible) {
		m.selected = max(len(m.visible)-1, 0)
	}
}

func (m *interactiveModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("choice layout inspector"))
	b.WriteString("\n\n")
	b.WriteString(m.filter.View())
	b.WriteString("\n\n")

	for i, s := range m.visible {
		line := fmt.Sprintf("%-14s %s", s.name, s.desc)
		if i == m.selected {
			b.WriteString(selectedStyle.Render("> " + line))
		} else {
			b.WriteString("  " + shapeStyle.Render(s.name) + line[len(s.name):])
		}
		b.WriteByte('\n')
	}

	if len(m.visible) > 0 {
		b.WriteByte('\n')
		b.WriteString(m.detail(m.visible[m.selected]))
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("↑/↓ select · type to filter · esc to quit"))
	return b.String()
}

func (m *interactiveModel) detail(s shapeEntry) string {
	info := m.calc.Calculate(s.shape)

	decision := taggedStyle.Render(info.Decision.String())
	if info.Decision.Niched() {
		decision = nichedStyle.Render(info.Decision.String())
	}

	var b strings.Builder
	b.WriteString(typeStyle.Render(s.shape.String()))
	b.WriteByte('\n')
	fmt.Fprintf(&b, "decision: %s  size: %d  align: %d", decision, info.Size, info.Align)
	if !info.Decision.Niched() {
		fmt.Fprintf(&b, "  disc: %dB @0  payload: @%d", info.DiscSize, info.PayloadOffset)
	}
	b.WriteByte('\n')

	if td, err := interop.WitShape(s.shape); err == nil {
		b.WriteString("wit: " + typeStyle.Render(interop.Render(td)))
	} else {
		b.WriteString(helpStyle.Render("wit: no analogue"))
	}
	return b.String()
}

func runInteractive() error {
	p := tea.NewProgram(newInteractiveModel(), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
