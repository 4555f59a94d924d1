// Package tui hosts the gallery screen in a terminal.
package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/aouyang1/artgallery/gallery"
	"github.com/aouyang1/artgallery/render"
)

const (
	defaultWidth = 64
	buttonGap    = 2
	framePadding = 2
)

var (
	colorBorder  = lipgloss.Color("#7f849c")
	colorFocus   = lipgloss.Color("#89b4fa")
	colorMuted   = lipgloss.Color("#a6adc8")
	colorText    = lipgloss.Color("#cdd6f4")
	frameStyle   = lipgloss.NewStyle().Border(lipgloss.ThickBorder()).BorderForeground(colorBorder).Padding(1, framePadding)
	captionStyle = lipgloss.NewStyle().Border(lipgloss.NormalBorder()).BorderForeground(colorMuted).Padding(0, 1)
	titleStyle   = lipgloss.NewStyle().Foreground(colorText)
	creatorStyle = lipgloss.NewStyle().Bold(true)
	buttonStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(colorBorder).Align(lipgloss.Center)
	focusStyle   = buttonStyle.BorderForeground(colorFocus).Foreground(colorFocus).Bold(true)
)

// Model is a bubbletea model owning one activated screen.
type Model struct {
	screen *gallery.Screen
	view   render.View
	focus  int

	width  int
	height int
}

func New(catalog *gallery.Catalog) Model {
	screen := gallery.NewScreen(catalog)
	return Model{
		screen: screen,
		view:   render.Current(screen),
		focus:  1,
		width:  defaultWidth,
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

// Current returns what the screen shows right now.
func (m Model) Current() render.View {
	return m.view
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = max(msg.Width, 20)
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyTab, tea.KeyShiftTab, tea.KeyLeft, tea.KeyRight:
			m.focus = 1 - m.focus
		case tea.KeyEnter, tea.KeySpace:
			m.activate(m.view.Controls[m.focus].Action)
		case tea.KeyRunes:
			if string(msg.Runes) == "q" {
				return m, tea.Quit
			}
		}
		return m, nil

	case tea.MouseMsg:
		if msg.Action != tea.MouseActionRelease || msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		if control, ok := m.controlAt(msg.X, msg.Y); ok {
			m.focus = control
			m.activate(m.view.Controls[control].Action)
		}
		return m, nil
	}
	return m, nil
}

func (m *Model) activate(action render.Action) {
	switch action {
	case render.ActionNext:
		m.view = render.Build(m.screen.Next())
	case render.ActionPrevious:
		m.view = render.Build(m.screen.Previous())
	}
}

func (m Model) buttonWidth() int {
	// borders take two columns per button
	return (m.width-buttonGap)/2 - 2
}

// scrolled is how many lines of View the terminal cuts off at the top when
// the view is taller than the window.
func (m Model) scrolled() int {
	if m.height <= 0 {
		return 0
	}
	return max(0, lipgloss.Height(m.View())-m.height)
}

// controlAt maps a click in window coordinates to the control under it.
func (m Model) controlAt(x, y int) (int, bool) {
	y += m.scrolled()
	top := lipgloss.Height(m.body())
	bottom := top + lipgloss.Height(m.navRow())
	if y < top || y >= bottom {
		return 0, false
	}
	half := m.buttonWidth() + 2
	switch {
	case x < half:
		return 0, true
	case x >= half+buttonGap:
		return 1, true
	}
	return 0, false
}

func (m Model) body() string {
	inner := m.width - 2*framePadding - 2
	image := lipgloss.JoinVertical(lipgloss.Center,
		lipgloss.NewStyle().Foreground(colorMuted).Render("[ "+m.view.Image+" ]"),
		"",
		lipgloss.NewStyle().Width(inner).Align(lipgloss.Center).Render(m.view.ImageAlt),
	)
	frame := frameStyle.Width(m.width - 2).Render(image)

	caption := captionStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render(m.view.Title),
		creatorStyle.Render(m.view.Creator)+m.view.DateSuffix(),
	))
	status := lipgloss.NewStyle().Foreground(colorMuted).
		Render(fmt.Sprintf("%d / %d", m.view.Selection, m.view.Total))

	return lipgloss.JoinVertical(lipgloss.Center,
		frame,
		"",
		caption,
		status,
		"",
	)
}

func (m Model) navRow() string {
	w := m.buttonWidth()
	buttons := make([]string, len(m.view.Controls))
	for i, c := range m.view.Controls {
		style := buttonStyle
		if i == m.focus {
			style = focusStyle
		}
		buttons[i] = style.Width(w).Render(c.Label)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, buttons[0], strings.Repeat(" ", buttonGap), buttons[1])
}

func (m Model) View() string {
	return m.body() + "\n" + m.navRow()
}
