// Package tui provides an interactive terminal user interface for editing the esomanifest configuration.
package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"gopkg.in/yaml.v3"

	"github.com/quantmind-br/esomanifest-go/internal/config"
	"github.com/quantmind-br/esomanifest-go/internal/theme"
)

type state int

const (
	stateMenu state = iota
	stateForm
	statePreview
	stateConfirm
	stateSaved
	stateError
)

type Model struct {
	state       state
	values      *ConfigValues
	path        string
	menuIndex   int
	currentForm *huh.Form
	err         error
	width       int
	height      int
	dirty       bool
	saveFunc    func(*config.Config) error
	accessible  bool
}

type Options struct {
	Config *config.Config
	// Path is shown in the header; SaveFunc decides where the file goes
	Path       string
	SaveFunc   func(*config.Config) error
	Accessible bool
}

func NewModel(opts Options) Model {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}

	return Model{
		state:      stateMenu,
		values:     FromConfig(cfg),
		path:       opts.Path,
		saveFunc:   opts.SaveFunc,
		accessible: opts.Accessible,
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if m.state == stateForm && m.currentForm != nil {
			return m.forwardToForm(msg)
		}
		return m, nil

	case tea.KeyMsg:
		switch m.state {
		case stateMenu:
			return m.updateMenu(msg)
		case stateForm:
			if msg.String() == "esc" {
				m.state = stateMenu
				return m, nil
			}
			return m.forwardToForm(msg)
		case statePreview:
			m.state = stateMenu
			return m, nil
		case stateConfirm:
			return m.updateConfirm(msg)
		case stateSaved, stateError:
			return m, tea.Quit
		}
	}

	if m.state == stateForm && m.currentForm != nil {
		return m.forwardToForm(msg)
	}

	return m, nil
}

func (m Model) forwardToForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := m.currentForm.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.currentForm = f
	}
	if m.currentForm.State == huh.StateCompleted {
		m.dirty = true
		m.state = stateMenu
		return m, nil
	}
	return m, cmd
}

func (m Model) updateMenu(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c", "esc":
		if m.dirty {
			m.state = stateConfirm
			return m, nil
		}
		return m, tea.Quit

	case "up", "k":
		if m.menuIndex > 0 {
			m.menuIndex--
		}

	case "down", "j":
		if m.menuIndex < len(Categories) {
			m.menuIndex++
		}

	case "enter":
		if m.menuIndex == len(Categories) {
			return m.handleSave()
		}
		form := GetFormForCategory(Categories[m.menuIndex].ID, m.values)
		if form == nil {
			return m, nil
		}
		if m.accessible {
			form = form.WithAccessible(true).WithTheme(theme.AccessibleForm())
		}
		m.currentForm = form
		m.state = stateForm
		return m, m.currentForm.Init()

	case "p":
		m.state = statePreview

	case "r":
		m.values = FromConfig(config.Default())
		m.dirty = true

	case "s":
		return m.handleSave()
	}

	return m, nil
}

func (m Model) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		return m.handleSave()
	case "n", "N", "esc":
		return m, tea.Quit
	case "c":
		m.state = stateMenu
	}
	return m, nil
}

func (m Model) handleSave() (tea.Model, tea.Cmd) {
	cfg, err := m.values.ToConfig()
	if err != nil {
		m.state = stateError
		m.err = err
		return m, nil
	}

	if m.saveFunc != nil {
		if err := m.saveFunc(cfg); err != nil {
			m.state = stateError
			m.err = err
			return m, nil
		}
	}

	m.state = stateSaved
	m.dirty = false
	return m, nil
}

func (m Model) View() string {
	var s strings.Builder

	s.WriteString(theme.Title.Render("esomanifest Configuration"))
	if m.path != "" {
		s.WriteString("\n")
		s.WriteString(theme.Label.Render(m.path))
	}
	s.WriteString("\n\n")

	switch m.state {
	case stateMenu:
		s.WriteString(m.renderMenu())
	case stateForm:
		if m.currentForm != nil {
			s.WriteString(m.currentForm.View())
		}
	case statePreview:
		s.WriteString(m.renderPreview())
	case stateConfirm:
		s.WriteString(m.renderConfirm())
	case stateSaved:
		s.WriteString(theme.OK.Render("Configuration saved successfully!"))
		s.WriteString("\n\nPress any key to exit.")
	case stateError:
		s.WriteString(theme.Error.Render(fmt.Sprintf("Error: %v", m.err)))
		s.WriteString("\n\nPress any key to exit.")
	}

	return s.String()
}

func (m Model) renderMenu() string {
	var s strings.Builder

	for i, cat := range Categories {
		cursor := "  "
		style := theme.Unselected
		if i == m.menuIndex {
			cursor = "> "
			style = theme.Selected
		}
		s.WriteString(style.Render(cursor + cat.Name))
		if i == m.menuIndex {
			s.WriteString(theme.Label.Render("  " + cat.Description))
		}
		s.WriteString("\n")
	}

	saveStyle := theme.Unselected
	saveCursor := "  "
	if m.menuIndex == len(Categories) {
		saveCursor = "> "
		saveStyle = theme.Selected
	}
	saveText := saveCursor + "Save Configuration"
	if m.dirty {
		saveText += " *"
	}
	s.WriteString("\n")
	s.WriteString(saveStyle.Render(saveText))
	s.WriteString("\n\n")

	s.WriteString(theme.Help.Render("↑/↓ navigate • enter select • p preview • r defaults • s save • q quit"))

	return s.String()
}

func (m Model) renderPreview() string {
	cfg, err := m.values.ToConfig()
	if err != nil {
		return theme.Error.Render(fmt.Sprintf("Error: %v", err))
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return theme.Error.Render(fmt.Sprintf("Error: %v", err))
	}
	return theme.Box.Render(strings.TrimRight(string(data), "\n")) + "\n" + theme.Help.Render("any key to return")
}

func (m Model) renderConfirm() string {
	return theme.Box.BorderForeground(theme.ColorWarn).Render("You have unsaved changes.\n\nSave before quitting?\n\n[y] Yes  [n] No  [c] Cancel")
}

func Run(opts Options) error {
	p := tea.NewProgram(NewModel(opts), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
