package main

import (
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/inkline/field"
)

var (
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	borderStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

type model struct {
	name     field.Model
	password field.Model
	focused  int

	submitted []string
}

func newModel() model {
	name := field.New(field.Config{
		Placeholder: "your name",
		Width:       30,
		Style:       field.DefaultStyle(),
	})
	password := field.New(field.Config{
		Placeholder: "password",
		Masked:      true,
		Width:       30,
		Style:       field.DefaultStyle(),
	})
	return model{name: name, password: password}
}

func (m model) Init() tea.Cmd {
	var cmd tea.Cmd
	m.name, cmd = m.name.Focus()
	return cmd
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+q":
			return m, tea.Quit
		case "tab":
			return m.cycleFocus()
		}
	case field.ChangeEvent:
		m.submitted = append(m.submitted, msg.Value)
	}

	var cmds []tea.Cmd
	var cmd tea.Cmd
	m.name, cmd = m.name.Update(msg)
	cmds = append(cmds, cmd)
	m.password, cmd = m.password.Update(msg)
	cmds = append(cmds, cmd)
	return m, tea.Batch(cmds...)
}

func (m model) cycleFocus() (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	var cmd tea.Cmd
	if m.focused == 0 {
		m.name, cmd = m.name.Blur()
		cmds = append(cmds, cmd)
		m.password, cmd = m.password.Focus()
		cmds = append(cmds, cmd)
		m.focused = 1
	} else {
		m.password, cmd = m.password.Blur()
		cmds = append(cmds, cmd)
		m.name, cmd = m.name.Focus()
		cmds = append(cmds, cmd)
		m.focused = 0
	}
	return m, tea.Batch(cmds...)
}

func (m model) View() string {
	status := "tab switches fields, enter commits, ctrl+q quits"
	if n := len(m.submitted); n > 0 {
		status = "last committed: " + m.submitted[n-1]
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		labelStyle.Render("Name"),
		borderStyle.Render(m.name.View()),
		labelStyle.Render("Password"),
		borderStyle.Render(m.password.View()),
		statusStyle.Render(status),
	)
}

func main() {
	p := tea.NewProgram(newModel(), tea.WithMouseAllMotion())
	if _, err := p.Run(); err != nil {
		_, _ = os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}
}
