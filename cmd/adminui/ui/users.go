package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type usersLoadedMsg []User

type actionDoneMsg string

type UsersModel struct {
	Client *Client
	Table  table.Model
	Users  []User
	Status string
	Err    error
}

func NewUsersModel(c *Client, width, height int) UsersModel {
	columns := []table.Column{
		{Title: "ID", Width: 6},
		{Title: "Name", Width: 24},
		{Title: "Email", Width: 30},
		{Title: "Role", Width: 10},
		{Title: "Active", Width: 8},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(height-10),
	)

	sStyle := table.DefaultStyles()
	sStyle.Header = sStyle.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(false)
	sStyle.Selected = sStyle.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(sStyle)

	return UsersModel{Client: c, Table: t}
}

func (m UsersModel) Init() tea.Cmd {
	return m.refreshCmd
}

func (m UsersModel) refreshCmd() tea.Msg {
	users, err := m.Client.ListUsers()
	if err != nil {
		return errMsg(err)
	}
	return usersLoadedMsg(users)
}

func (m UsersModel) selectedID() (uint, bool) {
	row := m.Table.SelectedRow()
	if len(row) == 0 {
		return 0, false
	}
	id, err := strconv.ParseUint(row[0], 10, 32)
	if err != nil {
		return 0, false
	}
	return uint(id), true
}

func (m UsersModel) actionCmd(verb string, call func(uint) error) tea.Cmd {
	id, ok := m.selectedID()
	if !ok {
		return nil
	}
	return func() tea.Msg {
		if err := call(id); err != nil {
			return errMsg(err)
		}
		return actionDoneMsg(fmt.Sprintf("%s user %d", verb, id))
	}
}

func (m UsersModel) Update(msg tea.Msg) (UsersModel, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "r":
			return m, m.refreshCmd
		case "p":
			return m, m.actionCmd("promoted", m.Client.Promote)
		case "d":
			return m, m.actionCmd("demoted", m.Client.Demote)
		case "b":
			return m, m.actionCmd("toggled", m.Client.ToggleStatus)
		case "x":
			return m, m.actionCmd("deleted", m.Client.DeleteUser)
		case "l":
			return m, func() tea.Msg { return ShowLogsMsg{} }
		case "q":
			return m, tea.Quit
		}

	case usersLoadedMsg:
		m.Users = msg
		m.Err = nil
		rows := make([]table.Row, 0, len(m.Users))
		for _, u := range m.Users {
			active := "yes"
			if !u.IsActive {
				active = "banned"
			}
			rows = append(rows, table.Row{strconv.FormatUint(uint64(u.ID), 10), u.FullName, u.Email, u.Role, active})
		}
		m.Table.SetRows(rows)

	case actionDoneMsg:
		m.Status = string(msg)
		m.Err = nil
		return m, m.refreshCmd

	case errMsg:
		m.Err = msg
	}

	m.Table, cmd = m.Table.Update(msg)
	return m, cmd
}

func (m UsersModel) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Users") + "\n\n")
	b.WriteString(m.Table.View())
	b.WriteString("\n\n")
	b.WriteString(blurredStyle.Render("r refresh · p promote · d demote · b ban/unban · x delete · l logs · q quit"))

	if m.Status != "" {
		b.WriteString("\n" + statusMessageStyle(m.Status))
	}
	if m.Err != nil {
		b.WriteString("\n" + errorMessageStyle(m.Err.Error()))
	}
	return b.String()
}
