package ui

import (
	tea "github.com/charmbracelet/bubbletea"
)

type state int

const (
	stateLogin state = iota
	stateUsers
	stateLogs
)

type RootModel struct {
	State    state
	Client   *Client
	Login    LoginModel
	Users    UsersModel
	Logs     LogsModel
	Quitting bool
	width    int
	height   int
}

func NewRootModel(baseURL string) RootModel {
	c := NewClient(baseURL)
	return RootModel{
		State:  stateLogin,
		Client: c,
		Login:  NewLoginModel(c),
	}
}

func (m RootModel) Init() tea.Cmd {
	return m.Login.Init()
}

func (m RootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.Users.Table.SetHeight(msg.Height - 10)
		m.Logs.Table.SetHeight(msg.Height - 10)

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			m.Quitting = true
			return m, tea.Quit
		}
	}

	switch m.State {
	case stateLogin:
		if _, ok := msg.(loginOKMsg); ok {
			m.State = stateUsers
			m.Users = NewUsersModel(m.Client, m.width, m.height)
			return m, m.Users.Init()
		}
		newLogin, cmd := m.Login.Update(msg)
		m.Login = newLogin
		cmds = append(cmds, cmd)

	case stateUsers:
		if _, ok := msg.(ShowLogsMsg); ok {
			m.State = stateLogs
			m.Logs = NewLogsModel(m.Client, m.width, m.height)
			return m, m.Logs.Init()
		}
		newUsers, cmd := m.Users.Update(msg)
		m.Users = newUsers
		cmds = append(cmds, cmd)

	case stateLogs:
		if _, ok := msg.(BackToUsersMsg); ok {
			m.State = stateUsers
			return m, m.Users.Init()
		}
		newLogs, cmd := m.Logs.Update(msg)
		m.Logs = newLogs
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

func (m RootModel) View() string {
	if m.Quitting {
		return "Bye!\n"
	}
	switch m.State {
	case stateLogin:
		return m.Login.View()
	case stateUsers:
		return m.Users.View()
	case stateLogs:
		return m.Logs.View()
	}
	return "Unknown state"
}
