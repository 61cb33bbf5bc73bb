package ui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type logsLoadedMsg []LogEntry

// ShowLogsMsg switches the root model to the audit-log view.
type ShowLogsMsg struct{}

// BackToUsersMsg switches back to the user table.
type BackToUsersMsg struct{}

type LogsModel struct {
	Client *Client
	Table  table.Model
	Err    error
}

func NewLogsModel(c *Client, width, height int) LogsModel {
	columns := []table.Column{
		{Title: "Time", Width: 20},
		{Title: "Admin", Width: 26},
		{Title: "Action", Width: 20},
		{Title: "Target", Width: 10},
		{Title: "IP", Width: 16},
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

	return LogsModel{Client: c, Table: t}
}

func (m LogsModel) Init() tea.Cmd {
	return m.refreshCmd
}

func (m LogsModel) refreshCmd() tea.Msg {
	logs, err := m.Client.Logs(50)
	if err != nil {
		return errMsg(err)
	}
	return logsLoadedMsg(logs)
}

func (m LogsModel) Update(msg tea.Msg) (LogsModel, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "r":
			return m, m.refreshCmd
		case "esc":
			return m, func() tea.Msg { return BackToUsersMsg{} }
		case "q":
			return m, tea.Quit
		}

	case logsLoadedMsg:
		m.Err = nil
		rows := make([]table.Row, 0, len(msg))
		for _, l := range msg {
			target := ""
			if l.TargetUserID != nil {
				target = "u" + strconv.FormatUint(uint64(*l.TargetUserID), 10)
			} else if l.TargetItemID != nil {
				target = "i" + strconv.FormatUint(uint64(*l.TargetItemID), 10)
			}
			ts := l.CreatedAt
			if len(ts) > 19 {
				ts = ts[:19]
			}
			rows = append(rows, table.Row{ts, l.AdminName, l.Action, target, l.IPAddress})
		}
		m.Table.SetRows(rows)

	case errMsg:
		m.Err = msg
	}

	m.Table, cmd = m.Table.Update(msg)
	return m, cmd
}

func (m LogsModel) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Audit Log") + "\n\n")
	b.WriteString(m.Table.View())
	b.WriteString("\n\n")
	b.WriteString(blurredStyle.Render("r refresh · esc back · q quit"))

	if m.Err != nil {
		b.WriteString("\n" + errorMessageStyle(m.Err.Error()))
	}
	return b.String()
}
