package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"pcagent/internal/relay"
)

const maxLogLines = 8

// Options configures the status dashboard.
type Options struct {
	RelayURL string
	Token    string
	AIName   string // empty when AI is disabled
	Events   <-chan relay.Event
	Credits  func() int // live credit balance
	OnQuit   func()     // stops the relay engine
}

type connState int

const (
	stateConnecting connState = iota
	stateConnected
	stateDisconnected
)

// Model is the dashboard shown while the agent runs in a terminal.
type Model struct {
	opts    Options
	spinner spinner.Model

	state connState
	phone bool
	log   []string

	width    int
	quitting bool
}

type relayEventMsg relay.Event

// NewModel builds the dashboard model.
func NewModel(opts Options) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = statusWarnStyle

	return Model{
		opts:    opts,
		spinner: sp,
		state:   stateConnecting,
	}
}

// Run blocks until the user quits the dashboard.
func Run(opts Options) error {
	_, err := tea.NewProgram(NewModel(opts), tea.WithAltScreen()).Run()
	return err
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.waitForEvent())
}

// waitForEvent delivers the next engine event as a message.
func (m Model) waitForEvent() tea.Cmd {
	return func() tea.Msg {
		ev, ok := <-m.opts.Events
		if !ok {
			return tea.Quit()
		}
		return relayEventMsg(ev)
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			m.quitting = true
			if m.opts.OnQuit != nil {
				m.opts.OnQuit()
			}
			return m, tea.Quit
		}
		return m, nil

	case relayEventMsg:
		m.apply(relay.Event(msg))
		return m, m.waitForEvent()

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
	return m, nil
}

// apply folds one engine event into the display state.
func (m *Model) apply(ev relay.Event) {
	switch ev.Kind {
	case relay.EventConnecting:
		m.state = stateConnecting
	case relay.EventConnected:
		m.state = stateConnected
		m.logLine("connected to relay")
	case relay.EventDisconnected:
		m.state = stateDisconnected
		m.phone = false
		m.logLine("disconnected, retrying")
	case relay.EventPhoneConnected:
		m.phone = true
		m.logLine("phone connected")
	case relay.EventPhoneDisconnected:
		m.phone = false
		m.logLine("phone disconnected")
	case relay.EventCommand:
		m.logLine("command: " + ev.Detail)
	}
}

func (m *Model) logLine(line string) {
	stamp := time.Now().Format("15:04:05")
	m.log = append(m.log, stamp+"  "+line)
	if len(m.log) > maxLogLines {
		m.log = m.log[len(m.log)-maxLogLines:]
	}
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("pcagent"))
	b.WriteString("\n\n")

	b.WriteString(labelStyle.Render("Relay    "))
	b.WriteString(valueStyle.Render(m.opts.RelayURL))
	b.WriteString("\n")

	b.WriteString(labelStyle.Render("Token    "))
	b.WriteString(valueStyle.Render(m.opts.Token))
	b.WriteString("\n")

	b.WriteString(labelStyle.Render("Status   "))
	switch m.state {
	case stateConnecting:
		b.WriteString(m.spinner.View() + statusWarnStyle.Render(" connecting"))
	case stateConnected:
		b.WriteString(statusOkStyle.Render("● connected"))
	case stateDisconnected:
		b.WriteString(statusErrStyle.Render("● disconnected"))
	}
	b.WriteString("\n")

	b.WriteString(labelStyle.Render("Phone    "))
	if m.phone {
		b.WriteString(statusOkStyle.Render("paired"))
	} else {
		b.WriteString(logStyle.Render("waiting"))
	}
	b.WriteString("\n")

	b.WriteString(labelStyle.Render("AI       "))
	if m.opts.AIName != "" {
		b.WriteString(valueStyle.Render(fmt.Sprintf("%s (%d credits)", m.opts.AIName, m.opts.Credits())))
	} else {
		b.WriteString(logStyle.Render("disabled"))
	}
	b.WriteString("\n\n")

	for _, line := range m.log {
		b.WriteString(logStyle.Render(line))
		b.WriteString("\n")
	}

	b.WriteString(helpStyle.Render("q: quit"))
	return appStyle.Render(b.String())
}
