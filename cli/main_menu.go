package cli

import (
	"time"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"pfeifer.dev/colprev/cereal"
	"pfeifer.dev/colprev/cereal/custom"
	"pfeifer.dev/colprev/cereal/log"
	ms "pfeifer.dev/colprev/settings"
)

type mainState int

const (
	showMenu mainState = iota
	showSettings
	showOutput
)

var docStyle = lipgloss.NewStyle().Margin(1, 2)
var alertStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)

type TickMsg time.Time

func tickEvery() tea.Cmd {
	return tea.Every(50*time.Millisecond, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

type uiModel struct {
	list     list.Model
	state    mainState
	settings settingsModel
	output   outputModel
	pub      *cereal.Publisher[custom.CollisionPreventionIn]
	sub      *cereal.Subscriber[custom.CollisionConstraints]
	logSub   *cereal.Subscriber[log.LogMessage]
}

type item struct {
	title, desc string
	state       mainState
}

func (i item) Title() string       { return i.title }
func (i item) Description() string { return i.desc }
func (i item) FilterValue() string { return i.title }

func initialModel(bus cereal.Bus) (uiModel, error) {
	items := []list.Item{
		item{title: "Settings", desc: "Modify settings of an active collision prevention instance", state: showSettings},
		item{title: "Watch", desc: "Watch the live constraints and warnings", state: showOutput},
	}

	sub, err := cereal.NewSubscriber(bus, ms.COLLISION_CONSTRAINTS_TOPIC, cereal.CollisionConstraintsReader, true)
	if err != nil {
		return uiModel{}, err
	}
	logSub, err := cereal.NewSubscriber(bus, ms.LOG_MESSAGE_TOPIC, cereal.LogMessageReader, false)
	if err != nil {
		sub.Close()
		return uiModel{}, err
	}

	listDelegate := list.NewDefaultDelegate()
	m := uiModel{
		list:     list.New(items, listDelegate, 0, 0),
		settings: getSettingsModel(),
		pub:      cereal.NewPublisher(bus, ms.COLLISION_PREVENTION_IN_TOPIC, cereal.CollisionPreventionInCreator),
		sub:      sub,
		logSub:   logSub,
	}
	m.list.Title = "Collision Prevention Actions"
	return m, nil
}

func (m uiModel) Close() {
	m.pub.Close()
	m.sub.Close()
	m.logSub.Close()
}

func (m uiModel) Init() tea.Cmd {
	return tickEvery()
}

func (m uiModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if msg.Type == tea.KeyEsc && m.state == showOutput {
			m.state = showMenu
			return m, nil
		}
		if msg.Type == tea.KeyEnter && m.state == showMenu && m.list.FilterState() != list.Filtering {
			it := m.list.SelectedItem().(item)
			m.state = it.state
			return m, nil
		}
	case tea.WindowSizeMsg:
		h, v := docStyle.GetFrameSize()
		m.list.SetSize(msg.Width-h, msg.Height-v)
		m.settings, _ = m.settings.Update(msg, &m)
		m.output, _ = m.output.Update(msg, &m)
	case TickMsg:
		m.output, _ = m.output.Update(msg, &m)
		return m, tickEvery()
	}

	var cmd tea.Cmd
	switch m.state {
	case showSettings:
		m.settings, cmd = m.settings.Update(msg, &m)
	case showOutput:
		m.output, cmd = m.output.Update(msg, &m)
	default:
		m.list, cmd = m.list.Update(msg)
	}
	return m, cmd
}

func (m uiModel) View() string {
	switch m.state {
	case showSettings:
		return m.settings.View()
	case showOutput:
		return m.output.View()
	}
	return docStyle.Render(m.list.View())
}
