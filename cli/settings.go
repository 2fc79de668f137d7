package cli

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/pkg/errors"

	"pfeifer.dev/colprev/cereal/custom"
)

type SettingType int

const (
	String SettingType = iota
	Float
	Action
)

type settingsState int

const (
	showSettingsMenu settingsState = iota
	settingsExit
	settingsInput
	settingsAction
)

type settingsItem struct {
	title, desc string
	state       settingsState
	MessageType custom.CollisionPreventionInputType
	Type        SettingType
}

func (i settingsItem) Title() string       { return i.title }
func (i settingsItem) Description() string { return i.desc }
func (i settingsItem) FilterValue() string { return i.title }

type settingsModel struct {
	list         list.Model
	state        settingsState
	textInput    textinput.Model
	selectedItem settingsItem
	prompt       string
	status       string
}

// sendInput publishes one runtime input. fill sets the payload.
func sendInput(mm *uiModel, inputType custom.CollisionPreventionInputType, fill func(custom.CollisionPreventionIn) error) error {
	msg, input := mm.pub.NewMessage(true)
	input.SetType(inputType)
	if fill != nil {
		if err := fill(input); err != nil {
			return errors.Wrap(err, "could not fill input")
		}
	}
	return mm.pub.Send(msg)
}

func parseInput(item settingsItem, value string) (func(custom.CollisionPreventionIn) error, error) {
	switch item.Type {
	case String:
		return func(input custom.CollisionPreventionIn) error {
			return input.SetStr(value)
		}, nil
	case Float:
		val, err := strconv.ParseFloat(value, 32)
		if err != nil {
			return nil, errors.Wrapf(err, "%q is not a number", value)
		}
		return func(input custom.CollisionPreventionIn) error {
			input.SetFloat(float32(val))
			return nil
		}, nil
	}
	return nil, nil
}

func (m settingsModel) Update(msg tea.Msg, mm *uiModel) (settingsModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.Type == tea.KeyEnter && m.state == showSettingsMenu {
			it := m.list.SelectedItem().(settingsItem)
			m.selectedItem = it
			m.state = it.state
			m.status = ""
			switch m.state {
			case settingsExit:
				m.state = showSettingsMenu
				mm.state = showMenu
			case settingsInput:
				m.prompt = m.selectedItem.Title()
				m.textInput.SetValue("")
				m.textInput.Focus()
				return m, textinput.Blink
			case settingsAction:
				m.state = showSettingsMenu
				err := sendInput(mm, it.MessageType, nil)
				if err != nil {
					m.status = err.Error()
				} else {
					m.status = fmt.Sprintf("sent %s", it.MessageType.String())
				}
			}
			return m, nil
		}
		if msg.Type == tea.KeyEsc && m.state == settingsInput {
			m.state = showSettingsMenu
			m.textInput.Blur()
			return m, nil
		}
		if msg.Type == tea.KeyEnter && m.state == settingsInput {
			m.state = showSettingsMenu
			m.textInput.Blur()

			fill, err := parseInput(m.selectedItem, m.textInput.Value())
			if err == nil {
				err = sendInput(mm, m.selectedItem.MessageType, fill)
			}
			if err != nil {
				m.status = err.Error()
			} else {
				m.status = fmt.Sprintf("sent %s = %s", m.selectedItem.MessageType.String(), m.textInput.Value())
			}
			return m, nil
		}
	case tea.WindowSizeMsg:
		h, v := docStyle.GetFrameSize()
		m.list.SetSize(msg.Width-h, msg.Height-v-1)
	}

	var cmd tea.Cmd
	if m.state == settingsInput {
		m.textInput, cmd = m.textInput.Update(msg)
		return m, cmd
	}
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m settingsModel) View() string {
	switch m.state {
	case settingsInput:
		return docStyle.Render(fmt.Sprintf(
			"%s\n\n%s\n\n%s",
			m.prompt,
			m.textInput.View(),
			"(esc to cancel)",
		) + "\n")
	default:
		return docStyle.Render(m.list.View() + "\n" + m.status)
	}
}

func getSettingsModel() settingsModel {
	items := []list.Item{
		settingsItem{
			title:       "Collision Prevention Distance",
			desc:        "Minimum distance in meters kept to obstacles, a value <= 0 disables collision prevention",
			MessageType: custom.CollisionPreventionInputType_setCollisionPreventionDistance,
			Type:        Float,
			state:       settingsInput,
		},
		settingsItem{
			title:       "Staleness Window",
			desc:        "Ranging data older than this many milliseconds is ignored",
			MessageType: custom.CollisionPreventionInputType_setStalenessWindow,
			Type:        Float,
			state:       settingsInput,
		},
		settingsItem{
			title:       "Interference Threshold",
			desc:        "Fraction of max speed the setpoint may be changed before a collision warning",
			MessageType: custom.CollisionPreventionInputType_setInterferenceThreshold,
			Type:        Float,
			state:       settingsInput,
		},
		settingsItem{
			title:       "Warning Throttle Interval",
			desc:        "Minimum milliseconds between no range data warnings",
			MessageType: custom.CollisionPreventionInputType_setWarningThrottleInterval,
			Type:        Float,
			state:       settingsInput,
		},
		settingsItem{
			title:       "Set Log Level",
			desc:        "Modify how verbose logging will be for the collision prevention system",
			MessageType: custom.CollisionPreventionInputType_setLogLevel,
			Type:        String,
			state:       settingsInput,
		},
		settingsItem{
			title:       "Reload Settings",
			desc:        "Discard runtime changes and reload the persisted settings",
			MessageType: custom.CollisionPreventionInputType_reloadSettings,
			Type:        Action,
			state:       settingsAction,
		},
		settingsItem{
			title:       "Load Default Settings",
			desc:        "Reset every setting to its default, collision prevention becomes disabled",
			MessageType: custom.CollisionPreventionInputType_loadDefaultSettings,
			Type:        Action,
			state:       settingsAction,
		},
		settingsItem{
			title:       "Save Settings",
			desc:        "Persists any updates to the settings across reboots",
			MessageType: custom.CollisionPreventionInputType_saveSettings,
			Type:        Action,
			state:       settingsAction,
		},
		settingsItem{
			title: "Return to Main Menu",
			desc:  "Exit settings configuration and return to the initial actions menu",
			state: settingsExit,
		},
	}

	listDelegate := list.NewDefaultDelegate()
	ti := textinput.New()
	ti.Placeholder = "value"
	m := settingsModel{list: list.New(items, listDelegate, 0, 0), textInput: ti}
	m.list.Title = "Collision Prevention Settings"
	return m
}
