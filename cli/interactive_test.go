package cli

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pfeifer.dev/colprev/cereal"
	"pfeifer.dev/colprev/cereal/custom"
	ms "pfeifer.dev/colprev/settings"
)

func newTestModel(t *testing.T) (uiModel, *cereal.MemoryBus) {
	t.Helper()
	bus := cereal.NewMemoryBus()
	m, err := initialModel(bus)
	require.NoError(t, err)
	t.Cleanup(m.Close)
	m.list.SetSize(80, 40)
	m.settings.list.SetSize(80, 40)
	return m, bus
}

func readInputs(t *testing.T, bus *cereal.MemoryBus) []custom.CollisionPreventionIn {
	t.Helper()
	sub, err := cereal.NewSubscriber(bus, ms.COLLISION_PREVENTION_IN_TOPIC, cereal.CollisionPreventionInReader, false)
	require.NoError(t, err)
	var inputs []custom.CollisionPreventionIn
	for {
		input, success := sub.Read()
		if !success {
			return inputs
		}
		inputs = append(inputs, input)
	}
}

func enter() tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyEnter}
}

func selectSetting(t *testing.T, m *uiModel, title string) {
	t.Helper()
	for i, it := range m.settings.list.Items() {
		if it.(settingsItem).Title() == title {
			m.settings.list.Select(i)
			return
		}
	}
	t.Fatalf("no setting named %s", title)
}

func TestMainMenuOpensSettings(t *testing.T) {
	m, _ := newTestModel(t)

	updated, _ := m.Update(enter())
	assert.Equal(t, showSettings, updated.(uiModel).state)
}

func TestSettingsSendsFloatInput(t *testing.T) {
	m, bus := newTestModel(t)
	m.state = showSettings

	selectSetting(t, &m, "Collision Prevention Distance")
	m.settings, _ = m.settings.Update(enter(), &m)
	require.Equal(t, settingsInput, m.settings.state)

	m.settings.textInput.SetValue("1.5")
	m.settings, _ = m.settings.Update(enter(), &m)
	assert.Equal(t, showSettingsMenu, m.settings.state)

	inputs := readInputs(t, bus)
	require.Len(t, inputs, 1)
	assert.Equal(t, custom.CollisionPreventionInputType_setCollisionPreventionDistance, inputs[0].Type())
	assert.Equal(t, float32(1.5), inputs[0].Float())
}

func TestSettingsSendsStringInput(t *testing.T) {
	m, bus := newTestModel(t)

	selectSetting(t, &m, "Set Log Level")
	m.settings, _ = m.settings.Update(enter(), &m)
	m.settings.textInput.SetValue("debug")
	m.settings, _ = m.settings.Update(enter(), &m)

	inputs := readInputs(t, bus)
	require.Len(t, inputs, 1)
	str, err := inputs[0].Str()
	require.NoError(t, err)
	assert.Equal(t, "debug", str)
}

func TestSettingsRejectsInvalidFloat(t *testing.T) {
	m, bus := newTestModel(t)

	selectSetting(t, &m, "Staleness Window")
	m.settings, _ = m.settings.Update(enter(), &m)
	m.settings.textInput.SetValue("soon")
	m.settings, _ = m.settings.Update(enter(), &m)

	assert.Contains(t, m.settings.status, "not a number")
	assert.Empty(t, readInputs(t, bus))
}

func TestSettingsActions(t *testing.T) {
	m, bus := newTestModel(t)

	selectSetting(t, &m, "Save Settings")
	m.settings, _ = m.settings.Update(enter(), &m)
	selectSetting(t, &m, "Reload Settings")
	m.settings, _ = m.settings.Update(enter(), &m)

	inputs := readInputs(t, bus)
	require.Len(t, inputs, 2)
	assert.Equal(t, custom.CollisionPreventionInputType_saveSettings, inputs[0].Type())
	assert.Equal(t, custom.CollisionPreventionInputType_reloadSettings, inputs[1].Type())
}

func TestSettingsReturnToMenu(t *testing.T) {
	m, _ := newTestModel(t)
	m.state = showSettings

	selectSetting(t, &m, "Return to Main Menu")
	m.settings, _ = m.settings.Update(enter(), &m)
	assert.Equal(t, showMenu, m.state)
}

func TestOutputShowsConstraintsAndAlerts(t *testing.T) {
	m, bus := newTestModel(t)
	assert.Contains(t, m.output.View(), "waiting")

	pub := cereal.NewPublisher(bus, ms.COLLISION_CONSTRAINTS_TOPIC, cereal.CollisionConstraintsCreator)
	msg, out := pub.NewMessage(true)
	out.SetTimestamp(99)
	adapted, err := out.NewAdaptedSetpoint(2)
	require.NoError(t, err)
	adapted.Set(0, 0.5)
	adapted.Set(1, -1)
	require.NoError(t, pub.Send(msg))

	logPub := cereal.NewPublisher(bus, ms.LOG_MESSAGE_TOPIC, cereal.LogMessageCreator)
	logMsg, alert := logPub.NewMessage(true)
	require.NoError(t, alert.SetText("Collision Warning"))
	require.NoError(t, logPub.Send(logMsg))

	m.output, _ = m.output.Update(TickMsg{}, &m)
	view := m.output.View()
	assert.Contains(t, view, "timestamp: 99")
	assert.Contains(t, view, "adapted setpoint: 0.50, -1.00")
	assert.Contains(t, view, "original setpoint: -")
	assert.Contains(t, view, "Collision Warning")
}
