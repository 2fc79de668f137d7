package cli

import (
	"fmt"
	"strings"

	"capnproto.org/go/capnp/v3"
	tea "github.com/charmbracelet/bubbletea"

	"pfeifer.dev/colprev/cereal/custom"
)

const maxAlerts = 5

type outputModel struct {
	output custom.CollisionConstraints
	valid  bool
	alerts []string
}

func (m outputModel) Update(msg tea.Msg, mm *uiModel) (outputModel, tea.Cmd) {
	out, success := mm.sub.Read()
	if success {
		m.valid = true
		m.output = out
	}

	for {
		alert, success := mm.logSub.Read()
		if !success {
			break
		}
		text, err := alert.Text()
		if err != nil {
			continue
		}
		m.alerts = append(m.alerts, text)
		if len(m.alerts) > maxAlerts {
			m.alerts = m.alerts[len(m.alerts)-maxAlerts:]
		}
	}

	return m, nil
}

func formatPair(get func() (capnp.Float32List, error)) string {
	list, err := get()
	if err != nil || list.Len() < 2 {
		return "-"
	}
	return fmt.Sprintf("%.2f, %.2f", list.At(0), list.At(1))
}

func (m outputModel) View() string {
	if !m.valid {
		return docStyle.Render("waiting for collision constraints... (esc to return)\n")
	}
	var alerts strings.Builder
	for _, alert := range m.alerts {
		alerts.WriteString(alertStyle.Render(alert))
		alerts.WriteString("\n")
	}
	return docStyle.Render(fmt.Sprintf(
		"timestamp: %d\nnormalized x (neg, pos): %s\nnormalized y (neg, pos): %s\noriginal setpoint: %s\nadapted setpoint: %s\n\n%s",
		m.output.Timestamp(),
		formatPair(m.output.ConstraintsNormalizedX),
		formatPair(m.output.ConstraintsNormalizedY),
		formatPair(m.output.OriginalSetpoint),
		formatPair(m.output.AdaptedSetpoint),
		alerts.String(),
	) + "\n")
}
