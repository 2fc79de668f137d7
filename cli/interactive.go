package cli

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"pfeifer.dev/colprev/cereal"
)

func interactive() {
	model, err := initialModel(cereal.MsgqBus{})
	if err != nil {
		fmt.Printf("Could not connect to collision prevention: %v\n", err)
		os.Exit(1)
	}
	defer model.Close()

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Alas, there's been an error: %v", err)
		os.Exit(1)
	}
}
