package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/LukeFitzGit/MyGymLog/internal/storage"
	"github.com/LukeFitzGit/MyGymLog/internal/workout"
)

// RunLogTUI starts the interactive daily log screen
func RunLogTUI(kv storage.KV) error {
	store := workout.NewStore()
	model := NewLogModel(store, kv)

	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
