// Package ui provides the interactive terminal view over a state store.
package ui

import (
	"context"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/nibzard/ticklist/internal/config"
	"github.com/nibzard/ticklist/internal/state"
)

// RunTUI starts the interactive view over a loaded store.
func RunTUI(ctx context.Context, cfg *config.Config, store *state.Store) error {
	if !IsTTY(os.Stdout) {
		return fmt.Errorf("tui requires a TTY")
	}
	return runProgram(ctx, NewModel(store, cfg.NotifyDelay()))
}

func runProgram(ctx context.Context, model *Model) error {
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	finalModel, err := program.Run()
	if err != nil {
		return err
	}
	if m, ok := finalModel.(*Model); ok {
		if err := m.store.Err(); err != nil {
			return fmt.Errorf("last save failed: %w", err)
		}
	}
	return nil
}

// IsTTY returns true if w is a terminal.
func IsTTY(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	info, err := f.Stat()
	if err != nil {
		return false
	}
	return (info.Mode() & os.ModeCharDevice) != 0
}
