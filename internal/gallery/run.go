package gallery

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

// Run starts the interactive gallery on the alternate screen with mouse
// tracking and blocks until the user quits or ctx is cancelled.
func Run(ctx context.Context, m Model, opts ...tea.ProgramOption) error {
	base := []tea.ProgramOption{
		tea.WithContext(ctx),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	}
	p := tea.NewProgram(m, append(base, opts...)...)

	m.log.Info("gallery started")
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run gallery: %w", err)
	}
	m.log.Info("gallery stopped")
	return nil
}

// Render builds a model at the given width and returns its snapshot.
func Render(m Model, width int) string {
	next, _ := m.Update(tea.WindowSizeMsg{Width: width, Height: defaultHeight})
	return next.(Model).Snapshot()
}
