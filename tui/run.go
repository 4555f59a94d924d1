package tui

import (
	"fmt"
	"io"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/aouyang1/artgallery/gallery"
)

// Run shows the gallery in the terminal until the user quits. Logs go to
// logPath when set and are dropped otherwise so they never draw over the
// screen.
func Run(catalog *gallery.Catalog, logPath string) error {
	prev := slog.Default()
	defer slog.SetDefault(prev)

	if logPath != "" {
		f, err := tea.LogToFile(logPath, "artgallery")
		if err != nil {
			return fmt.Errorf("open tui log: %w", err)
		}
		defer f.Close()
		slog.SetDefault(slog.New(slog.NewTextHandler(f, nil)))
	} else {
		slog.SetDefault(slog.New(slog.NewTextHandler(io.Discard, nil)))
	}

	p := tea.NewProgram(New(catalog), tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run tui: %w", err)
	}
	slog.Info("tui exited")
	return nil
}
