package main

import (
	"fmt"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/salvatoreOm/empathic-code-reviewer/internal/config"
	"github.com/salvatoreOm/empathic-code-reviewer/internal/logger"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Printf("Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// The TUI owns the screen; route logs to a file so they never corrupt it.
	cfg.Log.Output = "file"
	log := logger.NewLogger(cfg.Log, nil)
	slog.SetDefault(log)

	p := tea.NewProgram(initialModel(cfg, log), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Error running program: %v\n", err)
		os.Exit(1)
	}
}
