// Package app wires configuration, the systemd gateway, and the UI
// together and runs the program. Both binary entrypoints call Run.
package app

import (
	"flag"
	"fmt"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"unitgrip/internal/config"
	"unitgrip/internal/marks"
	"unitgrip/internal/systemd"
	"unitgrip/internal/ui"
)

// minWidth is the narrowest terminal the list layout still fits in.
const minWidth = 80

func Run(args []string) error {
	fs := flag.NewFlagSet("unitgrip", flag.ContinueOnError)
	configPath := fs.String("config", "", "Path to config file (default ~/.config/unitgrip/config.toml)")
	marksPath := fs.String("marks", "", "Path to marks file (default ~/.config/unitgrip/marks.json)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	// Log to a file; stdout and stderr belong to the TUI
	logFile, err := os.OpenFile("unitgrip.log", os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		log.Printf("Could not open log file: %v", err)
	} else {
		defer logFile.Close()
		log.SetOutput(logFile)
	}

	if width, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && width < minWidth {
		return fmt.Errorf("terminal too narrow: %d columns, need at least %d", width, minWidth)
	}

	path := *configPath
	if path == "" {
		path = config.DefaultPath()
	}
	cfg := config.Load(path)

	var store *marks.Store
	if *marksPath != "" {
		store = marks.NewStoreAt(*marksPath)
	} else {
		store = marks.NewStore()
	}

	manager := systemd.NewManager(cfg.UnitType, cfg.UseSudo)

	m := ui.NewModel(cfg, manager, store)
	p := tea.NewProgram(m, tea.WithAltScreen())
	m.SetProgram(p)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running program: %w", err)
	}
	return nil
}
