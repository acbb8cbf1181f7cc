package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
)

func main() {
	theme := flag.String("theme", "", "Markdown preview theme: auto, light, or dark")
	left := flag.String("left", "", "Directory shown on the left side")
	right := flag.String("right", "", "Directory shown on the right side")
	flag.Parse()

	configDir := resolveConfigDir()
	cfg, configPath, err := loadUIConfig(configDir)
	if err != nil {
		fmt.Fprintln(os.Stderr, "warning:", err)
	} else if _, statErr := os.Stat(configPath); os.IsNotExist(statErr) {
		if err := saveUIConfig(cfg, configPath); err != nil {
			fmt.Fprintln(os.Stderr, "warning:", err)
		}
	}
	if *theme != "" {
		cfg.Theme = markdownThemeFromString(*theme).String()
	}
	if *left != "" {
		cfg.StartLeft = *left
	}
	if *right != "" {
		cfg.StartRight = *right
	}

	events := newEventLogger(filepath.Join(configDir, eventsFileName), newSessionID())
	events.Emit(appEvent{Event: "startup", Extra: map[string]string{"config": configPath}})

	if _, err := tea.NewProgram(
		newModel(cfg, events),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	).Run(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
