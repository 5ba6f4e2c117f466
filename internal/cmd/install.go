package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
)

// Install registers hidbridge as a system service that restarts on failure.
type Install struct {
	Args []string `arg:"" optional:"" help:"Extra arguments for the serve command in the unit file"`
}

// Uninstall removes the system service.
type Uninstall struct{}

func (i *Install) Run(logger *slog.Logger) error   { return install(logger, i.Args) }
func (u *Uninstall) Run(logger *slog.Logger) error { return uninstall(logger) }

func currentExecutable() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("locate executable: %w", err)
	}
	resolved, err := filepath.EvalSymlinks(exe)
	if err != nil {
		return exe, nil
	}
	return resolved, nil
}
