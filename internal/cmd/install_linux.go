//go:build linux

package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
)

const (
	unitName = "hidbridge.service"
	unitDir  = "/etc/systemd/system"
)

var errNotRoot = errors.New("installing the service requires root")

func install(logger *slog.Logger, args []string) error {
	if os.Geteuid() != 0 {
		return errNotRoot
	}
	exe, err := currentExecutable()
	if err != nil {
		return err
	}
	path := filepath.Join(unitDir, unitName)
	if err := os.WriteFile(path, []byte(renderUnit(exe, args)), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := systemctl("daemon-reload"); err != nil {
		return err
	}
	// enable --now starts it; restart picks up a changed unit on reinstall.
	if err := systemctl("enable", "--now", unitName); err != nil {
		return err
	}
	if err := systemctl("restart", unitName); err != nil {
		return err
	}
	logger.Info("Service installed", "unit", path, "exe", exe, "args", args)
	return nil
}

func uninstall(logger *slog.Logger) error {
	if os.Geteuid() != 0 {
		return errNotRoot
	}
	path := filepath.Join(unitDir, unitName)
	// Stopping a unit that was never started is not an error worth failing on.
	if err := systemctl("disable", "--now", unitName); err != nil {
		logger.Warn("Failed to stop service", "error", err)
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove %s: %w", path, err)
	}
	if err := systemctl("daemon-reload"); err != nil {
		return err
	}
	logger.Info("Service removed", "unit", path)
	return nil
}

func systemctl(args ...string) error {
	out, err := exec.Command("systemctl", args...).CombinedOutput()
	if err != nil {
		return fmt.Errorf("systemctl %s: %w: %s", strings.Join(args, " "), err, strings.TrimSpace(string(out)))
	}
	return nil
}

// renderUnit builds the systemd unit. The bridge treats every fatal fault as
// a process exit, so the unit restarts it whatever the exit status. It binds
// port 80 and opens /dev/hidg* and /dev/uhid, and waits for configfs so a
// gadget set up at boot exists before the first open.
func renderUnit(exe string, args []string) string {
	cmdline := []string{strconv.Quote(exe), "serve"}
	for _, a := range args {
		cmdline = append(cmdline, strconv.Quote(a))
	}

	var b strings.Builder
	b.WriteString("[Unit]\n")
	b.WriteString("Description=hidbridge network keyboard and mouse bridge\n")
	b.WriteString("Wants=network-online.target\n")
	b.WriteString("After=network-online.target sys-kernel-config.mount\n\n")
	b.WriteString("[Service]\n")
	b.WriteString("Type=simple\n")
	fmt.Fprintf(&b, "ExecStart=%s\n", strings.Join(cmdline, " "))
	fmt.Fprintf(&b, "WorkingDirectory=%s\n", filepath.Dir(exe))
	b.WriteString("Restart=always\n")
	b.WriteString("RestartSec=2\n")
	b.WriteString("AmbientCapabilities=CAP_NET_BIND_SERVICE\n\n")
	b.WriteString("[Install]\n")
	b.WriteString("WantedBy=multi-user.target\n")
	return b.String()
}
