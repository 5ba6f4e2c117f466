// Package config defines the command-line interface. Every flag can also come
// from a JSON, YAML or TOML configuration file or from HIDBRIDGE_* variables.
package config

import (
	"github.com/alecthomas/kong"

	"github.com/Alia5/hidbridge/internal/cmd"
	"github.com/Alia5/hidbridge/internal/log"
)

// CLI is the root kong command tree.
type CLI struct {
	ConfigFile string           `name:"config" help:"Configuration file (json, yaml or toml)" type:"path" env:"HIDBRIDGE_CONFIG"`
	Version    kong.VersionFlag `help:"Print the version and exit"`
	Log        log.Config       `embed:"" prefix:"log."`

	Serve     cmd.Serve         `cmd:"" default:"withargs" help:"Run the HID bridge"`
	Config    cmd.ConfigCommand `cmd:"" help:"Configuration helpers"`
	Keys      cmd.Keys          `cmd:"" help:"List key names accepted by PRESS commands"`
	Install   cmd.Install       `cmd:"" help:"Install hidbridge as a systemd service"`
	Uninstall cmd.Uninstall     `cmd:"" help:"Remove the systemd service"`
}
