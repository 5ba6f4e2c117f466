//go:build linux

package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderUnit(t *testing.T) {
	unit := renderUnit("/opt/hid bridge/hidbridge", []string{"--hid.backend=uhid", "--net.addr=:8080"})

	tests := []string{
		`ExecStart="/opt/hid bridge/hidbridge" serve "--hid.backend=uhid" "--net.addr=:8080"` + "\n",
		"WorkingDirectory=/opt/hid bridge\n",
		"After=network-online.target sys-kernel-config.mount\n",
		"Restart=always\n",
		"AmbientCapabilities=CAP_NET_BIND_SERVICE\n",
		"WantedBy=multi-user.target\n",
	}
	for _, want := range tests {
		assert.Contains(t, unit, want)
	}
}

func TestRenderUnitWithoutArgs(t *testing.T) {
	unit := renderUnit("/usr/bin/hidbridge", nil)
	assert.Contains(t, unit, "ExecStart=\"/usr/bin/hidbridge\" serve\n")
}
