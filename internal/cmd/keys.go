package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/Alia5/hidbridge/keycode"
)

// Keys lists the key names accepted by PRESS commands.
type Keys struct {
	Filter  string `arg:"" optional:"" help:"Only list names containing this text"`
	Aliases bool   `help:"Only list short alias names"`
	Width   int    `help:"Output width in columns (defaults to the terminal width)"`
}

// Run prints the key table in columns.
func (k *Keys) Run() error {
	width := k.Width
	if width <= 0 {
		width = 80
		if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
			width = w
		}
	}
	return k.render(os.Stdout, width)
}

func (k *Keys) render(w io.Writer, width int) error {
	filter := strings.ToUpper(k.Filter)
	var cells []string
	for _, e := range keycode.Entries() {
		if k.Aliases && !e.Alias {
			continue
		}
		if filter != "" && !strings.Contains(e.Name, filter) {
			continue
		}
		cells = append(cells, fmt.Sprintf("%s=0x%02X", e.Name, e.Code))
	}
	for _, line := range columns(cells, width) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

// columns lays cells out column-major in as many equal-width columns as fit.
func columns(cells []string, width int) []string {
	if len(cells) == 0 {
		return nil
	}
	cellWidth := 0
	for _, c := range cells {
		cellWidth = max(cellWidth, len(c))
	}
	cellWidth += 2
	cols := max(1, width/cellWidth)
	rows := (len(cells) + cols - 1) / cols

	lines := make([]string, rows)
	for r := range rows {
		var b strings.Builder
		for c := range cols {
			i := c*rows + r
			if i >= len(cells) {
				break
			}
			if c < cols-1 && (c+1)*rows+r < len(cells) {
				fmt.Fprintf(&b, "%-*s", cellWidth, cells[i])
			} else {
				b.WriteString(cells[i])
			}
		}
		lines[r] = b.String()
	}
	return lines
}
