package tui

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
)

// PrintBanner writes the fabricmock header with the version string.
func PrintBanner(w io.Writer, version string) {
	p := termenv.ColorProfile()
	// Indigo to pink, one step per line
	lines := []string{
		" _____     _       _",
		"|  ___|_ _| |__  _ __(_) ___",
		"| |_ / _` | '_ \\| '__| |/ __|",
		"|  _| (_| | |_) | |  | | (__",
		"|_|  \\__,_|_.__/|_|  |_|\\___|  mock",
	}
	colors := []string{"#818cf8", "#a78bfa", "#c084fc", "#e879f9", "#f472b6"}

	fmt.Fprintln(w)
	for i, line := range lines {
		fmt.Fprintln(w, termenv.String(line).Foreground(p.Color(colors[i])))
	}
	if version != "" {
		fmt.Fprintln(w, termenv.String("  v"+version).Faint())
	}
	fmt.Fprintln(w)
}
