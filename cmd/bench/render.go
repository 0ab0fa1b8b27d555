package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/wippyai/ffi-bench/bench"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("240"))
)

// renderResults formats one binding's results as a small table. Styling is
// dropped when stdout is not a terminal so piped output stays clean.
func renderResults(name string, results []bench.Result) string {
	styled := term.IsTerminal(int(os.Stdout.Fd()))

	title := name
	header := fmt.Sprintf("%-10s %10s %14s %12s", "CASE", "ITERS", "TOTAL", "NS/OP")
	if styled {
		title = titleStyle.Render(title)
		header = headerStyle.Render(header)
	}

	var b strings.Builder
	b.WriteByte('\n')
	b.WriteString(title)
	b.WriteByte('\n')
	b.WriteString(header)
	b.WriteByte('\n')
	for _, r := range results {
		fmt.Fprintf(&b, "%-10s %10d %14s %12.1f\n", r.Name, r.N, r.Elapsed, r.NsPerOp())
	}
	return b.String()
}
