package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/hyqhyq3/winerror/internal/i18n"
)

// writeUsage prints the usage line, the options and one example to w.
// Styling is dropped when w is not a terminal.
func writeUsage(w io.Writer, program string) {
	r := lipgloss.NewRenderer(w)
	heading := r.NewStyle().Bold(true)
	example := r.NewStyle().Faint(true)
	data := map[string]interface{}{"Program": program}

	fmt.Fprintln(w, heading.Render(i18n.Tf("usage.line", data)))
	fmt.Fprintln(w)
	fmt.Fprintln(w, i18n.T("usage.options"))
	fmt.Fprintln(w, i18n.T("usage.option.language"))
	fmt.Fprintln(w, i18n.T("usage.option.help"))
	fmt.Fprintln(w, i18n.T("usage.option.end"))
	fmt.Fprintln(w)
	fmt.Fprintln(w, i18n.T("usage.messageID"))
	fmt.Fprintln(w)
	fmt.Fprintln(w, example.Render(i18n.Tf("usage.example", data)))
	fmt.Fprintln(w, example.Render(i18n.T("usage.exampleOutput")))
}
