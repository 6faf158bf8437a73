package ui

import (
	"fmt"
	"io"

	"github.com/dkoosis/openssg/internal/version"
)

// PrintError writes "openssg: <err>" to w.
func PrintError(w io.Writer, theme Theme, err error) {
	_, _ = fmt.Fprintf(w, "%s: %s\n", version.Name, theme.Error.Render(err.Error()))
}

// PrintUsageError writes err followed by the help hint.
func PrintUsageError(w io.Writer, theme Theme, err error) {
	PrintError(w, theme, err)
	_, _ = fmt.Fprintln(w, theme.Muted.Render(Hint()))
}

// PrintDone reports a finished run.
func PrintDone(w io.Writer, theme Theme, pages int, output string) {
	noun := "pages"
	if pages == 1 {
		noun = "page"
	}
	_, _ = fmt.Fprintf(w, "%s %d %s written to %s\n", theme.Success.Render("✓"), pages, noun, output)
}
