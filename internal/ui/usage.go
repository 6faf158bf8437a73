package ui

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/dkoosis/openssg/internal/version"
)

// option is one row of the usage table.
type option struct {
	flags string
	desc  string
}

var options = []option{
	{"-v, --version", "Display program information"},
	{"-h, --help", "Display how to use options"},
	{"-i, --input <file-or-folder>", "Specify input file or folder"},
	{"-o, --output <folder-name>", "Specify output folder. Default is ./dist"},
	{"-l, --lang <language-country>", "Specify language to add to the html tag"},
	{"-s, --stylesheet <link...>", "Specify one or more stylesheet links"},
	{"-c, --config <config-file>", "Specify a JSON file location that has options"},
}

// Usage returns the help text printed for -h/--help.
func Usage(theme Theme) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s %s <option>\n\n", theme.Bold.Render("usage:"), version.Name)
	sb.WriteString("Available options:\n")

	width := 0
	for _, o := range options {
		width = max(width, runewidth.StringWidth(o.flags))
	}
	for _, o := range options {
		sb.WriteString("  ")
		sb.WriteString(theme.Primary.Render(padRight(o.flags, width)))
		sb.WriteString("  ")
		sb.WriteString(o.desc)
		sb.WriteString("\n")
	}
	return sb.String()
}

// Hint is appended to usage errors.
func Hint() string {
	return fmt.Sprintf("Check the usage by running %s -h or --help.", version.Name)
}

// VersionLine returns the text printed for -v/--version.
func VersionLine() string {
	return fmt.Sprintf("%s version %s, %s", version.Name, version.Version, version.BuildDate)
}

// padRight pads s with spaces to width display cells.
func padRight(s string, width int) string {
	if gap := width - runewidth.StringWidth(s); gap > 0 {
		return s + strings.Repeat(" ", gap)
	}
	return s
}
