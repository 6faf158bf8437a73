package config

import "strings"

// Recognised flags, short and long forms.
const (
	FlagVersion     = "--version"
	FlagHelp        = "--help"
	FlagConfig      = "--config"
	FlagInput       = "--input"
	FlagOutput      = "--output"
	FlagLang        = "--lang"
	FlagStylesheet  = "--stylesheet"
	ShortVersion    = "-v"
	ShortHelp       = "-h"
	ShortConfig     = "-c"
	ShortInput      = "-i"
	ShortOutput     = "-o"
	ShortLang       = "-l"
	ShortStylesheet = "-s"
)

// IsVersion reports whether tok is -v or --version.
func IsVersion(tok string) bool { return tok == ShortVersion || tok == FlagVersion }

// IsHelp reports whether tok is -h or --help.
func IsHelp(tok string) bool { return tok == ShortHelp || tok == FlagHelp }

// IsConfig reports whether tok is -c or --config.
func IsConfig(tok string) bool { return tok == ShortConfig || tok == FlagConfig }

func isInput(tok string) bool      { return tok == ShortInput || tok == FlagInput }
func isOutput(tok string) bool     { return tok == ShortOutput || tok == FlagOutput }
func isLang(tok string) bool       { return tok == ShortLang || tok == FlagLang }
func isStylesheet(tok string) bool { return tok == ShortStylesheet || tok == FlagStylesheet }

// isSingleValue reports whether tok takes exactly one value.
func isSingleValue(tok string) bool {
	return isInput(tok) || isOutput(tok) || isLang(tok)
}

// isFlagLike reports whether tok starts with a dash.
func isFlagLike(tok string) bool { return strings.HasPrefix(tok, "-") }

// stylesheetRun returns the tokens following index i up to the next
// flag-like token or the end of args.
func stylesheetRun(args []string, i int) []string {
	j := i + 1
	for j < len(args) && !isFlagLike(args[j]) {
		j++
	}
	return args[i+1 : j]
}
