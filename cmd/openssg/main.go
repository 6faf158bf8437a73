// openssg converts .txt and .md files into a static HTML site.
//
// Usage:
//
//	openssg -i <file-or-folder> [-o <folder>] [-l <lang>] [-s <link>...]
//	openssg -c <config.json>
//	openssg -v | -h
//
// Exit codes:
//
//	0  success, help or version
//	1  invalid arguments or a failed render
//	2  the config file could not be read or parsed
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/dkoosis/openssg/internal/config"
	"github.com/dkoosis/openssg/internal/site"
	"github.com/dkoosis/openssg/internal/ui"
)

const (
	exitOK         = 0
	exitFailure    = 1
	exitConfigFile = 2
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// run dispatches on the first argument and returns the exit code.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	errTheme := ui.ThemeFor(stderr)
	logger := newLogger(stderr)

	var src config.Source
	switch {
	case len(args) > 0 && config.IsConfig(args[0]):
		path := ""
		if len(args) > 1 {
			path = args[1]
		}
		logger.Info("parsing config file", "path", path)
		src = config.FromFile{Path: path}
	default:
		if err := config.Validate(args); err != nil {
			ui.PrintUsageError(stderr, errTheme, err)
			return exitFailure
		}
		switch {
		case config.IsVersion(args[0]):
			_, _ = fmt.Fprintln(stdout, ui.VersionLine())
			return exitOK
		case config.IsHelp(args[0]):
			_, _ = fmt.Fprint(stdout, ui.Usage(ui.ThemeFor(stdout)))
			return exitOK
		}
		src = config.FromArgs{Args: args}
	}

	cfg, err := config.Build(src)
	if err != nil {
		ui.PrintError(stderr, errTheme, err)
		return exitCode(err)
	}
	logger.Debug("configuration resolved",
		"input", cfg.Input, "output", cfg.Output, "lang", cfg.Language, "stylesheets", cfg.Stylesheets)

	if _, err := cfg.LanguageTag(); err != nil {
		logger.Warn("language is not a valid BCP 47 tag; using it as given", "err", err)
	}

	return generate(ctx, logger, errTheme, cfg.Clone(), stdout, stderr)
}

// generate hands cfg to the site generator and reports the outcome.
func generate(ctx context.Context, logger *slog.Logger, errTheme ui.Theme, cfg *config.Config, stdout, stderr io.Writer) int {
	res, err := site.New(logger).Generate(ctx, cfg)
	if err != nil {
		ui.PrintError(stderr, errTheme, err)
		return exitFailure
	}
	ui.PrintDone(stdout, ui.ThemeFor(stdout), len(res.Pages), res.Output)
	return exitOK
}

// exitCode maps a configuration error to the process exit status.
func exitCode(err error) int {
	var accessErr *config.FileAccessError
	var parseErr *config.ConfigParseError
	switch {
	case errors.As(err, &accessErr), errors.As(err, &parseErr):
		return exitConfigFile
	default:
		return exitFailure
	}
}
