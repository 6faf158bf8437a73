// Package site converts a tree of .txt and .md sources into HTML pages.
//
// It is the rendering stage behind openssg's command line: the caller
// hands it a resolved *config.Config and it takes care of reading the
// input, writing the output directory and nothing else.
package site

import (
	"context"
	"errors"
	"fmt"
	"html/template"
	"io/fs"
	"log/slog"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/yuin/goldmark"

	"github.com/dkoosis/openssg/internal/config"
)

// Source extensions the generator converts.
const (
	extText     = ".txt"
	extMarkdown = ".md"
	indexPage   = "index.html"
)

var (
	// ErrNoInput is returned when the Config names no input.
	ErrNoInput = errors.New("no input file or folder given")
	// ErrUnsupportedInput is returned for a single input file that is neither .txt nor .md.
	ErrUnsupportedInput = errors.New("input file must be .txt or .md")
)

// Result describes a finished run.
type Result struct {
	Output string   // Output directory as configured
	Pages  []string // Written pages, slash-separated and relative to Output
}

// Generator renders pages. The zero value is not usable; call New.
type Generator struct {
	logger *slog.Logger
	md     goldmark.Markdown
}

// New returns a Generator that logs to logger. A nil logger discards logs.
func New(logger *slog.Logger) *Generator {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Generator{logger: logger, md: newMarkdown()}
}

// source is one input file and where its page goes.
type source struct {
	path string // Path on disk
	rel  string // Output path relative to the output directory, slash-separated
}

// Generate converts cfg.Input into cfg.Output. A single file becomes one
// page; a directory is walked recursively, its layout mirrored, and an
// index.html listing every page is added unless a source already claims it.
func (g *Generator) Generate(ctx context.Context, cfg *config.Config) (Result, error) {
	res := Result{Output: cfg.Output}
	if cfg.Input == "" {
		return res, ErrNoInput
	}

	info, err := os.Stat(cfg.Input)
	if err != nil {
		return res, fmt.Errorf("input: %w", err)
	}

	var sources []source
	if info.IsDir() {
		sources, err = g.collect(ctx, cfg.Input, cfg.Output)
		if err != nil {
			return res, err
		}
	} else {
		if !isSource(cfg.Input) {
			return res, fmt.Errorf("%s: %w", cfg.Input, ErrUnsupportedInput)
		}
		sources = []source{{path: cfg.Input, rel: pageName(filepath.Base(cfg.Input))}}
	}

	if err := os.MkdirAll(cfg.Output, 0o755); err != nil {
		return res, fmt.Errorf("creating output: %w", err)
	}

	var entries []indexEntry
	hasIndex := false
	for _, src := range sources {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		title, err := g.convert(cfg, src)
		if err != nil {
			return res, err
		}
		res.Pages = append(res.Pages, src.rel)
		entries = append(entries, indexEntry{Href: src.rel, Title: title})
		hasIndex = hasIndex || src.rel == indexPage
	}

	if info.IsDir() && !hasIndex {
		if err := g.writeIndex(cfg, indexTitle(cfg.Input), entries); err != nil {
			return res, err
		}
		res.Pages = append(res.Pages, indexPage)
	}

	g.logger.Debug("site generated", "input", cfg.Input, "output", cfg.Output, "pages", len(res.Pages))
	return res, nil
}

// collect walks root and returns its sources in lexical order. Hidden
// entries and the output directory itself are skipped.
func (g *Generator) collect(ctx context.Context, root, output string) ([]source, error) {
	absOutput, err := filepath.Abs(output)
	if err != nil {
		return nil, fmt.Errorf("resolving output: %w", err)
	}

	var sources []source
	claimed := make(map[string]string)
	err = filepath.WalkDir(root, func(p string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if p != root && strings.HasPrefix(d.Name(), ".") {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			if abs, err := filepath.Abs(p); err == nil && abs == absOutput {
				return filepath.SkipDir
			}
			return nil
		}
		if !isSource(p) {
			g.logger.Debug("skipping file", "path", p)
			return nil
		}

		rel, err := filepath.Rel(root, p)
		if err != nil {
			return err
		}
		out := pageName(filepath.ToSlash(rel))
		if prev, ok := claimed[out]; ok {
			return fmt.Errorf("%s and %s both produce %s", prev, p, out)
		}
		claimed[out] = p
		sources = append(sources, source{path: p, rel: out})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("reading input: %w", err)
	}
	return sources, nil
}

// convert writes the page for src and returns its title.
func (g *Generator) convert(cfg *config.Config, src source) (string, error) {
	data, err := os.ReadFile(src.path) // #nosec G304 - path comes from walking the input
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", src.path, err)
	}

	var body, title string
	switch strings.ToLower(filepath.Ext(src.path)) {
	case extMarkdown:
		body, title, err = convertMarkdown(g.md, data)
		if err != nil {
			return "", fmt.Errorf("%s: %w", src.path, err)
		}
	default:
		body, title = convertText(data)
	}
	if title == "" {
		title = strings.TrimSuffix(path.Base(src.rel), ".html")
	}

	out, err := renderPage(page{
		Lang:        cfg.Language,
		Title:       title,
		Stylesheets: cfg.Stylesheets,
		Body:        template.HTML(body), // #nosec G203 - body is escaped by the converters
	})
	if err != nil {
		return "", err
	}
	if err := writeFile(cfg.Output, src.rel, out); err != nil {
		return "", err
	}
	g.logger.Debug("wrote page", "source", src.path, "page", src.rel)
	return title, nil
}

func (g *Generator) writeIndex(cfg *config.Config, title string, entries []indexEntry) error {
	body, err := renderIndexBody(title, entries)
	if err != nil {
		return err
	}
	out, err := renderPage(page{
		Lang:        cfg.Language,
		Title:       title,
		Stylesheets: cfg.Stylesheets,
		Body:        body,
	})
	if err != nil {
		return err
	}
	return writeFile(cfg.Output, indexPage, out)
}

func writeFile(outputDir, rel string, data []byte) error {
	dst := filepath.Join(outputDir, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", filepath.Dir(dst), err)
	}
	if err := os.WriteFile(dst, data, 0o644); err != nil { // #nosec G306 - generated pages are public
		return fmt.Errorf("writing %s: %w", dst, err)
	}
	return nil
}

// indexTitle names the index page after the input directory.
func indexTitle(input string) string {
	if abs, err := filepath.Abs(input); err == nil {
		input = abs
	}
	if base := filepath.Base(input); base != "." && base != string(filepath.Separator) {
		return base
	}
	return "Index"
}

func isSource(p string) bool {
	switch strings.ToLower(filepath.Ext(p)) {
	case extText, extMarkdown:
		return true
	}
	return false
}

// pageName swaps the source extension for .html.
func pageName(rel string) string {
	return strings.TrimSuffix(rel, path.Ext(rel)) + ".html"
}
