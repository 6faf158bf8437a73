package site

import (
	"bytes"
	"fmt"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	meta "github.com/yuin/goldmark-meta"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
)

// newMarkdown returns the converter used for .md sources: GitHub flavoured
// markdown, YAML front matter and highlighted fenced code.
func newMarkdown() goldmark.Markdown {
	return goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			meta.Meta,
			highlighting.NewHighlighting(
				highlighting.WithStyle("github"),
				highlighting.WithFormatOptions(chromahtml.TabWidth(4)),
			),
		),
		goldmark.WithParserOptions(parser.WithAutoHeadingID()),
	)
}

// convertMarkdown renders src and returns the front matter title, if any.
func convertMarkdown(md goldmark.Markdown, src []byte) (body, title string, err error) {
	var buf bytes.Buffer
	pctx := parser.NewContext()
	if err := md.Convert(src, &buf, parser.WithContext(pctx)); err != nil {
		return "", "", fmt.Errorf("converting markdown: %w", err)
	}
	if t, ok := meta.Get(pctx)["title"].(string); ok {
		title = t
	}
	return buf.String(), title, nil
}
