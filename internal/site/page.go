package site

import (
	"bytes"
	"fmt"
	"html/template"
)

// page is the data handed to pageTemplate.
type page struct {
	Lang        string
	Title       string
	Stylesheets []string
	Body        template.HTML
}

var pageTemplate = template.Must(template.New("page").Parse(`<!doctype html>
<html{{with .Lang}} lang="{{.}}"{{end}}>
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>{{.Title}}</title>
{{- range .Stylesheets}}
<link rel="stylesheet" href="{{.}}">
{{- end}}
</head>
<body>
{{.Body}}
</body>
</html>
`))

var indexTemplate = template.Must(template.New("index").Parse(`<h1>{{.Title}}</h1>
<ul>
{{- range .Entries}}
<li><a href="{{.Href}}">{{.Title}}</a></li>
{{- end}}
</ul>`))

type indexEntry struct {
	Href  string
	Title string
}

func renderPage(p page) ([]byte, error) {
	var buf bytes.Buffer
	if err := pageTemplate.Execute(&buf, p); err != nil {
		return nil, fmt.Errorf("rendering %q: %w", p.Title, err)
	}
	return buf.Bytes(), nil
}

func renderIndexBody(title string, entries []indexEntry) (template.HTML, error) {
	var buf bytes.Buffer
	data := struct {
		Title   string
		Entries []indexEntry
	}{title, entries}
	if err := indexTemplate.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("rendering index: %w", err)
	}
	return template.HTML(buf.String()), nil // #nosec G203 - produced by html/template
}
