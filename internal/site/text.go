package site

import (
	"html"
	"strings"
)

// convertText turns plain text into HTML paragraphs. A first line followed
// by two blank lines is the title; it is returned and rendered as <h1>.
func convertText(src []byte) (body, title string) {
	text := strings.ReplaceAll(string(src), "\r\n", "\n")
	lines := strings.Split(text, "\n")

	if len(lines) >= 3 && strings.TrimSpace(lines[0]) != "" &&
		strings.TrimSpace(lines[1]) == "" && strings.TrimSpace(lines[2]) == "" {
		title = strings.TrimSpace(lines[0])
		lines = lines[3:]
	}

	var sb strings.Builder
	if title != "" {
		sb.WriteString("<h1>")
		sb.WriteString(html.EscapeString(title))
		sb.WriteString("</h1>\n")
	}

	var para []string
	flush := func() {
		if len(para) == 0 {
			return
		}
		sb.WriteString("<p>")
		sb.WriteString(html.EscapeString(strings.Join(para, " ")))
		sb.WriteString("</p>\n")
		para = para[:0]
	}
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			flush()
			continue
		}
		para = append(para, line)
	}
	flush()

	return strings.TrimSuffix(sb.String(), "\n"), title
}
