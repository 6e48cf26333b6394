// Package render converts post bodies to sanitized HTML for the detail view.
package render

import (
	"bytes"
	"html/template"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

var (
	markdownEngine = goldmark.New(
		goldmark.WithExtensions(extension.GFM),
		goldmark.WithRendererOptions(html.WithHardWraps(), html.WithXHTML()),
	)
	sanitizer = bluemonday.UGCPolicy()
)

// Markdown renders source as sanitized HTML. If conversion fails the raw
// text is sanitized and returned as-is rather than dropping the content.
func Markdown(source string) template.HTML {
	var buf bytes.Buffer
	if err := markdownEngine.Convert([]byte(source), &buf); err != nil {
		return template.HTML(sanitizer.Sanitize(source))
	}
	return template.HTML(sanitizer.SanitizeBytes(buf.Bytes()))
}
