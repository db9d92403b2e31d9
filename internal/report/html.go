package report

import (
	"fmt"
	"html"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

const styleCSS = `body{font-family:system-ui,-apple-system,sans-serif;max-width:900px;margin:0 auto;padding:2rem 1rem;color:#1c1917;line-height:1.5;}
h1{border-bottom:2px solid #1c1917;padding-bottom:0.3rem;}
h2{margin-top:2rem;border-bottom:1px solid #d6d3d1;padding-bottom:0.2rem;}
table{width:100%;border-collapse:collapse;font-size:0.85rem;margin:0.75rem 0;}
th,td{border:1px solid #a8a29e;padding:0.35rem 0.5rem;text-align:left;vertical-align:top;}
thead th{background:#f5f5f4;font-weight:700;}
code,pre{background:#f5f5f4;border-radius:3px;}
pre{padding:0.75rem;overflow-x:auto;font-size:0.8rem;}
@media print{body{padding:0;} pre{white-space:pre-wrap;}}`

// RenderHTML converts report markdown into a standalone styled HTML document.
func RenderHTML(markdown, title string) (string, error) {
	var content strings.Builder
	md := goldmark.New(goldmark.WithExtensions(extension.GFM))
	if err := md.Convert([]byte(markdown), &content); err != nil {
		return "", fmt.Errorf("converting markdown: %w", err)
	}

	var doc strings.Builder
	doc.WriteString("<!doctype html><html><head><meta charset='utf-8'>")
	doc.WriteString("<title>" + html.EscapeString(title) + "</title>")
	doc.WriteString("<style>" + styleCSS + "</style></head><body>")
	doc.WriteString(content.String())
	doc.WriteString("</body></html>")
	return doc.String(), nil
}
