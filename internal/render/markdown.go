// Package render turns generated markdown into HTML.
package render

import (
	"github.com/russross/blackfriday/v2"
)

const htmlFlags = blackfriday.CommonHTMLFlags | blackfriday.SkipHTML

// Markdown renders src to HTML. Raw HTML in the source is dropped.
func Markdown(src string) string {
	if src == "" {
		return ""
	}
	r := blackfriday.NewHTMLRenderer(blackfriday.HTMLRendererParameters{Flags: htmlFlags})
	out := blackfriday.Run([]byte(src),
		blackfriday.WithRenderer(r),
		blackfriday.WithExtensions(blackfriday.CommonExtensions),
	)
	return string(out)
}
