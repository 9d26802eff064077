// Package render converts markdown into the HTML subset accepted by Telegram.
package render

import (
	"regexp"
	"strings"

	"github.com/russross/blackfriday"
)

const extensions = blackfriday.EXTENSION_NO_INTRA_EMPHASIS |
	blackfriday.EXTENSION_FENCED_CODE |
	blackfriday.EXTENSION_STRIKETHROUGH

var (
	headingOpen  = regexp.MustCompile(`<h[1-6][^>]*>`)
	headingClose = regexp.MustCompile(`</h[1-6]>`)
	blankLines   = regexp.MustCompile(`\n{3,}`)

	// Telegram rejects block tags, so they are flattened into text.
	blockTags = strings.NewReplacer(
		"<p>", "",
		"</p>", "\n",
		"<ul>", "",
		"</ul>", "",
		"<ol>", "",
		"</ol>", "",
		"<li>", "• ",
		"</li>", "\n",
		"<br />", "\n",
		"<hr />", "",
		"<del>", "<s>",
		"</del>", "</s>",
	)
)

func ToHTML(markdown string) string {
	renderer := blackfriday.HtmlRenderer(blackfriday.HTML_SKIP_HTML|blackfriday.HTML_SKIP_STYLE, "", "")
	html := string(blackfriday.Markdown([]byte(markdown), renderer, extensions))

	html = headingOpen.ReplaceAllString(html, "<b>")
	html = headingClose.ReplaceAllString(html, "</b>\n")
	html = blockTags.Replace(html)
	html = blankLines.ReplaceAllString(html, "\n\n")

	return strings.TrimSpace(html)
}
