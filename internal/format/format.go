package format

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	gmhtml "github.com/yuin/goldmark/renderer/html"
	"golang.org/x/net/html"
)

const ellipsis = "…"

// blockTags separate words when flattening markup to text.
var blockTags = map[string]bool{
	"p": true, "br": true, "div": true, "li": true, "ul": true, "ol": true,
	"h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true,
	"blockquote": true, "pre": true, "tr": true, "td": true, "th": true, "hr": true,
}

var (
	markdown = goldmark.New(goldmark.WithRendererOptions(gmhtml.WithUnsafe()))
	sanitize = bluemonday.UGCPolicy()
)

// PostDate formats a post date as "2006. 01. 02". The zero time formats as
// an empty string.
// Example: PostDate(2024-03-09) => "2024. 03. 09"
func PostDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return fmt.Sprintf("%04d. %02d. %02d", t.Year(), int(t.Month()), t.Day())
}

// Tags joins tags in their original order.
func Tags(tags []string) string {
	return strings.Join(tags, ", ")
}

// AnimationDelay returns the entry-animation delay of the card at the 0-based
// position index, one tenth of a second per position.
func AnimationDelay(index int) string {
	if index < 0 {
		index = 0
	}
	return fmt.Sprintf("%.1fs", float64(index+1)/10)
}

// Excerpt renders a post excerpt. With limit <= 0 the excerpt is rendered as
// markdown (inline HTML allowed) and sanitized. With a positive limit it is
// reduced to plain text and truncated to limit runes.
func Excerpt(raw string, limit int) template.HTML {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}
	var buf bytes.Buffer
	if err := markdown.Convert([]byte(raw), &buf); err != nil {
		buf.Reset()
		buf.WriteString(template.HTMLEscapeString(raw))
	}
	safe := sanitize.Sanitize(buf.String())
	if limit <= 0 {
		return template.HTML(strings.TrimSpace(safe))
	}
	text := Truncate(PlainText(safe), limit)
	return template.HTML("<p>" + template.HTMLEscapeString(text) + "</p>")
}

// PlainText extracts the text content of an HTML fragment with entities
// decoded and whitespace collapsed.
func PlainText(fragment string) string {
	z := html.NewTokenizer(strings.NewReader(fragment))
	var b strings.Builder
	for {
		switch z.Next() {
		case html.ErrorToken:
			return strings.Join(strings.Fields(b.String()), " ")
		case html.TextToken:
			b.Write(z.Text())
		case html.StartTagToken, html.EndTagToken, html.SelfClosingTagToken:
			name, _ := z.TagName()
			if blockTags[string(name)] {
				b.WriteByte(' ')
			}
		}
	}
}

// Truncate shortens s to at most n runes, appending an ellipsis when cut.
func Truncate(s string, n int) string {
	if n <= 0 || utf8.RuneCountInString(s) <= n {
		return s
	}
	r := []rune(s)
	return strings.TrimSpace(string(r[:n])) + ellipsis
}
