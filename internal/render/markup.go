package render

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"golang.org/x/net/html"
)

// Formatter turns document strings into markup. Plain fields are always
// escaped. Description fields are escaped too unless Markdown is enabled,
// in which case they are converted with goldmark and sanitized.
type Formatter struct {
	markdown bool
	md       goldmark.Markdown
	policy   *bluemonday.Policy
}

// NewFormatter creates a Formatter. With markdown set, description fields
// are treated as Markdown.
func NewFormatter(markdown bool) *Formatter {
	f := &Formatter{markdown: markdown}
	if markdown {
		f.md = goldmark.New(goldmark.WithExtensions(extension.Linkify, extension.Strikethrough))
		f.policy = bluemonday.UGCPolicy()
		f.policy.AddTargetBlankToFullyQualifiedLinks(true)
	}
	return f
}

// esc escapes text for use in element content and quoted attributes.
func esc(s string) string { return html.EscapeString(s) }

// Rich formats a description field.
func (f *Formatter) Rich(s string) (string, error) {
	if f == nil || !f.markdown {
		return esc(s), nil
	}
	var buf bytes.Buffer
	if err := f.md.Convert([]byte(s), &buf); err != nil {
		return "", fmt.Errorf("converting markdown: %w", err)
	}
	return strings.TrimSpace(f.policy.Sanitize(buf.String())), nil
}

// SafeURL returns u when it uses a scheme that is safe in href and src
// attributes, or an empty string.
func SafeURL(u string) string {
	trimmed := strings.TrimSpace(u)
	lower := strings.ToLower(trimmed)
	if i := strings.IndexAny(lower, ":/?#"); i >= 0 && lower[i] == ':' {
		switch lower[:i] {
		case "http", "https", "mailto", "tel":
		default:
			return ""
		}
	}
	return trimmed
}

// Paragraph formats a description as a block. Plain text becomes a <p>;
// Markdown output is wrapped in a <div> since it carries its own blocks.
func (f *Formatter) Paragraph(s, class string) (string, error) {
	body, err := f.Rich(s)
	if err != nil {
		return "", err
	}
	tag := "p"
	if f != nil && f.markdown {
		tag = "div"
	}
	if class == "" {
		return fmt.Sprintf("<%s>%s</%s>", tag, body, tag), nil
	}
	return fmt.Sprintf(`<%s class="%s">%s</%s>`, tag, class, body, tag), nil
}
