package formatter

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// Rule lookup endpoints. Namespaced plugin rules have no canonical
// documentation page and fall back to a search query.
const (
	ruleDocsBaseURL   = "http://eslint.org/docs/rules/"
	ruleSearchBaseURL = "https://google.com/#q="
)

// ruleLink renders the reference cell for a rule id: the documentation
// URL, underlined, or the bare id under NoLinkRules. Unnamed rules
// render empty.
func (f *Formatter) ruleLink(ruleID string) string {
	if ruleID == "" {
		return ""
	}
	if f.opts.NoLinkRules {
		return ruleID
	}

	base := ruleDocsBaseURL
	if strings.Contains(ruleID, "/") {
		base = ruleSearchBaseURL
	}
	return f.linkStyle().Render(base + url.QueryEscape(ruleID))
}

// fileLink builds the editor link for a location from the configured
// scheme template. ok is false when no scheme is configured.
func (f *Formatter) fileLink(path string, line, column int) (link string, ok bool) {
	scheme := f.opts.EditorScheme
	if scheme == "" {
		return "", false
	}

	link = strings.ReplaceAll(scheme, "{file}", url.PathEscape(path))
	link = strings.ReplaceAll(link, "{line}", strconv.Itoa(line))
	link = strings.ReplaceAll(link, "{column}", strconv.Itoa(column))
	return link, true
}

func (f *Formatter) linkStyle() lipgloss.Style {
	if f.opts.NoGray {
		return f.theme.Underline
	}
	return f.theme.Subtle.Underline(true)
}

// subtle dims secondary text unless NoGray asks for plain output.
func (f *Formatter) subtle(s string) string {
	if f.opts.NoGray {
		return s
	}
	return f.theme.Subtle.Render(s)
}

// caretPointer draws the column marker under a source line. Tabs are
// copied verbatim so tab stops keep their alignment; every other rune
// becomes spaces covering its display width.
func caretPointer(source string, column int) string {
	var b strings.Builder

	remaining := column - 1
	for _, r := range source {
		if remaining <= 0 {
			break
		}
		remaining--

		if r == '\t' {
			b.WriteByte('\t')
			continue
		}
		if w := runewidth.RuneWidth(r); w > 0 {
			b.WriteString(strings.Repeat(" ", w))
		}
	}

	b.WriteString("^")
	return b.String()
}
