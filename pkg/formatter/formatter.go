// Package formatter builds a friendly terminal report from ESLint-style
// lint results: a sorted, aligned diagnostic table followed by problem
// totals, fix hints, and per-rule aggregates.
package formatter

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/ianwitherow/eslint-friendly-formatter/pkg/eslint"
	"github.com/ianwitherow/eslint-friendly-formatter/pkg/table"
	"github.com/ianwitherow/eslint-friendly-formatter/pkg/theme"
)

// Source lines at least this long are dropped from the report together
// with their caret pointer; a single minified line would otherwise
// dominate the table layout.
const maxSourceRunes = 1000

// Formatter renders reports for a fixed options/theme pair. It keeps no
// per-build state, so a single Formatter may build concurrently.
type Formatter struct {
	opts  Options
	theme theme.Theme
}

// New returns a Formatter rendering with the given options and theme.
func New(opts Options, th theme.Theme) *Formatter {
	return &Formatter{opts: opts, theme: th}
}

// Build renders the report for a set of per-file results using the
// default theme. See Formatter.Build.
func Build(results []eslint.Result, opts Options) string {
	return New(opts, theme.Default()).Build(results)
}

// Build renders the report for a set of per-file results. It never
// fails: absent messages count as none and absent counts as zero.
func (f *Formatter) Build(results []eslint.Result) string {
	entries, fix := f.flatten(results)
	f.sortEntries(entries)

	errRules := newRuleCounter()
	warnRules := newRuleCounter()
	errors, warnings := 0, 0

	rows := table.New()
	for _, e := range entries {
		if f.opts.FilterRule != "" && e.RuleID != f.opts.FilterRule {
			continue
		}

		var glyph string
		if e.IsError() {
			errors++
			errRules.add(e.RuleID)
			glyph = f.theme.Error.Render(f.theme.Icons.Error)
		} else {
			warnings++
			warnRules.add(e.RuleID)
			glyph = f.theme.Warning.Render(f.theme.Icons.Warning)
		}

		rows.AddRow(
			table.Text(glyph),
			table.Text(f.ruleLink(e.RuleID)),
			table.Text(strings.TrimSuffix(e.Message.Message, ".")),
			table.Multi(f.locationBlock(e)...),
		)
	}

	var b strings.Builder
	if f.opts.TerminalHint {
		b.WriteString(terminalHint(f.opts.WorkingDir))
	}
	b.WriteString(rows.Render())
	f.writeSummary(&b, errors, warnings, fix, errRules, warnRules)

	return b.String()
}

// locationBlock assembles the lines below a finding: the
// file:line:column label (or the editor link when a scheme is
// configured), the source snippet, and the caret pointer.
func (f *Formatter) locationBlock(e entry) []string {
	label := fmt.Sprintf("%s:%d:%d", e.filePath, e.Line, e.Column)
	if link, ok := f.fileLink(e.filePath, e.Line, e.Column); ok {
		label = link
	}

	lines := []string{f.subtle(label)}
	if e.Source != "" && utf8.RuneCountInString(e.Source) < maxSourceRunes {
		lines = append(lines, e.Source, caretPointer(e.Source, e.Column))
	}
	return lines
}

// terminalHint announces the working directory to the hosting terminal.
// iTerm2 reads OSC 50 CurrentDir to resolve cmd-clicked relative paths.
func terminalHint(dir string) string {
	return "\x1b]50;CurrentDir=" + dir + "\a"
}
