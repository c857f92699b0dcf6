package formatter

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/ianwitherow/eslint-friendly-formatter/pkg/table"
)

// ruleCounter tallies findings per rule id, remembering first-seen
// order so equal counts render deterministically.
type ruleCounter struct {
	counts map[string]int
	order  []string
}

func newRuleCounter() *ruleCounter {
	return &ruleCounter{counts: make(map[string]int)}
}

func (rc *ruleCounter) add(ruleID string) {
	if _, seen := rc.counts[ruleID]; !seen {
		rc.order = append(rc.order, ruleID)
	}
	rc.counts[ruleID]++
}

func (rc *ruleCounter) empty() bool {
	return len(rc.order) == 0
}

type ruleCount struct {
	rule  string
	count int
}

// sorted returns per-rule counts, most frequent first. Ties keep
// first-seen order; callers must not rely on any particular tie order.
func (rc *ruleCounter) sorted() []ruleCount {
	out := make([]ruleCount, 0, len(rc.order))
	for _, id := range rc.order {
		out = append(out, ruleCount{rule: id, count: rc.counts[id]})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].count > out[j].count
	})
	return out
}

// writeSummary appends the problem totals, the fix hints, the per-rule
// aggregate blocks, and the success line, in that order.
func (f *Formatter) writeSummary(b *strings.Builder, errors, warnings int, fix fixTotals, errRules, warnRules *ruleCounter) {
	total := errors + warnings

	if total > 0 {
		style := f.theme.Error
		if errors == 0 {
			style = f.theme.Warning
		}
		b.WriteString("\n")
		b.WriteString(style.Bold(true).Render(fmt.Sprintf("%s %d problem%s (%d error%s, %d warning%s)",
			f.theme.Icons.Error, total, pluralSuffix(total),
			errors, pluralSuffix(errors),
			warnings, pluralSuffix(warnings))))
		b.WriteString("\n")
	}

	if fix.total() > 0 {
		style := f.theme.Error
		if fix.errors == 0 {
			style = f.theme.Warning
		}
		b.WriteString(style.Bold(true).Render(fmt.Sprintf("%s %d problem%s (%d error%s, %d warning%s) fixable",
			f.theme.Icons.Fixable, fix.total(), pluralSuffix(fix.total()),
			fix.errors, pluralSuffix(fix.errors),
			fix.warnings, pluralSuffix(fix.warnings))))
		b.WriteString("\n")
	}

	if fix.files > 0 {
		b.WriteString(f.theme.Success.Bold(true).Render(fmt.Sprintf("Fixed %d file%s", fix.files, pluralSuffix(fix.files))))
		b.WriteString("\n")
	}

	if !errRules.empty() {
		f.writeAggregate(b, errRules, "Errors:", f.theme.Error)
	}
	if !warnRules.empty() {
		f.writeAggregate(b, warnRules, "Warnings:", f.theme.Warning)
	}

	if total == 0 {
		b.WriteString(f.theme.Success.Bold(true).Render(f.theme.Icons.Success + " Success!"))
		b.WriteString("\n")
	}
}

// writeAggregate appends a titled per-rule count table: indent column,
// right-aligned count, linked rule reference.
func (f *Formatter) writeAggregate(b *strings.Builder, rules *ruleCounter, title string, style lipgloss.Style) {
	b.WriteString("\n")
	b.WriteString(style.Bold(true).Render(title))
	b.WriteString("\n")

	tbl := table.New().Align(table.Left, table.Right, table.Left)
	for _, rc := range rules.sorted() {
		tbl.AddRow(table.Text(""), table.Text(strconv.Itoa(rc.count)), table.Text(f.ruleLink(rc.rule)))
	}
	b.WriteString(tbl.Render())
}

// pluralSuffix returns "s" for counts other than one.
func pluralSuffix(count int) string {
	if count == 1 {
		return ""
	}
	return "s"
}
