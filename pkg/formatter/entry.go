package formatter

import (
	"path/filepath"
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/ianwitherow/eslint-friendly-formatter/pkg/eslint"
)

// entry is one message carrying its resolved file path.
type entry struct {
	eslint.Message
	filePath string
}

// fixTotals aggregates the engine's auto-fix bookkeeping. These sums
// deliberately ignore the rule filter, which only narrows the rendered
// message list.
type fixTotals struct {
	errors   int
	warnings int
	files    int
}

func (ft fixTotals) total() int {
	return ft.errors + ft.warnings
}

// flatten expands results into entries and accumulates fix totals.
func (f *Formatter) flatten(results []eslint.Result) ([]entry, fixTotals) {
	var entries []entry
	var fix fixTotals

	for _, res := range results {
		fix.errors += res.FixableErrorCount
		fix.warnings += res.FixableWarningCount
		if res.Fixed() {
			fix.files++
		}

		path := f.resolvePath(res.FilePath)
		for _, msg := range res.Messages {
			entries = append(entries, entry{Message: msg, filePath: path})
		}
	}

	return entries, fix
}

// resolvePath renders a reported path absolute or relative to the
// working directory. Without a working directory paths pass through
// untouched.
func (f *Formatter) resolvePath(path string) string {
	if path == "" || f.opts.WorkingDir == "" {
		return path
	}

	abs := path
	if !filepath.IsAbs(abs) {
		abs = filepath.Join(f.opts.WorkingDir, abs)
	}
	if f.opts.AbsolutePaths {
		return abs
	}

	rel, err := filepath.Rel(f.opts.WorkingDir, abs)
	if err != nil {
		return path
	}
	return rel
}

// sortEntries orders entries by raw severity (warnings before errors),
// then rule id when grouping by issue, then collated file path, line,
// and column. The sort is stable, so fully equal keys keep their input
// order. Sorting uses the reported severity value even for fatal
// messages, which still classify as errors later.
func (f *Formatter) sortEntries(entries []entry) {
	coll := collate.New(language.English)

	sort.SliceStable(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]
		if a.Severity != b.Severity {
			return a.Severity < b.Severity
		}
		if f.opts.GroupByIssue && a.RuleID != b.RuleID {
			return a.RuleID < b.RuleID
		}
		if c := coll.CompareString(a.filePath, b.filePath); c != 0 {
			return c < 0
		}
		if a.Line != b.Line {
			return a.Line < b.Line
		}
		return a.Column < b.Column
	})
}
