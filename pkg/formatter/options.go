package formatter

import "strings"

// Environment variables and argv flags recognized by OptionsFromProcess
// and WantTerminalHint.
const (
	EnvNoGray        = "EFF_NO_GRAY"
	EnvEditorScheme  = "EFF_EDITOR_SCHEME"
	EnvNoLinkRules   = "EFF_NO_LINK_RULES"
	EnvAbsolutePaths = "EFF_ABSOLUTE_PATHS"
	EnvForceHint     = "FORCE_ITERM_HINT"
	EnvCI            = "CI"

	FlagByIssue       = "--eff-by-issue"
	FlagFilter        = "--eff-filter"
	FlagAbsolutePaths = "--eff-absolute-paths"
)

// Options controls one report build. The zero value renders ungrouped,
// unfiltered diagnostics with relative paths, linked rules, dimmed
// secondary text, and no file links.
type Options struct {
	// GroupByIssue adds the rule id as a secondary sort key so findings
	// for the same rule render contiguously within a severity block.
	GroupByIssue bool

	// FilterRule restricts rendered diagnostics and aggregates to one
	// rule id. Fixable totals still cover every result.
	FilterRule string

	// AbsolutePaths renders absolute file paths instead of paths
	// relative to WorkingDir.
	AbsolutePaths bool

	// NoGray renders secondary text plainly instead of dimmed.
	NoGray bool

	// NoLinkRules renders bare rule ids instead of documentation links.
	NoLinkRules bool

	// EditorScheme is a URL template with {file}, {line} and {column}
	// placeholders for clickable locations. Empty disables file links.
	EditorScheme string

	// TerminalHint prepends the working-directory announcement sequence
	// understood by iTerm2.
	TerminalHint bool

	// WorkingDir anchors path resolution and the terminal hint. Empty
	// leaves paths exactly as reported.
	WorkingDir string
}

// OptionsFromProcess layers the process configuration surface over base:
// environment variables override base, argv flags override environment.
// The EFF_* booleans require the exact value "true". Argument scanning
// is loose: the formatter historically shared its host's argv, so
// unrecognized arguments are skipped, and the --eff-* flags are honored
// wherever they appear.
func OptionsFromProcess(getenv func(string) string, args []string, base Options) Options {
	opts := base

	if getenv(EnvNoGray) == "true" {
		opts.NoGray = true
	}
	if getenv(EnvNoLinkRules) == "true" {
		opts.NoLinkRules = true
	}
	if getenv(EnvAbsolutePaths) == "true" {
		opts.AbsolutePaths = true
	}
	if scheme := getenv(EnvEditorScheme); scheme != "" {
		opts.EditorScheme = scheme
	}

	for i := 0; i < len(args); i++ {
		switch arg := args[i]; {
		case arg == FlagByIssue:
			opts.GroupByIssue = true
		case arg == FlagAbsolutePaths:
			opts.AbsolutePaths = true
		case strings.HasPrefix(arg, FlagFilter+"="):
			opts.FilterRule = strings.TrimPrefix(arg, FlagFilter+"=")
		case arg == FlagFilter && i+1 < len(args) && !strings.HasPrefix(args[i+1], "-"):
			opts.FilterRule = args[i+1]
			i++
		}
	}

	return opts
}

// WantTerminalHint resolves the announcement policy: an interactive
// stdout outside CI, or an explicit FORCE_ITERM_HINT. Any non-empty CI
// value counts as CI, including "false".
func WantTerminalHint(getenv func(string) string, interactive bool) bool {
	if getenv(EnvForceHint) != "" {
		return true
	}
	return interactive && getenv(EnvCI) == ""
}
