// Package eslint provides parsing of ESLint-style JSON lint results.
package eslint

// Severity values reported by the analysis engine.
const (
	SeverityWarning = 1
	SeverityError   = 2
)

// Message represents a single finding at a specific file location.
type Message struct {
	RuleID   string `json:"ruleId,omitempty"`
	Severity int    `json:"severity"` // 1 = warning, 2 = error
	Message  string `json:"message"`
	Line     int    `json:"line,omitempty"`
	Column   int    `json:"column,omitempty"`
	Source   string `json:"source,omitempty"`
	Fatal    bool   `json:"fatal,omitempty"`
}

// IsError reports whether the message classifies as an error. A fatal
// message is an error regardless of its severity value; everything else,
// including malformed severities, classifies as a warning.
func (m Message) IsError() bool {
	return m.Fatal || m.Severity == SeverityError
}

// Result holds all findings for one analyzed file.
type Result struct {
	FilePath            string    `json:"filePath"`
	Messages            []Message `json:"messages"`
	FixableErrorCount   int       `json:"fixableErrorCount,omitempty"`
	FixableWarningCount int       `json:"fixableWarningCount,omitempty"`
	Output              *string   `json:"output,omitempty"`
}

// Fixed reports whether the engine rewrote the file. Presence of the
// output field is the signal; its content does not matter.
func (r Result) Fixed() bool {
	return r.Output != nil
}
