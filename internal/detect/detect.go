// Package detect sniffs stdin to determine the input format.
package detect

import (
	"encoding/json"
)

// Format represents a recognized input format.
type Format int

const (
	Unknown    Format = iota
	ESLintJSON        // eslint -f json results, bare array or {"results":...} wrapper
)

// Sniff examines input to determine its format. The whole payload is
// parsed, so callers should hand over the already-buffered stdin.
func Sniff(data []byte) Format {
	// Trim leading whitespace
	for len(data) > 0 && (data[0] == ' ' || data[0] == '\t' || data[0] == '\n' || data[0] == '\r') {
		data = data[1:]
	}
	if len(data) == 0 {
		return Unknown
	}

	switch data[0] {
	case '[':
		if isResultArray(data) {
			return ESLintJSON
		}
	case '{':
		if isResultWrapper(data) {
			return ESLintJSON
		}
	}

	return Unknown
}

func isResultArray(data []byte) bool {
	var items []json.RawMessage
	if err := json.Unmarshal(data, &items); err != nil {
		return false
	}
	// An empty run is a valid, problem-free result set
	if len(items) == 0 {
		return true
	}
	return isResultObject(items[0])
}

func isResultWrapper(data []byte) bool {
	var probe struct {
		Results []json.RawMessage `json:"results"`
	}
	if err := json.Unmarshal(data, &probe); err != nil || probe.Results == nil {
		return false
	}
	if len(probe.Results) == 0 {
		return true
	}
	return isResultObject(probe.Results[0])
}

func isResultObject(data []byte) bool {
	var probe struct {
		FilePath *string           `json:"filePath"`
		Messages []json.RawMessage `json:"messages"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return false
	}
	return probe.FilePath != nil || probe.Messages != nil
}
