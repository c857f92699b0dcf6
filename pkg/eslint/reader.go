package eslint

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// ReadFile parses an ESLint JSON results file from disk.
func ReadFile(path string) ([]Result, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open eslint json file: %w", err)
	}
	defer f.Close()

	return Read(f)
}

// Read parses ESLint JSON results from an io.Reader.
func Read(r io.Reader) ([]Result, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read eslint json: %w", err)
	}

	return ReadBytes(data)
}

// ReadBytes parses ESLint JSON results from a byte slice. The payload is
// the eslint --format json output, a top-level array of per-file
// results; a {"results": [...]} wrapper is also accepted.
func ReadBytes(data []byte) ([]Result, error) {
	var results []Result
	arrErr := json.Unmarshal(data, &results)
	if arrErr == nil {
		return results, nil
	}

	var wrapper struct {
		Results []Result `json:"results"`
	}
	if err := json.Unmarshal(data, &wrapper); err == nil && wrapper.Results != nil {
		return wrapper.Results, nil
	}

	return nil, fmt.Errorf("decode eslint json: %w", arrErr)
}
