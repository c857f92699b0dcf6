package formatter

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ianwitherow/eslint-friendly-formatter/pkg/eslint"
)

func TestRuleCounter_SortsByCountThenFirstSeen(t *testing.T) {
	t.Parallel()

	rc := newRuleCounter()
	for _, id := range []string{"alpha", "beta", "beta", "gamma", "alpha", "delta"} {
		rc.add(id)
	}

	got := rc.sorted()
	require.Len(t, got, 4)

	assert.Equal(t, ruleCount{rule: "alpha", count: 2}, got[0])
	assert.Equal(t, ruleCount{rule: "beta", count: 2}, got[1])
	assert.Equal(t, ruleCount{rule: "gamma", count: 1}, got[2])
	assert.Equal(t, ruleCount{rule: "delta", count: 1}, got[3])
}

func TestBuild_AggregateBlocksListRulesByFrequency(t *testing.T) {
	t.Parallel()

	messages := []eslint.Message{
		{RuleID: "no-undef", Severity: 2, Message: "'a' is not defined.", Line: 1, Column: 1},
		{RuleID: "no-undef", Severity: 2, Message: "'b' is not defined.", Line: 2, Column: 1},
		{RuleID: "no-undef", Severity: 2, Message: "'c' is not defined.", Line: 3, Column: 1},
		{RuleID: "eqeqeq", Severity: 2, Message: "Expected '===' and instead saw '=='.", Line: 4, Column: 1},
		{RuleID: "semi", Severity: 1, Message: "Missing semicolon.", Line: 5, Column: 1},
	}

	out := monoFormatter(Options{}).Build([]eslint.Result{{FilePath: "a.js", Messages: messages}})

	errBlock := strings.Index(out, "Errors:")
	warnBlock := strings.Index(out, "Warnings:")
	require.GreaterOrEqual(t, errBlock, 0)
	require.GreaterOrEqual(t, warnBlock, 0)
	assert.Less(t, errBlock, warnBlock, "errors block renders before warnings block")

	errors := out[errBlock:warnBlock]
	assert.Contains(t, errors, "3  no-undef")
	assert.Contains(t, errors, "1  eqeqeq")
	assert.Less(t, strings.Index(errors, "no-undef"), strings.Index(errors, "eqeqeq"), "most frequent rule first")

	assert.Contains(t, out[warnBlock:], "1  semi")
}

func TestPluralSuffix(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "s", pluralSuffix(0))
	assert.Empty(t, pluralSuffix(1))
	assert.Equal(t, "s", pluralSuffix(2))
}
