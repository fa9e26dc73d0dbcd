package severity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taglog-labs/taglog/pkg/taglog/v1/severity"
)

// TestOrdering pins the rank ordering the persisted representation depends
// on: most severe first, Exception last as the distinguished category.
func TestOrdering(t *testing.T) {
	assert.Less(t, severity.Error.Rank(), severity.Assert.Rank())
	assert.Less(t, severity.Assert.Rank(), severity.Warning.Rank())
	assert.Less(t, severity.Warning.Rank(), severity.Log.Rank())
	assert.Less(t, severity.Log.Rank(), severity.Verbose.Rank())
	assert.Less(t, severity.Verbose.Rank(), severity.Exception.Rank())
}

func TestString(t *testing.T) {
	testCases := []struct {
		sev      severity.Severity
		expected string
	}{
		{severity.Error, "ERROR"},
		{severity.Assert, "ASSERT"},
		{severity.Warning, "WARNING"},
		{severity.Log, "LOG"},
		{severity.Verbose, "VERBOSE"},
		{severity.Exception, "EXCEPTION"},
		{severity.Severity(99), "UNKNOWN"},
	}
	for _, tc := range testCases {
		assert.Equal(t, tc.expected, tc.sev.String())
	}
}

func TestParse(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected severity.Severity
		ok       bool
	}{
		{"Canonical", "ERROR", severity.Error, true},
		{"Lowercase", "warning", severity.Warning, true},
		{"MixedCase", "Verbose", severity.Verbose, true},
		{"InfoAlias", "info", severity.Log, true},
		{"DebugAlias", "debug", severity.Verbose, true},
		{"WarnAlias", "warn", severity.Warning, true},
		{"Exception", "exception", severity.Exception, true},
		{"Whitespace", "  log  ", severity.Log, true},
		{"Unknown", "loud", severity.Error, false},
		{"Empty", "", severity.Error, false},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			sev, ok := severity.Parse(tc.input)
			assert.Equal(t, tc.ok, ok)
			assert.Equal(t, tc.expected, sev)
		})
	}
}

// TestFromRank covers clamping of out-of-range persisted ranks.
func TestFromRank(t *testing.T) {
	assert.Equal(t, severity.Warning, severity.FromRank(severity.Warning.Rank()))
	assert.Equal(t, severity.Error, severity.FromRank(-5))
	assert.Equal(t, severity.Exception, severity.FromRank(100))
}

func TestValid(t *testing.T) {
	assert.True(t, severity.Error.Valid())
	assert.True(t, severity.Exception.Valid())
	assert.False(t, severity.Severity(-1).Valid())
	assert.False(t, severity.Severity(42).Valid())
}
