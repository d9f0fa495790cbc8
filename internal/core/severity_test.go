package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifySeverity(t *testing.T) {
	tests := []struct {
		name    string
		comment string
		want    Severity
	}{
		{
			name:    "terrible is harsh",
			comment: "This is terrible code",
			want:    SeverityHarsh,
		},
		{
			name:    "bad name is critical, not harsh",
			comment: "Variable 'u' is a bad name.",
			want:    SeverityCritical,
		},
		{
			name:    "question mark is mild",
			comment: "Maybe consider renaming this?",
			want:    SeverityMild,
		},
		{
			name:    "plain imperative is critical",
			comment: "Boolean comparison '== True' is redundant.",
			want:    SeverityCritical,
		},
		{
			name:    "all caps shouting is harsh",
			comment: "This loop is SLOW and needs a rewrite",
			want:    SeverityHarsh,
		},
		{
			name:    "initialisms are not shouting",
			comment: "The API call should validate the URL first.",
			want:    SeverityCritical,
		},
		{
			name:    "double exclamation is harsh",
			comment: "Fix this!! It breaks production!!",
			want:    SeverityHarsh,
		},
		{
			name:    "single exclamation is not harsh",
			comment: "Please extract this into a helper!",
			want:    SeverityCritical,
		},
		{
			name:    "harsh wins over mild phrasing",
			comment: "Maybe stop writing such lazy code?",
			want:    SeverityHarsh,
		},
		{
			name:    "what if phrase is mild",
			comment: "What if we cached this value instead.",
			want:    SeverityMild,
		},
		{
			name:    "how about phrase is mild",
			comment: "How about a named constant here.",
			want:    SeverityMild,
		},
		{
			name:    "nit prefix is mild",
			comment: "nit: trailing whitespace on line 3.",
			want:    SeverityMild,
		},
		{
			name:    "marker inside quotes still matches",
			comment: `This is "garbage" and you know it.`,
			want:    SeverityHarsh,
		},
		{
			name:    "empty comment defaults to critical",
			comment: "",
			want:    SeverityCritical,
		},
		{
			name:    "case-insensitive harsh marker",
			comment: "Honestly the Worst approach here.",
			want:    SeverityHarsh,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ClassifySeverity(tt.comment)
			assert.Equal(t, tt.want, got, "comment: %q", tt.comment)
		})
	}
}

func TestClassifySeverityIsPure(t *testing.T) {
	comment := "Variable 'u' is a bad name."
	first := ClassifySeverity(comment)
	for range 10 {
		assert.Equal(t, first, ClassifySeverity(comment))
	}
}

func TestSeverityString(t *testing.T) {
	assert.Equal(t, "Mild", SeverityMild.String())
	assert.Equal(t, "Critical", SeverityCritical.String())
	assert.Equal(t, "Harsh", SeverityHarsh.String())
}

func TestIsShouted(t *testing.T) {
	assert.True(t, isShouted("SLOW"))
	assert.False(t, isShouted("OK"), "two letters is below the threshold")
	assert.False(t, isShouted("JSON"), "allowlisted initialism")
	assert.False(t, isShouted("Slow"))
}
