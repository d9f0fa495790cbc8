package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/salvatoreOm/empathic-code-reviewer/internal/core"
)

const validReply = `### POSITIVE_REPHRASING
Great start! Let's pick a clearer name here.

### RATIONALE
Descriptive names carry intent and save the next reader from tracing usages.

### SUGGESTED_CODE
` + "```python\ndef get_users(data):\n    return data\n```" + `

### RESOURCES
- [PEP 8 – Naming Conventions](https://peps.python.org/pep-0008/#naming-conventions)
- [Google Style Guides](https://google.github.io/styleguide/)
`

func TestParseReply(t *testing.T) {
	t.Run("valid reply", func(t *testing.T) {
		parsed, err := ParseReply(validReply)
		require.NoError(t, err)

		assert.Equal(t, "Great start! Let's pick a clearer name here.", parsed.PositiveRephrasing)
		assert.Contains(t, parsed.Rationale, "Descriptive names carry intent")
		assert.Equal(t, "def get_users(data):\n    return data", parsed.SuggestedCode)
		require.Len(t, parsed.Resources, 2)
		assert.Contains(t, parsed.Resources[0], "PEP 8")
	})

	t.Run("wrapped in markdown fence", func(t *testing.T) {
		parsed, err := ParseReply("```markdown\n" + validReply + "\n```")
		require.NoError(t, err)
		assert.Equal(t, "Great start! Let's pick a clearer name here.", parsed.PositiveRephrasing)
	})

	t.Run("lowercase markers with trailing colon", func(t *testing.T) {
		reply := "### positive_rephrasing:\nNice work.\n" +
			"### rationale:\nBecause reasons.\n" +
			"### suggested_code:\nx = 1\n" +
			"### resources:\n"
		parsed, err := ParseReply(reply)
		require.NoError(t, err)
		assert.Equal(t, "Nice work.", parsed.PositiveRephrasing)
		assert.Empty(t, parsed.Resources)
	})

	t.Run("missing section fails", func(t *testing.T) {
		reply := "### POSITIVE_REPHRASING\nNice.\n### RATIONALE\nBecause.\n"
		_, err := ParseReply(reply)
		require.Error(t, err)
		assert.ErrorIs(t, err, core.ErrParse)
	})

	t.Run("sections out of order fail", func(t *testing.T) {
		reply := "### RATIONALE\nBecause.\n" +
			"### POSITIVE_REPHRASING\nNice.\n" +
			"### SUGGESTED_CODE\nx = 1\n" +
			"### RESOURCES\n"
		_, err := ParseReply(reply)
		require.Error(t, err)
		assert.ErrorIs(t, err, core.ErrParse)
	})

	t.Run("empty rephrasing fails", func(t *testing.T) {
		reply := "### POSITIVE_REPHRASING\n\n### RATIONALE\nBecause.\n### SUGGESTED_CODE\nx = 1\n### RESOURCES\n"
		_, err := ParseReply(reply)
		require.Error(t, err)
		assert.ErrorIs(t, err, core.ErrParse)
	})

	t.Run("parse failure preserves raw reply", func(t *testing.T) {
		raw := "the model rambled instead of following instructions"
		_, err := ParseReply(raw)
		require.Error(t, err)

		var pf *ParseFailure
		require.ErrorAs(t, err, &pf)
		assert.Equal(t, raw, pf.Raw)
	})

	t.Run("empty resources section yields no entries", func(t *testing.T) {
		reply := "### POSITIVE_REPHRASING\nNice.\n### RATIONALE\nBecause.\n### SUGGESTED_CODE\nx = 1\n### RESOURCES\nNone applicable.\n"
		parsed, err := ParseReply(reply)
		require.NoError(t, err)
		assert.Empty(t, parsed.Resources, "prose without list items is not a resource")
	})

	t.Run("star bullets are accepted", func(t *testing.T) {
		reply := "### POSITIVE_REPHRASING\nNice.\n### RATIONALE\nBecause.\n### SUGGESTED_CODE\nx = 1\n### RESOURCES\n* [Docs](https://example.com)\n"
		parsed, err := ParseReply(reply)
		require.NoError(t, err)
		require.Len(t, parsed.Resources, 1)
		assert.Equal(t, "[Docs](https://example.com)", parsed.Resources[0])
	})
}

func TestStripCodeFence(t *testing.T) {
	assert.Equal(t, "x = 1", stripCodeFence("```python\nx = 1\n```"))
	assert.Equal(t, "x = 1", stripCodeFence("x = 1"))
	assert.Equal(t, "x = 1", stripCodeFence("```\nx = 1\n```"))
}
