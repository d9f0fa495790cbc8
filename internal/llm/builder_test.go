package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/salvatoreOm/empathic-code-reviewer/internal/core"
)

func TestBuildPrompt(t *testing.T) {
	mgr, err := NewPromptManager()
	require.NoError(t, err)

	code := "def get_active_users(users):\n    return [u for u in users if u.active]"
	comment := "Variable 'u' is a bad name."

	payload, err := BuildPrompt(mgr, DefaultProvider, code, comment, core.SeverityCritical, "python")
	require.NoError(t, err)

	assert.Contains(t, payload.User, code, "the snippet is embedded verbatim")
	assert.Contains(t, payload.User, comment, "the comment is embedded verbatim")
	assert.Contains(t, payload.User, "python")
	assert.NotEmpty(t, payload.System)

	// The reply contract is spelled out in every user prompt.
	for _, marker := range sectionMarkers {
		assert.Contains(t, payload.User, marker)
	}

	assert.Equal(t, code, payload.Code)
	assert.Equal(t, comment, payload.Comment)
	assert.Equal(t, core.SeverityCritical, payload.Severity)
}

func TestBuildPromptSeveritySelectsTemplate(t *testing.T) {
	mgr, err := NewPromptManager()
	require.NoError(t, err)

	harsh, err := BuildPrompt(mgr, DefaultProvider, "x = 1", "This is terrible code", core.SeverityHarsh, "python")
	require.NoError(t, err)
	mild, err := BuildPrompt(mgr, DefaultProvider, "x = 1", "Maybe rename this?", core.SeverityMild, "python")
	require.NoError(t, err)

	assert.NotEqual(t, harsh.User, mild.User, "severity levels use distinct templates")
	assert.Contains(t, harsh.User, "harsh")
	assert.Equal(t, harsh.System, mild.System, "the system prompt is shared")
}

func TestPromptKeyFor(t *testing.T) {
	assert.Equal(t, RewriteHarshPrompt, promptKeyFor(core.SeverityHarsh))
	assert.Equal(t, RewriteMildPrompt, promptKeyFor(core.SeverityMild))
	assert.Equal(t, RewriteCriticalPrompt, promptKeyFor(core.SeverityCritical))
}

func TestPromptManagerFallsBackToDefault(t *testing.T) {
	mgr, err := NewPromptManager()
	require.NoError(t, err)

	// No azure-specific variants ship; the default template serves every provider.
	tmpl, err := mgr.Get(SystemPrompt, ModelProvider("azure"))
	require.NoError(t, err)
	assert.NotNil(t, tmpl)

	_, err = mgr.Get(PromptKey("no_such_prompt"), DefaultProvider)
	assert.Error(t, err)
}
