package llm

import (
	"testing"

	openai "github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildPrompt(t *testing.T) {
	messages, err := BuildPrompt([]byte(`{"mappings":[{"name":"m1","source":"S"}]}`))
	require.NoError(t, err)
	require.Len(t, messages, 2)

	assert.Equal(t, openai.ChatMessageRoleSystem, messages[0].Role)
	assert.Equal(t, SystemPrompt, messages[0].Content)

	user := messages[1]
	assert.Equal(t, openai.ChatMessageRoleUser, user.Role)
	assert.Contains(t, user.Content, "- Use INSERT INTO <target>(cols) SELECT ... FROM ...;\n")
	assert.Contains(t, user.Content, "- Use JOIN ... USING(...) when sources share columns; else CROSS JOIN.\n")
	assert.Contains(t, user.Content, "- If a target column is not found, project NULL AS <col>.\n")
	assert.Contains(t, user.Content, "- Separate multiple mappings with a blank line.\n\n")
	assert.Contains(t, user.Content, "JSON:\n{\n  \"mappings\": [\n    {\n      \"name\": \"m1\",\n      \"source\": \"S\"\n    }\n  ]\n}")
}

func TestBuildPrompt_KeepsKeyOrder(t *testing.T) {
	messages, err := BuildPrompt([]byte(`{"z": 1, "a": 2}`))
	require.NoError(t, err)

	assert.Contains(t, messages[1].Content, "{\n  \"z\": 1,\n  \"a\": 2\n}")
}

func TestBuildPrompt_InvalidJSON(t *testing.T) {
	_, err := BuildPrompt([]byte(`{"mappings": [`))
	assert.ErrorContains(t, err, "workflow is not valid JSON")
}
