package llm

import (
	"bytes"
	"encoding/json"
	"fmt"

	openai "github.com/sashabaranov/go-openai"
)

// SystemPrompt frames the single-shot conversion.
const SystemPrompt = "You are a precise data engineer. Convert Informatica IDMC mappings " +
	"to ANSI SQL. Prefer deterministic output. If uncertain, comment with " +
	"TODO notes rather than guessing."

const conversionRules = "Given the following IDMC workflow JSON, generate SQL for each mapping.\n" +
	"- Use INSERT INTO <target>(cols) SELECT ... FROM ...;\n" +
	"- Use JOIN ... USING(...) when sources share columns; else CROSS JOIN.\n" +
	"- If a target column is not found, project NULL AS <col>.\n" +
	"- Separate multiple mappings with a blank line.\n\n"

// BuildPrompt returns the system and user messages asking the model to
// convert workflowJSON. The JSON is re-indented with two spaces; key order
// is kept as written.
func BuildPrompt(workflowJSON []byte) ([]openai.ChatCompletionMessage, error) {
	var pretty bytes.Buffer
	if err := json.Indent(&pretty, bytes.TrimSpace(workflowJSON), "", "  "); err != nil {
		return nil, fmt.Errorf("workflow is not valid JSON: %w", err)
	}

	return []openai.ChatCompletionMessage{
		{Role: openai.ChatMessageRoleSystem, Content: SystemPrompt},
		{Role: openai.ChatMessageRoleUser, Content: conversionRules + "JSON:\n" + pretty.String()},
	}, nil
}
