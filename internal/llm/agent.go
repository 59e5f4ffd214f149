package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	openai "github.com/sashabaranov/go-openai"
	"go.uber.org/zap"
)

// DefaultMaxTurns caps agent round trips unless WithMaxTurns says otherwise.
const DefaultMaxTurns = 8

// ReadWorkflowTool is the name of the function tool offered to the model.
const ReadWorkflowTool = "read_workflow_json"

// AgentInstructions is the agent's system prompt.
const AgentInstructions = "You are a precise data engineer. Convert Informatica IDMC mappings to " +
	"deterministic ANSI SQL. Use the read_workflow_json tool to load the " +
	"workflow at the provided path.\n\n" +
	"Guidelines:\n" +
	"- For each mapping, emit: INSERT INTO <target>(cols) SELECT ... FROM ...;\n" +
	"- Use JOIN ... USING(...) where sources share columns; else CROSS JOIN.\n" +
	"- If a target column is missing, project NULL AS <col>.\n" +
	"- Separate multiple mappings with a blank line.\n" +
	"- If uncertain, include a SQL comment with a TODO rather than guessing."

// ErrTooManyTurns is returned when the model keeps calling tools past the
// turn limit.
var ErrTooManyTurns = errors.New("agent did not produce an answer within the turn limit")

var readWorkflowParams = json.RawMessage(`{
  "type": "object",
  "properties": {
    "file_path": {"type": "string", "description": "Path of the IDMC workflow JSON file."}
  },
  "required": ["file_path"],
  "additionalProperties": false
}`)

// Agent converts a workflow by letting the model read it through a tool.
type Agent struct {
	client ChatClient
	model  string
	settings
}

// NewAgent creates an Agent sending requests for model through client.
func NewAgent(client ChatClient, model string, opts ...Option) *Agent {
	return &Agent{client: client, model: model, settings: newSettings(opts)}
}

// Run asks the model to convert the workflow at path. Tool calls are served
// locally; only path itself may be read. The final answer is returned, ""
// when the model returns no choice.
func (a *Agent) Run(ctx context.Context, path string) (string, error) {
	allowed, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolving workflow path: %w", err)
	}

	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	messages := []openai.ChatCompletionMessage{
		{Role: openai.ChatMessageRoleSystem, Content: AgentInstructions},
		{
			Role: openai.ChatMessageRoleUser,
			Content: "Convert the IDMC workflow at this path to SQL and return only the SQL.\n" +
				"workflow_path: " + path,
		},
	}

	tools := []openai.Tool{{
		Type: openai.ToolTypeFunction,
		Function: &openai.FunctionDefinition{
			Name:        ReadWorkflowTool,
			Description: "Load and return the IDMC workflow JSON from file_path.",
			Parameters:  readWorkflowParams,
		},
	}}

	for turn := range a.maxTurns {
		resp, err := a.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
			Model:    a.model,
			Messages: messages,
			Tools:    tools,
		})
		if err != nil {
			return "", fmt.Errorf("chat completion (turn %d): %w", turn+1, err)
		}

		if len(resp.Choices) == 0 {
			return "", nil
		}

		msg := resp.Choices[0].Message
		if len(msg.ToolCalls) == 0 {
			return msg.Content, nil
		}

		messages = append(messages, msg)

		for _, call := range msg.ToolCalls {
			a.logger.Debug("serving tool call",
				zap.Int("turn", turn+1),
				zap.String("tool", call.Function.Name),
				zap.String("id", call.ID))

			messages = append(messages, openai.ChatCompletionMessage{
				Role:       openai.ChatMessageRoleTool,
				Content:    a.callTool(call, allowed),
				Name:       call.Function.Name,
				ToolCallID: call.ID,
			})
		}
	}

	return "", ErrTooManyTurns
}

// callTool runs one tool call. Failures are reported to the model as the
// tool result so it can correct itself.
func (a *Agent) callTool(call openai.ToolCall, allowed string) string {
	if call.Function.Name != ReadWorkflowTool {
		return "error: unknown tool " + call.Function.Name
	}

	var args struct {
		FilePath string `json:"file_path"`
	}

	if err := json.Unmarshal([]byte(call.Function.Arguments), &args); err != nil {
		return "error: invalid arguments: " + err.Error()
	}

	content, err := readWorkflow(args.FilePath, allowed)
	if err != nil {
		a.logger.Warn("tool call failed", zap.String("tool", ReadWorkflowTool), zap.Error(err))
		return "error: " + err.Error()
	}

	return content
}

func readWorkflow(path, allowed string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}

	if abs != allowed {
		return "", fmt.Errorf("%s is not the workflow being converted", path)
	}

	data, err := os.ReadFile(abs)
	if err != nil {
		return "", err
	}

	if !json.Valid(data) {
		return "", fmt.Errorf("%s is not valid JSON", path)
	}

	return string(data), nil
}
