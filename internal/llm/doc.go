// Package llm converts IDMC workflow JSON to SQL with a chat-completion model.
//
// Two variants exist. Converter sends the whole workflow in one prompt.
// Agent hands the model a read_workflow_json tool and lets it fetch the
// document itself. Neither is used by the deterministic converter; their
// output is whatever the model returns.
package llm
