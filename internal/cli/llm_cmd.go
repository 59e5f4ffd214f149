package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"infa2sql/internal/config"
	"infa2sql/internal/llm"
)

func newLLMCmd(a *app) *cobra.Command {
	var model string

	cmd := &cobra.Command{
		Use:   "llm <workflow>",
		Short: "Generate SQL from an IDMC workflow JSON using OpenAI",
		Long: "Send the whole IDMC workflow JSON to an OpenAI chat model and print the\n" +
			"SQL it returns. Requires " + config.EnvAPIKey + ".",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := a.newChatClient(a.cfg)
			if err != nil {
				return err
			}

			resolved := a.model(model, config.DefaultModel)

			sql, err := llm.NewConverter(client, resolved,
				llm.WithLogger(a.logger),
				llm.WithTimeout(a.cfg.LLMTimeout),
			).Convert(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), sql)

			return err
		},
	}

	cmd.Flags().StringVar(&model, "model", "",
		"OpenAI model (default "+config.DefaultModel+"; override with "+config.EnvModel+")")

	return cmd
}

func newAgentCmd(a *app) *cobra.Command {
	var (
		model    string
		maxTurns int
	)

	cmd := &cobra.Command{
		Use:   "agent <workflow>",
		Short: "Generate SQL from an IDMC workflow JSON using a tool-calling agent",
		Long: "Let an OpenAI model load the IDMC workflow through a read_workflow_json\n" +
			"tool and print the SQL it answers with. Requires " + config.EnvAPIKey + ".",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := a.newChatClient(a.cfg)
			if err != nil {
				return err
			}

			resolved := a.model(model, config.DefaultAgentModel)

			sql, err := llm.NewAgent(client, resolved,
				llm.WithLogger(a.logger),
				llm.WithTimeout(a.cfg.LLMTimeout),
				llm.WithMaxTurns(maxTurns),
			).Run(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), sql)

			return err
		},
	}

	cmd.Flags().StringVar(&model, "model", "",
		"Model for the agent (default "+config.DefaultAgentModel+"; override with "+config.EnvModel+")")
	cmd.Flags().IntVar(&maxTurns, "max-turns", llm.DefaultMaxTurns, "Maximum model round trips")

	return cmd
}

// model resolves the model name: flag, then environment, then fallback.
func (a *app) model(flag, fallback string) string {
	if flag != "" {
		return flag
	}

	resolved := a.cfg.ModelOr(fallback)
	a.logger.Debug("model resolved", zap.String("model", resolved))

	return resolved
}
