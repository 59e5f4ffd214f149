package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"infa2sql/internal/convert"
	"infa2sql/internal/plan"
)

func newPlanCmd(a *app) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "plan <workflow>",
		Short: "Print the resolved mapping plans as YAML",
		Long: "Print the sources, targets and fields resolved for every mapping, in the\n" +
			"order the SQL generator sees them. Useful to check why a mapping falls\n" +
			"back to a placeholder. With --output the plan is written to a file that\n" +
			"can be edited and converted with 'infa2sql convert --from-plan'.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			plans, err := convert.New(convert.WithLogger(a.logger)).Plans(args[0])
			if err != nil {
				return err
			}

			if output != "" {
				if err := plan.WriteFile(output, args[0], plans); err != nil {
					return err
				}

				a.logger.Info("plan written", zap.String("path", output), zap.Int("mappings", len(plans)))
				_, err = fmt.Fprintln(cmd.OutOrStdout(), output)

				return err
			}

			out, err := plan.ExportYAML(args[0], plans)
			if err != nil {
				return err
			}

			_, err = cmd.OutOrStdout().Write(out)

			return err
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Write the plan to this file instead of stdout")

	return cmd
}
