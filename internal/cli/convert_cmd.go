package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"infa2sql/internal/convert"
	"infa2sql/internal/gen"
)

// convertOptions are the flags shared by the convert command and the root
// command's positional shorthand.
type convertOptions struct {
	outputDir    string
	splitTargets bool
	strict       bool
	noComments   bool
	fromPlan     bool
}

func (o *convertOptions) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&o.outputDir, "output-dir", "o", "", "Write one .sql file per mapping into this directory")
	cmd.Flags().BoolVar(&o.splitTargets, "split-targets", false, "With --output-dir, write one file per target table")
	cmd.Flags().BoolVar(&o.strict, "strict", false, "Fail on unreadable JSON and on workflows without mappings")
	cmd.Flags().BoolVar(&o.noComments, "no-comments", false, "Omit the header and note comments above statements")
	cmd.Flags().BoolVar(&o.fromPlan, "from-plan", false, "Treat the argument as a plan file written by 'infa2sql plan -o'")
}

func newConvertCmd(a *app) *cobra.Command {
	var opts convertOptions

	cmd := &cobra.Command{
		Use:   "convert <workflow>",
		Short: "Convert every mapping of a workflow to SQL",
		Long: "Convert every mapping of a PowerCenter XML or IDMC JSON workflow to\n" +
			"INSERT INTO ... SELECT statements. SQL goes to stdout, sorted by mapping\n" +
			"name, unless --output-dir is given.",
		Example: "  infa2sql convert wf_sales.xml\n" +
			"  infa2sql convert wf_sales.json --output-dir sql/ --split-targets\n" +
			"  infa2sql plan wf_sales.json -o plan.yaml && infa2sql convert --from-plan plan.yaml",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runConvert(cmd, args[0], opts)
		},
	}

	opts.register(cmd)

	return cmd
}

// runConvert converts the workflow at path and writes the SQL to stdout or
// to opts.outputDir.
func (a *app) runConvert(cmd *cobra.Command, path string, opts convertOptions) error {
	genCfg := gen.DefaultGeneratorConfig()
	genCfg.GenerateComments = !opts.noComments

	conv := convert.New(
		convert.WithLogger(a.logger),
		convert.WithStrict(opts.strict),
		convert.WithGenerator(gen.NewGenerator(genCfg)),
	)

	convertFn := conv.Convert
	if opts.fromPlan {
		convertFn = conv.ConvertPlanFile
	}

	res, err := convertFn(cmd.Context(), path)
	if err != nil {
		return err
	}

	logDiagnostics(a.logger, res.Diagnostics)

	if opts.outputDir == "" {
		return gen.WriteStdout(cmd.OutOrStdout(), res.Mappings)
	}

	paths, err := gen.WriteFiles(res.Mappings, opts.outputDir, opts.splitTargets)
	if err != nil {
		return err
	}

	a.logger.Info("sql written", zap.String("dir", opts.outputDir), zap.Int("files", len(paths)))

	for _, p := range paths {
		fmt.Fprintln(cmd.OutOrStdout(), p)
	}

	return nil
}

func newCountCmd(a *app) *cobra.Command {
	var strict bool

	cmd := &cobra.Command{
		Use:   "count <workflow>",
		Short: "Print the number of mappings in a workflow",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := convert.New(convert.WithLogger(a.logger), convert.WithStrict(strict)).CountMappings(args[0])
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), n)

			return err
		},
	}

	cmd.Flags().BoolVar(&strict, "strict", false, "Fail on unreadable JSON and on workflows without mappings")

	return cmd
}
