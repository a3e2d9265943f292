package cmd

import (
	"fmt"
	"github.com/cottand/stlc/stlc"
	"github.com/spf13/cobra"
)

var EvalCmd = &cobra.Command{
	Use:   "eval [term]",
	Short: "Evaluate terms to normal form",
	Long: `Evaluate terms to normal form, printing each result followed by its type
when the term was type-checked.

Terms are read from the arguments, from --file, or from stdin, one per line.`,
	RunE:         runEval,
	SilenceUsage: true,
}

var (
	evalFlags     commonFlags
	evalCheckMode string
	evalShowSteps bool
)

func init() {
	evalFlags.register(EvalCmd)
	EvalCmd.Flags().StringVarP(&evalCheckMode, "check", "c", stlc.CheckAuto.String(), "when to type-check: auto, annotated, always or never")
	EvalCmd.Flags().BoolVar(&evalShowSteps, "steps", false, "print the number of beta reductions of each term")
}

func runEval(cmd *cobra.Command, args []string) error {
	evalFlags.apply()

	mode, err := stlc.ParseCheckMode(evalCheckMode)
	if err != nil {
		return err
	}
	ctx, err := evalFlags.context()
	if err != nil {
		return err
	}
	sources, err := evalFlags.sources(cmd, args)
	if err != nil {
		return err
	}

	settings := stlc.Settings{Check: mode, Context: ctx}
	r := &reporter{out: cmd.ErrOrStderr()}
	for _, source := range sources {
		res, err := stlc.Run(source, settings)
		if err := r.report(source, err); err != nil {
			return err
		}
		if res == nil {
			continue
		}
		if evalShowSteps {
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%v (%d steps)\n", res, res.Steps)
		} else {
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), res)
		}
	}
	return r.result()
}
