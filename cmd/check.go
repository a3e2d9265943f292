package cmd

import (
	"fmt"
	"github.com/cottand/stlc/frontend/types"
	"github.com/cottand/stlc/stlc"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var CheckCmd = &cobra.Command{
	Use:          "check [term]",
	Short:        "Type-check terms without evaluating them",
	RunE:         runCheck,
	SilenceUsage: true,
}

var checkFlags commonFlags

func init() {
	checkFlags.register(CheckCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	checkFlags.apply()

	ctx, err := checkFlags.context()
	if err != nil {
		return err
	}
	sources, err := checkFlags.sources(cmd, args)
	if err != nil {
		return err
	}

	r := &reporter{out: cmd.ErrOrStderr()}
	for _, source := range sources {
		term, err := stlc.Parse(source)
		if err != nil {
			if err := r.report(source, err); err != nil {
				return err
			}
			continue
		}
		ty, err := types.Check(term, ctx)
		if err != nil {
			if err := r.report(source, errors.Wrap(err, "ill-typed term")); err != nil {
				return err
			}
			continue
		}
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%v : %v\n", term, ty)
		r.total++
	}
	return r.result()
}
