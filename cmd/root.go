package cmd

import "github.com/spf13/cobra"

var RootCmd = &cobra.Command{
	Use:          "stlc [subcommand]",
	Short:        "stlc λ\n an interpreter for the simply-typed lambda calculus",
	Args:         cobra.MinimumNArgs(1),
	SilenceUsage: true,
}

func init() {
	RootCmd.AddCommand(EvalCmd)
	RootCmd.AddCommand(CheckCmd)
	RootCmd.AddCommand(BuildCmd)
}
