package cmd

import (
	"fmt"
	"github.com/cottand/stlc/backend"
	"github.com/cottand/stlc/stlc"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"os"
	"path/filepath"
)

var BuildCmd = &cobra.Command{
	Use:          "build [term]",
	Short:        "Transpile a well-typed term into a Go source file",
	RunE:         runBuild,
	SilenceUsage: true,
}

var (
	buildFlags   commonFlags
	buildOutPath string
	buildPkgName string
	buildVarName string
)

func init() {
	buildFlags.register(BuildCmd)
	BuildCmd.Flags().StringVarP(&buildOutPath, "out", "o", "", "output file (stdout if empty)")
	BuildCmd.Flags().StringVar(&buildPkgName, "package", "main", "package name of the generated file")
	BuildCmd.Flags().StringVar(&buildVarName, "var", backend.DefaultResultName, "name of the variable the term is bound to")
}

func runBuild(cmd *cobra.Command, args []string) error {
	buildFlags.apply()

	ctx, err := buildFlags.context()
	if err != nil {
		return err
	}
	sources, err := buildFlags.sources(cmd, args)
	if err != nil {
		return err
	}
	if len(sources) != 1 {
		return fmt.Errorf("build takes exactly one term, but got %d", len(sources))
	}

	term, err := stlc.Parse(sources[0])
	if err != nil {
		return err
	}
	tp := backend.NewTranspiler(ctx)
	tp.ResultName = buildVarName
	f, err := tp.TranspileTerm(buildPkgName, term)
	if err != nil {
		return err
	}
	src, err := backend.Source(f)
	if err != nil {
		return err
	}
	tp.Debug("built term", "freeVars", tp.FreeVarNames(), "out", buildOutPath)

	if buildOutPath == "" {
		_, err = fmt.Fprint(cmd.OutOrStdout(), src)
		return err
	}
	if err := os.MkdirAll(filepath.Dir(buildOutPath), os.ModePerm); err != nil {
		return errors.Wrap(err, "could not create output directory")
	}
	return errors.Wrap(os.WriteFile(buildOutPath, []byte(src), 0o644), "could not write output file")
}
