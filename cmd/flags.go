package cmd

import (
	"fmt"
	"github.com/cottand/stlc/frontend/ast"
	"github.com/cottand/stlc/frontend/lexer"
	"github.com/cottand/stlc/frontend/parser"
	"github.com/cottand/stlc/frontend/types"
	"github.com/cottand/stlc/internal/log"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"io"
	"log/slog"
	"os"
	"strings"
)

// commonFlags are the flags shared by every subcommand
type commonFlags struct {
	logLevel    int
	file        string
	assumptions []string
}

func (f *commonFlags) register(cmd *cobra.Command) {
	cmd.Flags().IntVarP(&f.logLevel, "log-level", "l", int(slog.LevelError), "log level (-4 debug, 0 info, 4 warn, 8 error)")
	cmd.Flags().StringVarP(&f.file, "file", "f", "", "read terms from a file, one per line")
	cmd.Flags().StringArrayVarP(&f.assumptions, "assume", "a", nil, "assume the type of a free variable, as name=Type (repeatable)")
}

func (f *commonFlags) apply() {
	log.SetLevel(slog.Level(f.logLevel))
}

// context builds the typing context from the --assume flags
func (f *commonFlags) context() (types.Context, error) {
	ctx := types.EmptyContext()
	for _, assumption := range f.assumptions {
		name, ty, err := parseAssumption(assumption)
		if err != nil {
			return ctx, err
		}
		ctx = ctx.Extend(name, ty)
	}
	return ctx, nil
}

func parseAssumption(assumption string) (string, ast.Type, error) {
	name, typeSrc, found := strings.Cut(assumption, "=")
	if !found {
		return "", nil, fmt.Errorf("assumption '%s' is not of the form name=Type", assumption)
	}
	nameTokens, err := lexer.Lex(name)
	if err != nil || len(nameTokens) != 1 || nameTokens[0].Kind != lexer.Var {
		return "", nil, fmt.Errorf("assumption '%s' does not start with a variable name", assumption)
	}
	typeTokens, err := lexer.Lex(typeSrc)
	if err != nil {
		return "", nil, errors.Wrapf(err, "assumption '%s'", assumption)
	}
	ty, err := parser.ParseType(typeTokens)
	if err != nil {
		return "", nil, errors.Wrapf(err, "assumption '%s'", assumption)
	}
	return nameTokens[0].Text, ty, nil
}

// sources returns the terms to process: the arguments joined as a single term,
// or else the lines of --file, or else the lines of stdin.
// Blank lines and lines starting with # are skipped.
func (f *commonFlags) sources(cmd *cobra.Command, args []string) ([]string, error) {
	if len(args) > 0 {
		return []string{strings.Join(args, " ")}, nil
	}
	var content []byte
	var err error
	if f.file != "" {
		content, err = os.ReadFile(f.file)
	} else {
		content, err = io.ReadAll(cmd.InOrStdin())
	}
	if err != nil {
		return nil, errors.Wrap(err, "could not read terms")
	}
	var lines []string
	for _, line := range strings.Split(string(content), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		lines = append(lines, line)
	}
	return lines, nil
}
