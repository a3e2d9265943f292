//go:build js && wasm

package stlc

import (
	"bytes"
	"fmt"
	"github.com/cottand/stlc/backend"
	"github.com/cottand/stlc/frontend/stlcerr"
	"github.com/cottand/stlc/frontend/types"
	"github.com/pkg/errors"
	"github.com/traefik/yaegi/interp"
	"github.com/traefik/yaegi/stdlib"
	"syscall/js"
)

func formatError(err error, program string) string {
	var stlcErr stlcerr.StlcError
	if errors.As(err, &stlcErr) {
		return fmt.Sprintf("%s\n%s", err, stlcerr.FormatWithSource(stlcErr, program))
	}
	return err.Error()
}

// EvalAndShow runs a program with the default settings and returns its
// normal form and type, or the error that stopped it
//
// output: { error: string } | { result: string, type: string }
func EvalAndShow(_ js.Value, args []js.Value) (ret any) {
	errorObj := func(err string) any {
		return js.ValueOf(map[string]any{"error": err})
	}
	defer func() {
		if r := recover(); r != nil {
			ret = errorObj("interpreter panicked: " + fmt.Sprint(r))
		}
	}()

	program := args[0].String()
	res, err := Run(program, Settings{})
	if err != nil {
		return errorObj(formatError(err, program))
	}
	typeStr := ""
	if res.Type != nil {
		typeStr = res.Type.String()
	}
	return js.ValueOf(map[string]any{
		"result": res.Evaluated.String(),
		"type":   typeStr,
	})
}

// TranspileAndShowGoOutput returns the Go source of a well-typed program
//
// output: { error: string } | { goOutput: string }
func TranspileAndShowGoOutput(_ js.Value, args []js.Value) (ret any) {
	errorObj := func(err string) any {
		return js.ValueOf(map[string]any{"error": err})
	}
	defer func() {
		if r := recover(); r != nil {
			ret = errorObj("transpiler panicked: " + fmt.Sprint(r))
		}
	}()

	program := args[0].String()
	term, err := Parse(program)
	if err != nil {
		return errorObj(formatError(err, program))
	}
	f, err := backend.NewTranspiler(types.EmptyContext()).TranspileTerm("main", term)
	if err != nil {
		return errorObj(formatError(err, program))
	}
	src, err := backend.Source(f)
	if err != nil {
		return errorObj(err.Error())
	}
	return js.ValueOf(map[string]any{"goOutput": src})
}

// interpretGo runs a Go program given as a string and returns what it printed followed by the type of its Term variable
func interpretGo(_ js.Value, args []js.Value) (ret any, err error) {
	if len(args) != 1 {
		return nil, fmt.Errorf("expected 1 argument, got %d", len(args))
	}
	stdout := bytes.NewBuffer(nil)

	i := interp.New(interp.Options{Stdout: stdout, Stderr: stdout})
	if err := i.Use(stdlib.Symbols); err != nil {
		return nil, errors.Wrap(err, "error loading Go interpreter")
	}
	if _, err := i.Eval(args[0].String()); err != nil {
		return nil, errors.Wrap(err, "error during evaluation")
	}
	term, ok := i.Globals()[backend.DefaultResultName]
	if !ok {
		return nil, fmt.Errorf("program does not declare %s", backend.DefaultResultName)
	}
	return stdout.String() + fmt.Sprint(term.Type()), nil
}

// asPromise turns a function returning an error into one returning a JS promise,
// which is rejected with the error, if any
func asPromise(function func(js.Value, []js.Value) (any, error)) any {
	return js.FuncOf(func(this js.Value, args []js.Value) any {
		handler := js.FuncOf(func(_ js.Value, promiseArgs []js.Value) any {
			resolve := promiseArgs[0]
			reject := promiseArgs[1]

			go func() {
				defer func() {
					if r := recover(); r != nil {
						errorConstructor := js.Global().Get("Error")
						reject.Invoke(errorConstructor.New(fmt.Sprintf("%s", r)))
					}
				}()

				data, err := function(this, args)
				if err != nil {
					errorConstructor := js.Global().Get("Error")
					reject.Invoke(errorConstructor.New(err.Error()))
				} else {
					resolve.Invoke(js.ValueOf(data))
				}
			}()

			return nil
		})
		promiseConstructor := js.Global().Get("Promise")
		return promiseConstructor.New(handler)
	})
}

var InterpretGo = asPromise(interpretGo)
