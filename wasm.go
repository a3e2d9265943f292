//go:build js && wasm

package main

import (
	"syscall/js"

	"github.com/cottand/stlc/stlc"
)

func main() {
	js.Global().Set("EvalAndShow", js.FuncOf(stlc.EvalAndShow))
	js.Global().Set("TranspileAndShowGoOutput", js.FuncOf(stlc.TranspileAndShowGoOutput))
	js.Global().Set("InterpretGo", stlc.InterpretGo)

	// wait indefinitely so that Go does not terminate execution
	// and the function remains available
	<-make(chan struct{})
}
