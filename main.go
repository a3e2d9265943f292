//go:build !(js || wasm)

package main

import (
	"github.com/cottand/stlc/cmd"
	"os"
)

func main() {
	err := cmd.RootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}
