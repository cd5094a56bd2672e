// Command actionx inspects action manifests and builds actions from them.
//
//	actionx inspect todo.yaml --format dot
//	actionx dispatch todo.yaml todo.add '"buy milk"'
package main

import (
	"os"
)

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		os.Exit(1)
	}
}
