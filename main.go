// main is the entry point for the recall CLI.
package main

import (
	"github.com/huangsam/recall/cmd"
	"github.com/huangsam/recall/internal/contract"
)

func main() {
	if err := cmd.Execute(); err != nil {
		contract.LogFatal("running command", err)
	}
}
