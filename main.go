// main is the entry point for the compareview CLI.
package main

import (
	"github.com/huangsam/compareview/cmd"
	"github.com/huangsam/compareview/internal/contract"
)

func main() {
	if err := cmd.Execute(); err != nil {
		contract.LogFatal("Cannot run command", err)
	}
	if err := cmd.StopProfiling(); err != nil {
		contract.LogWarn("Cannot stop profiling", err)
	}
}
