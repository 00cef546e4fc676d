// main is the entry point of the leaguestat CLI.
package main

import (
	"github.com/huangsam/leaguestat/cmd"
	"github.com/huangsam/leaguestat/internal/contract"
	"github.com/huangsam/leaguestat/internal/iocache"
)

func main() {
	cmd.SetHistoryManager(iocache.Manager)
	defer iocache.CloseHistory()

	err := cmd.Execute()
	if stopErr := cmd.StopProfiling(); stopErr != nil {
		contract.LogWarn("Failed to stop profiling", stopErr)
	}
	if err != nil {
		iocache.CloseHistory()
		contract.LogFatal("Command failed", err)
	}
}
