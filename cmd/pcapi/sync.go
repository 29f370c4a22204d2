package main

import (
	"fmt"

	pcapi "github.com/williamsiker/pc-api"
)

// Run executes the sync command.
func (c *SyncCmd) Run(deps *Dependencies) error {
	summary, err := deps.Scraper.SyncContests(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", pcapi.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Synced %d contests (%d problems).\n", summary.Contests, summary.Problems)
	return nil
}
