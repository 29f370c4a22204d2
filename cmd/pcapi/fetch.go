package main

import (
	"fmt"

	pcapi "github.com/williamsiker/pc-api"
)

// Run executes the fetch command.
func (c *FetchCmd) Run(deps *Dependencies) error {
	if !c.Refresh {
		if problem, err := deps.Problems.FindProblem(deps.Ctx, c.Contest, c.Problem); err == nil {
			fmt.Fprintln(deps.Stdout, pcapi.FormatProblem(problem))
			return nil
		}
	}

	problem, err := deps.Scraper.FetchProblem(deps.Ctx, c.Contest, c.Problem)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", pcapi.ErrorMessage(err))
		return err
	}

	fmt.Fprintln(deps.Stdout, pcapi.FormatProblem(problem))
	return nil
}
