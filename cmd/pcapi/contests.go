package main

import (
	"fmt"

	pcapi "github.com/williamsiker/pc-api"
)

// Run executes the contests command.
func (c *ContestsCmd) Run(deps *Dependencies) error {
	contests, err := deps.Contests.FindContests(deps.Ctx, pcapi.ContestFilter{Limit: c.Limit})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", pcapi.ErrorMessage(err))
		return err
	}

	if len(contests) == 0 {
		fmt.Fprintln(deps.Stdout, "No contests cached. Run 'pcapi sync' first.")
		return nil
	}

	for _, contest := range contests {
		fmt.Fprintf(deps.Stdout, "%s  %s  %s\n", contest.ID, contest.StartTime.Format("2006-01-02"), contest.Title)
	}
	return nil
}

// Run executes the problems command.
func (c *ProblemsCmd) Run(deps *Dependencies) error {
	contest, err := deps.Contests.FindContestByID(deps.Ctx, c.Contest)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", pcapi.ErrorMessage(err))
		return err
	}

	if len(contest.Problems) == 0 {
		fmt.Fprintf(deps.Stdout, "Contest %s has no problems in the index. Run 'pcapi sync' first.\n", c.Contest)
		return nil
	}

	for _, p := range contest.Problems {
		fmt.Fprintf(deps.Stdout, "%s  %s\n", p.ProblemID, p.Title)
	}
	return nil
}
