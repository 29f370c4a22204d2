package main

import (
	"fmt"
	"net/http"

	pchttp "github.com/williamsiker/pc-api/http"
)

// Run executes the serve command.
func (c *ServeCmd) Run(deps *Dependencies) error {
	server := pchttp.NewServer(deps.Contests, deps.Problems, deps.Scraper, deps.Logger)

	fmt.Fprintf(deps.Stdout, "Listening on %s\n", c.Addr)
	if err := http.ListenAndServe(c.Addr, server); err != nil {
		return fmt.Errorf("server: %w", err)
	}
	return nil
}
