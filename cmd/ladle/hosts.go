package main

import (
	"fmt"

	"github.com/ladle-app/ladle"
)

// Run executes the hosts command.
func (c *HostsCmd) Run(deps *Dependencies) error {
	if deps.Sandbox == nil {
		fmt.Fprintln(deps.Stdout, "No specialized extractor installed; every host is handled generically.")
		return nil
	}

	hosts, err := deps.Sandbox.SupportedHosts(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", ladle.ErrorMessage(err))
		return err
	}

	for _, host := range hosts {
		fmt.Fprintln(deps.Stdout, host)
	}
	return nil
}

// Run executes the supported command.
func (c *SupportedCmd) Run(deps *Dependencies) error {
	if deps.Sandbox == nil {
		fmt.Fprintf(deps.Stdout, "%s: not supported\n", c.Host)
		return nil
	}

	ok, err := deps.Sandbox.IsHostSupported(deps.Ctx, c.Host)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", ladle.ErrorMessage(err))
		return err
	}

	if ok {
		fmt.Fprintf(deps.Stdout, "%s: supported\n", c.Host)
	} else {
		fmt.Fprintf(deps.Stdout, "%s: not supported\n", c.Host)
	}
	return nil
}
