package main

import (
	"github.com/fwojciec/webfetch/mcp"
)

// Run executes the mcp command, serving until stdin closes or the
// context is canceled.
func (c *McpCmd) Run(deps *Dependencies) error {
	server := mcp.NewServer(deps.Registry, fetchOptions(c.UserAgent), deps.Version)
	return server.Run(deps.Ctx)
}
