package main

import (
	"encoding/json"
	"fmt"

	"github.com/fwojciec/webfetch"
)

// Run executes the fetch command.
func (c *FetchCmd) Run(deps *Dependencies) error {
	method, err := webfetch.ParseMethod(c.Method)
	if err != nil {
		return err
	}

	resp, err := deps.Registry.Fetch(deps.Ctx, &webfetch.Request{
		URL:        c.URL,
		Method:     method,
		AsMarkdown: c.AsMarkdown,
		AsText:     c.AsText,
	}, fetchOptions(c.UserAgent))
	if err != nil {
		return err
	}

	out, err := json.MarshalIndent(resp, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode response: %w", err)
	}
	fmt.Fprintln(deps.Stdout, string(out))

	return nil
}
