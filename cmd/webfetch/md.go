package main

import (
	"encoding/json"
	"fmt"

	"github.com/fwojciec/webfetch"
)

// Run executes the md command.
func (c *MdCmd) Run(deps *Dependencies) error {
	resp, err := deps.Registry.Fetch(deps.Ctx, &webfetch.Request{
		URL:        c.URL,
		AsMarkdown: true,
	}, fetchOptions(c.UserAgent))
	if err != nil {
		return err
	}

	if c.Output == "json" {
		out, err := json.MarshalIndent(resp, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode response: %w", err)
		}
		fmt.Fprintln(deps.Stdout, string(out))
		return nil
	}

	fmt.Fprintln(deps.Stdout, webfetch.Frontmatter(resp))

	return nil
}
