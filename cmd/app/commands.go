package main

import (
	"github.com/urfave/cli/v3"
)

func getCommands() []*cli.Command {
	cmds := []*cli.Command{}
	cmds = append(cmds, getPasswordCommands()...)
	return cmds
}

// firstNonEmpty returns the first non-empty value.
func firstNonEmpty(values ...string) string {
	for _, value := range values {
		if value != "" {
			return value
		}
	}
	return ""
}
