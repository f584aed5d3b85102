package cmd

import (
	"strings"
)

// ExecuteLine executes a command line on behalf of the Source passed. A
// leading slash is optional. If the command cannot be found, an error is sent
// back to the Source. The optional before function may be supplied to
// intercept execution; returning false from it will stop execution.
func ExecuteLine(source Source, commandLine string, before func(Command, []string) bool) {
	if source == nil {
		panic("cmd.ExecuteLine: source must not be nil")
	}
	args := strings.Fields(commandLine)
	if len(args) == 0 {
		return
	}
	name := strings.TrimPrefix(args[0], "/")
	if name == "" {
		return
	}

	output := &Output{}
	command, ok := ByAlias(name)
	if !ok {
		output.Errorf("Unknown command: %v. Run help for a list of commands.", name)
		source.SendCommandOutput(output)
		return
	}
	if before != nil && !before(command, args[1:]) {
		return
	}
	command.Run(source, args[1:], output)
	source.SendCommandOutput(output)
}
