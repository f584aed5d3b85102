package builtin

import (
	"slices"
	"strings"

	"github.com/dm-vev/cleanflat/server/cmd"
)

type helpCommand struct {
	info
}

func newHelpCommand() cmd.Command {
	return helpCommand{info: info{name: "help", aliases: []string{"?"}, usage: "[command]", description: "Shows available commands and their usage."}}
}

func (helpCommand) Run(_ cmd.Source, args []string, o *cmd.Output) {
	if len(args) > 0 {
		name := strings.ToLower(strings.TrimPrefix(args[0], "/"))
		command, found := cmd.ByAlias(name)
		if !found {
			o.Errorf("Unknown command: %v.", name)
			return
		}
		if desc := command.Description(); desc != "" {
			o.Print(desc)
		}
		o.Print(strings.TrimSpace("Usage: " + command.Name() + " " + command.Usage()))
		return
	}

	commands := cmd.Commands()
	names := make([]string, 0, len(commands))
	for alias, command := range commands {
		if command.Name() == alias {
			names = append(names, alias)
		}
	}
	if len(names) == 0 {
		o.Print("No commands available.")
		return
	}
	slices.Sort(names)

	o.Printf("Available commands (%d):", len(names))
	for _, name := range names {
		command, _ := cmd.ByAlias(name)
		line := name
		if usage := command.Usage(); usage != "" {
			line += " " + usage
		}
		if desc := command.Description(); desc != "" {
			line += " - " + desc
		}
		o.Print(line)
	}
}
