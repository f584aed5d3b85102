// Package cmd implements the commands that may be run from the server
// console. Commands are registered once and looked up by name or alias.
package cmd

import (
	"maps"
	"strings"
	"sync"
)

// Source is the source that executes a command.
type Source interface {
	// Name returns the name shown when referring to the Source.
	Name() string
	// SendCommandOutput sends the output of a command to the Source.
	SendCommandOutput(o *Output)
}

// Command is a command that may be executed by a Source.
type Command interface {
	// Name returns the name the command is run with.
	Name() string
	// Aliases returns additional names the command may be run with.
	Aliases() []string
	// Description returns a short description shown in the help list.
	Description() string
	// Usage returns the usage of the command, excluding its name.
	Usage() string
	// Run runs the command with the arguments passed, writing its results to
	// o.
	Run(src Source, args []string, o *Output)
}

var (
	commandMu sync.RWMutex
	commands  = map[string]Command{}
)

// Register registers a Command under its name and aliases, replacing
// commands registered under the same names before.
func Register(command Command) {
	commandMu.Lock()
	defer commandMu.Unlock()
	commands[strings.ToLower(command.Name())] = command
	for _, alias := range command.Aliases() {
		commands[strings.ToLower(alias)] = command
	}
}

// ByAlias returns the Command registered under the name or alias passed.
func ByAlias(alias string) (Command, bool) {
	commandMu.RLock()
	defer commandMu.RUnlock()
	command, ok := commands[strings.ToLower(alias)]
	return command, ok
}

// Commands returns all registered commands, keyed by the names and aliases
// they are registered under.
func Commands() map[string]Command {
	commandMu.RLock()
	defer commandMu.RUnlock()
	return maps.Clone(commands)
}
