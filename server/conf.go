package server

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/dm-vev/cleanflat/server/database"
	"github.com/dm-vev/cleanflat/server/gamemode"
	"github.com/dm-vev/cleanflat/server/world"
	"github.com/dm-vev/cleanflat/server/world/generator"
)

// Config contains options for starting a server that hosts game mode worlds.
type Config struct {
	// Log is the Logger to use for logging information. If nil, Log is set to
	// slog.Default().
	Log *slog.Logger
	// Name is the name of the server.
	Name string
	// TickRate is the number of ticks per second the Server runs at. If zero
	// or less, TickRate is set to 20.
	TickRate int
	// Database is the database.Handler flags are persisted in. If nil, flags
	// are kept in memory and lost when the Server is closed.
	Database database.Handler
	// Registry holds the worlds managed by game modes. A world is created for
	// every entry when the Server is created.
	Registry *gamemode.Registry
	// Generator should return the world.Generator worlds of the
	// world.Dimension passed are created with. If left empty, Generator
	// returns a superflat generator for every dimension, which is what worlds
	// end up with when the generator of their game mode is not attached in
	// time.
	Generator func(dim world.Dimension) world.Generator
	// LogCleanSuperFlatChunks enables an info line for every chunk regenerated
	// after being generated as superflat.
	LogCleanSuperFlatChunks bool
	// CleanSuperFlatRetries is the number of times regenerating a chunk may
	// fail before it is dropped. If zero or less, 3 is used.
	CleanSuperFlatRetries int
}

// New creates a Server using fields of conf. The worlds of the Registry are
// created, but chunks are only regenerated once the Server is running.
func (conf Config) New() (*Server, error) {
	if conf.Log == nil {
		conf.Log = slog.Default()
	}
	if conf.Name == "" {
		conf.Name = "Cleanflat Server"
	}
	if conf.TickRate <= 0 {
		conf.TickRate = 20
	}
	if conf.Registry == nil {
		return nil, errors.New("create server: no world registry configured")
	}
	if conf.Generator == nil {
		conf.Generator = func(world.Dimension) world.Generator {
			return generator.SuperFlat()
		}
	}
	return newServer(conf)
}

// UserConfig is the user configuration of a server. It holds settings that
// affect different aspects of the server, such as its name and the way worlds
// are repaired.
type UserConfig struct {
	Server struct {
		// Name is the name of the server.
		Name string
		// TickRate is the number of ticks per second.
		TickRate int
	}
	Database struct {
		// Type is the backend flags are stored in: "leveldb", "sqlite" or
		// "memory".
		Type string
		// Path is the file or directory the database is stored in.
		Path string
	}
	Worlds struct {
		// File is the TOML file that lists the worlds managed by game modes.
		File string
	}
	CleanSuperFlat struct {
		// LogChunks enables a line in the log for every chunk regenerated.
		LogChunks bool
		// RetryBudget is the number of failed attempts after which a chunk is
		// no longer regenerated.
		RetryBudget int
	}
}

// Config converts a UserConfig to a Config, so that it may be used for
// creating a Server. An error is returned if the database or the world
// registry could not be opened.
func (uc UserConfig) Config(log *slog.Logger) (Config, error) {
	conf := Config{
		Log:                     log,
		Name:                    uc.Server.Name,
		TickRate:                uc.Server.TickRate,
		LogCleanSuperFlatChunks: uc.CleanSuperFlat.LogChunks,
		CleanSuperFlatRetries:   uc.CleanSuperFlat.RetryBudget,
	}
	reg, err := gamemode.LoadRegistry(uc.Worlds.File)
	if err != nil {
		return conf, fmt.Errorf("load world registry: %w", err)
	}
	conf.Registry = reg

	h, err := database.Open(uc.Database.Type, uc.Database.Path)
	if err != nil {
		return conf, fmt.Errorf("open database: %w", err)
	}
	conf.Database = h
	return conf, nil
}

// DefaultConfig returns a configuration with the default values filled out.
func DefaultConfig() UserConfig {
	c := UserConfig{}
	c.Server.Name = "Cleanflat Server"
	c.Server.TickRate = 20
	c.Database.Type = "leveldb"
	c.Database.Path = "flags"
	c.Worlds.File = "worlds.toml"
	c.CleanSuperFlat.LogChunks = false
	c.CleanSuperFlat.RetryBudget = 3
	return c
}
