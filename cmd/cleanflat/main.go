// Command cleanflat runs a server hosting the worlds of game modes and
// regenerates chunks that were generated as superflat before the generator
// of their game mode was attached.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/dm-vev/cleanflat/server"
	_ "github.com/dm-vev/cleanflat/server/block"
	"github.com/dm-vev/cleanflat/server/console"
	"github.com/pelletier/go-toml"
)

func main() {
	path := flag.String("config", "config.toml", "path of the server configuration file")
	debug := flag.Bool("debug", false, "enable debug logging")
	flag.Parse()

	level := slog.LevelInfo
	if *debug {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	if err := run(*path, log); err != nil {
		log.Error("Server stopped with an error.", "err", err)
		os.Exit(1)
	}
}

func run(path string, log *slog.Logger) error {
	uc, err := readConfig(path)
	if err != nil {
		return err
	}
	conf, err := uc.Config(log)
	if err != nil {
		return err
	}
	srv, err := conf.New()
	if err != nil {
		return err
	}
	defer srv.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		console.New(srv, log).Run(ctx)
	}()
	log.Info("Starting server.", "name", srv.Name(), "worlds", len(srv.Worlds()))
	return srv.Run(ctx)
}

// readConfig reads the configuration from the file at path. If the file does
// not exist, a default configuration is written to it.
func readConfig(path string) (server.UserConfig, error) {
	c := server.DefaultConfig()
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		data, err = toml.Marshal(c)
		if err != nil {
			return c, fmt.Errorf("encode default config: %w", err)
		}
		if err := os.WriteFile(path, data, 0644); err != nil {
			return c, fmt.Errorf("create default config: %w", err)
		}
		return c, nil
	}
	if err != nil {
		return c, fmt.Errorf("read config: %w", err)
	}
	if err := toml.Unmarshal(data, &c); err != nil {
		return c, fmt.Errorf("decode config: %w", err)
	}
	return c, nil
}
