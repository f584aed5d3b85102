// Command inspect_flags prints the feature flags stored in a flag database.
package main

import (
	"flag"
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/dm-vev/cleanflat/server/database"
	"github.com/dm-vev/cleanflat/server/flags"
	"github.com/sandertv/gophertunnel/minecraft/nbt"
)

func main() {
	typ := flag.String("type", "leveldb", "database type: leveldb or sqlite")
	path := flag.String("path", "flags", "path of the database")
	flag.Parse()

	if err := dump(*typ, *path); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func dump(typ, path string) error {
	h, err := database.Open(typ, path)
	if err != nil {
		return err
	}
	defer h.Close()

	all, err := h.LoadAll("world_flags")
	if err != nil {
		return err
	}
	entries := make([]flags.WorldFlags, 0, len(all))
	for _, data := range all {
		var wf flags.WorldFlags
		if err := nbt.UnmarshalEncoding(data, &wf, nbt.LittleEndian); err != nil {
			fmt.Fprintf(os.Stderr, "skipping entry: %v\n", err)
			continue
		}
		entries = append(entries, wf)
	}
	slices.SortFunc(entries, func(a, b flags.WorldFlags) int {
		return strings.Compare(a.World, b.World)
	})

	for _, wf := range entries {
		ids := make([]string, 0, len(wf.Flags))
		for id := range wf.Flags {
			ids = append(ids, id)
		}
		slices.Sort(ids)
		fmt.Printf("%s\n", wf.World)
		for _, id := range ids {
			state := "off"
			if wf.Flags[id] != 0 {
				state = "on"
			}
			if _, known := flags.ByID(id); !known {
				state += " (unknown flag)"
			}
			fmt.Printf("  %s = %s\n", id, state)
		}
	}
	return nil
}
