// Package database stores objects identified by a unique ID. Objects are
// encoded with NBT and kept in tables of a Handler, which may be backed by
// LevelDB or SQLite.
package database

import (
	"errors"
	"fmt"
	"log/slog"
)

// ErrNotFound is returned by a Handler if no object with the ID passed exists
// in a table.
var ErrNotFound = errors.New("object not found")

// Handler stores encoded objects grouped in named tables. Implementations are
// safe for concurrent use.
type Handler interface {
	// Load returns the data stored for id in table, or ErrNotFound.
	Load(table, id string) ([]byte, error)
	// LoadAll returns the data of all objects in table.
	LoadAll(table string) ([][]byte, error)
	// Save stores data for id in table, replacing any previous value.
	Save(table, id string, data []byte) error
	// Exists reports if an object with id is present in table.
	Exists(table, id string) (bool, error)
	// Delete removes the object with id from table. Deleting an object that
	// does not exist is not an error.
	Delete(table, id string) error
	// Close closes the Handler.
	Close() error
}

// Object is a value that can be stored in a Database.
type Object interface {
	UniqueID() string
}

// Config holds the settings of a Database.
type Config struct {
	// Log is the Logger errors are reported to. If nil, Log is set to
	// slog.Default().
	Log *slog.Logger
	// Handler is the Handler objects are stored in.
	Handler Handler
	// Table is the name of the table objects are stored in. Each type of
	// Object should have its own table.
	Table string
}

// Database stores and loads objects of type T. Errors returned by the
// underlying Handler are logged and reported as failure values rather than
// returned.
type Database[T Object] struct {
	log   *slog.Logger
	h     Handler
	table string
}

// New creates a Database for objects of type T using the Config passed.
func New[T Object](conf Config) *Database[T] {
	if conf.Log == nil {
		conf.Log = slog.Default()
	}
	if conf.Handler == nil {
		panic("database: config requires a handler")
	}
	if conf.Table == "" {
		panic("database: config requires a table")
	}
	return &Database[T]{log: conf.Log.With("table", conf.Table), h: conf.Handler, table: conf.Table}
}

// LoadObjects loads all objects in the table. If they cannot be loaded, an
// error is logged and an empty slice is returned.
func (db *Database[T]) LoadObjects() []T {
	all, err := db.h.LoadAll(db.table)
	if err != nil {
		db.log.Error("Could not load objects from database.", "err", err)
		return []T{}
	}
	objects := make([]T, 0, len(all))
	for _, data := range all {
		var v T
		if err := decode(data, &v); err != nil {
			db.log.Error("Could not load objects from database.", "err", err)
			return []T{}
		}
		objects = append(objects, v)
	}
	return objects
}

// LoadObject loads the object with the unique ID passed. False is returned if
// the object does not exist or could not be loaded.
func (db *Database[T]) LoadObject(id string) (T, bool) {
	var v T
	data, err := db.h.Load(db.table, id)
	if errors.Is(err, ErrNotFound) {
		return v, false
	}
	if err == nil {
		err = decode(data, &v)
	}
	if err != nil {
		db.log.Error("Could not load object from database.", "id", id, "err", err)
		var zero T
		return zero, false
	}
	return v, true
}

// SaveObject stores the object passed under its unique ID. It returns false
// if the object could not be saved.
func (db *Database[T]) SaveObject(v T) bool {
	if err := db.save(v); err != nil {
		db.log.Error("Could not save object to database.", "id", v.UniqueID(), "err", err)
		return false
	}
	return true
}

func (db *Database[T]) save(v T) error {
	data, err := encode(v)
	if err != nil {
		return err
	}
	return db.h.Save(db.table, v.UniqueID(), data)
}

// ObjectExists checks if an object with the unique ID passed exists.
func (db *Database[T]) ObjectExists(id string) bool {
	ok, err := db.h.Exists(db.table, id)
	if err != nil {
		db.log.Error("Could not check object in database.", "id", id, "err", err)
		return false
	}
	return ok
}

// DeleteID deletes the object with the unique ID passed.
func (db *Database[T]) DeleteID(id string) {
	if err := db.h.Delete(db.table, id); err != nil {
		db.log.Error("Could not delete object.", "id", id, "err", err)
	}
}

// DeleteObject deletes the object passed.
func (db *Database[T]) DeleteObject(v T) {
	db.DeleteID(v.UniqueID())
}

// Close closes the underlying Handler.
func (db *Database[T]) Close() {
	if err := db.h.Close(); err != nil {
		db.log.Error("Could not close database.", "err", err)
	}
}

// Open opens the Handler of the type passed at path. Supported types are
// "leveldb", "sqlite" and "memory". The memory type ignores path.
func Open(typ, path string) (Handler, error) {
	var (
		h   Handler
		err error
	)
	switch typ {
	case "leveldb", "":
		h, err = OpenLevelDB(path)
	case "sqlite":
		h, err = OpenSQLite(path)
	case "memory":
		h, err = NewMemory()
	default:
		return nil, fmt.Errorf("unknown database type %q", typ)
	}
	if err != nil {
		return nil, err
	}
	return h, nil
}
