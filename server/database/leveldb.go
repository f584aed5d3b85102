package database

import (
	"errors"
	"fmt"

	"github.com/df-mc/goleveldb/leveldb"
	"github.com/df-mc/goleveldb/leveldb/storage"
	"github.com/df-mc/goleveldb/leveldb/util"
)

// LevelDB is a Handler storing objects in a LevelDB database. Keys are made
// up of the table name and the object ID, separated by a slash.
type LevelDB struct {
	db *leveldb.DB
}

// OpenLevelDB opens or creates the LevelDB database in the directory passed.
func OpenLevelDB(dir string) (*LevelDB, error) {
	db, err := leveldb.OpenFile(dir, nil)
	if err != nil {
		return nil, fmt.Errorf("open leveldb: %w", err)
	}
	return &LevelDB{db: db}, nil
}

// NewMemory returns a LevelDB Handler that keeps all data in memory.
func NewMemory() (*LevelDB, error) {
	db, err := leveldb.Open(storage.NewMemStorage(), nil)
	if err != nil {
		return nil, fmt.Errorf("open memory leveldb: %w", err)
	}
	return &LevelDB{db: db}, nil
}

// DB returns the underlying LevelDB database.
func (l *LevelDB) DB() *leveldb.DB {
	return l.db
}

// Load ...
func (l *LevelDB) Load(table, id string) ([]byte, error) {
	data, err := l.db.Get(key(table, id), nil)
	if errors.Is(err, leveldb.ErrNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load %v/%v: %w", table, id, err)
	}
	return data, nil
}

// LoadAll ...
func (l *LevelDB) LoadAll(table string) ([][]byte, error) {
	iter := l.db.NewIterator(util.BytesPrefix([]byte(table+"/")), nil)
	defer iter.Release()

	var all [][]byte
	for iter.Next() {
		all = append(all, append([]byte(nil), iter.Value()...))
	}
	if err := iter.Error(); err != nil {
		return nil, fmt.Errorf("iterate %v: %w", table, err)
	}
	return all, nil
}

// Save ...
func (l *LevelDB) Save(table, id string, data []byte) error {
	if err := l.db.Put(key(table, id), data, nil); err != nil {
		return fmt.Errorf("save %v/%v: %w", table, id, err)
	}
	return nil
}

// Exists ...
func (l *LevelDB) Exists(table, id string) (bool, error) {
	ok, err := l.db.Has(key(table, id), nil)
	if err != nil {
		return false, fmt.Errorf("check %v/%v: %w", table, id, err)
	}
	return ok, nil
}

// Delete ...
func (l *LevelDB) Delete(table, id string) error {
	if err := l.db.Delete(key(table, id), nil); err != nil {
		return fmt.Errorf("delete %v/%v: %w", table, id, err)
	}
	return nil
}

// Close ...
func (l *LevelDB) Close() error {
	return l.db.Close()
}

func key(table, id string) []byte {
	return []byte(table + "/" + id)
}
