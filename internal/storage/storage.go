package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/dgraph-io/badger/v4"
	petname "github.com/dustinkirkland/golang-petname"
	"github.com/hailam/chessboard/internal/board"
)

// Storage keys
const (
	keyPreferences    = "preferences"
	positionKeyPrefix = "position/"
)

// ErrNotFound is returned when a named record does not exist.
var ErrNotFound = errors.New("not found")

// Preferences stores viewer settings between runs.
type Preferences struct {
	SquareSize int       `json:"square_size"`
	Flipped    bool      `json:"flipped"`
	ColorText  bool      `json:"color_text"`
	LastOpened time.Time `json:"last_opened"`
}

// DefaultPreferences returns default viewer preferences.
func DefaultPreferences() *Preferences {
	return &Preferences{
		SquareSize: 80,
		Flipped:    false,
		ColorText:  false,
		LastOpened: time.Now(),
	}
}

// Snapshot is a saved position.
type Snapshot struct {
	Name    string    `json:"name"`
	FEN     string    `json:"fen"`
	Hash    uint64    `json:"hash"`
	SavedAt time.Time `json:"saved_at"`
}

// Storage wraps BadgerDB for persistent storage
type Storage struct {
	db *badger.DB
}

// NewStorage opens the database in the default data directory.
func NewStorage() (*Storage, error) {
	dbDir, err := GetDatabaseDir()
	if err != nil {
		return nil, err
	}
	return Open(dbDir)
}

// Open opens (or creates) the database in dir.
func Open(dir string) (*Storage, error) {
	return open(badger.DefaultOptions(dir))
}

// OpenInMemory opens a database that lives only as long as the process.
func OpenInMemory() (*Storage, error) {
	return open(badger.DefaultOptions("").WithInMemory(true))
}

func open(opts badger.Options) (*Storage, error) {
	opts.Logger = nil // Disable logging

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	return &Storage{db: db}, nil
}

// Close closes the database
func (s *Storage) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SavePreferences saves viewer preferences
func (s *Storage) SavePreferences(prefs *Preferences) error {
	prefs.LastOpened = time.Now()
	return s.putJSON(keyPreferences, prefs)
}

// LoadPreferences loads viewer preferences, returns defaults if not found
func (s *Storage) LoadPreferences() (*Preferences, error) {
	prefs := DefaultPreferences()
	err := s.getJSON(keyPreferences, prefs)
	if errors.Is(err, ErrNotFound) {
		return prefs, nil
	}
	return prefs, err
}

// SavePosition stores b under name. An empty name gets a generated one.
func (s *Storage) SavePosition(name string, b *board.Board) (Snapshot, error) {
	if name == "" {
		name = petname.Generate(2, "-")
	}
	if strings.ContainsAny(name, "/ \t\n") {
		return Snapshot{}, fmt.Errorf("invalid position name %q", name)
	}
	snap := Snapshot{
		Name:    name,
		FEN:     b.FEN(),
		Hash:    b.Hash(),
		SavedAt: time.Now(),
	}
	if err := s.putJSON(positionKeyPrefix+name, snap); err != nil {
		return Snapshot{}, err
	}
	return snap, nil
}

// LoadPosition rebuilds the board saved under name.
func (s *Storage) LoadPosition(name string) (*board.Board, error) {
	var snap Snapshot
	if err := s.getJSON(positionKeyPrefix+name, &snap); err != nil {
		return nil, fmt.Errorf("position %q: %w", name, err)
	}
	b, err := board.ParseFEN(snap.FEN)
	if err != nil {
		return nil, fmt.Errorf("position %q: %w", name, err)
	}
	return b, nil
}

// DeletePosition removes a saved position.
func (s *Storage) DeletePosition(name string) error {
	return s.db.Update(func(txn *badger.Txn) error {
		key := []byte(positionKeyPrefix + name)
		if _, err := txn.Get(key); err != nil {
			if errors.Is(err, badger.ErrKeyNotFound) {
				return fmt.Errorf("position %q: %w", name, ErrNotFound)
			}
			return err
		}
		return txn.Delete(key)
	})
}

// ListPositions returns every saved position, sorted by name.
func (s *Storage) ListPositions() ([]Snapshot, error) {
	var snaps []Snapshot

	err := s.db.View(func(txn *badger.Txn) error {
		prefix := []byte(positionKeyPrefix)
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			var snap Snapshot
			err := it.Item().Value(func(val []byte) error {
				return json.Unmarshal(val, &snap)
			})
			if err != nil {
				return err
			}
			snaps = append(snaps, snap)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(snaps, func(i, j int) bool { return snaps[i].Name < snaps[j].Name })
	return snaps, nil
}

func (s *Storage) putJSON(key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), data)
	})
}

func (s *Storage) getJSON(key string, v any) error {
	return s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return ErrNotFound
		}
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, v)
		})
	})
}
