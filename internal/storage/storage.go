// Package storage persists games in a local BadgerDB instance: the
// starting FEN, the applied move list and the final status, keyed by game
// ID. Positions travel as FEN text only; replaying the move list through
// the rules engine is the loader's job.
package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/dgraph-io/badger/v4"
)

const gameKeyPrefix = "game:"

// ErrNotFound is returned when no record exists for the requested ID.
var ErrNotFound = errors.New("game not found")

// Record is the stored form of a game.
type Record struct {
	ID        string    `json:"id"`
	StartFEN  string    `json:"start_fen"`
	Moves     []string  `json:"moves"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Store wraps a BadgerDB handle.
type Store struct {
	db *badger.DB
}

// Open opens (or creates) a store rooted at dir.
func Open(dir string) (*Store, error) {
	opts := badger.DefaultOptions(dir)
	opts.Logger = nil // Badger's own logging is noise here

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	return &Store{db: db}, nil
}

// OpenDefault opens the store in the platform data directory.
func OpenDefault() (*Store, error) {
	dir, err := GetDatabaseDir()
	if err != nil {
		return nil, err
	}
	return Open(dir)
}

// Close closes the underlying database.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func gameKey(id string) []byte {
	return []byte(gameKeyPrefix + id)
}

// SaveGame writes the record, stamping CreatedAt on first save and
// UpdatedAt always.
func (s *Store) SaveGame(rec *Record) error {
	if rec.ID == "" {
		return errors.New("record needs an ID")
	}
	now := time.Now()
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = now
	}
	rec.UpdatedAt = now

	data, err := json.Marshal(rec)
	if err != nil {
		return err
	}
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(gameKey(rec.ID), data)
	})
}

// LoadGame reads the record for id, or ErrNotFound.
func (s *Store) LoadGame(id string) (*Record, error) {
	var rec Record

	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(gameKey(id))
		if err == badger.ErrKeyNotFound {
			return ErrNotFound
		}
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &rec)
		})
	})
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

// ListGames returns all stored records, newest first.
func (s *Store) ListGames() ([]*Record, error) {
	var recs []*Record

	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(gameKeyPrefix)
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Rewind(); it.Valid(); it.Next() {
			var rec Record
			err := it.Item().Value(func(val []byte) error {
				return json.Unmarshal(val, &rec)
			})
			if err != nil {
				return err
			}
			recs = append(recs, &rec)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	for i, j := 0, len(recs)-1; i < j; i, j = i+1, j-1 {
		recs[i], recs[j] = recs[j], recs[i]
	}
	return recs, nil
}

// DeleteGame removes the record for id. Deleting a missing record is not
// an error.
func (s *Store) DeleteGame(id string) error {
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Delete(gameKey(id))
	})
}
