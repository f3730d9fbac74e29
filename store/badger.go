// +build !js

package store

import (
	"os"

	badger "github.com/dgraph-io/badger/v2"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"gitlab.com/chronicle/chronicle"
)

// BadgerStore persists values in a badger database
type BadgerStore struct {
	Store    *badger.DB
	filepath string
	inMemory bool
}

// NewBadgerStore for on disk storage under filepath
func NewBadgerStore(filepath string) *BadgerStore {
	return &BadgerStore{filepath: filepath}
}

// NewInMemoryBadgerStore keeps the badger tables in memory only
func NewInMemoryBadgerStore() *BadgerStore {
	return &BadgerStore{inMemory: true}
}

func newBadgerStore(filepath string) (chronicle.KeyValueStore, error) {
	return NewBadgerStore(filepath), nil
}

// Init opens the database, creating the directory if needed
func (s *BadgerStore) Init() error {
	var err error

	if s.inMemory {
		s.Store, err = badger.Open(badger.DefaultOptions("").WithInMemory(true).WithLogger(&badgerLogger{}))
		return err
	}

	if err = os.MkdirAll(s.filepath, 0700); err != nil {
		return err
	}

	s.Store, err = badger.Open(badger.DefaultOptions(s.filepath).WithLogger(&badgerLogger{}))

	if errors.Is(err, badger.ErrTruncateNeeded) {
		log.Warn().Str("path", s.filepath).Msg("there was a failure re-opening database, trying to recover")
		opts := badger.DefaultOptions(s.filepath).WithLogger(&badgerLogger{})
		opts.Truncate = true
		s.Store, err = badger.Open(opts)
	}

	if err != nil {
		return err
	}
	return nil
}

// Get the value stored under key, nil if it was never set
func (s *BadgerStore) Get(key string) ([]byte, error) {
	if s.Store == nil {
		return nil, chronicle.ErrNotInitialized
	}

	var value []byte
	err := s.Store.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		value, err = item.ValueCopy(nil)
		return err
	})
	return value, err
}

// Set replaces the value stored under key
func (s *BadgerStore) Set(key string, value []byte) error {
	if s.Store == nil {
		return chronicle.ErrNotInitialized
	}

	err := s.Store.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), value)
	})

	if errors.Is(err, badger.ErrTxnTooBig) {
		return errors.Wrapf(chronicle.ErrQuotaExceeded, "badger: %v", err)
	}
	return err
}

// Close the database
func (s *BadgerStore) Close() error {
	if s.Store == nil {
		return nil
	}
	return s.Store.Close()
}

// badgerLogger routes badger's own logging into zerolog
type badgerLogger struct{}

func (l *badgerLogger) Errorf(f string, v ...interface{}) {
	log.Error().Str("component", "badger").Msgf(f, v...)
}

func (l *badgerLogger) Warningf(f string, v ...interface{}) {
	log.Warn().Str("component", "badger").Msgf(f, v...)
}

func (l *badgerLogger) Infof(f string, v ...interface{}) {
	log.Debug().Str("component", "badger").Msgf(f, v...)
}

func (l *badgerLogger) Debugf(f string, v ...interface{}) {
	log.Debug().Str("component", "badger").Msgf(f, v...)
}
