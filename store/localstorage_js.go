// +build js,wasm

package store

import (
	"syscall/js"

	"github.com/pkg/errors"
	"gitlab.com/chronicle/chronicle"
)

// LocalStorage persists values in the browser's window.localStorage
type LocalStorage struct {
	storage js.Value
}

// NewLocalStorage for wasm builds running in a browser
func NewLocalStorage() *LocalStorage {
	return &LocalStorage{}
}

func newLocalStorage() (chronicle.KeyValueStore, error) {
	return NewLocalStorage(), nil
}

func newBadgerStore(string) (chronicle.KeyValueStore, error) {
	return nil, errors.New("badger backend is not available in js/wasm builds")
}

// Init looks up window.localStorage
func (s *LocalStorage) Init() (err error) {
	defer recoverJS(&err)

	s.storage = js.Global().Get("localStorage")
	if s.storage.IsUndefined() || s.storage.IsNull() {
		return errors.New("localStorage is not available")
	}
	return nil
}

// Get the item stored under key, nil if absent
func (s *LocalStorage) Get(key string) (value []byte, err error) {
	defer recoverJS(&err)

	if s.storage.IsUndefined() {
		return nil, chronicle.ErrNotInitialized
	}

	v := s.storage.Call("getItem", key)
	if v.IsNull() || v.IsUndefined() {
		return nil, nil
	}
	return []byte(v.String()), nil
}

// Set the item stored under key
func (s *LocalStorage) Set(key string, value []byte) (err error) {
	defer recoverJS(&err)

	if s.storage.IsUndefined() {
		return chronicle.ErrNotInitialized
	}

	s.storage.Call("setItem", key, string(value))
	return nil
}

// Close is a no-op
func (s *LocalStorage) Close() error {
	return nil
}

// recoverJS turns a thrown DOMException into an error
func recoverJS(err *error) {
	r := recover()
	if r == nil {
		return
	}

	jsErr, ok := r.(js.Error)
	if !ok {
		*err = errors.Errorf("localStorage: %v", r)
		return
	}

	if jsErr.Get("name").String() == "QuotaExceededError" {
		*err = errors.Wrap(chronicle.ErrQuotaExceeded, jsErr.Error())
		return
	}
	*err = errors.Wrap(jsErr, "localStorage")
}
