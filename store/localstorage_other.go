// +build !js !wasm

package store

import (
	"github.com/pkg/errors"
	"gitlab.com/chronicle/chronicle"
)

func newLocalStorage() (chronicle.KeyValueStore, error) {
	return nil, errors.New("localstorage backend is only available in js/wasm builds")
}
