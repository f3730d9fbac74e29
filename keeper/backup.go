package keeper

import (
	"io"
	"io/ioutil"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"gitlab.com/chronicle/store"
)

// Export writes the whole document to w using codec
func (k *Keeper) Export(w io.Writer, codec store.Codec) error {
	k.mu.Lock()
	doc, err := k.load()
	k.mu.Unlock()
	if err != nil {
		return err
	}

	data, err := codec.Encode(doc)
	if err != nil {
		return errors.Wrap(err, "encode export")
	}
	_, err = w.Write(data)
	return err
}

// Import replaces the whole document with one read from r. The current
// document is left untouched if r cannot be decoded.
func (k *Keeper) Import(r io.Reader, codec store.Codec) error {
	data, err := ioutil.ReadAll(r)
	if err != nil {
		return errors.Wrap(err, "read import")
	}

	doc, err := codec.Decode(data)
	if err != nil {
		return err
	}

	k.mu.Lock()
	defer k.mu.Unlock()

	if violations := Check(doc); len(violations) > 0 {
		log.Warn().Int("violations", len(violations)).Msg("imported document has integrity violations")
	}
	return k.save(doc)
}
