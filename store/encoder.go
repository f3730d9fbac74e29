package store

import (
	"encoding/json"
	"strings"

	"github.com/pkg/errors"
	"github.com/vmihailenco/msgpack/v4"
	"gitlab.com/chronicle/chronicle"
)

// ErrMalformed the bytes are not valid JSON at all, as opposed to valid
// JSON that does not fit the document layout
var ErrMalformed = errors.New("malformed document")

// Codec serializes a whole document
type Codec interface {
	Name() string
	Encode(doc *chronicle.Document) ([]byte, error)
	Decode(data []byte) (*chronicle.Document, error)
}

// JSONCodec is the persisted layout
type JSONCodec struct{}

// Name of the codec
func (JSONCodec) Name() string { return "json" }

// Encode doc as JSON
func (JSONCodec) Encode(doc *chronicle.Document) ([]byte, error) {
	return json.Marshal(doc)
}

// Decode a JSON document
func (JSONCodec) Decode(data []byte) (*chronicle.Document, error) {
	if !json.Valid(data) {
		return nil, errors.Wrap(ErrMalformed, "decode json document")
	}

	doc := &chronicle.Document{}
	if err := json.Unmarshal(data, doc); err != nil {
		return nil, errors.Wrap(err, "decode json document")
	}
	return doc, nil
}

// MsgpackCodec is a compact binary layout used for backups
type MsgpackCodec struct{}

// Name of the codec
func (MsgpackCodec) Name() string { return "msgpack" }

// Encode doc with msgpack
func (MsgpackCodec) Encode(doc *chronicle.Document) ([]byte, error) {
	return msgpack.Marshal(doc)
}

// Decode a msgpack document
func (MsgpackCodec) Decode(data []byte) (*chronicle.Document, error) {
	doc := &chronicle.Document{}
	if err := msgpack.Unmarshal(data, doc); err != nil {
		return nil, errors.Wrap(err, "decode msgpack document")
	}
	return doc, nil
}

// CodecByName returns json or msgpack
func CodecByName(name string) (Codec, error) {
	switch strings.ToLower(name) {
	case "", "json":
		return JSONCodec{}, nil
	case "msgpack", "mp":
		return MsgpackCodec{}, nil
	}
	return nil, errors.Errorf("unknown codec %q", name)
}
