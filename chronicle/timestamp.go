package chronicle

import (
	"strconv"
	"time"

	"github.com/pkg/errors"
	"github.com/vmihailenco/msgpack/v4"
)

// TimestampLayout always carries milliseconds, e.g. 2020-01-01T00:00:00.000Z
const TimestampLayout = "2006-01-02T15:04:05.000Z07:00"

// Timestamp is a UTC instant stored with millisecond precision
type Timestamp struct {
	time.Time
}

// NewTimestamp from t, converted to UTC and truncated to milliseconds
func NewTimestamp(t time.Time) Timestamp {
	return Timestamp{t.UTC().Truncate(time.Millisecond)}
}

// MarshalJSON in TimestampLayout
func (t Timestamp) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(t.UTC().Format(TimestampLayout))), nil
}

// UnmarshalJSON accepts any RFC 3339 time, null or "" leaves t unchanged
func (t *Timestamp) UnmarshalJSON(data []byte) error {
	if string(data) == "null" || string(data) == `""` {
		return nil
	}

	s, err := strconv.Unquote(string(data))
	if err != nil {
		return errors.Wrapf(err, "timestamp %s", string(data))
	}
	parsed, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return errors.Wrap(err, "timestamp")
	}
	t.Time = parsed.UTC()
	return nil
}

// EncodeMsgpack as a msgpack time
func (t Timestamp) EncodeMsgpack(enc *msgpack.Encoder) error {
	return enc.EncodeTime(t.Time)
}

// DecodeMsgpack from a msgpack time
func (t *Timestamp) DecodeMsgpack(dec *msgpack.Decoder) error {
	parsed, err := dec.DecodeTime()
	if err != nil {
		return err
	}
	t.Time = parsed.UTC()
	return nil
}
