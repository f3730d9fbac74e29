package chronicle

import "time"

// StorageKey the document is persisted under
const StorageKey = "chronicle_data"

// KeyValueStore persists opaque values by key. Get returns nil, nil for
// a key that was never set. Implementations report capacity failures with
// an error matching ErrQuotaExceeded.
type KeyValueStore interface {
	Init() error
	Get(key string) ([]byte, error)
	Set(key string, value []byte) error
	Close() error
}

// Confirmer asks the user a yes/no question
type Confirmer interface {
	Confirm(prompt string) bool
}

// Notifier shows a message to the user
type Notifier interface {
	Notify(message string)
}

// Clock source of timestamps
type Clock interface {
	Now() time.Time
}

// IDGenerator creates record identifiers for a kind (circle, member...)
type IDGenerator interface {
	NewID(kind string) string
}

// ConfirmFunc adapts a function to Confirmer
type ConfirmFunc func(prompt string) bool

// Confirm calls f
func (f ConfirmFunc) Confirm(prompt string) bool {
	return f(prompt)
}

// NotifyFunc adapts a function to Notifier
type NotifyFunc func(message string)

// Notify calls f
func (f NotifyFunc) Notify(message string) {
	f(message)
}

// ClockFunc adapts a function to Clock
type ClockFunc func() time.Time

// Now calls f
func (f ClockFunc) Now() time.Time {
	return f()
}
