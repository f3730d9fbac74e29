package keeper

import (
	"bytes"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	uuid "github.com/satori/go.uuid"
	"gitlab.com/chronicle/chronicle"
	"gitlab.com/chronicle/store"
)

// QuotaMessage is shown to the user when the store is full
const QuotaMessage = "Storage is full!"

// Keeper owns the persisted document. Every operation loads the whole
// document, mutates it and writes it back in full.
type Keeper struct {
	cfg       *chronicle.Config
	kv        chronicle.KeyValueStore
	codec     store.Codec
	confirmer chronicle.Confirmer
	notifier  chronicle.Notifier
	clock     chronicle.Clock
	ids       chronicle.IDGenerator

	mu sync.Mutex
}

// Option configures a Keeper
type Option func(k *Keeper)

// WithConfirmer used before deleting a circle
func WithConfirmer(c chronicle.Confirmer) Option {
	return func(k *Keeper) { k.confirmer = c }
}

// WithNotifier used when the store is full
func WithNotifier(n chronicle.Notifier) Option {
	return func(k *Keeper) { k.notifier = n }
}

// WithClock for timestamps
func WithClock(c chronicle.Clock) Option {
	return func(k *Keeper) { k.clock = c }
}

// WithIDs for record identifiers
func WithIDs(g chronicle.IDGenerator) Option {
	return func(k *Keeper) { k.ids = g }
}

// New keeper over an initialized kv store. Without options deletions are
// always confirmed, notifications are only logged, ids are random uuids.
func New(cfg *chronicle.Config, kv chronicle.KeyValueStore, opts ...Option) *Keeper {
	if cfg == nil {
		cfg = &chronicle.Config{}
	}
	cfg.Defaults()

	k := &Keeper{
		cfg:       cfg,
		kv:        kv,
		codec:     store.JSONCodec{},
		confirmer: chronicle.ConfirmFunc(func(string) bool { return true }),
		notifier: chronicle.NotifyFunc(func(msg string) {
			log.Warn().Msg(msg)
		}),
		clock: chronicle.ClockFunc(time.Now),
		ids:   &uuidGenerator{},
	}

	for _, opt := range opts {
		opt(k)
	}
	return k
}

// LoadDocument returns the persisted document. A missing or unparseable
// document is replaced with (and persisted as) an empty one. A stored value
// that cannot be read, or is valid JSON of the wrong shape, is left in place
// and an empty document is returned.
func (k *Keeper) LoadDocument() *chronicle.Document {
	k.mu.Lock()
	defer k.mu.Unlock()

	doc, _ := k.load()
	return doc
}

// SaveDocument stamps lastUpdated and writes doc. Failures are logged and
// reported as false.
func (k *Keeper) SaveDocument(doc *chronicle.Document) bool {
	k.mu.Lock()
	defer k.mu.Unlock()

	return k.save(doc) == nil
}

// load the stored document. A non-nil error means the stored value could
// not be used and must not be overwritten; the returned document is then an
// empty default.
func (k *Keeper) load() (*chronicle.Document, error) {
	data, err := k.kv.Get(k.cfg.StorageKey)
	if err != nil {
		log.Error().Err(err).Str("key", k.cfg.StorageKey).Msg("failed to read document")
		return chronicle.NewDocument(k.now()), errors.Wrap(err, "read document")
	}

	data = bytes.TrimSpace(data)
	if len(data) > 0 && !bytes.Equal(data, []byte("null")) {
		doc, err := k.codec.Decode(data)
		if err == nil {
			doc.Normalize(k.now())
			return doc, nil
		}
		if !errors.Is(err, store.ErrMalformed) {
			log.Error().Err(err).Str("key", k.cfg.StorageKey).Msg("stored document has an unexpected layout, leaving it in place")
			return chronicle.NewDocument(k.now()), err
		}
		log.Error().Err(err).Str("key", k.cfg.StorageKey).Msg("failed to parse document, starting over")
	}

	doc := chronicle.NewDocument(k.now())
	k.save(doc)
	return doc, nil
}

// commit saves doc unless loadErr says the stored value must be kept
func (k *Keeper) commit(doc *chronicle.Document, loadErr error) error {
	if loadErr != nil {
		log.Warn().Err(loadErr).Str("key", k.cfg.StorageKey).Msg("not overwriting unusable stored document")
		return &chronicle.SaveError{Err: loadErr}
	}
	return k.save(doc)
}

func (k *Keeper) save(doc *chronicle.Document) error {
	doc.Normalize(k.now())
	doc.Settings.LastUpdated = chronicle.NewTimestamp(k.now())

	data, err := k.codec.Encode(doc)
	if err == nil {
		if k.cfg.MaxDocumentBytes > 0 && len(data) > k.cfg.MaxDocumentBytes {
			err = errors.Wrapf(chronicle.ErrQuotaExceeded, "document is %d bytes, limit is %d", len(data), k.cfg.MaxDocumentBytes)
		} else {
			err = k.kv.Set(k.cfg.StorageKey, data)
		}
	}

	if err != nil {
		log.Error().Err(err).Str("key", k.cfg.StorageKey).Msg("failed to save document")
		if errors.Is(err, chronicle.ErrQuotaExceeded) {
			k.notifier.Notify(QuotaMessage)
		}
		return &chronicle.SaveError{Err: err}
	}

	log.Debug().Int("bytes", len(data)).Msg("document saved")
	return nil
}

// now in UTC at millisecond precision, the resolution of the stored timestamps
func (k *Keeper) now() time.Time {
	return k.clock.Now().UTC().Truncate(time.Millisecond)
}

type uuidGenerator struct{}

func (g *uuidGenerator) NewID(kind string) string {
	return kind + "_" + uuid.NewV4().String()
}
