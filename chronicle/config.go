package chronicle

// Backends selecting the KeyValueStore implementation
const (
	// BackendBadger persists to a badger directory under DataPath
	BackendBadger = "badger"
	// BackendMemory keeps everything in process, lost on exit
	BackendMemory = "memory"
	// BackendLocalStorage uses window.localStorage, js/wasm builds only
	BackendLocalStorage = "localstorage"
)

// Config for chronicle
type Config struct {
	DataPath         string `toml:"data_path"`
	Backend          string `toml:"backend"`
	StorageKey       string `toml:"storage_key"`
	MaxDocumentBytes int    `toml:"max_document_bytes"` // 0 disables the capacity check
	LogLevel         string `toml:"log_level"`
}

// Defaults fills unset fields
func (c *Config) Defaults() {
	if c.DataPath == "" {
		c.DataPath = "chronicledata"
	}
	if c.Backend == "" {
		c.Backend = BackendBadger
	}
	if c.StorageKey == "" {
		c.StorageKey = StorageKey
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
}
