package file

import (
	"os"
	"path/filepath"
	"sync"

	"github.com/pelletier/go-toml/v2"
)

// EnvAPIKey overrides the stored api.nasa.gov key when set.
const EnvAPIKey = "NASA_API_KEY"

// DemoAPIKey is the unauthenticated api.nasa.gov key. It works with a
// sharply reduced quota and is only a fallback for first runs.
const DemoAPIKey = "DEMO_KEY"

// Config is the persisted application configuration. Empty base URLs
// select the public NASA hosts.
type Config struct {
	APIKey        string `toml:"api_key"`
	APODBaseURL   string `toml:"apod_base_url"`
	ImagesBaseURL string `toml:"images_base_url"`
	OSDRBaseURL   string `toml:"osdr_base_url"`
	Verbose       bool   `toml:"verbose"`
}

// ConfigStore is a TOML-backed configuration store.
type ConfigStore struct {
	mu       sync.RWMutex
	filePath string
	config   Config
}

// NewConfigStore creates the store and loads any existing file.
// If configDir is empty, defaults to ~/.astroview/config.toml.
func NewConfigStore(configDir string) (*ConfigStore, error) {
	if configDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		configDir = filepath.Join(home, ".astroview")
	}

	if err := os.MkdirAll(configDir, 0700); err != nil {
		return nil, err
	}

	s := &ConfigStore{
		filePath: filepath.Join(configDir, "config.toml"),
		config:   Config{APIKey: DemoAPIKey},
	}

	if err := s.Load(); err != nil && !os.IsNotExist(err) {
		return nil, err
	}
	return s, nil
}

// Config returns a snapshot of the current configuration with the
// environment override applied.
func (s *ConfigStore) Config() Config {
	s.mu.RLock()
	cfg := s.config
	s.mu.RUnlock()

	if key := os.Getenv(EnvAPIKey); key != "" {
		cfg.APIKey = key
	}
	if cfg.APIKey == "" {
		cfg.APIKey = DemoAPIKey
	}
	return cfg
}

// SetAPIKey stores a new API key and persists immediately.
func (s *ConfigStore) SetAPIKey(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.config.APIKey = key
	return s.save()
}

// Save persists the current configuration to disk.
func (s *ConfigStore) Save() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.save()
}

// save writes the TOML file (caller must hold lock).
func (s *ConfigStore) save() error {
	data, err := toml.Marshal(s.config)
	if err != nil {
		return err
	}

	// Write with restricted permissions
	return os.WriteFile(s.filePath, data, 0600)
}

// Load reads the TOML file. A missing file leaves the defaults in
// place and is not an error.
func (s *ConfigStore) Load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	var loaded Config
	if err := toml.Unmarshal(data, &loaded); err != nil {
		return err
	}
	if loaded.APIKey == "" {
		loaded.APIKey = DemoAPIKey
	}

	s.config = loaded
	return nil
}

// Path returns the configuration file path.
func (s *ConfigStore) Path() string {
	return s.filePath
}
