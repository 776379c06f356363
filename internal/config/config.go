package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

const (
	configName = "config"
	configType = "toml"
	configDir  = ".account-keeper"
	envPrefix  = "AK"

	KeyConfigFile     = "config"
	KeyStorageBackend = "storage.backend"
	KeyStoragePath    = "storage.path"
	KeyStorageKey     = "storage.key"
	KeyVerbose        = "log.verbose"

	defaultStorageKey = "accounts"
	fileStorageDir    = "storage"
	sqliteStorageFile = "accounts.db"
)

type Backend string

const (
	BackendFile   Backend = "file"
	BackendSQLite Backend = "sqlite"
	BackendMemory Backend = "memory"
)

func (b Backend) Valid() bool {
	switch b {
	case BackendFile, BackendSQLite, BackendMemory:
		return true
	default:
		return false
	}
}

var ErrUnsupportedBackend = errors.New("unsupported storage backend")

type Config struct {
	Storage Storage
	Verbose bool
	// ConfigFile is the file that was read, empty when defaults were used.
	ConfigFile string
}

type Storage struct {
	Backend Backend
	// Path is a directory for the file backend and a database file for sqlite.
	Path string
	Key  string
}

// Load reads config.toml from ~/.account-keeper (or the file set under the
// "config" key), then AK_* environment variables. A missing file is fine; a
// malformed one is not.
func Load(cfg *viper.Viper) (Config, error) {
	if cfg == nil {
		cfg = viper.New()
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return Config{}, fmt.Errorf("resolve home directory: %w", err)
	}
	baseDir := filepath.Join(homeDir, configDir)

	cfg.SetEnvPrefix(envPrefix)
	cfg.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	cfg.AutomaticEnv()

	cfg.SetDefault(KeyStorageBackend, string(BackendFile))
	cfg.SetDefault(KeyStorageKey, defaultStorageKey)
	cfg.SetDefault(KeyVerbose, false)

	if explicit := cfg.GetString(KeyConfigFile); explicit != "" {
		cfg.SetConfigFile(explicit)
	} else {
		cfg.SetConfigName(configName)
		cfg.SetConfigType(configType)
		cfg.AddConfigPath(baseDir)
	}

	if err := cfg.ReadInConfig(); err != nil {
		var configNotFound viper.ConfigFileNotFoundError
		if !errors.As(err, &configNotFound) {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
	}

	backend := Backend(strings.ToLower(strings.TrimSpace(cfg.GetString(KeyStorageBackend))))
	if !backend.Valid() {
		return Config{}, fmt.Errorf("%w: %q", ErrUnsupportedBackend, cfg.GetString(KeyStorageBackend))
	}

	path := cfg.GetString(KeyStoragePath)
	if path == "" {
		path = defaultStoragePath(baseDir, backend)
	}
	if path != "" {
		path, err = normalizePath(path)
		if err != nil {
			return Config{}, err
		}
	}

	key := strings.TrimSpace(cfg.GetString(KeyStorageKey))
	if key == "" {
		key = defaultStorageKey
	}

	return Config{
		Storage: Storage{
			Backend: backend,
			Path:    path,
			Key:     key,
		},
		Verbose:    cfg.GetBool(KeyVerbose),
		ConfigFile: cfg.ConfigFileUsed(),
	}, nil
}

func defaultStoragePath(baseDir string, backend Backend) string {
	switch backend {
	case BackendFile:
		return filepath.Join(baseDir, fileStorageDir)
	case BackendSQLite:
		return filepath.Join(baseDir, sqliteStorageFile)
	default:
		return ""
	}
}

func normalizePath(path string) (string, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolve storage path: %w", err)
	}

	return filepath.Clean(absPath), nil
}
