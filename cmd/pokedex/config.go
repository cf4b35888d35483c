// Config loading for the pokedex CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"

	"github.com/mesh-intelligence/pokedex/pkg/types"
)

const (
	configFileName = "config"
	configFileType = "yaml"
	configFileExt  = "config.yaml"

	cfgKeyListenAddr     = "listen_addr"
	cfgKeyDataDir        = "data_dir"
	cfgKeyDBFile         = "db_file"
	cfgKeyCatalogBaseURL = "catalog_base_url"
	cfgKeyCatalogTimeout = "catalog_timeout_seconds"
	cfgKeyLogLevel       = "log_level"
)

// defaultConfigYAML is the content written to config.yaml on first run.
const defaultConfigYAML = `# Pokedex service configuration

listen_addr: ":8080"
data_dir: ".pokedex-db"
db_file: "pokedex.db"
catalog_base_url: "https://pokeapi.co/api/v2/pokemon"
catalog_timeout_seconds: 10
log_level: "info"
`

// resolveConfigDir returns the config directory from flag, env, or default.
func resolveConfigDir() string {
	if configDir != "" {
		return configDir
	}
	if v := os.Getenv("POKEDEX_CONFIG_DIR"); v != "" {
		return v
	}
	return ".pokedex"
}

// loadConfig reads config.yaml from the resolved config directory using
// Viper, writing the directory and a default file on first run. The result
// is validated before use.
func loadConfig() (types.Config, error) {
	dir := resolveConfigDir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return types.Config{}, fmt.Errorf("ensure config dir: %w", err)
	}
	if err := ensureDefaultConfigFile(dir); err != nil {
		return types.Config{}, fmt.Errorf("ensure default config: %w", err)
	}

	v := viper.New()
	v.SetDefault(cfgKeyListenAddr, ":8080")
	v.SetDefault(cfgKeyDataDir, ".pokedex-db")
	v.SetDefault(cfgKeyDBFile, "pokedex.db")
	v.SetDefault(cfgKeyCatalogBaseURL, "https://pokeapi.co/api/v2/pokemon")
	v.SetDefault(cfgKeyCatalogTimeout, 10)
	v.SetDefault(cfgKeyLogLevel, "info")
	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(dir)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return types.Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	cfg := types.Config{
		ListenAddr:     v.GetString(cfgKeyListenAddr),
		DataDir:        v.GetString(cfgKeyDataDir),
		DBFile:         v.GetString(cfgKeyDBFile),
		CatalogBaseURL: v.GetString(cfgKeyCatalogBaseURL),
		CatalogTimeout: time.Duration(v.GetInt(cfgKeyCatalogTimeout)) * time.Second,
		LogLevel:       v.GetString(cfgKeyLogLevel),
	}
	if err := cfg.Validate(); err != nil {
		return types.Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// ensureDefaultConfigFile creates a default config.yaml if the file does not
// exist in the config directory.
func ensureDefaultConfigFile(dir string) error {
	path := filepath.Join(dir, configFileExt)

	_, err := os.Stat(path)
	if err == nil {
		return nil
	}
	if !os.IsNotExist(err) {
		return fmt.Errorf("stat config file: %w", err)
	}

	return os.WriteFile(path, []byte(defaultConfigYAML), 0o644)
}
