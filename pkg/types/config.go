package types

import (
	"errors"
	"time"
)

// Config holds service parameters resolved from flags and config.yaml.
type Config struct {
	DataDir        string        `json:"data_dir" yaml:"data_dir"`
	DBFile         string        `json:"db_file" yaml:"db_file"`
	ListenAddr     string        `json:"listen_addr" yaml:"listen_addr"`
	CatalogBaseURL string        `json:"catalog_base_url" yaml:"catalog_base_url"`
	CatalogTimeout time.Duration `json:"catalog_timeout" yaml:"catalog_timeout"`
	LogLevel       string        `json:"log_level" yaml:"log_level"`
}

// Config validation errors.
var (
	ErrDBFileEmpty        = errors.New("db file must not be empty")
	ErrListenAddrEmpty    = errors.New("listen address must not be empty")
	ErrCatalogURLEmpty    = errors.New("catalog base URL must not be empty")
	ErrCatalogTimeoutZero = errors.New("catalog timeout must be positive")
)

// Validate checks that the Config is well-formed. It returns a sentinel
// error from this package on failure.
func (c Config) Validate() error {
	if c.DBFile == "" {
		return ErrDBFileEmpty
	}
	if c.ListenAddr == "" {
		return ErrListenAddrEmpty
	}
	if c.CatalogBaseURL == "" {
		return ErrCatalogURLEmpty
	}
	if c.CatalogTimeout <= 0 {
		return ErrCatalogTimeoutZero
	}
	return nil
}
