// Package config loads application settings from the process environment
// via Viper, with sensible defaults for local development.
package config

import (
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds everything the application needs at startup.
type Config struct {
	// DatabasePath is the SQLite connection string for the page store.
	DatabasePath string
	// ServerAddr is the address the HTTP server listens on.
	ServerAddr string
	// StaticDir is the root of the publicly served asset tree. Archived
	// stylesheets and scripts live in its css/ and js/ subdirectories.
	StaticDir string
}

// Load reads configuration from the environment. Keys use the PAGEMIRROR
// prefix, e.g. PAGEMIRROR_DATABASE_PATH overrides database.path.
func Load() Config {
	v := viper.New()

	v.SetDefault("database.path", "pagemirror.db")
	v.SetDefault("server.addr", ":3000")
	v.SetDefault("storage.static_dir", "static")

	v.SetEnvPrefix("PAGEMIRROR")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return Config{
		DatabasePath: v.GetString("database.path"),
		ServerAddr:   v.GetString("server.addr"),
		StaticDir:    v.GetString("storage.static_dir"),
	}
}

// CSSDir returns the directory archived stylesheets are written to.
func (c Config) CSSDir() string {
	return filepath.Join(c.StaticDir, "css")
}

// JSDir returns the directory archived scripts are written to.
func (c Config) JSDir() string {
	return filepath.Join(c.StaticDir, "js")
}
