package structs

import "time"

type Config struct {
	Server   *ServerConfig
	Cors     *CorsConfig
	Database *DatabaseConfig
	Admin    *AdminConfig
	Settings *SettingsConfig
}

type ServerConfig struct {
	AppName        string        // Harborline
	Environment    string        // development, production
	Port           string        // :3001
	ReadTimeout    time.Duration // in seconds
	WriteTimeout   time.Duration // in seconds
	IdleTimeout    time.Duration // in seconds
	MaxHeaderBytes int           // in bytes
}

type CorsConfig struct {
	AllowOrigins     []string
	AllowMethods     []string
	AllowHeaders     []string
	ExposedHeaders   []string
	AllowCredentials bool
}

type DatabaseConfig struct {
	Path         string        // path to the SQLite file
	BusyTimeout  time.Duration // surfaced as the busy_timeout pragma
	ReadTimeout  time.Duration // per-statement read deadline
	WriteTimeout time.Duration // per-statement write deadline
}

// AdminConfig holds the bootstrap admin credentials. When either
// email or password is empty no admin row is seeded.
type AdminConfig struct {
	Email    string
	Password string
	Name     string
}

// SettingsConfig captures the store-level defaults seeded into the
// settings table on first boot. Values an operator already set in the
// table always win over these.
type SettingsConfig struct {
	StoreName     string
	SupportEmail  string
	Currency      string
	DefaultOrigin string // default port of origin for new shipments
}
