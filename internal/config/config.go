// Package config loads the taskmaster configuration file and resolves data
// locations.
package config

// Config is the root configuration for taskmaster.
type Config struct {
	Server  ServerConfig  `json:"server"`
	Storage StorageConfig `json:"storage"`
	Cookie  CookieConfig  `json:"cookie"`
}

// ServerConfig holds the gateway server settings.
type ServerConfig struct {
	Host string `json:"host"`
	Port int    `json:"port"`
}

// StorageConfig selects and locates the durable slot that mirrors the task
// collection.
type StorageConfig struct {
	Driver string `json:"driver"` // "file" | "sqlite"
	Path   string `json:"path"`   // slot file, or sqlite database file
	Slot   string `json:"slot"`   // slot name (sqlite row key)
}

// CookieConfig describes the browser-facing mirror cookie set by the gateway.
type CookieConfig struct {
	Name     string `json:"name"`
	Path     string `json:"path"`
	SameSite string `json:"same_site"` // "lax" | "strict" | "none"
}
