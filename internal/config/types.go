package config

// Config is the exhibits-admin configuration, loaded from YAML with
// EXHIBITS_* environment overrides.
type Config struct {
	// BackendURL is the base URL of the exhibits REST backend.
	BackendURL string `koanf:"backend_url" yaml:"backend_url"`

	// Port is the dashboard listen port.
	Port int `koanf:"port" yaml:"port"`

	// DataDir holds the local SQLite database.
	DataDir string `koanf:"data_dir" yaml:"data_dir"`

	// SessionTTLHours is how long a sign-in lasts.
	SessionTTLHours int `koanf:"session_ttl_hours" yaml:"session_ttl_hours"`

	// MaxUploadMB caps media upload size through the dashboard.
	MaxUploadMB int `koanf:"max_upload_mb" yaml:"max_upload_mb"`

	// AllowAllOrigins relaxes CORS for local development.
	AllowAllOrigins bool `koanf:"allow_all_origins" yaml:"allow_all_origins"`
}
