package config

// DefaultConfig returns the configuration used when no file exists yet.
func DefaultConfig() *Config {
	return &Config{
		BackendURL:      "http://localhost:8000",
		Port:            8080,
		DataDir:         ".exhibits-admin",
		SessionTTLHours: 12,
		MaxUploadMB:     64,
	}
}
