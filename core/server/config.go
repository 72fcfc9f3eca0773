package server

// Config holds configuration for the HTTP server.
type Config struct {
	// Port is the port where the server will listen.
	Port string `mapstructure:"port" default:"8080"`
	// ApiKey is the secret key required to access the API.
	ApiKey string `mapstructure:"api_key" default:""`
	// BodyLimitMB caps the size of uploaded capture documents.
	BodyLimitMB int `mapstructure:"body_limit_mb" default:"4"`
}

// DefaultBodyLimitMB is used when BodyLimitMB is unset or invalid.
const DefaultBodyLimitMB = 4

// BodyLimit returns the request body limit in bytes.
func (c Config) BodyLimit() int {
	if c.BodyLimitMB <= 0 {
		return DefaultBodyLimitMB * 1024 * 1024
	}
	return c.BodyLimitMB * 1024 * 1024
}

// Address returns the listen address for the configured port.
func (c Config) Address() string {
	if c.Port == "" {
		return ":8080"
	}
	return ":" + c.Port
}
