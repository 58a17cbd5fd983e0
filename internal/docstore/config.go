package docstore

import "time"

const (
	// DefaultURI is the address the site connects to when none is configured.
	DefaultURI = "mongodb://localhost:27017/techexpo"

	// DefaultDatabase is used when the connection string names no database.
	DefaultDatabase = "techexpo"

	DefaultConnectTimeout = 10 * time.Second
)

// Config holds configuration options for the Client
type Config struct {
	URI            string        // MongoDB connection string
	ConnectTimeout time.Duration // Bound on the single connection attempt
}

func NewConfig(uri string, connectTimeout time.Duration) Config {
	if uri == "" {
		uri = DefaultURI
	}
	if connectTimeout <= 0 {
		connectTimeout = DefaultConnectTimeout
	}

	return Config{
		URI:            uri,
		ConnectTimeout: connectTimeout,
	}
}
