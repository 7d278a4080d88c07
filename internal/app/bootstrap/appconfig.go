// internal/app/bootstrap/appconfig.go
package bootstrap

import "time"

// AppConfig holds service-specific configuration for this WAFFLE app.
//
// These values come from environment variables, configuration files, or
// command-line flags (loaded in LoadConfig). WAFFLE's CoreConfig handles
// framework-level settings (ports, TLS, logging); AppConfig is
// everything specific to this application.
type AppConfig struct {
	// MongoDB connection configuration
	MongoURI         string // MongoDB connection string (e.g., mongodb://localhost:27017)
	MongoDatabase    string // Database name within MongoDB
	MongoMaxPoolSize uint64 // Max connection pool size
	MongoMinPoolSize uint64 // Min connection pool size

	// Token issuance configuration
	JWTSecret string        // HMAC signing secret (must be strong in production)
	JWTIssuer string        // Issuer claim stamped on tokens
	TokenTTL  time.Duration // Token lifetime (default 1h)

	// Initial admin account, seeded at startup when no admin exists.
	// Seeding is skipped when AdminPassword is empty.
	AdminEmail    string
	AdminUsername string
	AdminPassword string
}
