package config

// Application environment constants, selected via APP_ENV
const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
	EnvTesting     = "testing"
)

// Database type constants
const (
	SqliteDbType   = "sqlite"
	PostgresDbType = "postgres"
)

// SqliteMemoryDSN selects an in-memory SQLite database. The testing
// environment profile always runs on it.
const SqliteMemoryDSN = ":memory:"

// DefaultDevSecret is the fallback signing secret for local development.
// Production configurations must replace it.
const DefaultDevSecret = "dev-key-change-in-production"
