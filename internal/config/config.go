// Package config loads application configuration from environment variables.
// Every value has a default so the server can start against a local MongoDB
// with no configuration at all; a .env file (loaded in main) or real
// environment variables override the defaults.
package config

// Config holds all runtime configuration values. The storefront keeps
// configuration deliberately small: one HTTP port, one database, plus
// optional cache/broker settings that live in their own loaders.
type Config struct {
	Env           string // application environment (e.g. "dev", "prod")
	Port          string // HTTP port to listen on
	MongoURI      string // MongoDB connection string
	MongoDB       string // database name holding the storefront collections
	BcryptCost    int    // bcrypt cost used when hashing account passwords
	EventsEnabled bool   // start the order event consumer when true
}

// Load reads configuration from the environment, falling back to defaults.
// Nothing here is required: a missing variable never aborts startup.
func Load() Config {
	return Config{
		Env:           getenv("APP_ENV", "dev"),
		Port:          getenv("APP_PORT", "3002"),
		MongoURI:      getenv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDB:       getenv("MONGO_DB", "fashionhub"),
		BcryptCost:    atoi(getenv("BCRYPT_COST", "10")),
		EventsEnabled: getenv("EVENTS_ENABLED", "true") == "true",
	}
}
