// Package config reads the process configuration from the environment.
package config

import (
	"fmt"
	"os"
)

// Config holds every setting the server recognizes.
type Config struct {
	Port              string
	DBUser            string
	DBPass            string
	AccessTokenSecret string
	// MongoURI overrides the Atlas URI built from DBUser/DBPass when set.
	MongoURI string
	LogLevel string
}

// Load reads the environment. Call godotenv.Load first if a .env file
// should be picked up.
func Load() *Config {
	return &Config{
		Port:              getEnv("PORT", "5004"),
		DBUser:            os.Getenv("DB_USER"),
		DBPass:            os.Getenv("DB_PASS"),
		AccessTokenSecret: os.Getenv("ACCESS_TOKEN_SECRET"),
		MongoURI:          os.Getenv("MONGOURI"),
		LogLevel:          os.Getenv("LOG_LEVEL"),
	}
}

// URI returns the MongoDB connection string: MONGOURI verbatim when set,
// otherwise the Atlas cluster URI built from the store credentials.
func (c *Config) URI() string {
	if c.MongoURI != "" {
		return c.MongoURI
	}
	return fmt.Sprintf(
		"mongodb+srv://%s:%s@cluster0.tqyfr7x.mongodb.net/?retryWrites=true&w=majority&appName=Cluster0",
		c.DBUser, c.DBPass,
	)
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
