package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Server configuration
type ServerConfig struct {
	Port string
	Host string
}

// Store configuration. Driver selects the persistence backend.
type StoreConfig struct {
	Driver   string // "file" or "mongo"
	FilePath string
}

// MongoDB configuration
type MongoConfig struct {
	URI      string
	Database string
}

// Order-alert watcher configuration
type WatchConfig struct {
	Strategy     string // "poll" or "push"; empty picks per store driver
	PollInterval time.Duration
}

// Session configuration
type SessionConfig struct {
	TTL time.Duration
}

// Config holds all application configuration
type Config struct {
	Server  ServerConfig
	Store   StoreConfig
	Mongo   MongoConfig
	Watch   WatchConfig
	Session SessionConfig
}

// Store drivers
const (
	DriverFile  = "file"
	DriverMongo = "mongo"
)

// Watch strategies
const (
	WatchPoll = "poll"
	WatchPush = "push"
)

// Default configuration values
const (
	DefaultServerPort       = "8090"
	DefaultServerHost       = ""
	DefaultStoreDriver      = DriverFile
	DefaultFilePath         = "data/minecoin.json"
	DefaultMongoURI         = "mongodb://localhost:27017"
	DefaultMongoDB          = "minecoin"
	DefaultPollIntervalSec  = 3
	DefaultSessionTTLHours  = 12
)

// New returns a new Config with values from the environment, falling back to defaults.
func New() *Config {
	return &Config{
		Server: ServerConfig{
			Port: getEnv("SERVER_PORT", DefaultServerPort),
			Host: getEnv("SERVER_HOST", DefaultServerHost),
		},
		Store: StoreConfig{
			Driver:   getEnv("STORE_DRIVER", DefaultStoreDriver),
			FilePath: getEnv("STORE_FILE_PATH", DefaultFilePath),
		},
		Mongo: MongoConfig{
			URI:      getEnv("MONGO_URI", DefaultMongoURI),
			Database: getEnv("MONGO_DB", DefaultMongoDB),
		},
		Watch: WatchConfig{
			Strategy:     getEnv("WATCH_STRATEGY", ""),
			PollInterval: time.Duration(getEnvInt("WATCH_POLL_INTERVAL_SEC", DefaultPollIntervalSec)) * time.Second,
		},
		Session: SessionConfig{
			TTL: time.Duration(getEnvInt("SESSION_TTL_HOURS", DefaultSessionTTLHours)) * time.Hour,
		},
	}
}

// WatchStrategy resolves the effective watcher strategy: push for the mongo
// driver, poll for the file driver, unless overridden by WATCH_STRATEGY.
func (c *Config) WatchStrategy() string {
	if c.Watch.Strategy != "" {
		return c.Watch.Strategy
	}
	if c.Store.Driver == DriverMongo {
		return WatchPush
	}
	return WatchPoll
}

// Address returns the server address string
func (c *ServerConfig) Address() string {
	return c.Host + ":" + c.Port
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		switch strings.ToLower(value) {
		case "1", "true", "t", "yes", "y", "on":
			return true
		case "0", "false", "f", "no", "n", "off":
			return false
		}
	}
	return defaultValue
}
