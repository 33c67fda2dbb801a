package config

import (
	"time"

	"github.com/worklifedesks/utils"
)

// StorageBackend selects which kv.Store implementation backs the workspace.
type StorageBackend string

const (
	BackendMemory StorageBackend = "memory"
	BackendRedis  StorageBackend = "redis"
	BackendMongo  StorageBackend = "mongo"
)

type StorageConfig struct {
	Backend         StorageBackend
	RedisURL        string
	MongoURI        string
	MongoDatabase   string
	MongoCollection string
}

type SessionConfig struct {
	Duration          time.Duration
	InactivityTimeout time.Duration
}

func LoadStorageConfig() StorageConfig {
	return StorageConfig{
		Backend:         StorageBackend(utils.GetEnvAsString("STORAGE_BACKEND", "memory")),
		RedisURL:        utils.GetEnvAsString("REDIS_URL", "redis://localhost:6379"),
		MongoURI:        utils.GetEnvAsString("MONGO_URI", "mongodb://localhost:27017"),
		MongoDatabase:   utils.GetEnvAsString("MONGO_DB", "worklifedesks"),
		MongoCollection: utils.GetEnvAsString("WORKSPACE_COLLECTION", "workspace"),
	}
}

func LoadSessionConfig() SessionConfig {
	return SessionConfig{
		Duration:          utils.GetEnvAsDuration("SESSION_DURATION", 24*time.Hour),
		InactivityTimeout: utils.GetEnvAsDuration("SESSION_INACTIVITY_TIMEOUT", 48*time.Hour),
	}
}
