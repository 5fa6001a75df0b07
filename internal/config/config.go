package config

import (
	"log/slog"
	"os"
	"strings"
)

// HostBackend selects the notification host implementation.
type HostBackend string

const (
	HostBackendRedis  HostBackend = "redis"
	HostBackendMemory HostBackend = "memory"
)

type Config struct {
	Port            string
	LogLevel        slog.Level
	HostBackend     HostBackend
	StudentStoreURL string
	ResyncCron      string
	ResyncUserIDs   []string
	Redis           *RedisConfig
	Trigger         *TriggerConfig
}

func Load() (*Config, error) {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	redisConfig, err := LoadRedisConfig()
	if err != nil {
		return nil, err
	}

	triggerConfig, err := LoadTriggerConfig()
	if err != nil {
		return nil, err
	}

	var resyncUsers []string
	if raw := os.Getenv("RESYNC_USER_IDS"); raw != "" {
		for _, id := range strings.Split(raw, ",") {
			if id = strings.TrimSpace(id); id != "" {
				resyncUsers = append(resyncUsers, id)
			}
		}
	}

	hostBackend := HostBackend(os.Getenv("HOST_BACKEND"))
	if hostBackend == "" {
		hostBackend = HostBackendRedis
	}
	if hostBackend != HostBackendRedis && hostBackend != HostBackendMemory {
		hostBackend = HostBackendRedis
	}

	return &Config{
		Port:            port,
		LogLevel:        parseLogLevel(os.Getenv("LOG_LEVEL")),
		HostBackend:     hostBackend,
		StudentStoreURL: os.Getenv("STUDENT_STORE_URL"),
		ResyncCron:      os.Getenv("RESYNC_CRON"),
		ResyncUserIDs:   resyncUsers,
		Redis:           redisConfig,
		Trigger:         triggerConfig,
	}, nil
}

func parseLogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
