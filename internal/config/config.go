package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// AppConfig aggregates runtime configuration. Everything is injected through
// environment variables with workable defaults, so a bare `go run` boots a
// fully seeded demo instance.
type AppConfig struct {
	HTTPAddr string
	DBDSN    string

	RedisAddr string
	RedisDB   int

	// Kafka cluster (comma separated), audit topic and consumer group.
	KafkaBrokers []string
	KafkaTopic   string
	KafkaGroupID string

	// Redis Stream outbox for audit events (API appends atomically, the
	// relay ships the stream to Kafka).
	AuditStream   string
	AuditGroup    string
	AuditConsumer string

	// Rate limiting for mutation endpoints.
	MutateRateLimit  int
	MutateRateWindow time.Duration

	// Deterministic seed sizes for a fresh store.
	SeedInventory int
	SeedOrders    int
	SeedTasks     int
}

// Load reads and validates configuration, falling back to defaults.
func Load() (AppConfig, error) {
	cfg := AppConfig{
		HTTPAddr:         getEnv("HTTP_ADDR", ":8080"),
		DBDSN:            getEnv("DB_DSN", "file::memory:?cache=shared"),
		RedisAddr:        getEnv("REDIS_ADDR", "localhost:6379"),
		RedisDB:          0,
		KafkaBrokers:     splitCSV(getEnv("KAFKA_BROKERS", "localhost:9092")),
		KafkaTopic:       getEnv("KAFKA_TOPIC", "workshop-audit-events"),
		KafkaGroupID:     getEnv("KAFKA_GROUP_ID", "workshop-audit-consumer"),
		AuditStream:      getEnv("AUDIT_STREAM", "workshop:audit_events"),
		AuditGroup:       getEnv("AUDIT_GROUP", "workshop-audit-relay-group"),
		AuditConsumer:    getEnv("AUDIT_CONSUMER", "workshop-audit-relay-1"),
		MutateRateLimit:  60,
		MutateRateWindow: time.Minute,
		SeedInventory:    75,
		SeedOrders:       75,
		SeedTasks:        120,
	}

	redisDB, err := getEnvInt("REDIS_DB", cfg.RedisDB)
	if err != nil {
		return AppConfig{}, fmt.Errorf("invalid REDIS_DB: %w", err)
	}
	cfg.RedisDB = redisDB

	rateLimit, err := getEnvInt("MUTATE_RATE_LIMIT", cfg.MutateRateLimit)
	if err != nil {
		return AppConfig{}, fmt.Errorf("invalid MUTATE_RATE_LIMIT: %w", err)
	}
	if rateLimit <= 0 {
		return AppConfig{}, fmt.Errorf("MUTATE_RATE_LIMIT must be > 0")
	}
	cfg.MutateRateLimit = rateLimit

	rateWindowSec, err := getEnvInt("MUTATE_RATE_WINDOW_SEC", int(cfg.MutateRateWindow.Seconds()))
	if err != nil {
		return AppConfig{}, fmt.Errorf("invalid MUTATE_RATE_WINDOW_SEC: %w", err)
	}
	if rateWindowSec <= 0 {
		return AppConfig{}, fmt.Errorf("MUTATE_RATE_WINDOW_SEC must be > 0")
	}
	cfg.MutateRateWindow = time.Duration(rateWindowSec) * time.Second

	for _, v := range []struct {
		key   string
		value *int
	}{
		{"SEED_INVENTORY", &cfg.SeedInventory},
		{"SEED_ORDERS", &cfg.SeedOrders},
		{"SEED_TASKS", &cfg.SeedTasks},
	} {
		n, err := getEnvInt(v.key, *v.value)
		if err != nil {
			return AppConfig{}, fmt.Errorf("invalid %s: %w", v.key, err)
		}
		if n < 0 {
			return AppConfig{}, fmt.Errorf("%s must be >= 0", v.key)
		}
		*v.value = n
	}

	if cfg.DBDSN == "" {
		return AppConfig{}, fmt.Errorf("DB_DSN must not be empty")
	}
	if len(cfg.KafkaBrokers) == 0 {
		return AppConfig{}, fmt.Errorf("KAFKA_BROKERS must not be empty")
	}
	if cfg.KafkaTopic == "" {
		return AppConfig{}, fmt.Errorf("KAFKA_TOPIC must not be empty")
	}
	if cfg.KafkaGroupID == "" {
		return AppConfig{}, fmt.Errorf("KAFKA_GROUP_ID must not be empty")
	}
	if cfg.AuditStream == "" {
		return AppConfig{}, fmt.Errorf("AUDIT_STREAM must not be empty")
	}
	if cfg.AuditGroup == "" {
		return AppConfig{}, fmt.Errorf("AUDIT_GROUP must not be empty")
	}
	if cfg.AuditConsumer == "" {
		return AppConfig{}, fmt.Errorf("AUDIT_CONSUMER must not be empty")
	}

	return cfg, nil
}

// getEnv reads a string variable, falling back when empty.
func getEnv(key, fallback string) string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	return v
}

// getEnvInt reads an integer variable, falling back when empty.
func getEnvInt(key string, fallback int) (int, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback, nil
	}
	return strconv.Atoi(v)
}

// splitCSV parses a comma separated string into a slice.
func splitCSV(value string) []string {
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		s := strings.TrimSpace(p)
		if s != "" {
			out = append(out, s)
		}
	}
	return out
}
