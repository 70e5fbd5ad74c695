package config

import (
	"github.com/ariefcatur/chale-calendar.git/internal/reservations"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	HTTPAddr        string
	APIBaseURL      string
	APITimeout      time.Duration // 0 = no per-call timeout
	RedisAddr       string        // empty -> sessions in memory
	SessionTTL      time.Duration
	KafkaBrokers    []string // empty -> activity events disabled
	ActivityTopic   string
	ActivityGroup   string
	ActivityWorkers int
	ServiceName     string
}

func Load() Config {
	return Config{
		HTTPAddr:        getenv("HTTP_ADDR", ":8080"),
		APIBaseURL:      strings.TrimRight(getenv("API_BASE_URL", "http://localhost:5001"), "/"),
		APITimeout:      getduration("API_TIMEOUT", 0),
		RedisAddr:       getenv("REDIS_ADDR", ""),
		SessionTTL:      getduration("SESSION_TTL", 12*time.Hour),
		KafkaBrokers:    splitCSV(getenv("KAFKA_BROKERS", "")),
		ActivityTopic:   getenv("ACTIVITY_TOPIC", reservations.TopicActivity),
		ActivityGroup:   getenv("ACTIVITY_GROUP", "calendar-activity"),
		ActivityWorkers: getint("ACTIVITY_WORKERS", 2),
		ServiceName:     getenv("SERVICE_NAME", "chale-calendar"),
	}
}

func getenv(k, def string) string {
	if v := strings.TrimSpace(os.Getenv(k)); v != "" {
		return v
	}
	return def
}

func getint(k string, def int) int {
	n, err := strconv.Atoi(getenv(k, ""))
	if err != nil || n <= 0 {
		return def
	}
	return n
}

// getduration accepts Go durations ("30s") or a bare number of seconds.
func getduration(k string, def time.Duration) time.Duration {
	v := getenv(k, "")
	if v == "" {
		return def
	}
	if d, err := time.ParseDuration(v); err == nil {
		return d
	}
	if n, err := strconv.Atoi(v); err == nil {
		return time.Duration(n) * time.Second
	}
	return def
}

func splitCSV(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			out = append(out, t)
		}
	}
	return out
}
