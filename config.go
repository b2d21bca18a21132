package learningassistant

import (
	"os"
	"time"
)

// DefaultAPIURL is used when API_URL is not set
const DefaultAPIURL = "http://localhost:5000/api"

// Config is read once from the environment at process start
type Config struct {
	APIURL string
	Port   string

	SessionKey     string
	SessionIdleTTL time.Duration
	SecureCookies  bool

	Verbose bool
	LogMode string // dev|prod
}

// FromEnv builds a Config from environment variables
func FromEnv() Config {
	return Config{
		APIURL:         envOr("API_URL", DefaultAPIURL),
		Port:           envOr("PORT", "8180"),
		SessionKey:     envOr("SESSION_KEY", "learning-assistant-dev-session-key"),
		SessionIdleTTL: envDuration("SESSION_IDLE_TTL", 2*time.Hour),
		SecureCookies:  envBool("SECURE_COOKIES", false),
		Verbose:        envBool("VERBOSE", false),
		LogMode:        envOr("LOG_MODE", "dev"),
	}
}

func envOr(k, def string) string {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	return v
}

func envBool(k string, def bool) bool {
	switch os.Getenv(k) {
	case "1", "true", "TRUE", "yes", "YES":
		return true
	case "0", "false", "FALSE", "no", "NO":
		return false
	default:
		return def
	}
}

func envDuration(k string, def time.Duration) time.Duration {
	d, err := time.ParseDuration(os.Getenv(k))
	if err != nil || d <= 0 {
		return def
	}
	return d
}
