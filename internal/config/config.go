package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds settings shared by the savetree front ends. Flags override
// whatever Load returns.
type Config struct {
	// LogDir is where debug logs go. Empty means ~/.savetree/logs.
	LogDir string

	// Debug enables debug-level file logging.
	Debug bool

	// TogglesPath is the YAML config holding per-game ignore toggles.
	TogglesPath string
}

// Load reads an optional .env file from the working directory, then the
// SAVETREE_* environment variables.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		LogDir:      strings.TrimSpace(os.Getenv("SAVETREE_LOG_DIR")),
		Debug:       getBool("SAVETREE_DEBUG", false),
		TogglesPath: strings.TrimSpace(os.Getenv("SAVETREE_TOGGLES")),
	}
}

func getBool(key string, defaultValue bool) bool {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return defaultValue
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return defaultValue
	}
	return b
}
