package planner

import (
	"os"

	"github.com/joho/godotenv"
)

// Config is the small set of values the original service loaded from its
// environment at startup (see original_source/consts.py's load_dotenv
// call) that still apply once the vision/model pieces are stripped out:
// the default log verbosity for plannerctl.
type Config struct {
	LogLevel string
}

// DefaultLogLevel is used when PLANNER_LOG_LEVEL is unset.
const DefaultLogLevel = "info"

// LoadConfig loads a .env file at path if present (a missing file is not an
// error, matching godotenv's own load-if-present convention) and reads
// PLANNER_LOG_LEVEL from the environment.
func LoadConfig(path string) (Config, error) {
	if err := godotenv.Load(path); err != nil && !os.IsNotExist(err) {
		return Config{}, err
	}

	level := os.Getenv("PLANNER_LOG_LEVEL")
	if level == "" {
		level = DefaultLogLevel
	}

	return Config{LogLevel: level}, nil
}
