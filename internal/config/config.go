package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

const defaultEnvFile = ".env"

type Config struct {
	LlmRetries     int           `env:"LLM_RETRIES" envDefault:"0"`
	LlmModel       string        `env:"OPENAI_MODEL" envDefault:"gpt-4o-mini"`
	LlmBaseURL     string        `env:"OPENAI_BASE_URL"`
	LlmTemperature float64       `env:"LLM_TEMPERATURE" envDefault:"0.3"`
	LlmTimeout     time.Duration `env:"LLM_TIMEOUT" envDefault:"60s"`

	// StrictCalories rejects diet plans whose daily totals miss the target by more than 10%.
	StrictCalories bool `env:"STRICT_CALORIES" envDefault:"false"`

	OpenaiKey      string `env:"OPENAI_API_KEY,required,notEmpty"`
	Debug          bool   `env:"DEBUG" envDefault:"false"`
	Addr           string `env:"ADDR" envDefault:":8080"`
	CORSOrigins    string `env:"CORS_ORIGINS" envDefault:"*"`
	BodyLimitBytes int    `env:"BODY_LIMIT_BYTES" envDefault:"65536"`
}

// LoadConfig loads the optional dotenv file named by ENV_FILE (default .env)
// and parses the environment. Variables already set in the process win over
// the file.
func LoadConfig() (*Config, error) {
	path := os.Getenv("ENV_FILE")
	if path == "" {
		path = defaultEnvFile
	}
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, err
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if c.LlmTemperature < 0 || c.LlmTemperature > 2 {
		return fmt.Errorf("LLM_TEMPERATURE must be between 0 and 2, got %v", c.LlmTemperature)
	}
	if c.LlmTimeout <= 0 {
		return fmt.Errorf("LLM_TIMEOUT must be positive")
	}
	if c.LlmRetries < 0 {
		return fmt.Errorf("LLM_RETRIES must not be negative")
	}
	if c.BodyLimitBytes <= 0 {
		return fmt.Errorf("BODY_LIMIT_BYTES must be positive")
	}
	return nil
}
