package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"

	"prmetrics/internal/domain"
)

type Config struct {
	Token      string `validate:"required"`
	RepoOwner  string `validate:"required"`
	RepoName   string `validate:"required"`
	TeamsFile  string `validate:"required"`
	OutputDir  string `validate:"required"`
	APIBaseURL string
}

var fieldEnv = map[string]string{
	"Token":     "API_METRICS_KEY",
	"RepoOwner": "REPO_OWNER",
	"RepoName":  "REPO_NAME",
	"TeamsFile": "TEAMS_FILE",
	"OutputDir": "OUTPUT_DIR",
}

// Load reads an optional .env, then the process environment. Missing
// required values are a ConfigurationError naming the variables.
func Load() (Config, error) {
	// .env is a convenience for local runs; absence is fine.
	_ = godotenv.Load()

	cfg := Config{
		Token:      os.Getenv("API_METRICS_KEY"),
		RepoOwner:  os.Getenv("REPO_OWNER"),
		RepoName:   os.Getenv("REPO_NAME"),
		TeamsFile:  getEnvWithDefault("TEAMS_FILE", "teams.json"),
		OutputDir:  getEnvWithDefault("OUTPUT_DIR", "output"),
		APIBaseURL: os.Getenv("GITHUB_API_URL"),
	}

	if err := validator.New().Struct(cfg); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			missing := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				missing = append(missing, fieldEnv[fe.Field()])
			}
			return Config{}, domain.NewConfigurationError(
				fmt.Sprintf("required environment not set: %s", strings.Join(missing, ", ")), nil)
		}
		return Config{}, domain.NewConfigurationError("invalid configuration", err)
	}

	return cfg, nil
}

func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
