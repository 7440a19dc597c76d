package config

import (
	"errors"

	"github.com/kelseyhightower/envconfig"
)

var singleConfig *Config = nil

type Config struct {
	Database *dbConfig
	Service  *svcConfig
	OpenAI   *openAIConfig
}

type dbConfig struct {
	Type     string `envconfig:"DB_TYPE" default:"pgsql"`
	Hostname string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	Name     string `envconfig:"DB_NAME" default:"interviews"`
	User     string `envconfig:"DB_USER" default:"admin"`
	Password string `envconfig:"DB_PASS" default:"adminpass"`
}

type svcConfig struct {
	Address         string `envconfig:"INTERVIEW_SIM_ADDRESS" default:":3443"`
	MetricsAddress  string `envconfig:"INTERVIEW_SIM_METRICS_ADDRESS" default:":8080"`
	BaseUrl         string `envconfig:"INTERVIEW_SIM_BASE_URL" default:"http://localhost:3443"`
	LogLevel        string `envconfig:"INTERVIEW_SIM_LOG_LEVEL" default:"info"`
	MigrationFolder string `envconfig:"INTERVIEW_SIM_MIGRATIONS_FOLDER" default:""`
}

type openAIConfig struct {
	APIKey string `envconfig:"OPENAI_API_KEY" default:""`
	Model  string `envconfig:"OPENAI_MODEL" default:"gpt-3.5-turbo"`
}

func New() (*Config, error) {
	if singleConfig == nil {
		singleConfig = new(Config)
		if err := envconfig.Process("", singleConfig); err != nil {
			return nil, err
		}
	}
	return singleConfig, nil
}

// NewDefault returns a configuration suitable for tests: an in-memory
// sqlite store and no completion provider credential.
func NewDefault() *Config {
	return &Config{
		Database: &dbConfig{Type: "sqlite", Name: ":memory:"},
		Service:  &svcConfig{Address: "localhost:0", LogLevel: "error"},
		OpenAI:   &openAIConfig{Model: "gpt-3.5-turbo"},
	}
}

// Validate checks the parts of the configuration whose absence must abort
// startup before any external call is attempted.
func (c *Config) Validate() error {
	if c.OpenAI == nil || c.OpenAI.APIKey == "" {
		return errors.New("OPENAI_API_KEY is not configured")
	}
	return nil
}
