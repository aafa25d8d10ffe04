package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// R2Config holds the Cloudflare R2 bucket used for uploaded resumes.
type R2Config struct {
	AccountID string `envconfig:"R2_ACCCOUNT_ID"`
	Bucket    string `envconfig:"R2_BUCKET"`
	AccessKey string `envconfig:"R2_ACCESS_KEY"`
	SecretKey string `envconfig:"R2_SECRET_KEY"`
}

func (r R2Config) Enabled() bool {
	return r.AccountID != "" && r.Bucket != "" && r.AccessKey != "" && r.SecretKey != ""
}

// Config is the process configuration shared by every subcommand.
type Config struct {
	Port        string `envconfig:"PORT" default:"8080"`
	LogLevel    string `envconfig:"LOG_LEVEL" default:"info"`
	LogEncoding string `envconfig:"LOG_ENCODING" default:"json"`

	GoogleAPIKey  string        `envconfig:"GOOGLE_API_KEY"`
	ModelName     string        `envconfig:"MODEL_NAME" default:"gemini-2.5-flash"`
	AgentModel    string        `envconfig:"AGENT_MODEL_NAME" default:"gemini-2.5-pro"`
	UseMockLLM    bool          `envconfig:"USE_MOCK_LLM" default:"false"`
	OracleTimeout time.Duration `envconfig:"ORACLE_TIMEOUT" default:"90s"`

	ScenarioDir string `envconfig:"SCENARIO_DIR" default:"scenarios"`

	// Resume analysis pipeline. Left empty, uploads are disabled.
	DBURL          string `envconfig:"DB_URL"`
	RabbitMQURL    string `envconfig:"RABBITMQ_URL"`
	AnalysisQueue  string `envconfig:"ANALYSIS_QUEUE" default:"resume_analyses"`
	UpdateExchange string `envconfig:"ANALYSIS_UPDATES_EXCHANGE" default:"analysis_updates"`
	Workers        int    `envconfig:"WORKERS" default:"3"`
	R2             R2Config
}

// PipelineEnabled reports whether uploads can be stored, queued and analyzed.
func (c *Config) PipelineEnabled() bool {
	return c.DBURL != "" && c.RabbitMQURL != "" && c.R2.Enabled()
}

// Load reads .env (if present) and then the environment.
func Load() (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	if !cfg.UseMockLLM && cfg.GoogleAPIKey == "" {
		return nil, fmt.Errorf("empty GOOGLE_API_KEY in env (set USE_MOCK_LLM=true for local runs)")
	}
	if cfg.Workers < 1 {
		cfg.Workers = 1
	}
	return &cfg, nil
}

// RequirePipeline fails unless every pipeline dependency is configured.
func (c *Config) RequirePipeline() error {
	switch {
	case c.DBURL == "":
		return fmt.Errorf("empty DB_URL in environment")
	case c.RabbitMQURL == "":
		return fmt.Errorf("empty RABBITMQ_URL in env")
	case c.R2.AccountID == "":
		return fmt.Errorf("empty R2_ACCCOUNT_ID in environment")
	case c.R2.Bucket == "":
		return fmt.Errorf("empty R2_BUCKET in environment")
	case c.R2.SecretKey == "":
		return fmt.Errorf("empty R2_SECRET_KEY in environment")
	case c.R2.AccessKey == "":
		return fmt.Errorf("empty R2_ACCESS_KEY in environment")
	}
	return nil
}
