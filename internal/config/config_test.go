package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("USE_MOCK_LLM", "true")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "gemini-2.5-flash", cfg.ModelName)
	assert.Equal(t, 90*time.Second, cfg.OracleTimeout)
	assert.Equal(t, 3, cfg.Workers)
	assert.False(t, cfg.PipelineEnabled())
	assert.Error(t, cfg.RequirePipeline())
}

func TestLoadRequiresAPIKey(t *testing.T) {
	t.Setenv("USE_MOCK_LLM", "false")
	t.Setenv("GOOGLE_API_KEY", "")

	_, err := Load()
	assert.ErrorContains(t, err, "GOOGLE_API_KEY")
}

func TestPipelineEnabled(t *testing.T) {
	t.Setenv("USE_MOCK_LLM", "true")
	t.Setenv("DB_URL", "postgres://localhost/aithera")
	t.Setenv("RABBITMQ_URL", "amqp://localhost")
	t.Setenv("R2_ACCCOUNT_ID", "acc")
	t.Setenv("R2_BUCKET", "resumes")
	t.Setenv("R2_ACCESS_KEY", "ak")
	t.Setenv("R2_SECRET_KEY", "sk")

	cfg, err := Load()
	require.NoError(t, err)
	assert.True(t, cfg.PipelineEnabled())
	assert.NoError(t, cfg.RequirePipeline())
}
