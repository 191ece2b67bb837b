package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "gpt-4o-mini", cfg.Model)
	assert.Equal(t, 8, cfg.MaxExchanges)
	assert.Equal(t, ":8080", cfg.ServerAddress)
	assert.Equal(t, "debate_sessions.db", cfg.SessionDB)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("DEBATE_MODEL", "gpt-4o")
	t.Setenv("DEBATE_MAX_EXCHANGES", "4")
	t.Setenv("GOOGLE_CLOUD_PROJECT", "my-project")
	t.Setenv("GOOGLE_CLOUD_LOCATION", "us-central1")
	t.Setenv("GOOGLE_CLOUD_STORAGE_BUCKET", "my-bucket")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "sk-test", cfg.OpenAIAPIKey)
	assert.Equal(t, "gpt-4o", cfg.Model)
	assert.Equal(t, 4, cfg.MaxExchanges)
	assert.Equal(t, "my-project", cfg.ProjectID)
	assert.Equal(t, "us-central1", cfg.Location)
	assert.Equal(t, "my-bucket", cfg.Bucket)
}

func TestValidate(t *testing.T) {
	cfg := Default()
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "OPENAI_API_KEY")

	cfg.OpenAIAPIKey = "sk-test"
	assert.NoError(t, cfg.Validate())
}

func TestValidateDeployment(t *testing.T) {
	cfg := Default()
	cfg.ProjectID = "my-project"

	err := cfg.ValidateDeployment()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "GOOGLE_CLOUD_LOCATION")

	cfg.Location = "us-central1"
	err = cfg.ValidateDeployment()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "GOOGLE_CLOUD_STORAGE_BUCKET")

	cfg.Bucket = "my-bucket"
	assert.NoError(t, cfg.ValidateDeployment())
}

func TestStagingBucketURI(t *testing.T) {
	cfg := &Config{Bucket: "my-bucket"}
	assert.Equal(t, "gs://my-bucket", cfg.StagingBucketURI())

	cfg.Bucket = "gs://already-prefixed"
	assert.Equal(t, "gs://already-prefixed", cfg.StagingBucketURI())

	cfg.Bucket = ""
	assert.Equal(t, "", cfg.StagingBucketURI())
}
