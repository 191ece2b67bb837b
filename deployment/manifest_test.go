package deployment

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/your-org/ai-debate-team/config"
)

func TestNewManifest(t *testing.T) {
	cfg := config.Default()
	cfg.Bucket = "my-staging-bucket"

	m := NewManifest(cfg)
	assert.Equal(t, DisplayName, m.DisplayName)
	assert.Equal(t, "gpt-4o-mini", m.Model)
	assert.Equal(t, "gs://my-staging-bucket", m.StagingBucket)
	assert.Len(t, m.Agents, 8)
	assert.NotEmpty(t, m.Requirements)
	assert.Contains(t, m.EnvVars, "OPENAI_API_KEY")
}

func TestNewManifestAgentOrder(t *testing.T) {
	m := NewManifest(config.Default())

	names := make([]string, len(m.Agents))
	for i, a := range m.Agents {
		names[i] = a.Name
	}
	assert.Equal(t, []string{
		"DebateTeamGreeter",
		"RoleAssignmentAgent",
		"ProponentResearcher",
		"OpponentResearcher",
		"ProponentDebater",
		"OpponentDebater",
		"DebateStrategicAnalyst",
		"DebateSummarizerAgent",
	}, names)
}
