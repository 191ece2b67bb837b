// Package deployment packages the debate team for the managed agent engine
// service and talks to its REST API. A deployment submits a manifest: the
// agent roster, the runtime requirements, and the environment variables the
// hosted application reads at startup.
package deployment

import (
	"github.com/your-org/ai-debate-team/api"
	"github.com/your-org/ai-debate-team/config"
)

// DisplayName is the resource display name used for every deployment.
const DisplayName = "AI Debate Team"

const description = "Multi-agent debate pipeline: role assignment, parallel research, iterative rounds, strategic analysis, and a final verdict."

// requirements pins the runtime modules the hosted application is built
// against. Versions must match go.mod.
var requirements = []string{
	"github.com/nlpodyssey/openai-agents-go@v0.14.1",
	"github.com/openai/openai-go/v3@v3.3.0",
}

// envVars names the variables the hosted application reads at startup.
var envVars = []string{
	"OPENAI_API_KEY",
	"DEBATE_MODEL",
	"DEBATE_MAX_EXCHANGES",
}

// Manifest describes one deployable revision of the debate application.
type Manifest struct {
	DisplayName   string          `json:"display_name"`
	Description   string          `json:"description"`
	Model         string          `json:"model"`
	StagingBucket string          `json:"staging_bucket,omitempty"`
	Agents        []api.AgentInfo `json:"agents"`
	Requirements  []string        `json:"requirements"`
	EnvVars       []string        `json:"env_vars"`
}

// NewManifest builds the manifest for the current configuration.
func NewManifest(cfg *config.Config) Manifest {
	return Manifest{
		DisplayName:   DisplayName,
		Description:   description,
		Model:         cfg.Model,
		StagingBucket: cfg.StagingBucketURI(),
		Agents:        api.Roster(),
		Requirements:  requirements,
		EnvVars:       envVars,
	}
}
