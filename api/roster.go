package api

import (
	"github.com/your-org/ai-debate-team/debate"
	"github.com/your-org/ai-debate-team/debate/agents/analyst"
	"github.com/your-org/ai-debate-team/debate/agents/debater"
	"github.com/your-org/ai-debate-team/debate/agents/greeter"
	"github.com/your-org/ai-debate-team/debate/agents/researcher"
	"github.com/your-org/ai-debate-team/debate/agents/roles"
	"github.com/your-org/ai-debate-team/debate/agents/summarizer"
)

// Roster returns the full debate team in pipeline order.
func Roster() []AgentInfo {
	return []AgentInfo{
		{
			Name:        greeter.AgentName,
			Description: greeter.Description,
			Tools:       []string{greeter.StartDebateToolName},
		},
		{
			Name:        roles.AgentName,
			Description: roles.Description,
		},
		{
			Name:        researcher.ProponentAgentName,
			Description: researcher.Description(debate.StanceProponent),
			Tools:       []string{researcher.WebSearchToolName},
		},
		{
			Name:        researcher.OpponentAgentName,
			Description: researcher.Description(debate.StanceOpponent),
			Tools:       []string{researcher.WebSearchToolName},
		},
		{
			Name:        debater.ProponentAgentName,
			Description: debater.Description(debate.StanceProponent),
			Tools:       []string{debater.EndDebateToolName},
		},
		{
			Name:        debater.OpponentAgentName,
			Description: debater.Description(debate.StanceOpponent),
			Tools:       []string{debater.EndDebateToolName},
		},
		{
			Name:        analyst.AgentName,
			Description: analyst.Description,
		},
		{
			Name:        summarizer.AgentName,
			Description: summarizer.Description,
		},
	}
}
