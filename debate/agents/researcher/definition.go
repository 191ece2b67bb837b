// Package researcher configures the stance researchers. One researcher exists
// per stance; both run concurrently during the research phase. Research is
// performed with the hosted web search tool, which the model invokes directly.
package researcher

import (
	"fmt"

	"github.com/nlpodyssey/openai-agents-go/agents"

	"github.com/your-org/ai-debate-team/debate"
)

// Agent names, one per stance.
const (
	ProponentAgentName = "ProponentResearcher"
	OpponentAgentName  = "OpponentResearcher"
)

// WebSearchToolName is the hosted search tool bound to both researchers.
const WebSearchToolName = "web_search"

const instructionsFormat = `You research supporting evidence for the %s position in a debate.

You will receive the role assignments for the debate. Find 2-3 strong supporting
points, facts, or examples that support the %s stance. Use web search to find
current, credible information.

Focus on:
- Statistical evidence
- Expert opinions
- Real-world examples
- Research findings

Summarize your findings concisely but persuasively. End with a "Key Sources"
list giving the title and URL of each significant article you used.`

// Name returns the agent name for a stance.
func Name(s debate.Stance) string {
	if s == debate.StanceProponent {
		return ProponentAgentName
	}
	return OpponentAgentName
}

// Description returns the listing description for a stance's researcher.
func Description(s debate.Stance) string {
	return fmt.Sprintf("Researches supporting points for the %s's stance.", s.Marker())
}

// New configures the researcher agent for the given stance.
func New(s debate.Stance, model string) *agents.Agent {
	side := "Proponent (FOR)"
	if s == debate.StanceOpponent {
		side = "Opponent (AGAINST)"
	}
	return agents.New(Name(s)).
		WithInstructions(fmt.Sprintf(instructionsFormat, side, side)).
		WithHandoffDescription(Description(s)).
		WithTools(agents.WebSearchTool{}).
		WithModel(model)
}

// Input formats the research request for one stance.
func Input(s debate.Stance, assignments debate.RoleAssignments) string {
	return fmt.Sprintf("Role assignments:\n\n%s\n\nResearch the %s position.",
		assignments.Describe(), s.Marker())
}
