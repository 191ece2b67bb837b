// Package roles configures the agent that turns a raw topic into a debate
// setup: a focused question plus the Proponent and Opponent positions.
package roles

import (
	"fmt"

	"github.com/nlpodyssey/openai-agents-go/agents"

	"github.com/your-org/ai-debate-team/debate"
)

const AgentName = "RoleAssignmentAgent"

const Description = "Defines Proponent and Opponent roles and their main arguments for the debate topic."

const instructions = `You define the debate positions for a given topic.

You will receive a debate topic. Your task is to:
1. Analyze the topic and rephrase it into a clear, debatable question if needed.
2. Define two distinct positions: Proponent (FOR) and Opponent (AGAINST).
3. Outline the main argument for each side in one or two sentences.

Be clear and balanced in defining both positions.`

// New configures the role assignment agent. Its structured output is a
// debate.RoleAssignments value.
func New(model string) *agents.Agent {
	return agents.New(AgentName).
		WithInstructions(instructions).
		WithHandoffDescription(Description).
		WithOutputType(agents.OutputType[debate.RoleAssignments]()).
		WithModel(model)
}

// Input formats the topic for the role assignment run.
func Input(topic string) string {
	return fmt.Sprintf("Debate topic: %s", topic)
}
