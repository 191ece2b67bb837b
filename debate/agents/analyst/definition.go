// Package analyst configures the strategic analyst that reviews a finished
// debate instead of merely reformatting the rounds.
package analyst

import (
	"fmt"

	"github.com/nlpodyssey/openai-agents-go/agents"

	"github.com/your-org/ai-debate-team/debate"
)

const AgentName = "DebateStrategicAnalyst"

const Description = "Analyzes debate strategy, argument strength, and provides tactical insights rather than just reformatting rounds."

const instructions = `You are a strategic debate analyst providing deep insights into iterative debate performance.

You will receive the role assignments, both sides' research, and the full debate
transcript. Provide a strategic analysis covering:

1. Argument Strength Assessment — rate each side's strongest and weakest arguments
   (1-10 scale), identify which evidence was most and least compelling, note any
   logical fallacies or reasoning gaps.
2. Tactical Performance — how effectively the Proponent advanced their position, how
   well the Opponent countered and created doubt, and what stronger arguments each
   side missed.
3. Evidence Utilization — which research findings were used most effectively, what
   supporting evidence went unused, and any unsupported claims.
4. Debate Flow and Momentum — who established stronger initial framing, where momentum
   shifted and why, and who delivered more compelling final arguments.
5. Critical Turning Points — one or two moments that changed the debate trajectory
   and what made those exchanges effective.
6. Debate Quality Metrics — depth, nuance, civility, and innovation, each rated 1-10.
7. Strategic Recommendations — what would strengthen each side in future debates and
   which additional evidence or angles would be valuable.

Use clear headings, include specific examples from the debate rounds, provide the
numerical ratings where indicated, and be objective but insightful. Focus on strategic
analysis, not content repetition.`

// New configures the strategic analyst agent.
func New(model string) *agents.Agent {
	return agents.New(AgentName).
		WithInstructions(instructions).
		WithHandoffDescription(Description).
		WithModel(model)
}

// Input assembles everything the analyst needs from the finished debate.
func Input(assignments debate.RoleAssignments, findings debate.Findings, transcript debate.Transcript) string {
	return fmt.Sprintf(`Role context:

%s

Proponent research:
%s

Opponent research:
%s

Debate rounds:
%s`,
		assignments.Describe(), findings.Proponent, findings.Opponent, transcript.Render())
}
