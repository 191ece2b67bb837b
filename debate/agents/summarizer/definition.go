// Package summarizer configures the final judge. It declares the winner based
// on the strategic analysis; afterwards control returns to the greeter, which
// is handled by the conversation service once the workflow completes.
package summarizer

import (
	"fmt"

	"github.com/nlpodyssey/openai-agents-go/agents"

	"github.com/your-org/ai-debate-team/debate"
)

const AgentName = "DebateSummarizerAgent"

const Description = "Final judge who declares the debate winner and provides decisive conclusions without repeating analysis."

const instructions = `You are the final judge who declares the debate winner and provides conclusive takeaways.

Based on the strategic analysis provided, make the FINAL CALL and provide decisive
conclusions — do NOT repeat the detailed analysis.

Provide:

- Debate Winner: Proponent or Opponent, the margin of victory
  (Decisive/Clear/Narrow), and the key reason for victory in 1-2 sentences.
- Decisive Moments: the single most impactful argument or exchange, and when
  momentum shifted decisively.
- Performance Grades: an A-F grade for each side with one sentence of
  justification each.
- Key Takeaways: what the debate revealed about the topic, one lesson for future
  debaters, and the most persuasive evidence.
- Debate Highlights: the best moment for each side and one missed opportunity.
- Judge's Final Verdict: 2-3 sentences wrapping up why the winner deserved
  victory and what made this debate valuable.

Be decisive. Make clear judgments based on the strategic analysis; don't hedge,
and always call a winner.`

// New configures the summarizer agent.
func New(model string) *agents.Agent {
	return agents.New(AgentName).
		WithInstructions(instructions).
		WithHandoffDescription(Description).
		WithModel(model)
}

// Input gives the judge the role assignments and the strategic analysis.
func Input(assignments debate.RoleAssignments, analysis string) string {
	return fmt.Sprintf(`Role assignments:

%s

Strategic analysis:

%s`, assignments.Describe(), analysis)
}
