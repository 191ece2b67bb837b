// Package debater configures the two agents that argue the debate rounds.
// Each round is one run: the debater receives the setup, both research
// summaries and the transcript so far, and produces a single argument.
// Either debater may call end_debate to conclude the loop early.
package debater

import (
	"fmt"

	"github.com/nlpodyssey/openai-agents-go/agents"

	"github.com/your-org/ai-debate-team/debate"
)

// Agent names, one per stance.
const (
	ProponentAgentName = "ProponentDebater"
	OpponentAgentName  = "OpponentDebater"
)

// EndDebateToolName ends the iterative debate loop when called.
const EndDebateToolName = "end_debate"

const proponentInstructions = `You are the PROPONENT debater in an iterative debate.

Make ONE strong argument FOR your position. This is a single round in an ongoing debate.

Start your response with "PROPONENT:" to clearly identify your role.

- Use your research evidence effectively.
- Be persuasive but concise (2-3 sentences).
- Stay focused on your FOR position.
- If previous rounds have occurred, build on the discussion naturally.

If this is an advanced round (after several exchanges) and you believe the key points
have been thoroughly covered from both sides, call the 'end_debate' tool to conclude
the discussion instead of arguing.`

const opponentInstructions = `You are the OPPONENT debater in an iterative debate.

Make ONE strong argument AGAINST the position. This is a single round in an ongoing debate.

Start your response with "OPPONENT:" to clearly identify your role.

- Use your research evidence strategically.
- Be persuasive but concise (2-3 sentences).
- Stay focused on your AGAINST position.
- If previous rounds have occurred, respond to the discussion naturally.

If this is an advanced round (after several exchanges) and you believe the key points
have been thoroughly covered from both sides, call the 'end_debate' tool to conclude
the discussion instead of arguing.`

// Name returns the agent name for a stance.
func Name(s debate.Stance) string {
	if s == debate.StanceProponent {
		return ProponentAgentName
	}
	return OpponentAgentName
}

// Description returns the listing description for a stance's debater.
func Description(s debate.Stance) string {
	if s == debate.StanceProponent {
		return "Makes individual pro arguments in the iterative debate."
	}
	return "Makes individual opposing arguments in the iterative debate."
}

// New configures the debater agent for the given stance.
func New(s debate.Stance, model string) *agents.Agent {
	instructions := proponentInstructions
	if s == debate.StanceOpponent {
		instructions = opponentInstructions
	}
	return agents.New(Name(s)).
		WithInstructions(instructions).
		WithHandoffDescription(Description(s)).
		WithTools(endDebateTool()).
		WithToolUseBehavior(agents.StopAtTools(EndDebateToolName)).
		WithModel(model)
}

// RoundInput builds the per-round input for a debater: role context, own and
// opposing research, the transcript so far, and the round number.
func RoundInput(s debate.Stance, assignments debate.RoleAssignments, findings debate.Findings, transcript debate.Transcript, round int) string {
	return fmt.Sprintf(`Role context:

%s

Your research:
%s

%s's research (for context):
%s

Debate so far:
%s

Make your argument for round %d.`,
		assignments.Describe(),
		findings.For(s),
		s.Other().Marker(),
		findings.For(s.Other()),
		transcript.Render(),
		round,
	)
}
