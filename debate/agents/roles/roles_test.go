package roles_test

import (
	"testing"

	"github.com/nlpodyssey/openai-agents-go/agents"
	"github.com/nlpodyssey/openai-agents-go/agentstesting"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/your-org/ai-debate-team/debate"
	"github.com/your-org/ai-debate-team/debate/agents/roles"
)

const assignmentsJSON = `{
	"topic": "nuclear power",
	"question": "Should nuclear power be a central part of the energy transition?",
	"proponent": {
		"position": "FOR expanding nuclear power",
		"core_argument": "Nuclear provides reliable low-carbon baseload electricity."
	},
	"opponent": {
		"position": "AGAINST expanding nuclear power",
		"core_argument": "High costs and unresolved waste storage outweigh the benefits."
	}
}`

func TestRoleAssignmentProducesStructuredOutput(t *testing.T) {
	model := agentstesting.NewFakeModel(false, &agentstesting.FakeModelTurnOutput{
		Value: []agents.TResponseOutputItem{
			agentstesting.GetFinalOutputMessage(assignmentsJSON),
		},
	})
	agent := roles.New("gpt-4o").WithModelInstance(model)

	result, err := agents.Run(t.Context(), agent, roles.Input("nuclear power"))
	require.NoError(t, err)

	assignments, ok := result.FinalOutput.(debate.RoleAssignments)
	require.True(t, ok, "expected RoleAssignments, got %T", result.FinalOutput)
	assert.Equal(t, "nuclear power", assignments.Topic)
	assert.Contains(t, assignments.Question, "nuclear power")
	assert.Contains(t, assignments.Proponent.Position, "FOR")
	assert.Contains(t, assignments.Opponent.Position, "AGAINST")
}

func TestInput(t *testing.T) {
	assert.Equal(t, "Debate topic: remote work", roles.Input("remote work"))
}
