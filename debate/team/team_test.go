package team_test

import (
	"path/filepath"
	"testing"

	"github.com/nlpodyssey/openai-agents-go/agents"
	"github.com/nlpodyssey/openai-agents-go/agentstesting"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/your-org/ai-debate-team/debate/agents/greeter"
	"github.com/your-org/ai-debate-team/debate/team"
	"github.com/your-org/ai-debate-team/debate/workflow"
)

const assignmentsJSON = `{
	"topic": "nuclear power",
	"question": "Should nuclear power be expanded?",
	"proponent": {
		"position": "FOR expanding nuclear power",
		"core_argument": "Reliable low-carbon baseload."
	},
	"opponent": {
		"position": "AGAINST expanding nuclear power",
		"core_argument": "Cost and waste concerns."
	}
}`

func textModel(content string) *agentstesting.FakeModel {
	return agentstesting.NewFakeModel(false, &agentstesting.FakeModelTurnOutput{
		Value: []agents.TResponseOutputItem{agentstesting.GetTextMessage(content)},
	})
}

func newFakeTeam(t *testing.T, greeterModel *agentstesting.FakeModel) *team.Team {
	t.Helper()

	wf := workflow.New(workflow.Options{Model: "gpt-4o", MaxExchanges: 2})
	wf.Roles.WithModelInstance(agentstesting.NewFakeModel(false, &agentstesting.FakeModelTurnOutput{
		Value: []agents.TResponseOutputItem{agentstesting.GetFinalOutputMessage(assignmentsJSON)},
	}))
	wf.ProponentResearcher.WithModelInstance(textModel("pro research findings"))
	wf.OpponentResearcher.WithModelInstance(textModel("con research findings"))
	wf.ProponentDebater.WithModelInstance(textModel("PROPONENT: argument one"))
	wf.OpponentDebater.WithModelInstance(textModel("OPPONENT: argument two"))
	wf.Analyst.WithModelInstance(textModel("strategic analysis"))
	wf.Summarizer.WithModelInstance(textModel("Debate Winner: Proponent"))

	tm := team.New(team.Options{
		Model:     "gpt-4o",
		Workflow:  wf,
		SessionDB: filepath.Join(t.TempDir(), "sessions.db"),
	})
	tm.Greeter.WithModelInstance(greeterModel)
	return tm
}

func TestRespondGreeting(t *testing.T) {
	tm := newFakeTeam(t, textModel("Hello! What topic would you like to debate?"))

	reply, err := tm.Respond(t.Context(), "", "hi")
	require.NoError(t, err)

	assert.NotEmpty(t, reply.SessionID)
	assert.Contains(t, reply.Text, "What topic")
	assert.Nil(t, reply.Result)
}

func TestRespondKeepsProvidedSessionID(t *testing.T) {
	tm := newFakeTeam(t, textModel("Hello again!"))

	reply, err := tm.Respond(t.Context(), "session-42", "hi")
	require.NoError(t, err)

	assert.Equal(t, "session-42", reply.SessionID)
}

func TestRespondRunsDebateOnTopic(t *testing.T) {
	greeterModel := agentstesting.NewFakeModel(false, &agentstesting.FakeModelTurnOutput{
		Value: []agents.TResponseOutputItem{
			agentstesting.GetFunctionToolCall(greeter.StartDebateToolName, `{"topic": "nuclear power"}`),
		},
	})
	tm := newFakeTeam(t, greeterModel)

	reply, err := tm.Respond(t.Context(), "", "let's debate nuclear power")
	require.NoError(t, err)

	require.NotNil(t, reply.Result)
	assert.Equal(t, "nuclear power", reply.Result.Topic)
	assert.Len(t, reply.Result.Rounds, 2)
	assert.Contains(t, reply.Text, "## Debate: nuclear power")
	assert.Contains(t, reply.Text, "another topic")
}
