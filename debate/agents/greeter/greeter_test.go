package greeter_test

import (
	"testing"

	"github.com/nlpodyssey/openai-agents-go/agents"
	"github.com/nlpodyssey/openai-agents-go/agentstesting"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/your-org/ai-debate-team/debate/agents/greeter"
)

func TestGreeterRespondsWithoutStartingDebate(t *testing.T) {
	model := agentstesting.NewFakeModel(false, &agentstesting.FakeModelTurnOutput{
		Value: []agents.TResponseOutputItem{
			agentstesting.GetTextMessage("Hello! I'm the greeter for the AI debate team. What topic would you like to explore?"),
		},
	})
	agent := greeter.New("gpt-4o").WithModelInstance(model)

	capture := &greeter.TopicCapture{}
	result, err := agents.Run(greeter.WithCapture(t.Context(), capture), agent, "hi there")
	require.NoError(t, err)

	assert.False(t, capture.Started())
	assert.Contains(t, result.FinalOutput, "What topic")
}

func TestGreeterCapturesTopic(t *testing.T) {
	model := agentstesting.NewFakeModel(false, &agentstesting.FakeModelTurnOutput{
		Value: []agents.TResponseOutputItem{
			agentstesting.GetFunctionToolCall(greeter.StartDebateToolName, `{"topic": "nuclear power"}`),
		},
	})
	agent := greeter.New("gpt-4o").WithModelInstance(model)

	capture := &greeter.TopicCapture{}
	result, err := agents.Run(greeter.WithCapture(t.Context(), capture), agent, "I want to debate nuclear power")
	require.NoError(t, err)

	assert.True(t, capture.Started())
	assert.Equal(t, "nuclear power", capture.Topic)
	assert.Contains(t, result.FinalOutput, "nuclear power")
}

func TestGreeterTrimsCapturedTopic(t *testing.T) {
	model := agentstesting.NewFakeModel(false, &agentstesting.FakeModelTurnOutput{
		Value: []agents.TResponseOutputItem{
			agentstesting.GetFunctionToolCall(greeter.StartDebateToolName, `{"topic": "  remote work  "}`),
		},
	})
	agent := greeter.New("gpt-4o").WithModelInstance(model)

	capture := &greeter.TopicCapture{}
	_, err := agents.Run(greeter.WithCapture(t.Context(), capture), agent, "debate remote work")
	require.NoError(t, err)

	assert.Equal(t, "remote work", capture.Topic)
}

func TestGreeterRejectsEmptyTopic(t *testing.T) {
	model := agentstesting.NewFakeModel(false, &agentstesting.FakeModelTurnOutput{
		Value: []agents.TResponseOutputItem{
			agentstesting.GetFunctionToolCall(greeter.StartDebateToolName, `{"topic": "   "}`),
		},
	})
	agent := greeter.New("gpt-4o").WithModelInstance(model)

	capture := &greeter.TopicCapture{}
	_, err := agents.Run(greeter.WithCapture(t.Context(), capture), agent, "let's debate")
	require.Error(t, err)
	assert.False(t, capture.Started())
}
