package greeter

import (
	"context"
	"fmt"
	"strings"

	"github.com/nlpodyssey/openai-agents-go/agents"
)

type captureKey struct{}

// TopicCapture receives the topic extracted by the start_debate tool during
// a single greeter run. A zero Topic after the run means the greeter replied
// conversationally without starting a debate.
type TopicCapture struct {
	Topic string
}

// Started reports whether the greeter extracted a topic.
func (c *TopicCapture) Started() bool { return c.Topic != "" }

// WithCapture attaches a TopicCapture to the context for one greeter run.
func WithCapture(ctx context.Context, c *TopicCapture) context.Context {
	return context.WithValue(ctx, captureKey{}, c)
}

// StartDebateArgs are the arguments of the start_debate tool.
type StartDebateArgs struct {
	Topic string `json:"topic" jsonschema_description:"The debate topic extracted from the user's message."`
}

func startDebateTool() agents.Tool {
	return agents.NewFunctionTool(
		StartDebateToolName,
		"Start the debate workflow for the extracted topic.",
		func(ctx context.Context, args StartDebateArgs) (string, error) {
			topic := strings.TrimSpace(args.Topic)
			if topic == "" {
				return "", fmt.Errorf("start_debate called with an empty topic")
			}
			if c, ok := ctx.Value(captureKey{}).(*TopicCapture); ok {
				c.Topic = topic
			}
			return fmt.Sprintf("Transferring to the debate workflow for topic: %s", topic), nil
		},
	)
}
