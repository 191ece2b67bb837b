package debater

import (
	"context"

	"github.com/nlpodyssey/openai-agents-go/agents"
)

type captureKey struct{}

// EndCapture records whether a debater called end_debate during a run.
type EndCapture struct {
	Ended bool
}

// WithCapture attaches an EndCapture to the context for one debater run.
func WithCapture(ctx context.Context, c *EndCapture) context.Context {
	return context.WithValue(ctx, captureKey{}, c)
}

// EndDebateArgs are the arguments of the end_debate tool.
type EndDebateArgs struct {
	Reason string `json:"reason" jsonschema_description:"Why the debate has reached sufficient depth and coverage."`
}

func endDebateTool() agents.Tool {
	return agents.NewFunctionTool(
		EndDebateToolName,
		"Conclude the debate once the key points have been thoroughly covered by both sides.",
		func(ctx context.Context, args EndDebateArgs) (string, error) {
			if c, ok := ctx.Value(captureKey{}).(*EndCapture); ok {
				c.Ended = true
			}
			return "Debate has reached sufficient depth and coverage.", nil
		},
	)
}
