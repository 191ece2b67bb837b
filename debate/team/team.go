// Package team is the conversational entry point of the debate system. The
// greeter handles small talk and topic extraction over a persistent session;
// once a topic is captured the full debate workflow runs and its report is
// returned as the reply.
package team

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/nlpodyssey/openai-agents-go/agents"
	"github.com/nlpodyssey/openai-agents-go/memory"
	"github.com/rs/zerolog"

	"github.com/your-org/ai-debate-team/debate"
	"github.com/your-org/ai-debate-team/debate/agents/greeter"
	"github.com/your-org/ai-debate-team/debate/workflow"
)

const followUp = "That concludes the debate. If you'd like to explore another topic, just tell me what it is!"

// Options configures a Team.
type Options struct {
	// Model is the model name for the greeter.
	Model string

	// Workflow runs the debate once a topic is captured.
	Workflow *workflow.Manager

	// SessionDB is the SQLite data source used for conversation history.
	// Empty uses a shared in-memory database.
	SessionDB string

	Logger zerolog.Logger
}

// Team routes user messages: greeter first, workflow when a topic arrives.
type Team struct {
	Greeter  *agents.Agent
	Workflow *workflow.Manager

	sessionDB string
	log       zerolog.Logger
}

// Reply is the outcome of one user message.
type Reply struct {
	// SessionID identifies the conversation, generated when the caller
	// did not provide one.
	SessionID string `json:"session_id"`

	// Text is the assistant reply to show the user.
	Text string `json:"text"`

	// Result is set only when this message triggered a full debate.
	Result *debate.Result `json:"result,omitempty"`
}

// New builds a Team around an existing workflow manager.
func New(opts Options) *Team {
	return &Team{
		Greeter:   greeter.New(opts.Model),
		Workflow:  opts.Workflow,
		sessionDB: opts.SessionDB,
		log:       opts.Logger,
	}
}

// Respond handles one user message within a session. Greeter turns share
// history through the session store; a captured topic hands off to the
// debate workflow and the reply carries the full report.
func (t *Team) Respond(ctx context.Context, sessionID, message string) (*Reply, error) {
	if sessionID == "" {
		sessionID = uuid.NewString()
	}

	session, err := memory.NewSQLiteSession(ctx, memory.SQLiteSessionParams{
		SessionID:        sessionID,
		DBDataSourceName: t.sessionDB,
	})
	if err != nil {
		return nil, fmt.Errorf("open session %s: %w", sessionID, err)
	}
	defer func() {
		if err := session.Close(); err != nil {
			t.log.Warn().Err(err).Str("session_id", sessionID).Msg("closing session")
		}
	}()

	capture := &greeter.TopicCapture{}
	runner := agents.Runner{Config: agents.RunConfig{Session: session}}
	run, err := runner.Run(greeter.WithCapture(ctx, capture), t.Greeter, message)
	if err != nil {
		return nil, fmt.Errorf("greeter: %w", err)
	}

	if !capture.Started() {
		return &Reply{SessionID: sessionID, Text: textOutput(run)}, nil
	}

	t.log.Info().Str("session_id", sessionID).Str("topic", capture.Topic).Msg("starting debate")
	result, err := t.Workflow.Run(ctx, capture.Topic)
	if err != nil {
		return nil, fmt.Errorf("debate on %q: %w", capture.Topic, err)
	}

	return &Reply{
		SessionID: sessionID,
		Text:      result.RenderMarkdown() + "\n\n" + followUp,
		Result:    result,
	}, nil
}

func textOutput(run *agents.RunResult) string {
	if s, ok := run.FinalOutput.(string); ok {
		return s
	}
	return agents.ItemHelpers().TextMessageOutputs(run.NewItems)
}
