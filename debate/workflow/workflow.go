// Package workflow composes the debate pipeline on top of the agent
// orchestration framework: role assignment, parallel stance research,
// iterative debate rounds, strategic analysis, and the final judgment.
// The framework runs each agent; this package only declares the order,
// the fan-out, and the loop bound.
package workflow

import (
	"context"
	"fmt"
	"time"

	"github.com/nlpodyssey/openai-agents-go/agents"
	"github.com/nlpodyssey/openai-agents-go/tracing"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/your-org/ai-debate-team/debate"
	"github.com/your-org/ai-debate-team/debate/agents/analyst"
	"github.com/your-org/ai-debate-team/debate/agents/debater"
	"github.com/your-org/ai-debate-team/debate/agents/researcher"
	"github.com/your-org/ai-debate-team/debate/agents/roles"
	"github.com/your-org/ai-debate-team/debate/agents/summarizer"
)

// WorkflowName identifies the pipeline in traces.
const WorkflowName = "AI Debate Team"

// DefaultMaxExchanges bounds the debate loop. With two debaters this allows
// four rounds each.
const DefaultMaxExchanges = 8

// Stage names reported through the progress hook and in wrapped errors.
const (
	StageRoles    = "role_assignment"
	StageResearch = "stance_research"
	StageRounds   = "debate_rounds"
	StageAnalysis = "strategic_analysis"
	StageJudgment = "final_judgment"
)

// ProgressFunc receives stage transitions while a debate runs.
type ProgressFunc func(stage string)

// Options configures a Manager.
type Options struct {
	// Model is the model name used by every agent in the pipeline.
	Model string

	// MaxExchanges bounds the total number of debate arguments. Zero or
	// negative values fall back to DefaultMaxExchanges.
	MaxExchanges int

	Logger   zerolog.Logger
	Progress ProgressFunc
}

// Manager executes the complete debate pipeline for one topic at a time.
// The agent fields are exported so tests can swap in fake models.
type Manager struct {
	Roles               *agents.Agent
	ProponentResearcher *agents.Agent
	OpponentResearcher  *agents.Agent
	ProponentDebater    *agents.Agent
	OpponentDebater     *agents.Agent
	Analyst             *agents.Agent
	Summarizer          *agents.Agent

	maxExchanges int
	log          zerolog.Logger
	progress     ProgressFunc
}

// New builds a Manager with all pipeline agents configured for the model.
func New(opts Options) *Manager {
	maxExchanges := opts.MaxExchanges
	if maxExchanges <= 0 {
		maxExchanges = DefaultMaxExchanges
	}
	progress := opts.Progress
	if progress == nil {
		progress = func(string) {}
	}
	return &Manager{
		Roles:               roles.New(opts.Model),
		ProponentResearcher: researcher.New(debate.StanceProponent, opts.Model),
		OpponentResearcher:  researcher.New(debate.StanceOpponent, opts.Model),
		ProponentDebater:    debater.New(debate.StanceProponent, opts.Model),
		OpponentDebater:     debater.New(debate.StanceOpponent, opts.Model),
		Analyst:             analyst.New(opts.Model),
		Summarizer:          summarizer.New(opts.Model),
		maxExchanges:        maxExchanges,
		log:                 opts.Logger,
		progress:            progress,
	}
}

// MaxExchanges returns the configured exchange budget.
func (m *Manager) MaxExchanges() int { return m.maxExchanges }

// Run executes the full pipeline for a topic and returns the aggregated
// result. The whole run is recorded as a single trace.
func (m *Manager) Run(ctx context.Context, topic string) (*debate.Result, error) {
	start := time.Now()
	result := &debate.Result{Topic: topic}

	err := tracing.RunTrace(
		ctx, tracing.TraceParams{WorkflowName: WorkflowName},
		func(ctx context.Context, _ tracing.Trace) error {
			assignments, err := m.assignRoles(ctx, topic)
			if err != nil {
				return fmt.Errorf("%s: %w", StageRoles, err)
			}
			result.Assignments = *assignments

			findings, err := m.researchBothSides(ctx, *assignments)
			if err != nil {
				return fmt.Errorf("%s: %w", StageResearch, err)
			}
			result.Findings = *findings

			transcript, endedEarly, err := m.runDebateRounds(ctx, *assignments, *findings)
			if err != nil {
				return fmt.Errorf("%s: %w", StageRounds, err)
			}
			result.Rounds = transcript
			result.EndedEarly = endedEarly

			analysis, err := m.analyze(ctx, *assignments, *findings, transcript)
			if err != nil {
				return fmt.Errorf("%s: %w", StageAnalysis, err)
			}
			result.Analysis = analysis

			verdict, err := m.judge(ctx, *assignments, analysis)
			if err != nil {
				return fmt.Errorf("%s: %w", StageJudgment, err)
			}
			result.Verdict = verdict
			return nil
		},
	)
	if err != nil {
		return nil, err
	}

	result.Duration = time.Since(start)
	m.log.Info().
		Str("topic", topic).
		Int("rounds", len(result.Rounds)).
		Bool("ended_early", result.EndedEarly).
		Dur("duration", result.Duration).
		Msg("debate completed")
	return result, nil
}

func (m *Manager) assignRoles(ctx context.Context, topic string) (*debate.RoleAssignments, error) {
	m.progress(StageRoles)
	m.log.Debug().Str("topic", topic).Msg("assigning debate roles")

	run, err := agents.Run(ctx, m.Roles, roles.Input(topic))
	if err != nil {
		return nil, err
	}
	assignments, ok := run.FinalOutput.(debate.RoleAssignments)
	if !ok {
		return nil, fmt.Errorf("unexpected role assignment output type %T", run.FinalOutput)
	}
	return &assignments, nil
}

// researchBothSides fans out both researchers concurrently. The first
// failure cancels the sibling run.
func (m *Manager) researchBothSides(ctx context.Context, assignments debate.RoleAssignments) (*debate.Findings, error) {
	m.progress(StageResearch)
	m.log.Debug().Msg("researching both stances")

	findings := &debate.Findings{}
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		text, err := m.research(ctx, m.ProponentResearcher, debate.StanceProponent, assignments)
		if err != nil {
			return err
		}
		findings.Proponent = text
		return nil
	})
	g.Go(func() error {
		text, err := m.research(ctx, m.OpponentResearcher, debate.StanceOpponent, assignments)
		if err != nil {
			return err
		}
		findings.Opponent = text
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return findings, nil
}

func (m *Manager) research(ctx context.Context, agent *agents.Agent, stance debate.Stance, assignments debate.RoleAssignments) (string, error) {
	run, err := agents.Run(ctx, agent, researcher.Input(stance, assignments))
	if err != nil {
		return "", fmt.Errorf("%s research: %w", stance, err)
	}
	return textOutput(run), nil
}

// runDebateRounds alternates the debaters, proponent first, until the
// exchange budget is spent or either side calls end_debate.
func (m *Manager) runDebateRounds(ctx context.Context, assignments debate.RoleAssignments, findings debate.Findings) (debate.Transcript, bool, error) {
	m.progress(StageRounds)

	var transcript debate.Transcript
	for i := 1; i <= m.maxExchanges; i++ {
		stance := debate.StanceProponent
		agent := m.ProponentDebater
		if i%2 == 0 {
			stance = debate.StanceOpponent
			agent = m.OpponentDebater
		}

		capture := &debater.EndCapture{}
		run, err := agents.Run(
			debater.WithCapture(ctx, capture),
			agent,
			debater.RoundInput(stance, assignments, findings, transcript, i),
		)
		if err != nil {
			return nil, false, fmt.Errorf("round %d (%s): %w", i, stance, err)
		}
		if capture.Ended {
			m.log.Debug().Int("round", i).Str("stance", string(stance)).Msg("debate ended early")
			return transcript, true, nil
		}

		transcript = append(transcript, debate.Round{
			Index:    i,
			Stance:   stance,
			Argument: textOutput(run),
		})
	}
	return transcript, false, nil
}

func (m *Manager) analyze(ctx context.Context, assignments debate.RoleAssignments, findings debate.Findings, transcript debate.Transcript) (string, error) {
	m.progress(StageAnalysis)
	m.log.Debug().Msg("analyzing debate performance")

	run, err := agents.Run(ctx, m.Analyst, analyst.Input(assignments, findings, transcript))
	if err != nil {
		return "", err
	}
	return textOutput(run), nil
}

func (m *Manager) judge(ctx context.Context, assignments debate.RoleAssignments, analysis string) (string, error) {
	m.progress(StageJudgment)
	m.log.Debug().Msg("producing final judgment")

	run, err := agents.Run(ctx, m.Summarizer, summarizer.Input(assignments, analysis))
	if err != nil {
		return "", err
	}
	return textOutput(run), nil
}

// textOutput extracts the plain-text output of a run.
func textOutput(run *agents.RunResult) string {
	if s, ok := run.FinalOutput.(string); ok {
		return s
	}
	return agents.ItemHelpers().TextMessageOutputs(run.NewItems)
}
