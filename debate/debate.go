// Package debate holds the shared state passed between the agents of the
// debate pipeline: role assignments, research findings, the round transcript
// and the final result. The orchestration framework owns the conversation
// mechanics; these types are the data that flows between its runs.
package debate

import (
	"fmt"
	"strings"
	"time"
)

// Stance identifies which side of the debate an agent argues.
type Stance string

const (
	StanceProponent Stance = "proponent"
	StanceOpponent  Stance = "opponent"
)

// Other returns the opposing stance.
func (s Stance) Other() Stance {
	if s == StanceProponent {
		return StanceOpponent
	}
	return StanceProponent
}

// Marker returns the round marker used to identify a debater in transcripts.
func (s Stance) Marker() string {
	if s == StanceProponent {
		return "PROPONENT"
	}
	return "OPPONENT"
}

// Position describes one side's stake in the debate.
type Position struct {
	Position     string `json:"position" jsonschema_description:"What this side argues for or against."`
	CoreArgument string `json:"core_argument" jsonschema_description:"The side's main line of reasoning, in one or two sentences."`
}

// RoleAssignments is the structured output of the role assignment agent:
// the topic rephrased as a debatable question plus both positions.
type RoleAssignments struct {
	Topic     string   `json:"topic" jsonschema_description:"The debate topic, restated clearly."`
	Question  string   `json:"question" jsonschema_description:"A clear, focused debate question derived from the topic."`
	Proponent Position `json:"proponent" jsonschema_description:"The position arguing FOR."`
	Opponent  Position `json:"opponent" jsonschema_description:"The position arguing AGAINST."`
}

// Describe renders the assignments as text for inclusion in downstream prompts.
func (ra RoleAssignments) Describe() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Debate Topic: %s\n", ra.Topic)
	fmt.Fprintf(&b, "Debate Question: %s\n\n", ra.Question)
	fmt.Fprintf(&b, "Proponent Position: %s\n", ra.Proponent.Position)
	fmt.Fprintf(&b, "Proponent Main Argument: %s\n\n", ra.Proponent.CoreArgument)
	fmt.Fprintf(&b, "Opponent Position: %s\n", ra.Opponent.Position)
	fmt.Fprintf(&b, "Opponent Main Argument: %s\n", ra.Opponent.CoreArgument)
	return b.String()
}

// Findings holds the collected research summaries, one per stance.
type Findings struct {
	Proponent string `json:"proponent"`
	Opponent  string `json:"opponent"`
}

// For returns the findings for the given stance.
func (f Findings) For(s Stance) string {
	if s == StanceProponent {
		return f.Proponent
	}
	return f.Opponent
}

// Round is a single argument made by one debater.
type Round struct {
	// Index is 1-based and contiguous across the transcript.
	Index    int    `json:"index"`
	Stance   Stance `json:"stance"`
	Argument string `json:"argument"`
}

// Transcript is the ordered list of debate rounds. Rounds alternate,
// starting with the proponent.
type Transcript []Round

// Render formats the transcript for prompts and for the final report.
func (t Transcript) Render() string {
	if len(t) == 0 {
		return "(no rounds yet)"
	}
	var b strings.Builder
	for _, r := range t {
		fmt.Fprintf(&b, "Round %d - %s: %s\n\n", r.Index, r.Stance.Marker(), r.Argument)
	}
	return strings.TrimRight(b.String(), "\n")
}

// Result aggregates the complete outcome of one debate run.
type Result struct {
	Topic       string          `json:"topic"`
	Assignments RoleAssignments `json:"assignments"`
	Findings    Findings        `json:"findings"`
	Rounds      Transcript      `json:"rounds"`
	// EndedEarly is true when a debater concluded the loop before the
	// exchange budget was spent.
	EndedEarly bool          `json:"ended_early"`
	Analysis   string        `json:"analysis"`
	Verdict    string        `json:"verdict"`
	Duration   time.Duration `json:"duration"`
}

// RenderMarkdown produces the user-facing report for a finished debate.
func (r *Result) RenderMarkdown() string {
	var b strings.Builder
	fmt.Fprintf(&b, "## Debate: %s\n\n", r.Topic)
	b.WriteString("### Debate Setup\n\n")
	b.WriteString(r.Assignments.Describe())
	b.WriteString("\n\n### Debate Rounds\n\n")
	b.WriteString(r.Rounds.Render())
	b.WriteString("\n\n### Strategic Analysis\n\n")
	b.WriteString(r.Analysis)
	b.WriteString("\n\n### Final Judgment\n\n")
	b.WriteString(r.Verdict)
	b.WriteString("\n")
	return b.String()
}
