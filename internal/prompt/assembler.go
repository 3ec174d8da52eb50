// Package prompt builds the system instruction and user prompt for a
// chat completion from knowledge entries and conversation history.
//
// Assembly is pure string work with no I/O, so it is deterministic for
// a given knowledge base and history.
package prompt

import (
	"fmt"
	"strings"

	"github.com/concierge-dev/concierge/internal/conversation"
	"github.com/concierge-dev/concierge/internal/knowledge"
)

// noKnowledgeFallback stands in for the schedule context when the
// knowledge base is empty, steering the model toward admitting it
// has nothing to answer from.
const noKnowledgeFallback = "No conference schedule is currently available."

const systemTemplate = `You are a helpful conference concierge for DevFest.
Use the following Conference Schedule Information to answer the user's question.
If the answer is not in the schedule, politely say you don't know.
Never invent sessions, speakers, or times that are not in the schedule.

--- Conference Schedule ---
%s
---------------------------`

// Assembler builds prompts with a bounded history window.
type Assembler struct {
	maxRecentTurns int
}

// New creates an assembler that includes at most maxRecentTurns prior
// turns in the prompt. Non-positive values fall back to the default
// window of 5.
func New(maxRecentTurns int) *Assembler {
	if maxRecentTurns <= 0 {
		maxRecentTurns = 5
	}
	return &Assembler{maxRecentTurns: maxRecentTurns}
}

// Assemble returns the system instruction and user prompt for one
// chat completion. Knowledge entries are rendered in the order given;
// only the most recent turns of history make it into the prompt.
func (a *Assembler) Assemble(entries []knowledge.Entry, history []conversation.Turn, question string) (system, userPrompt string) {
	system = fmt.Sprintf(systemTemplate, renderContext(entries))

	var b strings.Builder

	recent := history
	if len(recent) > a.maxRecentTurns {
		recent = recent[len(recent)-a.maxRecentTurns:]
	}
	// The header is part of the fixed prompt shape even when no turns follow
	b.WriteString("Previous conversation:\n")
	for _, turn := range recent {
		fmt.Fprintf(&b, "User: %s\nModel: %s\n", turn.User, turn.Model)
	}
	b.WriteString("\n")
	fmt.Fprintf(&b, "Current User Question: %s", question)

	return system, b.String()
}

// renderContext joins entry summaries into the schedule block, each
// prefixed with its source so answers can be traced back to a document.
func renderContext(entries []knowledge.Entry) string {
	if len(entries) == 0 {
		return noKnowledgeFallback
	}

	blocks := make([]string, 0, len(entries))
	for _, entry := range entries {
		blocks = append(blocks, fmt.Sprintf("--- Source: %s ---\n%s", entry.SourceFile, entry.Summary))
	}
	return strings.Join(blocks, "\n\n")
}
