package prompt

import (
	"fmt"
	"strings"

	"motherlanka-be/pkg/rag/search"
)

const (
	Persona     = "You are MotherLanka Assistant, a helpful Sri Lanka travel guide."
	Instruction = "Answer using ONLY the context below. If the answer is not contained in the context, say you don't know and suggest contacting the team."
)

// GroundedBuilder renders the retrieval matches as numbered sources and asks
// the model to answer from them alone. Match order is kept as given.
type GroundedBuilder struct {
	question string
	matches  []search.ScoredMatch
}

func NewGroundedBuilder(question string, matches []search.ScoredMatch) *GroundedBuilder {
	return &GroundedBuilder{
		question: question,
		matches:  matches,
	}
}

func (b *GroundedBuilder) Build() string {
	var prompt strings.Builder

	b.writePreamble(&prompt)
	b.writeContext(&prompt)
	b.writeQuestion(&prompt)

	return prompt.String()
}

func (b *GroundedBuilder) writePreamble(prompt *strings.Builder) {
	prompt.WriteString(Persona)
	prompt.WriteString("\n")
	prompt.WriteString(Instruction)
	prompt.WriteString("\n\n")
}

func (b *GroundedBuilder) writeContext(prompt *strings.Builder) {
	prompt.WriteString("Context:\n")
	for i, m := range b.matches {
		if i > 0 {
			prompt.WriteString("\n\n")
		}
		fmt.Fprintf(prompt, "Source %d (%s - %s):\n%s", i+1, m.Chunk.Type, m.Chunk.Title, m.Chunk.Content)
	}
	prompt.WriteString("\n\n")
}

func (b *GroundedBuilder) writeQuestion(prompt *strings.Builder) {
	prompt.WriteString("Question: ")
	prompt.WriteString(b.question)
}

// Build is shorthand for NewGroundedBuilder(question, matches).Build().
func Build(question string, matches []search.ScoredMatch) string {
	return NewGroundedBuilder(question, matches).Build()
}
