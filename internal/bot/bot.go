package bot

import (
	"context"
	"fmt"

	"tourguide/internal/llm"
	"tourguide/internal/store"
)

// Retriever is the bot-facing slice of the vector store, pluggable for tests.
type Retriever interface {
	Search(ctx context.Context, query string, n int) ([]store.Result, error)
}

// Generator produces an answer from a chat transcript.
type Generator interface {
	Generate(ctx context.Context, messages []llm.Message) (string, error)
}

// Bot answers questions by retrieving relevant chunks and prompting the LLM
// with them. It remembers the last few exchanges so follow-up questions keep
// their context.
type Bot struct {
	retriever    Retriever
	generator    Generator
	topK         int
	historyTurns int
	history      []llm.Message
}

func New(retriever Retriever, generator Generator, topK, historyTurns int) *Bot {
	return &Bot{
		retriever:    retriever,
		generator:    generator,
		topK:         topK,
		historyTurns: historyTurns,
	}
}

// Ask runs one turn: retrieve, assemble the prompt, generate. Retrieval and
// generation errors abort the turn; an empty retrieval result still proceeds
// with an empty context block.
func (b *Bot) Ask(ctx context.Context, question string) (string, error) {
	results, err := b.retriever.Search(ctx, question, b.topK)
	if err != nil {
		return "", fmt.Errorf("retrieval failed: %w", err)
	}

	messages := make([]llm.Message, 0, len(b.history)+2)
	messages = append(messages, llm.Message{Role: "system", Content: systemPrompt})
	messages = append(messages, b.history...)
	messages = append(messages, llm.Message{Role: "user", Content: buildPrompt(question, results)})

	answer, err := b.generator.Generate(ctx, messages)
	if err != nil {
		return "", fmt.Errorf("generation failed: %w", err)
	}

	b.remember(question, answer)
	return answer, nil
}

// History returns the remembered transcript (most recent exchanges only).
func (b *Bot) History() []llm.Message {
	return b.history
}

// ClearHistory forgets the conversation so far.
func (b *Bot) ClearHistory() {
	b.history = nil
}

func (b *Bot) remember(question, answer string) {
	b.history = append(b.history,
		llm.Message{Role: "user", Content: question},
		llm.Message{Role: "assistant", Content: answer},
	)
	if max := b.historyTurns * 2; len(b.history) > max {
		b.history = b.history[len(b.history)-max:]
	}
}
