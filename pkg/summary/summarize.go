package summary

import (
	"context"
	"log/slog"
)

// Result is always populated: both fields non-empty, jargon-free.
type Result struct {
	Summary  string
	Glossary string
}

type strategyFunc func(ctx context.Context, title, content, category string) (Result, error)

// Engine tries its strategies in order; first success wins. The last
// strategy is always the deterministic generator, so the chain as a
// whole cannot fail.
type Engine struct {
	strategies []strategyFunc
	names      []string
}

// NewEngine wires the chain from whichever credentials are present.
// Absent credentials silently skip their provider; with none configured
// the engine is fully functional on the deterministic path.
func NewEngine(openAIKey, anthropicKey string) *Engine {
	e := &Engine{}

	if openAIKey != "" {
		client := NewOpenAIClient(openAIKey)
		e.strategies = append(e.strategies, client.SummarizeWithGlossary)
		e.names = append(e.names, client.modelName)
	}
	if anthropicKey != "" {
		client := NewAnthropicClient(anthropicKey)
		e.strategies = append(e.strategies, client.SummarizeWithGlossary)
		e.names = append(e.names, client.modelName)
	}

	e.strategies = append(e.strategies, func(_ context.Context, title, content, category string) (Result, error) {
		return fallbackSummarize(title, content, category), nil
	})
	e.names = append(e.names, "fallback")

	return e
}

// SummarizeWithGlossary never fails: provider errors fall through to the
// next strategy and every path is run through the term simplifier before
// returning, catching jargon an LLM slipped past the prompt.
func (e *Engine) SummarizeWithGlossary(ctx context.Context, title, content, category string) Result {
	var result Result

	for i, strategy := range e.strategies {
		r, err := strategy(ctx, title, content, category)
		if err != nil {
			slog.Warn("summary strategy failed, falling through", "strategy", e.names[i], "error", err)
			continue
		}
		result = r
		break
	}

	result.Summary = Simplify(result.Summary, DefaultRules)
	result.Glossary = Simplify(result.Glossary, DefaultRules)
	return result
}
