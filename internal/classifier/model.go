package classifier

import (
	"context"
	"fmt"

	"customer-service-chatbot/pkg/llmprovider"
	"customer-service-chatbot/pkg/log"
)

// ModelClassifier delegates classification to the LLM with a constrained
// prompt. On any generation failure it falls back to the keyword
// classifier instead of propagating the error, and records the fallback.
type ModelClassifier struct {
	llm      llmprovider.Generator
	fallback *KeywordClassifier
	l        log.Logger
}

var _ Classifier = (*ModelClassifier)(nil)

// NewModel creates a new ModelClassifier.
func NewModel(llm llmprovider.Generator, fallback *KeywordClassifier, l log.Logger) *ModelClassifier {
	return &ModelClassifier{
		llm:      llm,
		fallback: fallback,
		l:        l,
	}
}

// Classify asks the model for a label from the closed intent set. Labels
// outside the set are coerced to UNKNOWN.
func (m *ModelClassifier) Classify(ctx context.Context, utterance string) (Result, error) {
	req := &llmprovider.Request{
		Messages: []llmprovider.Message{
			{Role: "user", Text: fmt.Sprintf(PromptClassify, utterance)},
		},
		Temperature: ClassifyTemperature,
	}

	resp, err := m.llm.GenerateContent(ctx, req)
	if err != nil {
		m.l.Warnf(ctx, "%s: model classification failed, falling back to keywords: %v",
			LogPrefixClassify, err)
		return m.keywordFallback(ctx, utterance)
	}

	intent := ParseIntent(resp.Text)
	m.l.Infof(ctx, "%s: classified as %s", LogPrefixClassify, intent)

	return Result{Intent: intent, Source: SourceModel}, nil
}

func (m *ModelClassifier) keywordFallback(ctx context.Context, utterance string) (Result, error) {
	result, err := m.fallback.Classify(ctx, utterance)
	if err != nil {
		return Result{}, err
	}
	result.Fallback = true
	return result, nil
}
