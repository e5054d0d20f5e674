package classifier

import "context"

// Classifier maps a raw user utterance to an intent.
type Classifier interface {
	Classify(ctx context.Context, utterance string) (Result, error)
}

// Config holds the keyword sets used by keyword classification.
type Config struct {
	UserGuideKeywords []string
	ContractKeywords  []string
	GreetingPatterns  []string
}
