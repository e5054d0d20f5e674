package classifier

import (
	"context"
	"regexp"
	"strings"
)

// KeywordClassifier classifies by case-insensitive keyword matching.
// It is a pure function of its configured keyword sets and never fails.
type KeywordClassifier struct {
	userGuideKeywords []string
	contractKeywords  []string
	greetingPatterns  []*regexp.Regexp
}

var _ Classifier = (*KeywordClassifier)(nil)

// NewKeyword creates a new KeywordClassifier.
func NewKeyword(cfg Config) *KeywordClassifier {
	return &KeywordClassifier{
		userGuideKeywords: lowerAll(cfg.UserGuideKeywords),
		contractKeywords:  lowerAll(cfg.ContractKeywords),
		greetingPatterns:  compileWordPatterns(cfg.GreetingPatterns),
	}
}

// Classify determines intent by keyword matching. When an utterance matches
// both keyword sets, contract wins: it is the narrower, higher-precision
// domain.
func (k *KeywordClassifier) Classify(ctx context.Context, utterance string) (Result, error) {
	lowered := strings.ToLower(utterance)

	if matchesAny(lowered, k.contractKeywords) {
		return Result{Intent: IntentContract, Source: SourceKeyword}, nil
	}
	if matchesAny(lowered, k.userGuideKeywords) {
		return Result{Intent: IntentUserGuide, Source: SourceKeyword}, nil
	}
	if matchesAnyWord(lowered, k.greetingPatterns) {
		return Result{Intent: IntentGeneral, Source: SourceKeyword}, nil
	}

	return Result{Intent: IntentUnknown, Source: SourceKeyword}, nil
}

func matchesAny(lowered string, keywords []string) bool {
	for _, kw := range keywords {
		if kw != "" && strings.Contains(lowered, kw) {
			return true
		}
	}
	return false
}

// Greeting patterns must match whole words. Bare containment would let a
// short pattern like "hi" fire inside unrelated words ("this", "shipping")
// and route unclassifiable input to the general path.
func compileWordPatterns(patterns []string) []*regexp.Regexp {
	out := make([]*regexp.Regexp, 0, len(patterns))
	for _, p := range patterns {
		p = strings.ToLower(strings.TrimSpace(p))
		if p == "" {
			continue
		}
		out = append(out, regexp.MustCompile(`\b`+regexp.QuoteMeta(p)+`\b`))
	}
	return out
}

func matchesAnyWord(lowered string, patterns []*regexp.Regexp) bool {
	for _, p := range patterns {
		if p.MatchString(lowered) {
			return true
		}
	}
	return false
}

func lowerAll(in []string) []string {
	out := make([]string, len(in))
	for i, s := range in {
		out[i] = strings.ToLower(s)
	}
	return out
}
