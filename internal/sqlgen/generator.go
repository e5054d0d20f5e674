package sqlgen

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"customer-service-chatbot/pkg/llmprovider"
	"customer-service-chatbot/pkg/log"
)

// Generator converts a natural language question into a SQL statement via
// the LLM. The output is untrusted: callers must gate it through the
// safety validator before execution.
type Generator struct {
	llm llmprovider.Generator
	l   log.Logger
}

// New creates a new Generator.
func New(llm llmprovider.Generator, l log.Logger) *Generator {
	return &Generator{llm: llm, l: l}
}

// Generate produces a SQL statement for the question, using schemaHint to
// describe the available tables.
func (g *Generator) Generate(ctx context.Context, question, schemaHint string) (string, error) {
	req := &llmprovider.Request{
		Messages: []llmprovider.Message{
			{Role: "user", Text: fmt.Sprintf(PromptGenerate, schemaHint, question)},
		},
		Temperature: GenerateTemperature,
	}

	resp, err := g.llm.GenerateContent(ctx, req)
	if err != nil {
		return "", fmt.Errorf("%s: %w", LogPrefixGenerate, err)
	}

	sqlText := CleanStatement(resp.Text)
	if sqlText == "" {
		return "", fmt.Errorf("%s: model returned no SQL statement", LogPrefixGenerate)
	}

	g.l.Debugf(ctx, "%s: generated %q", LogPrefixGenerate, sqlText)
	return sqlText, nil
}

var statementPattern = regexp.MustCompile(`(?is)\b(SELECT|WITH)\b\s+.*`)

// CleanStatement strips markdown fences, marker prefixes, and leading prose
// so only the SQL statement remains. Models add these despite instructions.
func CleanStatement(raw string) string {
	s := strings.TrimSpace(raw)

	// "SQLQuery:" marker: keep everything after it.
	if idx := strings.Index(s, "SQLQuery:"); idx >= 0 {
		s = strings.TrimSpace(s[idx+len("SQLQuery:"):])
	}

	// Code fences.
	if strings.HasPrefix(s, "```sql") {
		s = strings.TrimPrefix(s, "```sql")
	} else if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```")
	}
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	s = strings.TrimSpace(s)

	// Remaining marker prefixes.
	for _, prefix := range markerPrefixes {
		if strings.HasPrefix(s, prefix) {
			s = strings.TrimSpace(strings.TrimPrefix(s, prefix))
			break
		}
	}

	// Drop any explanation text before the statement itself.
	if match := statementPattern.FindString(s); match != "" {
		s = strings.TrimSpace(match)
	}

	return s
}
