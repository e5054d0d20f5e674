package repository

import "context"

// Snippet is one retrieved guide fragment with its relevance score.
type Snippet struct {
	Text   string
	Source string
	Score  float64
}

// GuideRetriever retrieves user-guide snippets relevant to a query,
// ordered by descending relevance score.
type GuideRetriever interface {
	Retrieve(ctx context.Context, query string, limit int) ([]Snippet, error)
	Health(ctx context.Context) error
}

// Row is one result row, column name to value.
type Row map[string]any

// ContractQuerier executes validated, read-only SQL against the contract
// database. The orchestrator never calls Query with unvalidated SQL.
type ContractQuerier interface {
	Query(ctx context.Context, sqlText string) ([]Row, error)
	Health(ctx context.Context) error
}

// SQLGenerator converts a natural language question into a SQL statement.
// Its output is untrusted and must pass the safety validator.
type SQLGenerator interface {
	Generate(ctx context.Context, question, schemaHint string) (string, error)
}
