package qdrant

import (
	"context"
	"fmt"

	"customer-service-chatbot/internal/chat/repository"
	pkgLog "customer-service-chatbot/pkg/log"
	pkgQdrant "customer-service-chatbot/pkg/qdrant"
	"customer-service-chatbot/pkg/voyage"
)

type implRepository struct {
	client         *pkgQdrant.Client
	embedder       voyage.IVoyage
	collectionName string
	l              pkgLog.Logger
}

// New creates a new Qdrant-backed guide retriever. The collection is
// populated by an offline ingestion pipeline; this repository only reads.
func New(client *pkgQdrant.Client, embedder voyage.IVoyage, collectionName string, l pkgLog.Logger) repository.GuideRetriever {
	return &implRepository{
		client:         client,
		embedder:       embedder,
		collectionName: collectionName,
		l:              l,
	}
}

// Retrieve embeds the query and searches the guide collection. Results are
// ordered by descending similarity score.
func (r *implRepository) Retrieve(ctx context.Context, query string, limit int) ([]repository.Snippet, error) {
	vectors, err := r.embedder.Embed(ctx, []string{query})
	if err != nil || len(vectors) == 0 {
		r.l.Errorf(ctx, "guide repository: failed to embed query: %v", err)
		return nil, fmt.Errorf("failed to embed query: %w", err)
	}

	resp, err := r.client.SearchPoints(ctx, r.collectionName, pkgQdrant.SearchRequest{
		Vector:      vectors[0],
		Limit:       limit,
		WithPayload: true,
	})
	if err != nil {
		r.l.Errorf(ctx, "guide repository: search failed: %v", err)
		return nil, fmt.Errorf("guide search failed: %w", err)
	}

	snippets := make([]repository.Snippet, 0, len(resp.Result))
	for _, point := range resp.Result {
		snippet := repository.Snippet{Score: point.Score}
		if text, ok := point.Payload["text"].(string); ok {
			snippet.Text = text
		}
		if source, ok := point.Payload["source"].(string); ok {
			snippet.Source = source
		}
		if snippet.Text == "" {
			continue
		}
		snippets = append(snippets, snippet)
	}

	return snippets, nil
}

// Health checks that the guide collection is reachable and present.
func (r *implRepository) Health(ctx context.Context) error {
	exists, err := r.client.CollectionExists(ctx, r.collectionName)
	if err != nil {
		return fmt.Errorf("qdrant unreachable: %w", err)
	}
	if !exists {
		return fmt.Errorf("collection %q does not exist", r.collectionName)
	}
	return nil
}
