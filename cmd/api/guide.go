package main

import (
	"context"

	"customer-service-chatbot/config"
	"customer-service-chatbot/internal/chat/repository"
	guideRepo "customer-service-chatbot/internal/chat/repository/qdrant"
	"customer-service-chatbot/pkg/log"
	"customer-service-chatbot/pkg/qdrant"
	"customer-service-chatbot/pkg/voyage"
)

// newGuideRetriever wires the Qdrant search client and the Voyage embedder.
// Guide retrieval is optional: with no embedding key the chatbot still
// serves contract and general questions.
func newGuideRetriever(ctx context.Context, cfg *config.Config, logger log.Logger) repository.GuideRetriever {
	if cfg.Voyage.APIKey == "" {
		logger.Warn(ctx, "VOYAGE_API_KEY missing, guide retrieval disabled")
		return nil
	}

	embedder, err := voyage.New(cfg.Voyage.APIKey)
	if err != nil {
		logger.Warnf(ctx, "Voyage client init failed, guide retrieval disabled: %v", err)
		return nil
	}

	client := qdrant.NewClient(cfg.Guide.QdrantURL)
	return guideRepo.New(client, embedder, cfg.Guide.CollectionName, logger)
}
