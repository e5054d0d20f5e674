package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"customer-service-chatbot/config"
	_ "customer-service-chatbot/docs" // Swagger docs
	chatHTTP "customer-service-chatbot/internal/chat/delivery/http"
	contractRepo "customer-service-chatbot/internal/chat/repository/contractdb"
	chatUC "customer-service-chatbot/internal/chat/usecase"
	"customer-service-chatbot/internal/classifier"
	"customer-service-chatbot/internal/httpserver"
	"customer-service-chatbot/internal/memory"
	"customer-service-chatbot/internal/middleware"
	"customer-service-chatbot/internal/sqlgen"
	"customer-service-chatbot/internal/sqlguard"
	"customer-service-chatbot/pkg/llmprovider"
	"customer-service-chatbot/pkg/log"
)

// @title       Customer Service Chatbot API
// @description Intent-routed customer service chatbot backed by guide retrieval and a read-only contract database.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Customer Service Chatbot...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. LLM providers
	providers, err := llmprovider.NewProvidersFromConfig(cfg.LLM.Providers)
	if err != nil {
		logger.Warnf(ctx, "LLM provider initialization: %v", err)
	}
	retryDelay, _ := time.ParseDuration(cfg.LLM.RetryDelay)
	maxTotal, _ := time.ParseDuration(cfg.LLM.MaxTotalTimeout)
	llm := llmprovider.NewManager(providers, &llmprovider.Config{
		FallbackEnabled: cfg.LLM.FallbackEnabled,
		RetryAttempts:   cfg.LLM.RetryAttempts,
		RetryDelay:      retryDelay,
		MaxTotalTimeout: maxTotal,
	}, logger)
	logger.Infof(ctx, "LLM providers configured: %d", llm.ProviderCount())

	// 4. Guide retrieval (Qdrant + Voyage embeddings)
	guides := newGuideRetriever(ctx, cfg, logger)

	// 5. Contract database (read-only SQLite)
	db, err := contractRepo.Open(cfg.ContractDB.Path)
	if err != nil {
		logger.Errorf(ctx, "Failed to open contract db: %v", err)
		return
	}
	defer db.Close()
	contracts := contractRepo.New(db, logger)

	// 6. Chatbot core
	keywordCls := classifier.NewKeyword(classifier.Config{
		UserGuideKeywords: cfg.Classifier.UserGuideKeywords,
		ContractKeywords:  cfg.Classifier.ContractKeywords,
		GreetingPatterns:  cfg.Classifier.GreetingPatterns,
	})
	modelCls := classifier.NewModel(llm, keywordCls, logger)
	guard := sqlguard.New(sqlguard.Config{
		Blocklist:      cfg.SQLGuard.Blocklist,
		AllowedSchemas: cfg.SQLGuard.AllowedSchemas,
		MaxLength:      cfg.SQLGuard.MaxLength,
	})
	sessions := memory.NewStore(memory.StoreConfig{
		MaxSessions: cfg.Memory.MaxSessions,
		MaxTurns:    cfg.Memory.MaxTurns,
		SessionTTL:  cfg.Memory.SessionTTL,
	})

	uc, err := chatUC.New(
		logger,
		keywordCls,
		modelCls,
		guides,
		sqlgen.New(llm, logger),
		contracts,
		guard,
		llm,
		sessions,
		chatUC.Config{
			TopK:                cfg.Guide.TopK,
			MemoryWindow:        cfg.Memory.Window,
			SystemPrompt:        cfg.Chat.SystemPrompt,
			SchemaHint:          contractRepo.SchemaHint,
			CollaboratorTimeout: cfg.Chat.CollaboratorTimeout,
		},
	)
	if err != nil {
		logger.Errorf(ctx, "Failed to initialize chat usecase: %v", err)
		return
	}

	// 7. HTTP server
	handler := chatHTTP.New(logger, uc)
	mw := middleware.New(logger, cfg.HTTPServer.RateLimitPerMin)

	httpServer, err := httpserver.New(httpserver.Config{
		Logger:      logger,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		Middleware:  mw,
		ChatHandler: handler,
	})
	if err != nil {
		logger.Errorf(ctx, "Failed to initialize HTTP server: %v", err)
		return
	}

	// 8. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Errorf(ctx, "Failed to run server: %v", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
