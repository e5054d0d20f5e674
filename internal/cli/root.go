// Package cli implements the chatbot terminal commands.
package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"customer-service-chatbot/config"
	"customer-service-chatbot/internal/chat"
	"customer-service-chatbot/internal/chat/repository"
	contractRepo "customer-service-chatbot/internal/chat/repository/contractdb"
	guideRepo "customer-service-chatbot/internal/chat/repository/qdrant"
	chatUC "customer-service-chatbot/internal/chat/usecase"
	"customer-service-chatbot/internal/classifier"
	"customer-service-chatbot/internal/memory"
	"customer-service-chatbot/internal/sqlgen"
	"customer-service-chatbot/internal/sqlguard"
	"customer-service-chatbot/pkg/llmprovider"
	"customer-service-chatbot/pkg/log"
	"customer-service-chatbot/pkg/qdrant"
	"customer-service-chatbot/pkg/voyage"
)

var modeFlag string

// RootCmd is the top-level command.
var RootCmd = &cobra.Command{
	Use:   "chat",
	Short: "Customer service chatbot terminal client",
	Long:  "Talk to the customer service chatbot without the HTTP server: one-shot questions or an interactive session.",
}

func init() {
	RootCmd.PersistentFlags().StringVarP(&modeFlag, "mode", "m", "", "Classification mode: keyword or model (default: config)")
}

// chatbot bundles the wired use case with the resources it owns.
type chatbot struct {
	uc   chat.UseCase
	mode classifier.Mode

	close func()
}

// newChatbot wires the full pipeline the same way the API server does,
// minus the HTTP layer.
func newChatbot() (*chatbot, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	// Keep the terminal quiet; the conversation is the output.
	logger := log.Init(log.ZapConfig{
		Level:        "warn",
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx := context.Background()

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

	db, err := contractRepo.Open(cfg.ContractDB.Path)
	if err != nil {
		return nil, fmt.Errorf("open contract db: %w", err)
	}

	keywordCls := classifier.NewKeyword(classifier.Config{
		UserGuideKeywords: cfg.Classifier.UserGuideKeywords,
		ContractKeywords:  cfg.Classifier.ContractKeywords,
		GreetingPatterns:  cfg.Classifier.GreetingPatterns,
	})

	uc, err := chatUC.New(
		logger,
		keywordCls,
		classifier.NewModel(llm, keywordCls, logger),
		newGuides(ctx, cfg, logger),
		sqlgen.New(llm, logger),
		contractRepo.New(db, logger),
		sqlguard.New(sqlguard.Config{
			Blocklist:      cfg.SQLGuard.Blocklist,
			AllowedSchemas: cfg.SQLGuard.AllowedSchemas,
			MaxLength:      cfg.SQLGuard.MaxLength,
		}),
		llm,
		memory.NewStore(memory.StoreConfig{
			MaxSessions: cfg.Memory.MaxSessions,
			MaxTurns:    cfg.Memory.MaxTurns,
			SessionTTL:  cfg.Memory.SessionTTL,
		}),
		chatUC.Config{
			TopK:                cfg.Guide.TopK,
			MemoryWindow:        cfg.Memory.Window,
			SystemPrompt:        cfg.Chat.SystemPrompt,
			SchemaHint:          contractRepo.SchemaHint,
			CollaboratorTimeout: cfg.Chat.CollaboratorTimeout,
		},
	)
	if err != nil {
		db.Close()
		return nil, err
	}

	mode := classifier.ParseMode(cfg.Classifier.DefaultMode)
	if modeFlag != "" {
		mode = classifier.ParseMode(modeFlag)
	}

	return &chatbot{
		uc:    uc,
		mode:  mode,
		close: func() { db.Close() },
	}, nil
}

// newGuides wires guide retrieval when an embedding key is configured.
func newGuides(ctx context.Context, cfg *config.Config, logger log.Logger) repository.GuideRetriever {
	if cfg.Voyage.APIKey == "" {
		logger.Warn(ctx, "VOYAGE_API_KEY missing, guide retrieval disabled")
		return nil
	}

	embedder, err := voyage.New(cfg.Voyage.APIKey)
	if err != nil {
		logger.Warnf(ctx, "Voyage client init failed, guide retrieval disabled: %v", err)
		return nil
	}

	return guideRepo.New(qdrant.NewClient(cfg.Guide.QdrantURL), embedder, cfg.Guide.CollectionName, logger)
}

func exitErr(msg string, err error) {
	fmt.Fprintf(os.Stderr, "error: %s: %v\n", msg, err)
	os.Exit(1)
}
