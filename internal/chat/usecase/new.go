package usecase

import (
	"errors"
	"time"

	"customer-service-chatbot/internal/chat/repository"
	"customer-service-chatbot/internal/classifier"
	"customer-service-chatbot/internal/memory"
	"customer-service-chatbot/internal/sqlguard"
	"customer-service-chatbot/pkg/llmprovider"
	pkgLog "customer-service-chatbot/pkg/log"
)

// Config holds the orchestrator tunables.
type Config struct {
	// TopK caps guide snippets used as context.
	TopK int
	// MemoryWindow is how many past turns feed the prompt.
	MemoryWindow int
	// SystemPrompt is prepended to every generation request.
	SystemPrompt string
	// SchemaHint describes the contract tables to the SQL generator.
	SchemaHint string
	// CollaboratorTimeout bounds each collaborator call. Zero disables it.
	CollaboratorTimeout time.Duration
}

type implUseCase struct {
	l pkgLog.Logger

	keywordCls *classifier.KeywordClassifier
	modelCls   classifier.Classifier

	guideRepo    repository.GuideRetriever
	sqlGen       repository.SQLGenerator
	contractRepo repository.ContractQuerier
	guard        *sqlguard.Validator
	llm          llmprovider.Generator

	sessions *memory.Store
	cfg      Config
}

// New creates a new chat UseCase instance.
func New(
	l pkgLog.Logger,
	keywordCls *classifier.KeywordClassifier,
	modelCls classifier.Classifier,
	guideRepo repository.GuideRetriever,
	sqlGen repository.SQLGenerator,
	contractRepo repository.ContractQuerier,
	guard *sqlguard.Validator,
	llm llmprovider.Generator,
	sessions *memory.Store,
	cfg Config,
) (*implUseCase, error) {
	if l == nil {
		return nil, errors.New("logger is required")
	}
	if keywordCls == nil {
		return nil, errors.New("keyword classifier is required")
	}
	if sqlGen == nil {
		return nil, errors.New("sql generator is required")
	}
	if contractRepo == nil {
		return nil, errors.New("contract repository is required")
	}
	if guard == nil {
		return nil, errors.New("sql validator is required")
	}
	if sessions == nil {
		return nil, errors.New("session store is required")
	}
	if cfg.TopK <= 0 {
		cfg.TopK = 3
	}
	if cfg.MemoryWindow <= 0 {
		cfg.MemoryWindow = 10
	}

	return &implUseCase{
		l:            l,
		keywordCls:   keywordCls,
		modelCls:     modelCls,
		guideRepo:    guideRepo,
		sqlGen:       sqlGen,
		contractRepo: contractRepo,
		guard:        guard,
		llm:          llm,
		sessions:     sessions,
		cfg:          cfg,
	}, nil
}
