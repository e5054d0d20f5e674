package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Chatbot core
	Chat       ChatConfig
	Classifier ClassifierConfig
	Memory     MemoryConfig
	SQLGuard   SQLGuardConfig

	// Retrieval backends
	Guide      GuideConfig
	ContractDB ContractDBConfig
	Voyage     VoyageConfig

	// LLM provider abstraction
	LLM LLMConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port            int
	Mode            string
	RateLimitPerMin int
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// ChatConfig configures the orchestrator.
type ChatConfig struct {
	SystemPrompt string
	// CollaboratorTimeout bounds every single collaborator call
	// (classification, retrieval, SQL generation/execution, answer
	// generation). Zero means no bound.
	CollaboratorTimeout time.Duration
}

// ClassifierConfig configures intent classification.
type ClassifierConfig struct {
	UserGuideKeywords []string
	ContractKeywords  []string
	GreetingPatterns  []string
	// DefaultMode is used when a request does not specify one: "keyword" or "model".
	DefaultMode string
}

// MemoryConfig configures conversation memory.
type MemoryConfig struct {
	// Window is how many past turns feed the prompt.
	Window int
	// MaxTurns caps one conversation; oldest turns are evicted first.
	MaxTurns int
	// MaxSessions caps concurrently retained sessions.
	MaxSessions int
	// SessionTTL expires idle sessions.
	SessionTTL time.Duration
}

// SQLGuardConfig configures the SQL safety validator.
type SQLGuardConfig struct {
	Blocklist      []string
	AllowedSchemas []string
	MaxLength      int
}

// GuideConfig configures user-guide retrieval.
type GuideConfig struct {
	QdrantURL      string
	CollectionName string
	TopK           int
}

// ContractDBConfig configures the read-only contract database.
type ContractDBConfig struct {
	Path string
}

type VoyageConfig struct {
	APIKey string
}

// LLMConfig holds configuration for the LLM provider abstraction layer.
type LLMConfig struct {
	Providers       []ProviderConfig
	FallbackEnabled bool
	RetryAttempts   int
	RetryDelay      string
	MaxTotalTimeout string
}

// ProviderConfig holds configuration for a single LLM provider.
type ProviderConfig struct {
	Name     string
	Enabled  bool
	Priority int
	APIKey   string
	BaseURL  string
	Model    string
}

// Load loads configuration using Viper.
// Config file name: config.yaml — searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.HTTPServer.RateLimitPerMin = viper.GetInt("http_server.rate_limit_per_min")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Chat orchestrator
	cfg.Chat.SystemPrompt = viper.GetString("chat.system_prompt")
	cfg.Chat.CollaboratorTimeout = viper.GetDuration("chat.collaborator_timeout")

	// Classifier
	cfg.Classifier.UserGuideKeywords = viper.GetStringSlice("classifier.user_guide_keywords")
	cfg.Classifier.ContractKeywords = viper.GetStringSlice("classifier.contract_keywords")
	cfg.Classifier.GreetingPatterns = viper.GetStringSlice("classifier.greeting_patterns")
	cfg.Classifier.DefaultMode = viper.GetString("classifier.default_mode")

	// Memory
	cfg.Memory.Window = viper.GetInt("memory.window")
	cfg.Memory.MaxTurns = viper.GetInt("memory.max_turns")
	cfg.Memory.MaxSessions = viper.GetInt("memory.max_sessions")
	cfg.Memory.SessionTTL = viper.GetDuration("memory.session_ttl")

	// SQL guard
	cfg.SQLGuard.Blocklist = viper.GetStringSlice("sql_guard.blocklist")
	cfg.SQLGuard.AllowedSchemas = viper.GetStringSlice("sql_guard.allowed_schemas")
	cfg.SQLGuard.MaxLength = viper.GetInt("sql_guard.max_length")

	// Retrieval backends
	cfg.Guide.QdrantURL = viper.GetString("guide.qdrant_url")
	cfg.Guide.CollectionName = viper.GetString("guide.collection_name")
	cfg.Guide.TopK = viper.GetInt("guide.top_k")
	cfg.ContractDB.Path = viper.GetString("contract_db.path")
	cfg.Voyage.APIKey = viper.GetString("voyage.api_key")

	// LLM providers
	cfg.LLM.FallbackEnabled = viper.GetBool("llm.fallback_enabled")
	cfg.LLM.RetryAttempts = viper.GetInt("llm.retry_attempts")
	cfg.LLM.RetryDelay = viper.GetString("llm.retry_delay")
	cfg.LLM.MaxTotalTimeout = viper.GetString("llm.max_total_timeout")
	if err := viper.UnmarshalKey("llm.providers", &cfg.LLM.Providers); err != nil {
		return nil, fmt.Errorf("error parsing llm.providers: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) validate() error {
	if c.Memory.Window > c.Memory.MaxTurns {
		return fmt.Errorf("memory.window (%d) must not exceed memory.max_turns (%d)",
			c.Memory.Window, c.Memory.MaxTurns)
	}
	if c.SQLGuard.MaxLength <= 0 {
		return fmt.Errorf("sql_guard.max_length must be positive")
	}
	switch c.Classifier.DefaultMode {
	case "keyword", "model":
	default:
		return fmt.Errorf("classifier.default_mode must be keyword or model, got %q",
			c.Classifier.DefaultMode)
	}
	return nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("http_server.rate_limit_per_min", 60)

	viper.SetDefault("logger.level", "info")
	viper.SetDefault("logger.mode", "development")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	viper.SetDefault("chat.system_prompt",
		"You are a helpful customer service assistant for a software company. "+
			"Answer based only on the provided context and conversation history. "+
			"If you do not know the answer, say so and offer to escalate to a human agent.")
	viper.SetDefault("chat.collaborator_timeout", "30s")

	viper.SetDefault("classifier.user_guide_keywords", []string{
		"how to", "how do i", "guide", "tutorial", "instructions",
		"feature", "export", "import", "configure", "setup", "install",
	})
	viper.SetDefault("classifier.contract_keywords", []string{
		"contract", "expire", "expiration", "renewal", "pricing", "cost",
		"license", "purchased", "module", "subscription",
	})
	viper.SetDefault("classifier.greeting_patterns", []string{
		"hi", "hello", "hey", "good morning", "good afternoon", "thanks",
		"thank you", "help", "what can you do",
	})
	viper.SetDefault("classifier.default_mode", "keyword")

	viper.SetDefault("memory.window", 10)
	viper.SetDefault("memory.max_turns", 50)
	viper.SetDefault("memory.max_sessions", 1000)
	viper.SetDefault("memory.session_ttl", "30m")

	viper.SetDefault("sql_guard.blocklist", []string{
		"INSERT", "UPDATE", "DELETE", "DROP", "ALTER", "CREATE",
		"TRUNCATE", "GRANT", "EXEC",
	})
	viper.SetDefault("sql_guard.allowed_schemas", []string{"main"})
	viper.SetDefault("sql_guard.max_length", 2000)

	viper.SetDefault("guide.qdrant_url", "http://localhost:6333")
	viper.SetDefault("guide.collection_name", "user_guides")
	viper.SetDefault("guide.top_k", 3)

	viper.SetDefault("contract_db.path", "./data/contracts.db")

	viper.SetDefault("llm.fallback_enabled", true)
	viper.SetDefault("llm.retry_attempts", 2)
	viper.SetDefault("llm.retry_delay", "500ms")
	viper.SetDefault("llm.max_total_timeout", "60s")
}
