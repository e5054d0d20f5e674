package deepseek

import "context"

// IDeepSeek defines the interface for the DeepSeek LLM client
type IDeepSeek interface {
	GenerateContent(ctx context.Context, req *Request) (*Response, error)
	Model() string
}

// New creates a new DeepSeek client with the given configuration
func New(cfg Config) (IDeepSeek, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return newDeepSeekImpl(cfg), nil
}
