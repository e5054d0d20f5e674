package usecase_test

import (
	"context"

	"customer-service-chatbot/internal/chat/repository"
	"customer-service-chatbot/pkg/llmprovider"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

type mockGenerator struct {
	generateFunc func(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error)
	calls        int
}

func (m *mockGenerator) GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error) {
	m.calls++
	if m.generateFunc == nil {
		return &llmprovider.Response{Text: "generated answer"}, nil
	}
	return m.generateFunc(ctx, req)
}

type mockGuideRetriever struct {
	retrieveFunc func(ctx context.Context, query string, limit int) ([]repository.Snippet, error)
	calls        int
}

func (m *mockGuideRetriever) Retrieve(ctx context.Context, query string, limit int) ([]repository.Snippet, error) {
	m.calls++
	if m.retrieveFunc == nil {
		return nil, nil
	}
	return m.retrieveFunc(ctx, query, limit)
}

func (m *mockGuideRetriever) Health(ctx context.Context) error { return nil }

type mockContractQuerier struct {
	queryFunc func(ctx context.Context, sqlText string) ([]repository.Row, error)
	calls     int
	lastSQL   string
	healthErr error
}

func (m *mockContractQuerier) Query(ctx context.Context, sqlText string) ([]repository.Row, error) {
	m.calls++
	m.lastSQL = sqlText
	if m.queryFunc == nil {
		return nil, nil
	}
	return m.queryFunc(ctx, sqlText)
}

func (m *mockContractQuerier) Health(ctx context.Context) error { return m.healthErr }

type mockSQLGenerator struct {
	generateFunc func(ctx context.Context, question, schemaHint string) (string, error)
}

func (m *mockSQLGenerator) Generate(ctx context.Context, question, schemaHint string) (string, error) {
	if m.generateFunc == nil {
		return "SELECT 1", nil
	}
	return m.generateFunc(ctx, question, schemaHint)
}
