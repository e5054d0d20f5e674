package classifier_test

import (
	"context"
	"errors"
	"testing"

	"customer-service-chatbot/internal/classifier"
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
}

func (m *mockGenerator) GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error) {
	return m.generateFunc(ctx, req)
}

func TestModelClassify(t *testing.T) {
	ctx := context.Background()

	t.Run("Model Label Used", func(t *testing.T) {
		llm := &mockGenerator{
			generateFunc: func(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error) {
				return &llmprovider.Response{Text: "CONTRACT"}, nil
			},
		}
		cls := classifier.NewModel(llm, newTestKeyword(), &mockLogger{})

		res, err := cls.Classify(ctx, "when does it end")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Intent != classifier.IntentContract {
			t.Errorf("expected CONTRACT, got %s", res.Intent)
		}
		if res.Source != classifier.SourceModel {
			t.Errorf("expected model source, got %s", res.Source)
		}
		if res.Fallback {
			t.Error("successful model classification must not set Fallback")
		}
	})

	t.Run("Unrecognized Label Is Unknown", func(t *testing.T) {
		llm := &mockGenerator{
			generateFunc: func(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error) {
				return &llmprovider.Response{Text: "I think this is about billing"}, nil
			},
		}
		cls := classifier.NewModel(llm, newTestKeyword(), &mockLogger{})

		res, _ := cls.Classify(ctx, "whatever")
		if res.Intent != classifier.IntentUnknown {
			t.Errorf("expected UNKNOWN for out-of-set label, got %s", res.Intent)
		}
	})

	t.Run("Generation Failure Falls Back To Keywords", func(t *testing.T) {
		llm := &mockGenerator{
			generateFunc: func(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error) {
				return nil, errors.New("all providers down")
			},
		}
		cls := classifier.NewModel(llm, newTestKeyword(), &mockLogger{})

		res, err := cls.Classify(ctx, "when does my contract expire")
		if err != nil {
			t.Fatalf("fallback must not propagate the error, got %v", err)
		}
		if res.Intent != classifier.IntentContract {
			t.Errorf("expected keyword fallback to classify CONTRACT, got %s", res.Intent)
		}
		if !res.Fallback {
			t.Error("expected Fallback to be set")
		}
		if res.Source != classifier.SourceKeyword {
			t.Errorf("expected keyword source on fallback, got %s", res.Source)
		}
	})
}
