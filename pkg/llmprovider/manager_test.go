package llmprovider

import (
	"context"
	"errors"
	"testing"
	"time"
)

// mockProvider is a test implementation of the Provider interface
type mockProvider struct {
	name       string
	model      string
	shouldFail bool
	response   *Response
	callCount  int
}

func (m *mockProvider) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	m.callCount++
	if m.shouldFail {
		return nil, errors.New("mock provider error")
	}
	return m.response, nil
}

func (m *mockProvider) Name() string  { return m.name }
func (m *mockProvider) Model() string { return m.model }

// mockLogger is a test implementation of the Logger interface
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}

func testConfig() *Config {
	return &Config{
		FallbackEnabled: true,
		RetryAttempts:   2,
		RetryDelay:      time.Millisecond,
	}
}

func simpleRequest() *Request {
	return &Request{Messages: []Message{{Role: "user", Text: "Hello"}}}
}

func TestGenerateContent_SuccessWithPrimaryProvider(t *testing.T) {
	primary := &mockProvider{
		name:     "primary",
		model:    "primary-model",
		response: &Response{Text: "Hello back", ProviderName: "primary", ModelName: "primary-model"},
	}
	manager := NewManager([]Provider{primary}, testConfig(), &mockLogger{})

	resp, err := manager.GenerateContent(context.Background(), simpleRequest())
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if resp.Text != "Hello back" {
		t.Errorf("unexpected response text: %q", resp.Text)
	}
	if primary.callCount != 1 {
		t.Errorf("expected 1 call, got %d", primary.callCount)
	}
}

func TestGenerateContent_FallbackToSecondary(t *testing.T) {
	primary := &mockProvider{name: "primary", model: "m1", shouldFail: true}
	secondary := &mockProvider{
		name:     "secondary",
		model:    "m2",
		response: &Response{Text: "From secondary", ProviderName: "secondary"},
	}
	manager := NewManager([]Provider{primary, secondary}, testConfig(), &mockLogger{})

	resp, err := manager.GenerateContent(context.Background(), simpleRequest())
	if err != nil {
		t.Fatalf("expected fallback to succeed, got: %v", err)
	}
	if resp.ProviderName != "secondary" {
		t.Errorf("expected secondary provider, got %s", resp.ProviderName)
	}
	if primary.callCount != 2 {
		t.Errorf("expected 2 retry calls on primary, got %d", primary.callCount)
	}
}

func TestGenerateContent_FallbackDisabled(t *testing.T) {
	primary := &mockProvider{name: "primary", model: "m1", shouldFail: true}
	secondary := &mockProvider{name: "secondary", model: "m2", response: &Response{Text: "x"}}

	cfg := testConfig()
	cfg.FallbackEnabled = false
	manager := NewManager([]Provider{primary, secondary}, cfg, &mockLogger{})

	_, err := manager.GenerateContent(context.Background(), simpleRequest())
	if !errors.Is(err, ErrAllProvidersFailed) {
		t.Fatalf("expected ErrAllProvidersFailed, got %v", err)
	}
	if secondary.callCount != 0 {
		t.Error("fallback disabled must not try the secondary provider")
	}
}

func TestGenerateContent_AllProvidersFail(t *testing.T) {
	providers := []Provider{
		&mockProvider{name: "a", shouldFail: true},
		&mockProvider{name: "b", shouldFail: true},
	}
	manager := NewManager(providers, testConfig(), &mockLogger{})

	_, err := manager.GenerateContent(context.Background(), simpleRequest())
	if !errors.Is(err, ErrAllProvidersFailed) {
		t.Fatalf("expected ErrAllProvidersFailed, got %v", err)
	}
}

func TestGenerateContent_NoProviders(t *testing.T) {
	manager := NewManager(nil, testConfig(), &mockLogger{})

	_, err := manager.GenerateContent(context.Background(), simpleRequest())
	if !errors.Is(err, ErrNoProvidersConfigured) {
		t.Fatalf("expected ErrNoProvidersConfigured, got %v", err)
	}
}

func TestGenerateContent_EmptyResponseRetries(t *testing.T) {
	empty := &mockProvider{name: "empty", response: &Response{Text: ""}}
	manager := NewManager([]Provider{empty}, testConfig(), &mockLogger{})

	_, err := manager.GenerateContent(context.Background(), simpleRequest())
	if err == nil {
		t.Fatal("expected error for empty responses")
	}
	if empty.callCount != 2 {
		t.Errorf("expected empty responses to be retried, got %d calls", empty.callCount)
	}
}

func TestGenerateContent_GlobalTimeout(t *testing.T) {
	slow := &mockProvider{name: "slow", shouldFail: true}

	cfg := testConfig()
	cfg.RetryAttempts = 100
	cfg.RetryDelay = 50 * time.Millisecond
	cfg.MaxTotalTimeout = 20 * time.Millisecond
	manager := NewManager([]Provider{slow}, cfg, &mockLogger{})

	start := time.Now()
	_, err := manager.GenerateContent(context.Background(), simpleRequest())
	if err == nil {
		t.Fatal("expected timeout error")
	}
	if elapsed := time.Since(start); elapsed > time.Second {
		t.Errorf("global timeout did not bound the call, took %v", elapsed)
	}
}

func TestProviderError_Unwrap(t *testing.T) {
	inner := errors.New("boom")
	err := &ProviderError{Provider: "gemini", Err: inner}
	if !errors.Is(err, inner) {
		t.Error("ProviderError must unwrap to the inner error")
	}
}
