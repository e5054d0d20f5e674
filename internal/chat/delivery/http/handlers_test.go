package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"customer-service-chatbot/internal/chat"
	delivery "customer-service-chatbot/internal/chat/delivery/http"
	"customer-service-chatbot/internal/classifier"
	"customer-service-chatbot/internal/model"
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

type mockUseCase struct {
	handleFunc func(ctx context.Context, sc model.Scope, input chat.HandleInput) (chat.QueryResult, error)
	lastScope  model.Scope
}

func (m *mockUseCase) Handle(ctx context.Context, sc model.Scope, input chat.HandleInput) (chat.QueryResult, error) {
	m.lastScope = sc
	if m.handleFunc == nil {
		return chat.QueryResult{Intent: classifier.IntentGeneral, Answer: "hi"}, nil
	}
	return m.handleFunc(ctx, sc, input)
}

func (m *mockUseCase) History(ctx context.Context, sc model.Scope) (chat.HistoryOutput, error) {
	if sc.SessionID == "missing" {
		return chat.HistoryOutput{}, chat.ErrSessionNotFound
	}
	return chat.HistoryOutput{
		Entries: []chat.HistoryEntry{{Role: "user", Text: "hello"}},
		Count:   1,
	}, nil
}

func (m *mockUseCase) ClearHistory(ctx context.Context, sc model.Scope) error {
	if sc.SessionID == "missing" {
		return chat.ErrSessionNotFound
	}
	return nil
}

func (m *mockUseCase) Status(ctx context.Context) chat.StatusOutput {
	return chat.StatusOutput{"memory": chat.ComponentStatus{Healthy: true}}
}

func newTestRouter(uc chat.UseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	delivery.RegisterRoutes(engine.Group("/api/v1"), delivery.New(&mockLogger{}, uc))
	return engine
}

func postMessage(t *testing.T, router *gin.Engine, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/chat/messages", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestSendMessage(t *testing.T) {
	t.Run("Mints Session When Absent", func(t *testing.T) {
		uc := &mockUseCase{}
		router := newTestRouter(uc)

		w := postMessage(t, router, `{"message": "hello"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		if uc.lastScope.SessionID == "" {
			t.Error("expected a session id to be minted")
		}

		var resp struct {
			Data struct {
				SessionID string `json:"session_id"`
				Answer    string `json:"answer"`
			} `json:"data"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("bad response body: %v", err)
		}
		if resp.Data.SessionID != uc.lastScope.SessionID {
			t.Error("response must echo the minted session id")
		}
		if resp.Data.Answer != "hi" {
			t.Errorf("unexpected answer: %q", resp.Data.Answer)
		}
	})

	t.Run("Keeps Provided Session", func(t *testing.T) {
		uc := &mockUseCase{}
		router := newTestRouter(uc)

		w := postMessage(t, router, `{"message": "hello", "session_id": "abc"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if uc.lastScope.SessionID != "abc" {
			t.Errorf("expected session abc, got %q", uc.lastScope.SessionID)
		}
	})

	t.Run("Missing Message Is Bad Request", func(t *testing.T) {
		router := newTestRouter(&mockUseCase{})

		w := postMessage(t, router, `{"session_id": "abc"}`)
		if w.Code != http.StatusBadRequest {
			t.Errorf("expected 400, got %d", w.Code)
		}
	})

	t.Run("Invalid Mode Is Bad Request", func(t *testing.T) {
		router := newTestRouter(&mockUseCase{})

		w := postMessage(t, router, `{"message": "hello", "mode": "psychic"}`)
		if w.Code != http.StatusBadRequest {
			t.Errorf("expected 400, got %d", w.Code)
		}
	})

	t.Run("Internal Error Is Opaque", func(t *testing.T) {
		uc := &mockUseCase{
			handleFunc: func(ctx context.Context, sc model.Scope, input chat.HandleInput) (chat.QueryResult, error) {
				return chat.QueryResult{}, context.DeadlineExceeded
			},
		}
		router := newTestRouter(uc)

		w := postMessage(t, router, `{"message": "hello"}`)
		if w.Code != http.StatusInternalServerError {
			t.Errorf("expected 500, got %d", w.Code)
		}
		if bytes.Contains(w.Body.Bytes(), []byte("deadline")) {
			t.Error("internal error details must not leak")
		}
	})
}

func TestHistoryEndpoints(t *testing.T) {
	router := newTestRouter(&mockUseCase{})

	t.Run("History OK", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/chat/sessions/abc/history", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("History Unknown Session", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/chat/sessions/missing/history", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		if w.Code != http.StatusNotFound {
			t.Errorf("expected 404, got %d", w.Code)
		}
	})

	t.Run("Clear OK", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodDelete, "/api/v1/chat/sessions/abc/history", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		if w.Code != http.StatusOK {
			t.Errorf("expected 200, got %d", w.Code)
		}
	})
}

func TestStatusEndpoint(t *testing.T) {
	router := newTestRouter(&mockUseCase{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/chat/status", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if !bytes.Contains(w.Body.Bytes(), []byte("memory")) {
		t.Error("expected component names in the body")
	}
}
