package http

import (
	"time"

	"customer-service-chatbot/internal/chat"
	"customer-service-chatbot/internal/classifier"
	"customer-service-chatbot/internal/model"
)

// --- Request DTOs ---

type sendMessageReq struct {
	Message   string `json:"message"    binding:"required,min=1,max=4000"`
	SessionID string `json:"session_id" binding:"omitempty,max=128"`
	// Mode selects the classification strategy: "keyword" or "model".
	// Empty uses the server default.
	Mode string `json:"mode" binding:"omitempty,oneof=keyword model"`

	// resolved during request processing
	sessionID string
	requestID string
}

func (r sendMessageReq) toInput() chat.HandleInput {
	return chat.HandleInput{
		Utterance: r.Message,
		Mode:      classifier.ParseMode(r.Mode),
	}
}

// --- Response DTOs ---

type sendMessageResp struct {
	SessionID          string   `json:"session_id"`
	Intent             string   `json:"intent"`
	Answer             string   `json:"answer"`
	SourceContext      []string `json:"source_context,omitempty"`
	GeneratedSQL       string   `json:"generated_sql,omitempty"`
	Diagnostics        []string `json:"diagnostics,omitempty"`
	ClassifierFallback bool     `json:"classifier_fallback,omitempty"`
}

func (h *handler) newSendMessageResp(sc model.Scope, out chat.QueryResult) sendMessageResp {
	return sendMessageResp{
		SessionID:          sc.SessionID,
		Intent:             string(out.Intent),
		Answer:             out.Answer,
		SourceContext:      out.SourceContext,
		GeneratedSQL:       out.GeneratedSQL,
		Diagnostics:        out.Diagnostics,
		ClassifierFallback: out.ClassifierFallback,
	}
}

type historyEntryResp struct {
	Role      string    `json:"role"`
	Text      string    `json:"text"`
	Intent    string    `json:"intent,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

type historyResp struct {
	SessionID string             `json:"session_id"`
	Entries   []historyEntryResp `json:"entries"`
	Count     int                `json:"count"`
}

func (h *handler) newHistoryResp(sc model.Scope, out chat.HistoryOutput) historyResp {
	entries := make([]historyEntryResp, len(out.Entries))
	for i, e := range out.Entries {
		entries[i] = historyEntryResp{
			Role:      e.Role,
			Text:      e.Text,
			Intent:    e.Intent,
			Timestamp: e.Timestamp,
		}
	}
	return historyResp{
		SessionID: sc.SessionID,
		Entries:   entries,
		Count:     out.Count,
	}
}

type componentResp struct {
	Healthy bool   `json:"healthy"`
	Detail  string `json:"detail,omitempty"`
}

type statusResp struct {
	Components map[string]componentResp `json:"components"`
}

func (h *handler) newStatusResp(out chat.StatusOutput) statusResp {
	components := make(map[string]componentResp, len(out))
	for name, cs := range out {
		components[name] = componentResp{Healthy: cs.Healthy, Detail: cs.Detail}
	}
	return statusResp{Components: components}
}
