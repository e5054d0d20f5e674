package usecase

import (
	"context"
	"fmt"
	"strings"

	"customer-service-chatbot/internal/chat"
	"customer-service-chatbot/internal/classifier"
	"customer-service-chatbot/internal/memory"
	"customer-service-chatbot/internal/model"
)

// Handle runs one request/response cycle. Routing is deterministic per
// intent; collaborator failures degrade the answer but never fail the
// request. The turn is committed only after the full cycle succeeds.
func (uc *implUseCase) Handle(ctx context.Context, sc model.Scope, input chat.HandleInput) (chat.QueryResult, error) {
	utterance := strings.TrimSpace(input.Utterance)
	if utterance == "" {
		return chat.QueryResult{}, chat.ErrEmptyUtterance
	}
	if sc.SessionID == "" {
		return chat.QueryResult{}, chat.ErrSessionRequired
	}

	conv := uc.sessions.Get(sc.SessionID)
	conv.Acquire()
	defer conv.Release()

	result := chat.QueryResult{}

	cls := uc.classify(ctx, input.Mode, utterance)
	result.Intent = cls.Intent
	result.ClassifierFallback = cls.Fallback
	if cls.Fallback {
		result.Diagnostics = append(result.Diagnostics, "model classification failed, keyword fallback used")
	}
	uc.l.Infof(ctx, "%s: session=%s intent=%s source=%s", LogPrefixHandle, sc.SessionID, cls.Intent, cls.Source)

	switch cls.Intent {
	case classifier.IntentUserGuide:
		uc.handleGuide(ctx, utterance, conv, &result)
	case classifier.IntentContract:
		uc.handleContract(ctx, utterance, conv, &result)
	case classifier.IntentGeneral:
		uc.handleGeneral(ctx, utterance, conv, &result)
	case classifier.IntentUnknown:
		result.Answer = MsgUnknownIntent
	}

	if ctx.Err() != nil {
		return chat.QueryResult{}, ctx.Err()
	}

	conv.Append(memory.Turn{
		UserMessage:      model.NewUserMessage(utterance),
		AssistantMessage: model.NewAssistantMessage(result.Answer),
		Intent:           result.Intent,
		SourceContext:    result.SourceContext,
	})

	return result, nil
}

// classify picks the strategy for this request. The keyword classifier
// never errors; the model classifier falls back to keywords internally,
// so classification as a whole cannot fail.
func (uc *implUseCase) classify(ctx context.Context, mode classifier.Mode, utterance string) classifier.Result {
	cctx, cancel := uc.collaboratorContext(ctx)
	defer cancel()

	if mode == classifier.ModeModel && uc.modelCls != nil {
		res, err := uc.modelCls.Classify(cctx, utterance)
		if err == nil {
			return res
		}
		uc.l.Warnf(ctx, "%s: model classifier errored, using keywords: %v", LogPrefixHandle, err)
	}

	res, _ := uc.keywordCls.Classify(cctx, utterance)
	return res
}

// handleGuide answers a how-to question from retrieved guide snippets.
// The contract path is never touched.
func (uc *implUseCase) handleGuide(ctx context.Context, utterance string, conv *memory.Conversation, result *chat.QueryResult) {
	if uc.guideRepo == nil {
		result.Diagnostics = append(result.Diagnostics, "guide retrieval not configured")
		result.Answer, _ = uc.generateAnswer(ctx, utterance, conv, result)
		return
	}

	cctx, cancel := uc.collaboratorContext(ctx)
	snippets, err := uc.guideRepo.Retrieve(cctx, utterance, uc.cfg.TopK)
	cancel()
	if err != nil {
		uc.l.Errorf(ctx, "%s: guide retrieval failed: %v", LogPrefixHandle, err)
		result.Diagnostics = append(result.Diagnostics, fmt.Sprintf("guide retrieval failed: %v", err))
	}

	if len(snippets) > uc.cfg.TopK {
		snippets = snippets[:uc.cfg.TopK]
	}
	for i, s := range snippets {
		result.SourceContext = append(result.SourceContext, formatSnippet(i+1, s))
	}

	result.Answer, _ = uc.generateAnswer(ctx, utterance, conv, result)
}

// handleContract runs the NL-to-SQL pipeline: generate, validate, and only
// then execute. A statement the validator rejects is never executed; the
// user gets a safe refusal instead.
func (uc *implUseCase) handleContract(ctx context.Context, utterance string, conv *memory.Conversation, result *chat.QueryResult) {
	cctx, cancel := uc.collaboratorContext(ctx)
	statement, err := uc.sqlGen.Generate(cctx, utterance, uc.cfg.SchemaHint)
	cancel()
	if err != nil {
		uc.l.Errorf(ctx, "%s: sql generation failed: %v", LogPrefixHandle, err)
		result.Diagnostics = append(result.Diagnostics, fmt.Sprintf("sql generation failed: %v", err))
		result.Answer = MsgGeneratorUnavailable
		return
	}
	result.GeneratedSQL = statement

	if verdict := uc.guard.Validate(statement); !verdict.Accepted {
		uc.l.Warnf(ctx, "%s: generated sql rejected: %s", LogPrefixHandle, verdict.Reason)
		result.Diagnostics = append(result.Diagnostics, fmt.Sprintf("sql rejected: %s", verdict.Reason))
		result.Answer = MsgSQLRejected
		return
	}

	cctx, cancel = uc.collaboratorContext(ctx)
	rows, err := uc.contractRepo.Query(cctx, statement)
	cancel()
	if err != nil {
		uc.l.Errorf(ctx, "%s: contract query failed: %v", LogPrefixHandle, err)
		result.Diagnostics = append(result.Diagnostics, fmt.Sprintf("contract query failed: %v", err))
	} else {
		result.SourceContext = formatRows(rows)
	}

	result.Answer, _ = uc.generateAnswer(ctx, utterance, conv, result)
}

// handleGeneral answers small talk with conversation history but no
// retrieval.
func (uc *implUseCase) handleGeneral(ctx context.Context, utterance string, conv *memory.Conversation, result *chat.QueryResult) {
	answer, ok := uc.generateAnswer(ctx, utterance, conv, result)
	if !ok {
		answer = MsgGeneralFallback
	}
	result.Answer = answer
}

// generateAnswer builds the grounded prompt and calls the response
// generator. On failure it records the reason in diagnostics and returns
// the deterministic degraded answer with ok=false; the answer text alone
// is never used to detect degradation.
func (uc *implUseCase) generateAnswer(ctx context.Context, utterance string, conv *memory.Conversation, result *chat.QueryResult) (string, bool) {
	if uc.llm == nil {
		result.Diagnostics = append(result.Diagnostics, "response generator not configured")
		return MsgGeneratorUnavailable, false
	}

	req := uc.buildRequest(utterance, conv.Recent(uc.cfg.MemoryWindow), result.SourceContext)

	cctx, cancel := uc.collaboratorContext(ctx)
	defer cancel()
	resp, err := uc.llm.GenerateContent(cctx, req)
	if err != nil {
		uc.l.Errorf(ctx, "%s: answer generation failed: %v", LogPrefixHandle, err)
		result.Diagnostics = append(result.Diagnostics, fmt.Sprintf("answer generation failed: %v", err))
		return MsgGeneratorUnavailable, false
	}

	answer := strings.TrimSpace(resp.Text)
	if answer == "" {
		result.Diagnostics = append(result.Diagnostics, "answer generation returned empty text")
		return MsgGeneratorUnavailable, false
	}
	return answer, true
}

func (uc *implUseCase) collaboratorContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if uc.cfg.CollaboratorTimeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, uc.cfg.CollaboratorTimeout)
}
