package usecase

import (
	"context"
	"fmt"

	"customer-service-chatbot/internal/chat"
	"customer-service-chatbot/pkg/llmprovider"
)

// Status probes each collaborator and reports per-component health. A
// degraded component never hides the others.
func (uc *implUseCase) Status(ctx context.Context) chat.StatusOutput {
	out := chat.StatusOutput{}

	if uc.guideRepo != nil {
		cctx, cancel := uc.collaboratorContext(ctx)
		err := uc.guideRepo.Health(cctx)
		cancel()
		out["guide_retriever"] = componentStatus(err)
	} else {
		out["guide_retriever"] = chat.ComponentStatus{Healthy: false, Detail: "not configured"}
	}

	if uc.contractRepo != nil {
		cctx, cancel := uc.collaboratorContext(ctx)
		err := uc.contractRepo.Health(cctx)
		cancel()
		out["contract_db"] = componentStatus(err)
	} else {
		out["contract_db"] = chat.ComponentStatus{Healthy: false, Detail: "not configured"}
	}

	if mgr, ok := uc.llm.(*llmprovider.Manager); ok {
		if mgr.ProviderCount() > 0 {
			out["llm"] = chat.ComponentStatus{Healthy: true}
		} else {
			out["llm"] = chat.ComponentStatus{Healthy: false, Detail: "no providers configured"}
		}
	} else {
		out["llm"] = chat.ComponentStatus{Healthy: uc.llm != nil}
	}

	out["memory"] = chat.ComponentStatus{
		Healthy: true,
		Detail:  fmt.Sprintf("%d active sessions", uc.sessions.Len()),
	}

	return out
}

func componentStatus(err error) chat.ComponentStatus {
	if err != nil {
		return chat.ComponentStatus{Healthy: false, Detail: err.Error()}
	}
	return chat.ComponentStatus{Healthy: true}
}
