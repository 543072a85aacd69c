package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/m-mizutani/goerr/v2"

	"github.com/groupbuy/core/pkg/domain/interfaces"
	"github.com/groupbuy/core/pkg/domain/model"
	"github.com/groupbuy/core/pkg/domain/types"
)

type chatHandler struct {
	uc interfaces.ChatUseCase
}

// newChatRouter builds the chat collaborator's sub-router. Threads hang
// off procurements, so all routes are procurement-scoped.
func newChatRouter(uc interfaces.ChatUseCase) chi.Router {
	h := &chatHandler{uc: uc}

	r := chi.NewRouter()
	r.Get("/procurements/{id}/messages/", h.listMessages)
	r.Post("/procurements/{id}/messages/", h.postMessage)
	return r
}

func (h *chatHandler) listMessages(w http.ResponseWriter, r *http.Request) {
	id, err := chatProcurementID(r)
	if err != nil {
		respondError(w, r, err)
		return
	}

	messages, err := h.uc.ListMessages(r.Context(), id)
	if err != nil {
		respondError(w, r, err)
		return
	}
	if messages == nil {
		messages = []*model.Message{}
	}

	respondJSON(w, r, http.StatusOK, map[string]any{"results": messages})
}

func (h *chatHandler) postMessage(w http.ResponseWriter, r *http.Request) {
	id, err := chatProcurementID(r)
	if err != nil {
		respondError(w, r, err)
		return
	}

	var req model.PostMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, r, goerr.Wrap(model.ErrValidation, "invalid JSON payload"))
		return
	}

	message, err := h.uc.PostMessage(r.Context(), id, &req)
	if err != nil {
		respondError(w, r, err)
		return
	}

	respondJSON(w, r, http.StatusCreated, message)
}

func chatProcurementID(r *http.Request) (types.ProcurementID, error) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, goerr.Wrap(model.ErrValidation, "invalid procurement id", goerr.V("id", raw))
	}
	return types.ProcurementID(id), nil
}
