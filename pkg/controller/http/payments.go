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

type paymentsHandler struct {
	uc interfaces.PaymentUseCase
}

// newPaymentsRouter builds the payments collaborator's sub-router
func newPaymentsRouter(uc interfaces.PaymentUseCase) chi.Router {
	h := &paymentsHandler{uc: uc}

	r := chi.NewRouter()
	r.Post("/", h.record)
	r.Get("/participants/{id}/", h.listByParticipant)
	r.Get("/{id}/", h.get)
	return r
}

func (h *paymentsHandler) record(w http.ResponseWriter, r *http.Request) {
	var req model.CreatePaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, r, goerr.Wrap(model.ErrValidation, "invalid JSON payload"))
		return
	}

	payment, err := h.uc.Record(r.Context(), &req)
	if err != nil {
		respondError(w, r, err)
		return
	}

	respondJSON(w, r, http.StatusCreated, payment)
}

func (h *paymentsHandler) get(w http.ResponseWriter, r *http.Request) {
	payment, err := h.uc.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, r, err)
		return
	}

	respondJSON(w, r, http.StatusOK, payment)
}

func (h *paymentsHandler) listByParticipant(w http.ResponseWriter, r *http.Request) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		respondError(w, r, goerr.Wrap(model.ErrValidation, "invalid participant id", goerr.V("id", raw)))
		return
	}

	payments, err := h.uc.ListByParticipant(r.Context(), types.ParticipantID(id))
	if err != nil {
		respondError(w, r, err)
		return
	}
	if payments == nil {
		payments = []*model.Payment{}
	}

	respondJSON(w, r, http.StatusOK, map[string]any{"results": payments})
}
