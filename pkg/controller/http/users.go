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

type usersHandler struct {
	uc interfaces.UserUseCase
}

// newUsersRouter builds the users collaborator's sub-router
func newUsersRouter(uc interfaces.UserUseCase) chi.Router {
	h := &usersHandler{uc: uc}

	r := chi.NewRouter()
	r.Post("/", h.register)
	r.Get("/{id}/", h.get)
	return r
}

func (h *usersHandler) register(w http.ResponseWriter, r *http.Request) {
	var req model.CreateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, r, goerr.Wrap(model.ErrValidation, "invalid JSON payload"))
		return
	}

	user, err := h.uc.Register(r.Context(), &req)
	if err != nil {
		respondError(w, r, err)
		return
	}

	respondJSON(w, r, http.StatusCreated, user)
}

func (h *usersHandler) get(w http.ResponseWriter, r *http.Request) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		respondError(w, r, goerr.Wrap(model.ErrValidation, "invalid user id", goerr.V("id", raw)))
		return
	}

	user, err := h.uc.Get(r.Context(), types.UserID(id))
	if err != nil {
		respondError(w, r, err)
		return
	}

	respondJSON(w, r, http.StatusOK, user)
}
