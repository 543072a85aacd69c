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

type procurementsHandler struct {
	uc interfaces.ProcurementUseCase
}

// newProcurementsRouter builds the procurements collaborator's sub-router
func newProcurementsRouter(uc interfaces.ProcurementUseCase) chi.Router {
	h := &procurementsHandler{uc: uc}

	r := chi.NewRouter()
	r.Get("/", h.list)
	r.Post("/", h.create)
	r.Get("/categories/", h.categories)
	r.Get("/{id}/", h.get)
	r.Post("/{id}/join/", h.join)
	r.Post("/{id}/leave/", h.leave)
	return r
}

// list returns procurements wrapped in a results envelope, filtered by
// the optional status, city, category_id and organizer_id parameters
func (h *procurementsHandler) list(w http.ResponseWriter, r *http.Request) {
	filter, err := parseProcurementFilter(r)
	if err != nil {
		respondError(w, r, err)
		return
	}

	items, err := h.uc.List(r.Context(), filter)
	if err != nil {
		respondError(w, r, err)
		return
	}
	if items == nil {
		items = []*model.ProcurementSummary{}
	}

	respondJSON(w, r, http.StatusOK, map[string]any{"results": items})
}

func (h *procurementsHandler) create(w http.ResponseWriter, r *http.Request) {
	var req model.CreateProcurementRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, r, goerr.Wrap(model.ErrValidation, "invalid JSON payload"))
		return
	}

	created, err := h.uc.Create(r.Context(), &req)
	if err != nil {
		respondError(w, r, err)
		return
	}

	respondJSON(w, r, http.StatusCreated, created)
}

func (h *procurementsHandler) get(w http.ResponseWriter, r *http.Request) {
	id, err := procurementID(r)
	if err != nil {
		respondError(w, r, err)
		return
	}

	item, err := h.uc.Get(r.Context(), id)
	if err != nil {
		respondError(w, r, err)
		return
	}

	respondJSON(w, r, http.StatusOK, item)
}

func (h *procurementsHandler) join(w http.ResponseWriter, r *http.Request) {
	id, err := procurementID(r)
	if err != nil {
		respondError(w, r, err)
		return
	}

	var req model.JoinRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, r, goerr.Wrap(model.ErrValidation, "invalid JSON payload"))
		return
	}

	participant, err := h.uc.Join(r.Context(), id, &req)
	if err != nil {
		respondError(w, r, err)
		return
	}

	respondJSON(w, r, http.StatusCreated, participant)
}

func (h *procurementsHandler) leave(w http.ResponseWriter, r *http.Request) {
	id, err := procurementID(r)
	if err != nil {
		respondError(w, r, err)
		return
	}

	if err := h.uc.Leave(r.Context(), id); err != nil {
		respondError(w, r, err)
		return
	}

	respondJSON(w, r, http.StatusOK, map[string]any{
		"message":        "Left procurement",
		"procurement_id": id,
	})
}

func (h *procurementsHandler) categories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.uc.Categories(r.Context())
	if err != nil {
		respondError(w, r, err)
		return
	}
	if categories == nil {
		categories = []*model.Category{}
	}

	respondJSON(w, r, http.StatusOK, categories)
}

func procurementID(r *http.Request) (types.ProcurementID, error) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, goerr.Wrap(model.ErrValidation, "invalid procurement id", goerr.V("id", raw))
	}
	return types.ProcurementID(id), nil
}

func parseProcurementFilter(r *http.Request) (*model.ProcurementFilter, error) {
	q := r.URL.Query()
	var filter model.ProcurementFilter

	if v := q.Get("status"); v != "" {
		filter.Status = &v
	}
	if v := q.Get("city"); v != "" {
		filter.City = &v
	}
	if v := q.Get("category_id"); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return nil, goerr.Wrap(model.ErrValidation, "invalid category_id", goerr.V("category_id", v))
		}
		cid := types.CategoryID(id)
		filter.CategoryID = &cid
	}
	if v := q.Get("organizer_id"); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return nil, goerr.Wrap(model.ErrValidation, "invalid organizer_id", goerr.V("organizer_id", v))
		}
		oid := types.UserID(id)
		filter.OrganizerID = &oid
	}

	return &filter, nil
}
