package http

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/lestrrat-go/jwx/v2/jwa"
	"github.com/lestrrat-go/jwx/v2/jwt"
	"github.com/m-mizutani/ctxlog"

	"github.com/groupbuy/core/pkg/domain/interfaces"
)

type adminHandler struct {
	store interfaces.AdminStore
}

// newAdminRouter builds the admin console sub-router. Every route sits
// behind a Bearer JWT check; with no secret configured the console is
// disabled and answers 403.
func newAdminRouter(secret string, store interfaces.AdminStore) chi.Router {
	h := &adminHandler{store: store}

	r := chi.NewRouter()
	r.Use(adminAuth(secret))
	r.Get("/", h.listResources)
	r.Get("/{resource}/", h.listRows)
	return r
}

// adminAuth verifies the Authorization header carries a JWT signed with
// the configured HMAC secret
func adminAuth(secret string) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if secret == "" {
				respondJSON(w, r, http.StatusForbidden, map[string]string{"error": "admin console is disabled"})
				return
			}

			token := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
			if token == "" || token == r.Header.Get("Authorization") {
				respondJSON(w, r, http.StatusUnauthorized, map[string]string{"error": "missing bearer token"})
				return
			}

			if _, err := jwt.Parse([]byte(token),
				jwt.WithKey(jwa.HS256, []byte(secret)),
				jwt.WithValidate(true),
			); err != nil {
				ctxlog.From(r.Context()).Warn("Rejected admin token", "error", err)
				respondJSON(w, r, http.StatusUnauthorized, map[string]string{"error": "invalid token"})
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func (h *adminHandler) listResources(w http.ResponseWriter, r *http.Request) {
	resources, err := h.store.Resources(r.Context())
	if err != nil {
		respondError(w, r, err)
		return
	}

	respondJSON(w, r, http.StatusOK, map[string]any{"resources": resources})
}

func (h *adminHandler) listRows(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))

	rows, err := h.store.Rows(r.Context(), chi.URLParam(r, "resource"), limit, offset)
	if err != nil {
		respondError(w, r, err)
		return
	}
	if rows == nil {
		rows = []map[string]any{}
	}

	respondJSON(w, r, http.StatusOK, map[string]any{"rows": rows})
}
