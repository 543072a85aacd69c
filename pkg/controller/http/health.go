package http

import (
	"net/http"

	"github.com/groupbuy/core/pkg/domain/model"
	"github.com/groupbuy/core/pkg/domain/types"
)

// handleHealth handles health check requests. The payload is constant;
// probes only care about the 200.
func handleHealth(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, r, http.StatusOK, &model.HealthStatus{
		Status:  "healthy",
		Service: types.ServiceName,
		Version: types.Version,
	})
}
