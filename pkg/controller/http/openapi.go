package http

import (
	"fmt"
	"net/http"
	"regexp"
	"strings"
	"sync"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/go-chi/chi/v5"
	"github.com/m-mizutani/ctxlog"

	"github.com/groupbuy/core/pkg/domain/types"
)

// schemaHandler serves the OpenAPI document for the API surface. The
// document is derived by walking the live routing table, so it is built
// lazily on first request, after every route has been registered.
type schemaHandler struct {
	router chi.Routes
	once   sync.Once
	doc    *openapi3.T
	err    error
}

func newSchemaHandler(router chi.Routes) *schemaHandler {
	return &schemaHandler{router: router}
}

func (h *schemaHandler) serveDocument(w http.ResponseWriter, r *http.Request) {
	h.once.Do(func() {
		h.doc, h.err = buildDocument(h.router)
	})
	if h.err != nil {
		ctxlog.From(r.Context()).Error("Failed to build OpenAPI document", "error", h.err)
		respondJSON(w, r, http.StatusInternalServerError, map[string]string{"error": "internal error"})
		return
	}

	respondJSON(w, r, http.StatusOK, h.doc)
}

var pathParamPattern = regexp.MustCompile(`\{([^}]+)\}`)

// buildDocument introspects the routing table and describes every /api/
// route as an OpenAPI operation. Admin and health routes are internal
// surface and stay out of the document.
func buildDocument(router chi.Routes) (*openapi3.T, error) {
	doc := &openapi3.T{
		OpenAPI: "3.0.3",
		Info: &openapi3.Info{
			Title:       "GroupBuy Core API",
			Description: "Core API for the group-buy procurement system",
			Version:     types.Version,
		},
		Paths: openapi3.NewPaths(),
	}

	walker := func(method, route string, handler http.Handler, middlewares ...func(http.Handler) http.Handler) error {
		if !strings.HasPrefix(route, "/api/") || strings.Contains(route, "*") {
			return nil
		}

		op := openapi3.NewOperation()
		op.OperationID = operationID(method, route)
		op.Summary = fmt.Sprintf("%s %s", method, route)
		op.Tags = []string{routeTag(route)}
		op.Responses = openapi3.NewResponses()

		for _, match := range pathParamPattern.FindAllStringSubmatch(route, -1) {
			param := openapi3.NewPathParameter(match[1]).WithSchema(openapi3.NewStringSchema())
			op.AddParameter(param)
		}

		doc.AddOperation(route, method, op)
		return nil
	}

	if err := chi.Walk(router, walker); err != nil {
		return nil, err
	}

	return doc, nil
}

// operationID derives a stable identifier like "post_api_procurements_id_join"
func operationID(method, route string) string {
	id := strings.ToLower(method) + route
	id = pathParamPattern.ReplaceAllString(id, "$1")
	id = strings.Trim(id, "/")
	return strings.ReplaceAll(id, "/", "_")
}

// routeTag groups operations by the domain segment after /api/
func routeTag(route string) string {
	parts := strings.SplitN(strings.TrimPrefix(route, "/api/"), "/", 2)
	return parts[0]
}

// docsPageTemplate is the Swagger UI shell. The schema URL is injected
// from the named route table, mirroring how the viewer references the
// schema endpoint by logical name.
const docsPageTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="utf-8">
  <title>GroupBuy Core API</title>
  <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@5/swagger-ui.css">
</head>
<body>
  <div id="swagger-ui"></div>
  <script src="https://unpkg.com/swagger-ui-dist@5/swagger-ui-bundle.js"></script>
  <script>
    SwaggerUIBundle({
      url: %q,
      dom_id: "#swagger-ui"
    });
  </script>
</body>
</html>
`

// serveDocsPage renders the interactive schema viewer, resolving the
// schema document's URL by its logical route name
func serveDocsPage(namedRoutes map[string]string) http.HandlerFunc {
	page := []byte(fmt.Sprintf(docsPageTemplate, namedRoutes[RouteSchema]))

	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write(page); err != nil {
			ctxlog.From(r.Context()).Error("Failed to write docs page", "error", err)
		}
	}
}
