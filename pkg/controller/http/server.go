package http

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/groupbuy/core/pkg/domain/interfaces"
)

// Route names used to resolve paths between endpoints, so handlers
// reference each other by logical name instead of hard-coded paths.
const (
	RouteSchema = "schema"
	RouteDocs   = "docs"
)

// config holds internal HTTP server configuration
type config struct {
	addr        string
	adminSecret string
}

// Option is a functional option for Server configuration
type Option func(*config)

// WithAddr sets the server address
func WithAddr(addr string) Option {
	return func(c *config) {
		c.addr = addr
	}
}

// WithAdminSecret sets the HMAC secret gating the admin console
func WithAdminSecret(secret string) Option {
	return func(c *config) {
		c.adminSecret = secret
	}
}

// Server represents the HTTP server
type Server struct {
	*http.Server
}

// NewServer builds the routing table and wraps it in an HTTP server.
// The table is constructed once here and is immutable for the lifetime
// of the process:
//
//	GET  /health/             liveness probe
//	     /admin/              admin console (JWT-gated)
//	     /api/users/          users collaborator
//	     /api/procurements/   procurements collaborator
//	     /api/chat/           chat collaborator
//	     /api/payments/       payments collaborator
//	GET  /api/schema/         OpenAPI document (introspected)
//	GET  /api/docs/           interactive schema viewer
//
// Anything else falls through to chi's default 404.
func NewServer(
	ctx context.Context,
	procurementUC interfaces.ProcurementUseCase,
	userUC interfaces.UserUseCase,
	chatUC interfaces.ChatUseCase,
	paymentUC interfaces.PaymentUseCase,
	adminStore interfaces.AdminStore,
	opts ...Option,
) (*Server, error) {
	cfg := &config{
		addr: "localhost:8080",
	}
	for _, opt := range opts {
		opt(cfg)
	}

	router := chi.NewRouter()

	// Global middleware
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(LoggingMiddleware(ctx))
	router.Use(middleware.Recoverer)

	// Health check
	router.Get("/health/", handleHealth)

	// Admin console
	router.Mount("/admin", newAdminRouter(cfg.adminSecret, adminStore))

	// Domain collaborators
	router.Mount("/api/users", newUsersRouter(userUC))
	router.Mount("/api/procurements", newProcurementsRouter(procurementUC))
	router.Mount("/api/chat", newChatRouter(chatUC))
	router.Mount("/api/payments", newPaymentsRouter(paymentUC))

	// API documentation. Paths are registered under logical names; the
	// docs page looks the schema URL up by name rather than repeating it.
	namedRoutes := map[string]string{
		RouteSchema: "/api/schema/",
		RouteDocs:   "/api/docs/",
	}
	schema := newSchemaHandler(router)
	router.Get(namedRoutes[RouteSchema], schema.serveDocument)
	router.Get(namedRoutes[RouteDocs], serveDocsPage(namedRoutes))

	server := &Server{
		Server: &http.Server{
			Addr:              cfg.addr,
			Handler:           router,
			ReadHeaderTimeout: 15 * time.Second,
		},
	}

	return server, nil
}
