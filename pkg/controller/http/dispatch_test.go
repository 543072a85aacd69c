package http_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

// TestRouteDispatch verifies each mounted path prefix reaches its own
// collaborator and nothing else.
func TestRouteDispatch(t *testing.T) {
	tests := []struct {
		name       string
		method     string
		path       string
		body       string
		wantStatus int
		wantCalls  func(ts *testServer) []string
	}{
		{
			name:       "procurements list",
			method:     http.MethodGet,
			path:       "/api/procurements/",
			wantStatus: http.StatusOK,
			wantCalls:  func(ts *testServer) []string { return ts.procurements.calls },
		},
		{
			name:       "procurements categories",
			method:     http.MethodGet,
			path:       "/api/procurements/categories/",
			wantStatus: http.StatusOK,
			wantCalls:  func(ts *testServer) []string { return ts.procurements.calls },
		},
		{
			name:       "procurements join",
			method:     http.MethodPost,
			path:       "/api/procurements/7/join/",
			body:       `{"user_id": 42, "amount": 10}`,
			wantStatus: http.StatusCreated,
			wantCalls:  func(ts *testServer) []string { return ts.procurements.calls },
		},
		{
			name:       "users register",
			method:     http.MethodPost,
			path:       "/api/users/",
			body:       `{"telegram_id": 99, "username": "maria"}`,
			wantStatus: http.StatusCreated,
			wantCalls:  func(ts *testServer) []string { return ts.users.calls },
		},
		{
			name:       "users get",
			method:     http.MethodGet,
			path:       "/api/users/5/",
			wantStatus: http.StatusOK,
			wantCalls:  func(ts *testServer) []string { return ts.users.calls },
		},
		{
			name:       "chat messages",
			method:     http.MethodGet,
			path:       "/api/chat/procurements/3/messages/",
			wantStatus: http.StatusOK,
			wantCalls:  func(ts *testServer) []string { return ts.chat.calls },
		},
		{
			name:       "payments record",
			method:     http.MethodPost,
			path:       "/api/payments/",
			body:       `{"participant_id": 1, "amount": 25.5}`,
			wantStatus: http.StatusCreated,
			wantCalls:  func(ts *testServer) []string { return ts.payments.calls },
		},
		{
			name:       "payments by participant",
			method:     http.MethodGet,
			path:       "/api/payments/participants/8/",
			wantStatus: http.StatusOK,
			wantCalls:  func(ts *testServer) []string { return ts.payments.calls },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts, err := newTestServer()
			if err != nil {
				t.Fatalf("Failed to create server: %v", err)
			}

			var body *strings.Reader
			if tt.body != "" {
				body = strings.NewReader(tt.body)
			} else {
				body = strings.NewReader("")
			}

			req := httptest.NewRequest(tt.method, tt.path, body)
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			ts.handler.ServeHTTP(w, req)

			if w.Code != tt.wantStatus {
				t.Fatalf("Status = %v, want %v (body: %s)", w.Code, tt.wantStatus, w.Body.String())
			}

			if got := tt.wantCalls(ts); len(got) != 1 {
				t.Errorf("Collaborator calls = %v, want exactly one", got)
			}

			// No other collaborator may have been touched
			total := len(ts.procurements.calls) + len(ts.users.calls) +
				len(ts.chat.calls) + len(ts.payments.calls) + len(ts.admin.calls)
			if total != 1 {
				t.Errorf("Total collaborator calls = %d, want 1", total)
			}
		})
	}
}

func TestRouteDispatch_NotFound(t *testing.T) {
	ts, err := newTestServer()
	if err != nil {
		t.Fatalf("Failed to create server: %v", err)
	}

	for _, path := range []string{"/nope/", "/api/", "/api/unknown/"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		w := httptest.NewRecorder()

		ts.handler.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Errorf("GET %s status = %v, want %v", path, w.Code, http.StatusNotFound)
		}
	}

	total := len(ts.procurements.calls) + len(ts.users.calls) +
		len(ts.chat.calls) + len(ts.payments.calls) + len(ts.admin.calls)
	if total != 0 {
		t.Errorf("Unmatched paths reached collaborators: %d calls", total)
	}
}

func TestRouteDispatch_ErrorShapes(t *testing.T) {
	ts, err := newTestServer()
	if err != nil {
		t.Fatalf("Failed to create server: %v", err)
	}

	t.Run("missing procurement returns detail body", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/procurements/404/", nil)
		w := httptest.NewRecorder()

		ts.handler.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("Status = %v, want %v", w.Code, http.StatusNotFound)
		}
		if !strings.Contains(w.Body.String(), `"detail":"Not found."`) {
			t.Errorf("Body = %s, want detail message", w.Body.String())
		}
	})

	t.Run("non-numeric procurement id is a validation error", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/procurements/abc/", nil)
		w := httptest.NewRecorder()

		ts.handler.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("Status = %v, want %v", w.Code, http.StatusBadRequest)
		}
	})
}
