package http

import (
	nethttp "net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"hospitality-backend/internal/handlers"
	"hospitality-backend/internal/middleware"
)

// Handlers are never reached on the unauthenticated paths exercised here, so
// nil dependencies are fine.
func newTestRouter() nethttp.Handler {
	return NewRouter(
		&handlers.AuthHandler{},
		&handlers.PropertyHandler{},
		&handlers.RoomHandler{},
		&handlers.BoardHandler{},
		&handlers.AssignmentHandler{},
		&handlers.StaffHandler{},
		&handlers.InventoryHandler{},
		&handlers.TicketHandler{},
		&handlers.TicketHandler{},
		&handlers.HealthHandler{},
		middleware.NewAuthMiddleware(nil, nil),
	)
}

func TestRouterRejectsAnonymousMutations(t *testing.T) {
	router := newTestRouter()

	routes := []struct {
		method string
		path   string
	}{
		{"POST", "/api/housekeeping/room-status"},
		{"POST", "/api/housekeeping/assignments/1/complete"},
		{"POST", "/api/housekeeping/smart-assign"},
		{"POST", "/api/housekeeping/seed-rooms"},
		{"POST", "/api/housekeeping/rooms"},
		{"PATCH", "/api/housekeeping/rooms/1"},
		{"POST", "/api/properties"},
	}

	for _, route := range routes {
		req := httptest.NewRequest(route.method, route.path, nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, nethttp.StatusUnauthorized, rec.Code,
			"%s %s should require authentication", route.method, route.path)
	}
}

func TestRouterHealthIsPublic(t *testing.T) {
	router := newTestRouter()

	req := httptest.NewRequest("GET", "/health", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, nethttp.StatusOK, rec.Code)
}
