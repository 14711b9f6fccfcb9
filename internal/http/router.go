package http

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"hospitality-backend/internal/handlers"
	"hospitality-backend/internal/middleware"
)

func NewRouter(
	authHandler *handlers.AuthHandler,
	propertyHandler *handlers.PropertyHandler,
	roomHandler *handlers.RoomHandler,
	boardHandler *handlers.BoardHandler,
	assignmentHandler *handlers.AssignmentHandler,
	staffHandler *handlers.StaffHandler,
	inventoryHandler *handlers.InventoryHandler,
	ticketHandler *handlers.TicketHandler,
	maintenanceTicketHandler *handlers.TicketHandler,
	healthHandler *handlers.HealthHandler,
	authMiddleware *middleware.AuthMiddleware,
) *mux.Router {
	r := mux.NewRouter()

	// Public API routes - Authentication
	r.HandleFunc("/auth/signup", authHandler.Signup).Methods("POST")
	r.HandleFunc("/auth/login", authHandler.Login).Methods("POST")

	// Protected API routes - Users (admin only)
	usersAPI := r.PathPrefix("/api/users").Subrouter()
	usersAPI.Use(authMiddleware.Authenticate)
	usersAPI.HandleFunc("", authMiddleware.RequireAdmin(http.HandlerFunc(authHandler.ListUsers)).ServeHTTP).Methods("GET")

	// Protected API routes - Properties
	propertiesAPI := r.PathPrefix("/api/properties").Subrouter()
	propertiesAPI.Use(authMiddleware.Authenticate)
	propertiesAPI.HandleFunc("", propertyHandler.List).Methods("GET") // All authenticated users can view
	propertiesAPI.HandleFunc("", authMiddleware.RequireAdmin(http.HandlerFunc(propertyHandler.Create)).ServeHTTP).Methods("POST")
	propertiesAPI.HandleFunc("/{id}", propertyHandler.Get).Methods("GET")
	propertiesAPI.HandleFunc("/{id}", authMiddleware.RequireAdmin(http.HandlerFunc(propertyHandler.Update)).ServeHTTP).Methods("PUT")
	propertiesAPI.HandleFunc("/{id}", authMiddleware.RequireAdmin(http.HandlerFunc(propertyHandler.Delete)).ServeHTTP).Methods("DELETE")

	// Protected API routes - Housekeeping (board, rooms, staff, assignments)
	housekeepingAPI := r.PathPrefix("/api/housekeeping").Subrouter()
	housekeepingAPI.Use(authMiddleware.Authenticate)
	housekeepingAPI.HandleFunc("/board", boardHandler.Board).Methods("GET")
	housekeepingAPI.HandleFunc("/room-incidents", boardHandler.RoomIncidents).Methods("GET")
	housekeepingAPI.HandleFunc("/room-status",
		authMiddleware.RequireElevated(http.HandlerFunc(roomHandler.ChangeStatus)).ServeHTTP).Methods("POST")
	housekeepingAPI.HandleFunc("/smart-assign",
		authMiddleware.RequireElevated(http.HandlerFunc(assignmentHandler.SmartAssign)).ServeHTTP).Methods("POST")
	housekeepingAPI.HandleFunc("/seed-rooms",
		authMiddleware.RequireAdmin(http.HandlerFunc(roomHandler.Seed)).ServeHTTP).Methods("POST")

	housekeepingAPI.HandleFunc("/rooms", roomHandler.List).Methods("GET") // All authenticated users can view
	housekeepingAPI.HandleFunc("/rooms", authMiddleware.RequireElevated(http.HandlerFunc(roomHandler.Create)).ServeHTTP).Methods("POST")
	housekeepingAPI.HandleFunc("/rooms/import", authMiddleware.RequireElevated(http.HandlerFunc(roomHandler.Import)).ServeHTTP).Methods("POST")
	housekeepingAPI.HandleFunc("/rooms/{id}", roomHandler.Get).Methods("GET")
	housekeepingAPI.HandleFunc("/rooms/{id}", authMiddleware.RequireElevated(http.HandlerFunc(roomHandler.Update)).ServeHTTP).Methods("PATCH")
	housekeepingAPI.HandleFunc("/rooms/{id}", authMiddleware.RequireElevated(http.HandlerFunc(roomHandler.Delete)).ServeHTTP).Methods("DELETE")

	housekeepingAPI.HandleFunc("/staff", staffHandler.List).Methods("GET")
	housekeepingAPI.HandleFunc("/staff", authMiddleware.RequireElevated(http.HandlerFunc(staffHandler.Create)).ServeHTTP).Methods("POST")
	housekeepingAPI.HandleFunc("/staff/{id}/status", authMiddleware.RequireElevated(http.HandlerFunc(staffHandler.UpdateStatus)).ServeHTTP).Methods("PATCH")
	housekeepingAPI.HandleFunc("/staff/{id}", authMiddleware.RequireElevated(http.HandlerFunc(staffHandler.Delete)).ServeHTTP).Methods("DELETE")

	housekeepingAPI.HandleFunc("/assignments", assignmentHandler.ListToday).Methods("GET")
	housekeepingAPI.HandleFunc("/assignments/{id}/complete",
		authMiddleware.RequireElevated(http.HandlerFunc(assignmentHandler.Complete)).ServeHTTP).Methods("POST")

	// Protected API routes - Inventory
	inventoryAPI := r.PathPrefix("/api/inventory").Subrouter()
	inventoryAPI.Use(authMiddleware.Authenticate)
	inventoryAPI.HandleFunc("", inventoryHandler.List).Methods("GET")
	inventoryAPI.HandleFunc("", authMiddleware.RequireElevated(http.HandlerFunc(inventoryHandler.Create)).ServeHTTP).Methods("POST")
	inventoryAPI.HandleFunc("/low-stock", inventoryHandler.ListLowStock).Methods("GET")
	inventoryAPI.HandleFunc("/{id}", authMiddleware.RequireElevated(http.HandlerFunc(inventoryHandler.Update)).ServeHTTP).Methods("PUT")
	inventoryAPI.HandleFunc("/{id}", authMiddleware.RequireElevated(http.HandlerFunc(inventoryHandler.Delete)).ServeHTTP).Methods("DELETE")

	// Protected API routes - Tickets (two independent tables)
	ticketsAPI := r.PathPrefix("/api/tickets").Subrouter()
	ticketsAPI.Use(authMiddleware.Authenticate)
	ticketsAPI.HandleFunc("", ticketHandler.List).Methods("GET")
	ticketsAPI.HandleFunc("", ticketHandler.Create).Methods("POST")

	maintenanceAPI := r.PathPrefix("/api/maintenance-tickets").Subrouter()
	maintenanceAPI.Use(authMiddleware.Authenticate)
	maintenanceAPI.HandleFunc("", maintenanceTicketHandler.List).Methods("GET")
	maintenanceAPI.HandleFunc("", maintenanceTicketHandler.Create).Methods("POST")

	// Health endpoints (no auth required - for Kubernetes probes)
	r.HandleFunc("/health", healthHandler.BasicHealth).Methods("GET")
	r.HandleFunc("/health/ready", healthHandler.ReadinessHealth).Methods("GET")
	r.HandleFunc("/health/detailed", healthHandler.DetailedHealth).Methods("GET")

	// Metrics endpoint (Prometheus format)
	r.Handle("/metrics", promhttp.Handler())

	return r
}
