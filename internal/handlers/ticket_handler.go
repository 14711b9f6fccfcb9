package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"hospitality-backend/internal/cache"
	"hospitality-backend/internal/middleware"
	"hospitality-backend/internal/models"
	"hospitality-backend/internal/repositories"
	"hospitality-backend/pkg/utils"
)

// TicketHandler serves one ticket table; the router mounts two instances, one
// per table. Tickets are simple enough that the handler talks to the
// repository directly.
type TicketHandler struct {
	Repo *repositories.TicketRepository
}

func NewTicketHandler(repo *repositories.TicketRepository) *TicketHandler {
	return &TicketHandler{Repo: repo}
}

func (h *TicketHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.CreateTicketRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.PropertyID <= 0 {
		utils.Error(w, http.StatusBadRequest, "property_id is required")
		return
	}
	if strings.TrimSpace(req.Title) == "" {
		utils.Error(w, http.StatusBadRequest, "title is required")
		return
	}
	if req.Priority == "" {
		req.Priority = "medium"
	}

	ticket := &models.Ticket{
		PropertyID:  req.PropertyID,
		RoomID:      req.RoomID,
		Title:       strings.TrimSpace(req.Title),
		Description: req.Description,
		Status:      models.TicketStatusOpen,
		Priority:    req.Priority,
	}
	if userID, ok := middleware.GetUserIDFromContext(r.Context()); ok {
		ticket.CreatedBy = &userID
	}

	if err := h.Repo.Create(r.Context(), ticket); err != nil {
		utils.Error(w, http.StatusInternalServerError, err.Error())
		return
	}

	cache.InvalidateBoards(r.Context(), req.PropertyID)
	utils.JSON(w, http.StatusCreated, ticket)
}

func (h *TicketHandler) List(w http.ResponseWriter, r *http.Request) {
	propertyID := queryInt(r, "property_id")
	if propertyID <= 0 {
		utils.Error(w, http.StatusBadRequest, "property_id query parameter is required")
		return
	}

	tickets, err := h.Repo.ListByProperty(r.Context(), propertyID)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, err.Error())
		return
	}

	utils.JSON(w, http.StatusOK, tickets)
}
