package handlers

import (
	"encoding/json"
	"net/http"

	"hospitality-backend/internal/cache"
	"hospitality-backend/internal/models"
	"hospitality-backend/internal/services"
	"hospitality-backend/pkg/utils"
)

type AssignmentHandler struct {
	AssignmentService *services.AssignmentService
}

func NewAssignmentHandler(assignmentService *services.AssignmentService) *AssignmentHandler {
	return &AssignmentHandler{AssignmentService: assignmentService}
}

func (h *AssignmentHandler) SmartAssign(w http.ResponseWriter, r *http.Request) {
	var req models.SmartAssignRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	assignments, err := h.AssignmentService.SmartAssign(r.Context(), &req)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	cache.InvalidateBoards(r.Context(), req.PropertyID)
	utils.JSON(w, http.StatusOK, map[string]interface{}{
		"assigned":    len(assignments),
		"assignments": assignments,
	})
}

func (h *AssignmentHandler) ListToday(w http.ResponseWriter, r *http.Request) {
	propertyID := queryInt(r, "property_id")
	if propertyID <= 0 {
		utils.Error(w, http.StatusBadRequest, "property_id query parameter is required")
		return
	}

	assignments, err := h.AssignmentService.ListToday(r.Context(), propertyID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	utils.JSON(w, http.StatusOK, assignments)
}

func (h *AssignmentHandler) Complete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "invalid assignment id")
		return
	}

	var req models.CompleteAssignmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.AssignmentService.Complete(r.Context(), id, &req); err != nil {
		writeServiceError(w, err)
		return
	}

	utils.JSON(w, http.StatusOK, map[string]string{"message": "assignment completed"})
}
