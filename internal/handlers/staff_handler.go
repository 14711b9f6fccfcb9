package handlers

import (
	"encoding/json"
	"net/http"

	"hospitality-backend/internal/cache"
	"hospitality-backend/internal/models"
	"hospitality-backend/internal/services"
	"hospitality-backend/pkg/utils"
)

type StaffHandler struct {
	StaffService *services.StaffService
}

func NewStaffHandler(staffService *services.StaffService) *StaffHandler {
	return &StaffHandler{StaffService: staffService}
}

func (h *StaffHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.CreateStaffRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	staff, err := h.StaffService.CreateStaff(r.Context(), &req)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	cache.InvalidateBoards(r.Context(), req.PropertyID)
	utils.JSON(w, http.StatusCreated, staff)
}

func (h *StaffHandler) List(w http.ResponseWriter, r *http.Request) {
	propertyID := queryInt(r, "property_id")
	if propertyID <= 0 {
		utils.Error(w, http.StatusBadRequest, "property_id query parameter is required")
		return
	}

	staff, err := h.StaffService.ListStaff(r.Context(), propertyID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	utils.JSON(w, http.StatusOK, staff)
}

func (h *StaffHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "invalid staff id")
		return
	}

	var req models.UpdateStaffStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.StaffService.UpdateStatus(r.Context(), id, &req); err != nil {
		writeServiceError(w, err)
		return
	}

	utils.JSON(w, http.StatusOK, map[string]string{"message": "staff status updated"})
}

func (h *StaffHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "invalid staff id")
		return
	}

	if err := h.StaffService.DeleteStaff(r.Context(), id); err != nil {
		writeServiceError(w, err)
		return
	}

	utils.JSON(w, http.StatusOK, map[string]string{"message": "staff deleted"})
}
