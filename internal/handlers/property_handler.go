package handlers

import (
	"encoding/json"
	"net/http"

	"hospitality-backend/internal/cache"
	"hospitality-backend/internal/models"
	"hospitality-backend/internal/services"
	"hospitality-backend/pkg/utils"
)

type PropertyHandler struct {
	PropertyService *services.PropertyService
}

func NewPropertyHandler(propertyService *services.PropertyService) *PropertyHandler {
	return &PropertyHandler{PropertyService: propertyService}
}

func (h *PropertyHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.CreatePropertyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	property, err := h.PropertyService.CreateProperty(r.Context(), &req)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	utils.JSON(w, http.StatusCreated, property)
}

func (h *PropertyHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "invalid property id")
		return
	}

	property, err := h.PropertyService.GetProperty(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	utils.JSON(w, http.StatusOK, property)
}

func (h *PropertyHandler) List(w http.ResponseWriter, r *http.Request) {
	properties, err := h.PropertyService.ListProperties(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}

	utils.JSON(w, http.StatusOK, properties)
}

func (h *PropertyHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "invalid property id")
		return
	}

	var req models.UpdatePropertyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	property, err := h.PropertyService.UpdateProperty(r.Context(), id, &req)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	cache.InvalidateBoards(r.Context(), id)
	utils.JSON(w, http.StatusOK, property)
}

func (h *PropertyHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "invalid property id")
		return
	}

	if err := h.PropertyService.DeleteProperty(r.Context(), id); err != nil {
		writeServiceError(w, err)
		return
	}

	cache.InvalidateBoards(r.Context(), id)
	utils.JSON(w, http.StatusOK, map[string]string{"message": "property deleted"})
}
