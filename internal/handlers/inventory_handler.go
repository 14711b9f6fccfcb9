package handlers

import (
	"encoding/json"
	"net/http"

	"hospitality-backend/internal/models"
	"hospitality-backend/internal/services"
	"hospitality-backend/pkg/utils"
)

type InventoryHandler struct {
	InventoryService *services.InventoryService
}

func NewInventoryHandler(inventoryService *services.InventoryService) *InventoryHandler {
	return &InventoryHandler{InventoryService: inventoryService}
}

func (h *InventoryHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.CreateInventoryItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	item, err := h.InventoryService.CreateItem(r.Context(), &req)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	utils.JSON(w, http.StatusCreated, item)
}

func (h *InventoryHandler) List(w http.ResponseWriter, r *http.Request) {
	propertyID := queryInt(r, "property_id")
	if propertyID <= 0 {
		utils.Error(w, http.StatusBadRequest, "property_id query parameter is required")
		return
	}

	items, err := h.InventoryService.ListItems(r.Context(), propertyID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	utils.JSON(w, http.StatusOK, items)
}

func (h *InventoryHandler) ListLowStock(w http.ResponseWriter, r *http.Request) {
	propertyID := queryInt(r, "property_id")
	if propertyID <= 0 {
		utils.Error(w, http.StatusBadRequest, "property_id query parameter is required")
		return
	}

	items, err := h.InventoryService.ListLowStock(r.Context(), propertyID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	utils.JSON(w, http.StatusOK, items)
}

func (h *InventoryHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "invalid item id")
		return
	}

	var req models.UpdateInventoryItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	item, err := h.InventoryService.UpdateItem(r.Context(), id, &req)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	utils.JSON(w, http.StatusOK, item)
}

func (h *InventoryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "invalid item id")
		return
	}

	if err := h.InventoryService.DeleteItem(r.Context(), id); err != nil {
		writeServiceError(w, err)
		return
	}

	utils.JSON(w, http.StatusOK, map[string]string{"message": "inventory item deleted"})
}
