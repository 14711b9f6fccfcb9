package handlers

import (
	"encoding/json"
	"net/http"

	"hospitality-backend/internal/cache"
	"hospitality-backend/internal/services"
	"hospitality-backend/pkg/utils"
)

type BoardHandler struct {
	BoardService *services.BoardService
}

func NewBoardHandler(boardService *services.BoardService) *BoardHandler {
	return &BoardHandler{BoardService: boardService}
}

// Board returns the housekeeping board. Without a property_id query parameter
// it covers every hotel property; with one it returns that property's detail
// view. Responses are cached briefly in Redis because the board polls on a
// short interval.
func (h *BoardHandler) Board(w http.ResponseWriter, r *http.Request) {
	if propertyID := queryInt(r, "property_id"); propertyID > 0 {
		h.propertyDetail(w, r, propertyID)
		return
	}

	if data, ok := cache.GetCachedBoard(r.Context()); ok {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write(data)
		return
	}

	boards, err := h.BoardService.Board(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}

	payload, err := json.Marshal(boards)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "failed to encode board")
		return
	}
	cache.CacheBoard(r.Context(), payload)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(payload)
}

func (h *BoardHandler) propertyDetail(w http.ResponseWriter, r *http.Request, id int) {
	if data, ok := cache.GetCachedPropertyBoard(r.Context(), id); ok {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write(data)
		return
	}

	detail, err := h.BoardService.PropertyDetail(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	payload, err := json.Marshal(detail)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "failed to encode property detail")
		return
	}
	cache.CachePropertyBoard(r.Context(), id, payload)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(payload)
}

// RoomIncidents returns the open incidents touching a property, optionally
// narrowed to one room via the room_id query parameter. The property rides in
// location_id, the name the board UI has always sent.
func (h *BoardHandler) RoomIncidents(w http.ResponseWriter, r *http.Request) {
	propertyID := queryInt(r, "location_id")
	if propertyID <= 0 {
		utils.Error(w, http.StatusBadRequest, "location_id query parameter is required")
		return
	}

	result, err := h.BoardService.RoomIncidents(r.Context(), propertyID, queryInt(r, "room_id"))
	if err != nil {
		writeServiceError(w, err)
		return
	}

	utils.JSON(w, http.StatusOK, result)
}
