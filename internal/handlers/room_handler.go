package handlers

import (
	"encoding/json"
	"net/http"

	"hospitality-backend/internal/cache"
	"hospitality-backend/internal/models"
	"hospitality-backend/internal/services"
	"hospitality-backend/pkg/utils"
)

type RoomHandler struct {
	RoomService *services.RoomService
}

func NewRoomHandler(roomService *services.RoomService) *RoomHandler {
	return &RoomHandler{RoomService: roomService}
}

func (h *RoomHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.CreateRoomRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	room, err := h.RoomService.CreateRoom(r.Context(), &req)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	cache.InvalidateBoards(r.Context(), room.PropertyID)
	utils.JSON(w, http.StatusCreated, room)
}

func (h *RoomHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "invalid room id")
		return
	}

	room, err := h.RoomService.GetRoom(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	utils.JSON(w, http.StatusOK, room)
}

func (h *RoomHandler) List(w http.ResponseWriter, r *http.Request) {
	propertyID := queryInt(r, "property_id")
	if propertyID <= 0 {
		utils.Error(w, http.StatusBadRequest, "property_id query parameter is required")
		return
	}

	rooms, err := h.RoomService.ListRooms(r.Context(), propertyID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	utils.JSON(w, http.StatusOK, rooms)
}

func (h *RoomHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "invalid room id")
		return
	}

	var req models.UpdateRoomRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	room, err := h.RoomService.UpdateRoom(r.Context(), id, &req)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	cache.InvalidateBoards(r.Context(), room.PropertyID)
	utils.JSON(w, http.StatusOK, room)
}

func (h *RoomHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "invalid room id")
		return
	}

	room, err := h.RoomService.GetRoom(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	if err := h.RoomService.DeleteRoom(r.Context(), id); err != nil {
		writeServiceError(w, err)
		return
	}

	cache.InvalidateBoards(r.Context(), room.PropertyID)
	utils.JSON(w, http.StatusOK, map[string]string{"message": "room deleted"})
}

// ChangeStatus handles the housekeeping status buttons. The room id and target
// status ride in the body rather than the path so the board UI can post a
// single payload per click.
func (h *RoomHandler) ChangeStatus(w http.ResponseWriter, r *http.Request) {
	var req models.ChangeRoomStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	room, err := h.RoomService.ChangeStatus(r.Context(), &req)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	cache.InvalidateBoards(r.Context(), room.PropertyID)
	utils.JSON(w, http.StatusOK, room)
}

func (h *RoomHandler) Import(w http.ResponseWriter, r *http.Request) {
	var req models.ImportRoomsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.RoomService.ImportRooms(r.Context(), &req)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	cache.InvalidateBoards(r.Context(), req.PropertyID)
	utils.JSON(w, http.StatusOK, result)
}

func (h *RoomHandler) Seed(w http.ResponseWriter, r *http.Request) {
	var req models.SeedRoomsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.RoomService.SeedRooms(r.Context(), &req)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	cache.InvalidateBoards(r.Context(), req.PropertyID)
	utils.JSON(w, http.StatusCreated, result)
}
