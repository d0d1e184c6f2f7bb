package api

import (
	"encoding/json"
	"net/http"
	"strconv"

	"hospedaje/internal/db"
	"hospedaje/internal/entities"
	"hospedaje/internal/service"
)

type RoomHandler struct {
	Service *service.RoomService
}

func NewRoomHandler(svc *service.RoomService) *RoomHandler {
	return &RoomHandler{Service: svc}
}

func (h *RoomHandler) ListRooms(w http.ResponseWriter, r *http.Request) {
	operatorID, ok := operatorFrom(w, r)
	if !ok {
		return
	}
	rooms, err := h.Service.ListRooms(operatorID, r.URL.Query().Get("accommodation_code"))
	if err != nil {
		respondError(w, err)
		return
	}
	if rooms == nil {
		rooms = []entities.RoomInfo{}
	}
	respondJSON(w, http.StatusOK, map[string]any{"rooms": rooms})
}

func (h *RoomHandler) CreateRoom(w http.ResponseWriter, r *http.Request) {
	operatorID, ok := operatorFrom(w, r)
	if !ok {
		return
	}
	var req CreateRoomRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}
	if req.RoomName == "" || req.AccommodationCode == "" {
		http.Error(w, "Missing required fields: accommodation_code, room_name", http.StatusBadRequest)
		return
	}
	room := &db.Room{
		AccommodationCode: req.AccommodationCode,
		RoomName:          req.RoomName,
		RoomType:          req.RoomType,
		Capacity:          req.Capacity,
		Floor:             req.Floor,
		Price:             req.Price,
	}
	info, err := h.Service.CreateRoom(operatorID, room)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, info)
}

func (h *RoomHandler) UpdateRoom(w http.ResponseWriter, r *http.Request) {
	operatorID, ok := operatorFrom(w, r)
	if !ok {
		return
	}
	var req UpdateRoomRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}
	if req.ID == 0 {
		http.Error(w, "Missing id in body", http.StatusBadRequest)
		return
	}
	patch := entities.RoomPatch{
		RoomName: req.RoomName,
		RoomType: req.RoomType,
		Capacity: req.Capacity,
		Floor:    req.Floor,
		Price:    req.Price,
	}
	info, err := h.Service.UpdateRoom(operatorID, req.ID, patch)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, info)
}

func (h *RoomHandler) DeleteRoom(w http.ResponseWriter, r *http.Request) {
	operatorID, ok := operatorFrom(w, r)
	if !ok {
		return
	}
	id, err := strconv.Atoi(r.URL.Query().Get("id"))
	if err != nil {
		http.Error(w, "Missing id parameter", http.StatusBadRequest)
		return
	}
	if err := h.Service.DeleteRoom(operatorID, id); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]bool{"success": true})
}
