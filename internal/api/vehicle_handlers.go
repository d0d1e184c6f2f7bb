package api

import (
	"encoding/json"
	"net/http"
	"strconv"

	"hospedaje/internal/db"
	"hospedaje/internal/entities"
	"hospedaje/internal/service"
)

type VehicleHandler struct {
	Service *service.VehicleService
}

func NewVehicleHandler(svc *service.VehicleService) *VehicleHandler {
	return &VehicleHandler{Service: svc}
}

func (h *VehicleHandler) ListVehicles(w http.ResponseWriter, r *http.Request) {
	operatorID, ok := operatorFrom(w, r)
	if !ok {
		return
	}
	requestID, _ := strconv.Atoi(r.URL.Query().Get("accommodation_request_id"))
	vehicles, err := h.Service.ListVehicles(operatorID, requestID)
	if err != nil {
		respondError(w, err)
		return
	}
	if vehicles == nil {
		vehicles = []entities.VehicleInfo{}
	}
	respondJSON(w, http.StatusOK, map[string]any{"vehicles": vehicles})
}

func (h *VehicleHandler) CreateVehicle(w http.ResponseWriter, r *http.Request) {
	operatorID, ok := operatorFrom(w, r)
	if !ok {
		return
	}
	var req CreateVehicleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}
	if req.AccommodationRequestID == 0 || req.Plate == "" {
		http.Error(w, "Missing required fields: accommodation_request_id, plate", http.StatusBadRequest)
		return
	}
	vehicle := &db.Vehicle{
		AccommodationRequestID: req.AccommodationRequestID,
		Plate:                  req.Plate,
		Model:                  req.Model,
	}
	info, err := h.Service.CreateVehicle(operatorID, vehicle)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, info)
}

func (h *VehicleHandler) UpdateVehicle(w http.ResponseWriter, r *http.Request) {
	operatorID, ok := operatorFrom(w, r)
	if !ok {
		return
	}
	var req UpdateVehicleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}
	if req.ID == 0 {
		http.Error(w, "Missing id in body", http.StatusBadRequest)
		return
	}
	info, err := h.Service.UpdateVehicle(operatorID, req.ID, entities.VehiclePatch{Plate: req.Plate, Model: req.Model})
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, info)
}

func (h *VehicleHandler) DeleteVehicle(w http.ResponseWriter, r *http.Request) {
	operatorID, ok := operatorFrom(w, r)
	if !ok {
		return
	}
	id, err := strconv.Atoi(r.URL.Query().Get("id"))
	if err != nil {
		http.Error(w, "Missing id parameter", http.StatusBadRequest)
		return
	}
	if err := h.Service.DeleteVehicle(operatorID, id); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]bool{"success": true})
}
