package api

import (
	"encoding/json"
	"net/http"
	"strconv"

	"hospedaje/internal/db"
	"hospedaje/internal/entities"
	"hospedaje/internal/service"
)

type GuestHandler struct {
	Service *service.GuestService
}

func NewGuestHandler(svc *service.GuestService) *GuestHandler {
	return &GuestHandler{Service: svc}
}

func (h *GuestHandler) ListGuests(w http.ResponseWriter, r *http.Request) {
	operatorID, ok := operatorFrom(w, r)
	if !ok {
		return
	}
	requestID, _ := strconv.Atoi(r.URL.Query().Get("accommodation_request_id"))
	guests, err := h.Service.ListGuests(operatorID, requestID)
	if err != nil {
		respondError(w, err)
		return
	}
	if guests == nil {
		guests = []entities.GuestInfo{}
	}
	respondJSON(w, http.StatusOK, map[string]any{"guests": guests})
}

func (h *GuestHandler) CreateGuest(w http.ResponseWriter, r *http.Request) {
	operatorID, ok := operatorFrom(w, r)
	if !ok {
		return
	}
	var req CreateGuestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}
	if req.AccommodationRequestID == 0 || req.FirstName == "" {
		http.Error(w, "Missing required fields: accommodation_request_id, first_name", http.StatusBadRequest)
		return
	}
	guest := &db.Guest{
		AccommodationRequestID: req.AccommodationRequestID,
		FirstName:              req.FirstName,
		LastName:               req.LastName,
		DocumentType:           req.DocumentType,
		DocumentNumber:         req.DocumentNumber,
		Nationality:            req.Nationality,
	}
	if req.BirthDate != nil {
		birth, err := parseDateParam(*req.BirthDate)
		if err != nil {
			http.Error(w, "Invalid birth_date", http.StatusBadRequest)
			return
		}
		guest.BirthDate = &birth
	}
	info, err := h.Service.CreateGuest(operatorID, guest)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, info)
}

func (h *GuestHandler) UpdateGuest(w http.ResponseWriter, r *http.Request) {
	operatorID, ok := operatorFrom(w, r)
	if !ok {
		return
	}
	var req UpdateGuestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}
	if req.ID == 0 {
		http.Error(w, "Missing id in body", http.StatusBadRequest)
		return
	}
	patch := entities.GuestPatch{
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		DocumentType:   req.DocumentType,
		DocumentNumber: req.DocumentNumber,
		Nationality:    req.Nationality,
	}
	var err error
	if patch.BirthDate, err = parseOptionalDate(req.BirthDate); err != nil {
		http.Error(w, "Invalid birth_date", http.StatusBadRequest)
		return
	}
	info, err := h.Service.UpdateGuest(operatorID, req.ID, patch)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, info)
}

func (h *GuestHandler) DeleteGuest(w http.ResponseWriter, r *http.Request) {
	operatorID, ok := operatorFrom(w, r)
	if !ok {
		return
	}
	id, err := strconv.Atoi(r.URL.Query().Get("id"))
	if err != nil {
		http.Error(w, "Missing id parameter", http.StatusBadRequest)
		return
	}
	if err := h.Service.DeleteGuest(operatorID, id); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]bool{"success": true})
}
