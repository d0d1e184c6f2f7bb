package api

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"

	"hospedaje/internal/db"
	"hospedaje/internal/entities"
	"hospedaje/internal/service"
)

type RequestHandler struct {
	Service *service.RequestService
}

func NewRequestHandler(svc *service.RequestService) *RequestHandler {
	return &RequestHandler{Service: svc}
}

// ListRequests answers both the by-id lookup (?id=) and the filtered listing
// (?accommodation_code=a,b).
func (h *RequestHandler) ListRequests(w http.ResponseWriter, r *http.Request) {
	operatorID, ok := operatorFrom(w, r)
	if !ok {
		return
	}
	if idParam := r.URL.Query().Get("id"); idParam != "" {
		id, err := strconv.Atoi(idParam)
		if err != nil {
			http.Error(w, "Invalid id parameter", http.StatusBadRequest)
			return
		}
		info, err := h.Service.GetRequest(operatorID, id)
		if err != nil {
			respondError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, map[string]any{"accommodation_request": info})
		return
	}

	var codes []string
	if param := r.URL.Query().Get("accommodation_code"); param != "" {
		codes = strings.Split(param, ",")
	}
	requests, err := h.Service.ListRequests(operatorID, codes)
	if err != nil {
		respondError(w, err)
		return
	}
	if requests == nil {
		requests = []entities.RequestInfo{}
	}
	respondJSON(w, http.StatusOK, map[string]any{"accommodation_requests": requests})
}

func (h *RequestHandler) CreateRequest(w http.ResponseWriter, r *http.Request) {
	operatorID, ok := operatorFrom(w, r)
	if !ok {
		return
	}
	var req CreateAccommodationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}
	if req.EstablishmentCode == "" || req.CheckIn == "" || req.CheckOut == "" {
		http.Error(w, "Missing required fields: establishment_code, check_in, check_out", http.StatusBadRequest)
		return
	}
	checkIn, err := parseDateParam(req.CheckIn)
	if err != nil {
		http.Error(w, "Invalid check_in", http.StatusBadRequest)
		return
	}
	checkOut, err := parseDateParam(req.CheckOut)
	if err != nil {
		http.Error(w, "Invalid check_out", http.StatusBadRequest)
		return
	}
	numGuests := req.NumGuests
	if numGuests == 0 {
		numGuests = 1
	}
	numRooms := req.NumRooms
	if numRooms == 0 {
		numRooms = 1
	}
	rq := &db.AccommodationRequest{
		EstablishmentCode: req.EstablishmentCode,
		ContractReference: req.ContractReference,
		CheckIn:           checkIn,
		CheckOut:          checkOut,
		NumGuests:         numGuests,
		NumRooms:          numRooms,
		Status:            req.Status,
	}
	info, err := h.Service.CreateRequest(operatorID, rq)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, info)
}

func (h *RequestHandler) UpdateRequest(w http.ResponseWriter, r *http.Request) {
	operatorID, ok := operatorFrom(w, r)
	if !ok {
		return
	}
	var req UpdateAccommodationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}
	if req.ID == 0 {
		http.Error(w, "Missing id in body", http.StatusBadRequest)
		return
	}
	patch := entities.RequestPatch{
		ContractReference: req.ContractReference,
		NumGuests:         req.NumGuests,
		NumRooms:          req.NumRooms,
		Status:            req.Status,
	}
	var err error
	if patch.CheckIn, err = parseOptionalDate(req.CheckIn); err != nil {
		http.Error(w, "Invalid check_in", http.StatusBadRequest)
		return
	}
	if patch.CheckOut, err = parseOptionalDate(req.CheckOut); err != nil {
		http.Error(w, "Invalid check_out", http.StatusBadRequest)
		return
	}
	info, err := h.Service.UpdateRequest(operatorID, req.ID, patch)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, info)
}

func (h *RequestHandler) DeleteRequest(w http.ResponseWriter, r *http.Request) {
	operatorID, ok := operatorFrom(w, r)
	if !ok {
		return
	}
	id, err := strconv.Atoi(r.URL.Query().Get("id"))
	if err != nil {
		http.Error(w, "Missing id parameter", http.StatusBadRequest)
		return
	}
	if err := h.Service.DeleteRequest(operatorID, id); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]bool{"success": true})
}

func parseOptionalDate(value *string) (*time.Time, error) {
	if value == nil {
		return nil, nil
	}
	t, err := parseDateParam(*value)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
