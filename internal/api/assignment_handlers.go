package api

import (
	"encoding/json"
	"net/http"
	"strconv"

	"hospedaje/internal/entities"
	"hospedaje/internal/service"
)

type AssignmentHandler struct {
	Service *service.AssignmentService
}

func NewAssignmentHandler(svc *service.AssignmentService) *AssignmentHandler {
	return &AssignmentHandler{Service: svc}
}

func (h *AssignmentHandler) ListAssignments(w http.ResponseWriter, r *http.Request) {
	operatorID, ok := operatorFrom(w, r)
	if !ok {
		return
	}
	q := r.URL.Query()
	filter := entities.AssignmentFilter{AccommodationCode: q.Get("accommodation_code")}
	if param := q.Get("accommodation_request_id"); param != "" {
		id, err := strconv.Atoi(param)
		if err != nil {
			http.Error(w, "Invalid accommodation_request_id", http.StatusBadRequest)
			return
		}
		filter.AccommodationRequestID = id
	}
	if param := q.Get("start_date"); param != "" {
		start, err := parseDateParam(param)
		if err != nil {
			http.Error(w, "Invalid start_date", http.StatusBadRequest)
			return
		}
		filter.StartDate = &start
	}
	if param := q.Get("end_date"); param != "" {
		end, err := parseDateParam(param)
		if err != nil {
			http.Error(w, "Invalid end_date", http.StatusBadRequest)
			return
		}
		filter.EndDate = &end
	}

	assignments, err := h.Service.List(operatorID, filter)
	if err != nil {
		respondError(w, err)
		return
	}
	if assignments == nil {
		assignments = []*entities.AssignmentDetail{}
	}
	respondJSON(w, http.StatusOK, map[string]any{"room_assignments": assignments})
}

func (h *AssignmentHandler) CreateAssignment(w http.ResponseWriter, r *http.Request) {
	operatorID, ok := operatorFrom(w, r)
	if !ok {
		return
	}
	var req CreateAssignmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}
	if req.RoomID == 0 || req.AccommodationRequestID == 0 || req.CheckInDate == "" || req.CheckOutDate == "" {
		http.Error(w, "Missing required fields: room_id, accommodation_request_id, check_in_date, check_out_date", http.StatusBadRequest)
		return
	}
	checkIn, err := parseDateParam(req.CheckInDate)
	if err != nil {
		http.Error(w, "Invalid check_in_date", http.StatusBadRequest)
		return
	}
	checkOut, err := parseDateParam(req.CheckOutDate)
	if err != nil {
		http.Error(w, "Invalid check_out_date", http.StatusBadRequest)
		return
	}
	detail, err := h.Service.Create(operatorID, req.RoomID, req.AccommodationRequestID, checkIn, checkOut)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, detail)
}

func (h *AssignmentHandler) UpdateAssignment(w http.ResponseWriter, r *http.Request) {
	operatorID, ok := operatorFrom(w, r)
	if !ok {
		return
	}
	var req UpdateAssignmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}
	if req.ID == 0 {
		http.Error(w, "Missing id in body", http.StatusBadRequest)
		return
	}
	if req.CheckInDate == "" || req.CheckOutDate == "" {
		http.Error(w, "Missing required fields: check_in_date, check_out_date", http.StatusBadRequest)
		return
	}
	checkIn, err := parseDateParam(req.CheckInDate)
	if err != nil {
		http.Error(w, "Invalid check_in_date", http.StatusBadRequest)
		return
	}
	checkOut, err := parseDateParam(req.CheckOutDate)
	if err != nil {
		http.Error(w, "Invalid check_out_date", http.StatusBadRequest)
		return
	}
	detail, err := h.Service.Update(operatorID, req.ID, checkIn, checkOut)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, detail)
}

func (h *AssignmentHandler) DeleteAssignment(w http.ResponseWriter, r *http.Request) {
	operatorID, ok := operatorFrom(w, r)
	if !ok {
		return
	}
	id, err := strconv.Atoi(r.URL.Query().Get("id"))
	if err != nil {
		http.Error(w, "Missing id parameter", http.StatusBadRequest)
		return
	}
	if err := h.Service.Delete(operatorID, id); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]bool{"success": true})
}
