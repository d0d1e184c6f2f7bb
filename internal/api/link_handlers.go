package api

import (
	"encoding/json"
	"net/http"
	"strconv"

	"hospedaje/internal/db"
	"hospedaje/internal/entities"
	"hospedaje/internal/service"
)

type LinkHandler struct {
	Service *service.LinkService
}

func NewLinkHandler(svc *service.LinkService) *LinkHandler {
	return &LinkHandler{Service: svc}
}

func (h *LinkHandler) ListLinks(w http.ResponseWriter, r *http.Request) {
	operatorID, ok := operatorFrom(w, r)
	if !ok {
		return
	}
	links, err := h.Service.ListLinks(operatorID)
	if err != nil {
		respondError(w, err)
		return
	}
	if links == nil {
		links = []entities.LinkInfo{}
	}
	respondJSON(w, http.StatusOK, map[string]any{"links": links})
}

func (h *LinkHandler) CreateLink(w http.ResponseWriter, r *http.Request) {
	operatorID, ok := operatorFrom(w, r)
	if !ok {
		return
	}
	var req CreateLinkRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}
	link := &db.AccessLink{
		URL:                    req.URL,
		Email:                  req.Email,
		OneUse:                 req.OneUse,
		Used:                   req.Used,
		AccommodationCode:      req.AccommodationCode,
		AccommodationRequestID: req.AccommodationRequestID,
	}
	if req.ExpDate != nil {
		exp, err := parseDateParam(*req.ExpDate)
		if err != nil {
			http.Error(w, "Invalid exp_date", http.StatusBadRequest)
			return
		}
		link.ExpDate = &exp
	}
	info, err := h.Service.CreateLink(operatorID, link)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, info)
}

func (h *LinkHandler) UpdateLink(w http.ResponseWriter, r *http.Request) {
	operatorID, ok := operatorFrom(w, r)
	if !ok {
		return
	}
	var req UpdateLinkRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}
	if req.ID == 0 {
		http.Error(w, "Missing id in body", http.StatusBadRequest)
		return
	}
	patch := entities.LinkPatch{
		URL:        req.URL,
		Email:      req.Email,
		OneUse:     req.OneUse,
		Used:       req.Used,
		EmailsSent: req.EmailsSent,
	}
	var err error
	if patch.ExpDate, err = parseOptionalDate(req.ExpDate); err != nil {
		http.Error(w, "Invalid exp_date", http.StatusBadRequest)
		return
	}
	info, err := h.Service.UpdateLink(operatorID, req.ID, patch)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, info)
}

func (h *LinkHandler) DeleteLink(w http.ResponseWriter, r *http.Request) {
	operatorID, ok := operatorFrom(w, r)
	if !ok {
		return
	}
	id, err := strconv.Atoi(r.URL.Query().Get("id"))
	if err != nil {
		http.Error(w, "Missing id parameter", http.StatusBadRequest)
		return
	}
	if err := h.Service.DeleteLink(operatorID, id); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]bool{"success": true})
}
