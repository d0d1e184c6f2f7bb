package api

import (
	"net/http"

	"hospedaje/internal/service"
)

type DailyOpsHandler struct {
	Service *service.DailyOpsService
}

func NewDailyOpsHandler(svc *service.DailyOpsService) *DailyOpsHandler {
	return &DailyOpsHandler{Service: svc}
}

func (h *DailyOpsHandler) GetDailyOperations(w http.ResponseWriter, r *http.Request) {
	operatorID, ok := operatorFrom(w, r)
	if !ok {
		return
	}
	date := r.URL.Query().Get("date")
	if date == "" {
		http.Error(w, "Date parameter is required (format: YYYY-MM-DD)", http.StatusBadRequest)
		return
	}
	snapshot, err := h.Service.ClassifyDay(operatorID, date)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, snapshot)
}
