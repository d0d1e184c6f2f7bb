package api

import (
	"net/http"
	"strconv"
	"time"

	"hospedaje/internal/service"
)

type TimelineHandler struct {
	Service *service.TimelineService
}

func NewTimelineHandler(svc *service.TimelineService) *TimelineHandler {
	return &TimelineHandler{Service: svc}
}

// GetTimeline builds the occupancy grid. Defaults: start today, 7 days.
func (h *TimelineHandler) GetTimeline(w http.ResponseWriter, r *http.Request) {
	operatorID, ok := operatorFrom(w, r)
	if !ok {
		return
	}
	q := r.URL.Query()
	code := q.Get("accommodation_code")
	if code == "" {
		http.Error(w, "Missing accommodation_code parameter", http.StatusBadRequest)
		return
	}

	start := time.Now().UTC()
	if param := q.Get("start_date"); param != "" {
		parsed, err := parseDateParam(param)
		if err != nil {
			http.Error(w, "Invalid start_date", http.StatusBadRequest)
			return
		}
		start = parsed
	}

	days := 7
	if param := q.Get("days"); param != "" {
		parsed, err := strconv.Atoi(param)
		if err != nil || parsed < 1 {
			http.Error(w, "Invalid days parameter", http.StatusBadRequest)
			return
		}
		days = parsed
	}

	var minCapacity *int
	if param := q.Get("min_capacity"); param != "" {
		parsed, err := strconv.Atoi(param)
		if err != nil {
			http.Error(w, "Invalid min_capacity parameter", http.StatusBadRequest)
			return
		}
		minCapacity = &parsed
	}

	availability := q.Get("availability")
	if availability != "" && availability != service.AvailabilityOccupied && availability != service.AvailabilityFree {
		http.Error(w, "Invalid availability parameter, use 'occupied' or 'free'", http.StatusBadRequest)
		return
	}

	timeline, err := h.Service.BuildTimeline(operatorID, code, start, days, minCapacity, availability)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, timeline)
}
