package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"trucking-planner/internal/domain"
)

// AvailabilityHandler serves the vendor availability ledger.
type AvailabilityHandler struct{ uc availabilityUsecase }

// NewAvailabilityHandler wires the availability usecase into HTTP handlers.
func NewAvailabilityHandler(uc availabilityUsecase) *AvailabilityHandler {
	return &AvailabilityHandler{uc: uc}
}

// Set handles PUT /availability/{date}. The acting vendor's entry for the
// date is overwritten wholesale.
func (h *AvailabilityHandler) Set(w http.ResponseWriter, r *http.Request) {
	a, ok := actor(w, r)
	if !ok {
		return
	}
	var req availabilityRequest
	if ok := decodeJSON(w, r, &req); !ok {
		return
	}

	date := chi.URLParam(r, "date")
	err := h.uc.Set(r.Context(), a, date, domain.AvailabilityEntry{
		Slots20: req.Slots20,
		Slots40: req.Slots40,
	})
	if err != nil {
		writeDomainError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, map[string]string{"status": "ok"})
}

// ByDate handles GET /availability/{date}.
func (h *AvailabilityHandler) ByDate(w http.ResponseWriter, r *http.Request) {
	date := chi.URLParam(r, "date")
	entries, err := h.uc.ByDate(r.Context(), date)
	if err != nil {
		writeDomainError(w, r, err)
		return
	}
	out := make(map[string]availabilityDTO, len(entries))
	for vendor, e := range entries {
		out[vendor] = entryToResponse(e)
	}
	writeJSON(w, r, http.StatusOK, out)
}

// Get handles GET /availability/{date}/{vendor}.
func (h *AvailabilityHandler) Get(w http.ResponseWriter, r *http.Request) {
	date := chi.URLParam(r, "date")
	vendor := chi.URLParam(r, "vendor")
	e, err := h.uc.Get(r.Context(), date, vendor)
	if err != nil {
		writeDomainError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, entryToResponse(e))
}

// MonthSummary handles GET /availability/summary?year=2025&month=3.
func (h *AvailabilityHandler) MonthSummary(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	year, err := strconv.Atoi(q.Get("year"))
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid year")
		return
	}
	month, err := strconv.Atoi(q.Get("month"))
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid month")
		return
	}

	days, err := h.uc.MonthSummary(r.Context(), year, time.Month(month))
	if err != nil {
		writeDomainError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, daysToResponse(days))
}
