package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"trucking-planner/internal/repository"
)

// OrderHandler serves order lifecycle endpoints.
type OrderHandler struct{ uc orderUsecase }

// NewOrderHandler wires the order usecase into HTTP handlers.
func NewOrderHandler(uc orderUsecase) *OrderHandler { return &OrderHandler{uc: uc} }

// Create handles POST /orders.
func (h *OrderHandler) Create(w http.ResponseWriter, r *http.Request) {
	a, ok := actor(w, r)
	if !ok {
		return
	}
	var req createOrderRequest
	if ok := decodeJSON(w, r, &req); !ok {
		return
	}

	o, items, err := h.uc.Create(r.Context(), a, req.toModel())
	if err != nil {
		writeDomainError(w, r, err)
		return
	}
	w.Header().Set("Location", "/orders/"+o.ID)
	writeJSON(w, r, http.StatusCreated, orderDetailDTO{
		orderDTO:   orderToResponse(*o),
		Containers: containersToResponse(items),
	})
}

// List handles GET /orders with optional vendor/from/to filters.
func (h *OrderHandler) List(w http.ResponseWriter, r *http.Request) {
	a, ok := actor(w, r)
	if !ok {
		return
	}
	q := r.URL.Query()
	f := repository.ListFilter{
		Vendor: q.Get("vendor"),
		From:   q.Get("from"),
		To:     q.Get("to"),
	}

	list, err := h.uc.List(r.Context(), a, f)
	if err != nil {
		writeDomainError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, ordersToResponse(list))
}

// Get handles GET /orders/{id}.
func (h *OrderHandler) Get(w http.ResponseWriter, r *http.Request) {
	a, ok := actor(w, r)
	if !ok {
		return
	}
	o, items, err := h.uc.Get(r.Context(), a, chi.URLParam(r, "id"))
	if err != nil {
		writeDomainError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, orderDetailDTO{
		orderDTO:   orderToResponse(*o),
		Containers: containersToResponse(items),
	})
}

// Breakdown handles GET /orders/{id}/breakdown.
func (h *OrderHandler) Breakdown(w http.ResponseWriter, r *http.Request) {
	a, ok := actor(w, r)
	if !ok {
		return
	}
	b, err := h.uc.Breakdown(r.Context(), a, chi.URLParam(r, "id"))
	if err != nil {
		writeDomainError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, breakdownToResponse(b))
}

// Report handles GET /orders/{id}/report.
func (h *OrderHandler) Report(w http.ResponseWriter, r *http.Request) {
	a, ok := actor(w, r)
	if !ok {
		return
	}
	rep, err := h.uc.BuildReport(r.Context(), a, chi.URLParam(r, "id"))
	if err != nil {
		writeDomainError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, reportToResponse(rep))
}

// AcceptAll handles POST /orders/{id}/accept.
func (h *OrderHandler) AcceptAll(w http.ResponseWriter, r *http.Request) {
	a, ok := actor(w, r)
	if !ok {
		return
	}
	o, err := h.uc.AcceptAll(r.Context(), a, chi.URLParam(r, "id"))
	if err != nil {
		writeDomainError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, orderToResponse(*o))
}

// RejectAll handles POST /orders/{id}/reject.
func (h *OrderHandler) RejectAll(w http.ResponseWriter, r *http.Request) {
	a, ok := actor(w, r)
	if !ok {
		return
	}
	o, err := h.uc.RejectAll(r.Context(), a, chi.URLParam(r, "id"))
	if err != nil {
		writeDomainError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, orderToResponse(*o))
}

// PartialAccept handles POST /orders/{id}/partial.
func (h *OrderHandler) PartialAccept(w http.ResponseWriter, r *http.Request) {
	a, ok := actor(w, r)
	if !ok {
		return
	}
	var req partialAcceptRequest
	if ok := decodeJSON(w, r, &req); !ok {
		return
	}

	o, err := h.uc.PartialAccept(r.Context(), a, chi.URLParam(r, "id"), req.Accept20, req.Accept40)
	if err != nil {
		writeDomainError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, orderToResponse(*o))
}
