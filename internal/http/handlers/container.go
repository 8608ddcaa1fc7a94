package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"trucking-planner/internal/service/order"
)

// UpdateContainer handles PATCH /orders/{id}/containers/{seq}.
func (h *OrderHandler) UpdateContainer(w http.ResponseWriter, r *http.Request) {
	a, ok := actor(w, r)
	if !ok {
		return
	}
	seq, err := seqFromURL(r, "seq")
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}
	var req containerPatchRequest
	if ok := decodeJSON(w, r, &req); !ok {
		return
	}

	if err := h.uc.UpdateContainer(r.Context(), a, chi.URLParam(r, "id"), seq, req.toModel()); err != nil {
		writeDomainError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, map[string]string{"status": "ok"})
}

// BulkUpdateContainers handles PATCH /orders/{id}/containers.
func (h *OrderHandler) BulkUpdateContainers(w http.ResponseWriter, r *http.Request) {
	a, ok := actor(w, r)
	if !ok {
		return
	}
	var req bulkUpdateRequest
	if ok := decodeJSON(w, r, &req); !ok {
		return
	}

	updates := make([]order.ContainerUpdate, 0, len(req.Containers))
	for _, item := range req.Containers {
		updates = append(updates, order.ContainerUpdate{
			SequenceNo: item.SequenceNo,
			Patch:      item.Patch.toModel(),
		})
	}

	if err := h.uc.BulkUpdate(r.Context(), a, chi.URLParam(r, "id"), updates); err != nil {
		writeDomainError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, map[string]string{"status": "ok"})
}
