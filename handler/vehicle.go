package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sobadon/carlot/domain/model/owner"
	"github.com/sobadon/carlot/domain/model/vehicle"
)

func (h *Handler) handleSearchVehicles(w http.ResponseWriter, r *http.Request) {
	vehicles, err := h.inventory.SearchVehicles(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, nonNil(vehicles))
}

func (h *Handler) handleCreateVehicle(w http.ResponseWriter, r *http.Request) {
	var v vehicle.Vehicle
	if err := decodeJSON(r, &v); err != nil {
		h.writeError(w, r, err)
		return
	}
	// ID はサーバ側で振る
	v.ID = ""

	saved, err := h.inventory.SaveVehicle(r.Context(), v)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, saved)
}

func (h *Handler) handleGetVehicle(w http.ResponseWriter, r *http.Request) {
	v, err := h.inventory.LoadVehicle(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, v)
}

func (h *Handler) handleUpdateVehicle(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	// 無ければ 404
	if _, err := h.inventory.LoadVehicle(r.Context(), id); err != nil {
		h.writeError(w, r, err)
		return
	}

	var v vehicle.Vehicle
	if err := decodeJSON(r, &v); err != nil {
		h.writeError(w, r, err)
		return
	}
	v.ID = id

	saved, err := h.inventory.SaveVehicle(r.Context(), v)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, saved)
}

func (h *Handler) handleDeleteVehicle(w http.ResponseWriter, r *http.Request) {
	if err := h.inventory.DeleteVehicle(r.Context(), chi.URLParam(r, "id")); err != nil {
		h.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type sellRequest struct {
	OwnerID string `json:"ownerId"`
	Price   int64  `json:"price"`
	SoldOn  string `json:"soldOn"`
}

func (h *Handler) handleSellVehicle(w http.ResponseWriter, r *http.Request) {
	var req sellRequest
	if err := decodeJSON(r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}

	sold, err := h.inventory.SellVehicle(r.Context(), chi.URLParam(r, "id"), req.OwnerID, req.Price, req.SoldOn)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, sold)
}

func (h *Handler) handleSearchOwners(w http.ResponseWriter, r *http.Request) {
	owners, err := h.inventory.SearchOwners(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, nonNil(owners))
}

func (h *Handler) handleCreateOwner(w http.ResponseWriter, r *http.Request) {
	var o owner.Owner
	if err := decodeJSON(r, &o); err != nil {
		h.writeError(w, r, err)
		return
	}
	o.ID = ""

	saved, err := h.inventory.SaveOwner(r.Context(), o)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, saved)
}

func (h *Handler) handleGetOwner(w http.ResponseWriter, r *http.Request) {
	o, err := h.inventory.LoadOwner(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, o)
}

func (h *Handler) handleUpdateOwner(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if _, err := h.inventory.LoadOwner(r.Context(), id); err != nil {
		h.writeError(w, r, err)
		return
	}

	var o owner.Owner
	if err := decodeJSON(r, &o); err != nil {
		h.writeError(w, r, err)
		return
	}
	o.ID = id

	saved, err := h.inventory.SaveOwner(r.Context(), o)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, saved)
}

func (h *Handler) handleDeleteOwner(w http.ResponseWriter, r *http.Request) {
	if err := h.inventory.DeleteOwner(r.Context(), chi.URLParam(r, "id")); err != nil {
		h.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
