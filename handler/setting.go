package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sobadon/carlot/domain/model/setting"
)

func (h *Handler) handleLookupSettings(w http.ResponseWriter, r *http.Request) {
	category := setting.Category(chi.URLParam(r, "category"))
	values, err := h.settings.Lookup(r.Context(), category, h.now())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, nonNil(values))
}

func (h *Handler) handleSaveSetting(w http.ResponseWriter, r *http.Request) {
	var s setting.Setting
	if err := decodeJSON(r, &s); err != nil {
		h.writeError(w, r, err)
		return
	}

	saved, err := h.settings.Save(r.Context(), s)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, saved)
}

func (h *Handler) handleDeleteSetting(w http.ResponseWriter, r *http.Request) {
	category := setting.Category(chi.URLParam(r, "category"))
	if err := h.settings.Delete(r.Context(), category, chi.URLParam(r, "id")); err != nil {
		h.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
