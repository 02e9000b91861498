package handler

import (
	"encoding/json"
	"net/http"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/sobadon/carlot/internal/errutil"
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func statusOf(err error) int {
	switch {
	case errors.Is(err, errutil.ErrValidation), errors.Is(err, errutil.ErrRocDateParse):
		return http.StatusBadRequest
	case errors.Is(err, errutil.ErrDatabaseNotFound):
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}

// 5xx は中身を出さずにログにだけ残す
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusOf(err)
	msg := err.Error()
	if status >= http.StatusInternalServerError {
		log.Ctx(r.Context()).Error().Msgf("%+v", err)
		msg = http.StatusText(status)
	} else {
		log.Ctx(r.Context()).Debug().Msgf("request rejected: %v", err)
	}
	writeJSON(w, status, errorResponse{Error: msg})
}

// 壊れた JSON は ErrValidation として扱う
func decodeJSON(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return errors.Wrapf(errutil.ErrValidation, "invalid request body: %s", err.Error())
	}
	return nil
}

// nil スライスを [] で返すため
func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
