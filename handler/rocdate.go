package handler

import (
	"net/http"

	"github.com/pkg/errors"
	"github.com/sobadon/carlot/domain/model/rocdate"
	"github.com/sobadon/carlot/internal/errutil"
)

type rocDateInputRequest struct {
	// 利用者が打った文字列
	Raw string `json:"raw"`
	// 直前に確定していた ISO
	ISO string `json:"iso"`
}

type rocDateParts struct {
	YYY string `json:"yyy"`
	MM  string `json:"mm"`
	DD  string `json:"dd"`
}

type rocDateInputResponse struct {
	Parts       rocDateParts `json:"parts"`
	Display     string       `json:"display"`
	ISO         string       `json:"iso"`
	State       string       `json:"state"`
	Committed   bool         `json:"committed"`
	Helper      string       `json:"helper"`
	Placeholder string       `json:"placeholder"`
}

// 入力欄の状態遷移をサーバ側で行う
// 不正な入力でもエラーにはせず、直前の ISO を返す
func (h *Handler) handleRocDateInput(w http.ResponseWriter, r *http.Request) {
	var req rocDateInputRequest
	if err := decodeJSON(r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}

	field := rocdate.NewField(req.ISO)
	committed := field.Input(req.Raw)
	parts := rocdate.ParseInput(req.Raw)

	writeJSON(w, http.StatusOK, rocDateInputResponse{
		Parts:       rocDateParts{YYY: parts.YYY, MM: parts.MM, DD: parts.DD},
		Display:     field.Display(),
		ISO:         field.ISO(),
		State:       field.State().String(),
		Committed:   committed,
		Helper:      field.Helper(),
		Placeholder: field.Placeholder(),
	})
}

type rocDateDisplayResponse struct {
	ISO     string `json:"iso"`
	Display string `json:"display"`
	Helper  string `json:"helper"`
}

func (h *Handler) handleRocDateDisplay(w http.ResponseWriter, r *http.Request) {
	iso := r.URL.Query().Get("iso")
	display := rocdate.ISOToDisplay(iso)
	if display == "" {
		h.writeError(w, r, errors.Wrapf(errutil.ErrValidation, "iso is not a date after 1912-01-01: %q", iso))
		return
	}

	writeJSON(w, http.StatusOK, rocDateDisplayResponse{
		ISO:     iso,
		Display: display,
		Helper:  rocdate.ISOToHelper(iso),
	})
}
