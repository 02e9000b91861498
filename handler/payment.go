package handler

import (
	"bytes"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sobadon/carlot/domain/model/payment"
	"github.com/sobadon/carlot/internal/fileutil"
)

type recordPaymentResponse struct {
	Payment payment.Payment `json:"payment"`
	Receipt payment.Receipt `json:"receipt"`
}

func (h *Handler) handleListPayments(w http.ResponseWriter, r *http.Request) {
	payments, err := h.payments.ListPayments(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, nonNil(payments))
}

func (h *Handler) handleRecordPayment(w http.ResponseWriter, r *http.Request) {
	var p payment.Payment
	if err := decodeJSON(r, &p); err != nil {
		h.writeError(w, r, err)
		return
	}
	p.ID = ""
	p.VehicleID = chi.URLParam(r, "id")

	saved, receipt, err := h.payments.RecordPayment(r.Context(), p, h.now())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, recordPaymentResponse{Payment: saved, Receipt: receipt})
}

func (h *Handler) handleDeletePayment(w http.ResponseWriter, r *http.Request) {
	if err := h.payments.DeletePayment(r.Context(), chi.URLParam(r, "id")); err != nil {
		h.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// 途中で失敗したときに JSON のエラーを返せるよう一度バッファに書く
func (h *Handler) handleReceiptPDF(w http.ResponseWriter, r *http.Request) {
	var buf bytes.Buffer
	receipt, err := h.payments.PrintReceipt(r.Context(), &buf, chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	filename := fileutil.SanitizeFilename(receipt.Number) + ".pdf"
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`inline; filename="%s"`, filename))
	w.WriteHeader(http.StatusOK)
	_, _ = buf.WriteTo(w)
}

func (h *Handler) handleListFees(w http.ResponseWriter, r *http.Request) {
	fees, err := h.payments.ListFees(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, nonNil(fees))
}

func (h *Handler) handleAddFee(w http.ResponseWriter, r *http.Request) {
	var f payment.Fee
	if err := decodeJSON(r, &f); err != nil {
		h.writeError(w, r, err)
		return
	}
	f.ID = ""
	f.VehicleID = chi.URLParam(r, "id")

	saved, err := h.payments.AddFee(r.Context(), f)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, saved)
}

func (h *Handler) handleDeleteFee(w http.ResponseWriter, r *http.Request) {
	if err := h.payments.DeleteFee(r.Context(), chi.URLParam(r, "id")); err != nil {
		h.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) handleBalance(w http.ResponseWriter, r *http.Request) {
	balance, err := h.payments.Balance(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, balance)
}
