package backend

import (
	"context"

	"github.com/pkg/errors"
	"github.com/sobadon/carlot/domain/model/payment"
	"github.com/sobadon/carlot/domain/repository"
	"github.com/sobadon/carlot/internal/errutil"
)

type paymentRow struct {
	ID        string `json:"id"`
	VehicleID string `json:"vehicle_id"`
	Kind      string `json:"kind"`
	Method    string `json:"method"`
	Amount    int64  `json:"amount"`
	PaidOn    string `json:"paid_on"`
	Note      string `json:"note"`
}

func (r paymentRow) toModel() payment.Payment {
	return payment.Payment{
		ID:        r.ID,
		VehicleID: r.VehicleID,
		Kind:      payment.Kind(r.Kind),
		Method:    r.Method,
		Amount:    r.Amount,
		PaidOn:    r.PaidOn,
		Note:      r.Note,
	}
}

type paymentClient struct {
	c *Client
}

func NewPayment(c *Client) repository.PaymentPersistence {
	return &paymentClient{c: c}
}

func (pc *paymentClient) Save(ctx context.Context, p payment.Payment) error {
	return pc.c.upsert(ctx, "payments", "", paymentRow{
		ID:        p.ID,
		VehicleID: p.VehicleID,
		Kind:      p.Kind.String(),
		Method:    p.Method,
		Amount:    p.Amount,
		PaidOn:    p.PaidOn,
		Note:      p.Note,
	})
}

func (pc *paymentClient) ListByVehicle(ctx context.Context, vehicleID string) ([]payment.Payment, error) {
	var rows []paymentRow
	params := map[string]string{"vehicle_id": eq(vehicleID), "order": "paid_on.asc,created_at.asc"}
	if err := pc.c.selectRows(ctx, "payments", params, &rows); err != nil {
		return nil, err
	}

	var payments []payment.Payment
	for _, r := range rows {
		payments = append(payments, r.toModel())
	}
	return payments, nil
}

// 返されるエラー
// - errutil.ErrDatabaseNotFound
func (pc *paymentClient) Load(ctx context.Context, id string) (*payment.Payment, error) {
	var rows []paymentRow
	if err := pc.c.selectRows(ctx, "payments", map[string]string{"id": eq(id)}, &rows); err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, errors.Wrapf(errutil.ErrDatabaseNotFound, "not found payment (id = %s)", id)
	}

	p := rows[0].toModel()
	return &p, nil
}

// 領収書はサービス側の外部キー（on delete cascade）で消える
//
// 返されるエラー
// - errutil.ErrDatabaseNotFound
func (pc *paymentClient) Delete(ctx context.Context, id string) error {
	n, err := pc.c.delete(ctx, "payments", map[string]string{"id": eq(id)})
	if err != nil {
		return err
	}
	if n == 0 {
		return errors.Wrapf(errutil.ErrDatabaseNotFound, "not found payment (id = %s)", id)
	}
	return nil
}

type feeRow struct {
	ID         string  `json:"id"`
	VehicleID  string  `json:"vehicle_id"`
	FeeType    string  `json:"fee_type"`
	Amount     int64   `json:"amount"`
	IncurredOn *string `json:"incurred_on"`
	Note       string  `json:"note"`
}

type feeClient struct {
	c *Client
}

func NewFee(c *Client) repository.FeePersistence {
	return &feeClient{c: c}
}

func (fc *feeClient) Save(ctx context.Context, f payment.Fee) error {
	return fc.c.upsert(ctx, "fees", "", feeRow{
		ID:         f.ID,
		VehicleID:  f.VehicleID,
		FeeType:    f.FeeType,
		Amount:     f.Amount,
		IncurredOn: nullable(f.IncurredOn),
		Note:       f.Note,
	})
}

func (fc *feeClient) ListByVehicle(ctx context.Context, vehicleID string) ([]payment.Fee, error) {
	var rows []feeRow
	params := map[string]string{"vehicle_id": eq(vehicleID), "order": "incurred_on.asc.nullsfirst,created_at.asc"}
	if err := fc.c.selectRows(ctx, "fees", params, &rows); err != nil {
		return nil, err
	}

	var fees []payment.Fee
	for _, r := range rows {
		fees = append(fees, payment.Fee{
			ID:         r.ID,
			VehicleID:  r.VehicleID,
			FeeType:    r.FeeType,
			Amount:     r.Amount,
			IncurredOn: deref(r.IncurredOn),
			Note:       r.Note,
		})
	}
	return fees, nil
}

// 返されるエラー
// - errutil.ErrDatabaseNotFound
func (fc *feeClient) Delete(ctx context.Context, id string) error {
	n, err := fc.c.delete(ctx, "fees", map[string]string{"id": eq(id)})
	if err != nil {
		return err
	}
	if n == 0 {
		return errors.Wrapf(errutil.ErrDatabaseNotFound, "not found fee (id = %s)", id)
	}
	return nil
}

type receiptRow struct {
	ID        string `json:"id"`
	PaymentID string `json:"payment_id"`
	Number    string `json:"number"`
	IssuedOn  string `json:"issued_on"`
}

type receiptClient struct {
	c *Client
}

func NewReceipt(c *Client) repository.ReceiptPersistence {
	return &receiptClient{c: c}
}

func (rc *receiptClient) Save(ctx context.Context, r payment.Receipt) error {
	return rc.c.insert(ctx, "receipts", receiptRow(r))
}

// 返されるエラー
// - errutil.ErrDatabaseNotFound
func (rc *receiptClient) LoadByPayment(ctx context.Context, paymentID string) (*payment.Receipt, error) {
	var rows []receiptRow
	if err := rc.c.selectRows(ctx, "receipts", map[string]string{"payment_id": eq(paymentID)}, &rows); err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, errors.Wrapf(errutil.ErrDatabaseNotFound, "not found receipt (payment_id = %s)", paymentID)
	}

	r := payment.Receipt(rows[0])
	return &r, nil
}

func (rc *receiptClient) LastSeqIssuedOn(ctx context.Context, issuedOn string) (int, error) {
	var rows []receiptRow
	if err := rc.c.selectRows(ctx, "receipts", map[string]string{"issued_on": eq(issuedOn)}, &rows); err != nil {
		return 0, err
	}
	numbers := make([]string, 0, len(rows))
	for _, r := range rows {
		numbers = append(numbers, r.Number)
	}
	return payment.LastSeq(numbers), nil
}
