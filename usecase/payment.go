package usecase

import (
	"context"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/sobadon/carlot/domain/model/date"
	"github.com/sobadon/carlot/domain/model/payment"
	"github.com/sobadon/carlot/domain/repository"
	"github.com/sobadon/carlot/internal/errutil"
)

type ucPayment struct {
	vehiclePersistence repository.VehiclePersistence
	ownerPersistence   repository.OwnerPersistence
	paymentPersistence repository.PaymentPersistence
	feePersistence     repository.FeePersistence
	receiptPersistence repository.ReceiptPersistence
	receiptPrinter     repository.ReceiptPrinter

	// 領収書に載せる店名
	dealer string
	newID  func() string
}

func NewPayment(
	vehiclePersistence repository.VehiclePersistence,
	ownerPersistence repository.OwnerPersistence,
	paymentPersistence repository.PaymentPersistence,
	feePersistence repository.FeePersistence,
	receiptPersistence repository.ReceiptPersistence,
	receiptPrinter repository.ReceiptPrinter,
	dealer string,
) *ucPayment {
	return &ucPayment{
		vehiclePersistence: vehiclePersistence,
		ownerPersistence:   ownerPersistence,
		paymentPersistence: paymentPersistence,
		feePersistence:     feePersistence,
		receiptPersistence: receiptPersistence,
		receiptPrinter:     receiptPrinter,
		dealer:             dealer,
		newID:              uuid.NewString,
	}
}

// 支払いを記録し、その日の通し番号で領収書を発行する
// now は発行日（台湾時間の日付）を決めるため
func (u *ucPayment) RecordPayment(ctx context.Context, p payment.Payment, now time.Time) (payment.Payment, payment.Receipt, error) {
	if p.ID == "" {
		p.ID = u.newID()
	}
	if err := p.Validate(); err != nil {
		return payment.Payment{}, payment.Receipt{}, err
	}
	if _, err := u.vehiclePersistence.Load(ctx, p.VehicleID); err != nil {
		return payment.Payment{}, payment.Receipt{}, err
	}

	if err := u.paymentPersistence.Save(ctx, p); err != nil {
		return payment.Payment{}, payment.Receipt{}, err
	}

	issuedOn := date.NewFromToday(now).ISO()
	last, err := u.receiptPersistence.LastSeqIssuedOn(ctx, issuedOn)
	if err != nil {
		return payment.Payment{}, payment.Receipt{}, err
	}
	r := payment.Receipt{
		ID:        u.newID(),
		PaymentID: p.ID,
		Number:    payment.ReceiptNumber(issuedOn, last+1),
		IssuedOn:  issuedOn,
	}
	if err := u.receiptPersistence.Save(ctx, r); err != nil {
		// 領収書のない支払いを残さない
		if delErr := u.paymentPersistence.Delete(ctx, p.ID); delErr != nil {
			log.Ctx(ctx).Error().Msgf("failed to roll back payment without receipt (id = %s): %+v", p.ID, delErr)
		}
		return payment.Payment{}, payment.Receipt{}, err
	}

	log.Ctx(ctx).Info().Msgf("recorded payment (id = %s, vehicle = %s, amount = %d, receipt = %s)", p.ID, p.VehicleID, p.Amount, r.Number)
	return p, r, nil
}

func (u *ucPayment) ListPayments(ctx context.Context, vehicleID string) ([]payment.Payment, error) {
	return u.paymentPersistence.ListByVehicle(ctx, vehicleID)
}

func (u *ucPayment) DeletePayment(ctx context.Context, id string) error {
	if err := u.paymentPersistence.Delete(ctx, id); err != nil {
		return err
	}
	log.Ctx(ctx).Info().Msgf("deleted payment (id = %s)", id)
	return nil
}

func (u *ucPayment) AddFee(ctx context.Context, f payment.Fee) (payment.Fee, error) {
	if f.ID == "" {
		f.ID = u.newID()
	}
	if err := f.Validate(); err != nil {
		return payment.Fee{}, err
	}
	if _, err := u.vehiclePersistence.Load(ctx, f.VehicleID); err != nil {
		return payment.Fee{}, err
	}

	if err := u.feePersistence.Save(ctx, f); err != nil {
		return payment.Fee{}, err
	}
	log.Ctx(ctx).Info().Msgf("added fee (id = %s, vehicle = %s, amount = %d)", f.ID, f.VehicleID, f.Amount)
	return f, nil
}

func (u *ucPayment) ListFees(ctx context.Context, vehicleID string) ([]payment.Fee, error) {
	return u.feePersistence.ListByVehicle(ctx, vehicleID)
}

func (u *ucPayment) DeleteFee(ctx context.Context, id string) error {
	if err := u.feePersistence.Delete(ctx, id); err != nil {
		return err
	}
	log.Ctx(ctx).Info().Msgf("deleted fee (id = %s)", id)
	return nil
}

// 売約済みなら成交価格、そうでなければ希望価格に対する収支
func (u *ucPayment) Balance(ctx context.Context, vehicleID string) (payment.Balance, error) {
	v, err := u.vehiclePersistence.Load(ctx, vehicleID)
	if err != nil {
		return payment.Balance{}, err
	}
	payments, err := u.paymentPersistence.ListByVehicle(ctx, vehicleID)
	if err != nil {
		return payment.Balance{}, err
	}
	fees, err := u.feePersistence.ListByVehicle(ctx, vehicleID)
	if err != nil {
		return payment.Balance{}, err
	}

	price := v.AskingPrice
	if v.SalePrice > 0 {
		price = v.SalePrice
	}
	return payment.NewBalance(vehicleID, price, v.PurchasePrice, payments, fees), nil
}

// 領収書の PDF を w に書く
// ファイル名に使えるよう領収書そのものも返す
func (u *ucPayment) PrintReceipt(ctx context.Context, w io.Writer, paymentID string) (payment.Receipt, error) {
	p, err := u.paymentPersistence.Load(ctx, paymentID)
	if err != nil {
		return payment.Receipt{}, err
	}
	r, err := u.receiptPersistence.LoadByPayment(ctx, paymentID)
	if err != nil {
		return payment.Receipt{}, err
	}
	v, err := u.vehiclePersistence.Load(ctx, p.VehicleID)
	if err != nil {
		return payment.Receipt{}, err
	}

	doc := payment.ReceiptDocument{
		Receipt:     *r,
		Payment:     *p,
		PlateNumber: v.PlateNumber,
		Brand:       v.Brand,
		Model:       v.Model,
		Dealer:      u.dealer,
	}
	// 売約前の訂金など車主が決まっていないこともある
	if v.OwnerID != "" {
		o, err := u.ownerPersistence.Load(ctx, v.OwnerID)
		if err != nil && !errors.Is(err, errutil.ErrDatabaseNotFound) {
			return payment.Receipt{}, err
		}
		if o != nil {
			doc.OwnerName = o.Name
		}
	}

	if err := u.receiptPrinter.Print(ctx, w, doc); err != nil {
		return payment.Receipt{}, err
	}
	return *r, nil
}
