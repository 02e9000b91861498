package sqlite

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	"github.com/sobadon/carlot/domain/model/payment"
	"github.com/sobadon/carlot/domain/repository"
	"github.com/sobadon/carlot/internal/errutil"
)

type receiptSqlite struct {
	ID        string `db:"id"`
	PaymentID string `db:"payment_id"`
	Number    string `db:"number"`
	IssuedOn  string `db:"issued_on"`
}

type receiptClient struct {
	DB *sqlx.DB
}

func NewReceipt(db *sqlx.DB) repository.ReceiptPersistence {
	return &receiptClient{
		DB: db,
	}
}

// 領収書は再発行しないので追加のみ
func (c *receiptClient) Save(ctx context.Context, r payment.Receipt) error {
	_, err := c.DB.NamedExecContext(ctx,
		`insert into receipts (id, payment_id, number, issued_on) values (:id, :payment_id, :number, :issued_on)`,
		receiptSqlite(r))
	if err != nil {
		return errors.Wrap(errutil.ErrDatabaseQuery, err.Error())
	}
	return nil
}

// 返されるエラー
// - errutil.ErrDatabaseNotFound
func (c *receiptClient) LoadByPayment(ctx context.Context, paymentID string) (*payment.Receipt, error) {
	var r receiptSqlite
	err := c.DB.GetContext(ctx, &r, `select id, payment_id, number, issued_on from receipts where payment_id = ?`, paymentID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, errors.Wrapf(errutil.ErrDatabaseNotFound, "not found receipt (payment_id = %s)", paymentID)
	}
	if err != nil {
		return nil, errors.Wrap(errutil.ErrDatabaseQuery, err.Error())
	}

	receipt := payment.Receipt(r)
	return &receipt, nil
}

// 件数ではなく番号の最大値
func (c *receiptClient) LastSeqIssuedOn(ctx context.Context, issuedOn string) (int, error) {
	var numbers []string
	err := c.DB.SelectContext(ctx, &numbers, `select number from receipts where issued_on = ?`, issuedOn)
	if err != nil {
		return 0, errors.Wrap(errutil.ErrDatabaseQuery, err.Error())
	}
	return payment.LastSeq(numbers), nil
}
