// JSON の HTTP API
package handler

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
	"github.com/sobadon/carlot/domain/model/owner"
	"github.com/sobadon/carlot/domain/model/payment"
	"github.com/sobadon/carlot/domain/model/setting"
	"github.com/sobadon/carlot/domain/model/vehicle"
)

type Inventory interface {
	SaveVehicle(ctx context.Context, v vehicle.Vehicle) (vehicle.Vehicle, error)
	LoadVehicle(ctx context.Context, id string) (*vehicle.Vehicle, error)
	SearchVehicles(ctx context.Context, query string) ([]vehicle.Vehicle, error)
	DeleteVehicle(ctx context.Context, id string) error
	SellVehicle(ctx context.Context, id string, ownerID string, price int64, soldOn string) (vehicle.Vehicle, error)
	SaveOwner(ctx context.Context, o owner.Owner) (owner.Owner, error)
	LoadOwner(ctx context.Context, id string) (*owner.Owner, error)
	SearchOwners(ctx context.Context, query string) ([]owner.Owner, error)
	DeleteOwner(ctx context.Context, id string) error
}

type Payments interface {
	RecordPayment(ctx context.Context, p payment.Payment, now time.Time) (payment.Payment, payment.Receipt, error)
	ListPayments(ctx context.Context, vehicleID string) ([]payment.Payment, error)
	DeletePayment(ctx context.Context, id string) error
	AddFee(ctx context.Context, f payment.Fee) (payment.Fee, error)
	ListFees(ctx context.Context, vehicleID string) ([]payment.Fee, error)
	DeleteFee(ctx context.Context, id string) error
	Balance(ctx context.Context, vehicleID string) (payment.Balance, error)
	PrintReceipt(ctx context.Context, w io.Writer, paymentID string) (payment.Receipt, error)
}

type Settings interface {
	Lookup(ctx context.Context, category setting.Category, now time.Time) ([]setting.Setting, error)
	Save(ctx context.Context, s setting.Setting) (setting.Setting, error)
	Delete(ctx context.Context, category setting.Category, id string) error
}

type Handler struct {
	inventory Inventory
	payments  Payments
	settings  Settings

	logger  zerolog.Logger
	metrics *metrics
	now     func() time.Time
	health  func(ctx context.Context) error
}

type Option func(*Handler)

// /healthz で呼ぶ疎通確認（DB の Ping など）
func WithHealthCheck(check func(ctx context.Context) error) Option {
	return func(h *Handler) {
		h.health = check
	}
}

func WithClock(now func() time.Time) Option {
	return func(h *Handler) {
		h.now = now
	}
}

func New(inventory Inventory, payments Payments, settings Settings, logger zerolog.Logger, opts ...Option) *Handler {
	h := &Handler{
		inventory: inventory,
		payments:  payments,
		settings:  settings,
		logger:    logger,
		metrics:   newMetrics(),
		now:       time.Now,
		health:    func(context.Context) error { return nil },
	}
	for _, opt := range opts {
		if opt != nil {
			opt(h)
		}
	}
	return h
}

func (h *Handler) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(h.accessLog)
	r.Use(middleware.Recoverer)
	r.Use(h.metrics.middleware)

	r.Get("/healthz", h.handleHealthz)
	r.Method(http.MethodGet, "/metrics", h.metrics.handler())

	r.Route("/api", func(r chi.Router) {
		r.Route("/vehicles", func(r chi.Router) {
			r.Get("/", h.handleSearchVehicles)
			r.Post("/", h.handleCreateVehicle)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", h.handleGetVehicle)
				r.Put("/", h.handleUpdateVehicle)
				r.Delete("/", h.handleDeleteVehicle)
				r.Post("/sell", h.handleSellVehicle)
				r.Get("/payments", h.handleListPayments)
				r.Post("/payments", h.handleRecordPayment)
				r.Get("/fees", h.handleListFees)
				r.Post("/fees", h.handleAddFee)
				r.Get("/balance", h.handleBalance)
			})
		})
		r.Route("/owners", func(r chi.Router) {
			r.Get("/", h.handleSearchOwners)
			r.Post("/", h.handleCreateOwner)
			r.Get("/{id}", h.handleGetOwner)
			r.Put("/{id}", h.handleUpdateOwner)
			r.Delete("/{id}", h.handleDeleteOwner)
		})
		r.Delete("/payments/{id}", h.handleDeletePayment)
		r.Get("/payments/{id}/receipt.pdf", h.handleReceiptPDF)
		r.Delete("/fees/{id}", h.handleDeleteFee)

		r.Get("/settings/{category}", h.handleLookupSettings)
		r.Post("/settings", h.handleSaveSetting)
		r.Delete("/settings/{category}/{id}", h.handleDeleteSetting)

		r.Post("/rocdate/input", h.handleRocDateInput)
		r.Get("/rocdate/display", h.handleRocDateDisplay)
	})

	return r
}

func (h *Handler) handleHealthz(w http.ResponseWriter, r *http.Request) {
	if err := h.health(r.Context()); err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
