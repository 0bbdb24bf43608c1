package service

import (
	"context"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/craftshop/backoffice/internal/money"
	orderdomain "github.com/craftshop/backoffice/internal/order/domain"
	"github.com/craftshop/backoffice/internal/payment/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB        *gorm.DB
	Log       *zap.Logger
	GenID     *snowflake.Node
	Repo      domain.Repository
	OrderRepo orderdomain.Repository
}

type Service struct {
	db        *gorm.DB
	log       *zap.Logger
	genID     *snowflake.Node
	repo      domain.Repository
	orderRepo orderdomain.Repository
}

func New(p Params) domain.Service {
	return &Service{
		db:        p.DB,
		log:       p.Log.Named("payment.service"),
		genID:     p.GenID,
		repo:      p.Repo,
		orderRepo: p.OrderRepo,
	}
}

// Record appends a payment to an order's ledger and persists the derived
// paid amount and status in the same transaction.
func (s *Service) Record(ctx context.Context, req domain.RecordPaymentRequest) (domain.LedgerView, error) {
	paidAt := time.Now().UTC()
	if req.PaidAt != nil && !req.PaidAt.IsZero() {
		paidAt = req.PaidAt.UTC()
	}
	return s.apply(ctx, req.OrderID, func(ledger domain.Ledger) (domain.Ledger, domain.Record, error) {
		return ledger.Append(money.FromPaise(req.Amount), req.Method, strings.TrimSpace(req.Note), paidAt)
	})
}

// MarkFullyPaid posts a single closing payment covering the balance.
func (s *Service) MarkFullyPaid(ctx context.Context, req domain.MarkFullyPaidRequest) (domain.LedgerView, error) {
	now := time.Now().UTC()
	return s.apply(ctx, req.OrderID, func(ledger domain.Ledger) (domain.Ledger, domain.Record, error) {
		return ledger.MarkFullyPaid(req.Method, now)
	})
}

// LedgerForOrder reconstructs the ledger view without mutating anything.
func (s *Service) LedgerForOrder(ctx context.Context, orderID string) (domain.LedgerView, error) {
	id, err := snowflake.ParseString(strings.TrimSpace(orderID))
	if err != nil {
		return domain.LedgerView{}, domain.ErrInvalidOrderID
	}

	order, err := s.orderRepo.FindByID(ctx, s.db, id)
	if err != nil {
		return domain.LedgerView{}, err
	}
	if order == nil {
		return domain.LedgerView{}, domain.ErrNotFound
	}

	records, err := s.repo.ListByOrder(ctx, s.db, id)
	if err != nil {
		return domain.LedgerView{}, err
	}

	ledger := domain.Ledger{
		TotalAmount: money.FromPaise(order.GrandTotal),
		Records:     records,
	}
	return buildView(order.ID, ledger), nil
}

func (s *Service) apply(
	ctx context.Context,
	orderID string,
	op func(domain.Ledger) (domain.Ledger, domain.Record, error),
) (domain.LedgerView, error) {
	id, err := snowflake.ParseString(strings.TrimSpace(orderID))
	if err != nil {
		return domain.LedgerView{}, domain.ErrInvalidOrderID
	}

	var view domain.LedgerView
	err = s.db.Transaction(func(tx *gorm.DB) error {
		order, err := s.orderRepo.FindByID(ctx, tx, id)
		if err != nil {
			return err
		}
		if order == nil {
			return domain.ErrNotFound
		}

		records, err := s.repo.ListByOrder(ctx, tx, id)
		if err != nil {
			return err
		}

		ledger := domain.Ledger{
			TotalAmount: money.FromPaise(order.GrandTotal),
			Records:     records,
		}

		updated, rec, err := op(ledger)
		if err != nil {
			return err
		}

		rec.ID = s.genID.Generate()
		rec.OrderID = id
		if err := s.repo.InsertRecord(ctx, tx, &rec); err != nil {
			return err
		}

		// reflect the stored record in the derived view
		updated.Records[len(updated.Records)-1] = rec

		if err := s.orderRepo.UpdatePaymentState(ctx, tx, id,
			updated.PaidAmount().Paise(), updated.Status()); err != nil {
			return err
		}

		view = buildView(id, updated)
		return nil
	})
	if err != nil {
		return domain.LedgerView{}, err
	}

	s.log.Info("payment recorded",
		zap.String("order_id", view.OrderID),
		zap.Int64("paid_amount", view.PaidAmount),
		zap.String("status", string(view.Status)),
	)
	return view, nil
}

func buildView(orderID snowflake.ID, ledger domain.Ledger) domain.LedgerView {
	return domain.LedgerView{
		OrderID:        orderID.String(),
		TotalAmount:    ledger.TotalAmount.Paise(),
		PaidAmount:     ledger.PaidAmount().Paise(),
		Balance:        ledger.Balance().Paise(),
		Status:         ledger.Status(),
		Records:        ledger.Records,
		InitialPayment: ledger.InitialPayment(),
		FinalPayment:   ledger.FinalPayment(),
	}
}
