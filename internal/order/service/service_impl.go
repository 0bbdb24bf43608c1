package service

import (
	"context"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	customerdomain "github.com/craftshop/backoffice/internal/customer/domain"
	inventorydomain "github.com/craftshop/backoffice/internal/inventory/domain"
	"github.com/craftshop/backoffice/internal/money"
	"github.com/craftshop/backoffice/internal/order/domain"
	"github.com/craftshop/backoffice/internal/order/format"
	paymentdomain "github.com/craftshop/backoffice/internal/payment/domain"
	"github.com/craftshop/backoffice/internal/pricing"
	"github.com/craftshop/backoffice/pkg/db/pagination"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB            *gorm.DB
	Log           *zap.Logger
	GenID         *snowflake.Node
	Repo          domain.Repository
	CustomerRepo  customerdomain.Repository
	InventoryRepo inventorydomain.Repository
}

type Service struct {
	db            *gorm.DB
	log           *zap.Logger
	genID         *snowflake.Node
	repo          domain.Repository
	customerRepo  customerdomain.Repository
	inventoryRepo inventorydomain.Repository
}

func New(p Params) domain.Service {
	return &Service{
		db:            p.DB,
		log:           p.Log.Named("order.service"),
		genID:         p.GenID,
		repo:          p.Repo,
		customerRepo:  p.CustomerRepo,
		inventoryRepo: p.InventoryRepo,
	}
}

// Create prices and persists a new order in one transaction: stock is
// reserved per line, totals are computed from product base prices, and an
// optional initial payment seeds the ledger.
func (s *Service) Create(ctx context.Context, req domain.CreateOrderRequest) (domain.Order, error) {
	if len(req.Lines) == 0 {
		return domain.Order{}, domain.ErrEmptyOrder
	}

	customerID, err := snowflake.ParseString(strings.TrimSpace(req.CustomerID))
	if err != nil {
		return domain.Order{}, domain.ErrInvalidCustomer
	}

	orderDate := time.Now().UTC()
	if req.OrderDate != nil && !req.OrderDate.IsZero() {
		orderDate = req.OrderDate.UTC()
	}

	var created domain.Order
	err = s.db.Transaction(func(tx *gorm.DB) error {
		customer, err := s.customerRepo.FindByID(ctx, tx, customerID)
		if err != nil {
			return err
		}
		if customer == nil {
			return domain.ErrInvalidCustomer
		}

		lineItems := make([]pricing.LineItem, 0, len(req.Lines))
		orderItems := make([]domain.Item, 0, len(req.Lines))
		for _, line := range req.Lines {
			productID, err := snowflake.ParseString(strings.TrimSpace(line.ProductID))
			if err != nil {
				return domain.ErrUnknownProduct
			}
			product, err := s.inventoryRepo.FindByID(ctx, tx, productID)
			if err != nil {
				return err
			}
			if product == nil {
				return domain.ErrUnknownProduct
			}

			item, err := pricing.ComputeLineItem(
				product.SKU,
				product.Name,
				product.UnitBasePrice(),
				line.Quantity,
				product.GSTRate,
			)
			if err != nil {
				return err
			}

			if err := s.inventoryRepo.DecrementStock(ctx, tx, productID, line.Quantity); err != nil {
				return err
			}

			lineItems = append(lineItems, item)
			orderItems = append(orderItems, domain.Item{
				ID:            s.genID.Generate(),
				ProductID:     productID,
				Name:          item.Name,
				Quantity:      item.Quantity,
				UnitBasePrice: item.UnitBasePrice.Paise(),
				GSTRate:       item.GSTRate,
				LineSubtotal:  item.LineSubtotal.Paise(),
				GSTAmount:     item.GSTAmount.Paise(),
				LineTotal:     item.LineTotal.Paise(),
			})
		}

		totals, err := pricing.ComputeOrderTotals(
			lineItems,
			money.FromPaise(req.ShippingCost),
			money.FromPaise(req.Discount),
		)
		if err != nil {
			return err
		}

		seq, err := s.repo.CountByDay(ctx, tx, orderDate)
		if err != nil {
			return err
		}
		number, err := format.FormatDocumentNumber(format.DefaultOrderNumberTemplate, orderDate, seq+1)
		if err != nil {
			return err
		}

		now := time.Now().UTC()
		orderID := s.genID.Generate()
		for i := range orderItems {
			orderItems[i].OrderID = orderID
			orderItems[i].CreatedAt = now
		}

		order := domain.Order{
			ID:            orderID,
			Number:        number,
			CustomerID:    customerID,
			CustomerName:  customer.Name,
			OrderDate:     orderDate,
			Items:         orderItems,
			Subtotal:      totals.Subtotal.Paise(),
			GSTTotal:      totals.GSTTotal.Paise(),
			ShippingCost:  totals.ShippingCost.Paise(),
			Discount:      totals.Discount.Paise(),
			GrandTotal:    totals.GrandTotal.Paise(),
			PaymentStatus: paymentdomain.StatusUnpaid,
			Notes:         strings.TrimSpace(req.Notes),
			CreatedAt:     now,
			UpdatedAt:     now,
		}

		order.ItemsSummary = order.ItemSummary()

		if err := s.repo.Insert(ctx, tx, &order); err != nil {
			return err
		}

		if req.InitialPayment != nil {
			ledger := paymentdomain.Ledger{TotalAmount: totals.GrandTotal}
			updated, rec, err := ledger.Append(
				money.FromPaise(req.InitialPayment.Amount),
				req.InitialPayment.Method,
				req.InitialPayment.Note,
				orderDate,
			)
			if err != nil {
				return err
			}
			rec.ID = s.genID.Generate()
			rec.OrderID = orderID
			if err := tx.WithContext(ctx).Create(&rec).Error; err != nil {
				return err
			}
			order.PaidAmount = updated.PaidAmount().Paise()
			order.PaymentStatus = updated.Status()
			if err := s.repo.UpdatePaymentState(ctx, tx, orderID, order.PaidAmount, order.PaymentStatus); err != nil {
				return err
			}
		}

		created = order
		return nil
	})
	if err != nil {
		return domain.Order{}, err
	}

	s.log.Info("order created",
		zap.String("order_id", created.ID.String()),
		zap.String("number", created.Number),
		zap.Int64("grand_total", created.GrandTotal),
	)
	return created, nil
}

func (s *Service) List(ctx context.Context, req domain.ListOrderRequest) (domain.ListOrderResponse, error) {
	pageSize := req.PageSize
	if pageSize <= 0 {
		pageSize = 50
	}

	items, err := s.repo.List(ctx, s.db, domain.ListOrderFilter{
		CustomerID:    strings.TrimSpace(req.CustomerID),
		PaymentStatus: strings.TrimSpace(req.PaymentStatus),
		DateFrom:      req.DateFrom,
		DateTo:        req.DateTo,
	}, pagination.Pagination{
		PageToken: req.PageToken,
		PageSize:  int(pageSize),
	})
	if err != nil {
		return domain.ListOrderResponse{}, err
	}

	pageInfo := pagination.BuildCursorPageInfo(items, pageSize, func(order *domain.Order) string {
		token, err := pagination.EncodeCursor(pagination.Cursor{
			ID:        order.ID.String(),
			CreatedAt: order.CreatedAt.Format(time.RFC3339),
		})
		if err != nil {
			return ""
		}
		return token
	})
	if pageInfo != nil && pageInfo.HasMore && len(items) > int(pageSize) {
		items = items[:pageSize]
	}

	orders := make([]domain.Order, 0, len(items))
	for _, item := range items {
		if item == nil {
			continue
		}
		orders = append(orders, *item)
	}

	resp := domain.ListOrderResponse{Orders: orders}
	if pageInfo != nil {
		resp.PageInfo = *pageInfo
	}
	return resp, nil
}

func (s *Service) GetByID(ctx context.Context, req domain.GetOrderRequest) (domain.Order, error) {
	id, err := snowflake.ParseString(strings.TrimSpace(req.ID))
	if err != nil {
		return domain.Order{}, domain.ErrInvalidID
	}

	order, err := s.repo.FindByID(ctx, s.db, id)
	if err != nil {
		return domain.Order{}, err
	}
	if order == nil {
		return domain.Order{}, domain.ErrNotFound
	}
	return *order, nil
}
