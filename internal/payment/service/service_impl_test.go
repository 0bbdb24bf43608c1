package service

import (
	"context"
	"testing"
	"time"

	"github.com/bwmarrin/snowflake"
	orderdomain "github.com/craftshop/backoffice/internal/order/domain"
	orderrepo "github.com/craftshop/backoffice/internal/order/repository"
	"github.com/craftshop/backoffice/internal/payment/domain"
	"github.com/craftshop/backoffice/internal/payment/repository"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newTestService(t *testing.T) (domain.Service, *gorm.DB, *snowflake.Node) {
	t.Helper()

	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, gdb.AutoMigrate(&orderdomain.Order{}, &orderdomain.Item{}, &domain.Record{}))

	node, err := snowflake.NewNode(1)
	require.NoError(t, err)

	svc := New(Params{
		DB:        gdb,
		Log:       zap.NewNop(),
		GenID:     node,
		Repo:      repository.Provide(),
		OrderRepo: orderrepo.Provide(),
	})
	return svc, gdb, node
}

func seedOrder(t *testing.T, db *gorm.DB, node *snowflake.Node, grandTotal int64) *orderdomain.Order {
	t.Helper()

	order := &orderdomain.Order{
		ID:            node.Generate(),
		Number:        "ORD-20260115-0001",
		CustomerID:    node.Generate(),
		CustomerName:  "Asha Traders",
		OrderDate:     time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC),
		Subtotal:      grandTotal,
		GrandTotal:    grandTotal,
		PaymentStatus: domain.StatusUnpaid,
	}
	require.NoError(t, db.Create(order).Error)
	return order
}

func TestRecordPartialThenSettle(t *testing.T) {
	svc, db, node := newTestService(t)
	order := seedOrder(t, db, node, 100000) // Rs 1000.00

	view, err := svc.Record(context.Background(), domain.RecordPaymentRequest{
		OrderID: order.ID.String(),
		Amount:  40000,
		Method:  domain.MethodUPI,
		Note:    "advance",
	})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusPartiallyPaid, view.Status)
	assert.Equal(t, int64(40000), view.PaidAmount)
	assert.Equal(t, int64(60000), view.Balance)
	require.NotNil(t, view.InitialPayment)
	assert.Nil(t, view.FinalPayment)

	view, err = svc.Record(context.Background(), domain.RecordPaymentRequest{
		OrderID: order.ID.String(),
		Amount:  60000,
		Method:  domain.MethodCash,
	})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusPaid, view.Status)
	assert.Equal(t, int64(0), view.Balance)
	require.NotNil(t, view.FinalPayment)
	assert.Equal(t, domain.MethodCash, view.FinalPayment.Method)

	// the order row carries the derived state
	var stored orderdomain.Order
	require.NoError(t, db.First(&stored, "id = ?", order.ID).Error)
	assert.Equal(t, int64(100000), stored.PaidAmount)
	assert.Equal(t, domain.StatusPaid, stored.PaymentStatus)
}

func TestRecordRejectsOverpayment(t *testing.T) {
	svc, db, node := newTestService(t)
	order := seedOrder(t, db, node, 50000)

	_, err := svc.Record(context.Background(), domain.RecordPaymentRequest{
		OrderID: order.ID.String(),
		Amount:  50001,
		Method:  domain.MethodUPI,
	})
	assert.ErrorIs(t, err, domain.ErrOverpayment)

	// nothing was written
	ledger, err := svc.LedgerForOrder(context.Background(), order.ID.String())
	require.NoError(t, err)
	assert.Empty(t, ledger.Records)
	assert.Equal(t, domain.StatusUnpaid, ledger.Status)
}

func TestMarkFullyPaid(t *testing.T) {
	svc, db, node := newTestService(t)
	order := seedOrder(t, db, node, 123000)

	_, err := svc.Record(context.Background(), domain.RecordPaymentRequest{
		OrderID: order.ID.String(),
		Amount:  23000,
		Method:  domain.MethodBankTransfer,
	})
	require.NoError(t, err)

	view, err := svc.MarkFullyPaid(context.Background(), domain.MarkFullyPaidRequest{
		OrderID: order.ID.String(),
		Method:  domain.MethodCash,
	})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusPaid, view.Status)
	require.Len(t, view.Records, 2)
	assert.Equal(t, int64(100000), view.Records[1].Amount)
	assert.Equal(t, domain.ClosingNote, view.Records[1].Note)

	_, err = svc.MarkFullyPaid(context.Background(), domain.MarkFullyPaidRequest{
		OrderID: order.ID.String(),
		Method:  domain.MethodCash,
	})
	assert.ErrorIs(t, err, domain.ErrAlreadyPaid)
}

func TestLedgerForOrderUnknownID(t *testing.T) {
	svc, _, node := newTestService(t)

	_, err := svc.LedgerForOrder(context.Background(), node.Generate().String())
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = svc.LedgerForOrder(context.Background(), "not-a-snowflake")
	assert.ErrorIs(t, err, domain.ErrInvalidOrderID)
}
