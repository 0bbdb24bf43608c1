package domain

import (
	"testing"
	"time"

	"github.com/craftshop/backoffice/internal/money"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testTime = time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)

func TestClassifyStatus(t *testing.T) {
	total := money.FromRupees(1000)
	cases := []struct {
		name string
		paid money.Amount
		want Status
	}{
		{"nothing paid", 0, StatusUnpaid},
		{"partial", money.FromRupees(400), StatusPartiallyPaid},
		{"one paisa short", total - 1, StatusPartiallyPaid},
		{"exactly paid", total, StatusPaid},
		{"overpaid snapshot", total + money.FromRupees(10), StatusPaid},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ClassifyStatus(total, tc.paid))
		})
	}
}

func TestAppendAccumulates(t *testing.T) {
	ledger := Ledger{TotalAmount: money.FromRupees(1000)}

	ledger, rec, err := ledger.Append(money.FromRupees(300), MethodUPI, "advance", testTime)
	require.NoError(t, err)
	assert.Equal(t, money.FromRupees(300), rec.PaidAmount())
	assert.Equal(t, StatusPartiallyPaid, ledger.Status())

	ledger, _, err = ledger.Append(money.FromRupees(200), MethodCash, "", testTime)
	require.NoError(t, err)
	assert.Equal(t, money.FromRupees(500), ledger.PaidAmount())
	assert.Equal(t, money.FromRupees(500), ledger.Balance())

	ledger, _, err = ledger.Append(money.FromRupees(500), MethodBankTransfer, "", testTime)
	require.NoError(t, err)
	assert.Equal(t, StatusPaid, ledger.Status())
	assert.Equal(t, money.Amount(0), ledger.Balance())
}

func TestAppendRejectsInvalidInput(t *testing.T) {
	ledger := Ledger{TotalAmount: money.FromRupees(1000)}

	_, _, err := ledger.Append(0, MethodCash, "", testTime)
	assert.ErrorIs(t, err, ErrInvalidAmount)

	_, _, err = ledger.Append(money.FromRupees(-5), MethodCash, "", testTime)
	assert.ErrorIs(t, err, ErrInvalidAmount)

	_, _, err = ledger.Append(money.FromRupees(10), Method("IOU"), "", testTime)
	assert.ErrorIs(t, err, ErrInvalidMethod)

	_, _, err = ledger.Append(money.FromRupees(1001), MethodUPI, "", testTime)
	assert.ErrorIs(t, err, ErrOverpayment)
}

func TestAppendDoesNotMutateReceiver(t *testing.T) {
	ledger := Ledger{TotalAmount: money.FromRupees(1000)}
	updated, _, err := ledger.Append(money.FromRupees(100), MethodUPI, "", testTime)
	require.NoError(t, err)
	assert.Len(t, ledger.Records, 0)
	assert.Len(t, updated.Records, 1)
}

func TestMarkFullyPaid(t *testing.T) {
	ledger := Ledger{TotalAmount: money.FromRupees(1000)}
	ledger, _, err := ledger.Append(money.FromRupees(250), MethodUPI, "advance", testTime)
	require.NoError(t, err)

	ledger, rec, err := ledger.MarkFullyPaid(MethodCash, testTime)
	require.NoError(t, err)
	assert.Equal(t, money.FromRupees(750), rec.PaidAmount())
	assert.Equal(t, ClosingNote, rec.Note)
	assert.Equal(t, money.Amount(0), ledger.Balance())
	assert.Equal(t, StatusPaid, ledger.Status())

	// second call fails without mutation
	again, _, err := ledger.MarkFullyPaid(MethodCash, testTime)
	assert.ErrorIs(t, err, ErrAlreadyPaid)
	assert.Equal(t, ledger.Records, again.Records)
}

func TestMarkFullyPaidOnUnpaidOrder(t *testing.T) {
	ledger := Ledger{TotalAmount: money.FromRupees(500)}
	ledger, rec, err := ledger.MarkFullyPaid(MethodBankTransfer, testTime)
	require.NoError(t, err)
	assert.Equal(t, money.FromRupees(500), rec.PaidAmount())
	assert.Equal(t, StatusPaid, ledger.Status())
}

func TestInitialAndFinalPayment(t *testing.T) {
	ledger := Ledger{TotalAmount: money.FromRupees(1000)}
	assert.Nil(t, ledger.InitialPayment())
	assert.Nil(t, ledger.FinalPayment())

	ledger, _, err := ledger.Append(money.FromRupees(400), MethodUPI, "advance", testTime)
	require.NoError(t, err)
	require.NotNil(t, ledger.InitialPayment())
	assert.Equal(t, "advance", ledger.InitialPayment().Note)
	assert.Nil(t, ledger.FinalPayment(), "final payment only exists once settled")

	ledger, _, err = ledger.MarkFullyPaid(MethodCash, testTime)
	require.NoError(t, err)
	require.NotNil(t, ledger.FinalPayment())
	assert.Equal(t, MethodCash, ledger.FinalPayment().Method)
}
