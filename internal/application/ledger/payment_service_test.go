package ledger

import (
	"context"
	"testing"
	"time"

	"github.com/adagency/backoffice/internal/domain/ledger"
	"github.com/adagency/backoffice/internal/domain/shared"
	"github.com/adagency/backoffice/internal/domain/shared/valueobject"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// billWithDebt signs a contract so the fixture holds one bill with the
// given outstanding debt.
func billWithDebt(t *testing.T, f *fixture, debt float64) uuid.UUID {
	t.Helper()
	resp, err := f.contracts.CreateContract(context.Background(), createReq(uuid.New(), uuid.New(), "facebook-ads", debt, 1.0))
	require.NoError(t, err)
	return *resp.BillID
}

func TestPaymentService_Create_SettlesDebt(t *testing.T) {
	f := newFixture()
	billID := billWithDebt(t, f, 500)

	resp, err := f.payments.CreatePayment(context.Background(), CreatePaymentRequest{
		BillID: billID,
		Date:   time.Now(),
		Amount: valueobject.NewMoneyFromFloat(500),
		Method: ledger.PaymentMethodCash,
	})
	require.NoError(t, err)

	assert.Equal(t, "0.00", resp.Bill.DebtAmount.String())
	assert.Equal(t, "0.00", resp.Bill.DepositAmount.String())
	assert.Equal(t, ledger.BillStatusCompleted, resp.Bill.Status)
	assert.False(t, resp.IsDeposit)
	assert.Contains(t, f.publisher.eventTypes(), ledger.EventTypePaymentRecorded)
}

func TestPaymentService_Create_OverflowBecomesDeposit(t *testing.T) {
	f := newFixture()
	billID := billWithDebt(t, f, 500)

	resp, err := f.payments.CreatePayment(context.Background(), CreatePaymentRequest{
		BillID: billID,
		Amount: valueobject.NewMoneyFromFloat(800),
	})
	require.NoError(t, err)

	assert.Equal(t, "0.00", resp.Bill.DebtAmount.String())
	assert.Equal(t, "300.00", resp.Bill.DepositAmount.String())
	assert.Equal(t, ledger.BillStatusDeposit, resp.Bill.Status)
}

func TestPaymentService_Create_BillNotFound(t *testing.T) {
	f := newFixture()
	_, err := f.payments.CreatePayment(context.Background(), CreatePaymentRequest{
		BillID: uuid.New(),
		Amount: valueobject.NewMoneyFromFloat(10),
	})
	assert.ErrorIs(t, err, shared.ErrNotFound)
}

func TestPaymentService_Create_NegativeAmount(t *testing.T) {
	f := newFixture()
	billID := billWithDebt(t, f, 500)

	_, err := f.payments.CreatePayment(context.Background(), CreatePaymentRequest{
		BillID: billID,
		Amount: valueobject.NewMoneyFromFloat(-10),
	})
	require.Error(t, err)

	// The bill must be untouched.
	bill := f.store.bills[billID]
	assert.Equal(t, "500.00", bill.DebtAmount.String())
}

func TestPaymentService_Update_Rebalances(t *testing.T) {
	f := newFixture()
	billID := billWithDebt(t, f, 500)

	created, err := f.payments.CreatePayment(context.Background(), CreatePaymentRequest{
		BillID: billID,
		Amount: valueobject.NewMoneyFromFloat(200),
	})
	require.NoError(t, err)

	resp, err := f.payments.UpdatePayment(context.Background(), created.ID, UpdatePaymentRequest{
		Amount: shared.Some(valueobject.NewMoneyFromFloat(600)),
	})
	require.NoError(t, err)

	assert.Equal(t, "600.00", resp.Amount.String())
	assert.Equal(t, "0.00", resp.Bill.DebtAmount.String())
	assert.Equal(t, "100.00", resp.Bill.DepositAmount.String())
}

func TestPaymentService_Update_NotFound(t *testing.T) {
	f := newFixture()
	_, err := f.payments.UpdatePayment(context.Background(), uuid.New(), UpdatePaymentRequest{})
	assert.ErrorIs(t, err, shared.ErrNotFound)
}

func TestPaymentService_Delete_RecomputesBill(t *testing.T) {
	f := newFixture()
	billID := billWithDebt(t, f, 500)

	created, err := f.payments.CreatePayment(context.Background(), CreatePaymentRequest{
		BillID: billID,
		Amount: valueobject.NewMoneyFromFloat(500),
	})
	require.NoError(t, err)
	assert.Equal(t, ledger.BillStatusCompleted, created.Bill.Status)

	require.NoError(t, f.payments.DeletePayment(context.Background(), created.ID))

	bill := f.store.bills[billID]
	assert.Equal(t, "500.00", bill.DebtAmount.String())
	assert.Equal(t, "0.00", bill.DepositAmount.String())
	assert.Equal(t, ledger.BillStatusDebt, bill.Status)
	assert.Contains(t, f.publisher.eventTypes(), ledger.EventTypePaymentRemoved)
}

func TestPaymentService_Delete_KeepsEmptyBill(t *testing.T) {
	f := newFixture()
	billID := billWithDebt(t, f, 500)

	created, err := f.payments.CreatePayment(context.Background(), CreatePaymentRequest{
		BillID: billID,
		Amount: valueobject.NewMoneyFromFloat(100),
	})
	require.NoError(t, err)

	require.NoError(t, f.payments.DeletePayment(context.Background(), created.ID))
	assert.Contains(t, f.store.bills, billID)
}

func TestPaymentService_ListPaymentsForBill(t *testing.T) {
	f := newFixture()
	billID := billWithDebt(t, f, 500)

	older := time.Now().Add(-time.Hour)
	_, err := f.payments.CreatePayment(context.Background(), CreatePaymentRequest{
		BillID: billID, Date: older, Amount: valueobject.NewMoneyFromFloat(100),
	})
	require.NoError(t, err)
	_, err = f.payments.CreatePayment(context.Background(), CreatePaymentRequest{
		BillID: billID, Date: time.Now(), Amount: valueobject.NewMoneyFromFloat(200),
	})
	require.NoError(t, err)

	items, totals, err := f.payments.ListPaymentsForBill(context.Background(), billID)
	require.NoError(t, err)

	require.Len(t, items, 2)
	// Newest first for display.
	assert.Equal(t, "200.00", items[0].Amount.String())
	assert.Equal(t, "100.00", items[1].Amount.String())

	require.NotNil(t, totals)
	assert.Equal(t, "200.00", totals.DebtAmount.String())
	assert.Equal(t, ledger.BillStatusDebt, totals.Status)
}

func TestPaymentService_ListPaymentsForBill_NotFound(t *testing.T) {
	f := newFixture()
	_, _, err := f.payments.ListPaymentsForBill(context.Background(), uuid.New())
	assert.ErrorIs(t, err, shared.ErrNotFound)
}
