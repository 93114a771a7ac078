package ledger

import (
	"context"
	"testing"

	"github.com/adagency/backoffice/internal/domain/ledger"
	"github.com/adagency/backoffice/internal/domain/shared"
	"github.com/adagency/backoffice/internal/domain/shared/valueobject"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBillService_GetBill(t *testing.T) {
	f := newFixture()
	billID := billWithDebt(t, f, 500)

	resp, err := f.bills.GetBill(context.Background(), billID)
	require.NoError(t, err)
	assert.Equal(t, billID, resp.ID)
	assert.Equal(t, "500.00", resp.TotalMoney.String())

	_, err = f.bills.GetBill(context.Background(), uuid.New())
	assert.ErrorIs(t, err, shared.ErrNotFound)
}

func TestBillService_ListBills_FilterByStatus(t *testing.T) {
	f := newFixture()
	billWithDebt(t, f, 500)
	billWithDebt(t, f, 300)

	status := ledger.BillStatusDebt
	page, err := f.bills.ListBills(context.Background(), ledger.BillFilter{Status: &status})
	require.NoError(t, err)
	assert.Equal(t, int64(2), page.Total)

	status = ledger.BillStatusCompleted
	page, err = f.bills.ListBills(context.Background(), ledger.BillFilter{Status: &status})
	require.NoError(t, err)
	assert.Equal(t, int64(0), page.Total)
}

func TestBillService_UpdateBill(t *testing.T) {
	f := newFixture()
	billID := billWithDebt(t, f, 500)

	resp, err := f.bills.UpdateBill(context.Background(), billID, UpdateBillRequest{
		DepositAmount: shared.Some(valueobject.NewMoneyFromFloat(50)),
		Note:          shared.Some("manual correction"),
	})
	require.NoError(t, err)

	assert.Equal(t, "50.00", resp.DepositAmount.String())
	assert.Equal(t, "manual correction", resp.Note)
	// Debt still outstanding keeps the bill in debt status.
	assert.Equal(t, ledger.BillStatusDebt, resp.Status)
}

func TestBillService_UpdateBill_RejectsNegativeDeposit(t *testing.T) {
	f := newFixture()
	billID := billWithDebt(t, f, 500)

	_, err := f.bills.UpdateBill(context.Background(), billID, UpdateBillRequest{
		DepositAmount: shared.Some(valueobject.NewMoneyFromFloat(-1)),
	})
	assert.Error(t, err)
}

func TestBillService_DeleteBill_CascadesPayments(t *testing.T) {
	f := newFixture()
	billID := billWithDebt(t, f, 500)

	_, err := f.payments.CreatePayment(context.Background(), CreatePaymentRequest{
		BillID: billID,
		Amount: valueobject.NewMoneyFromFloat(100),
	})
	require.NoError(t, err)

	require.NoError(t, f.bills.DeleteBill(context.Background(), billID))

	assert.NotContains(t, f.store.bills, billID)
	assert.Empty(t, f.store.payments)
	assert.Contains(t, f.publisher.eventTypes(), ledger.EventTypeBillClosed)
}

func TestBillService_DeleteBill_DetachesContracts(t *testing.T) {
	f := newFixture()

	resp, err := f.contracts.CreateContract(context.Background(), createReq(uuid.New(), uuid.New(), "facebook-ads", 500, 1.0))
	require.NoError(t, err)
	billID := *resp.BillID

	require.NoError(t, f.bills.DeleteBill(context.Background(), billID))

	assert.NotContains(t, f.store.bills, billID)
	contract := f.store.contracts[resp.ID]
	require.NotNil(t, contract)
	assert.Nil(t, contract.BillID)
}

func TestBillService_DeleteBill_NotFound(t *testing.T) {
	f := newFixture()
	err := f.bills.DeleteBill(context.Background(), uuid.New())
	assert.ErrorIs(t, err, shared.ErrNotFound)
}
