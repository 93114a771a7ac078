package ledger

import (
	"context"
	"testing"
	"time"

	"github.com/adagency/backoffice/internal/domain/ledger"
	"github.com/adagency/backoffice/internal/domain/partner"
	"github.com/adagency/backoffice/internal/domain/shared"
	"github.com/adagency/backoffice/internal/domain/shared/valueobject"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fixture struct {
	store     *memStore
	budgets   *memBudgetReader
	publisher *recordingPublisher
	contracts *ContractService
	payments  *PaymentService
	bills     *BillService
}

func newFixture() *fixture {
	store := newMemStore()
	scope := store.scope()
	budgets := newMemBudgetReader()
	publisher := &recordingPublisher{}
	logger := zap.NewNop()
	return &fixture{
		store:     store,
		budgets:   budgets,
		publisher: publisher,
		contracts: NewContractService(scope, budgets, publisher, logger),
		payments:  NewPaymentService(scope, publisher, logger),
		bills:     NewBillService(scope, publisher, logger),
	}
}

func createReq(customerID, budgetID uuid.UUID, product string, totalCost float64, customerRate float64) CreateContractRequest {
	return CreateContractRequest{
		Date:         time.Now(),
		CustomerID:   customerID,
		BudgetID:     budgetID,
		Product:      product,
		ProductType:  ledger.ProductTypeLegal,
		TotalCost:    valueobject.NewMoneyFromFloat(totalCost),
		SupplierRate: decimal.NewFromFloat(0.4),
		CustomerRate: decimal.NewFromFloat(customerRate),
	}
}

func TestContractService_Create_RatesDefaultFromBudget(t *testing.T) {
	f := newFixture()

	budget, err := partner.NewBudget(
		uuid.New(), uuid.New(),
		time.Now(),
		valueobject.NewMoneyFromFloat(5000),
		ledger.ProductTypeLegal,
		decimal.NewFromFloat(0.35), decimal.NewFromFloat(0.55),
	)
	require.NoError(t, err)
	f.budgets.budgets[budget.ID] = budget

	req := createReq(uuid.New(), budget.ID, "google-ads", 1000, 0)
	req.SupplierRate = decimal.Zero

	resp, err := f.contracts.CreateContract(context.Background(), req)
	require.NoError(t, err)

	assert.True(t, resp.SupplierRate.Equal(decimal.NewFromFloat(0.35)))
	assert.True(t, resp.CustomerRate.Equal(decimal.NewFromFloat(0.55)))
	require.NotNil(t, resp.Bill)
	assert.Equal(t, "550.00", resp.Bill.TotalMoney.String())
}

func TestContractService_Create_ExplicitRatesWin(t *testing.T) {
	f := newFixture()

	budget, err := partner.NewBudget(
		uuid.New(), uuid.New(),
		time.Now(),
		valueobject.NewMoneyFromFloat(5000),
		ledger.ProductTypeLegal,
		decimal.NewFromFloat(0.35), decimal.NewFromFloat(0.55),
	)
	require.NoError(t, err)
	f.budgets.budgets[budget.ID] = budget

	resp, err := f.contracts.CreateContract(context.Background(), createReq(uuid.New(), budget.ID, "google-ads", 1000, 0.5))
	require.NoError(t, err)

	assert.True(t, resp.CustomerRate.Equal(decimal.NewFromFloat(0.5)))
	assert.Equal(t, "500.00", resp.Bill.TotalMoney.String())
}

func TestContractService_Create_NewBill(t *testing.T) {
	f := newFixture()

	resp, err := f.contracts.CreateContract(context.Background(), createReq(uuid.New(), uuid.New(), "facebook-ads", 1000, 0.5))
	require.NoError(t, err)

	require.NotNil(t, resp.Bill)
	assert.Equal(t, "500.00", resp.Bill.TotalMoney.String())
	assert.Equal(t, "500.00", resp.Bill.DebtAmount.String())
	assert.Equal(t, "0.00", resp.Bill.DepositAmount.String())
	assert.Equal(t, ledger.BillStatusDebt, resp.Bill.Status)

	require.NotNil(t, resp.BillID)
	assert.Len(t, f.store.bills, 1)
	assert.Empty(t, f.store.payments)
	assert.Contains(t, f.publisher.eventTypes(), ledger.EventTypeContractSigned)
	assert.Contains(t, f.publisher.eventTypes(), ledger.EventTypeBillOpened)
}

func TestContractService_Create_WithSigningPayment(t *testing.T) {
	f := newFixture()

	req := createReq(uuid.New(), uuid.New(), "facebook-ads", 1000, 0.5)
	req.CustomerActuallyPaid = shared.Some(valueobject.NewMoneyFromFloat(700))

	resp, err := f.contracts.CreateContract(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, "0.00", resp.Bill.DebtAmount.String())
	assert.Equal(t, "200.00", resp.Bill.DepositAmount.String())
	assert.Equal(t, ledger.BillStatusDeposit, resp.Bill.Status)

	deposits := f.store.depositPayments(resp.Bill.BillID)
	require.Len(t, deposits, 1)
	assert.Equal(t, "700.00", deposits[0].Amount.String())
	assert.Equal(t, ledger.PaymentMethodTransfer, deposits[0].Method)
}

func TestContractService_Create_JoinsGroupBill(t *testing.T) {
	f := newFixture()
	customerID, budgetID := uuid.New(), uuid.New()

	first, err := f.contracts.CreateContract(context.Background(), createReq(customerID, budgetID, "google-ads", 1000, 0.5))
	require.NoError(t, err)

	// Same group, different rates, so it is not a duplicate.
	second := createReq(customerID, budgetID, "google-ads", 600, 1.0)
	resp, err := f.contracts.CreateContract(context.Background(), second)
	require.NoError(t, err)

	assert.Equal(t, *first.BillID, *resp.BillID)
	assert.Equal(t, "1100.00", resp.Bill.TotalMoney.String())
	assert.Equal(t, "1100.00", resp.Bill.DebtAmount.String())
	assert.Len(t, f.store.bills, 1)
}

func TestContractService_Create_RejectsDuplicate(t *testing.T) {
	f := newFixture()
	req := createReq(uuid.New(), uuid.New(), "tiktok-ads", 1000, 0.5)

	_, err := f.contracts.CreateContract(context.Background(), req)
	require.NoError(t, err)

	_, err = f.contracts.CreateContract(context.Background(), req)
	require.Error(t, err)
	assert.ErrorIs(t, err, shared.ErrDuplicateContract)
	assert.Len(t, f.store.contracts, 1)
}

func TestContractService_Create_NegativePaidRejected(t *testing.T) {
	f := newFixture()
	req := createReq(uuid.New(), uuid.New(), "x", 100, 1)
	req.CustomerActuallyPaid = shared.Some(valueobject.NewMoneyFromFloat(-5))

	_, err := f.contracts.CreateContract(context.Background(), req)
	assert.Error(t, err)
	assert.Empty(t, f.store.bills)
}

func TestContractService_Update_GroupChange_MovesToFreshBill(t *testing.T) {
	f := newFixture()

	created, err := f.contracts.CreateContract(context.Background(), createReq(uuid.New(), uuid.New(), "facebook-ads", 1000, 0.5))
	require.NoError(t, err)
	oldBillID := *created.BillID

	newCustomer := uuid.New()
	resp, err := f.contracts.UpdateContract(context.Background(), created.ID, UpdateContractRequest{
		CustomerID: shared.Some(newCustomer),
	})
	require.NoError(t, err)

	// Old bill had no other contracts, so it is gone.
	assert.NotContains(t, f.store.bills, oldBillID)
	require.NotNil(t, resp.BillID)
	assert.NotEqual(t, oldBillID, *resp.BillID)

	assert.Equal(t, "500.00", resp.Bill.TotalMoney.String())
	assert.Equal(t, "500.00", resp.Bill.DebtAmount.String())
	assert.Equal(t, newCustomer, resp.CustomerID)
	assert.Contains(t, f.publisher.eventTypes(), ledger.EventTypeBillClosed)
}

func TestContractService_Update_GroupChange_KeepsSharedBill(t *testing.T) {
	f := newFixture()
	customerID, budgetID := uuid.New(), uuid.New()

	first, err := f.contracts.CreateContract(context.Background(), createReq(customerID, budgetID, "google-ads", 1000, 0.5))
	require.NoError(t, err)
	second, err := f.contracts.CreateContract(context.Background(), createReq(customerID, budgetID, "google-ads", 600, 1.0))
	require.NoError(t, err)
	sharedBillID := *second.BillID

	// Move the second contract to another product group.
	resp, err := f.contracts.UpdateContract(context.Background(), second.ID, UpdateContractRequest{
		Product: shared.Some("youtube-ads"),
	})
	require.NoError(t, err)

	// The shared bill survives, minus the moved contract's value.
	remaining, ok := f.store.bills[sharedBillID]
	require.True(t, ok)
	assert.Equal(t, "500.00", remaining.TotalMoney.String())
	assert.Equal(t, "500.00", remaining.DebtAmount.String())

	assert.NotEqual(t, sharedBillID, *resp.BillID)
	assert.Equal(t, "600.00", resp.Bill.TotalMoney.String())
	_ = first
}

func TestContractService_Update_SameGroup_AdjustsInPlace(t *testing.T) {
	f := newFixture()

	created, err := f.contracts.CreateContract(context.Background(), createReq(uuid.New(), uuid.New(), "facebook-ads", 1000, 0.5))
	require.NoError(t, err)
	billID := *created.BillID

	// Raise the value; no restated signing payment means the whole new
	// value is owed again.
	resp, err := f.contracts.UpdateContract(context.Background(), created.ID, UpdateContractRequest{
		TotalCost: shared.Some(valueobject.NewMoneyFromFloat(1600)),
	})
	require.NoError(t, err)

	assert.Equal(t, billID, *resp.BillID)
	assert.Equal(t, "800.00", resp.Bill.TotalMoney.String())
	assert.Equal(t, "800.00", resp.Bill.DebtAmount.String())
	assert.Equal(t, "0.00", resp.Bill.DepositAmount.String())
	assert.Equal(t, ledger.BillStatusDebt, resp.Bill.Status)
}

func TestContractService_Update_SameGroup_RestatesSigningPayment(t *testing.T) {
	f := newFixture()

	req := createReq(uuid.New(), uuid.New(), "facebook-ads", 1000, 0.5)
	req.CustomerActuallyPaid = shared.Some(valueobject.NewMoneyFromFloat(300))
	created, err := f.contracts.CreateContract(context.Background(), req)
	require.NoError(t, err)
	billID := *created.BillID

	resp, err := f.contracts.UpdateContract(context.Background(), created.ID, UpdateContractRequest{
		TotalCost:            shared.Some(valueobject.NewMoneyFromFloat(800)),
		CustomerActuallyPaid: shared.Some(valueobject.NewMoneyFromFloat(500)),
	})
	require.NoError(t, err)

	// New value 400, restated paid 500: settled with 100 held over.
	assert.Equal(t, "400.00", resp.Bill.TotalMoney.String())
	assert.Equal(t, "0.00", resp.Bill.DebtAmount.String())
	assert.Equal(t, "100.00", resp.Bill.DepositAmount.String())
	assert.Equal(t, ledger.BillStatusDeposit, resp.Bill.Status)

	deposits := f.store.depositPayments(billID)
	require.Len(t, deposits, 1)
	assert.Equal(t, "500.00", deposits[0].Amount.String())
}

func TestContractService_Update_SameGroup_WithdrawsSigningPayment(t *testing.T) {
	f := newFixture()

	req := createReq(uuid.New(), uuid.New(), "facebook-ads", 1000, 0.5)
	req.CustomerActuallyPaid = shared.Some(valueobject.NewMoneyFromFloat(700))
	created, err := f.contracts.CreateContract(context.Background(), req)
	require.NoError(t, err)
	billID := *created.BillID

	// Patch without customer_actually_paid: the signing payment is
	// withdrawn and the full value owed again.
	resp, err := f.contracts.UpdateContract(context.Background(), created.ID, UpdateContractRequest{
		Note: shared.Some("renegotiated"),
	})
	require.NoError(t, err)

	assert.Equal(t, "500.00", resp.Bill.DebtAmount.String())
	assert.Equal(t, "0.00", resp.Bill.DepositAmount.String())
	assert.Equal(t, ledger.BillStatusDebt, resp.Bill.Status)
	assert.Empty(t, f.store.depositPayments(billID))
}

func TestContractService_Update_NotFound(t *testing.T) {
	f := newFixture()
	_, err := f.contracts.UpdateContract(context.Background(), uuid.New(), UpdateContractRequest{})
	assert.ErrorIs(t, err, shared.ErrNotFound)
}

func TestContractService_Delete_LastContractRemovesBill(t *testing.T) {
	f := newFixture()

	req := createReq(uuid.New(), uuid.New(), "facebook-ads", 1000, 0.5)
	req.CustomerActuallyPaid = shared.Some(valueobject.NewMoneyFromFloat(200))
	created, err := f.contracts.CreateContract(context.Background(), req)
	require.NoError(t, err)
	billID := *created.BillID

	// An extra ad hoc payment that must go down with the bill.
	_, err = f.payments.CreatePayment(context.Background(), CreatePaymentRequest{
		BillID: billID,
		Amount: valueobject.NewMoneyFromFloat(50),
		Method: ledger.PaymentMethodCash,
	})
	require.NoError(t, err)

	require.NoError(t, f.contracts.DeleteContract(context.Background(), created.ID))

	assert.Empty(t, f.store.bills)
	assert.Empty(t, f.store.contracts)
	for _, p := range f.store.payments {
		t.Errorf("payment %s should have been deleted with the bill", p.ID)
	}
	assert.Contains(t, f.publisher.eventTypes(), ledger.EventTypeContractTerminated)
	assert.Contains(t, f.publisher.eventTypes(), ledger.EventTypeBillClosed)
}

func TestContractService_Delete_SharedBillSurvives(t *testing.T) {
	f := newFixture()
	customerID, budgetID := uuid.New(), uuid.New()

	first, err := f.contracts.CreateContract(context.Background(), createReq(customerID, budgetID, "google-ads", 1000, 0.5))
	require.NoError(t, err)
	second, err := f.contracts.CreateContract(context.Background(), createReq(customerID, budgetID, "google-ads", 600, 1.0))
	require.NoError(t, err)
	billID := *second.BillID

	require.NoError(t, f.contracts.DeleteContract(context.Background(), second.ID))

	bill, ok := f.store.bills[billID]
	require.True(t, ok)
	assert.Equal(t, "500.00", bill.TotalMoney.String())
	assert.Equal(t, "500.00", bill.DebtAmount.String())
	assert.Contains(t, f.store.contracts, first.ID)
}

func TestContractService_Delete_NotFound(t *testing.T) {
	f := newFixture()
	err := f.contracts.DeleteContract(context.Background(), uuid.New())
	assert.ErrorIs(t, err, shared.ErrNotFound)
}

func TestContractService_GetAndList(t *testing.T) {
	f := newFixture()
	customerID := uuid.New()

	created, err := f.contracts.CreateContract(context.Background(), createReq(customerID, uuid.New(), "facebook-ads", 1000, 0.5))
	require.NoError(t, err)

	got, err := f.contracts.GetContract(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
	require.NotNil(t, got.Bill)
	assert.Equal(t, "500.00", got.Bill.TotalMoney.String())
	assert.Equal(t, "200.00", got.SupplierCost.String())
	assert.Equal(t, "300.00", got.Profit.String())

	page, err := f.contracts.ListContracts(context.Background(), ledger.ContractFilter{CustomerID: &customerID})
	require.NoError(t, err)
	assert.Equal(t, int64(1), page.Total)
	require.Len(t, page.Items, 1)
	assert.Equal(t, created.ID, page.Items[0].ID)
}

// The incremental contract paths must land on the same state the
// canonical recompute would produce for a payment-only settlement.
func TestContractService_IncrementalMatchesRebalance(t *testing.T) {
	f := newFixture()

	req := createReq(uuid.New(), uuid.New(), "facebook-ads", 1000, 0.5)
	req.CustomerActuallyPaid = shared.Some(valueobject.NewMoneyFromFloat(700))
	created, err := f.contracts.CreateContract(context.Background(), req)
	require.NoError(t, err)

	bill := f.store.bills[*created.BillID]
	payments, err := (&memPaymentRepo{f.store}).FindByBill(context.Background(), bill.ID)
	require.NoError(t, err)

	debt, deposit := ledger.RebalanceAmounts(bill.TotalMoney, payments)
	assert.True(t, bill.DebtAmount.Equals(debt))
	assert.True(t, bill.DepositAmount.Equals(deposit))
}
