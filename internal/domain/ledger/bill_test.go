package ledger

import (
	"testing"
	"time"

	"github.com/adagency/backoffice/internal/domain/shared/valueobject"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test helpers

func createTestBill(t *testing.T) *Bill {
	b, err := NewBill(uuid.New(), time.Now(), "")
	require.NoError(t, err)
	return b
}

func money(f float64) valueobject.Money {
	return valueobject.NewMoneyFromFloat(f)
}

// ============================================
// BillStatus Tests
// ============================================

func TestBillStatus_IsValid(t *testing.T) {
	tests := []struct {
		status  BillStatus
		isValid bool
	}{
		{BillStatusDebt, true},
		{BillStatusDeposit, true},
		{BillStatusCompleted, true},
		{BillStatus("INVALID"), false},
		{BillStatus(""), false},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			assert.Equal(t, tt.isValid, tt.status.IsValid())
		})
	}
}

func TestStatusFor(t *testing.T) {
	tests := []struct {
		name    string
		debt    float64
		deposit float64
		want    BillStatus
	}{
		{"both zero is completed", 0, 0, BillStatusCompleted},
		{"deposit only", 0, 100, BillStatusDeposit},
		{"debt only", 100, 0, BillStatusDebt},
		{"debt takes priority over deposit", 100, 50, BillStatusDebt},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StatusFor(money(tt.debt), money(tt.deposit)))
		})
	}
}

// ============================================
// Bill construction
// ============================================

func TestNewBill(t *testing.T) {
	customerID := uuid.New()
	b, err := NewBill(customerID, time.Now(), "first campaign")
	require.NoError(t, err)

	assert.Equal(t, customerID, b.CustomerID)
	assert.True(t, b.TotalMoney.IsZero())
	assert.True(t, b.DebtAmount.IsZero())
	assert.True(t, b.DepositAmount.IsZero())
	assert.Equal(t, BillStatusCompleted, b.Status)
	assert.Equal(t, "first campaign", b.Note)
	assert.Len(t, b.GetDomainEvents(), 1)
}

func TestNewBill_RequiresCustomer(t *testing.T) {
	_, err := NewBill(uuid.Nil, time.Now(), "")
	assert.Error(t, err)
}

// ============================================
// Contract-driven mutations
// ============================================

func TestBill_AddContractTotal(t *testing.T) {
	b := createTestBill(t)
	b.AddContractTotal(money(500))

	assert.Equal(t, "500.00", b.TotalMoney.String())
	assert.Equal(t, "500.00", b.DebtAmount.String())
	assert.Equal(t, "0.00", b.DepositAmount.String())
	assert.Equal(t, BillStatusDebt, b.Status)
}

func TestBill_ApplyCustomerPaid(t *testing.T) {
	tests := []struct {
		name        string
		debt        float64
		paid        float64
		wantDebt    string
		wantDeposit string
		wantStatus  BillStatus
	}{
		{"partial payment reduces debt", 500, 300, "200.00", "0.00", BillStatusDebt},
		{"exact payment completes", 500, 500, "0.00", "0.00", BillStatusCompleted},
		{"overpayment becomes deposit", 500, 700, "0.00", "200.00", BillStatusDeposit},
		{"payment with no debt is pure deposit", 0, 100, "0.00", "100.00", BillStatusDeposit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := createTestBill(t)
			b.AddContractTotal(money(tt.debt))
			b.ApplyCustomerPaid(money(tt.paid))

			assert.Equal(t, tt.wantDebt, b.DebtAmount.String())
			assert.Equal(t, tt.wantDeposit, b.DepositAmount.String())
			assert.Equal(t, tt.wantStatus, b.Status)
		})
	}
}

func TestBill_RemoveContractTotal(t *testing.T) {
	t.Run("debt absorbs the full removal", func(t *testing.T) {
		b := createTestBill(t)
		b.AddContractTotal(money(800))
		b.RemoveContractTotal(money(500))

		assert.Equal(t, "300.00", b.TotalMoney.String())
		assert.Equal(t, "300.00", b.DebtAmount.String())
		assert.Equal(t, "0.00", b.DepositAmount.String())
	})

	t.Run("remainder comes out of the deposit", func(t *testing.T) {
		b := createTestBill(t)
		b.AddContractTotal(money(500))
		b.ApplyCustomerPaid(money(700)) // debt 0, deposit 200
		b.RemoveContractTotal(money(500))

		assert.Equal(t, "0.00", b.TotalMoney.String())
		assert.Equal(t, "0.00", b.DebtAmount.String())
		// 500 to remove, debt had 0, deposit 200 floors at 0
		assert.Equal(t, "0.00", b.DepositAmount.String())
		assert.Equal(t, BillStatusCompleted, b.Status)
	})

	t.Run("partial split between debt and deposit", func(t *testing.T) {
		b := createTestBill(t)
		b.AddContractTotal(money(1000))
		b.ApplyCustomerPaid(money(1200)) // debt 0, deposit 200
		b.AddContractTotal(money(300))   // debt 300
		b.RemoveContractTotal(money(400))

		assert.Equal(t, "900.00", b.TotalMoney.String())
		assert.Equal(t, "0.00", b.DebtAmount.String())
		assert.Equal(t, "100.00", b.DepositAmount.String())
	})
}

func TestBill_SubtractDeposit_FloorsAtZero(t *testing.T) {
	b := createTestBill(t)
	b.AddContractTotal(money(100))
	b.ApplyCustomerPaid(money(150)) // deposit 50
	b.SubtractDeposit(money(80))

	assert.Equal(t, "0.00", b.DepositAmount.String())
}

func TestBill_ResetObligation(t *testing.T) {
	b := createTestBill(t)
	b.AddContractTotal(money(500))
	b.ApplyCustomerPaid(money(700))

	b.ResetObligation(money(650))

	assert.Equal(t, "650.00", b.DebtAmount.String())
	assert.Equal(t, "0.00", b.DepositAmount.String())
	assert.Equal(t, BillStatusDebt, b.Status)
}

func TestBill_SetDepositAmount(t *testing.T) {
	b := createTestBill(t)
	require.NoError(t, b.SetDepositAmount(money(25)))
	assert.Equal(t, "25.00", b.DepositAmount.String())
	assert.Equal(t, BillStatusDeposit, b.Status)

	assert.Error(t, b.SetDepositAmount(money(-1)))
}

// ============================================
// Invariants
// ============================================

func TestBill_AmountsNeverNegative(t *testing.T) {
	b := createTestBill(t)
	b.AddContractTotal(money(100))
	b.RemoveContractTotal(money(500))
	assert.False(t, b.TotalMoney.IsNegative())
	assert.False(t, b.DebtAmount.IsNegative())
	assert.False(t, b.DepositAmount.IsNegative())

	b.SubtractDeposit(money(999))
	assert.False(t, b.DepositAmount.IsNegative())
}

func TestBill_StatusConsistency(t *testing.T) {
	// After every mutation: completed iff debt==0 && deposit==0,
	// deposit iff debt==0 && deposit>0, debt iff debt>0.
	b := createTestBill(t)
	check := func() {
		t.Helper()
		switch {
		case b.DebtAmount.IsPositive():
			assert.Equal(t, BillStatusDebt, b.Status)
		case b.DepositAmount.IsPositive():
			assert.Equal(t, BillStatusDeposit, b.Status)
		default:
			assert.Equal(t, BillStatusCompleted, b.Status)
		}
	}

	b.AddContractTotal(money(300))
	check()
	b.ApplyCustomerPaid(money(100))
	check()
	b.ApplyCustomerPaid(money(400))
	check()
	b.RemoveContractTotal(money(300))
	check()
}

// ============================================
// Rebalance on the aggregate
// ============================================

func TestBill_Rebalance(t *testing.T) {
	b := createTestBill(t)
	b.AddContractTotal(money(500))

	p1, err := NewPayment(b.ID, time.Now(), money(300), PaymentMethodCash, "", false)
	require.NoError(t, err)
	p2, err := NewPayment(b.ID, time.Now().Add(time.Hour), money(300), PaymentMethodTransfer, "", false)
	require.NoError(t, err)

	b.Rebalance([]Payment{*p1, *p2})

	assert.Equal(t, "0.00", b.DebtAmount.String())
	assert.Equal(t, "100.00", b.DepositAmount.String())
	assert.Equal(t, BillStatusDeposit, b.Status)
}

func TestBill_Rebalance_Idempotent(t *testing.T) {
	b := createTestBill(t)
	b.AddContractTotal(money(750))

	p, err := NewPayment(b.ID, time.Now(), money(200), PaymentMethodCash, "", false)
	require.NoError(t, err)
	payments := []Payment{*p}

	b.Rebalance(payments)
	debt1, dep1, st1 := b.DebtAmount, b.DepositAmount, b.Status
	b.Rebalance(payments)

	assert.True(t, debt1.Equals(b.DebtAmount))
	assert.True(t, dep1.Equals(b.DepositAmount))
	assert.Equal(t, st1, b.Status)
}
