package partner

import (
	"testing"
	"time"

	"github.com/adagency/backoffice/internal/domain/ledger"
	"github.com/adagency/backoffice/internal/domain/shared/valueobject"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCustomer(t *testing.T) {
	accountTypeID := uuid.New()

	t.Run("defaults to legal segment", func(t *testing.T) {
		c, err := NewCustomer("Acme Media", "", accountTypeID, decimal.NewFromFloat(1.05))
		require.NoError(t, err)
		assert.Equal(t, CustomerSegmentLegal, c.Segment)
		assert.Equal(t, "Acme Media", c.Name)
	})

	t.Run("rejects empty name", func(t *testing.T) {
		_, err := NewCustomer("", CustomerSegmentLegal, accountTypeID, decimal.Zero)
		assert.Error(t, err)
	})

	t.Run("rejects missing account type", func(t *testing.T) {
		_, err := NewCustomer("Acme Media", CustomerSegmentLegal, uuid.Nil, decimal.Zero)
		assert.Error(t, err)
	})

	t.Run("rejects unknown segment", func(t *testing.T) {
		_, err := NewCustomer("Acme Media", CustomerSegment("grey"), accountTypeID, decimal.Zero)
		assert.Error(t, err)
	})
}

func TestCustomer_Mutations(t *testing.T) {
	c, err := NewCustomer("Acme Media", CustomerSegmentLegal, uuid.New(), decimal.Zero)
	require.NoError(t, err)
	v := c.Version

	require.NoError(t, c.Rename("Acme Digital"))
	assert.Equal(t, "Acme Digital", c.Name)
	assert.Error(t, c.Rename(""))

	require.NoError(t, c.ChangeSegment(CustomerSegmentIllegal))
	assert.Equal(t, CustomerSegmentIllegal, c.Segment)

	c.UpdateContact("acme.zalo", "fb.com/acme", "0901234567", "12 Nguyen Hue")
	assert.Equal(t, "0901234567", c.PhoneNumber)
	assert.Greater(t, c.Version, v)
}

func TestNewSupplier(t *testing.T) {
	s, err := NewSupplier("AdSupply Co")
	require.NoError(t, err)
	assert.Equal(t, "AdSupply Co", s.Name)

	_, err = NewSupplier("")
	assert.Error(t, err)
}

func TestNewAccountType(t *testing.T) {
	a, err := NewAccountType("agency", "agency managed accounts")
	require.NoError(t, err)
	assert.Equal(t, "agency", a.Name)

	_, err = NewAccountType("", "")
	assert.Error(t, err)
}

func TestNewBudget(t *testing.T) {
	supplierID := uuid.New()
	accountTypeID := uuid.New()
	amount := valueobject.NewMoneyFromFloat(10000)

	t.Run("valid budget starts active", func(t *testing.T) {
		b, err := NewBudget(supplierID, accountTypeID, time.Now(), amount,
			ledger.ProductTypeLegal, decimal.NewFromFloat(0.8), decimal.NewFromFloat(1.1))
		require.NoError(t, err)
		assert.Equal(t, BudgetStatusActive, b.Status)
	})

	t.Run("empty product type defaults to legal", func(t *testing.T) {
		b, err := NewBudget(supplierID, accountTypeID, time.Now(), amount,
			"", decimal.Zero, decimal.Zero)
		require.NoError(t, err)
		assert.Equal(t, ledger.ProductTypeLegal, b.ProductType)
	})

	t.Run("zero date defaults to now", func(t *testing.T) {
		b, err := NewBudget(supplierID, accountTypeID, time.Time{}, amount,
			ledger.ProductTypeLegal, decimal.Zero, decimal.Zero)
		require.NoError(t, err)
		assert.False(t, b.Date.IsZero())
	})

	t.Run("rejects negative money", func(t *testing.T) {
		_, err := NewBudget(supplierID, accountTypeID, time.Now(),
			valueobject.NewMoneyFromFloat(-1), ledger.ProductTypeLegal, decimal.Zero, decimal.Zero)
		assert.Error(t, err)
	})

	t.Run("rejects missing supplier", func(t *testing.T) {
		_, err := NewBudget(uuid.Nil, accountTypeID, time.Now(), amount,
			ledger.ProductTypeLegal, decimal.Zero, decimal.Zero)
		assert.Error(t, err)
	})
}

func TestBudget_Mutations(t *testing.T) {
	b, err := NewBudget(uuid.New(), uuid.New(), time.Now(),
		valueobject.NewMoneyFromFloat(5000), ledger.ProductTypeLegal,
		decimal.NewFromFloat(0.8), decimal.NewFromFloat(1.1))
	require.NoError(t, err)

	require.NoError(t, b.ChangeStatus(BudgetStatusInactive))
	assert.Equal(t, BudgetStatusInactive, b.Status)
	assert.Error(t, b.ChangeStatus(BudgetStatus("archived")))

	require.NoError(t, b.ChangeProductType(ledger.ProductTypeMiddleIllegal))
	assert.Error(t, b.ChangeProductType(ledger.ProductType("bogus")))

	require.NoError(t, b.SetMoney(valueobject.NewMoneyFromFloat(7500)))
	assert.Error(t, b.SetMoney(valueobject.NewMoneyFromFloat(-1)))
}
