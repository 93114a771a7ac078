package ledger

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestContract(t *testing.T) *Contract {
	c, err := NewContract(
		time.Now(),
		uuid.New(),
		uuid.New(),
		"facebook-ads",
		ProductTypeLegal,
		money(1000),
		decimal.NewFromFloat(0.8),
		decimal.NewFromFloat(1.1),
		"",
	)
	require.NoError(t, err)
	return c
}

func TestProductType_IsValid(t *testing.T) {
	assert.True(t, ProductTypeLegal.IsValid())
	assert.True(t, ProductTypeIllegal.IsValid())
	assert.True(t, ProductTypeMiddleIllegal.IsValid())
	assert.False(t, ProductType("other").IsValid())
}

func TestNewContract(t *testing.T) {
	c := createTestContract(t)

	assert.Equal(t, "facebook-ads", c.Product)
	assert.Nil(t, c.BillID)
	assert.Len(t, c.GetDomainEvents(), 1)
}

func TestNewContract_Validation(t *testing.T) {
	customerID := uuid.New()
	budgetID := uuid.New()
	rate := decimal.NewFromFloat(1)

	tests := []struct {
		name    string
		mutate  func() (*Contract, error)
		wantErr bool
	}{
		{
			"missing customer",
			func() (*Contract, error) {
				return NewContract(time.Now(), uuid.Nil, budgetID, "p", ProductTypeLegal, money(1), rate, rate, "")
			},
			true,
		},
		{
			"missing budget",
			func() (*Contract, error) {
				return NewContract(time.Now(), customerID, uuid.Nil, "p", ProductTypeLegal, money(1), rate, rate, "")
			},
			true,
		},
		{
			"empty product",
			func() (*Contract, error) {
				return NewContract(time.Now(), customerID, budgetID, "", ProductTypeLegal, money(1), rate, rate, "")
			},
			true,
		},
		{
			"invalid product type",
			func() (*Contract, error) {
				return NewContract(time.Now(), customerID, budgetID, "p", ProductType("bogus"), money(1), rate, rate, "")
			},
			true,
		},
		{
			"negative total cost",
			func() (*Contract, error) {
				return NewContract(time.Now(), customerID, budgetID, "p", ProductTypeLegal, money(-1), rate, rate, "")
			},
			true,
		},
		{
			"valid",
			func() (*Contract, error) {
				return NewContract(time.Now(), customerID, budgetID, "p", ProductTypeLegal, money(1), rate, rate, "")
			},
			false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.mutate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestContract_DerivedCosts(t *testing.T) {
	c := createTestContract(t) // total 1000, supplier 0.8, customer 1.1

	assert.Equal(t, "1100.00", c.CustomerCost().String())
	assert.Equal(t, "800.00", c.SupplierCost().String())
	assert.Equal(t, "300.00", c.Profit().String())
}

func TestContract_DerivedCosts_Rounding(t *testing.T) {
	c, err := NewContract(
		time.Now(), uuid.New(), uuid.New(),
		"tiktok-ads", ProductTypeMiddleIllegal,
		money(333.33),
		decimal.NewFromFloat(0.815),
		decimal.NewFromFloat(1.075),
		"",
	)
	require.NoError(t, err)

	// 333.33 * 1.075 = 358.32975 rounds half up to 358.33
	assert.Equal(t, "358.33", c.CustomerCost().String())
	// 333.33 * 0.815 = 271.66395 rounds to 271.66
	assert.Equal(t, "271.66", c.SupplierCost().String())
}

func TestContract_GroupKey(t *testing.T) {
	c := createTestContract(t)
	key := c.GroupKey()

	assert.Equal(t, c.CustomerID, key.CustomerID)
	assert.Equal(t, c.BudgetID, key.BudgetID)
	assert.Equal(t, c.Product, key.Product)
}

func TestContract_BillAssignment(t *testing.T) {
	c := createTestContract(t)
	billID := uuid.New()

	c.AssignBill(billID)
	require.NotNil(t, c.BillID)
	assert.Equal(t, billID, *c.BillID)

	c.DetachBill()
	assert.Nil(t, c.BillID)
}

func TestBillGroupKey_Equals(t *testing.T) {
	customerID := uuid.New()
	budgetID := uuid.New()

	a := NewBillGroupKey(customerID, budgetID, "google-ads")
	b := NewBillGroupKey(customerID, budgetID, "google-ads")
	c := NewBillGroupKey(customerID, budgetID, "facebook-ads")
	d := NewBillGroupKey(customerID, uuid.New(), "google-ads")

	assert.True(t, a.Equals(b))
	assert.False(t, a.Equals(c))
	assert.False(t, a.Equals(d))
}
