package partner

import (
	"time"

	"github.com/adagency/backoffice/internal/domain/ledger"
	"github.com/adagency/backoffice/internal/domain/shared"
	"github.com/adagency/backoffice/internal/domain/shared/valueobject"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type BudgetStatus string

const (
	BudgetStatusActive   BudgetStatus = "active"
	BudgetStatusInactive BudgetStatus = "inactive"
)

func (s BudgetStatus) IsValid() bool {
	return s == BudgetStatusActive || s == BudgetStatusInactive
}

func (s BudgetStatus) String() string {
	return string(s)
}

// Budget is a pool of supplier ad spend that contracts draw from. It fixes
// the default supplier and customer rates for contracts opened against it.
type Budget struct {
	shared.BaseAggregateRoot
	SupplierID    uuid.UUID
	AccountTypeID uuid.UUID
	Date          time.Time
	Money         valueobject.Money
	ProductType   ledger.ProductType
	SupplierRate  decimal.Decimal
	CustomerRate  decimal.Decimal
	Status        BudgetStatus
	Note          string
}

func NewBudget(
	supplierID, accountTypeID uuid.UUID,
	date time.Time,
	amount valueobject.Money,
	productType ledger.ProductType,
	supplierRate, customerRate decimal.Decimal,
) (*Budget, error) {
	if supplierID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_BUDGET", "supplier is required")
	}
	if accountTypeID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_BUDGET", "account type is required")
	}
	if productType == "" {
		productType = ledger.ProductTypeLegal
	}
	if !productType.IsValid() {
		return nil, shared.NewDomainError("INVALID_BUDGET", "invalid product type: "+productType.String())
	}
	if amount.IsNegative() {
		return nil, shared.ErrInvalidAmount
	}
	if date.IsZero() {
		date = time.Now()
	}

	return &Budget{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		SupplierID:        supplierID,
		AccountTypeID:     accountTypeID,
		Date:              date,
		Money:             amount,
		ProductType:       productType,
		SupplierRate:      supplierRate,
		CustomerRate:      customerRate,
		Status:            BudgetStatusActive,
	}, nil
}

func (b *Budget) SetMoney(amount valueobject.Money) error {
	if amount.IsNegative() {
		return shared.ErrInvalidAmount
	}
	b.Money = amount
	b.Touch()
	b.IncrementVersion()
	return nil
}

func (b *Budget) SetRates(supplierRate, customerRate decimal.Decimal) {
	b.SupplierRate = supplierRate
	b.CustomerRate = customerRate
	b.Touch()
	b.IncrementVersion()
}

func (b *Budget) ChangeStatus(status BudgetStatus) error {
	if !status.IsValid() {
		return shared.NewDomainError("INVALID_BUDGET", "invalid budget status: "+status.String())
	}
	b.Status = status
	b.Touch()
	b.IncrementVersion()
	return nil
}

func (b *Budget) ChangeProductType(productType ledger.ProductType) error {
	if !productType.IsValid() {
		return shared.NewDomainError("INVALID_BUDGET", "invalid product type: "+productType.String())
	}
	b.ProductType = productType
	b.Touch()
	b.IncrementVersion()
	return nil
}

func (b *Budget) SetDate(date time.Time) {
	b.Date = date
	b.Touch()
	b.IncrementVersion()
}

func (b *Budget) SetNote(note string) {
	b.Note = note
	b.Touch()
	b.IncrementVersion()
}
