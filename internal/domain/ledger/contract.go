package ledger

import (
	"time"

	"github.com/adagency/backoffice/internal/domain/shared"
	"github.com/adagency/backoffice/internal/domain/shared/valueobject"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProductType classifies the advertised product for compliance purposes
type ProductType string

const (
	ProductTypeLegal         ProductType = "legal"
	ProductTypeIllegal       ProductType = "illegal"
	ProductTypeMiddleIllegal ProductType = "middle-illegal"
)

// IsValid checks if the product type is valid
func (t ProductType) IsValid() bool {
	switch t {
	case ProductTypeLegal, ProductTypeIllegal, ProductTypeMiddleIllegal:
		return true
	}
	return false
}

// String returns the string representation of ProductType
func (t ProductType) String() string {
	return string(t)
}

// Contract is one resold-advertising-spend agreement with a customer,
// sourced from a supplier budget. Its customer-side value accumulates
// into the bill of its group.
type Contract struct {
	shared.BaseAggregateRoot
	Date         time.Time
	CustomerID   uuid.UUID
	BudgetID     uuid.UUID
	BillID       *uuid.UUID
	Product      string
	ProductType  ProductType
	TotalCost    valueobject.Money
	SupplierRate decimal.Decimal
	CustomerRate decimal.Decimal
	// CustomerActuallyPaid is the amount handed over at signing. It feeds
	// the bill once at creation and is kept for display afterwards.
	CustomerActuallyPaid valueobject.Money
	Note                 string
}

// NewContract creates a new contract. The bill assignment happens
// afterwards, once the grouping resolver has found or opened a bill.
func NewContract(
	date time.Time,
	customerID, budgetID uuid.UUID,
	product string,
	productType ProductType,
	totalCost valueobject.Money,
	supplierRate, customerRate decimal.Decimal,
	note string,
) (*Contract, error) {
	if customerID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_CUSTOMER", "Customer ID cannot be empty")
	}
	if budgetID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_BUDGET", "Budget ID cannot be empty")
	}
	if product == "" {
		return nil, shared.NewDomainError("INVALID_PRODUCT", "Product cannot be empty")
	}
	if !productType.IsValid() {
		return nil, shared.NewDomainError("INVALID_PRODUCT_TYPE", "Product type is not valid")
	}
	if totalCost.IsNegative() {
		return nil, shared.ErrInvalidAmount
	}
	if supplierRate.IsNegative() || customerRate.IsNegative() {
		return nil, shared.NewDomainError("INVALID_RATE", "Rates cannot be negative")
	}
	if date.IsZero() {
		date = time.Now()
	}

	c := &Contract{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Date:              date,
		CustomerID:        customerID,
		BudgetID:          budgetID,
		Product:           product,
		ProductType:       productType,
		TotalCost:         totalCost,
		SupplierRate:      supplierRate,
		CustomerRate:      customerRate,
		Note:              note,
	}

	c.AddDomainEvent(NewContractSignedEvent(c))

	return c, nil
}

// CustomerCost is the amount charged to the customer for this contract.
// It is the contract's contribution to its bill's total.
func (c *Contract) CustomerCost() valueobject.Money {
	return c.TotalCost.MultiplyRate(c.CustomerRate)
}

// SupplierCost is the amount owed to the supplier for this contract
func (c *Contract) SupplierCost() valueobject.Money {
	return c.TotalCost.MultiplyRate(c.SupplierRate)
}

// Profit is the agency margin on this contract
func (c *Contract) Profit() valueobject.Money {
	return c.CustomerCost().Subtract(c.SupplierCost())
}

// GroupKey returns the bill group this contract belongs to
func (c *Contract) GroupKey() BillGroupKey {
	return BillGroupKey{
		CustomerID: c.CustomerID,
		BudgetID:   c.BudgetID,
		Product:    c.Product,
	}
}

// AssignBill links the contract to its bill
func (c *Contract) AssignBill(billID uuid.UUID) {
	c.BillID = &billID
	c.Touch()
	c.IncrementVersion()
}

// DetachBill unlinks the contract from its bill. Done before the old
// bill is deleted during a group change so the delete cannot cascade
// onto the contract.
func (c *Contract) DetachBill() {
	c.BillID = nil
	c.Touch()
	c.IncrementVersion()
}

// SetCustomerActuallyPaid records the signing payment amount
func (c *Contract) SetCustomerActuallyPaid(paid valueobject.Money) error {
	if paid.IsNegative() {
		return shared.ErrInvalidAmount
	}
	c.CustomerActuallyPaid = paid
	c.Touch()
	c.IncrementVersion()
	return nil
}

// Amend applies updated terms to the contract
func (c *Contract) Amend(
	date time.Time,
	customerID, budgetID uuid.UUID,
	product string,
	productType ProductType,
	totalCost valueobject.Money,
	supplierRate, customerRate decimal.Decimal,
	note string,
	changedGroup bool,
) error {
	if customerID == uuid.Nil {
		return shared.NewDomainError("INVALID_CUSTOMER", "Customer ID cannot be empty")
	}
	if budgetID == uuid.Nil {
		return shared.NewDomainError("INVALID_BUDGET", "Budget ID cannot be empty")
	}
	if product == "" {
		return shared.NewDomainError("INVALID_PRODUCT", "Product cannot be empty")
	}
	if !productType.IsValid() {
		return shared.NewDomainError("INVALID_PRODUCT_TYPE", "Product type is not valid")
	}
	if totalCost.IsNegative() {
		return shared.ErrInvalidAmount
	}
	if supplierRate.IsNegative() || customerRate.IsNegative() {
		return shared.NewDomainError("INVALID_RATE", "Rates cannot be negative")
	}

	c.Date = date
	c.CustomerID = customerID
	c.BudgetID = budgetID
	c.Product = product
	c.ProductType = productType
	c.TotalCost = totalCost
	c.SupplierRate = supplierRate
	c.CustomerRate = customerRate
	c.Note = note
	c.Touch()
	c.IncrementVersion()
	c.AddDomainEvent(NewContractAmendedEvent(c, changedGroup))
	return nil
}
