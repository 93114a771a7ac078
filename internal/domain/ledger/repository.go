package ledger

import (
	"context"
	"time"

	"github.com/adagency/backoffice/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BillFilter defines filtering options for bill queries
type BillFilter struct {
	shared.Filter
	CustomerID *uuid.UUID
	Status     *BillStatus
	FromDate   *time.Time
	ToDate     *time.Time
}

// BillRepository defines the interface for bill persistence
type BillRepository interface {
	// FindByID finds a bill by ID
	FindByID(ctx context.Context, id uuid.UUID) (*Bill, error)

	// FindByIDForUpdate finds a bill by ID and locks its row for the
	// duration of the surrounding transaction
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*Bill, error)

	// List finds bills matching the filter, newest first, with the total count
	List(ctx context.Context, filter BillFilter) ([]Bill, int64, error)

	// Save creates or updates a bill
	Save(ctx context.Context, bill *Bill) error

	// Delete removes a bill
	Delete(ctx context.Context, id uuid.UUID) error
}

// ContractFilter defines filtering options for contract queries
type ContractFilter struct {
	shared.Filter
	CustomerID    *uuid.UUID
	SupplierID    *uuid.UUID // resolved through the contract's budget
	AccountTypeID *uuid.UUID // resolved through the contract's budget
	ProductType   *ProductType
	FromDate      *time.Time
	ToDate        *time.Time
}

// ContractRepository defines the interface for contract persistence.
// FindGroupPeer is the bill grouping resolver: given a group key it
// returns any other contract of the same group, whose bill the caller
// joins, or nil when the group is empty.
type ContractRepository interface {
	// FindByID finds a contract by ID
	FindByID(ctx context.Context, id uuid.UUID) (*Contract, error)

	// FindDuplicate returns an existing contract with the same group key
	// and rates, or nil when there is none
	FindDuplicate(ctx context.Context, key BillGroupKey, supplierRate, customerRate decimal.Decimal) (*Contract, error)

	// FindGroupPeer returns another contract sharing the group key,
	// excluding the given contract ID, or nil when the group has no peer
	FindGroupPeer(ctx context.Context, key BillGroupKey, excludeID uuid.UUID) (*Contract, error)

	// CountByBill counts contracts attached to a bill, excluding the given ID
	CountByBill(ctx context.Context, billID, excludeID uuid.UUID) (int64, error)

	// DetachByBill clears the bill reference on every contract attached
	// to the given bill
	DetachByBill(ctx context.Context, billID uuid.UUID) error

	// List finds contracts matching the filter, newest first, with the total count
	List(ctx context.Context, filter ContractFilter) ([]Contract, int64, error)

	// Save creates or updates a contract
	Save(ctx context.Context, contract *Contract) error

	// Delete removes a contract
	Delete(ctx context.Context, id uuid.UUID) error
}

// PaymentRepository defines the interface for payment persistence
type PaymentRepository interface {
	// FindByID finds a payment by ID
	FindByID(ctx context.Context, id uuid.UUID) (*Payment, error)

	// FindByBill returns all payments of a bill in recompute order:
	// ascending date, insertion order on ties
	FindByBill(ctx context.Context, billID uuid.UUID) ([]Payment, error)

	// ListByBill returns all payments of a bill newest first, for display
	ListByBill(ctx context.Context, billID uuid.UUID) ([]Payment, error)

	// FindDepositByBill returns the bill's is_deposit payment, or nil
	// when the bill holds none
	FindDepositByBill(ctx context.Context, billID uuid.UUID) (*Payment, error)

	// Save creates or updates a payment
	Save(ctx context.Context, payment *Payment) error

	// Delete removes a payment
	Delete(ctx context.Context, id uuid.UUID) error

	// DeleteByBill removes every payment of a bill
	DeleteByBill(ctx context.Context, billID uuid.UUID) error
}
