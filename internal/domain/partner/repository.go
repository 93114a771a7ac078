package partner

import (
	"context"

	"github.com/adagency/backoffice/internal/domain/ledger"
	"github.com/adagency/backoffice/internal/domain/shared"
	"github.com/google/uuid"
)

type CustomerFilter struct {
	shared.Filter
	Name          string
	Segment       CustomerSegment
	AccountTypeID *uuid.UUID
}

type BudgetFilter struct {
	shared.Filter
	SupplierID    *uuid.UUID
	AccountTypeID *uuid.UUID
	ProductType   ledger.ProductType
	Status        BudgetStatus
}

type CustomerRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Customer, error)
	List(ctx context.Context, filter CustomerFilter) ([]Customer, int64, error)
	Save(ctx context.Context, customer *Customer) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type SupplierRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Supplier, error)
	List(ctx context.Context, filter shared.Filter) ([]Supplier, int64, error)
	Save(ctx context.Context, supplier *Supplier) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type AccountTypeRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*AccountType, error)
	List(ctx context.Context, filter shared.Filter) ([]AccountType, int64, error)
	Save(ctx context.Context, accountType *AccountType) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type BudgetRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Budget, error)
	List(ctx context.Context, filter BudgetFilter) ([]Budget, int64, error)
	Save(ctx context.Context, budget *Budget) error
	Delete(ctx context.Context, id uuid.UUID) error
}
