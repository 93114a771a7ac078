package persistence

import (
	"context"

	"gorm.io/gorm"

	appledger "github.com/adagency/backoffice/internal/application/ledger"
	"github.com/adagency/backoffice/internal/domain/ledger"
)

// GormLedgerTransactionScope implements TransactionScope using GORM
// transactions. Repositories handed to the callback are bound to the
// transaction, so all ledger writes commit or roll back together.
type GormLedgerTransactionScope struct {
	db *gorm.DB
}

// NewGormLedgerTransactionScope creates a new GORM-backed transaction scope
func NewGormLedgerTransactionScope(db *gorm.DB) *GormLedgerTransactionScope {
	return &GormLedgerTransactionScope{db: db}
}

// Execute runs fn within a database transaction
func (s *GormLedgerTransactionScope) Execute(ctx context.Context, fn func(repos appledger.TransactionalRepositories) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&gormTransactionalRepositories{tx: tx})
	})
}

// gormTransactionalRepositories provides tx-scoped repository instances
type gormTransactionalRepositories struct {
	tx *gorm.DB
}

func (r *gormTransactionalRepositories) Bills() ledger.BillRepository {
	return NewGormBillRepository(r.tx)
}

func (r *gormTransactionalRepositories) Contracts() ledger.ContractRepository {
	return NewGormContractRepository(r.tx)
}

func (r *gormTransactionalRepositories) Payments() ledger.PaymentRepository {
	return NewGormPaymentRepository(r.tx)
}

var _ appledger.TransactionScope = (*GormLedgerTransactionScope)(nil)
var _ appledger.TransactionalRepositories = (*gormTransactionalRepositories)(nil)
