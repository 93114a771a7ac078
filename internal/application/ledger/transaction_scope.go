package ledger

import (
	"context"

	"github.com/adagency/backoffice/internal/domain/ledger"
)

// TransactionScope provides transactional access to the ledger repositories.
// Every contract or payment mutation runs inside one scope so the bill, the
// contract and the payments move atomically.
type TransactionScope interface {
	// Execute runs the given function within a database transaction.
	// If the function returns an error, the transaction is rolled back.
	Execute(ctx context.Context, fn func(repos TransactionalRepositories) error) error
}

// TransactionalRepositories provides access to the ledger repositories
// within a transaction. All repositories share the same underlying
// database transaction.
type TransactionalRepositories interface {
	Bills() ledger.BillRepository
	Contracts() ledger.ContractRepository
	Payments() ledger.PaymentRepository
}

// NoOpTransactionScope runs the function without a real transaction.
// Useful in tests where the repositories are in-memory fakes.
type NoOpTransactionScope struct {
	bills     ledger.BillRepository
	contracts ledger.ContractRepository
	payments  ledger.PaymentRepository
}

func NewNoOpTransactionScope(
	bills ledger.BillRepository,
	contracts ledger.ContractRepository,
	payments ledger.PaymentRepository,
) *NoOpTransactionScope {
	return &NoOpTransactionScope{
		bills:     bills,
		contracts: contracts,
		payments:  payments,
	}
}

func (s *NoOpTransactionScope) Execute(_ context.Context, fn func(repos TransactionalRepositories) error) error {
	return fn(s)
}

func (s *NoOpTransactionScope) Bills() ledger.BillRepository {
	return s.bills
}

func (s *NoOpTransactionScope) Contracts() ledger.ContractRepository {
	return s.contracts
}

func (s *NoOpTransactionScope) Payments() ledger.PaymentRepository {
	return s.payments
}

var _ TransactionScope = (*NoOpTransactionScope)(nil)
var _ TransactionalRepositories = (*NoOpTransactionScope)(nil)
