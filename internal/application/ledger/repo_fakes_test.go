package ledger

import (
	"context"
	"sort"

	"github.com/adagency/backoffice/internal/domain/ledger"
	"github.com/adagency/backoffice/internal/domain/partner"
	"github.com/adagency/backoffice/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type memBudgetReader struct {
	budgets map[uuid.UUID]*partner.Budget
}

func newMemBudgetReader() *memBudgetReader {
	return &memBudgetReader{budgets: make(map[uuid.UUID]*partner.Budget)}
}

func (r *memBudgetReader) FindByID(_ context.Context, id uuid.UUID) (*partner.Budget, error) {
	return r.budgets[id], nil
}

// In-memory repositories backing the service tests. They keep insertion
// order on payments so date ties resolve the same way the database does.

type memStore struct {
	bills        map[uuid.UUID]*ledger.Bill
	contracts    map[uuid.UUID]*ledger.Contract
	payments     map[uuid.UUID]*ledger.Payment
	paymentOrder []uuid.UUID
}

func newMemStore() *memStore {
	return &memStore{
		bills:     make(map[uuid.UUID]*ledger.Bill),
		contracts: make(map[uuid.UUID]*ledger.Contract),
		payments:  make(map[uuid.UUID]*ledger.Payment),
	}
}

func (s *memStore) scope() *NoOpTransactionScope {
	return NewNoOpTransactionScope(
		&memBillRepo{s},
		&memContractRepo{s},
		&memPaymentRepo{s},
	)
}

type memBillRepo struct{ store *memStore }

func (r *memBillRepo) FindByID(_ context.Context, id uuid.UUID) (*ledger.Bill, error) {
	return r.store.bills[id], nil
}

func (r *memBillRepo) FindByIDForUpdate(_ context.Context, id uuid.UUID) (*ledger.Bill, error) {
	return r.store.bills[id], nil
}

func (r *memBillRepo) List(_ context.Context, filter ledger.BillFilter) ([]ledger.Bill, int64, error) {
	var out []ledger.Bill
	for _, b := range r.store.bills {
		if filter.CustomerID != nil && b.CustomerID != *filter.CustomerID {
			continue
		}
		if filter.Status != nil && b.Status != *filter.Status {
			continue
		}
		out = append(out, *b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	return out, int64(len(out)), nil
}

func (r *memBillRepo) Save(_ context.Context, bill *ledger.Bill) error {
	r.store.bills[bill.ID] = bill
	return nil
}

func (r *memBillRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.store.bills, id)
	return nil
}

type memContractRepo struct{ store *memStore }

func (r *memContractRepo) FindByID(_ context.Context, id uuid.UUID) (*ledger.Contract, error) {
	return r.store.contracts[id], nil
}

func (r *memContractRepo) FindDuplicate(_ context.Context, key ledger.BillGroupKey, supplierRate, customerRate decimal.Decimal) (*ledger.Contract, error) {
	for _, c := range r.store.contracts {
		if c.GroupKey().Equals(key) &&
			c.SupplierRate.Equal(supplierRate) &&
			c.CustomerRate.Equal(customerRate) {
			return c, nil
		}
	}
	return nil, nil
}

func (r *memContractRepo) FindGroupPeer(_ context.Context, key ledger.BillGroupKey, excludeID uuid.UUID) (*ledger.Contract, error) {
	for _, c := range r.store.contracts {
		if c.ID != excludeID && c.GroupKey().Equals(key) {
			return c, nil
		}
	}
	return nil, nil
}

func (r *memContractRepo) CountByBill(_ context.Context, billID, excludeID uuid.UUID) (int64, error) {
	var n int64
	for _, c := range r.store.contracts {
		if c.ID != excludeID && c.BillID != nil && *c.BillID == billID {
			n++
		}
	}
	return n, nil
}

func (r *memContractRepo) DetachByBill(_ context.Context, billID uuid.UUID) error {
	for _, c := range r.store.contracts {
		if c.BillID != nil && *c.BillID == billID {
			c.BillID = nil
		}
	}
	return nil
}

func (r *memContractRepo) List(_ context.Context, filter ledger.ContractFilter) ([]ledger.Contract, int64, error) {
	var out []ledger.Contract
	for _, c := range r.store.contracts {
		if filter.CustomerID != nil && c.CustomerID != *filter.CustomerID {
			continue
		}
		if filter.ProductType != nil && c.ProductType != *filter.ProductType {
			continue
		}
		out = append(out, *c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	return out, int64(len(out)), nil
}

func (r *memContractRepo) Save(_ context.Context, contract *ledger.Contract) error {
	r.store.contracts[contract.ID] = contract
	return nil
}

func (r *memContractRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.store.contracts, id)
	return nil
}

type memPaymentRepo struct{ store *memStore }

func (r *memPaymentRepo) FindByID(_ context.Context, id uuid.UUID) (*ledger.Payment, error) {
	return r.store.payments[id], nil
}

func (r *memPaymentRepo) FindByBill(_ context.Context, billID uuid.UUID) ([]ledger.Payment, error) {
	var out []ledger.Payment
	for _, id := range r.store.paymentOrder {
		p, ok := r.store.payments[id]
		if ok && p.BillID == billID {
			out = append(out, *p)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out, nil
}

func (r *memPaymentRepo) ListByBill(ctx context.Context, billID uuid.UUID) ([]ledger.Payment, error) {
	out, err := r.FindByBill(ctx, billID)
	if err != nil {
		return nil, err
	}
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return out, nil
}

func (r *memPaymentRepo) FindDepositByBill(_ context.Context, billID uuid.UUID) (*ledger.Payment, error) {
	for _, id := range r.store.paymentOrder {
		p, ok := r.store.payments[id]
		if ok && p.BillID == billID && p.IsDeposit {
			return p, nil
		}
	}
	return nil, nil
}

func (r *memPaymentRepo) Save(_ context.Context, payment *ledger.Payment) error {
	if _, exists := r.store.payments[payment.ID]; !exists {
		r.store.paymentOrder = append(r.store.paymentOrder, payment.ID)
	}
	r.store.payments[payment.ID] = payment
	return nil
}

func (r *memPaymentRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.store.payments, id)
	return nil
}

func (r *memPaymentRepo) DeleteByBill(_ context.Context, billID uuid.UUID) error {
	for id, p := range r.store.payments {
		if p.BillID == billID {
			delete(r.store.payments, id)
		}
	}
	return nil
}

var _ ledger.BillRepository = (*memBillRepo)(nil)
var _ ledger.ContractRepository = (*memContractRepo)(nil)
var _ ledger.PaymentRepository = (*memPaymentRepo)(nil)

func (s *memStore) depositPayments(billID uuid.UUID) []*ledger.Payment {
	var out []*ledger.Payment
	for _, p := range s.payments {
		if p.BillID == billID && p.IsDeposit {
			out = append(out, p)
		}
	}
	return out
}

var _ shared.EventPublisher = (*recordingPublisher)(nil)

// recordingPublisher captures published events for assertions
type recordingPublisher struct {
	events []shared.DomainEvent
}

func (p *recordingPublisher) Publish(_ context.Context, events ...shared.DomainEvent) error {
	p.events = append(p.events, events...)
	return nil
}

func (p *recordingPublisher) eventTypes() []string {
	out := make([]string, 0, len(p.events))
	for _, e := range p.events {
		out = append(out, e.EventType())
	}
	return out
}
