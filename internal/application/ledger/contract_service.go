package ledger

import (
	"context"
	"errors"
	"fmt"

	"github.com/adagency/backoffice/internal/domain/ledger"
	"github.com/adagency/backoffice/internal/domain/partner"
	"github.com/adagency/backoffice/internal/domain/shared"
	"github.com/adagency/backoffice/internal/domain/shared/valueobject"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// BudgetReader resolves the budget a contract draws from, to fill in
// commission rates the caller left unset.
type BudgetReader interface {
	FindByID(ctx context.Context, id uuid.UUID) (*partner.Budget, error)
}

// ContractService orchestrates the contract lifecycle and keeps the
// owning bill's totals consistent through every mutation. Each mutation
// runs in one transaction scope; events publish after commit.
type ContractService struct {
	scope     TransactionScope
	budgets   BudgetReader
	publisher shared.EventPublisher
	logger    *zap.Logger
}

func NewContractService(scope TransactionScope, budgets BudgetReader, publisher shared.EventPublisher, logger *zap.Logger) *ContractService {
	return &ContractService{
		scope:     scope,
		budgets:   budgets,
		publisher: publisher,
		logger:    logger,
	}
}

// CreateContract signs a new contract. It joins the bill of an existing
// contract in the same group, or opens a fresh bill, and settles the
// customer's signing payment debt-first against it.
func (s *ContractService) CreateContract(ctx context.Context, req CreateContractRequest) (*ContractResponse, error) {
	var (
		resp   *ContractResponse
		events []shared.DomainEvent
	)

	supplierRate, customerRate, err := s.resolveRates(ctx, req.BudgetID, req.SupplierRate, req.CustomerRate)
	if err != nil {
		return nil, err
	}

	err = s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		key := ledger.NewBillGroupKey(req.CustomerID, req.BudgetID, req.Product)

		dup, err := repos.Contracts().FindDuplicate(ctx, key, supplierRate, customerRate)
		if err != nil {
			return fmt.Errorf("duplicate lookup: %w", err)
		}
		if dup != nil {
			return shared.ErrDuplicateContract
		}

		contract, err := ledger.NewContract(
			req.Date,
			req.CustomerID, req.BudgetID,
			req.Product, req.ProductType,
			req.TotalCost,
			supplierRate, customerRate,
			req.Note,
		)
		if err != nil {
			return err
		}

		paid := req.CustomerActuallyPaid.ValueOr(valueobject.Zero())
		if paid.IsNegative() {
			return shared.ErrInvalidAmount
		}
		if err := contract.SetCustomerActuallyPaid(paid); err != nil {
			return err
		}

		bill, err := s.resolveGroupBill(ctx, repos, key, contract, req.Note)
		if err != nil {
			return err
		}

		bill.AddContractTotal(contract.CustomerCost())
		if paid.IsPositive() {
			bill.ApplyCustomerPaid(paid)
			deposit, err := ledger.NewDepositPayment(bill.ID, paid)
			if err != nil {
				return err
			}
			if err := repos.Payments().Save(ctx, deposit); err != nil {
				return fmt.Errorf("save deposit payment: %w", err)
			}
		}

		if err := repos.Bills().Save(ctx, bill); err != nil {
			return fmt.Errorf("save bill: %w", err)
		}

		contract.AssignBill(bill.ID)
		if err := repos.Contracts().Save(ctx, contract); err != nil {
			return fmt.Errorf("save contract: %w", err)
		}

		events = collectEvents(bill, contract)
		resp = toContractResponse(contract, bill)
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.publish(ctx, events)
	return resp, nil
}

// resolveRates fills unset commission rates from the budget the contract
// draws from. Explicit rates on the request always win.
func (s *ContractService) resolveRates(ctx context.Context, budgetID uuid.UUID, supplierRate, customerRate decimal.Decimal) (decimal.Decimal, decimal.Decimal, error) {
	if !supplierRate.IsZero() && !customerRate.IsZero() {
		return supplierRate, customerRate, nil
	}

	budget, err := s.budgets.FindByID(ctx, budgetID)
	if err != nil && !errors.Is(err, shared.ErrNotFound) {
		return supplierRate, customerRate, fmt.Errorf("budget lookup: %w", err)
	}
	if budget != nil {
		if supplierRate.IsZero() {
			supplierRate = budget.SupplierRate
		}
		if customerRate.IsZero() {
			customerRate = budget.CustomerRate
		}
	}
	return supplierRate, customerRate, nil
}

// resolveGroupBill finds the bill of another contract in the same group,
// or opens a new one when the contract is its group's first member. It
// also covers the stray case of a group peer whose bill is gone.
func (s *ContractService) resolveGroupBill(
	ctx context.Context,
	repos TransactionalRepositories,
	key ledger.BillGroupKey,
	contract *ledger.Contract,
	note string,
) (*ledger.Bill, error) {
	peer, err := repos.Contracts().FindGroupPeer(ctx, key, contract.ID)
	if err != nil {
		return nil, fmt.Errorf("group peer lookup: %w", err)
	}

	if peer != nil && peer.BillID != nil {
		bill, err := repos.Bills().FindByIDForUpdate(ctx, *peer.BillID)
		if err != nil && !errors.Is(err, shared.ErrNotFound) {
			return nil, fmt.Errorf("lock group bill: %w", err)
		}
		if bill != nil {
			return bill, nil
		}
	}

	return ledger.NewBill(key.CustomerID, contract.Date, note)
}

// UpdateContract amends a contract. When the patch moves it to another
// group the old bill is split and a fresh one attached; otherwise the
// bill is adjusted in place against the amended value.
func (s *ContractService) UpdateContract(ctx context.Context, id uuid.UUID, req UpdateContractRequest) (*ContractResponse, error) {
	var (
		resp   *ContractResponse
		events []shared.DomainEvent
	)

	err := s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		contract, err := repos.Contracts().FindByID(ctx, id)
		if err != nil {
			return fmt.Errorf("find contract: %w", err)
		}
		if contract == nil {
			return shared.ErrNotFound
		}

		oldTotal := contract.CustomerCost()
		oldBillID := contract.BillID

		var oldDeposit *ledger.Payment
		if oldBillID != nil {
			oldDeposit, err = repos.Payments().FindDepositByBill(ctx, *oldBillID)
			if err != nil {
				return fmt.Errorf("find deposit payment: %w", err)
			}
		}
		oldPaid := valueobject.Zero()
		if oldDeposit != nil {
			oldPaid = oldDeposit.Amount
		}

		newDate := contract.Date
		if d, ok := req.Date.Value(); ok {
			newDate = d
		}
		newCustomerID := contract.CustomerID
		if v, ok := req.CustomerID.Value(); ok {
			newCustomerID = v
		}
		newBudgetID := contract.BudgetID
		if v, ok := req.BudgetID.Value(); ok {
			newBudgetID = v
		}
		newProduct := contract.Product
		if v, ok := req.Product.Value(); ok {
			newProduct = v
		}
		newProductType := contract.ProductType
		if v, ok := req.ProductType.Value(); ok {
			newProductType = v
		}
		newTotalCost := contract.TotalCost
		if v, ok := req.TotalCost.Value(); ok {
			newTotalCost = v
		}
		newSupplierRate := contract.SupplierRate
		if v, ok := req.SupplierRate.Value(); ok {
			newSupplierRate = v
		}
		newCustomerRate := contract.CustomerRate
		if v, ok := req.CustomerRate.Value(); ok {
			newCustomerRate = v
		}
		newNote := contract.Note
		if v, ok := req.Note.Value(); ok {
			newNote = v
		}

		changedGroup := newCustomerID != contract.CustomerID ||
			newBudgetID != contract.BudgetID ||
			newProduct != contract.Product

		newTotal := newTotalCost.MultiplyRate(newCustomerRate)
		newPaid := req.CustomerActuallyPaid.ValueOr(valueobject.Zero())
		if newPaid.IsNegative() {
			return shared.ErrInvalidAmount
		}

		if err := contract.Amend(
			newDate, newCustomerID, newBudgetID,
			newProduct, newProductType,
			newTotalCost, newSupplierRate, newCustomerRate,
			newNote, changedGroup,
		); err != nil {
			return err
		}
		if err := contract.SetCustomerActuallyPaid(newPaid); err != nil {
			return err
		}

		var bill *ledger.Bill
		if changedGroup {
			bill, err = s.splitToNewGroup(ctx, repos, contract, oldBillID, oldTotal, oldDeposit, oldPaid, newTotal, newPaid, newNote, &events)
		} else {
			bill, err = s.adjustInPlace(ctx, repos, contract, oldBillID, oldTotal, oldDeposit, newTotal, newPaid, req.CustomerActuallyPaid.HasValue())
		}
		if err != nil {
			return err
		}

		if err := repos.Contracts().Save(ctx, contract); err != nil {
			return fmt.Errorf("save contract: %w", err)
		}

		events = append(events, collectEvents(bill, contract)...)
		resp = toContractResponse(contract, bill)
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.publish(ctx, events)
	return resp, nil
}

// splitToNewGroup detaches the contract from its old bill, withdrawing
// its value and signing payment, then opens a fresh bill for the new
// group. An old bill left without contracts is deleted with its payments.
func (s *ContractService) splitToNewGroup(
	ctx context.Context,
	repos TransactionalRepositories,
	contract *ledger.Contract,
	oldBillID *uuid.UUID,
	oldTotal valueobject.Money,
	oldDeposit *ledger.Payment,
	oldPaid valueobject.Money,
	newTotal, newPaid valueobject.Money,
	note string,
	events *[]shared.DomainEvent,
) (*ledger.Bill, error) {
	if oldBillID != nil {
		oldBill, err := repos.Bills().FindByIDForUpdate(ctx, *oldBillID)
		if err != nil && !errors.Is(err, shared.ErrNotFound) {
			return nil, fmt.Errorf("lock old bill: %w", err)
		}
		if oldBill != nil {
			oldBill.SplitOutContribution(oldTotal, oldPaid)
			if err := repos.Bills().Save(ctx, oldBill); err != nil {
				return nil, fmt.Errorf("save old bill: %w", err)
			}

			if oldDeposit != nil {
				if err := repos.Payments().Delete(ctx, oldDeposit.ID); err != nil {
					return nil, fmt.Errorf("delete deposit payment: %w", err)
				}
			}

			// Detach before any bill delete so the delete cannot
			// cascade onto this contract.
			contract.DetachBill()
			if err := repos.Contracts().Save(ctx, contract); err != nil {
				return nil, fmt.Errorf("detach contract: %w", err)
			}

			others, err := repos.Contracts().CountByBill(ctx, *oldBillID, contract.ID)
			if err != nil {
				return nil, fmt.Errorf("count bill contracts: %w", err)
			}
			if others == 0 {
				if err := repos.Payments().DeleteByBill(ctx, *oldBillID); err != nil {
					return nil, fmt.Errorf("delete bill payments: %w", err)
				}
				if err := repos.Bills().Delete(ctx, *oldBillID); err != nil {
					return nil, fmt.Errorf("delete old bill: %w", err)
				}
				*events = append(*events, ledger.NewBillClosedEvent(oldBill))
			}
		}
	}

	bill, err := ledger.NewBill(contract.CustomerID, contract.Date, note)
	if err != nil {
		return nil, err
	}
	bill.AddContractTotal(newTotal)
	if newPaid.IsPositive() {
		bill.ApplyCustomerPaid(newPaid)
		deposit, err := ledger.NewDepositPayment(bill.ID, newPaid)
		if err != nil {
			return nil, err
		}
		if err := repos.Payments().Save(ctx, deposit); err != nil {
			return nil, fmt.Errorf("save deposit payment: %w", err)
		}
	}
	if err := repos.Bills().Save(ctx, bill); err != nil {
		return nil, fmt.Errorf("save new bill: %w", err)
	}

	contract.AssignBill(bill.ID)
	return bill, nil
}

// adjustInPlace swaps the contract's old value for the amended one on
// the same bill. The debt is then restated against the new value alone:
// a restated signing payment settles it debt-first, withdrawing the
// payment leaves the full new value owed.
func (s *ContractService) adjustInPlace(
	ctx context.Context,
	repos TransactionalRepositories,
	contract *ledger.Contract,
	oldBillID *uuid.UUID,
	oldTotal valueobject.Money,
	oldDeposit *ledger.Payment,
	newTotal, newPaid valueobject.Money,
	paidGiven bool,
) (*ledger.Bill, error) {
	var bill *ledger.Bill
	var err error

	if oldBillID != nil {
		bill, err = repos.Bills().FindByIDForUpdate(ctx, *oldBillID)
		if err != nil && !errors.Is(err, shared.ErrNotFound) {
			return nil, fmt.Errorf("lock bill: %w", err)
		}
	}
	if bill == nil {
		// Stray contract without a bill, open one and adopt it.
		bill, err = ledger.NewBill(contract.CustomerID, contract.Date, contract.Note)
		if err != nil {
			return nil, err
		}
		contract.AssignBill(bill.ID)
	}

	bill.AmendContractTotal(oldTotal, newTotal)

	if paidGiven && newPaid.IsPositive() {
		bill.ReapplySigningPaid(newTotal, newPaid)

		if oldDeposit != nil {
			if err := oldDeposit.SetAmount(newPaid); err != nil {
				return nil, err
			}
			oldDeposit.SetDate(contract.Date)
			oldDeposit.RefreshDepositNote()
			if err := repos.Payments().Save(ctx, oldDeposit); err != nil {
				return nil, fmt.Errorf("update deposit payment: %w", err)
			}
		} else {
			deposit, err := ledger.NewDepositPayment(bill.ID, newPaid)
			if err != nil {
				return nil, err
			}
			if err := repos.Payments().Save(ctx, deposit); err != nil {
				return nil, fmt.Errorf("save deposit payment: %w", err)
			}
		}
	} else {
		bill.ResetObligation(newTotal)
		if oldDeposit != nil {
			if err := repos.Payments().Delete(ctx, oldDeposit.ID); err != nil {
				return nil, fmt.Errorf("delete deposit payment: %w", err)
			}
		}
	}

	if err := repos.Bills().Save(ctx, bill); err != nil {
		return nil, fmt.Errorf("save bill: %w", err)
	}
	return bill, nil
}

// DeleteContract withdraws the contract's value and signing payment from
// its bill and removes it. A bill left without contracts is deleted
// along with all its payments.
func (s *ContractService) DeleteContract(ctx context.Context, id uuid.UUID) error {
	var events []shared.DomainEvent

	err := s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		contract, err := repos.Contracts().FindByID(ctx, id)
		if err != nil {
			return fmt.Errorf("find contract: %w", err)
		}
		if contract == nil {
			return shared.ErrNotFound
		}
		if contract.BillID == nil {
			return shared.ErrNotFound
		}

		bill, err := repos.Bills().FindByIDForUpdate(ctx, *contract.BillID)
		if err != nil {
			return fmt.Errorf("lock bill: %w", err)
		}
		if bill == nil {
			return shared.ErrNotFound
		}

		deposit, err := repos.Payments().FindDepositByBill(ctx, bill.ID)
		if err != nil {
			return fmt.Errorf("find deposit payment: %w", err)
		}
		oldPaid := valueobject.Zero()
		if deposit != nil {
			oldPaid = deposit.Amount
		}

		bill.SplitOutContribution(contract.CustomerCost(), oldPaid)
		if deposit != nil {
			if err := repos.Payments().Delete(ctx, deposit.ID); err != nil {
				return fmt.Errorf("delete deposit payment: %w", err)
			}
		}
		if err := repos.Bills().Save(ctx, bill); err != nil {
			return fmt.Errorf("save bill: %w", err)
		}

		if err := repos.Contracts().Delete(ctx, contract.ID); err != nil {
			return fmt.Errorf("delete contract: %w", err)
		}
		events = append(events, ledger.NewContractTerminatedEvent(contract))

		remaining, err := repos.Contracts().CountByBill(ctx, bill.ID, contract.ID)
		if err != nil {
			return fmt.Errorf("count bill contracts: %w", err)
		}
		if remaining == 0 {
			if err := repos.Payments().DeleteByBill(ctx, bill.ID); err != nil {
				return fmt.Errorf("delete bill payments: %w", err)
			}
			if err := repos.Bills().Delete(ctx, bill.ID); err != nil {
				return fmt.Errorf("delete bill: %w", err)
			}
			events = append(events, ledger.NewBillClosedEvent(bill))
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.publish(ctx, events)
	return nil
}

// GetContract returns a contract with its bill's settlement state
func (s *ContractService) GetContract(ctx context.Context, id uuid.UUID) (*ContractResponse, error) {
	var resp *ContractResponse

	err := s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		contract, err := repos.Contracts().FindByID(ctx, id)
		if err != nil {
			return fmt.Errorf("find contract: %w", err)
		}
		if contract == nil {
			return shared.ErrNotFound
		}

		var bill *ledger.Bill
		if contract.BillID != nil {
			bill, err = repos.Bills().FindByID(ctx, *contract.BillID)
			if err != nil {
				return fmt.Errorf("find bill: %w", err)
			}
		}
		resp = toContractResponse(contract, bill)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

// ListContracts returns contracts matching the filter, newest first
func (s *ContractService) ListContracts(ctx context.Context, filter ledger.ContractFilter) (*shared.Paginated[ContractResponse], error) {
	var result *shared.Paginated[ContractResponse]

	filter.Normalize()
	err := s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		contracts, total, err := repos.Contracts().List(ctx, filter)
		if err != nil {
			return fmt.Errorf("list contracts: %w", err)
		}

		items := make([]ContractResponse, 0, len(contracts))
		for i := range contracts {
			items = append(items, *toContractResponse(&contracts[i], nil))
		}
		page := shared.NewPaginated(items, total, filter.Page, filter.PageSize)
		result = &page
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (s *ContractService) publish(ctx context.Context, events []shared.DomainEvent) {
	if s.publisher == nil {
		return
	}
	for _, event := range events {
		if err := s.publisher.Publish(ctx, event); err != nil {
			s.logger.Warn("failed to publish domain event",
				zap.String("event_type", event.EventType()),
				zap.Error(err))
		}
	}
}

func collectEvents(aggregates ...shared.AggregateRoot) []shared.DomainEvent {
	var events []shared.DomainEvent
	for _, agg := range aggregates {
		events = append(events, agg.GetDomainEvents()...)
		agg.ClearDomainEvents()
	}
	return events
}
