package ledger

import (
	"context"
	"fmt"

	"github.com/adagency/backoffice/internal/domain/ledger"
	"github.com/adagency/backoffice/internal/domain/shared"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// BillService serves bill reads and the narrow manual corrections bills
// allow. Bills are otherwise created and settled exclusively through the
// contract and payment flows.
type BillService struct {
	scope     TransactionScope
	publisher shared.EventPublisher
	logger    *zap.Logger
}

func NewBillService(scope TransactionScope, publisher shared.EventPublisher, logger *zap.Logger) *BillService {
	return &BillService{
		scope:     scope,
		publisher: publisher,
		logger:    logger,
	}
}

// GetBill returns a single bill
func (s *BillService) GetBill(ctx context.Context, id uuid.UUID) (*BillResponse, error) {
	var resp *BillResponse

	err := s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		bill, err := repos.Bills().FindByID(ctx, id)
		if err != nil {
			return fmt.Errorf("find bill: %w", err)
		}
		if bill == nil {
			return shared.ErrNotFound
		}
		resp = toBillResponse(bill)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

// ListBills returns bills matching the filter, newest first
func (s *BillService) ListBills(ctx context.Context, filter ledger.BillFilter) (*shared.Paginated[BillResponse], error) {
	var result *shared.Paginated[BillResponse]

	filter.Normalize()
	err := s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		bills, total, err := repos.Bills().List(ctx, filter)
		if err != nil {
			return fmt.Errorf("list bills: %w", err)
		}

		items := make([]BillResponse, 0, len(bills))
		for i := range bills {
			items = append(items, *toBillResponse(&bills[i]))
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

// UpdateBill applies the manual corrections a bill allows: the held
// deposit and the note. Totals and debt only move through the
// reconciliation flows.
func (s *BillService) UpdateBill(ctx context.Context, id uuid.UUID, req UpdateBillRequest) (*BillResponse, error) {
	var resp *BillResponse

	err := s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		bill, err := repos.Bills().FindByIDForUpdate(ctx, id)
		if err != nil {
			return fmt.Errorf("lock bill: %w", err)
		}
		if bill == nil {
			return shared.ErrNotFound
		}

		if amount, ok := req.DepositAmount.Value(); ok {
			if err := bill.SetDepositAmount(amount); err != nil {
				return err
			}
		}
		if note, ok := req.Note.Value(); ok {
			bill.SetNote(note)
		}

		if err := repos.Bills().Save(ctx, bill); err != nil {
			return fmt.Errorf("save bill: %w", err)
		}
		resp = toBillResponse(bill)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

// DeleteBill removes a bill and everything hanging off it: its payments
// are deleted and its contracts detached.
func (s *BillService) DeleteBill(ctx context.Context, id uuid.UUID) error {
	var events []shared.DomainEvent

	err := s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		bill, err := repos.Bills().FindByIDForUpdate(ctx, id)
		if err != nil {
			return fmt.Errorf("lock bill: %w", err)
		}
		if bill == nil {
			return shared.ErrNotFound
		}

		if err := repos.Payments().DeleteByBill(ctx, id); err != nil {
			return fmt.Errorf("delete bill payments: %w", err)
		}
		if err := repos.Contracts().DetachByBill(ctx, id); err != nil {
			return fmt.Errorf("detach bill contracts: %w", err)
		}
		if err := repos.Bills().Delete(ctx, id); err != nil {
			return fmt.Errorf("delete bill: %w", err)
		}

		events = append(events, ledger.NewBillClosedEvent(bill))
		return nil
	})
	if err != nil {
		return err
	}

	for _, event := range events {
		if s.publisher == nil {
			break
		}
		if err := s.publisher.Publish(ctx, event); err != nil {
			s.logger.Warn("failed to publish domain event",
				zap.String("event_type", event.EventType()),
				zap.Error(err))
		}
	}
	return nil
}
