package ledger

import (
	"context"
	"fmt"
	"time"

	"github.com/adagency/backoffice/internal/domain/ledger"
	"github.com/adagency/backoffice/internal/domain/shared"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// PaymentService records cash movements against bills. Every mutation
// rebuilds the bill's debt and deposit from the full payment set, so the
// stored amounts can never drift from the payments backing them.
type PaymentService struct {
	scope     TransactionScope
	publisher shared.EventPublisher
	logger    *zap.Logger
}

func NewPaymentService(scope TransactionScope, publisher shared.EventPublisher, logger *zap.Logger) *PaymentService {
	return &PaymentService{
		scope:     scope,
		publisher: publisher,
		logger:    logger,
	}
}

// CreatePayment records a payment and rebalances its bill
func (s *PaymentService) CreatePayment(ctx context.Context, req CreatePaymentRequest) (*PaymentResponse, error) {
	var (
		resp   *PaymentResponse
		events []shared.DomainEvent
	)

	err := s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		bill, err := repos.Bills().FindByIDForUpdate(ctx, req.BillID)
		if err != nil {
			return fmt.Errorf("lock bill: %w", err)
		}
		if bill == nil {
			return shared.ErrNotFound
		}

		date := req.Date
		if date.IsZero() {
			date = time.Now()
		}

		payment, err := ledger.NewPayment(bill.ID, date, req.Amount, req.Method, req.Note, false)
		if err != nil {
			return err
		}
		if err := repos.Payments().Save(ctx, payment); err != nil {
			return fmt.Errorf("save payment: %w", err)
		}

		if err := s.rebalance(ctx, repos, bill); err != nil {
			return err
		}

		events = append(events, ledger.NewPaymentRecordedEvent(payment))
		events = append(events, collectEvents(bill)...)
		resp = toPaymentResponse(payment, bill)
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.publish(ctx, events)
	return resp, nil
}

// UpdatePayment patches a payment and rebalances its bill
func (s *PaymentService) UpdatePayment(ctx context.Context, id uuid.UUID, req UpdatePaymentRequest) (*PaymentResponse, error) {
	var (
		resp   *PaymentResponse
		events []shared.DomainEvent
	)

	err := s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		payment, err := repos.Payments().FindByID(ctx, id)
		if err != nil {
			return fmt.Errorf("find payment: %w", err)
		}
		if payment == nil {
			return shared.ErrNotFound
		}

		bill, err := repos.Bills().FindByIDForUpdate(ctx, payment.BillID)
		if err != nil {
			return fmt.Errorf("lock bill: %w", err)
		}
		if bill == nil {
			return shared.ErrNotFound
		}

		if amount, ok := req.Amount.Value(); ok {
			if err := payment.SetAmount(amount); err != nil {
				return err
			}
			if payment.IsDeposit {
				payment.RefreshDepositNote()
			}
		}
		if date, ok := req.Date.Value(); ok {
			payment.SetDate(date)
		}
		if method, ok := req.Method.Value(); ok {
			if err := payment.SetMethod(method); err != nil {
				return err
			}
		}
		if note, ok := req.Note.Value(); ok {
			payment.SetNote(note)
		}

		if err := repos.Payments().Save(ctx, payment); err != nil {
			return fmt.Errorf("save payment: %w", err)
		}

		if err := s.rebalance(ctx, repos, bill); err != nil {
			return err
		}

		events = collectEvents(bill)
		resp = toPaymentResponse(payment, bill)
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.publish(ctx, events)
	return resp, nil
}

// DeletePayment removes a payment and rebalances its bill. The bill
// stays even when its last payment goes.
func (s *PaymentService) DeletePayment(ctx context.Context, id uuid.UUID) error {
	var events []shared.DomainEvent

	err := s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		payment, err := repos.Payments().FindByID(ctx, id)
		if err != nil {
			return fmt.Errorf("find payment: %w", err)
		}
		if payment == nil {
			return shared.ErrNotFound
		}

		bill, err := repos.Bills().FindByIDForUpdate(ctx, payment.BillID)
		if err != nil {
			return fmt.Errorf("lock bill: %w", err)
		}
		if bill == nil {
			return shared.ErrNotFound
		}

		if err := repos.Payments().Delete(ctx, payment.ID); err != nil {
			return fmt.Errorf("delete payment: %w", err)
		}

		if err := s.rebalance(ctx, repos, bill); err != nil {
			return err
		}

		events = append(events, ledger.NewPaymentRemovedEvent(payment))
		events = append(events, collectEvents(bill)...)
		return nil
	})
	if err != nil {
		return err
	}

	s.publish(ctx, events)
	return nil
}

// ListPaymentsForBill returns a bill's payments newest first, together
// with the bill's current settlement state.
func (s *PaymentService) ListPaymentsForBill(ctx context.Context, billID uuid.UUID) ([]PaymentResponse, *BillTotals, error) {
	var (
		items  []PaymentResponse
		totals *BillTotals
	)

	err := s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		bill, err := repos.Bills().FindByID(ctx, billID)
		if err != nil {
			return fmt.Errorf("find bill: %w", err)
		}
		if bill == nil {
			return shared.ErrNotFound
		}

		payments, err := repos.Payments().ListByBill(ctx, billID)
		if err != nil {
			return fmt.Errorf("list payments: %w", err)
		}

		items = make([]PaymentResponse, 0, len(payments))
		for i := range payments {
			items = append(items, *toPaymentResponse(&payments[i], nil))
		}
		t := totalsOf(bill)
		totals = &t
		return nil
	})
	if err != nil {
		return nil, nil, err
	}
	return items, totals, nil
}

// rebalance reloads the bill's full payment set and rebuilds its
// debt and deposit from scratch.
func (s *PaymentService) rebalance(ctx context.Context, repos TransactionalRepositories, bill *ledger.Bill) error {
	payments, err := repos.Payments().FindByBill(ctx, bill.ID)
	if err != nil {
		return fmt.Errorf("load payments: %w", err)
	}
	bill.Rebalance(payments)
	if err := repos.Bills().Save(ctx, bill); err != nil {
		return fmt.Errorf("save bill: %w", err)
	}
	return nil
}

func (s *PaymentService) publish(ctx context.Context, events []shared.DomainEvent) {
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
