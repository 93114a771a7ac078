package partner

import (
	"context"
	"fmt"

	"github.com/adagency/backoffice/internal/domain/partner"
	"github.com/adagency/backoffice/internal/domain/shared"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CustomerService manages the customer reference records contracts and
// bills point at.
type CustomerService struct {
	customers    partner.CustomerRepository
	accountTypes partner.AccountTypeRepository
	logger       *zap.Logger
}

func NewCustomerService(customers partner.CustomerRepository, accountTypes partner.AccountTypeRepository, logger *zap.Logger) *CustomerService {
	return &CustomerService{
		customers:    customers,
		accountTypes: accountTypes,
		logger:       logger,
	}
}

func (s *CustomerService) CreateCustomer(ctx context.Context, req CreateCustomerRequest) (*CustomerResponse, error) {
	accountType, err := s.accountTypes.FindByID(ctx, req.AccountTypeID)
	if err != nil {
		return nil, fmt.Errorf("find account type: %w", err)
	}
	if accountType == nil {
		return nil, shared.ErrNotFound
	}

	customer, err := partner.NewCustomer(req.Name, req.Segment, req.AccountTypeID, req.Rate)
	if err != nil {
		return nil, err
	}
	customer.UpdateContact(req.Zalo, req.Facebook, req.PhoneNumber, req.Address)
	customer.SetNote(req.Note)

	if err := s.customers.Save(ctx, customer); err != nil {
		return nil, fmt.Errorf("save customer: %w", err)
	}

	s.logger.Info("customer created",
		zap.String("customer_id", customer.ID.String()),
		zap.String("name", customer.Name))
	return toCustomerResponse(customer), nil
}

func (s *CustomerService) UpdateCustomer(ctx context.Context, id uuid.UUID, req UpdateCustomerRequest) (*CustomerResponse, error) {
	customer, err := s.customers.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find customer: %w", err)
	}
	if customer == nil {
		return nil, shared.ErrNotFound
	}

	if name, ok := req.Name.Value(); ok {
		if err := customer.Rename(name); err != nil {
			return nil, err
		}
	}
	if segment, ok := req.Segment.Value(); ok {
		if err := customer.ChangeSegment(segment); err != nil {
			return nil, err
		}
	}
	customer.UpdateContact(
		req.Zalo.ValueOr(customer.Zalo),
		req.Facebook.ValueOr(customer.Facebook),
		req.PhoneNumber.ValueOr(customer.PhoneNumber),
		req.Address.ValueOr(customer.Address),
	)
	if rate, ok := req.Rate.Value(); ok {
		customer.SetRate(rate)
	}
	if note, ok := req.Note.Value(); ok {
		customer.SetNote(note)
	}

	if err := s.customers.Save(ctx, customer); err != nil {
		return nil, fmt.Errorf("save customer: %w", err)
	}
	return toCustomerResponse(customer), nil
}

func (s *CustomerService) GetCustomer(ctx context.Context, id uuid.UUID) (*CustomerResponse, error) {
	customer, err := s.customers.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find customer: %w", err)
	}
	if customer == nil {
		return nil, shared.ErrNotFound
	}
	return toCustomerResponse(customer), nil
}

func (s *CustomerService) ListCustomers(ctx context.Context, filter partner.CustomerFilter) (*shared.Paginated[CustomerResponse], error) {
	filter.Normalize()
	customers, total, err := s.customers.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}

	items := make([]CustomerResponse, 0, len(customers))
	for i := range customers {
		items = append(items, *toCustomerResponse(&customers[i]))
	}
	page := shared.NewPaginated(items, total, filter.Page, filter.PageSize)
	return &page, nil
}

func (s *CustomerService) DeleteCustomer(ctx context.Context, id uuid.UUID) error {
	customer, err := s.customers.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("find customer: %w", err)
	}
	if customer == nil {
		return shared.ErrNotFound
	}
	return s.customers.Delete(ctx, id)
}
