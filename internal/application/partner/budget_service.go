package partner

import (
	"context"
	"fmt"

	"github.com/adagency/backoffice/internal/domain/partner"
	"github.com/adagency/backoffice/internal/domain/shared"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// BudgetService manages supplier budgets, the rate source for contracts
type BudgetService struct {
	budgets      partner.BudgetRepository
	suppliers    partner.SupplierRepository
	accountTypes partner.AccountTypeRepository
	logger       *zap.Logger
}

func NewBudgetService(
	budgets partner.BudgetRepository,
	suppliers partner.SupplierRepository,
	accountTypes partner.AccountTypeRepository,
	logger *zap.Logger,
) *BudgetService {
	return &BudgetService{
		budgets:      budgets,
		suppliers:    suppliers,
		accountTypes: accountTypes,
		logger:       logger,
	}
}

func (s *BudgetService) CreateBudget(ctx context.Context, req CreateBudgetRequest) (*BudgetResponse, error) {
	supplier, err := s.suppliers.FindByID(ctx, req.SupplierID)
	if err != nil {
		return nil, fmt.Errorf("find supplier: %w", err)
	}
	if supplier == nil {
		return nil, shared.ErrNotFound
	}
	accountType, err := s.accountTypes.FindByID(ctx, req.AccountTypeID)
	if err != nil {
		return nil, fmt.Errorf("find account type: %w", err)
	}
	if accountType == nil {
		return nil, shared.ErrNotFound
	}

	budget, err := partner.NewBudget(
		req.SupplierID, req.AccountTypeID,
		req.Date, req.Money, req.ProductType,
		req.SupplierRate, req.CustomerRate,
	)
	if err != nil {
		return nil, err
	}
	budget.SetNote(req.Note)

	if err := s.budgets.Save(ctx, budget); err != nil {
		return nil, fmt.Errorf("save budget: %w", err)
	}

	s.logger.Info("budget created",
		zap.String("budget_id", budget.ID.String()),
		zap.String("supplier_id", budget.SupplierID.String()))
	return toBudgetResponse(budget), nil
}

func (s *BudgetService) UpdateBudget(ctx context.Context, id uuid.UUID, req UpdateBudgetRequest) (*BudgetResponse, error) {
	budget, err := s.budgets.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find budget: %w", err)
	}
	if budget == nil {
		return nil, shared.ErrNotFound
	}

	if date, ok := req.Date.Value(); ok {
		budget.SetDate(date)
	}
	if amount, ok := req.Money.Value(); ok {
		if err := budget.SetMoney(amount); err != nil {
			return nil, err
		}
	}
	if productType, ok := req.ProductType.Value(); ok {
		if err := budget.ChangeProductType(productType); err != nil {
			return nil, err
		}
	}
	if req.SupplierRate.HasValue() || req.CustomerRate.HasValue() {
		budget.SetRates(
			req.SupplierRate.ValueOr(budget.SupplierRate),
			req.CustomerRate.ValueOr(budget.CustomerRate),
		)
	}
	if status, ok := req.Status.Value(); ok {
		if err := budget.ChangeStatus(status); err != nil {
			return nil, err
		}
	}
	if note, ok := req.Note.Value(); ok {
		budget.SetNote(note)
	}

	if err := s.budgets.Save(ctx, budget); err != nil {
		return nil, fmt.Errorf("save budget: %w", err)
	}
	return toBudgetResponse(budget), nil
}

func (s *BudgetService) GetBudget(ctx context.Context, id uuid.UUID) (*BudgetResponse, error) {
	budget, err := s.budgets.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find budget: %w", err)
	}
	if budget == nil {
		return nil, shared.ErrNotFound
	}
	return toBudgetResponse(budget), nil
}

func (s *BudgetService) ListBudgets(ctx context.Context, filter partner.BudgetFilter) (*shared.Paginated[BudgetResponse], error) {
	filter.Normalize()
	budgets, total, err := s.budgets.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list budgets: %w", err)
	}

	items := make([]BudgetResponse, 0, len(budgets))
	for i := range budgets {
		items = append(items, *toBudgetResponse(&budgets[i]))
	}
	page := shared.NewPaginated(items, total, filter.Page, filter.PageSize)
	return &page, nil
}

func (s *BudgetService) DeleteBudget(ctx context.Context, id uuid.UUID) error {
	budget, err := s.budgets.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("find budget: %w", err)
	}
	if budget == nil {
		return shared.ErrNotFound
	}
	return s.budgets.Delete(ctx, id)
}
