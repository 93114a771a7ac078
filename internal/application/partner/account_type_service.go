package partner

import (
	"context"
	"fmt"

	"github.com/adagency/backoffice/internal/domain/partner"
	"github.com/adagency/backoffice/internal/domain/shared"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// AccountTypeService manages the ad-account type labels
type AccountTypeService struct {
	accountTypes partner.AccountTypeRepository
	logger       *zap.Logger
}

func NewAccountTypeService(accountTypes partner.AccountTypeRepository, logger *zap.Logger) *AccountTypeService {
	return &AccountTypeService{accountTypes: accountTypes, logger: logger}
}

func (s *AccountTypeService) CreateAccountType(ctx context.Context, req CreateAccountTypeRequest) (*AccountTypeResponse, error) {
	accountType, err := partner.NewAccountType(req.Name, req.Description)
	if err != nil {
		return nil, err
	}
	accountType.SetNote(req.Note)

	if err := s.accountTypes.Save(ctx, accountType); err != nil {
		return nil, fmt.Errorf("save account type: %w", err)
	}
	return toAccountTypeResponse(accountType), nil
}

func (s *AccountTypeService) UpdateAccountType(ctx context.Context, id uuid.UUID, req UpdateAccountTypeRequest) (*AccountTypeResponse, error) {
	accountType, err := s.accountTypes.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find account type: %w", err)
	}
	if accountType == nil {
		return nil, shared.ErrNotFound
	}

	if name, ok := req.Name.Value(); ok {
		if err := accountType.Rename(name); err != nil {
			return nil, err
		}
	}
	if description, ok := req.Description.Value(); ok {
		accountType.SetDescription(description)
	}
	if note, ok := req.Note.Value(); ok {
		accountType.SetNote(note)
	}

	if err := s.accountTypes.Save(ctx, accountType); err != nil {
		return nil, fmt.Errorf("save account type: %w", err)
	}
	return toAccountTypeResponse(accountType), nil
}

func (s *AccountTypeService) GetAccountType(ctx context.Context, id uuid.UUID) (*AccountTypeResponse, error) {
	accountType, err := s.accountTypes.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find account type: %w", err)
	}
	if accountType == nil {
		return nil, shared.ErrNotFound
	}
	return toAccountTypeResponse(accountType), nil
}

func (s *AccountTypeService) ListAccountTypes(ctx context.Context, filter shared.Filter) (*shared.Paginated[AccountTypeResponse], error) {
	filter.Normalize()
	accountTypes, total, err := s.accountTypes.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list account types: %w", err)
	}

	items := make([]AccountTypeResponse, 0, len(accountTypes))
	for i := range accountTypes {
		items = append(items, *toAccountTypeResponse(&accountTypes[i]))
	}
	page := shared.NewPaginated(items, total, filter.Page, filter.PageSize)
	return &page, nil
}

func (s *AccountTypeService) DeleteAccountType(ctx context.Context, id uuid.UUID) error {
	accountType, err := s.accountTypes.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("find account type: %w", err)
	}
	if accountType == nil {
		return shared.ErrNotFound
	}
	return s.accountTypes.Delete(ctx, id)
}
