package partner

import (
	"context"
	"fmt"

	"github.com/adagency/backoffice/internal/domain/partner"
	"github.com/adagency/backoffice/internal/domain/shared"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// SupplierService manages upstream ad-account providers
type SupplierService struct {
	suppliers partner.SupplierRepository
	logger    *zap.Logger
}

func NewSupplierService(suppliers partner.SupplierRepository, logger *zap.Logger) *SupplierService {
	return &SupplierService{suppliers: suppliers, logger: logger}
}

func (s *SupplierService) CreateSupplier(ctx context.Context, req CreateSupplierRequest) (*SupplierResponse, error) {
	supplier, err := partner.NewSupplier(req.Name)
	if err != nil {
		return nil, err
	}
	supplier.UpdateContact(req.Zalo, req.PhoneNumber, req.Address)
	supplier.SetNote(req.Note)

	if err := s.suppliers.Save(ctx, supplier); err != nil {
		return nil, fmt.Errorf("save supplier: %w", err)
	}
	return toSupplierResponse(supplier), nil
}

func (s *SupplierService) UpdateSupplier(ctx context.Context, id uuid.UUID, req UpdateSupplierRequest) (*SupplierResponse, error) {
	supplier, err := s.suppliers.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find supplier: %w", err)
	}
	if supplier == nil {
		return nil, shared.ErrNotFound
	}

	if name, ok := req.Name.Value(); ok {
		if err := supplier.Rename(name); err != nil {
			return nil, err
		}
	}
	supplier.UpdateContact(
		req.Zalo.ValueOr(supplier.Zalo),
		req.PhoneNumber.ValueOr(supplier.PhoneNumber),
		req.Address.ValueOr(supplier.Address),
	)
	if note, ok := req.Note.Value(); ok {
		supplier.SetNote(note)
	}

	if err := s.suppliers.Save(ctx, supplier); err != nil {
		return nil, fmt.Errorf("save supplier: %w", err)
	}
	return toSupplierResponse(supplier), nil
}

func (s *SupplierService) GetSupplier(ctx context.Context, id uuid.UUID) (*SupplierResponse, error) {
	supplier, err := s.suppliers.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find supplier: %w", err)
	}
	if supplier == nil {
		return nil, shared.ErrNotFound
	}
	return toSupplierResponse(supplier), nil
}

func (s *SupplierService) ListSuppliers(ctx context.Context, filter shared.Filter) (*shared.Paginated[SupplierResponse], error) {
	filter.Normalize()
	suppliers, total, err := s.suppliers.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list suppliers: %w", err)
	}

	items := make([]SupplierResponse, 0, len(suppliers))
	for i := range suppliers {
		items = append(items, *toSupplierResponse(&suppliers[i]))
	}
	page := shared.NewPaginated(items, total, filter.Page, filter.PageSize)
	return &page, nil
}

func (s *SupplierService) DeleteSupplier(ctx context.Context, id uuid.UUID) error {
	supplier, err := s.suppliers.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("find supplier: %w", err)
	}
	if supplier == nil {
		return shared.ErrNotFound
	}
	return s.suppliers.Delete(ctx, id)
}
