package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/adagency/backoffice/internal/domain/ledger"
	"github.com/adagency/backoffice/internal/domain/shared"
	"github.com/adagency/backoffice/internal/infrastructure/persistence/models"
)

// GormPaymentRepository implements PaymentRepository using GORM
type GormPaymentRepository struct {
	db *gorm.DB
}

// NewGormPaymentRepository creates a new GormPaymentRepository
func NewGormPaymentRepository(db *gorm.DB) *GormPaymentRepository {
	return &GormPaymentRepository{db: db}
}

// FindByID finds a payment by its ID
func (r *GormPaymentRepository) FindByID(ctx context.Context, id uuid.UUID) (*ledger.Payment, error) {
	var model models.PaymentModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByBill returns all payments of a bill in recompute order:
// ascending date, insertion order on ties
func (r *GormPaymentRepository) FindByBill(ctx context.Context, billID uuid.UUID) ([]ledger.Payment, error) {
	var rows []models.PaymentModel
	if err := r.db.WithContext(ctx).
		Where("bill_id = ?", billID).
		Order("date ASC, created_at ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	return toDomainPayments(rows), nil
}

// ListByBill returns all payments of a bill newest first, for display
func (r *GormPaymentRepository) ListByBill(ctx context.Context, billID uuid.UUID) ([]ledger.Payment, error) {
	var rows []models.PaymentModel
	if err := r.db.WithContext(ctx).
		Where("bill_id = ?", billID).
		Order("date DESC, created_at DESC").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	return toDomainPayments(rows), nil
}

// FindDepositByBill returns the bill's deposit payment, or nil when the
// bill holds none
func (r *GormPaymentRepository) FindDepositByBill(ctx context.Context, billID uuid.UUID) (*ledger.Payment, error) {
	var model models.PaymentModel
	err := r.db.WithContext(ctx).
		Where("bill_id = ? AND is_deposit = ?", billID, true).
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// Save creates or updates a payment
func (r *GormPaymentRepository) Save(ctx context.Context, payment *ledger.Payment) error {
	model := models.PaymentModelFromDomain(payment)
	return r.db.WithContext(ctx).Save(model).Error
}

// Delete deletes a payment
func (r *GormPaymentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.PaymentModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// DeleteByBill removes every payment of a bill
func (r *GormPaymentRepository) DeleteByBill(ctx context.Context, billID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Delete(&models.PaymentModel{}, "bill_id = ?", billID).Error
}

func toDomainPayments(rows []models.PaymentModel) []ledger.Payment {
	payments := make([]ledger.Payment, len(rows))
	for i := range rows {
		payments[i] = *rows[i].ToDomain()
	}
	return payments
}

var _ ledger.PaymentRepository = (*GormPaymentRepository)(nil)
