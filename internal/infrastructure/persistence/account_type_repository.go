package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/adagency/backoffice/internal/domain/partner"
	"github.com/adagency/backoffice/internal/domain/shared"
	"github.com/adagency/backoffice/internal/infrastructure/persistence/models"
)

// GormAccountTypeRepository implements AccountTypeRepository using GORM
type GormAccountTypeRepository struct {
	db *gorm.DB
}

// NewGormAccountTypeRepository creates a new GormAccountTypeRepository
func NewGormAccountTypeRepository(db *gorm.DB) *GormAccountTypeRepository {
	return &GormAccountTypeRepository{db: db}
}

// FindByID finds an account type by its ID
func (r *GormAccountTypeRepository) FindByID(ctx context.Context, id uuid.UUID) (*partner.AccountType, error) {
	var model models.AccountTypeModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// List finds account types matching the filter with the total count
func (r *GormAccountTypeRepository) List(ctx context.Context, filter shared.Filter) ([]partner.AccountType, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&models.AccountTypeModel{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []models.AccountTypeModel
	query := applyPagination(r.db.WithContext(ctx).Model(&models.AccountTypeModel{}), filter, "name ASC", "name", "created_at")
	if err := query.Find(&rows).Error; err != nil {
		return nil, 0, err
	}

	accountTypes := make([]partner.AccountType, len(rows))
	for i := range rows {
		accountTypes[i] = *rows[i].ToDomain()
	}
	return accountTypes, total, nil
}

// Save creates or updates an account type
func (r *GormAccountTypeRepository) Save(ctx context.Context, accountType *partner.AccountType) error {
	model := models.AccountTypeModelFromDomain(accountType)
	return r.db.WithContext(ctx).Save(model).Error
}

// Delete deletes an account type
func (r *GormAccountTypeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.AccountTypeModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

var _ partner.AccountTypeRepository = (*GormAccountTypeRepository)(nil)
