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

// GormBudgetRepository implements BudgetRepository using GORM
type GormBudgetRepository struct {
	db *gorm.DB
}

// NewGormBudgetRepository creates a new GormBudgetRepository
func NewGormBudgetRepository(db *gorm.DB) *GormBudgetRepository {
	return &GormBudgetRepository{db: db}
}

// FindByID finds a budget by its ID
func (r *GormBudgetRepository) FindByID(ctx context.Context, id uuid.UUID) (*partner.Budget, error) {
	var model models.BudgetModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// List finds budgets matching the filter with the total count
func (r *GormBudgetRepository) List(ctx context.Context, filter partner.BudgetFilter) ([]partner.Budget, int64, error) {
	var total int64
	countQuery := r.applyFilter(r.db.WithContext(ctx).Model(&models.BudgetModel{}), filter)
	if err := countQuery.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []models.BudgetModel
	query := r.applyFilter(r.db.WithContext(ctx).Model(&models.BudgetModel{}), filter)
	query = applyPagination(query, filter.Filter, "date DESC, created_at DESC", "date", "money", "created_at")
	if err := query.Find(&rows).Error; err != nil {
		return nil, 0, err
	}

	budgets := make([]partner.Budget, len(rows))
	for i := range rows {
		budgets[i] = *rows[i].ToDomain()
	}
	return budgets, total, nil
}

// Save creates or updates a budget
func (r *GormBudgetRepository) Save(ctx context.Context, budget *partner.Budget) error {
	model := models.BudgetModelFromDomain(budget)
	return r.db.WithContext(ctx).Save(model).Error
}

// Delete deletes a budget
func (r *GormBudgetRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.BudgetModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// applyFilter applies budget filter conditions to the query
func (r *GormBudgetRepository) applyFilter(query *gorm.DB, filter partner.BudgetFilter) *gorm.DB {
	if filter.SupplierID != nil {
		query = query.Where("supplier_id = ?", *filter.SupplierID)
	}
	if filter.AccountTypeID != nil {
		query = query.Where("account_type_id = ?", *filter.AccountTypeID)
	}
	if filter.ProductType != "" {
		query = query.Where("product_type = ?", filter.ProductType)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	return query
}

var _ partner.BudgetRepository = (*GormBudgetRepository)(nil)
