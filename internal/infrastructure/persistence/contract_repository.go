package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/adagency/backoffice/internal/domain/ledger"
	"github.com/adagency/backoffice/internal/domain/shared"
	"github.com/adagency/backoffice/internal/infrastructure/persistence/models"
)

// GormContractRepository implements ContractRepository using GORM
type GormContractRepository struct {
	db *gorm.DB
}

// NewGormContractRepository creates a new GormContractRepository
func NewGormContractRepository(db *gorm.DB) *GormContractRepository {
	return &GormContractRepository{db: db}
}

// FindByID finds a contract by its ID
func (r *GormContractRepository) FindByID(ctx context.Context, id uuid.UUID) (*ledger.Contract, error) {
	var model models.ContractModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindDuplicate returns an existing contract with the same group key
// and rates, or nil when there is none
func (r *GormContractRepository) FindDuplicate(ctx context.Context, key ledger.BillGroupKey, supplierRate, customerRate decimal.Decimal) (*ledger.Contract, error) {
	var model models.ContractModel
	err := r.db.WithContext(ctx).
		Where("customer_id = ? AND budget_id = ? AND product = ? AND supplier_rate = ? AND customer_rate = ?",
			key.CustomerID, key.BudgetID, key.Product, supplierRate, customerRate).
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindGroupPeer returns another contract sharing the group key,
// excluding the given contract ID, or nil when the group has no peer
func (r *GormContractRepository) FindGroupPeer(ctx context.Context, key ledger.BillGroupKey, excludeID uuid.UUID) (*ledger.Contract, error) {
	var model models.ContractModel
	query := r.db.WithContext(ctx).
		Where("customer_id = ? AND budget_id = ? AND product = ?", key.CustomerID, key.BudgetID, key.Product)
	if excludeID != uuid.Nil {
		query = query.Where("id <> ?", excludeID)
	}
	if err := query.First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// CountByBill counts contracts attached to a bill, excluding the given ID
func (r *GormContractRepository) CountByBill(ctx context.Context, billID, excludeID uuid.UUID) (int64, error) {
	var count int64
	query := r.db.WithContext(ctx).
		Model(&models.ContractModel{}).
		Where("bill_id = ?", billID)
	if excludeID != uuid.Nil {
		query = query.Where("id <> ?", excludeID)
	}
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// DetachByBill clears bill_id on every contract attached to the bill
func (r *GormContractRepository) DetachByBill(ctx context.Context, billID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Model(&models.ContractModel{}).
		Where("bill_id = ?", billID).
		Update("bill_id", nil).Error
}

// List finds contracts matching the filter, newest first, with the total count
func (r *GormContractRepository) List(ctx context.Context, filter ledger.ContractFilter) ([]ledger.Contract, int64, error) {
	var total int64
	countQuery := r.applyFilter(r.db.WithContext(ctx).Model(&models.ContractModel{}), filter)
	if err := countQuery.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []models.ContractModel
	query := r.applyFilter(r.db.WithContext(ctx).Model(&models.ContractModel{}), filter)
	query = applyPagination(query, filter.Filter, "contracts.date DESC, contracts.created_at DESC", "date", "total_cost", "created_at")
	if err := query.Find(&rows).Error; err != nil {
		return nil, 0, err
	}

	contracts := make([]ledger.Contract, len(rows))
	for i := range rows {
		contracts[i] = *rows[i].ToDomain()
	}
	return contracts, total, nil
}

// Save creates or updates a contract
func (r *GormContractRepository) Save(ctx context.Context, contract *ledger.Contract) error {
	model := models.ContractModelFromDomain(contract)
	return r.db.WithContext(ctx).Save(model).Error
}

// Delete deletes a contract
func (r *GormContractRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.ContractModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// applyFilter applies contract filter conditions to the query.
// Supplier and account type live on the budget, so those filters join
// through the budgets table.
func (r *GormContractRepository) applyFilter(query *gorm.DB, filter ledger.ContractFilter) *gorm.DB {
	if filter.CustomerID != nil {
		query = query.Where("contracts.customer_id = ?", *filter.CustomerID)
	}
	if filter.ProductType != nil {
		query = query.Where("contracts.product_type = ?", *filter.ProductType)
	}
	if filter.FromDate != nil {
		query = query.Where("contracts.date >= ?", *filter.FromDate)
	}
	if filter.ToDate != nil {
		query = query.Where("contracts.date <= ?", *filter.ToDate)
	}
	if filter.SupplierID != nil || filter.AccountTypeID != nil {
		query = query.Joins("JOIN budgets ON budgets.id = contracts.budget_id")
		if filter.SupplierID != nil {
			query = query.Where("budgets.supplier_id = ?", *filter.SupplierID)
		}
		if filter.AccountTypeID != nil {
			query = query.Where("budgets.account_type_id = ?", *filter.AccountTypeID)
		}
	}
	return query
}

var _ ledger.ContractRepository = (*GormContractRepository)(nil)
