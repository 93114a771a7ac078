package partner

import (
	"time"

	"github.com/adagency/backoffice/internal/domain/ledger"
	"github.com/adagency/backoffice/internal/domain/partner"
	"github.com/adagency/backoffice/internal/domain/shared"
	"github.com/adagency/backoffice/internal/domain/shared/valueobject"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CreateCustomerRequest struct {
	Name          string                  `json:"name" binding:"required"`
	Zalo          string                  `json:"zalo"`
	Facebook      string                  `json:"facebook"`
	PhoneNumber   string                  `json:"phone_number"`
	Address       string                  `json:"address"`
	Segment       partner.CustomerSegment `json:"product_type" binding:"omitempty,customer_segment"`
	AccountTypeID uuid.UUID               `json:"account_type_id" binding:"required"`
	Rate          decimal.Decimal         `json:"rate"`
	Note          string                  `json:"note"`
}

type UpdateCustomerRequest struct {
	Name          shared.Optional[string]                  `json:"name"`
	Zalo          shared.Optional[string]                  `json:"zalo"`
	Facebook      shared.Optional[string]                  `json:"facebook"`
	PhoneNumber   shared.Optional[string]                  `json:"phone_number"`
	Address       shared.Optional[string]                  `json:"address"`
	Segment       shared.Optional[partner.CustomerSegment] `json:"product_type"`
	Rate          shared.Optional[decimal.Decimal]         `json:"rate"`
	Note          shared.Optional[string]                  `json:"note"`
}

type CustomerResponse struct {
	ID            uuid.UUID               `json:"id"`
	Name          string                  `json:"name"`
	Zalo          string                  `json:"zalo"`
	Facebook      string                  `json:"facebook"`
	PhoneNumber   string                  `json:"phone_number"`
	Address       string                  `json:"address"`
	Segment       partner.CustomerSegment `json:"product_type"`
	AccountTypeID uuid.UUID               `json:"account_type_id"`
	Rate          decimal.Decimal         `json:"rate"`
	Note          string                  `json:"note"`
	CreatedAt     time.Time               `json:"created_at"`
	UpdatedAt     time.Time               `json:"updated_at"`
}

func toCustomerResponse(c *partner.Customer) *CustomerResponse {
	return &CustomerResponse{
		ID:            c.ID,
		Name:          c.Name,
		Zalo:          c.Zalo,
		Facebook:      c.Facebook,
		PhoneNumber:   c.PhoneNumber,
		Address:       c.Address,
		Segment:       c.Segment,
		AccountTypeID: c.AccountTypeID,
		Rate:          c.Rate,
		Note:          c.Note,
		CreatedAt:     c.CreatedAt,
		UpdatedAt:     c.UpdatedAt,
	}
}

type CreateSupplierRequest struct {
	Name        string `json:"name" binding:"required"`
	Zalo        string `json:"zalo"`
	PhoneNumber string `json:"phone_number"`
	Address     string `json:"address"`
	Note        string `json:"note"`
}

type UpdateSupplierRequest struct {
	Name        shared.Optional[string] `json:"name"`
	Zalo        shared.Optional[string] `json:"zalo"`
	PhoneNumber shared.Optional[string] `json:"phone_number"`
	Address     shared.Optional[string] `json:"address"`
	Note        shared.Optional[string] `json:"note"`
}

type SupplierResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Zalo        string    `json:"zalo"`
	PhoneNumber string    `json:"phone_number"`
	Address     string    `json:"address"`
	Note        string    `json:"note"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func toSupplierResponse(s *partner.Supplier) *SupplierResponse {
	return &SupplierResponse{
		ID:          s.ID,
		Name:        s.Name,
		Zalo:        s.Zalo,
		PhoneNumber: s.PhoneNumber,
		Address:     s.Address,
		Note:        s.Note,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
}

type CreateAccountTypeRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Note        string `json:"note"`
}

type UpdateAccountTypeRequest struct {
	Name        shared.Optional[string] `json:"name"`
	Description shared.Optional[string] `json:"description"`
	Note        shared.Optional[string] `json:"note"`
}

type AccountTypeResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Note        string    `json:"note"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func toAccountTypeResponse(a *partner.AccountType) *AccountTypeResponse {
	return &AccountTypeResponse{
		ID:          a.ID,
		Name:        a.Name,
		Description: a.Description,
		Note:        a.Note,
		CreatedAt:   a.CreatedAt,
		UpdatedAt:   a.UpdatedAt,
	}
}

type CreateBudgetRequest struct {
	SupplierID    uuid.UUID          `json:"supplier_id" binding:"required"`
	AccountTypeID uuid.UUID          `json:"account_type_id" binding:"required"`
	Date          time.Time          `json:"date"`
	Money         valueobject.Money  `json:"money"`
	ProductType   ledger.ProductType `json:"product_type" binding:"required,product_type"`
	SupplierRate  decimal.Decimal    `json:"supplier_rate"`
	CustomerRate  decimal.Decimal    `json:"customer_rate"`
	Note          string             `json:"note"`
}

type UpdateBudgetRequest struct {
	Date         shared.Optional[time.Time]            `json:"date"`
	Money        shared.Optional[valueobject.Money]    `json:"money"`
	ProductType  shared.Optional[ledger.ProductType]   `json:"product_type"`
	SupplierRate shared.Optional[decimal.Decimal]      `json:"supplier_rate"`
	CustomerRate shared.Optional[decimal.Decimal]      `json:"customer_rate"`
	Status       shared.Optional[partner.BudgetStatus] `json:"status"`
	Note         shared.Optional[string]               `json:"note"`
}

type BudgetResponse struct {
	ID            uuid.UUID            `json:"id"`
	SupplierID    uuid.UUID            `json:"supplier_id"`
	AccountTypeID uuid.UUID            `json:"account_type_id"`
	Date          time.Time            `json:"date"`
	Money         valueobject.Money    `json:"money"`
	ProductType   ledger.ProductType   `json:"product_type"`
	SupplierRate  decimal.Decimal      `json:"supplier_rate"`
	CustomerRate  decimal.Decimal      `json:"customer_rate"`
	Status        partner.BudgetStatus `json:"status"`
	Note          string               `json:"note"`
	CreatedAt     time.Time            `json:"created_at"`
	UpdatedAt     time.Time            `json:"updated_at"`
}

func toBudgetResponse(b *partner.Budget) *BudgetResponse {
	return &BudgetResponse{
		ID:            b.ID,
		SupplierID:    b.SupplierID,
		AccountTypeID: b.AccountTypeID,
		Date:          b.Date,
		Money:         b.Money,
		ProductType:   b.ProductType,
		SupplierRate:  b.SupplierRate,
		CustomerRate:  b.CustomerRate,
		Status:        b.Status,
		Note:          b.Note,
		CreatedAt:     b.CreatedAt,
		UpdatedAt:     b.UpdatedAt,
	}
}
