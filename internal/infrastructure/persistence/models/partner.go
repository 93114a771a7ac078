package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/adagency/backoffice/internal/domain/ledger"
	"github.com/adagency/backoffice/internal/domain/partner"
	"github.com/adagency/backoffice/internal/domain/shared/valueobject"
)

// CustomerModel is the persistence model for the Customer aggregate root.
type CustomerModel struct {
	AggregateModel
	Name          string                  `gorm:"type:varchar(200);not null;index"`
	Zalo          string                  `gorm:"type:varchar(100)"`
	Facebook      string                  `gorm:"type:varchar(200)"`
	PhoneNumber   string                  `gorm:"type:varchar(30)"`
	Address       string                  `gorm:"type:varchar(500)"`
	Segment       partner.CustomerSegment `gorm:"type:varchar(20);not null"`
	AccountTypeID uuid.UUID               `gorm:"type:uuid;not null;index"`
	Rate          decimal.Decimal         `gorm:"type:decimal(8,4);not null"`
	Note          string                  `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (CustomerModel) TableName() string {
	return "customers"
}

// ToDomain converts the persistence model to a domain Customer.
func (m *CustomerModel) ToDomain() *partner.Customer {
	return &partner.Customer{
		BaseAggregateRoot: m.toDomainAggregateRoot(),
		Name:              m.Name,
		Zalo:              m.Zalo,
		Facebook:          m.Facebook,
		PhoneNumber:       m.PhoneNumber,
		Address:           m.Address,
		Segment:           m.Segment,
		AccountTypeID:     m.AccountTypeID,
		Rate:              m.Rate,
		Note:              m.Note,
	}
}

// FromDomain populates the persistence model from a domain Customer.
func (m *CustomerModel) FromDomain(c *partner.Customer) {
	m.FromDomainAggregateRoot(c.BaseAggregateRoot)
	m.Name = c.Name
	m.Zalo = c.Zalo
	m.Facebook = c.Facebook
	m.PhoneNumber = c.PhoneNumber
	m.Address = c.Address
	m.Segment = c.Segment
	m.AccountTypeID = c.AccountTypeID
	m.Rate = c.Rate
	m.Note = c.Note
}

// CustomerModelFromDomain creates a new persistence model from a domain Customer.
func CustomerModelFromDomain(c *partner.Customer) *CustomerModel {
	m := &CustomerModel{}
	m.FromDomain(c)
	return m
}

// SupplierModel is the persistence model for the Supplier aggregate root.
type SupplierModel struct {
	AggregateModel
	Name        string `gorm:"type:varchar(200);not null;index"`
	Zalo        string `gorm:"type:varchar(100)"`
	PhoneNumber string `gorm:"type:varchar(30)"`
	Address     string `gorm:"type:varchar(500)"`
	Note        string `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (SupplierModel) TableName() string {
	return "suppliers"
}

// ToDomain converts the persistence model to a domain Supplier.
func (m *SupplierModel) ToDomain() *partner.Supplier {
	return &partner.Supplier{
		BaseAggregateRoot: m.toDomainAggregateRoot(),
		Name:              m.Name,
		Zalo:              m.Zalo,
		PhoneNumber:       m.PhoneNumber,
		Address:           m.Address,
		Note:              m.Note,
	}
}

// FromDomain populates the persistence model from a domain Supplier.
func (m *SupplierModel) FromDomain(s *partner.Supplier) {
	m.FromDomainAggregateRoot(s.BaseAggregateRoot)
	m.Name = s.Name
	m.Zalo = s.Zalo
	m.PhoneNumber = s.PhoneNumber
	m.Address = s.Address
	m.Note = s.Note
}

// SupplierModelFromDomain creates a new persistence model from a domain Supplier.
func SupplierModelFromDomain(s *partner.Supplier) *SupplierModel {
	m := &SupplierModel{}
	m.FromDomain(s)
	return m
}

// AccountTypeModel is the persistence model for the AccountType aggregate root.
type AccountTypeModel struct {
	AggregateModel
	Name        string `gorm:"type:varchar(100);not null;index"`
	Description string `gorm:"type:varchar(500)"`
	Note        string `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (AccountTypeModel) TableName() string {
	return "account_types"
}

// ToDomain converts the persistence model to a domain AccountType.
func (m *AccountTypeModel) ToDomain() *partner.AccountType {
	return &partner.AccountType{
		BaseAggregateRoot: m.toDomainAggregateRoot(),
		Name:              m.Name,
		Description:       m.Description,
		Note:              m.Note,
	}
}

// FromDomain populates the persistence model from a domain AccountType.
func (m *AccountTypeModel) FromDomain(a *partner.AccountType) {
	m.FromDomainAggregateRoot(a.BaseAggregateRoot)
	m.Name = a.Name
	m.Description = a.Description
	m.Note = a.Note
}

// AccountTypeModelFromDomain creates a new persistence model from a domain AccountType.
func AccountTypeModelFromDomain(a *partner.AccountType) *AccountTypeModel {
	m := &AccountTypeModel{}
	m.FromDomain(a)
	return m
}

// BudgetModel is the persistence model for the Budget aggregate root.
type BudgetModel struct {
	AggregateModel
	SupplierID    uuid.UUID            `gorm:"type:uuid;not null;index"`
	AccountTypeID uuid.UUID            `gorm:"type:uuid;not null;index"`
	Date          time.Time            `gorm:"not null;index"`
	Money         valueobject.Money    `gorm:"type:decimal(15,2);not null"`
	ProductType   ledger.ProductType   `gorm:"type:varchar(20);not null"`
	SupplierRate  decimal.Decimal      `gorm:"type:decimal(8,4);not null"`
	CustomerRate  decimal.Decimal      `gorm:"type:decimal(8,4);not null"`
	Status        partner.BudgetStatus `gorm:"type:varchar(20);not null;index"`
	Note          string               `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (BudgetModel) TableName() string {
	return "budgets"
}

// ToDomain converts the persistence model to a domain Budget.
func (m *BudgetModel) ToDomain() *partner.Budget {
	return &partner.Budget{
		BaseAggregateRoot: m.toDomainAggregateRoot(),
		SupplierID:        m.SupplierID,
		AccountTypeID:     m.AccountTypeID,
		Date:              m.Date,
		Money:             m.Money,
		ProductType:       m.ProductType,
		SupplierRate:      m.SupplierRate,
		CustomerRate:      m.CustomerRate,
		Status:            m.Status,
		Note:              m.Note,
	}
}

// FromDomain populates the persistence model from a domain Budget.
func (m *BudgetModel) FromDomain(b *partner.Budget) {
	m.FromDomainAggregateRoot(b.BaseAggregateRoot)
	m.SupplierID = b.SupplierID
	m.AccountTypeID = b.AccountTypeID
	m.Date = b.Date
	m.Money = b.Money
	m.ProductType = b.ProductType
	m.SupplierRate = b.SupplierRate
	m.CustomerRate = b.CustomerRate
	m.Status = b.Status
	m.Note = b.Note
}

// BudgetModelFromDomain creates a new persistence model from a domain Budget.
func BudgetModelFromDomain(b *partner.Budget) *BudgetModel {
	m := &BudgetModel{}
	m.FromDomain(b)
	return m
}
