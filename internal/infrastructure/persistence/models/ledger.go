package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/adagency/backoffice/internal/domain/ledger"
	"github.com/adagency/backoffice/internal/domain/shared/valueobject"
)

// BillModel is the persistence model for the Bill aggregate root.
type BillModel struct {
	AggregateModel
	Date          time.Time         `gorm:"not null;index"`
	CustomerID    uuid.UUID         `gorm:"type:uuid;not null;index"`
	TotalMoney    valueobject.Money `gorm:"type:decimal(15,2);not null"`
	DebtAmount    valueobject.Money `gorm:"type:decimal(15,2);not null"`
	DepositAmount valueobject.Money `gorm:"type:decimal(15,2);not null"`
	Status        ledger.BillStatus `gorm:"type:varchar(20);not null;index"`
	Note          string            `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (BillModel) TableName() string {
	return "bills"
}

// ToDomain converts the persistence model to a domain Bill.
func (m *BillModel) ToDomain() *ledger.Bill {
	return &ledger.Bill{
		BaseAggregateRoot: m.toDomainAggregateRoot(),
		Date:              m.Date,
		CustomerID:        m.CustomerID,
		TotalMoney:        m.TotalMoney,
		DebtAmount:        m.DebtAmount,
		DepositAmount:     m.DepositAmount,
		Status:            m.Status,
		Note:              m.Note,
	}
}

// FromDomain populates the persistence model from a domain Bill.
func (m *BillModel) FromDomain(b *ledger.Bill) {
	m.FromDomainAggregateRoot(b.BaseAggregateRoot)
	m.Date = b.Date
	m.CustomerID = b.CustomerID
	m.TotalMoney = b.TotalMoney
	m.DebtAmount = b.DebtAmount
	m.DepositAmount = b.DepositAmount
	m.Status = b.Status
	m.Note = b.Note
}

// BillModelFromDomain creates a new persistence model from a domain Bill.
func BillModelFromDomain(b *ledger.Bill) *BillModel {
	m := &BillModel{}
	m.FromDomain(b)
	return m
}

// ContractModel is the persistence model for the Contract aggregate root.
type ContractModel struct {
	AggregateModel
	Date                 time.Time          `gorm:"not null;index"`
	CustomerID           uuid.UUID          `gorm:"type:uuid;not null;index:idx_contracts_group,priority:1"`
	BudgetID             uuid.UUID          `gorm:"type:uuid;not null;index:idx_contracts_group,priority:2"`
	BillID               *uuid.UUID         `gorm:"type:uuid;index"`
	Product              string             `gorm:"type:varchar(200);not null;index:idx_contracts_group,priority:3"`
	ProductType          ledger.ProductType `gorm:"type:varchar(20);not null"`
	TotalCost            valueobject.Money  `gorm:"type:decimal(15,2);not null"`
	SupplierRate         decimal.Decimal    `gorm:"type:decimal(8,4);not null"`
	CustomerRate         decimal.Decimal    `gorm:"type:decimal(8,4);not null"`
	CustomerActuallyPaid valueobject.Money  `gorm:"type:decimal(15,2);not null"`
	Note                 string             `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (ContractModel) TableName() string {
	return "contracts"
}

// ToDomain converts the persistence model to a domain Contract.
func (m *ContractModel) ToDomain() *ledger.Contract {
	return &ledger.Contract{
		BaseAggregateRoot:    m.toDomainAggregateRoot(),
		Date:                 m.Date,
		CustomerID:           m.CustomerID,
		BudgetID:             m.BudgetID,
		BillID:               m.BillID,
		Product:              m.Product,
		ProductType:          m.ProductType,
		TotalCost:            m.TotalCost,
		SupplierRate:         m.SupplierRate,
		CustomerRate:         m.CustomerRate,
		CustomerActuallyPaid: m.CustomerActuallyPaid,
		Note:                 m.Note,
	}
}

// FromDomain populates the persistence model from a domain Contract.
func (m *ContractModel) FromDomain(c *ledger.Contract) {
	m.FromDomainAggregateRoot(c.BaseAggregateRoot)
	m.Date = c.Date
	m.CustomerID = c.CustomerID
	m.BudgetID = c.BudgetID
	m.BillID = c.BillID
	m.Product = c.Product
	m.ProductType = c.ProductType
	m.TotalCost = c.TotalCost
	m.SupplierRate = c.SupplierRate
	m.CustomerRate = c.CustomerRate
	m.CustomerActuallyPaid = c.CustomerActuallyPaid
	m.Note = c.Note
}

// ContractModelFromDomain creates a new persistence model from a domain Contract.
func ContractModelFromDomain(c *ledger.Contract) *ContractModel {
	m := &ContractModel{}
	m.FromDomain(c)
	return m
}

// PaymentModel is the persistence model for the Payment entity.
type PaymentModel struct {
	BaseModel
	BillID    uuid.UUID            `gorm:"type:uuid;not null;index"`
	Date      time.Time            `gorm:"not null;index"`
	Amount    valueobject.Money    `gorm:"type:decimal(15,2);not null"`
	Method    ledger.PaymentMethod `gorm:"type:varchar(20)"`
	Note      string               `gorm:"type:text"`
	IsDeposit bool                 `gorm:"not null;default:false;index"`
}

// TableName returns the table name for GORM
func (PaymentModel) TableName() string {
	return "payments"
}

// ToDomain converts the persistence model to a domain Payment.
func (m *PaymentModel) ToDomain() *ledger.Payment {
	return &ledger.Payment{
		BaseEntity: m.BaseModel.ToDomain(),
		BillID:     m.BillID,
		Date:       m.Date,
		Amount:     m.Amount,
		Method:     m.Method,
		Note:       m.Note,
		IsDeposit:  m.IsDeposit,
	}
}

// FromDomain populates the persistence model from a domain Payment.
func (m *PaymentModel) FromDomain(p *ledger.Payment) {
	m.FromDomainBaseEntity(p.BaseEntity)
	m.BillID = p.BillID
	m.Date = p.Date
	m.Amount = p.Amount
	m.Method = p.Method
	m.Note = p.Note
	m.IsDeposit = p.IsDeposit
}

// PaymentModelFromDomain creates a new persistence model from a domain Payment.
func PaymentModelFromDomain(p *ledger.Payment) *PaymentModel {
	m := &PaymentModel{}
	m.FromDomain(p)
	return m
}
