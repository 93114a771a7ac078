package ledger

import (
	"github.com/adagency/backoffice/internal/domain/shared"
	"github.com/google/uuid"
)

// Event type constants
const (
	EventTypeBillOpened         = "ledger.bill.opened"
	EventTypeBillRebalanced     = "ledger.bill.rebalanced"
	EventTypeBillClosed         = "ledger.bill.closed"
	EventTypeContractSigned     = "ledger.contract.signed"
	EventTypeContractAmended    = "ledger.contract.amended"
	EventTypeContractTerminated = "ledger.contract.terminated"
	EventTypePaymentRecorded    = "ledger.payment.recorded"
	EventTypePaymentRemoved     = "ledger.payment.removed"
)

// BillOpenedEvent is raised when a new bill is created for a group
type BillOpenedEvent struct {
	shared.BaseDomainEvent
	CustomerID uuid.UUID `json:"customer_id"`
}

// NewBillOpenedEvent creates a new BillOpenedEvent
func NewBillOpenedEvent(b *Bill) *BillOpenedEvent {
	return &BillOpenedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeBillOpened, "Bill", b.ID),
		CustomerID:      b.CustomerID,
	}
}

// BillRebalancedEvent is raised after a bill's debt/deposit were recomputed
type BillRebalancedEvent struct {
	shared.BaseDomainEvent
	TotalMoney    string     `json:"total_money"`
	DebtAmount    string     `json:"debt_amount"`
	DepositAmount string     `json:"deposit_amount"`
	Status        BillStatus `json:"status"`
}

// NewBillRebalancedEvent creates a new BillRebalancedEvent
func NewBillRebalancedEvent(b *Bill) *BillRebalancedEvent {
	return &BillRebalancedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeBillRebalanced, "Bill", b.ID),
		TotalMoney:      b.TotalMoney.String(),
		DebtAmount:      b.DebtAmount.String(),
		DepositAmount:   b.DepositAmount.String(),
		Status:          b.Status,
	}
}

// BillClosedEvent is raised when a bill lost its last contract and is removed
type BillClosedEvent struct {
	shared.BaseDomainEvent
	CustomerID uuid.UUID `json:"customer_id"`
}

// NewBillClosedEvent creates a new BillClosedEvent
func NewBillClosedEvent(b *Bill) *BillClosedEvent {
	return &BillClosedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeBillClosed, "Bill", b.ID),
		CustomerID:      b.CustomerID,
	}
}

// ContractSignedEvent is raised when a contract is created
type ContractSignedEvent struct {
	shared.BaseDomainEvent
	CustomerID   uuid.UUID `json:"customer_id"`
	BudgetID     uuid.UUID `json:"budget_id"`
	Product      string    `json:"product"`
	CustomerCost string    `json:"customer_cost"`
}

// NewContractSignedEvent creates a new ContractSignedEvent
func NewContractSignedEvent(c *Contract) *ContractSignedEvent {
	return &ContractSignedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeContractSigned, "Contract", c.ID),
		CustomerID:      c.CustomerID,
		BudgetID:        c.BudgetID,
		Product:         c.Product,
		CustomerCost:    c.CustomerCost().String(),
	}
}

// ContractAmendedEvent is raised after a contract update was reconciled
type ContractAmendedEvent struct {
	shared.BaseDomainEvent
	ChangedGroup bool `json:"changed_group"`
}

// NewContractAmendedEvent creates a new ContractAmendedEvent
func NewContractAmendedEvent(c *Contract, changedGroup bool) *ContractAmendedEvent {
	return &ContractAmendedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeContractAmended, "Contract", c.ID),
		ChangedGroup:    changedGroup,
	}
}

// ContractTerminatedEvent is raised when a contract is deleted
type ContractTerminatedEvent struct {
	shared.BaseDomainEvent
	CustomerCost string `json:"customer_cost"`
}

// NewContractTerminatedEvent creates a new ContractTerminatedEvent
func NewContractTerminatedEvent(c *Contract) *ContractTerminatedEvent {
	return &ContractTerminatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeContractTerminated, "Contract", c.ID),
		CustomerCost:    c.CustomerCost().String(),
	}
}

// PaymentRecordedEvent is raised when a payment is created
type PaymentRecordedEvent struct {
	shared.BaseDomainEvent
	BillID    uuid.UUID `json:"bill_id"`
	Amount    string    `json:"amount"`
	IsDeposit bool      `json:"is_deposit"`
}

// NewPaymentRecordedEvent creates a new PaymentRecordedEvent
func NewPaymentRecordedEvent(p *Payment) *PaymentRecordedEvent {
	return &PaymentRecordedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypePaymentRecorded, "Payment", p.ID),
		BillID:          p.BillID,
		Amount:          p.Amount.String(),
		IsDeposit:       p.IsDeposit,
	}
}

// PaymentRemovedEvent is raised when a payment is deleted
type PaymentRemovedEvent struct {
	shared.BaseDomainEvent
	BillID uuid.UUID `json:"bill_id"`
	Amount string    `json:"amount"`
}

// NewPaymentRemovedEvent creates a new PaymentRemovedEvent
func NewPaymentRemovedEvent(p *Payment) *PaymentRemovedEvent {
	return &PaymentRemovedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypePaymentRemoved, "Payment", p.ID),
		BillID:          p.BillID,
		Amount:          p.Amount.String(),
	}
}
