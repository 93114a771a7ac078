package ledger

import (
	"time"

	"github.com/adagency/backoffice/internal/domain/ledger"
	"github.com/adagency/backoffice/internal/domain/shared"
	"github.com/adagency/backoffice/internal/domain/shared/valueobject"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreateContractRequest carries everything needed to sign a contract.
// CustomerActuallyPaid is the optional amount handed over at signing.
type CreateContractRequest struct {
	Date                 time.Time                          `json:"date" binding:"required"`
	CustomerID           uuid.UUID                          `json:"customer_id" binding:"required"`
	BudgetID             uuid.UUID                          `json:"budget_id" binding:"required"`
	Product              string                             `json:"product" binding:"required"`
	ProductType          ledger.ProductType                 `json:"product_type" binding:"required,product_type"`
	TotalCost            valueobject.Money                  `json:"total_cost"`
	SupplierRate         decimal.Decimal                    `json:"supplier_rate"`
	CustomerRate         decimal.Decimal                    `json:"customer_rate"`
	CustomerActuallyPaid shared.Optional[valueobject.Money] `json:"customer_actually_paid"`
	Note                 string                             `json:"note"`
}

// UpdateContractRequest is a patch. Omitted fields keep their current
// values; CustomerActuallyPaid omitted or null withdraws the signing
// payment entirely.
type UpdateContractRequest struct {
	Date                 shared.Optional[time.Time]         `json:"date"`
	CustomerID           shared.Optional[uuid.UUID]         `json:"customer_id"`
	BudgetID             shared.Optional[uuid.UUID]         `json:"budget_id"`
	Product              shared.Optional[string]            `json:"product"`
	ProductType          shared.Optional[ledger.ProductType] `json:"product_type"`
	TotalCost            shared.Optional[valueobject.Money] `json:"total_cost"`
	SupplierRate         shared.Optional[decimal.Decimal]   `json:"supplier_rate"`
	CustomerRate         shared.Optional[decimal.Decimal]   `json:"customer_rate"`
	CustomerActuallyPaid shared.Optional[valueobject.Money] `json:"customer_actually_paid"`
	Note                 shared.Optional[string]            `json:"note"`
}

// CreatePaymentRequest records a cash movement against a bill
type CreatePaymentRequest struct {
	BillID uuid.UUID            `json:"bill_id" binding:"required"`
	Date   time.Time            `json:"date"`
	Amount valueobject.Money    `json:"amount"`
	Method ledger.PaymentMethod `json:"method" binding:"omitempty,payment_method"`
	Note   string               `json:"note"`
}

// UpdatePaymentRequest is a patch over an existing payment
type UpdatePaymentRequest struct {
	Date   shared.Optional[time.Time]            `json:"date"`
	Amount shared.Optional[valueobject.Money]    `json:"amount"`
	Method shared.Optional[ledger.PaymentMethod] `json:"method"`
	Note   shared.Optional[string]               `json:"note"`
}

// UpdateBillRequest patches the fields a bill exposes for manual edits
type UpdateBillRequest struct {
	DepositAmount shared.Optional[valueobject.Money] `json:"deposit_amount"`
	Note          shared.Optional[string]            `json:"note"`
}

// BillTotals is the bill's resulting settlement state, returned
// alongside the primary entity of every ledger mutation.
type BillTotals struct {
	BillID        uuid.UUID         `json:"bill_id"`
	TotalMoney    valueobject.Money `json:"total_money"`
	DebtAmount    valueobject.Money `json:"debt_amount"`
	DepositAmount valueobject.Money `json:"deposit_amount"`
	Status        ledger.BillStatus `json:"status"`
}

func totalsOf(b *ledger.Bill) BillTotals {
	return BillTotals{
		BillID:        b.ID,
		TotalMoney:    b.TotalMoney,
		DebtAmount:    b.DebtAmount,
		DepositAmount: b.DepositAmount,
		Status:        b.Status,
	}
}

// ContractResponse is the contract with its derived costs and the
// settlement state of its bill.
type ContractResponse struct {
	ID                   uuid.UUID          `json:"id"`
	Date                 time.Time          `json:"date"`
	CustomerID           uuid.UUID          `json:"customer_id"`
	BudgetID             uuid.UUID          `json:"budget_id"`
	BillID               *uuid.UUID         `json:"bill_id"`
	Product              string             `json:"product"`
	ProductType          ledger.ProductType `json:"product_type"`
	TotalCost            valueobject.Money  `json:"total_cost"`
	SupplierRate         decimal.Decimal    `json:"supplier_rate"`
	CustomerRate         decimal.Decimal    `json:"customer_rate"`
	CustomerActuallyPaid valueobject.Money  `json:"customer_actually_paid"`
	CustomerCost         valueobject.Money  `json:"customer_cost"`
	SupplierCost         valueobject.Money  `json:"supplier_cost"`
	Profit               valueobject.Money  `json:"profit"`
	Note                 string             `json:"note"`
	Bill                 *BillTotals        `json:"bill,omitempty"`
	CreatedAt            time.Time          `json:"created_at"`
	UpdatedAt            time.Time          `json:"updated_at"`
}

func toContractResponse(c *ledger.Contract, bill *ledger.Bill) *ContractResponse {
	resp := &ContractResponse{
		ID:                   c.ID,
		Date:                 c.Date,
		CustomerID:           c.CustomerID,
		BudgetID:             c.BudgetID,
		BillID:               c.BillID,
		Product:              c.Product,
		ProductType:          c.ProductType,
		TotalCost:            c.TotalCost,
		SupplierRate:         c.SupplierRate,
		CustomerRate:         c.CustomerRate,
		CustomerActuallyPaid: c.CustomerActuallyPaid,
		CustomerCost:         c.CustomerCost(),
		SupplierCost:         c.SupplierCost(),
		Profit:               c.Profit(),
		Note:                 c.Note,
		CreatedAt:            c.CreatedAt,
		UpdatedAt:            c.UpdatedAt,
	}
	if bill != nil {
		t := totalsOf(bill)
		resp.Bill = &t
	}
	return resp
}

// PaymentResponse is the payment with its bill's settlement state
type PaymentResponse struct {
	ID        uuid.UUID            `json:"id"`
	BillID    uuid.UUID            `json:"bill_id"`
	Date      time.Time            `json:"date"`
	Amount    valueobject.Money    `json:"amount"`
	Method    ledger.PaymentMethod `json:"method"`
	Note      string               `json:"note"`
	IsDeposit bool                 `json:"is_deposit"`
	Bill      *BillTotals          `json:"bill,omitempty"`
	CreatedAt time.Time            `json:"created_at"`
	UpdatedAt time.Time            `json:"updated_at"`
}

func toPaymentResponse(p *ledger.Payment, bill *ledger.Bill) *PaymentResponse {
	resp := &PaymentResponse{
		ID:        p.ID,
		BillID:    p.BillID,
		Date:      p.Date,
		Amount:    p.Amount,
		Method:    p.Method,
		Note:      p.Note,
		IsDeposit: p.IsDeposit,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
	if bill != nil {
		t := totalsOf(bill)
		resp.Bill = &t
	}
	return resp
}

// BillResponse is the full bill record
type BillResponse struct {
	ID            uuid.UUID         `json:"id"`
	Date          time.Time         `json:"date"`
	CustomerID    uuid.UUID         `json:"customer_id"`
	TotalMoney    valueobject.Money `json:"total_money"`
	DebtAmount    valueobject.Money `json:"debt_amount"`
	DepositAmount valueobject.Money `json:"deposit_amount"`
	Status        ledger.BillStatus `json:"status"`
	Note          string            `json:"note"`
	CreatedAt     time.Time         `json:"created_at"`
	UpdatedAt     time.Time         `json:"updated_at"`
}

func toBillResponse(b *ledger.Bill) *BillResponse {
	return &BillResponse{
		ID:            b.ID,
		Date:          b.Date,
		CustomerID:    b.CustomerID,
		TotalMoney:    b.TotalMoney,
		DebtAmount:    b.DebtAmount,
		DepositAmount: b.DepositAmount,
		Status:        b.Status,
		Note:          b.Note,
		CreatedAt:     b.CreatedAt,
		UpdatedAt:     b.UpdatedAt,
	}
}
