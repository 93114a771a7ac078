package ledger

import (
	"fmt"
	"time"

	"github.com/adagency/backoffice/internal/domain/shared"
	"github.com/adagency/backoffice/internal/domain/shared/valueobject"
	"github.com/google/uuid"
)

// PaymentMethod represents how the customer moved the money
type PaymentMethod string

const (
	PaymentMethodCash     PaymentMethod = "cash"
	PaymentMethodTransfer PaymentMethod = "transfer"
)

// IsValid checks if the method is a valid PaymentMethod. The empty
// string is accepted: method is optional on ad hoc payments.
func (m PaymentMethod) IsValid() bool {
	return m == "" || m == PaymentMethodCash || m == PaymentMethodTransfer
}

// Payment is a cash movement recorded against a bill. A payment flagged
// is_deposit is the upfront amount tied to a contract's signing; later
// ad hoc payments carry the flag unset.
type Payment struct {
	shared.BaseEntity
	BillID    uuid.UUID
	Date      time.Time
	Amount    valueobject.Money
	Method    PaymentMethod
	Note      string
	IsDeposit bool
}

// NewPayment records a payment against a bill
func NewPayment(billID uuid.UUID, date time.Time, amount valueobject.Money, method PaymentMethod, note string, isDeposit bool) (*Payment, error) {
	if billID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_BILL", "Bill ID cannot be empty")
	}
	if amount.IsNegative() {
		return nil, shared.ErrInvalidAmount
	}
	if !method.IsValid() {
		return nil, shared.NewDomainError("INVALID_METHOD", fmt.Sprintf("Unknown payment method %q", method))
	}
	if date.IsZero() {
		date = time.Now()
	}

	return &Payment{
		BaseEntity: shared.NewBaseEntity(),
		BillID:     billID,
		Date:       date,
		Amount:     amount,
		Method:     method,
		Note:       note,
		IsDeposit:  isDeposit,
	}, nil
}

// NewDepositPayment records the upfront amount a customer paid when
// signing a contract. It is always a transfer and carries a generated note.
func NewDepositPayment(billID uuid.UUID, amount valueobject.Money) (*Payment, error) {
	note := fmt.Sprintf("Deposit received on signing: %s", amount)
	return NewPayment(billID, time.Now(), amount, PaymentMethodTransfer, note, true)
}

// SetAmount replaces the payment amount
func (p *Payment) SetAmount(amount valueobject.Money) error {
	if amount.IsNegative() {
		return shared.ErrInvalidAmount
	}
	p.Amount = amount
	p.Touch()
	return nil
}

// SetDate replaces the payment date. The date drives recompute order,
// so callers must rebalance the bill afterwards.
func (p *Payment) SetDate(date time.Time) {
	p.Date = date
	p.Touch()
}

// SetMethod replaces the payment method
func (p *Payment) SetMethod(method PaymentMethod) error {
	if !method.IsValid() {
		return shared.NewDomainError("INVALID_METHOD", fmt.Sprintf("Unknown payment method %q", method))
	}
	p.Method = method
	p.Touch()
	return nil
}

// SetNote replaces the payment note
func (p *Payment) SetNote(note string) {
	p.Note = note
	p.Touch()
}

// RefreshDepositNote regenerates the note after the deposited amount changed
func (p *Payment) RefreshDepositNote() {
	if p.IsDeposit {
		p.Note = fmt.Sprintf("Deposit received on signing: %s", p.Amount)
	}
}
