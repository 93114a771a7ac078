package ledger

import (
	"time"

	"github.com/adagency/backoffice/internal/domain/shared"
	"github.com/adagency/backoffice/internal/domain/shared/valueobject"
	"github.com/google/uuid"
)

// BillStatus represents the settlement state of a bill
type BillStatus string

const (
	BillStatusDebt      BillStatus = "debt"      // outstanding unpaid amount remains
	BillStatusDeposit   BillStatus = "deposit"   // fully settled with money paid in excess
	BillStatusCompleted BillStatus = "completed" // fully settled, nothing held
)

// IsValid checks if the status is a valid BillStatus
func (s BillStatus) IsValid() bool {
	switch s {
	case BillStatusDebt, BillStatusDeposit, BillStatusCompleted:
		return true
	}
	return false
}

// String returns the string representation of BillStatus
func (s BillStatus) String() string {
	return string(s)
}

// StatusFor derives the bill status from its debt and deposit amounts.
// Debt takes priority: a bill with outstanding debt is reported as debt
// even if a deposit is also held.
func StatusFor(debt, deposit valueobject.Money) BillStatus {
	switch {
	case debt.IsPositive():
		return BillStatusDebt
	case deposit.IsPositive():
		return BillStatusDeposit
	default:
		return BillStatusCompleted
	}
}

// Bill is the aggregate ledger record for one contract group
// (customer x budget x product). All contracts sharing the group key
// accumulate into the same bill, and payments settle against it.
type Bill struct {
	shared.BaseAggregateRoot
	Date          time.Time
	CustomerID    uuid.UUID
	TotalMoney    valueobject.Money
	DebtAmount    valueobject.Money
	DepositAmount valueobject.Money
	Status        BillStatus
	Note          string
}

// NewBill opens an empty bill for a customer. Contract totals and
// customer payments are applied afterwards.
func NewBill(customerID uuid.UUID, date time.Time, note string) (*Bill, error) {
	if customerID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_CUSTOMER", "Customer ID cannot be empty")
	}
	if date.IsZero() {
		date = time.Now()
	}

	b := &Bill{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Date:              date,
		CustomerID:        customerID,
		TotalMoney:        valueobject.Zero(),
		DebtAmount:        valueobject.Zero(),
		DepositAmount:     valueobject.Zero(),
		Status:            BillStatusCompleted,
		Note:              note,
	}

	b.AddDomainEvent(NewBillOpenedEvent(b))

	return b, nil
}

// AddContractTotal registers a new contract's value on the bill: the
// total grows and the whole contract value starts out as debt.
func (b *Bill) AddContractTotal(total valueobject.Money) {
	b.TotalMoney = b.TotalMoney.Add(total)
	b.DebtAmount = b.DebtAmount.Add(total)
	b.refresh()
}

// RemoveContractTotal withdraws a contract's value from the bill.
// The reversal is debt-first: debt absorbs as much as it can, any
// remainder is taken out of the held deposit, floored at zero.
func (b *Bill) RemoveContractTotal(total valueobject.Money) {
	b.TotalMoney = b.TotalMoney.Subtract(total).ClampZero()

	if b.DebtAmount.GreaterThanOrEqual(total) {
		b.DebtAmount = b.DebtAmount.Subtract(total)
	} else {
		remainder := total.Subtract(b.DebtAmount)
		b.DebtAmount = valueobject.Zero()
		b.DepositAmount = b.DepositAmount.Subtract(remainder).ClampZero()
	}
	b.refresh()
}

// SplitOutContribution withdraws a departing contract's value and its
// signing payment from the bill during a group change. Both subtractions
// are direct and floored at zero, the deposit is only reduced by the
// departing signing payment.
func (b *Bill) SplitOutContribution(total, signingPaid valueobject.Money) {
	b.TotalMoney = b.TotalMoney.Subtract(total).ClampZero()
	b.DebtAmount = b.DebtAmount.Subtract(total).ClampZero()
	if signingPaid.IsPositive() {
		b.DepositAmount = b.DepositAmount.Subtract(signingPaid).ClampZero()
	}
	b.refresh()
}

// AmendContractTotal swaps a contract's old value for its amended one
// while the contract stays in the same group. The total moves by the
// difference; the old value is reversed out of debt first, remainder
// out of the deposit.
func (b *Bill) AmendContractTotal(oldTotal, newTotal valueobject.Money) {
	b.TotalMoney = b.TotalMoney.Subtract(oldTotal).Add(newTotal).ClampZero()

	if b.DebtAmount.GreaterThanOrEqual(oldTotal) {
		b.DebtAmount = b.DebtAmount.Subtract(oldTotal)
	} else {
		remainder := oldTotal.Subtract(b.DebtAmount)
		b.DebtAmount = valueobject.Zero()
		b.DepositAmount = b.DepositAmount.Subtract(remainder).ClampZero()
	}
	b.refresh()
}

// ReapplySigningPaid restates the settlement against an amended contract
// value. The debt is owed relative to the new value alone; only an
// overpayment keeps (and grows) the held deposit.
func (b *Bill) ReapplySigningPaid(newTotal, paid valueobject.Money) {
	if paid.GreaterThan(newTotal) {
		b.DebtAmount = valueobject.Zero()
		b.DepositAmount = b.DepositAmount.Add(paid.Subtract(newTotal))
	} else {
		b.DebtAmount = newTotal.Subtract(paid)
		b.DepositAmount = valueobject.Zero()
	}
	b.refresh()
}

// ApplyCustomerPaid settles a paid amount against the bill, debt first;
// whatever exceeds the outstanding debt becomes a held deposit.
func (b *Bill) ApplyCustomerPaid(paid valueobject.Money) {
	applied := paid.Min(b.DebtAmount)
	b.DebtAmount = b.DebtAmount.Subtract(applied).ClampZero()

	overflow := paid.Subtract(applied)
	if overflow.IsPositive() {
		b.DepositAmount = b.DepositAmount.Add(overflow)
	}
	b.refresh()
}

// SubtractDeposit removes a previously held deposit amount, floored at zero
func (b *Bill) SubtractDeposit(amount valueobject.Money) {
	b.DepositAmount = b.DepositAmount.Subtract(amount).ClampZero()
	b.refresh()
}

// ResetObligation overwrites the settlement state: the given total is
// owed in full and no deposit is held. Used when a contract amendment
// withdraws the customer's previous upfront payment.
func (b *Bill) ResetObligation(total valueobject.Money) {
	b.DebtAmount = total.ClampZero()
	b.DepositAmount = valueobject.Zero()
	b.refresh()
}

// SetDepositAmount overrides the held deposit directly. Exposed for the
// manual bill correction endpoint only; contract and payment flows go
// through the reconciliation paths.
func (b *Bill) SetDepositAmount(amount valueobject.Money) error {
	if amount.IsNegative() {
		return shared.ErrInvalidAmount
	}
	b.DepositAmount = amount
	b.refresh()
	return nil
}

// SetNote sets the bill note
func (b *Bill) SetNote(note string) {
	b.Note = note
	b.Touch()
	b.IncrementVersion()
}

// Rebalance rebuilds debt and deposit from scratch out of the bill's
// complete payment set. This is the single source of truth invoked by
// every payment mutation; it is idempotent for a fixed payment set.
func (b *Bill) Rebalance(payments []Payment) {
	debt, deposit := RebalanceAmounts(b.TotalMoney, payments)
	b.DebtAmount = debt
	b.DepositAmount = deposit
	b.refresh()
	b.AddDomainEvent(NewBillRebalancedEvent(b))
}

// refresh re-derives status and bumps bookkeeping fields after a mutation
func (b *Bill) refresh() {
	b.Status = StatusFor(b.DebtAmount, b.DepositAmount)
	b.Touch()
	b.IncrementVersion()
}

// IsSettled returns true if nothing is owed on the bill
func (b *Bill) IsSettled() bool {
	return !b.DebtAmount.IsPositive()
}
