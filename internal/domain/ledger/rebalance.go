package ledger

import (
	"sort"

	"github.com/adagency/backoffice/internal/domain/shared/valueobject"
)

// RebalanceAmounts deterministically rebuilds a bill's debt and deposit
// from its total and complete payment set. Payments are applied in
// ascending date order (insertion order breaks ties), each one settling
// outstanding debt first with any overflow accumulating as deposit.
// The computation never produces negative amounts.
func RebalanceAmounts(total valueobject.Money, payments []Payment) (debt, deposit valueobject.Money) {
	ordered := make([]Payment, len(payments))
	copy(ordered, payments)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Date.Before(ordered[j].Date)
	})

	debt = total
	deposit = valueobject.Zero()

	for _, p := range ordered {
		applied := p.Amount.Min(debt)
		debt = debt.Subtract(applied)
		overflow := p.Amount.Subtract(applied)
		if overflow.IsPositive() {
			deposit = deposit.Add(overflow)
		}
	}

	return debt.ClampZero(), deposit.ClampZero()
}
