package ledger

import (
	"fmt"

	"github.com/google/uuid"
)

// BillGroupKey identifies the set of contracts that share one bill:
// the same customer buying the same product out of the same budget.
// A contract mutation that changes any component of the key moves the
// contract to a different bill.
type BillGroupKey struct {
	CustomerID uuid.UUID
	BudgetID   uuid.UUID
	Product    string
}

// NewBillGroupKey builds a group key from its components
func NewBillGroupKey(customerID, budgetID uuid.UUID, product string) BillGroupKey {
	return BillGroupKey{
		CustomerID: customerID,
		BudgetID:   budgetID,
		Product:    product,
	}
}

// Equals reports whether two keys identify the same bill group
func (k BillGroupKey) Equals(other BillGroupKey) bool {
	return k.CustomerID == other.CustomerID &&
		k.BudgetID == other.BudgetID &&
		k.Product == other.Product
}

// String renders the key for logs
func (k BillGroupKey) String() string {
	return fmt.Sprintf("%s/%s/%s", k.CustomerID, k.BudgetID, k.Product)
}
