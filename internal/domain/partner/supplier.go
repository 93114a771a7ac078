package partner

import (
	"github.com/adagency/backoffice/internal/domain/shared"
)

// Supplier is an upstream ad-account provider the agency buys spend from.
type Supplier struct {
	shared.BaseAggregateRoot
	Name        string
	Zalo        string
	PhoneNumber string
	Address     string
	Note        string
}

func NewSupplier(name string) (*Supplier, error) {
	if name == "" {
		return nil, shared.NewDomainError("INVALID_SUPPLIER", "supplier name is required")
	}
	return &Supplier{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Name:              name,
	}, nil
}

func (s *Supplier) Rename(name string) error {
	if name == "" {
		return shared.NewDomainError("INVALID_SUPPLIER", "supplier name is required")
	}
	s.Name = name
	s.Touch()
	s.IncrementVersion()
	return nil
}

func (s *Supplier) UpdateContact(zalo, phoneNumber, address string) {
	s.Zalo = zalo
	s.PhoneNumber = phoneNumber
	s.Address = address
	s.Touch()
	s.IncrementVersion()
}

func (s *Supplier) SetNote(note string) {
	s.Note = note
	s.Touch()
	s.IncrementVersion()
}
