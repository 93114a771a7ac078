package partner

import (
	"github.com/adagency/backoffice/internal/domain/shared"
)

// AccountType labels the kind of ad account a customer or budget runs on,
// for example an agency account versus a personal profile.
type AccountType struct {
	shared.BaseAggregateRoot
	Name        string
	Description string
	Note        string
}

func NewAccountType(name, description string) (*AccountType, error) {
	if name == "" {
		return nil, shared.NewDomainError("INVALID_ACCOUNT_TYPE", "account type name is required")
	}
	return &AccountType{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Name:              name,
		Description:       description,
	}, nil
}

func (a *AccountType) Rename(name string) error {
	if name == "" {
		return shared.NewDomainError("INVALID_ACCOUNT_TYPE", "account type name is required")
	}
	a.Name = name
	a.Touch()
	a.IncrementVersion()
	return nil
}

func (a *AccountType) SetDescription(description string) {
	a.Description = description
	a.Touch()
	a.IncrementVersion()
}

func (a *AccountType) SetNote(note string) {
	a.Note = note
	a.Touch()
	a.IncrementVersion()
}
