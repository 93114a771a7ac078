package partner

import (
	"github.com/adagency/backoffice/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CustomerSegment classifies the kind of business a customer brings in.
// Unlike contracts, customers only carry the two broad segments.
type CustomerSegment string

const (
	CustomerSegmentLegal   CustomerSegment = "legal"
	CustomerSegmentIllegal CustomerSegment = "illegal"
)

func (s CustomerSegment) IsValid() bool {
	return s == CustomerSegmentLegal || s == CustomerSegmentIllegal
}

func (s CustomerSegment) String() string {
	return string(s)
}

// Customer is an advertiser the agency bills. Contact channels are all
// optional, the default rate applies when a contract does not override it.
type Customer struct {
	shared.BaseAggregateRoot
	Name          string
	Zalo          string
	Facebook      string
	PhoneNumber   string
	Address       string
	Segment       CustomerSegment
	AccountTypeID uuid.UUID
	Rate          decimal.Decimal
	Note          string
}

func NewCustomer(name string, segment CustomerSegment, accountTypeID uuid.UUID, rate decimal.Decimal) (*Customer, error) {
	if name == "" {
		return nil, shared.NewDomainError("INVALID_CUSTOMER", "customer name is required")
	}
	if segment == "" {
		segment = CustomerSegmentLegal
	}
	if !segment.IsValid() {
		return nil, shared.NewDomainError("INVALID_CUSTOMER", "invalid customer segment: "+segment.String())
	}
	if accountTypeID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_CUSTOMER", "account type is required")
	}

	return &Customer{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Name:              name,
		Segment:           segment,
		AccountTypeID:     accountTypeID,
		Rate:              rate,
	}, nil
}

func (c *Customer) Rename(name string) error {
	if name == "" {
		return shared.NewDomainError("INVALID_CUSTOMER", "customer name is required")
	}
	c.Name = name
	c.Touch()
	c.IncrementVersion()
	return nil
}

func (c *Customer) ChangeSegment(segment CustomerSegment) error {
	if !segment.IsValid() {
		return shared.NewDomainError("INVALID_CUSTOMER", "invalid customer segment: "+segment.String())
	}
	c.Segment = segment
	c.Touch()
	c.IncrementVersion()
	return nil
}

func (c *Customer) UpdateContact(zalo, facebook, phoneNumber, address string) {
	c.Zalo = zalo
	c.Facebook = facebook
	c.PhoneNumber = phoneNumber
	c.Address = address
	c.Touch()
	c.IncrementVersion()
}

func (c *Customer) SetRate(rate decimal.Decimal) {
	c.Rate = rate
	c.Touch()
	c.IncrementVersion()
}

func (c *Customer) SetNote(note string) {
	c.Note = note
	c.Touch()
	c.IncrementVersion()
}
