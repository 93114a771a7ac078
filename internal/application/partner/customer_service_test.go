package partner

import (
	"context"
	"testing"

	"github.com/adagency/backoffice/internal/domain/partner"
	"github.com/adagency/backoffice/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type MockCustomerRepository struct {
	mock.Mock
}

func (m *MockCustomerRepository) FindByID(ctx context.Context, id uuid.UUID) (*partner.Customer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*partner.Customer), args.Error(1)
}

func (m *MockCustomerRepository) List(ctx context.Context, filter partner.CustomerFilter) ([]partner.Customer, int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]partner.Customer), args.Get(1).(int64), args.Error(2)
}

func (m *MockCustomerRepository) Save(ctx context.Context, customer *partner.Customer) error {
	args := m.Called(ctx, customer)
	return args.Error(0)
}

func (m *MockCustomerRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockAccountTypeRepository struct {
	mock.Mock
}

func (m *MockAccountTypeRepository) FindByID(ctx context.Context, id uuid.UUID) (*partner.AccountType, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*partner.AccountType), args.Error(1)
}

func (m *MockAccountTypeRepository) List(ctx context.Context, filter shared.Filter) ([]partner.AccountType, int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]partner.AccountType), args.Get(1).(int64), args.Error(2)
}

func (m *MockAccountTypeRepository) Save(ctx context.Context, accountType *partner.AccountType) error {
	args := m.Called(ctx, accountType)
	return args.Error(0)
}

func (m *MockAccountTypeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func TestCustomerService_CreateCustomer(t *testing.T) {
	customers := new(MockCustomerRepository)
	accountTypes := new(MockAccountTypeRepository)
	service := NewCustomerService(customers, accountTypes, zap.NewNop())

	accountType, err := partner.NewAccountType("agency", "")
	require.NoError(t, err)

	accountTypes.On("FindByID", mock.Anything, accountType.ID).Return(accountType, nil)
	customers.On("Save", mock.Anything, mock.AnythingOfType("*partner.Customer")).Return(nil)

	resp, err := service.CreateCustomer(context.Background(), CreateCustomerRequest{
		Name:          "Acme Media",
		Segment:       partner.CustomerSegmentLegal,
		AccountTypeID: accountType.ID,
		Rate:          decimal.NewFromFloat(1.05),
		PhoneNumber:   "0901234567",
	})
	require.NoError(t, err)

	assert.Equal(t, "Acme Media", resp.Name)
	assert.Equal(t, "0901234567", resp.PhoneNumber)
	customers.AssertExpectations(t)
	accountTypes.AssertExpectations(t)
}

func TestCustomerService_CreateCustomer_UnknownAccountType(t *testing.T) {
	customers := new(MockCustomerRepository)
	accountTypes := new(MockAccountTypeRepository)
	service := NewCustomerService(customers, accountTypes, zap.NewNop())

	accountTypes.On("FindByID", mock.Anything, mock.Anything).Return(nil, nil)

	_, err := service.CreateCustomer(context.Background(), CreateCustomerRequest{
		Name:          "Acme Media",
		AccountTypeID: uuid.New(),
	})
	assert.ErrorIs(t, err, shared.ErrNotFound)
	customers.AssertNotCalled(t, "Save")
}

func TestCustomerService_UpdateCustomer(t *testing.T) {
	customers := new(MockCustomerRepository)
	accountTypes := new(MockAccountTypeRepository)
	service := NewCustomerService(customers, accountTypes, zap.NewNop())

	existing, err := partner.NewCustomer("Acme Media", partner.CustomerSegmentLegal, uuid.New(), decimal.Zero)
	require.NoError(t, err)

	customers.On("FindByID", mock.Anything, existing.ID).Return(existing, nil)
	customers.On("Save", mock.Anything, existing).Return(nil)

	resp, err := service.UpdateCustomer(context.Background(), existing.ID, UpdateCustomerRequest{
		Name: shared.Some("Acme Digital"),
		Rate: shared.Some(decimal.NewFromFloat(1.1)),
	})
	require.NoError(t, err)

	assert.Equal(t, "Acme Digital", resp.Name)
	assert.True(t, resp.Rate.Equal(decimal.NewFromFloat(1.1)))
}

func TestCustomerService_UpdateCustomer_NotFound(t *testing.T) {
	customers := new(MockCustomerRepository)
	accountTypes := new(MockAccountTypeRepository)
	service := NewCustomerService(customers, accountTypes, zap.NewNop())

	customers.On("FindByID", mock.Anything, mock.Anything).Return(nil, nil)

	_, err := service.UpdateCustomer(context.Background(), uuid.New(), UpdateCustomerRequest{})
	assert.ErrorIs(t, err, shared.ErrNotFound)
}

func TestCustomerService_DeleteCustomer(t *testing.T) {
	customers := new(MockCustomerRepository)
	accountTypes := new(MockAccountTypeRepository)
	service := NewCustomerService(customers, accountTypes, zap.NewNop())

	existing, err := partner.NewCustomer("Acme Media", partner.CustomerSegmentLegal, uuid.New(), decimal.Zero)
	require.NoError(t, err)

	customers.On("FindByID", mock.Anything, existing.ID).Return(existing, nil)
	customers.On("Delete", mock.Anything, existing.ID).Return(nil)

	require.NoError(t, service.DeleteCustomer(context.Background(), existing.ID))
	customers.AssertExpectations(t)
}
