package ledger

import (
	"testing"
	"time"

	"github.com/adagency/backoffice/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaymentMethod_IsValid(t *testing.T) {
	assert.True(t, PaymentMethodCash.IsValid())
	assert.True(t, PaymentMethodTransfer.IsValid())
	assert.True(t, PaymentMethod("").IsValid())
	assert.False(t, PaymentMethod("cheque").IsValid())
}

func TestNewPayment(t *testing.T) {
	billID := uuid.New()
	p, err := NewPayment(billID, time.Now(), money(250), PaymentMethodCash, "first installment", false)
	require.NoError(t, err)

	assert.Equal(t, billID, p.BillID)
	assert.Equal(t, "250.00", p.Amount.String())
	assert.Equal(t, PaymentMethodCash, p.Method)
	assert.False(t, p.IsDeposit)
}

func TestNewPayment_Validation(t *testing.T) {
	t.Run("missing bill", func(t *testing.T) {
		_, err := NewPayment(uuid.Nil, time.Now(), money(10), PaymentMethodCash, "", false)
		assert.Error(t, err)
	})

	t.Run("negative amount", func(t *testing.T) {
		_, err := NewPayment(uuid.New(), time.Now(), money(-10), PaymentMethodCash, "", false)
		require.Error(t, err)
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, shared.ErrInvalidAmount.Code, domainErr.Code)
	})

	t.Run("zero amount is allowed", func(t *testing.T) {
		_, err := NewPayment(uuid.New(), time.Now(), money(0), PaymentMethodCash, "", false)
		assert.NoError(t, err)
	})

	t.Run("unknown method", func(t *testing.T) {
		_, err := NewPayment(uuid.New(), time.Now(), money(10), PaymentMethod("barter"), "", false)
		assert.Error(t, err)
	})
}

func TestNewDepositPayment(t *testing.T) {
	billID := uuid.New()
	p, err := NewDepositPayment(billID, money(500))
	require.NoError(t, err)

	assert.True(t, p.IsDeposit)
	assert.Equal(t, PaymentMethodTransfer, p.Method)
	assert.Contains(t, p.Note, "Deposit received on signing")
	assert.Contains(t, p.Note, "500.00")
}

func TestPayment_SetAmount(t *testing.T) {
	p, err := NewPayment(uuid.New(), time.Now(), money(100), PaymentMethodCash, "", false)
	require.NoError(t, err)

	require.NoError(t, p.SetAmount(money(150)))
	assert.Equal(t, "150.00", p.Amount.String())

	assert.Error(t, p.SetAmount(money(-5)))
}

func TestPayment_RefreshDepositNote(t *testing.T) {
	p, err := NewDepositPayment(uuid.New(), money(100))
	require.NoError(t, err)

	require.NoError(t, p.SetAmount(money(350)))
	p.RefreshDepositNote()

	assert.Contains(t, p.Note, "350.00")
	assert.NotContains(t, p.Note, "100.00")
}
