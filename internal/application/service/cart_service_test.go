package service

import (
	"testing"

	"github.com/dmoros/lavanderia-pos/internal/domain/entity"
	"github.com/dmoros/lavanderia-pos/internal/domain/enum"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCartService() *CartService {
	return NewCartService(NewPricingService(), decimal.NewFromFloat(0.16))
}

func TestCartService_AddLineKeepsRepeatedProductsSeparate(t *testing.T) {
	s := newTestCartService()
	cart := s.CreateCart()

	input := AddLineInput{
		ProductID: "lavado-basico",
		Name:      "Lavado básico",
		BasePrice: decimal.NewFromInt(60),
	}

	first, err := s.AddLine(cart.ID, input)
	require.NoError(t, err)
	second, err := s.AddLine(cart.ID, input)
	require.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID)

	got, err := s.GetCart(cart.ID)
	require.NoError(t, err)
	assert.Len(t, got.Lines, 2)
}

func TestCartService_AddLineUnknownCart(t *testing.T) {
	s := newTestCartService()

	_, err := s.AddLine(uuid.New(), AddLineInput{ProductID: "x", Name: "x", BasePrice: decimal.NewFromInt(1)})
	assert.ErrorIs(t, err, ErrCartNotFound)
}

func TestCartService_RemoveLine(t *testing.T) {
	s := newTestCartService()
	cart := s.CreateCart()

	line, err := s.AddLine(cart.ID, AddLineInput{ProductID: "p", Name: "Planchado", BasePrice: decimal.NewFromInt(30)})
	require.NoError(t, err)

	require.NoError(t, s.RemoveLine(cart.ID, line.ID))

	got, err := s.GetCart(cart.ID)
	require.NoError(t, err)
	assert.Empty(t, got.Lines)

	assert.ErrorIs(t, s.RemoveLine(cart.ID, line.ID), ErrLineNotFound)
	assert.ErrorIs(t, s.RemoveLine(uuid.New(), line.ID), ErrCartNotFound)
}

func TestComputeTotals_RoundTrip(t *testing.T) {
	taxRate := decimal.NewFromFloat(0.16)

	subtotals := []string{"0", "0.01", "99.99", "1000000"}
	for _, sub := range subtotals {
		t.Run(sub, func(t *testing.T) {
			amount, err := decimal.NewFromString(sub)
			require.NoError(t, err)

			totals := ComputeTotals([]entity.CartLine{{ExtendedPrice: amount}}, taxRate)

			assert.True(t, totals.Subtotal.Equal(amount))
			assert.True(t, totals.Tax.Equal(amount.Mul(taxRate).Round(2)),
				"tax = %s", totals.Tax)
			assert.True(t, totals.Total.Equal(totals.Subtotal.Add(totals.Tax)),
				"total %s != subtotal %s + tax %s", totals.Total, totals.Subtotal, totals.Tax)
		})
	}
}

func TestComputeTotals_TaxRoundedToTwoDecimals(t *testing.T) {
	taxRate := decimal.NewFromFloat(0.16)

	// 99.99 * 0.16 = 15.9984, rounds half-up to 16.00
	totals := ComputeTotals([]entity.CartLine{{ExtendedPrice: decimal.RequireFromString("99.99")}}, taxRate)

	assert.True(t, totals.Tax.Equal(decimal.NewFromInt(16)), "tax = %s", totals.Tax)
	assert.True(t, totals.Total.Equal(decimal.RequireFromString("115.99")), "total = %s", totals.Total)
}

func TestSettle_ExactCashHasZeroChange(t *testing.T) {
	totals := entity.Totals{Total: decimal.NewFromInt(116)}

	payment, err := Settle(totals, enum.PaymentCash, decimal.NewFromInt(116))
	require.NoError(t, err)

	assert.True(t, payment.Change.IsZero(), "change = %s", payment.Change)
	assert.True(t, payment.AmountTendered.Equal(decimal.NewFromInt(116)))
}

func TestSettle_CashOneCentShortFails(t *testing.T) {
	totals := entity.Totals{Total: decimal.NewFromInt(116)}

	_, err := Settle(totals, enum.PaymentCash, decimal.RequireFromString("115.99"))
	assert.ErrorIs(t, err, ErrInsufficientPayment)
}

func TestSettle_CashOverpaymentChange(t *testing.T) {
	totals := entity.Totals{Total: decimal.RequireFromString("115.99")}

	payment, err := Settle(totals, enum.PaymentCash, decimal.NewFromInt(200))
	require.NoError(t, err)

	assert.True(t, payment.Change.Equal(decimal.RequireFromString("84.01")), "change = %s", payment.Change)
}

func TestSettle_CardAndTransferIgnoreTendered(t *testing.T) {
	totals := entity.Totals{Total: decimal.NewFromInt(116)}

	for _, method := range []enum.PaymentMethod{enum.PaymentCard, enum.PaymentTransfer} {
		payment, err := Settle(totals, method, decimal.Zero)
		require.NoError(t, err)

		assert.True(t, payment.AmountTendered.Equal(totals.Total))
		assert.True(t, payment.Change.IsZero())
	}
}

func TestCartService_SettlePaymentEndToEnd(t *testing.T) {
	s := newTestCartService()
	cart := s.CreateCart()

	_, err := s.AddLine(cart.ID, AddLineInput{ProductID: "p", Name: "Lavado", BasePrice: decimal.NewFromInt(100)})
	require.NoError(t, err)

	totals, err := s.Totals(cart.ID)
	require.NoError(t, err)
	assert.True(t, totals.Total.Equal(decimal.NewFromInt(116)), "total = %s", totals.Total)

	_, err = s.SettlePayment(cart.ID, enum.PaymentCash, decimal.NewFromInt(100))
	assert.ErrorIs(t, err, ErrInsufficientPayment)

	payment, err := s.SettlePayment(cart.ID, enum.PaymentCash, decimal.NewFromInt(120))
	require.NoError(t, err)
	assert.True(t, payment.Change.Equal(decimal.NewFromInt(4)), "change = %s", payment.Change)
}
