package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"bhutanfresh/internal/domain/entity"
)

func fixedClockService() *mockPaymentService {
	return &mockPaymentService{
		now: func() time.Time {
			return time.Date(2025, time.June, 15, 12, 0, 0, 0, time.UTC)
		},
	}
}

func validCard() *CardDetails {
	return &CardDetails{
		Number:     "4111 1111 1111 1111",
		CardHolder: "Sonam Choden",
		Expiry:     "09/27",
		CVV:        "123",
	}
}

func TestChargeCreditCardSucceeds(t *testing.T) {
	svc := fixedClockService()

	result, err := svc.Charge(context.Background(), &entity.Order{}, PaymentMethodCreditCard, validCard())

	assert.NoError(t, err)
	assert.Equal(t, entity.OrderStatusProcessing, result.OrderStatus)
	assert.Equal(t, entity.PaymentStatusPaid, result.PaymentStatus)
}

func TestChargeCashStaysPending(t *testing.T) {
	svc := fixedClockService()

	result, err := svc.Charge(context.Background(), &entity.Order{}, PaymentMethodCash, nil)

	assert.NoError(t, err)
	assert.Equal(t, entity.OrderStatusPending, result.OrderStatus)
	assert.Equal(t, entity.PaymentStatusPending, result.PaymentStatus)
}

func TestChargePaypalSkipsCardValidation(t *testing.T) {
	svc := fixedClockService()

	result, err := svc.Charge(context.Background(), &entity.Order{}, PaymentMethodPaypal, nil)

	assert.NoError(t, err)
	assert.Equal(t, entity.PaymentStatusPaid, result.PaymentStatus)
}

func TestChargeUnknownMethodFails(t *testing.T) {
	svc := fixedClockService()

	_, err := svc.Charge(context.Background(), &entity.Order{}, "bank_transfer", nil)

	assert.EqualError(t, err, "BAD_REQUEST: Invalid payment method")
}

func TestCardValidationMessages(t *testing.T) {
	svc := fixedClockService()
	ctx := context.Background()

	cases := []struct {
		name    string
		mutate  func(*CardDetails)
		message string
	}{
		{"missing number", func(c *CardDetails) { c.Number = "" }, "BAD_REQUEST: Card number is required"},
		{"short number", func(c *CardDetails) { c.Number = "4111 1111" }, "BAD_REQUEST: Card number must be 16 digits"},
		{"missing holder", func(c *CardDetails) { c.CardHolder = "  " }, "BAD_REQUEST: Cardholder name is required"},
		{"missing expiry", func(c *CardDetails) { c.Expiry = "" }, "BAD_REQUEST: Expiry date is required"},
		{"malformed expiry", func(c *CardDetails) { c.Expiry = "2027-09" }, "BAD_REQUEST: Invalid expiry date"},
		{"expired card", func(c *CardDetails) { c.Expiry = "05/25" }, "BAD_REQUEST: Card has expired"},
		{"missing cvv", func(c *CardDetails) { c.CVV = "" }, "BAD_REQUEST: CVV is required"},
		{"short cvv", func(c *CardDetails) { c.CVV = "12" }, "BAD_REQUEST: CVV must be 3 digits"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			card := validCard()
			tc.mutate(card)

			_, err := svc.Charge(ctx, &entity.Order{}, PaymentMethodCreditCard, card)
			assert.EqualError(t, err, tc.message)
		})
	}
}

func TestExpiryMonthBoundary(t *testing.T) {
	svc := fixedClockService()
	ctx := context.Background()

	// Same month as the clock is still valid.
	card := validCard()
	card.Expiry = "06/25"
	_, err := svc.Charge(ctx, &entity.Order{}, PaymentMethodCreditCard, card)
	assert.NoError(t, err)

	card.Expiry = "05/25"
	_, err = svc.Charge(ctx, &entity.Order{}, PaymentMethodCreditCard, card)
	assert.EqualError(t, err, "BAD_REQUEST: Card has expired")
}

func TestChargeRequiresCardForCreditCard(t *testing.T) {
	svc := fixedClockService()

	_, err := svc.Charge(context.Background(), &entity.Order{}, PaymentMethodCreditCard, nil)
	assert.EqualError(t, err, "BAD_REQUEST: Card details are required")
}
