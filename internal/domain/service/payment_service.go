package service

import (
	"context"
	"strconv"
	"strings"
	"time"

	"bhutanfresh/internal/domain/entity"
	"bhutanfresh/pkg/errors"
)

const (
	PaymentMethodCreditCard = "credit_card"
	PaymentMethodPaypal     = "paypal"
	PaymentMethodCash       = "cash"
)

type CardDetails struct {
	Number     string
	CardHolder string
	Expiry     string // MM/YY
	CVV        string
}

// PaymentResult carries the order and payment statuses a successful charge
// should advance the order to.
type PaymentResult struct {
	OrderStatus   string
	PaymentStatus string
}

// PaymentService simulates a gateway: card details are validated
// synchronously and no settlement happens.
type PaymentService interface {
	Charge(ctx context.Context, order *entity.Order, method string, card *CardDetails) (*PaymentResult, error)
}

type mockPaymentService struct {
	now func() time.Time
}

func NewMockPaymentService() PaymentService {
	return &mockPaymentService{now: time.Now}
}

func (s *mockPaymentService) Charge(ctx context.Context, order *entity.Order, method string, card *CardDetails) (*PaymentResult, error) {
	switch method {
	case PaymentMethodCreditCard:
		if err := s.validateCard(card); err != nil {
			return nil, err
		}
		return &PaymentResult{
			OrderStatus:   entity.OrderStatusProcessing,
			PaymentStatus: entity.PaymentStatusPaid,
		}, nil
	case PaymentMethodPaypal:
		return &PaymentResult{
			OrderStatus:   entity.OrderStatusProcessing,
			PaymentStatus: entity.PaymentStatusPaid,
		}, nil
	case PaymentMethodCash:
		// Cash on delivery: the order stays pending until the courier
		// collects payment.
		return &PaymentResult{
			OrderStatus:   entity.OrderStatusPending,
			PaymentStatus: entity.PaymentStatusPending,
		}, nil
	default:
		return nil, errors.BadRequest("Invalid payment method", nil)
	}
}

func (s *mockPaymentService) validateCard(card *CardDetails) error {
	if card == nil {
		return errors.BadRequest("Card details are required", nil)
	}

	number := strings.ReplaceAll(card.Number, " ", "")
	if number == "" {
		return errors.BadRequest("Card number is required", nil)
	}
	if len(number) < 16 {
		return errors.BadRequest("Card number must be 16 digits", nil)
	}

	if strings.TrimSpace(card.CardHolder) == "" {
		return errors.BadRequest("Cardholder name is required", nil)
	}

	if strings.TrimSpace(card.Expiry) == "" {
		return errors.BadRequest("Expiry date is required", nil)
	}
	if err := s.validateExpiry(card.Expiry); err != nil {
		return err
	}

	if strings.TrimSpace(card.CVV) == "" {
		return errors.BadRequest("CVV is required", nil)
	}
	if len(card.CVV) < 3 {
		return errors.BadRequest("CVV must be 3 digits", nil)
	}

	return nil
}

func (s *mockPaymentService) validateExpiry(expiry string) error {
	parts := strings.Split(expiry, "/")
	if len(parts) != 2 {
		return errors.BadRequest("Invalid expiry date", nil)
	}

	month, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil || month < 1 || month > 12 {
		return errors.BadRequest("Invalid expiry date", nil)
	}
	year, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return errors.BadRequest("Invalid expiry date", nil)
	}

	now := s.now()
	currentYear := now.Year() % 100
	currentMonth := int(now.Month())

	if year < currentYear || (year == currentYear && month < currentMonth) {
		return errors.BadRequest("Card has expired", nil)
	}

	return nil
}
