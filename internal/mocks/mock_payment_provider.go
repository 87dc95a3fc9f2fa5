package mocks

import (
	"context"

	"github.com/metinatakli/show-reservation-engine/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

type MockPaymentProvider struct {
	mock.Mock
}

func (m *MockPaymentProvider) Charge(ctx context.Context, amount decimal.Decimal) bool {
	args := m.Called(ctx, amount)
	return args.Bool(0)
}

var _ domain.PaymentProvider = (*MockPaymentProvider)(nil)
