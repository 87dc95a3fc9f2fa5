package mocks

import (
	"context"

	"github.com/metinatakli/show-reservation-engine/internal/domain"
	"github.com/stretchr/testify/mock"
)

type MockLedgerStore struct {
	mock.Mock
}

func (m *MockLedgerStore) Save(ctx context.Context, snapshot domain.LedgerSnapshot) error {
	args := m.Called(ctx, snapshot)
	return args.Error(0)
}

func (m *MockLedgerStore) Load(ctx context.Context) (domain.LedgerSnapshot, error) {
	args := m.Called(ctx)
	return args.Get(0).(domain.LedgerSnapshot), args.Error(1)
}

var _ domain.LedgerStore = (*MockLedgerStore)(nil)
