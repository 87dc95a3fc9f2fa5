// Package payment provides the simulated payment collaborator. The engine
// only ever sees the boolean outcome of Charge; everything else about the
// gateway is opaque to it.
package payment

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Simulator approves every charge and logs a transaction id for it, standing
// in for a real gateway.
type Simulator struct {
	logger *slog.Logger
}

func NewSimulator(logger *slog.Logger) *Simulator {
	return &Simulator{logger: logger}
}

func (s *Simulator) Charge(ctx context.Context, amount decimal.Decimal) bool {
	txnID := uuid.NewString()

	s.logger.Info("payment approved", "transaction_id", txnID, "amount", amount.StringFixed(2))

	return true
}
