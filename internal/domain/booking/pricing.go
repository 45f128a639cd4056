package booking

import (
	"github.com/shopspring/decimal"

	"github.com/jetcongo/backend/internal/domain/shared/valueobject"
)

// FixedServiceFee is the flat surcharge added once per reservation,
// regardless of seat count.
var FixedServiceFee = decimal.RequireFromString("12.50")

// ComputeSubtotal returns fare × seats with exact decimal arithmetic
func ComputeSubtotal(fare decimal.Decimal, seats int) decimal.Decimal {
	return fare.Mul(decimal.NewFromInt(int64(seats)))
}

// ComputeTotal returns fare × seats + FixedServiceFee.
// Recomputation is deterministic: the same fare and seat count always
// produce the same total, so amendments replace the stored total in full
// without drift.
func ComputeTotal(fare decimal.Decimal, seats int) decimal.Decimal {
	return ComputeSubtotal(fare, seats).Add(FixedServiceFee)
}

// ComputeTotalMoney returns the total as a Money value object
func ComputeTotalMoney(fare valueobject.Money, seats int) valueobject.Money {
	return valueobject.NewMoneyUSD(ComputeTotal(fare.Amount(), seats))
}
