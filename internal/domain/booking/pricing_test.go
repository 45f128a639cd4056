package booking

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jetcongo/backend/internal/domain/shared/valueobject"
)

func TestComputeTotal(t *testing.T) {
	tests := []struct {
		name  string
		fare  string
		seats int
		want  string
	}{
		{"single seat", "100.00", 1, "112.50"},
		{"multiple seats", "149.99", 3, "462.47"},
		{"zero fare still carries the fee", "0", 5, "12.50"},
		{"fractional fare stays exact", "33.33", 3, "112.49"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			total := ComputeTotal(decimal.RequireFromString(tt.fare), tt.seats)
			assert.Equal(t, tt.want, total.StringFixed(2))
		})
	}
}

func TestComputeTotal_Deterministic(t *testing.T) {
	fare := decimal.RequireFromString("87.65")
	first := ComputeTotal(fare, 4)
	for i := 0; i < 100; i++ {
		assert.True(t, first.Equal(ComputeTotal(fare, 4)))
	}
}

func TestComputeSubtotal(t *testing.T) {
	subtotal := ComputeSubtotal(decimal.RequireFromString("10.10"), 7)
	assert.Equal(t, "70.70", subtotal.StringFixed(2))
}

func TestComputeTotalMoney(t *testing.T) {
	fare := valueobject.NewMoneyUSD(decimal.RequireFromString("25.00"))
	total := ComputeTotalMoney(fare, 2)
	assert.Equal(t, valueobject.USD, total.Currency())
	assert.Equal(t, "62.50", total.StringFixed(2))
}

func TestFixedServiceFee(t *testing.T) {
	assert.Equal(t, "12.50", FixedServiceFee.StringFixed(2))
}
