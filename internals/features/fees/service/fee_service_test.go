package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"schoolku_backend/internals/features/fees/model"
)

func TestStructureTotal(t *testing.T) {
	feeTypes := []model.FeeType{
		{Name: "Tuition", Amount: 5000},
		{Name: "Transport", Amount: 1200, IsOptional: true},
		{Name: "Library", Amount: 300},
	}
	assert.Equal(t, 6500.0, StructureTotal(feeTypes, 0))
}

func TestStructureTotalEmptyKeepsFallback(t *testing.T) {
	assert.Equal(t, 4200.0, StructureTotal(nil, 4200))
	assert.Equal(t, 0.0, StructureTotal([]model.FeeType{}, 0))
}

func TestPaymentTotal(t *testing.T) {
	discount := &model.Discount{Type: "sibling", Amount: 500, Reason: "second child"}

	assert.Equal(t, 4700.0, PaymentTotal(5000, discount, 200))
	assert.Equal(t, 5200.0, PaymentTotal(5000, nil, 200))
	assert.Equal(t, 5000.0, PaymentTotal(5000, nil, 0))
}

func TestDeriveStatus(t *testing.T) {
	tests := []struct {
		name       string
		amountPaid float64
		total      float64
		prior      string
		want       string
	}{
		{"fully paid", 5000, 5000, "", model.PaymentStatusPaid},
		{"overpaid", 5100, 5000, "", model.PaymentStatusPaid},
		{"partial", 2000, 5000, "", model.PaymentStatusPartial},
		{"nothing paid defaults pending", 0, 5000, "", model.PaymentStatusPending},
		{"nothing paid keeps prior", 0, 5000, model.PaymentStatusCancelled, model.PaymentStatusCancelled},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DeriveStatus(tt.amountPaid, tt.total, tt.prior))
		})
	}
}
