package service

import (
	"schoolku_backend/internals/features/fees/model"
)

// StructureTotal sums the fee type amounts. An empty list returns the
// fallback unchanged so a caller-supplied total survives.
func StructureTotal(feeTypes []model.FeeType, fallback float64) float64 {
	if len(feeTypes) == 0 {
		return fallback
	}
	var total float64
	for _, ft := range feeTypes {
		total += ft.Amount
	}
	return total
}

// PaymentTotal is amount minus the discount plus the late fine. A nil
// discount counts as zero.
func PaymentTotal(amount float64, discount *model.Discount, lateFine float64) float64 {
	var d float64
	if discount != nil {
		d = discount.Amount
	}
	return amount - d + lateFine
}

// DeriveStatus maps what was paid against what is owed. Anything not fully
// or partially covered keeps the prior status, defaulting to pending.
func DeriveStatus(amountPaid, totalAmount float64, prior string) string {
	switch {
	case amountPaid >= totalAmount:
		return model.PaymentStatusPaid
	case amountPaid > 0:
		return model.PaymentStatusPartial
	case prior != "":
		return prior
	default:
		return model.PaymentStatusPending
	}
}
