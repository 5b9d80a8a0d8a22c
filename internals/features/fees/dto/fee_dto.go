package dto

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

/* =========================================================
 * FEE STRUCTURE REQUESTS
 * ========================================================= */

type CreateFeeStructureRequest struct {
	Name         string         `json:"name"         validate:"required,max=150"`
	SessionID    uuid.UUID      `json:"session_id"   validate:"required,uuid4"`
	Classes      datatypes.JSON `json:"classes"      validate:"omitempty"`
	FeeTypes     datatypes.JSON `json:"fee_types"    validate:"omitempty"`
	TotalAmount  float64        `json:"total_amount" validate:"omitempty,min=0"`
	Installments datatypes.JSON `json:"installments" validate:"omitempty"`
	Discounts    datatypes.JSON `json:"discounts"    validate:"omitempty"`
	LateFine     datatypes.JSON `json:"late_fine"    validate:"omitempty"`
	IsActive     *bool          `json:"is_active"    validate:"omitempty"`
}

type UpdateFeeStructureRequest struct {
	Name         *string        `json:"name"         validate:"omitempty,max=150"`
	Classes      datatypes.JSON `json:"classes"      validate:"omitempty"`
	FeeTypes     datatypes.JSON `json:"fee_types"    validate:"omitempty"`
	Installments datatypes.JSON `json:"installments" validate:"omitempty"`
	Discounts    datatypes.JSON `json:"discounts"    validate:"omitempty"`
	LateFine     datatypes.JSON `json:"late_fine"    validate:"omitempty"`
	IsActive     *bool          `json:"is_active"    validate:"omitempty"`
}

/* =========================================================
 * FEE PAYMENT REQUESTS
 * ========================================================= */

type DiscountInput struct {
	Type   string  `json:"type"   validate:"omitempty,max=50"`
	Amount float64 `json:"amount" validate:"min=0"`
	Reason string  `json:"reason" validate:"omitempty,max=500"`
}

type CreateFeePaymentRequest struct {
	StudentID   uuid.UUID      `json:"student_id"       validate:"required,uuid4"`
	StructureID uuid.UUID      `json:"fee_structure_id" validate:"required,uuid4"`
	SessionID   uuid.UUID      `json:"session_id"       validate:"required,uuid4"`
	Amount      float64        `json:"amount"           validate:"required,min=0"`
	Discount    *DiscountInput `json:"discount"         validate:"omitempty"`
	LateFine    float64        `json:"late_fine"        validate:"omitempty,min=0"`
	AmountPaid  float64        `json:"amount_paid"      validate:"min=0"`
	Method      string         `json:"payment_method"   validate:"required,oneof=cash card online cheque bank_transfer"`
	Details     datatypes.JSON `json:"payment_details"  validate:"omitempty"`
	PaidDate    *string        `json:"paid_date"        validate:"omitempty"`
	Installment datatypes.JSON `json:"installment"      validate:"omitempty"`
	Remarks     *string        `json:"remarks"          validate:"omitempty,max=1000"`
}

type UpdateFeePaymentRequest struct {
	Amount      *float64       `json:"amount"          validate:"omitempty,min=0"`
	Discount    *DiscountInput `json:"discount"        validate:"omitempty"`
	LateFine    *float64       `json:"late_fine"       validate:"omitempty,min=0"`
	AmountPaid  *float64       `json:"amount_paid"     validate:"omitempty,min=0"`
	Method      *string        `json:"payment_method"  validate:"omitempty,oneof=cash card online cheque bank_transfer"`
	Details     datatypes.JSON `json:"payment_details" validate:"omitempty"`
	Status      *string        `json:"status"          validate:"omitempty,oneof=paid partial pending cancelled refunded"`
	PaidDate    *string        `json:"paid_date"       validate:"omitempty"`
	Installment datatypes.JSON `json:"installment"     validate:"omitempty"`
	Remarks     *string        `json:"remarks"         validate:"omitempty,max=1000"`
}

/* =========================================================
 * RESPONSES
 * ========================================================= */

// StudentFeeSummary is the balance view for one student in one session.
type StudentFeeSummary struct {
	StudentID   uuid.UUID `json:"student_id"`
	SessionID   uuid.UUID `json:"session_id"`
	TotalAmount   float64   `json:"totalAmount"`
	TotalPaid     float64   `json:"totalPaid"`
	Balance       float64   `json:"balance"`
	PaymentsCount int       `json:"paymentsCount"`
	Status        string    `json:"status"`
}
