package model

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	PaymentStatusPaid      = "paid"
	PaymentStatusPartial   = "partial"
	PaymentStatusPending   = "pending"
	PaymentStatusCancelled = "cancelled"
	PaymentStatusRefunded  = "refunded"
)

// Discount is the per-payment concession document.
type Discount struct {
	Type   string  `json:"type,omitempty"`
	Amount float64 `json:"amount"`
	Reason string  `json:"reason,omitempty"`
}

type FeePaymentModel struct {
	FeePaymentID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:fee_payment_id" json:"fee_payment_id"`

	FeePaymentReceiptNumber string `gorm:"size:30;not null;uniqueIndex;column:fee_payment_receipt_number" json:"fee_payment_receipt_number"`

	FeePaymentStudentID   uuid.UUID `gorm:"type:uuid;not null;column:fee_payment_student_id;index"   json:"fee_payment_student_id"`
	FeePaymentStructureID uuid.UUID `gorm:"type:uuid;not null;column:fee_payment_structure_id"       json:"fee_payment_structure_id"`
	FeePaymentSessionID   uuid.UUID `gorm:"type:uuid;not null;column:fee_payment_session_id;index"   json:"fee_payment_session_id"`

	FeePaymentAmount   float64        `gorm:"not null;column:fee_payment_amount"              json:"fee_payment_amount"`
	FeePaymentDiscount datatypes.JSON `gorm:"type:jsonb;column:fee_payment_discount"          json:"fee_payment_discount,omitempty"`
	FeePaymentLateFine float64        `gorm:"not null;default:0;column:fee_payment_late_fine" json:"fee_payment_late_fine"`

	// amount − discount + late fine, derived at the write boundary
	FeePaymentTotalAmount float64 `gorm:"not null;column:fee_payment_total_amount" json:"fee_payment_total_amount"`
	FeePaymentAmountPaid  float64 `gorm:"not null;column:fee_payment_amount_paid"  json:"fee_payment_amount_paid"`

	// cash | card | online | cheque | bank_transfer
	FeePaymentMethod  string         `gorm:"size:20;not null;column:fee_payment_method"  json:"fee_payment_method"`
	FeePaymentDetails datatypes.JSON `gorm:"type:jsonb;column:fee_payment_details"       json:"fee_payment_details,omitempty"`

	// paid | partial | pending | cancelled | refunded
	FeePaymentStatus string `gorm:"size:20;not null;default:'pending';column:fee_payment_status;index" json:"fee_payment_status"`

	FeePaymentPaidDate    *time.Time     `gorm:"column:fee_payment_paid_date;index"       json:"fee_payment_paid_date,omitempty"`
	FeePaymentInstallment datatypes.JSON `gorm:"type:jsonb;column:fee_payment_installment" json:"fee_payment_installment,omitempty"`
	FeePaymentRemarks     *string        `gorm:"column:fee_payment_remarks"               json:"fee_payment_remarks,omitempty"`

	FeePaymentCollectedBy uuid.UUID `gorm:"type:uuid;not null;column:fee_payment_collected_by" json:"fee_payment_collected_by"`

	FeePaymentCreatedAt time.Time      `gorm:"column:fee_payment_created_at;autoCreateTime" json:"fee_payment_created_at"`
	FeePaymentUpdatedAt time.Time      `gorm:"column:fee_payment_updated_at;autoUpdateTime" json:"fee_payment_updated_at"`
	FeePaymentDeletedAt gorm.DeletedAt `gorm:"column:fee_payment_deleted_at;index"          json:"-"`
}

func (FeePaymentModel) TableName() string { return "fee_payments" }

// DiscountDoc decodes the stored discount; absent or malformed yields nil.
func (p *FeePaymentModel) DiscountDoc() *Discount {
	if len(p.FeePaymentDiscount) == 0 {
		return nil
	}
	var d Discount
	if err := json.Unmarshal(p.FeePaymentDiscount, &d); err != nil {
		return nil
	}
	return &d
}
