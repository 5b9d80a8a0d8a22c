package model

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// FeeType is one chargeable line of a structure.
type FeeType struct {
	Name        string  `json:"name"`
	Amount      float64 `json:"amount"`
	Description string  `json:"description,omitempty"`
	IsOptional  bool    `json:"isOptional,omitempty"`
}

type FeeStructureModel struct {
	FeeStructureID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:fee_structure_id" json:"fee_structure_id"`

	FeeStructureName      string    `gorm:"size:150;not null;column:fee_structure_name"             json:"fee_structure_name"`
	FeeStructureSessionID uuid.UUID `gorm:"type:uuid;not null;column:fee_structure_session_id;index" json:"fee_structure_session_id"`

	// [{"classId":"..."}]
	FeeStructureClasses datatypes.JSON `gorm:"type:jsonb;column:fee_structure_classes" json:"fee_structure_classes,omitempty"`
	// [{"name":"Tuition","amount":5000,"isOptional":false}]
	FeeStructureFeeTypes datatypes.JSON `gorm:"type:jsonb;column:fee_structure_fee_types" json:"fee_structure_fee_types,omitempty"`

	// recomputed from fee types at the write boundary when non-empty
	FeeStructureTotalAmount float64 `gorm:"not null;default:0;column:fee_structure_total_amount" json:"fee_structure_total_amount"`

	FeeStructureInstallments datatypes.JSON `gorm:"type:jsonb;column:fee_structure_installments" json:"fee_structure_installments,omitempty"`
	FeeStructureDiscounts    datatypes.JSON `gorm:"type:jsonb;column:fee_structure_discounts"    json:"fee_structure_discounts,omitempty"`
	FeeStructureLateFine     datatypes.JSON `gorm:"type:jsonb;column:fee_structure_late_fine"    json:"fee_structure_late_fine,omitempty"`

	FeeStructureIsActive bool `gorm:"not null;default:true;column:fee_structure_is_active" json:"fee_structure_is_active"`

	FeeStructureCreatedAt time.Time      `gorm:"column:fee_structure_created_at;autoCreateTime" json:"fee_structure_created_at"`
	FeeStructureUpdatedAt time.Time      `gorm:"column:fee_structure_updated_at;autoUpdateTime" json:"fee_structure_updated_at"`
	FeeStructureDeletedAt gorm.DeletedAt `gorm:"column:fee_structure_deleted_at;index"          json:"-"`
}

func (FeeStructureModel) TableName() string { return "fee_structures" }

// FeeTypes decodes the stored lines; malformed documents yield nil.
func (f *FeeStructureModel) FeeTypes() []FeeType {
	if len(f.FeeStructureFeeTypes) == 0 {
		return nil
	}
	var out []FeeType
	if err := json.Unmarshal(f.FeeStructureFeeTypes, &out); err != nil {
		return nil
	}
	return out
}
