package dto

import (
	"gorm.io/datatypes"
)

type CreateAnnouncementRequest struct {
	Title          string         `json:"title"           validate:"required,max=200"`
	Content        string         `json:"content"         validate:"required"`
	Type           string         `json:"type"            validate:"omitempty,oneof=general academic event holiday urgent"`
	TargetAudience string         `json:"target_audience" validate:"omitempty,oneof=all students teachers parents staff"`
	TargetClasses  datatypes.JSON `json:"target_classes"  validate:"omitempty"`
	PublishDate    *string        `json:"publish_date"    validate:"omitempty"`
	ExpiryDate     *string        `json:"expiry_date"     validate:"omitempty"`
	IsPublished    *bool          `json:"is_published"    validate:"omitempty"`
}

type UpdateAnnouncementRequest struct {
	Title          *string        `json:"title"           validate:"omitempty,max=200"`
	Content        *string        `json:"content"         validate:"omitempty"`
	Type           *string        `json:"type"            validate:"omitempty,oneof=general academic event holiday urgent"`
	TargetAudience *string        `json:"target_audience" validate:"omitempty,oneof=all students teachers parents staff"`
	TargetClasses  datatypes.JSON `json:"target_classes"  validate:"omitempty"`
	PublishDate    *string        `json:"publish_date"    validate:"omitempty"`
	ExpiryDate     *string        `json:"expiry_date"     validate:"omitempty"`
	IsPublished    *bool          `json:"is_published"    validate:"omitempty"`
}
