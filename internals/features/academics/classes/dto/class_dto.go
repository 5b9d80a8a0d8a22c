package dto

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	m "schoolku_backend/internals/features/academics/classes/model"
)

/* =========================================================
 * REQUESTS
 * ========================================================= */

type CreateClassRequest struct {
	Name      string         `json:"name"       validate:"required,max=100"`
	Level     int            `json:"level"      validate:"required,min=0"`
	Sections  datatypes.JSON `json:"sections"   validate:"omitempty"`
	SessionID uuid.UUID      `json:"session_id" validate:"required,uuid4"`
	IsActive  *bool          `json:"is_active"  validate:"omitempty"`
}

type UpdateClassRequest struct {
	Name     *string        `json:"name"      validate:"omitempty,max=100"`
	Level    *int           `json:"level"     validate:"omitempty,min=0"`
	Sections datatypes.JSON `json:"sections"  validate:"omitempty"`
	IsActive *bool          `json:"is_active" validate:"omitempty"`
}

/* =========================================================
 * RESPONSE
 * ========================================================= */

type ClassResponse struct {
	ClassID   uuid.UUID      `json:"class_id"`
	Name      string         `json:"name"`
	Level     int            `json:"level"`
	Sections  datatypes.JSON `json:"sections,omitempty"`
	SessionID uuid.UUID      `json:"session_id"`
	IsActive  bool           `json:"is_active"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}

func (r CreateClassRequest) ToModel() m.ClassModel {
	active := true
	if r.IsActive != nil {
		active = *r.IsActive
	}
	return m.ClassModel{
		ClassName:      r.Name,
		ClassLevel:     r.Level,
		ClassSections:  r.Sections,
		ClassSessionID: r.SessionID,
		ClassIsActive:  active,
	}
}

func (r UpdateClassRequest) Updates() map[string]any {
	updates := map[string]any{}
	if r.Name != nil {
		updates["class_name"] = *r.Name
	}
	if r.Level != nil {
		updates["class_level"] = *r.Level
	}
	if len(r.Sections) > 0 {
		updates["class_sections"] = r.Sections
	}
	if r.IsActive != nil {
		updates["class_is_active"] = *r.IsActive
	}
	return updates
}

func NewClassResponse(mdl m.ClassModel) ClassResponse {
	return ClassResponse{
		ClassID:   mdl.ClassID,
		Name:      mdl.ClassName,
		Level:     mdl.ClassLevel,
		Sections:  mdl.ClassSections,
		SessionID: mdl.ClassSessionID,
		IsActive:  mdl.ClassIsActive,
		CreatedAt: mdl.ClassCreatedAt,
		UpdatedAt: mdl.ClassUpdatedAt,
	}
}

func NewClassResponses(models []m.ClassModel) []ClassResponse {
	out := make([]ClassResponse, 0, len(models))
	for _, mdl := range models {
		out = append(out, NewClassResponse(mdl))
	}
	return out
}
