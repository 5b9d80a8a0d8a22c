package dto

import (
	"time"

	"github.com/google/uuid"

	m "schoolku_backend/internals/features/academics/sessions/model"
)

/* =========================================================
 * REQUESTS
 * ========================================================= */

type CreateAcademicSessionRequest struct {
	Name        string    `json:"name"        validate:"required,max=100"`
	StartDate   time.Time `json:"start_date"  validate:"required"`
	EndDate     time.Time `json:"end_date"    validate:"required,gtfield=StartDate"`
	Description *string   `json:"description" validate:"omitempty,max=500"`
}

type UpdateAcademicSessionRequest struct {
	Name        *string    `json:"name"        validate:"omitempty,max=100"`
	StartDate   *time.Time `json:"start_date"  validate:"omitempty"`
	EndDate     *time.Time `json:"end_date"    validate:"omitempty"`
	IsLocked    *bool      `json:"is_locked"   validate:"omitempty"`
	Description *string    `json:"description" validate:"omitempty,max=500"`
}

/* =========================================================
 * RESPONSE
 * ========================================================= */

type AcademicSessionResponse struct {
	AcademicSessionID uuid.UUID  `json:"academic_session_id"`
	Name              string     `json:"name"`
	StartDate         time.Time  `json:"start_date"`
	EndDate           time.Time  `json:"end_date"`
	IsActive          bool       `json:"is_active"`
	IsLocked          bool       `json:"is_locked"`
	Description       *string    `json:"description,omitempty"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at"`
}

func (r CreateAcademicSessionRequest) ToModel() m.AcademicSessionModel {
	return m.AcademicSessionModel{
		AcademicSessionName:        r.Name,
		AcademicSessionStartDate:   r.StartDate,
		AcademicSessionEndDate:     r.EndDate,
		AcademicSessionDescription: r.Description,
	}
}

// Updates builds the partial update map; nil fields are not touched.
func (r UpdateAcademicSessionRequest) Updates() map[string]any {
	updates := map[string]any{}
	if r.Name != nil {
		updates["academic_session_name"] = *r.Name
	}
	if r.StartDate != nil {
		updates["academic_session_start_date"] = *r.StartDate
	}
	if r.EndDate != nil {
		updates["academic_session_end_date"] = *r.EndDate
	}
	if r.IsLocked != nil {
		updates["academic_session_is_locked"] = *r.IsLocked
	}
	if r.Description != nil {
		updates["academic_session_description"] = *r.Description
	}
	return updates
}

func NewAcademicSessionResponse(mdl m.AcademicSessionModel) AcademicSessionResponse {
	return AcademicSessionResponse{
		AcademicSessionID: mdl.AcademicSessionID,
		Name:              mdl.AcademicSessionName,
		StartDate:         mdl.AcademicSessionStartDate,
		EndDate:           mdl.AcademicSessionEndDate,
		IsActive:          mdl.AcademicSessionIsActive,
		IsLocked:          mdl.AcademicSessionIsLocked,
		Description:       mdl.AcademicSessionDescription,
		CreatedAt:         mdl.AcademicSessionCreatedAt,
		UpdatedAt:         mdl.AcademicSessionUpdatedAt,
	}
}

func NewAcademicSessionResponses(models []m.AcademicSessionModel) []AcademicSessionResponse {
	out := make([]AcademicSessionResponse, 0, len(models))
	for _, mdl := range models {
		out = append(out, NewAcademicSessionResponse(mdl))
	}
	return out
}
