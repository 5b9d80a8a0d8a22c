package dto

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	m "schoolku_backend/internals/features/academics/grading/model"
)

type CreateGradingSystemRequest struct {
	Name         string        `json:"name"          validate:"required,max=100"`
	Type         string        `json:"type"          validate:"required,oneof=percentage gpa letter"`
	Grades       []m.GradeBand `json:"grades"        validate:"required,min=1,dive"`
	PassingGrade *string       `json:"passing_grade" validate:"omitempty,max=10"`
	SessionID    *uuid.UUID    `json:"session_id"    validate:"omitempty"`
	IsDefault    bool          `json:"is_default"`
}

type GradingSystemResponse struct {
	GradingSystemID uuid.UUID      `json:"grading_system_id"`
	Name            string         `json:"name"`
	Type            string         `json:"type"`
	Grades          datatypes.JSON `json:"grades"`
	PassingGrade    *string        `json:"passing_grade,omitempty"`
	SessionID       *uuid.UUID     `json:"session_id,omitempty"`
	IsDefault       bool           `json:"is_default"`
	IsActive        bool           `json:"is_active"`
	CreatedAt       time.Time      `json:"created_at"`
}

func (r CreateGradingSystemRequest) ToModel() (m.GradingSystemModel, error) {
	raw, err := json.Marshal(r.Grades)
	if err != nil {
		return m.GradingSystemModel{}, err
	}
	return m.GradingSystemModel{
		GradingSystemName:         r.Name,
		GradingSystemType:         r.Type,
		GradingSystemGrades:       raw,
		GradingSystemPassingGrade: r.PassingGrade,
		GradingSystemSessionID:    r.SessionID,
		GradingSystemIsDefault:    r.IsDefault,
		GradingSystemIsActive:     true,
	}, nil
}

func NewGradingSystemResponse(mdl m.GradingSystemModel) GradingSystemResponse {
	return GradingSystemResponse{
		GradingSystemID: mdl.GradingSystemID,
		Name:            mdl.GradingSystemName,
		Type:            mdl.GradingSystemType,
		Grades:          mdl.GradingSystemGrades,
		PassingGrade:    mdl.GradingSystemPassingGrade,
		SessionID:       mdl.GradingSystemSessionID,
		IsDefault:       mdl.GradingSystemIsDefault,
		IsActive:        mdl.GradingSystemIsActive,
		CreatedAt:       mdl.GradingSystemCreatedAt,
	}
}

func NewGradingSystemResponses(models []m.GradingSystemModel) []GradingSystemResponse {
	out := make([]GradingSystemResponse, 0, len(models))
	for _, mdl := range models {
		out = append(out, NewGradingSystemResponse(mdl))
	}
	return out
}
