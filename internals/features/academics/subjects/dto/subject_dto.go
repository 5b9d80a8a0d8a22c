package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	m "schoolku_backend/internals/features/academics/subjects/model"
)

type CreateSubjectRequest struct {
	Code      string         `json:"code"       validate:"required,max=20"`
	Name      string         `json:"name"       validate:"required,max=100"`
	Type      string         `json:"type"       validate:"omitempty,oneof=theory practical elective"`
	Priority  string         `json:"priority"   validate:"omitempty,oneof=core optional"`
	Classes   datatypes.JSON `json:"classes"    validate:"omitempty"`
	SessionID uuid.UUID      `json:"session_id" validate:"required,uuid4"`
}

type UpdateSubjectRequest struct {
	Name     *string        `json:"name"      validate:"omitempty,max=100"`
	Type     *string        `json:"type"      validate:"omitempty,oneof=theory practical elective"`
	Priority *string        `json:"priority"  validate:"omitempty,oneof=core optional"`
	Classes  datatypes.JSON `json:"classes"   validate:"omitempty"`
	IsActive *bool          `json:"is_active" validate:"omitempty"`
}

type SubjectResponse struct {
	SubjectID uuid.UUID      `json:"subject_id"`
	Code      string         `json:"code"`
	Name      string         `json:"name"`
	Type      string         `json:"type"`
	Priority  string         `json:"priority"`
	Classes   datatypes.JSON `json:"classes,omitempty"`
	SessionID uuid.UUID      `json:"session_id"`
	IsActive  bool           `json:"is_active"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}

func (r CreateSubjectRequest) ToModel() m.SubjectModel {
	typ := r.Type
	if typ == "" {
		typ = "theory"
	}
	priority := r.Priority
	if priority == "" {
		priority = "core"
	}
	return m.SubjectModel{
		SubjectCode:      strings.ToUpper(strings.TrimSpace(r.Code)),
		SubjectName:      r.Name,
		SubjectType:      typ,
		SubjectPriority:  priority,
		SubjectClasses:   r.Classes,
		SubjectSessionID: r.SessionID,
		SubjectIsActive:  true,
	}
}

func (r UpdateSubjectRequest) Updates() map[string]any {
	updates := map[string]any{}
	if r.Name != nil {
		updates["subject_name"] = *r.Name
	}
	if r.Type != nil {
		updates["subject_type"] = *r.Type
	}
	if r.Priority != nil {
		updates["subject_priority"] = *r.Priority
	}
	if len(r.Classes) > 0 {
		updates["subject_classes"] = r.Classes
	}
	if r.IsActive != nil {
		updates["subject_is_active"] = *r.IsActive
	}
	return updates
}

func NewSubjectResponse(mdl m.SubjectModel) SubjectResponse {
	return SubjectResponse{
		SubjectID: mdl.SubjectID,
		Code:      mdl.SubjectCode,
		Name:      mdl.SubjectName,
		Type:      mdl.SubjectType,
		Priority:  mdl.SubjectPriority,
		Classes:   mdl.SubjectClasses,
		SessionID: mdl.SubjectSessionID,
		IsActive:  mdl.SubjectIsActive,
		CreatedAt: mdl.SubjectCreatedAt,
		UpdatedAt: mdl.SubjectUpdatedAt,
	}
}

func NewSubjectResponses(models []m.SubjectModel) []SubjectResponse {
	out := make([]SubjectResponse, 0, len(models))
	for _, mdl := range models {
		out = append(out, NewSubjectResponse(mdl))
	}
	return out
}
