package dto

import (
	"strings"
	"time"

	"gorm.io/datatypes"

	"schoolku_backend/internals/constants"
	"schoolku_backend/internals/features/users/model"

	"github.com/google/uuid"
)

/* =========================================================
 * REQUESTS
 * ========================================================= */

type LoginRequest struct {
	// Username or email.
	Identifier string `json:"identifier" validate:"required,min=3,max=100"`
	Password   string `json:"password"   validate:"required,min=6"`
}

type RegisterUserRequest struct {
	Username    string                      `json:"username"    validate:"required,min=3,max=50"`
	Email       string                      `json:"email"       validate:"required,email"`
	Password    string                      `json:"password"    validate:"required,min=6"`
	Role        string                      `json:"role"        validate:"omitempty,oneof=super_admin admin"`
	Permissions []constants.PermissionGrant `json:"permissions" validate:"omitempty,dive"`
	Profile     datatypes.JSON              `json:"profile"     validate:"omitempty"`
}

type UpdatePermissionsRequest struct {
	Permissions []constants.PermissionGrant `json:"permissions" validate:"required,dive"`
}

type UpdateUserRequest struct {
	Username *string        `json:"username" validate:"omitempty,min=3,max=50"`
	Email    *string        `json:"email"    validate:"omitempty,email"`
	Role     *string        `json:"role"     validate:"omitempty,oneof=super_admin admin"`
	Profile  datatypes.JSON `json:"profile"  validate:"omitempty"`
}

type UpdatePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" validate:"required,min=6"`
	NewPassword     string `json:"newPassword"     validate:"required,min=6"`
}

/* =========================================================
 * RESPONSES
 * ========================================================= */

type UserResponse struct {
	UserID      uuid.UUID      `json:"user_id"`
	Username    string         `json:"username"`
	Email       string         `json:"email"`
	Role        string         `json:"role"`
	Permissions datatypes.JSON `json:"permissions,omitempty"`
	Profile     datatypes.JSON `json:"profile,omitempty"`
	IsActive    bool           `json:"is_active"`
	LastLogin   *time.Time     `json:"last_login,omitempty"`
	CreatedAt   time.Time      `json:"created_at"`
}

type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

func (r RegisterUserRequest) ToModel(hashedPassword string, permissions datatypes.JSON) model.UserModel {
	role := r.Role
	if role == "" {
		role = constants.RoleAdmin
	}
	return model.UserModel{
		UserUsername:    strings.ToLower(strings.TrimSpace(r.Username)),
		UserEmail:       strings.ToLower(strings.TrimSpace(r.Email)),
		UserPassword:    hashedPassword,
		UserRole:        role,
		UserPermissions: permissions,
		UserProfile:     r.Profile,
		UserIsActive:    true,
	}
}

func (r UpdateUserRequest) Updates() map[string]any {
	updates := map[string]any{}
	if r.Username != nil {
		updates["user_username"] = strings.ToLower(strings.TrimSpace(*r.Username))
	}
	if r.Email != nil {
		updates["user_email"] = strings.ToLower(strings.TrimSpace(*r.Email))
	}
	if r.Role != nil {
		updates["user_role"] = *r.Role
	}
	if len(r.Profile) > 0 {
		updates["user_profile"] = r.Profile
	}
	return updates
}

func NewUserResponse(m model.UserModel) UserResponse {
	return UserResponse{
		UserID:      m.UserID,
		Username:    m.UserUsername,
		Email:       m.UserEmail,
		Role:        m.UserRole,
		Permissions: m.UserPermissions,
		Profile:     m.UserProfile,
		IsActive:    m.UserIsActive,
		LastLogin:   m.UserLastLogin,
		CreatedAt:   m.UserCreatedAt,
	}
}
