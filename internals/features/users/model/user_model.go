package model

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"schoolku_backend/internals/constants"
)

type UserModel struct {
	UserID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:user_id" json:"user_id"`

	UserUsername string `gorm:"size:50;not null;uniqueIndex;column:user_username" json:"user_username"`
	UserEmail    string `gorm:"size:100;not null;uniqueIndex;column:user_email"   json:"user_email"`
	UserPassword string `gorm:"not null;column:user_password"                     json:"-"`

	// super_admin | admin
	UserRole string `gorm:"size:20;not null;default:'admin';column:user_role" json:"user_role"`

	// [{module, actions:[...]}]
	UserPermissions datatypes.JSON `gorm:"type:jsonb;column:user_permissions" json:"user_permissions,omitempty"`

	UserProfile datatypes.JSON `gorm:"type:jsonb;column:user_profile" json:"user_profile,omitempty"`

	UserIsActive  bool       `gorm:"not null;default:true;column:user_is_active" json:"user_is_active"`
	UserLastLogin *time.Time `gorm:"column:user_last_login"                      json:"user_last_login,omitempty"`

	UserCreatedAt time.Time      `gorm:"column:user_created_at;autoCreateTime" json:"user_created_at"`
	UserUpdatedAt time.Time      `gorm:"column:user_updated_at;autoUpdateTime" json:"user_updated_at"`
	UserDeletedAt gorm.DeletedAt `gorm:"column:user_deleted_at;index"          json:"-"`
}

func (UserModel) TableName() string { return "users" }

// PermissionGrants decodes the stored permission document into the typed
// grant list; malformed documents degrade to no permissions.
func (u *UserModel) PermissionGrants() []constants.PermissionGrant {
	if len(u.UserPermissions) == 0 {
		return nil
	}
	var grants []constants.PermissionGrant
	if err := json.Unmarshal(u.UserPermissions, &grants); err != nil {
		return nil
	}
	return grants
}
