package model

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ReadEntry records one reader of an announcement; a user appears at most once.
type ReadEntry struct {
	User   uuid.UUID `json:"user"`
	ReadAt time.Time `json:"readAt"`
}

type AnnouncementModel struct {
	AnnouncementID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:announcement_id" json:"announcement_id"`

	AnnouncementTitle   string `gorm:"size:200;not null;column:announcement_title" json:"announcement_title"`
	AnnouncementContent string `gorm:"not null;column:announcement_content"        json:"announcement_content"`

	// general | academic | event | holiday | urgent
	AnnouncementType string `gorm:"size:30;not null;default:'general';column:announcement_type;index" json:"announcement_type"`
	// all | students | teachers | parents | staff
	AnnouncementTargetAudience string `gorm:"size:30;not null;default:'all';column:announcement_target_audience;index" json:"announcement_target_audience"`

	AnnouncementTargetClasses datatypes.JSON `gorm:"type:jsonb;column:announcement_target_classes" json:"announcement_target_classes,omitempty"`

	AnnouncementPublishDate time.Time  `gorm:"not null;column:announcement_publish_date" json:"announcement_publish_date"`
	AnnouncementExpiryDate  *time.Time `gorm:"column:announcement_expiry_date;index"     json:"announcement_expiry_date,omitempty"`

	AnnouncementIsPublished bool      `gorm:"not null;default:true;column:announcement_is_published" json:"announcement_is_published"`
	AnnouncementCreatedBy   uuid.UUID `gorm:"type:uuid;not null;column:announcement_created_by"      json:"announcement_created_by"`

	AnnouncementReadBy datatypes.JSON `gorm:"type:jsonb;column:announcement_read_by" json:"announcement_read_by,omitempty"`

	AnnouncementCreatedAt time.Time      `gorm:"column:announcement_created_at;autoCreateTime" json:"announcement_created_at"`
	AnnouncementUpdatedAt time.Time      `gorm:"column:announcement_updated_at;autoUpdateTime" json:"announcement_updated_at"`
	AnnouncementDeletedAt gorm.DeletedAt `gorm:"column:announcement_deleted_at;index"          json:"-"`
}

func (AnnouncementModel) TableName() string { return "announcements" }

// ReadBy decodes the stored reader list; malformed documents yield nil.
func (a *AnnouncementModel) ReadBy() []ReadEntry {
	if len(a.AnnouncementReadBy) == 0 {
		return nil
	}
	var out []ReadEntry
	if err := json.Unmarshal(a.AnnouncementReadBy, &out); err != nil {
		return nil
	}
	return out
}

func (a *AnnouncementModel) HasRead(userID uuid.UUID) bool {
	for _, entry := range a.ReadBy() {
		if entry.User == userID {
			return true
		}
	}
	return false
}
