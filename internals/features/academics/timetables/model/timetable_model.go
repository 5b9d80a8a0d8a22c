package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type TimetableModel struct {
	TimetableID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:timetable_id" json:"timetable_id"`

	TimetableClassID   uuid.UUID `gorm:"type:uuid;not null;column:timetable_class_id;index"   json:"timetable_class_id"`
	TimetableSection   string    `gorm:"size:10;not null;column:timetable_section"            json:"timetable_section"`
	TimetableSessionID uuid.UUID `gorm:"type:uuid;not null;column:timetable_session_id;index" json:"timetable_session_id"`

	// {day: [{period, subject, teacher, startTime, endTime, room}]}
	TimetableSchedule datatypes.JSON `gorm:"type:jsonb;column:timetable_schedule" json:"timetable_schedule,omitempty"`

	TimetableEffectiveFrom *time.Time `gorm:"type:date;column:timetable_effective_from" json:"timetable_effective_from,omitempty"`
	TimetableEffectiveTo   *time.Time `gorm:"type:date;column:timetable_effective_to"   json:"timetable_effective_to,omitempty"`

	TimetableCreatedAt time.Time      `gorm:"column:timetable_created_at;autoCreateTime" json:"timetable_created_at"`
	TimetableUpdatedAt time.Time      `gorm:"column:timetable_updated_at;autoUpdateTime" json:"timetable_updated_at"`
	TimetableDeletedAt gorm.DeletedAt `gorm:"column:timetable_deleted_at;index"          json:"-"`
}

func (TimetableModel) TableName() string { return "timetables" }
