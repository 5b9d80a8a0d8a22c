package dto

import (
	"time"

	"github.com/google/uuid"
)

// Stats is the landing-page snapshot. Every numeric field zero-defaults so
// an empty school still renders.
type Stats struct {
	ActiveSession    *ActiveSessionInfo `json:"activeSession,omitempty"`
	TotalStudents    int64              `json:"totalStudents"`
	NewAdmissions    int64              `json:"newAdmissions"`
	TotalTeachers    int64              `json:"totalTeachers"`
	TotalClasses     int64              `json:"totalClasses"`
	TodayAttendance  map[string]int64   `json:"todayAttendance"`
	FeeCollection    FeeCollection      `json:"feeCollection"`
	UpcomingExams    []UpcomingExam     `json:"upcomingExams"`
}

type ActiveSessionInfo struct {
	SessionID uuid.UUID `json:"session_id"`
	Name      string    `json:"name"`
}

type FeeCollection struct {
	Paid FeeBucket `json:"paid"`
}

type FeeBucket struct {
	Count  int64   `json:"count"`
	Amount float64 `json:"amount"`
}

type UpcomingExam struct {
	ExamID    uuid.UUID `json:"exam_id"`
	Name      string    `json:"name"`
	Type      string    `json:"type"`
	StartDate time.Time `json:"start_date"`
}

// AttendancePoint is one (date,status) bucket of the attendance chart.
type AttendancePoint struct {
	Date   time.Time `gorm:"column:date"   json:"date"`
	Status string    `gorm:"column:status" json:"status"`
	Count  int64     `gorm:"column:count"  json:"count"`
}

// FeePoint is one calendar month of collected fees.
type FeePoint struct {
	Year   int     `gorm:"column:year"   json:"year"`
	Month  int     `gorm:"column:month"  json:"month"`
	Amount float64 `gorm:"column:amount" json:"amount"`
	Count  int64   `gorm:"column:count"  json:"count"`
}
