//go:build integration

package service

import (
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"schoolku_backend/internals/features/academics/sessions/model"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := os.Getenv("TEST_DATABASE_DSN")
	if dsn == "" {
		t.Skip("TEST_DATABASE_DSN not set")
	}
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.AcademicSessionModel{}))
	return db
}

func seedSession(t *testing.T, db *gorm.DB, name string, active bool) model.AcademicSessionModel {
	t.Helper()
	session := model.AcademicSessionModel{
		AcademicSessionName:      name,
		AcademicSessionStartDate: time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC),
		AcademicSessionEndDate:   time.Date(2027, 3, 31, 0, 0, 0, 0, time.UTC),
		AcademicSessionIsActive:  active,
	}
	require.NoError(t, db.Create(&session).Error)
	t.Cleanup(func() {
		db.Unscoped().
			Where("academic_session_id = ?", session.AcademicSessionID).
			Delete(&model.AcademicSessionModel{})
	})
	return session
}

func TestActivateKeepsSingleActiveSession(t *testing.T) {
	db := openTestDB(t)
	svc := NewSessionService()

	first := seedSession(t, db, "2025-26", true)
	second := seedSession(t, db, "2026-27", false)

	activated, err := svc.Activate(db, second.AcademicSessionID)
	require.NoError(t, err)
	assert.True(t, activated.AcademicSessionIsActive)

	var count int64
	require.NoError(t, db.Model(&model.AcademicSessionModel{}).
		Where("academic_session_is_active = TRUE").
		Count(&count).Error)
	assert.Equal(t, int64(1), count)

	var old model.AcademicSessionModel
	require.NoError(t, db.First(&old, "academic_session_id = ?", first.AcademicSessionID).Error)
	assert.False(t, old.AcademicSessionIsActive)
}

func TestActivateIsIdempotent(t *testing.T) {
	db := openTestDB(t)
	svc := NewSessionService()

	session := seedSession(t, db, "2026-27 re-run", false)

	_, err := svc.Activate(db, session.AcademicSessionID)
	require.NoError(t, err)
	_, err = svc.Activate(db, session.AcademicSessionID)
	require.NoError(t, err)

	var count int64
	require.NoError(t, db.Model(&model.AcademicSessionModel{}).
		Where("academic_session_is_active = TRUE").
		Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestActivateUnknownSession(t *testing.T) {
	db := openTestDB(t)
	svc := NewSessionService()

	_, err := svc.Activate(db, uuid.New())
	assert.ErrorIs(t, err, ErrSessionNotFound)
}
