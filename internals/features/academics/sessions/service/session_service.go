package service

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"schoolku_backend/internals/features/academics/sessions/model"
)

var ErrSessionNotFound = errors.New("session not found")

type SessionService struct{}

func NewSessionService() *SessionService { return &SessionService{} }

// Activate makes one session the active one. The deactivation sweep and the
// activation run in a single transaction so no observer sees zero or two
// active sessions after the call completes.
func (s *SessionService) Activate(db *gorm.DB, sessionID uuid.UUID) (*model.AcademicSessionModel, error) {
	var activated model.AcademicSessionModel

	err := db.Transaction(func(tx *gorm.DB) error {
		var session model.AcademicSessionModel
		if err := tx.
			Where("academic_session_id = ?", sessionID).
			First(&session).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrSessionNotFound
			}
			return err
		}

		if err := tx.Model(&model.AcademicSessionModel{}).
			Where("academic_session_id <> ? AND academic_session_is_active = TRUE", sessionID).
			Update("academic_session_is_active", false).Error; err != nil {
			return err
		}

		if err := tx.Model(&model.AcademicSessionModel{}).
			Where("academic_session_id = ?", sessionID).
			Update("academic_session_is_active", true).Error; err != nil {
			return err
		}

		session.AcademicSessionIsActive = true
		activated = session
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &activated, nil
}

// ActiveSession returns the current active session, nil when none is set.
func (s *SessionService) ActiveSession(db *gorm.DB) (*model.AcademicSessionModel, error) {
	var session model.AcademicSessionModel
	err := db.
		Where("academic_session_is_active = TRUE").
		First(&session).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &session, nil
}
