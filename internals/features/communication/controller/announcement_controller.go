package controller

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"schoolku_backend/internals/features/communication/dto"
	"schoolku_backend/internals/features/communication/model"
	helper "schoolku_backend/internals/helpers"
)

type AnnouncementController struct {
	DB *gorm.DB
}

func NewAnnouncementController(db *gorm.DB) *AnnouncementController {
	return &AnnouncementController{DB: db}
}

/* ===================== LIST ===================== */
// GET /api/announcements?type=&targetAudience=&isPublished=
func (ctrl *AnnouncementController) GetAnnouncements(c *fiber.Ctx) error {
	q := ctrl.DB.WithContext(c.UserContext()).Model(&model.AnnouncementModel{})

	if t := c.Query("type"); t != "" {
		q = q.Where("announcement_type = ?", t)
	}
	if audience := c.Query("targetAudience"); audience != "" {
		q = q.Where("announcement_target_audience = ?", audience)
	}
	if raw := c.Query("isPublished"); raw != "" {
		q = q.Where("announcement_is_published = ?", raw == "true")
	}
	// expired announcements stay out of every listing
	q = q.Where("announcement_expiry_date IS NULL OR announcement_expiry_date >= ?", time.Now().UTC())

	var announcements []model.AnnouncementModel
	if err := q.Order("announcement_publish_date DESC").Find(&announcements).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonList(c, announcements, len(announcements))
}

/* ===================== DETAIL ===================== */
// GET /api/announcements/:id
func (ctrl *AnnouncementController) GetAnnouncement(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var announcement model.AnnouncementModel
	if err := ctrl.DB.WithContext(c.UserContext()).
		First(&announcement, "announcement_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Announcement not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonOK(c, "", announcement)
}

/* ===================== CREATE ===================== */
// POST /api/announcements
func (ctrl *AnnouncementController) CreateAnnouncement(c *fiber.Ctx) error {
	var req dto.CreateAnnouncementRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	validate := validator.New()
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	createdBy, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	announcement := model.AnnouncementModel{
		AnnouncementTitle:          req.Title,
		AnnouncementContent:        req.Content,
		AnnouncementType:           "general",
		AnnouncementTargetAudience: "all",
		AnnouncementTargetClasses:  req.TargetClasses,
		AnnouncementPublishDate:    time.Now().UTC(),
		AnnouncementIsPublished:    true,
		AnnouncementCreatedBy:      createdBy,
	}
	if req.Type != "" {
		announcement.AnnouncementType = req.Type
	}
	if req.TargetAudience != "" {
		announcement.AnnouncementTargetAudience = req.TargetAudience
	}
	if req.PublishDate != nil {
		publishDate, err := helper.ParseDate(*req.PublishDate)
		if err != nil {
			return helper.FromFiberError(c, err)
		}
		announcement.AnnouncementPublishDate = publishDate
	}
	if req.ExpiryDate != nil {
		expiryDate, err := helper.ParseDate(*req.ExpiryDate)
		if err != nil {
			return helper.FromFiberError(c, err)
		}
		announcement.AnnouncementExpiryDate = &expiryDate
	}
	if req.IsPublished != nil {
		announcement.AnnouncementIsPublished = *req.IsPublished
	}

	if err := ctrl.DB.WithContext(c.UserContext()).Create(&announcement).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonCreated(c, "Announcement created successfully", announcement)
}

/* ===================== UPDATE ===================== */
// PUT /api/announcements/:id
func (ctrl *AnnouncementController) UpdateAnnouncement(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req dto.UpdateAnnouncementRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	validate := validator.New()
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	updates := map[string]any{}
	if req.Title != nil {
		updates["announcement_title"] = *req.Title
	}
	if req.Content != nil {
		updates["announcement_content"] = *req.Content
	}
	if req.Type != nil {
		updates["announcement_type"] = *req.Type
	}
	if req.TargetAudience != nil {
		updates["announcement_target_audience"] = *req.TargetAudience
	}
	if len(req.TargetClasses) > 0 {
		updates["announcement_target_classes"] = req.TargetClasses
	}
	if req.PublishDate != nil {
		publishDate, err := helper.ParseDate(*req.PublishDate)
		if err != nil {
			return helper.FromFiberError(c, err)
		}
		updates["announcement_publish_date"] = publishDate
	}
	if req.ExpiryDate != nil {
		expiryDate, err := helper.ParseDate(*req.ExpiryDate)
		if err != nil {
			return helper.FromFiberError(c, err)
		}
		updates["announcement_expiry_date"] = expiryDate
	}
	if req.IsPublished != nil {
		updates["announcement_is_published"] = *req.IsPublished
	}
	if len(updates) == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "No fields to update")
	}

	var announcement model.AnnouncementModel
	res := ctrl.DB.WithContext(c.UserContext()).
		Model(&announcement).
		Clauses(clause.Returning{}).
		Where("announcement_id = ?", id).
		Updates(updates)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Announcement not found")
	}

	return helper.JsonUpdated(c, "Announcement updated successfully", announcement)
}

/* ===================== MARK AS READ ===================== */
// PUT /api/announcements/:id/read
func (ctrl *AnnouncementController) MarkAsRead(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var announcement model.AnnouncementModel
	err = ctrl.DB.WithContext(c.UserContext()).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&announcement, "announcement_id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Announcement not found")
			}
			return err
		}

		// marking twice is a no-op
		if announcement.HasRead(userID) {
			return nil
		}

		readBy := append(announcement.ReadBy(), model.ReadEntry{
			User:   userID,
			ReadAt: time.Now().UTC(),
		})
		raw, err := json.Marshal(readBy)
		if err != nil {
			return err
		}

		return tx.Model(&announcement).
			Clauses(clause.Returning{}).
			Where("announcement_id = ?", id).
			Update("announcement_read_by", raw).Error
	})
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	return helper.JsonUpdated(c, "Announcement marked as read", announcement)
}

/* ===================== DELETE ===================== */
// DELETE /api/announcements/:id
func (ctrl *AnnouncementController) DeleteAnnouncement(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	res := ctrl.DB.WithContext(c.UserContext()).
		Where("announcement_id = ?", id).
		Delete(&model.AnnouncementModel{})
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Announcement not found")
	}

	return helper.JsonDeleted(c, "Announcement deleted successfully")
}
