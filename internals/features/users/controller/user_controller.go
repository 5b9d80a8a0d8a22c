package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"schoolku_backend/internals/features/users/dto"
	"schoolku_backend/internals/features/users/model"
	helper "schoolku_backend/internals/helpers"
)

/* ===================== LIST ===================== */
// GET /api/users?role=&isActive=&search=&page=&limit= (super admin only, gated at the route)
func (ctrl *AuthController) GetUsers(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 10, 200)

	q := ctrl.DB.WithContext(c.UserContext()).Model(&model.UserModel{})
	if role := c.Query("role"); role != "" {
		q = q.Where("user_role = ?", role)
	}
	if raw := c.Query("isActive"); raw != "" {
		q = q.Where("user_is_active = ?", raw == "true")
	}
	if search := c.Query("search"); search != "" {
		like := "%" + search + "%"
		q = q.Where(
			ctrl.DB.Where("user_username ILIKE ?", like).
				Or("user_email ILIKE ?", like),
		)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var users []model.UserModel
	if err := q.
		Order("user_created_at DESC").
		Limit(paging.Limit).
		Offset(paging.Offset).
		Find(&users).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	out := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, dto.NewUserResponse(u))
	}
	return helper.JsonPage(c, out, total, paging.Page, paging.Limit)
}

/* ===================== DETAIL ===================== */
// GET /api/users/:id
func (ctrl *AuthController) GetUser(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var user model.UserModel
	if err := ctrl.DB.WithContext(c.UserContext()).
		Where("user_id = ?", id).
		First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "User not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonOK(c, "", dto.NewUserResponse(user))
}

/* ===================== UPDATE (partial) ===================== */
// PUT /api/users/:id
func (ctrl *AuthController) UpdateUser(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req dto.UpdateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request payload")
	}
	v := validator.New()
	if err := v.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	updates := req.Updates()
	if len(updates) == 0 {
		return helper.JsonOK(c, "No changes", fiber.Map{"user_id": id})
	}

	var updated model.UserModel
	res := ctrl.DB.WithContext(c.UserContext()).
		Model(&model.UserModel{}).
		Where("user_id = ?", id).
		Clauses(clause.Returning{}).
		Updates(updates).
		Scan(&updated)
	if res.Error != nil {
		if helper.IsDuplicateKey(res.Error) {
			return helper.JsonError(c, fiber.StatusBadRequest, "Username or email already in use")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "User not found")
	}

	return helper.JsonUpdated(c, "User updated successfully", dto.NewUserResponse(updated))
}

/* ===================== TOGGLE STATUS ===================== */
// PUT /api/users/:id/toggle-status
func (ctrl *AuthController) ToggleUserStatus(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	actorID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	if actorID == id {
		return helper.JsonError(c, fiber.StatusBadRequest, "You cannot deactivate your own account")
	}

	var updated model.UserModel
	res := ctrl.DB.WithContext(c.UserContext()).
		Model(&model.UserModel{}).
		Where("user_id = ?", id).
		Clauses(clause.Returning{}).
		Update("user_is_active", gorm.Expr("NOT user_is_active")).
		Scan(&updated)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "User not found")
	}

	message := "User deactivated successfully"
	if updated.UserIsActive {
		message = "User activated successfully"
	}
	return helper.JsonUpdated(c, message, dto.NewUserResponse(updated))
}

/* ===================== DELETE ===================== */
// DELETE /api/users/:id
func (ctrl *AuthController) DeleteUser(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	actorID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	if actorID == id {
		return helper.JsonError(c, fiber.StatusBadRequest, "You cannot delete your own account")
	}

	res := ctrl.DB.WithContext(c.UserContext()).
		Where("user_id = ?", id).
		Delete(&model.UserModel{})
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "User not found")
	}

	return helper.JsonDeleted(c, "User deleted successfully")
}
