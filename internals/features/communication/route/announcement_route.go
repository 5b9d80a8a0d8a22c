package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schoolku_backend/internals/constants"
	announcementCtrl "schoolku_backend/internals/features/communication/controller"
	authmw "schoolku_backend/internals/middlewares/auth"
)

func AnnouncementRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := announcementCtrl.NewAnnouncementController(db)

	g := r.Group("/announcements")
	g.Get("/", authmw.RequirePermission(constants.ModuleCommunication, constants.ActionView), ctrl.GetAnnouncements)
	g.Get("/:id", authmw.RequirePermission(constants.ModuleCommunication, constants.ActionView), ctrl.GetAnnouncement)
	g.Post("/", authmw.RequirePermission(constants.ModuleCommunication, constants.ActionCreate), ctrl.CreateAnnouncement)
	g.Put("/:id", authmw.RequirePermission(constants.ModuleCommunication, constants.ActionUpdate), ctrl.UpdateAnnouncement)
	// any authenticated user marks their own read receipt
	g.Put("/:id/read", ctrl.MarkAsRead)
	g.Delete("/:id", authmw.RequirePermission(constants.ModuleCommunication, constants.ActionDelete), ctrl.DeleteAnnouncement)
}
