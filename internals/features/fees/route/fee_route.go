package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schoolku_backend/internals/constants"
	feeCtrl "schoolku_backend/internals/features/fees/controller"
	authmw "schoolku_backend/internals/middlewares/auth"
)

func FeeRoutes(r fiber.Router, db *gorm.DB) {
	view := authmw.RequirePermission(constants.ModuleFees, constants.ActionView)
	create := authmw.RequirePermission(constants.ModuleFees, constants.ActionCreate)
	update := authmw.RequirePermission(constants.ModuleFees, constants.ActionUpdate)

	g := r.Group("/fees")

	// =====================
	// Fee Structures
	// =====================
	structures := feeCtrl.NewFeeStructureController(db)
	g.Get("/structures", view, structures.GetFeeStructures)
	g.Get("/structures/:id", view, structures.GetFeeStructure)
	g.Post("/structures", create, structures.CreateFeeStructure)
	g.Put("/structures/:id", update, structures.UpdateFeeStructure)

	// =====================
	// Fee Payments
	// =====================
	payments := feeCtrl.NewFeePaymentController(db)
	// literal path before /:id
	g.Get("/payments/summary/student", view, payments.GetStudentFeeSummary)
	g.Get("/payments", view, payments.GetFeePayments)
	g.Get("/payments/:id", view, payments.GetFeePayment)
	g.Post("/payments", create, payments.CreateFeePayment)
	g.Put("/payments/:id", update, payments.UpdateFeePayment)
}
