package controller

import (
	"encoding/json"
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"schoolku_backend/internals/features/fees/dto"
	"schoolku_backend/internals/features/fees/model"
	"schoolku_backend/internals/features/fees/service"
	helper "schoolku_backend/internals/helpers"
)

type FeePaymentController struct {
	DB *gorm.DB
}

func NewFeePaymentController(db *gorm.DB) *FeePaymentController {
	return &FeePaymentController{DB: db}
}

/* ===================== LIST ===================== */
// GET /api/fees/payments?studentId=&session=&status=&startDate=&endDate=&page=&limit=
func (ctrl *FeePaymentController) GetFeePayments(c *fiber.Ctx) error {
	studentID, err := helper.ParseUUIDQuery(c, "studentId")
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	sessionID, err := helper.ParseUUIDQuery(c, "session")
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	paging := helper.ResolvePaging(c, 10, 200)

	q := ctrl.DB.WithContext(c.UserContext()).Model(&model.FeePaymentModel{})
	if studentID != uuid.Nil {
		q = q.Where("fee_payment_student_id = ?", studentID)
	}
	if sessionID != uuid.Nil {
		q = q.Where("fee_payment_session_id = ?", sessionID)
	}
	if status := c.Query("status"); status != "" {
		q = q.Where("fee_payment_status = ?", status)
	}
	if start, end := c.Query("startDate"), c.Query("endDate"); start != "" && end != "" {
		startDate, err := helper.ParseDate(start)
		if err != nil {
			return helper.FromFiberError(c, err)
		}
		endDate, err := helper.ParseDate(end)
		if err != nil {
			return helper.FromFiberError(c, err)
		}
		q = q.Where("fee_payment_paid_date BETWEEN ? AND ?", startDate, endDate)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var payments []model.FeePaymentModel
	if err := q.
		Order("fee_payment_created_at DESC").
		Limit(paging.Limit).
		Offset(paging.Offset).
		Find(&payments).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonPage(c, payments, total, paging.Page, paging.Limit)
}

/* ===================== DETAIL ===================== */
// GET /api/fees/payments/:id
func (ctrl *FeePaymentController) GetFeePayment(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var payment model.FeePaymentModel
	if err := ctrl.DB.WithContext(c.UserContext()).
		First(&payment, "fee_payment_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Fee payment not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonOK(c, "", payment)
}

/* ===================== CREATE ===================== */
// POST /api/fees/payments
func (ctrl *FeePaymentController) CreateFeePayment(c *fiber.Ctx) error {
	var req dto.CreateFeePaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	validate := validator.New()
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	collectedBy, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var discount *model.Discount
	var discountRaw []byte
	if req.Discount != nil {
		discount = &model.Discount{
			Type:   req.Discount.Type,
			Amount: req.Discount.Amount,
			Reason: req.Discount.Reason,
		}
		if discountRaw, err = json.Marshal(discount); err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
		}
	}

	totalAmount := service.PaymentTotal(req.Amount, discount, req.LateFine)
	status := service.DeriveStatus(req.AmountPaid, totalAmount, "")

	payment := model.FeePaymentModel{
		FeePaymentReceiptNumber: strings.ToUpper(helper.GenerateReceiptNumber()),
		FeePaymentStudentID:     req.StudentID,
		FeePaymentStructureID:   req.StructureID,
		FeePaymentSessionID:     req.SessionID,
		FeePaymentAmount:        req.Amount,
		FeePaymentDiscount:      discountRaw,
		FeePaymentLateFine:      req.LateFine,
		FeePaymentTotalAmount:   totalAmount,
		FeePaymentAmountPaid:    req.AmountPaid,
		FeePaymentMethod:        req.Method,
		FeePaymentDetails:       req.Details,
		FeePaymentStatus:        status,
		FeePaymentInstallment:   req.Installment,
		FeePaymentRemarks:       req.Remarks,
		FeePaymentCollectedBy:   collectedBy,
	}
	if req.PaidDate != nil {
		paidDate, err := helper.ParseDate(*req.PaidDate)
		if err != nil {
			return helper.FromFiberError(c, err)
		}
		payment.FeePaymentPaidDate = &paidDate
	}

	if err := ctrl.DB.WithContext(c.UserContext()).Create(&payment).Error; err != nil {
		if helper.IsDuplicateKey(err) {
			return helper.JsonError(c, fiber.StatusConflict, "Receipt number already in use")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonCreated(c, "Fee payment recorded successfully", payment)
}

/* ===================== UPDATE ===================== */
// PUT /api/fees/payments/:id
func (ctrl *FeePaymentController) UpdateFeePayment(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req dto.UpdateFeePaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	validate := validator.New()
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	db := ctrl.DB.WithContext(c.UserContext())

	var payment model.FeePaymentModel
	if err := db.First(&payment, "fee_payment_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Fee payment not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	// start from the stored document, overlay the request, recompute
	amount := payment.FeePaymentAmount
	if req.Amount != nil {
		amount = *req.Amount
	}
	lateFine := payment.FeePaymentLateFine
	if req.LateFine != nil {
		lateFine = *req.LateFine
	}
	amountPaid := payment.FeePaymentAmountPaid
	if req.AmountPaid != nil {
		amountPaid = *req.AmountPaid
	}

	discount := payment.DiscountDoc()
	updates := map[string]any{}
	if req.Discount != nil {
		discount = &model.Discount{
			Type:   req.Discount.Type,
			Amount: req.Discount.Amount,
			Reason: req.Discount.Reason,
		}
		raw, err := json.Marshal(discount)
		if err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
		}
		updates["fee_payment_discount"] = raw
	}

	totalAmount := service.PaymentTotal(amount, discount, lateFine)
	prior := payment.FeePaymentStatus
	if req.Status != nil {
		prior = *req.Status
	}
	status := service.DeriveStatus(amountPaid, totalAmount, prior)

	updates["fee_payment_amount"] = amount
	updates["fee_payment_late_fine"] = lateFine
	updates["fee_payment_amount_paid"] = amountPaid
	updates["fee_payment_total_amount"] = totalAmount
	updates["fee_payment_status"] = status
	if req.Method != nil {
		updates["fee_payment_method"] = *req.Method
	}
	if len(req.Details) > 0 {
		updates["fee_payment_details"] = req.Details
	}
	if req.PaidDate != nil {
		paidDate, err := helper.ParseDate(*req.PaidDate)
		if err != nil {
			return helper.FromFiberError(c, err)
		}
		updates["fee_payment_paid_date"] = paidDate
	}
	if len(req.Installment) > 0 {
		updates["fee_payment_installment"] = req.Installment
	}
	if req.Remarks != nil {
		updates["fee_payment_remarks"] = *req.Remarks
	}

	if err := db.Model(&payment).
		Clauses(clause.Returning{}).
		Where("fee_payment_id = ?", id).
		Updates(updates).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonUpdated(c, "Fee payment updated successfully", payment)
}

/* ===================== STUDENT SUMMARY ===================== */
// GET /api/fees/payments/summary/student?studentId=&session=
func (ctrl *FeePaymentController) GetStudentFeeSummary(c *fiber.Ctx) error {
	studentID, err := helper.ParseUUIDQuery(c, "studentId")
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	sessionID, err := helper.ParseUUIDQuery(c, "session")
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	if studentID == uuid.Nil || sessionID == uuid.Nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "studentId and session are required")
	}

	db := ctrl.DB.WithContext(c.UserContext())

	var payments []model.FeePaymentModel
	if err := db.
		Where("fee_payment_student_id = ? AND fee_payment_session_id = ?", studentID, sessionID).
		Order("fee_payment_created_at ASC").
		Find(&payments).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	summary := dto.StudentFeeSummary{
		StudentID: studentID,
		SessionID: sessionID,
		Status:    model.PaymentStatusPending,
	}
	summary.PaymentsCount = len(payments)
	for _, p := range payments {
		summary.TotalPaid += p.FeePaymentAmountPaid
	}

	// owed total comes off the first payment's structure; no payments means
	// nothing owed yet
	if len(payments) > 0 {
		var structure model.FeeStructureModel
		err := db.First(&structure, "fee_structure_id = ?", payments[0].FeePaymentStructureID).Error
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
		}
		summary.TotalAmount = structure.FeeStructureTotalAmount
	}

	summary.Balance = summary.TotalAmount - summary.TotalPaid
	if summary.Balance <= 0 {
		summary.Status = model.PaymentStatusPaid
	}

	return helper.JsonOK(c, "", summary)
}
