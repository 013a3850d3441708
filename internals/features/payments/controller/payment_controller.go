package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"learnsmate_backend/internals/constants"
	"learnsmate_backend/internals/exceptions"
	"learnsmate_backend/internals/features/payments/dto"
	"learnsmate_backend/internals/features/payments/service"
	helper "learnsmate_backend/internals/helpers"
)

type PaymentController struct {
	Service *service.PaymentService
}

func NewPaymentController(svc *service.PaymentService) *PaymentController {
	return &PaymentController{Service: svc}
}

// POST /payment
func (ctrl *PaymentController) Create(c *fiber.Ctx) error {
	var req dto.CreatePaymentRequest
	if err := helper.ParseBody(c, &req); err != nil {
		return err
	}
	studentCode, err := helper.GetAuthCode(c)
	if err != nil {
		return err
	}
	resp, err := ctrl.Service.Create(c.UserContext(), studentCode, req)
	if err != nil {
		return err
	}
	return helper.JsonCreated(c, "payment created", resp)
}

// POST /payment/notification
func (ctrl *PaymentController) Notification(c *fiber.Ctx) error {
	var req dto.MidtransNotification
	if err := helper.ParseBody(c, &req); err != nil {
		return err
	}
	resp, err := ctrl.Service.HandleNotification(c.UserContext(), req)
	if err != nil {
		return err
	}
	return helper.JsonOK(c, "notification processed", resp)
}

// GET /payment/:payment_code
func (ctrl *PaymentController) Get(c *fiber.Ctx) error {
	code := c.Params("payment_code")
	if _, err := uuid.Parse(code); err != nil {
		return exceptions.WithDetail(exceptions.InvalidParameter, "payment_code must be a uuid")
	}
	var scope *int64
	if helper.GetRole(c) != constants.RoleAdmin {
		self, err := helper.GetAuthCode(c)
		if err != nil {
			return err
		}
		scope = &self
	}
	resp, err := ctrl.Service.FindByCode(c.UserContext(), code, scope)
	if err != nil {
		return err
	}
	return helper.JsonOK(c, "payment", resp)
}

// GET /payment/student/:student_code
func (ctrl *PaymentController) ListByStudent(c *fiber.Ctx) error {
	code, err := helper.ParamCode(c, "student_code")
	if err != nil {
		return err
	}
	if helper.GetRole(c) != constants.RoleAdmin {
		self, err := helper.GetAuthCode(c)
		if err != nil {
			return err
		}
		if self != code {
			return exceptions.New(exceptions.Forbidden)
		}
	}
	p := helper.ResolvePaging(c, helper.DefaultPerPage, helper.MaxPerPage)
	rows, total, err := ctrl.Service.ListByStudent(c.UserContext(), code, p)
	if err != nil {
		return err
	}
	return helper.JsonList(c, "payments", rows, helper.BuildPagination(total, p, len(rows)))
}
