package controller

import (
	"github.com/gofiber/fiber/v2"

	"learnsmate_backend/internals/features/users/verification/dto"
	"learnsmate_backend/internals/features/users/verification/service"
	helper "learnsmate_backend/internals/helpers"
)

type VerificationController struct {
	Service *service.VerificationService
}

func NewVerificationController(svc *service.VerificationService) *VerificationController {
	return &VerificationController{Service: svc}
}

// POST /users/send-sms
func (ctrl *VerificationController) SendSms(c *fiber.Ctx) error {
	var req dto.SendSmsRequest
	if err := helper.ParseBody(c, &req); err != nil {
		return err
	}
	if err := ctrl.Service.SendCode(c.UserContext(), req.Phone); err != nil {
		return err
	}
	return helper.JsonOK(c, "verification code sent", nil)
}

// POST /users/verify-code
func (ctrl *VerificationController) VerifyCode(c *fiber.Ctx) error {
	var req dto.VerifyCodeRequest
	if err := helper.ParseBody(c, &req); err != nil {
		return err
	}
	if err := ctrl.Service.VerifyCode(c.UserContext(), req.Phone, req.Code); err != nil {
		return err
	}
	return helper.JsonOK(c, "phone verified", fiber.Map{"phone": req.Phone, "verified": true})
}
