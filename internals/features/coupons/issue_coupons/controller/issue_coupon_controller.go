package controller

import (
	"github.com/gofiber/fiber/v2"

	"learnsmate_backend/internals/constants"
	"learnsmate_backend/internals/exceptions"
	"learnsmate_backend/internals/features/coupons/issue_coupons/dto"
	"learnsmate_backend/internals/features/coupons/issue_coupons/service"
	helper "learnsmate_backend/internals/helpers"
)

type IssueCouponController struct {
	Service *service.IssueCouponService
}

func NewIssueCouponController(svc *service.IssueCouponService) *IssueCouponController {
	return &IssueCouponController{Service: svc}
}

// POST /issue-coupon/register
func (ctrl *IssueCouponController) Issue(c *fiber.Ctx) error {
	var req dto.IssueCouponRegisterRequest
	if err := helper.ParseBody(c, &req); err != nil {
		return err
	}
	rows, err := ctrl.Service.IssueCoupons(c.UserContext(), req)
	if err != nil {
		return err
	}
	return helper.JsonCreated(c, "coupons issued", rows)
}

// GET /issue-coupon/all
func (ctrl *IssueCouponController) List(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, helper.DefaultPerPage, helper.MaxPerPage)
	rows, total, err := ctrl.Service.List(c.UserContext(), p)
	if err != nil {
		return err
	}
	return helper.JsonList(c, "issued coupons", rows, helper.BuildPagination(total, p, len(rows)))
}

// GET /issue-coupon/student/:student_code
func (ctrl *IssueCouponController) ListByStudent(c *fiber.Ctx) error {
	code, err := helper.ParamCode(c, "student_code")
	if err != nil {
		return err
	}
	if err := selfOrAdmin(c, code); err != nil {
		return err
	}
	rows, err := ctrl.Service.FindIssuedCouponsByStudent(c.UserContext(), code)
	if err != nil {
		return err
	}
	return helper.JsonOK(c, "issued coupons", rows)
}

// POST /issue-coupon/use
// Students always use their own coupons; admins name the student.
func (ctrl *IssueCouponController) Use(c *fiber.Ctx) error {
	var req dto.UseIssuedCouponRequest
	if err := helper.ParseBody(c, &req); err != nil {
		return err
	}
	if helper.GetRole(c) == constants.RoleStudent {
		self, err := helper.GetAuthCode(c)
		if err != nil {
			return err
		}
		req.StudentCode = self
	}
	if req.StudentCode <= 0 {
		return exceptions.WithDetail(exceptions.InvalidParameter, "student_code is required")
	}
	resp, err := ctrl.Service.UseIssuedCoupon(c.UserContext(), req.StudentCode, req.CouponIssuanceCode)
	if err != nil {
		return err
	}
	return helper.JsonUpdated(c, "coupon used", resp)
}

func selfOrAdmin(c *fiber.Ctx, code int64) error {
	if helper.GetRole(c) == constants.RoleAdmin {
		return nil
	}
	self, err := helper.GetAuthCode(c)
	if err != nil {
		return err
	}
	if self != code {
		return exceptions.New(exceptions.Forbidden)
	}
	return nil
}
