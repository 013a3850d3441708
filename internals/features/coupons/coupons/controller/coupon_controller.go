package controller

import (
	"github.com/gofiber/fiber/v2"

	"learnsmate_backend/internals/constants"
	"learnsmate_backend/internals/features/coupons/coupons/dto"
	"learnsmate_backend/internals/features/coupons/coupons/service"
	helper "learnsmate_backend/internals/helpers"
)

type CouponController struct {
	Service *service.CouponService
}

func NewCouponController(svc *service.CouponService) *CouponController {
	return &CouponController{Service: svc}
}

// GET /coupon/categories
func (ctrl *CouponController) ListCategories(c *fiber.Ctx) error {
	rows, err := ctrl.Service.ListCategories(c.UserContext())
	if err != nil {
		return err
	}
	return helper.JsonOK(c, "coupon categories", rows)
}

// POST /coupon/categories
func (ctrl *CouponController) RegisterCategory(c *fiber.Ctx) error {
	var req dto.CouponCategoryRequest
	if err := helper.ParseBody(c, &req); err != nil {
		return err
	}
	resp, err := ctrl.Service.RegisterCategory(c.UserContext(), req)
	if err != nil {
		return err
	}
	return helper.JsonCreated(c, "coupon category registered", resp)
}

// POST /coupon/admin/register
func (ctrl *CouponController) RegisterAdminCoupon(c *fiber.Ctx) error {
	adminCode, err := helper.GetAuthCode(c)
	if err != nil {
		return err
	}
	var req dto.AdminCouponRegisterRequest
	if err := helper.ParseBody(c, &req); err != nil {
		return err
	}
	resp, err := ctrl.Service.RegisterAdminCoupon(c.UserContext(), adminCode, req)
	if err != nil {
		return err
	}
	return helper.JsonCreated(c, "coupon registered", resp)
}

// POST /coupon/tutor/register
func (ctrl *CouponController) RegisterTutorCoupon(c *fiber.Ctx) error {
	tutorCode, err := helper.GetAuthCode(c)
	if err != nil {
		return err
	}
	var req dto.TutorCouponRegisterRequest
	if err := helper.ParseBody(c, &req); err != nil {
		return err
	}
	resp, err := ctrl.Service.RegisterTutorCoupon(c.UserContext(), tutorCode, req)
	if err != nil {
		return err
	}
	return helper.JsonCreated(c, "coupon registered", resp)
}

// GET /coupon/coupons
func (ctrl *CouponController) List(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, helper.DefaultPerPage, helper.MaxPerPage)
	rows, total, err := ctrl.Service.List(c.UserContext(), p)
	if err != nil {
		return err
	}
	return helper.JsonList(c, "coupons", rows, helper.BuildPagination(total, p, len(rows)))
}

// POST /coupon/filter
func (ctrl *CouponController) Filter(c *fiber.Ctx) error {
	var req dto.CouponFilterRequest
	if err := helper.ParseBody(c, &req); err != nil {
		return err
	}
	p := helper.ResolvePaging(c, helper.DefaultPerPage, helper.MaxPerPage)
	rows, total, err := ctrl.Service.Filter(c.UserContext(), req, p)
	if err != nil {
		return err
	}
	return helper.JsonList(c, "coupons", rows, helper.BuildPagination(total, p, len(rows)))
}

// GET /coupon/:coupon_code
func (ctrl *CouponController) Get(c *fiber.Ctx) error {
	code, err := helper.ParamCode(c, "coupon_code")
	if err != nil {
		return err
	}
	resp, err := ctrl.Service.GetCoupon(c.UserContext(), code)
	if err != nil {
		return err
	}
	return helper.JsonOK(c, "coupon", resp)
}

// PATCH /coupon/:coupon_code
func (ctrl *CouponController) Edit(c *fiber.Ctx) error {
	code, err := helper.ParamCode(c, "coupon_code")
	if err != nil {
		return err
	}
	var req dto.EditCouponRequest
	if err := helper.ParseBody(c, &req); err != nil {
		return err
	}
	resp, err := ctrl.Service.Edit(c.UserContext(), code, req, tutorScope(c))
	if err != nil {
		return err
	}
	return helper.JsonUpdated(c, "coupon updated", resp)
}

// PATCH /coupon/:coupon_code/toggle
func (ctrl *CouponController) Toggle(c *fiber.Ctx) error {
	code, err := helper.ParamCode(c, "coupon_code")
	if err != nil {
		return err
	}
	resp, err := ctrl.Service.ToggleActive(c.UserContext(), code, tutorScope(c))
	if err != nil {
		return err
	}
	return helper.JsonUpdated(c, "coupon toggled", resp)
}

// DELETE /coupon/:coupon_code
func (ctrl *CouponController) Deactivate(c *fiber.Ctx) error {
	code, err := helper.ParamCode(c, "coupon_code")
	if err != nil {
		return err
	}
	if err := ctrl.Service.Deactivate(c.UserContext(), code, tutorScope(c)); err != nil {
		return err
	}
	return helper.JsonDeleted(c, "coupon deactivated", fiber.Map{"coupon_code": code})
}

// tutorScope returns the caller's code for tutors, nil for admins.
func tutorScope(c *fiber.Ctx) *int64 {
	if helper.GetRole(c) != constants.RoleTutor {
		return nil
	}
	code, err := helper.GetAuthCode(c)
	if err != nil {
		return nil
	}
	return &code
}
