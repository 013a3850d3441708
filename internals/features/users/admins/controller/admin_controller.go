package controller

import (
	"github.com/gofiber/fiber/v2"

	"learnsmate_backend/internals/features/users/admins/dto"
	"learnsmate_backend/internals/features/users/admins/service"
	helper "learnsmate_backend/internals/helpers"
)

type AdminController struct {
	Service *service.AdminService
}

func NewAdminController(svc *service.AdminService) *AdminController {
	return &AdminController{Service: svc}
}

// POST /users/signup
func (ctrl *AdminController) Signup(c *fiber.Ctx) error {
	var req dto.AdminSignupRequest
	if err := helper.ParseBody(c, &req); err != nil {
		return err
	}
	resp, err := ctrl.Service.Signup(c.UserContext(), req)
	if err != nil {
		return err
	}
	return helper.JsonCreated(c, "admin registered", resp)
}

// GET /admin
func (ctrl *AdminController) List(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, helper.DefaultPerPage, helper.MaxPerPage)
	rows, total, err := ctrl.Service.List(c.UserContext(), p)
	if err != nil {
		return err
	}
	return helper.JsonList(c, "admins", rows, helper.BuildPagination(total, p, len(rows)))
}

// GET /admin/me
func (ctrl *AdminController) Me(c *fiber.Ctx) error {
	code, err := helper.GetAuthCode(c)
	if err != nil {
		return err
	}
	resp, err := ctrl.Service.GetAdmin(c.UserContext(), code)
	if err != nil {
		return err
	}
	return helper.JsonOK(c, "admin", resp)
}

// GET /admin/:admin_code
func (ctrl *AdminController) Get(c *fiber.Ctx) error {
	code, err := helper.ParamCode(c, "admin_code")
	if err != nil {
		return err
	}
	resp, err := ctrl.Service.GetAdmin(c.UserContext(), code)
	if err != nil {
		return err
	}
	return helper.JsonOK(c, "admin", resp)
}

// PATCH /admin/:admin_code
func (ctrl *AdminController) Edit(c *fiber.Ctx) error {
	code, err := helper.ParamCode(c, "admin_code")
	if err != nil {
		return err
	}
	var req dto.EditAdminRequest
	if err := helper.ParseBody(c, &req); err != nil {
		return err
	}
	resp, err := ctrl.Service.Edit(c.UserContext(), code, req)
	if err != nil {
		return err
	}
	return helper.JsonUpdated(c, "admin updated", resp)
}
