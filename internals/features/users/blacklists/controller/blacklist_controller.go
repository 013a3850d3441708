package controller

import (
	"github.com/gofiber/fiber/v2"

	"learnsmate_backend/internals/features/users/blacklists/dto"
	"learnsmate_backend/internals/features/users/blacklists/service"
	helper "learnsmate_backend/internals/helpers"
)

type BlacklistController struct {
	Service *service.BlacklistService
}

func NewBlacklistController(svc *service.BlacklistService) *BlacklistController {
	return &BlacklistController{Service: svc}
}

// POST /blacklist
func (ctrl *BlacklistController) Register(c *fiber.Ctx) error {
	var req dto.RegisterBlacklistRequest
	if err := helper.ParseBody(c, &req); err != nil {
		return err
	}
	adminCode, err := helper.GetAuthCode(c)
	if err != nil {
		return err
	}
	resp, err := ctrl.Service.Register(c.UserContext(), adminCode, req)
	if err != nil {
		return err
	}
	return helper.JsonCreated(c, "member blacklisted", resp)
}

// GET /blacklist/students
func (ctrl *BlacklistController) ListStudents(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, helper.DefaultPerPage, helper.MaxPerPage)
	rows, total, err := ctrl.Service.ListStudents(c.UserContext(), p)
	if err != nil {
		return err
	}
	return helper.JsonList(c, "blacklisted students", rows, helper.BuildPagination(total, p, len(rows)))
}

// GET /blacklist/tutors
func (ctrl *BlacklistController) ListTutors(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, helper.DefaultPerPage, helper.MaxPerPage)
	rows, total, err := ctrl.Service.ListTutors(c.UserContext(), p)
	if err != nil {
		return err
	}
	return helper.JsonList(c, "blacklisted tutors", rows, helper.BuildPagination(total, p, len(rows)))
}

// GET /blacklist/:member_code
func (ctrl *BlacklistController) Get(c *fiber.Ctx) error {
	code, err := helper.ParamCode(c, "member_code")
	if err != nil {
		return err
	}
	resp, err := ctrl.Service.FindByMemberCode(c.UserContext(), code)
	if err != nil {
		return err
	}
	return helper.JsonOK(c, "blacklist", resp)
}

// DELETE /blacklist/:member_code
func (ctrl *BlacklistController) Lift(c *fiber.Ctx) error {
	code, err := helper.ParamCode(c, "member_code")
	if err != nil {
		return err
	}
	if err := ctrl.Service.Lift(c.UserContext(), code); err != nil {
		return err
	}
	return helper.JsonDeleted(c, "blacklist lifted", fiber.Map{"member_code": code})
}
