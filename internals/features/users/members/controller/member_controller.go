package controller

import (
	"github.com/gofiber/fiber/v2"

	"learnsmate_backend/internals/constants"
	"learnsmate_backend/internals/exceptions"
	"learnsmate_backend/internals/features/users/members/dto"
	"learnsmate_backend/internals/features/users/members/service"
	helper "learnsmate_backend/internals/helpers"
)

type MemberController struct {
	Service *service.MemberService
}

func NewMemberController(svc *service.MemberService) *MemberController {
	return &MemberController{Service: svc}
}

// POST /users/members/signup and POST /member/register
func (ctrl *MemberController) Register(c *fiber.Ctx) error {
	var req dto.RegisterMemberRequest
	if err := helper.ParseBody(c, &req); err != nil {
		return err
	}
	resp, err := ctrl.Service.Register(c.UserContext(), req)
	if err != nil {
		return err
	}
	return helper.JsonCreated(c, "member registered", resp)
}

// GET /member/students
func (ctrl *MemberController) ListStudents(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, helper.DefaultPerPage, helper.MaxPerPage)
	rows, total, err := ctrl.Service.ListStudents(c.UserContext(), p)
	if err != nil {
		return err
	}
	return helper.JsonList(c, "students", rows, helper.BuildPagination(total, p, len(rows)))
}

// GET /member/tutors
func (ctrl *MemberController) ListTutors(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, helper.DefaultPerPage, helper.MaxPerPage)
	rows, total, err := ctrl.Service.ListTutors(c.UserContext(), p)
	if err != nil {
		return err
	}
	return helper.JsonList(c, "tutors", rows, helper.BuildPagination(total, p, len(rows)))
}

// GET /member/:member_code
func (ctrl *MemberController) GetMember(c *fiber.Ctx) error {
	code, err := ctrl.authorizedCode(c)
	if err != nil {
		return err
	}
	resp, err := ctrl.Service.GetMember(c.UserContext(), code)
	if err != nil {
		return err
	}
	return helper.JsonOK(c, "member", resp)
}

// PATCH /member/:member_code
func (ctrl *MemberController) Edit(c *fiber.Ctx) error {
	code, err := ctrl.authorizedCode(c)
	if err != nil {
		return err
	}
	var req dto.EditMemberRequest
	if err := helper.ParseBody(c, &req); err != nil {
		return err
	}
	resp, err := ctrl.Service.Edit(c.UserContext(), code, req)
	if err != nil {
		return err
	}
	return helper.JsonUpdated(c, "member updated", resp)
}

// DELETE /member/:member_code
func (ctrl *MemberController) Deactivate(c *fiber.Ctx) error {
	code, err := helper.ParamCode(c, "member_code")
	if err != nil {
		return err
	}
	if err := ctrl.Service.Deactivate(c.UserContext(), code); err != nil {
		return err
	}
	return helper.JsonDeleted(c, "member deactivated", fiber.Map{"member_code": code})
}

// authorizedCode lets admins address any member and members only themselves.
func (ctrl *MemberController) authorizedCode(c *fiber.Ctx) (int64, error) {
	code, err := helper.ParamCode(c, "member_code")
	if err != nil {
		return 0, err
	}
	if helper.GetRole(c) == constants.RoleAdmin {
		return code, nil
	}
	self, err := helper.GetAuthCode(c)
	if err != nil {
		return 0, err
	}
	if self != code {
		return 0, exceptions.New(exceptions.Forbidden)
	}
	return code, nil
}
