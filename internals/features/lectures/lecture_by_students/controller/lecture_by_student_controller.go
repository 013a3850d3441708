package controller

import (
	"github.com/gofiber/fiber/v2"

	"learnsmate_backend/internals/constants"
	"learnsmate_backend/internals/exceptions"
	"learnsmate_backend/internals/features/lectures/lecture_by_students/dto"
	"learnsmate_backend/internals/features/lectures/lecture_by_students/service"
	helper "learnsmate_backend/internals/helpers"
)

type LectureByStudentController struct {
	Service *service.LectureByStudentService
}

func NewLectureByStudentController(svc *service.LectureByStudentService) *LectureByStudentController {
	return &LectureByStudentController{Service: svc}
}

// GET /lecture-by-student/student/:student_code
func (ctrl *LectureByStudentController) FindByStudent(c *fiber.Ctx) error {
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
	rows, err := ctrl.Service.FindByStudentCode(c.UserContext(), code)
	if err != nil {
		return err
	}
	return helper.JsonOK(c, "lectures by student", rows)
}

// POST /lecture-by-student
func (ctrl *LectureByStudentController) Grant(c *fiber.Ctx) error {
	var req dto.GrantLectureRequest
	if err := helper.ParseBody(c, &req); err != nil {
		return err
	}
	resp, err := ctrl.Service.Grant(c.UserContext(), req.LectureCode, req.StudentCode)
	if err != nil {
		return err
	}
	return helper.JsonCreated(c, "lecture granted", resp)
}

// DELETE /lecture-by-student
func (ctrl *LectureByStudentController) Revoke(c *fiber.Ctx) error {
	var req dto.GrantLectureRequest
	if err := helper.ParseBody(c, &req); err != nil {
		return err
	}
	if err := ctrl.Service.Revoke(c.UserContext(), req.LectureCode, req.StudentCode); err != nil {
		return err
	}
	return helper.JsonDeleted(c, "lecture revoked", req)
}
