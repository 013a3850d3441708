package controller

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"learnsmate_backend/internals/constants"
	"learnsmate_backend/internals/exceptions"
	"learnsmate_backend/internals/features/lectures/lectures/dto"
	"learnsmate_backend/internals/features/lectures/lectures/repository"
	"learnsmate_backend/internals/features/lectures/lectures/service"
	helper "learnsmate_backend/internals/helpers"
)

type LectureController struct {
	Service *service.LectureService
}

func NewLectureController(svc *service.LectureService) *LectureController {
	return &LectureController{Service: svc}
}

// POST /lecture/register
// Tutors register for themselves; admins must name the tutor.
func (ctrl *LectureController) Register(c *fiber.Ctx) error {
	var req dto.RegisterLectureRequest
	if err := helper.ParseBody(c, &req); err != nil {
		return err
	}
	tutorCode, err := resolveTutor(c, req.TutorCode)
	if err != nil {
		return err
	}
	resp, err := ctrl.Service.Register(c.UserContext(), tutorCode, req)
	if err != nil {
		return err
	}
	return helper.JsonCreated(c, "lecture registered", resp)
}

// GET /lecture/list?title=&status=&confirm_status=&tutor_code=&level=
func (ctrl *LectureController) List(c *fiber.Ctx) error {
	f := repository.LectureFilter{
		Title:         c.Query("title"),
		Status:        helper.QueryBool(c, "status"),
		ConfirmStatus: helper.QueryBool(c, "confirm_status"),
		TutorCode:     helper.QueryCode(c, "tutor_code"),
		Level:         strings.ToUpper(strings.TrimSpace(c.Query("level"))),
	}
	p := helper.ResolvePaging(c, helper.DefaultPerPage, helper.MaxPerPage)
	rows, total, err := ctrl.Service.List(c.UserContext(), f, p)
	if err != nil {
		return err
	}
	return helper.JsonList(c, "lectures", rows, helper.BuildPagination(total, p, len(rows)))
}

// GET /lecture/tutor/:tutor_code
func (ctrl *LectureController) ListByTutor(c *fiber.Ctx) error {
	code, err := helper.ParamCode(c, "tutor_code")
	if err != nil {
		return err
	}
	p := helper.ResolvePaging(c, helper.DefaultPerPage, helper.MaxPerPage)
	rows, total, err := ctrl.Service.ListByTutor(c.UserContext(), code, p)
	if err != nil {
		return err
	}
	return helper.JsonList(c, "lectures", rows, helper.BuildPagination(total, p, len(rows)))
}

// GET /lecture/:lecture_code
func (ctrl *LectureController) Get(c *fiber.Ctx) error {
	code, err := helper.ParamCode(c, "lecture_code")
	if err != nil {
		return err
	}
	resp, err := ctrl.Service.GetDetail(c.UserContext(), code)
	if err != nil {
		return err
	}
	return helper.JsonOK(c, "lecture", resp)
}

// PATCH /lecture/:lecture_code
func (ctrl *LectureController) Edit(c *fiber.Ctx) error {
	code, err := helper.ParamCode(c, "lecture_code")
	if err != nil {
		return err
	}
	var req dto.EditLectureRequest
	if err := helper.ParseBody(c, &req); err != nil {
		return err
	}
	resp, err := ctrl.Service.Edit(c.UserContext(), code, req, tutorScope(c))
	if err != nil {
		return err
	}
	return helper.JsonUpdated(c, "lecture updated", resp)
}

// DELETE /lecture/:lecture_code
func (ctrl *LectureController) Deactivate(c *fiber.Ctx) error {
	code, err := helper.ParamCode(c, "lecture_code")
	if err != nil {
		return err
	}
	if err := ctrl.Service.Deactivate(c.UserContext(), code, tutorScope(c)); err != nil {
		return err
	}
	return helper.JsonDeleted(c, "lecture deactivated", fiber.Map{"lecture_code": code})
}

// PATCH /lecture/:lecture_code/confirm
func (ctrl *LectureController) Confirm(c *fiber.Ctx) error {
	code, err := helper.ParamCode(c, "lecture_code")
	if err != nil {
		return err
	}
	resp, err := ctrl.Service.Confirm(c.UserContext(), code)
	if err != nil {
		return err
	}
	return helper.JsonUpdated(c, "lecture confirmed", resp)
}

// POST /lecture/:lecture_code/thumbnail (multipart field "image")
func (ctrl *LectureController) UploadThumbnail(c *fiber.Ctx) error {
	code, err := helper.ParamCode(c, "lecture_code")
	if err != nil {
		return err
	}
	fh, err := c.FormFile("image")
	if err != nil {
		return exceptions.WithDetail(exceptions.InvalidParameter, "image file is required")
	}
	resp, err := ctrl.Service.UploadThumbnail(c.UserContext(), code, fh, tutorScope(c))
	if err != nil {
		return err
	}
	return helper.JsonUpdated(c, "thumbnail uploaded", resp)
}

func resolveTutor(c *fiber.Ctx, requested *int64) (int64, error) {
	if helper.GetRole(c) == constants.RoleTutor {
		return helper.GetAuthCode(c)
	}
	if requested == nil {
		return 0, exceptions.WithDetail(exceptions.InvalidParameter, "tutor_code is required")
	}
	return *requested, nil
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
