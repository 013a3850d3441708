package controller

import (
	"github.com/gofiber/fiber/v2"

	"learnsmate_backend/internals/features/lectures/lecture_categories/dto"
	"learnsmate_backend/internals/features/lectures/lecture_categories/service"
	helper "learnsmate_backend/internals/helpers"
)

type LectureCategoryController struct {
	Service *service.LectureCategoryService
}

func NewLectureCategoryController(svc *service.LectureCategoryService) *LectureCategoryController {
	return &LectureCategoryController{Service: svc}
}

// GET /lecture-category
func (ctrl *LectureCategoryController) List(c *fiber.Ctx) error {
	rows, err := ctrl.Service.List(c.UserContext())
	if err != nil {
		return err
	}
	return helper.JsonOK(c, "lecture categories", rows)
}

// POST /lecture-category
func (ctrl *LectureCategoryController) Register(c *fiber.Ctx) error {
	var req dto.LectureCategoryRequest
	if err := helper.ParseBody(c, &req); err != nil {
		return err
	}
	resp, err := ctrl.Service.Register(c.UserContext(), req)
	if err != nil {
		return err
	}
	return helper.JsonCreated(c, "lecture category registered", resp)
}

// GET /lecture-category/lecture/:lecture_code
func (ctrl *LectureCategoryController) ListByLecture(c *fiber.Ctx) error {
	code, err := helper.ParamCode(c, "lecture_code")
	if err != nil {
		return err
	}
	rows, err := ctrl.Service.ListByLecture(c.UserContext(), code)
	if err != nil {
		return err
	}
	return helper.JsonOK(c, "lecture categories", rows)
}

// POST /lecture-category/lecture/:lecture_code
func (ctrl *LectureCategoryController) Attach(c *fiber.Ctx) error {
	code, err := helper.ParamCode(c, "lecture_code")
	if err != nil {
		return err
	}
	var req dto.AttachCategoriesRequest
	if err := helper.ParseBody(c, &req); err != nil {
		return err
	}
	rows, err := ctrl.Service.Attach(c.UserContext(), code, req)
	if err != nil {
		return err
	}
	return helper.JsonUpdated(c, "lecture categories attached", rows)
}

// DELETE /lecture-category/lecture/:lecture_code/:lecture_category_code
func (ctrl *LectureCategoryController) Detach(c *fiber.Ctx) error {
	lectureCode, err := helper.ParamCode(c, "lecture_code")
	if err != nil {
		return err
	}
	categoryCode, err := helper.ParamCode(c, "lecture_category_code")
	if err != nil {
		return err
	}
	if err := ctrl.Service.Detach(c.UserContext(), lectureCode, categoryCode); err != nil {
		return err
	}
	return helper.JsonDeleted(c, "lecture category detached", fiber.Map{"lecture_code": lectureCode, "lecture_category_code": categoryCode})
}
