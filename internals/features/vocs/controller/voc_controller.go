package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"learnsmate_backend/internals/exceptions"
	"learnsmate_backend/internals/features/vocs/dto"
	"learnsmate_backend/internals/features/vocs/service"
	helper "learnsmate_backend/internals/helpers"
)

type VocController struct {
	Service *service.VocService
}

func NewVocController(svc *service.VocService) *VocController {
	return &VocController{Service: svc}
}

// GET /voc/categories
func (ctrl *VocController) ListCategories(c *fiber.Ctx) error {
	rows, err := ctrl.Service.ListCategories(c.UserContext())
	if err != nil {
		return err
	}
	return helper.JsonOK(c, "voc categories", rows)
}

// POST /voc/categories
func (ctrl *VocController) RegisterCategory(c *fiber.Ctx) error {
	var req dto.VocCategoryRequest
	if err := helper.ParseBody(c, &req); err != nil {
		return err
	}
	resp, err := ctrl.Service.RegisterCategory(c.UserContext(), req)
	if err != nil {
		return err
	}
	return helper.JsonCreated(c, "voc category registered", resp)
}

// GET /voc/list
func (ctrl *VocController) List(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, helper.DefaultPerPage, helper.MaxPerPage)
	rows, total, err := ctrl.Service.List(c.UserContext(), p)
	if err != nil {
		return err
	}
	return helper.JsonList(c, "voc list", rows, helper.BuildPagination(total, p, len(rows)))
}

// GET /voc/count-by-category
func (ctrl *VocController) CountByCategory(c *fiber.Ctx) error {
	rows, err := ctrl.Service.CountByCategory(c.UserContext())
	if err != nil {
		return err
	}
	return helper.JsonOK(c, "voc count by category", rows)
}

// POST /voc/filter
func (ctrl *VocController) Filter(c *fiber.Ctx) error {
	var req dto.VocFilterRequest
	if err := helper.ParseBody(c, &req); err != nil {
		return err
	}
	p := helper.ResolvePaging(c, helper.DefaultPerPage, helper.MaxPerPage)
	rows, total, err := ctrl.Service.Filter(c.UserContext(), req, p)
	if err != nil {
		return err
	}
	return helper.JsonList(c, "voc filtered", rows, helper.BuildPagination(total, p, len(rows)))
}

// POST /voc/register
func (ctrl *VocController) Register(c *fiber.Ctx) error {
	var req dto.RegisterVocRequest
	if err := helper.ParseBody(c, &req); err != nil {
		return err
	}
	memberCode, err := helper.GetAuthCode(c)
	if err != nil {
		return err
	}
	resp, err := ctrl.Service.Register(c.UserContext(), memberCode, req)
	if err != nil {
		return err
	}
	return helper.JsonCreated(c, "voc registered", resp)
}

// GET /voc/:voc_code
func (ctrl *VocController) Get(c *fiber.Ctx) error {
	code, err := vocCode(c)
	if err != nil {
		return err
	}
	resp, err := ctrl.Service.FindByCode(c.UserContext(), code)
	if err != nil {
		return err
	}
	return helper.JsonOK(c, "voc", resp)
}

// POST /voc/:voc_code/answer
func (ctrl *VocController) Answer(c *fiber.Ctx) error {
	code, err := vocCode(c)
	if err != nil {
		return err
	}
	var req dto.AnswerVocRequest
	if err := helper.ParseBody(c, &req); err != nil {
		return err
	}
	adminCode, err := helper.GetAuthCode(c)
	if err != nil {
		return err
	}
	resp, err := ctrl.Service.Answer(c.UserContext(), adminCode, code, req)
	if err != nil {
		return err
	}
	return helper.JsonCreated(c, "voc answered", resp)
}

// PATCH /voc/:voc_code/satisfaction
func (ctrl *VocController) Rate(c *fiber.Ctx) error {
	code, err := vocCode(c)
	if err != nil {
		return err
	}
	var req dto.SatisfactionRequest
	if err := helper.ParseBody(c, &req); err != nil {
		return err
	}
	memberCode, err := helper.GetAuthCode(c)
	if err != nil {
		return err
	}
	resp, err := ctrl.Service.Rate(c.UserContext(), memberCode, code, req)
	if err != nil {
		return err
	}
	return helper.JsonUpdated(c, "voc rated", resp)
}

func vocCode(c *fiber.Ctx) (string, error) {
	code := c.Params("voc_code")
	if _, err := uuid.Parse(code); err != nil {
		return "", exceptions.WithDetail(exceptions.InvalidParameter, "voc_code must be a uuid")
	}
	return code, nil
}
