package controller

import (
	"github.com/gofiber/fiber/v2"

	"learnsmate_backend/internals/constants"
	"learnsmate_backend/internals/features/lectures/video_by_lectures/dto"
	"learnsmate_backend/internals/features/lectures/video_by_lectures/service"
	helper "learnsmate_backend/internals/helpers"
)

type VideoByLectureController struct {
	Service *service.VideoByLectureService
}

func NewVideoByLectureController(svc *service.VideoByLectureService) *VideoByLectureController {
	return &VideoByLectureController{Service: svc}
}

// POST /video-by-lecture/:lecture_code
func (ctrl *VideoByLectureController) Register(c *fiber.Ctx) error {
	lectureCode, err := helper.ParamCode(c, "lecture_code")
	if err != nil {
		return err
	}
	var req dto.RegisterVideoRequest
	if err := helper.ParseBody(c, &req); err != nil {
		return err
	}
	resp, err := ctrl.Service.Register(c.UserContext(), lectureCode, req, tutorScope(c))
	if err != nil {
		return err
	}
	return helper.JsonCreated(c, "video registered", resp)
}

// GET /video-by-lecture/:lecture_code
func (ctrl *VideoByLectureController) ListByLecture(c *fiber.Ctx) error {
	lectureCode, err := helper.ParamCode(c, "lecture_code")
	if err != nil {
		return err
	}
	rows, err := ctrl.Service.ListByLecture(c.UserContext(), lectureCode)
	if err != nil {
		return err
	}
	return helper.JsonOK(c, "videos", rows)
}

// GET /video-by-lecture/:lecture_code/count
func (ctrl *VideoByLectureController) Count(c *fiber.Ctx) error {
	lectureCode, err := helper.ParamCode(c, "lecture_code")
	if err != nil {
		return err
	}
	n, err := ctrl.Service.CountByLectureCode(c.UserContext(), lectureCode)
	if err != nil {
		return err
	}
	return helper.JsonOK(c, "video count", fiber.Map{"lecture_code": lectureCode, "video_count": n})
}

// DELETE /video-by-lecture/video/:video_code
func (ctrl *VideoByLectureController) Delete(c *fiber.Ctx) error {
	videoCode, err := helper.ParamCode(c, "video_code")
	if err != nil {
		return err
	}
	if err := ctrl.Service.Delete(c.UserContext(), videoCode, tutorScope(c)); err != nil {
		return err
	}
	return helper.JsonDeleted(c, "video deleted", fiber.Map{"video_code": videoCode})
}

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
