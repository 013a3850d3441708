package service

import (
	"context"
	"errors"
	"net/url"

	pkgErrors "github.com/pkg/errors"
	"gorm.io/gorm"

	"learnsmate_backend/internals/constants"
	"learnsmate_backend/internals/exceptions"
	lectureRepo "learnsmate_backend/internals/features/lectures/lectures/repository"
	"learnsmate_backend/internals/features/lectures/video_by_lectures/dto"
	"learnsmate_backend/internals/features/lectures/video_by_lectures/model"
	"learnsmate_backend/internals/features/lectures/video_by_lectures/repository"
)

type VideoByLectureService struct {
	repo     *repository.VideoByLectureRepository
	lectures *lectureRepo.LectureRepository
}

func NewVideoByLectureService(db *gorm.DB) *VideoByLectureService {
	return &VideoByLectureService{
		repo:     repository.NewVideoByLectureRepository(db),
		lectures: lectureRepo.NewLectureRepository(db),
	}
}

// Register adds a video to a lecture. A non-nil tutorCode must own the lecture.
func (s *VideoByLectureService) Register(ctx context.Context, lectureCode int64, req dto.RegisterVideoRequest, tutorCode *int64) (*dto.VideoResponse, error) {
	if err := checkVideoLink(req.VideoLink); err != nil {
		return nil, err
	}
	if err := s.ensureLecture(ctx, lectureCode, tutorCode); err != nil {
		return nil, err
	}
	m := &model.VideoByLectureModel{VideoTitle: req.VideoTitle, VideoLink: req.VideoLink, LectureCode: lectureCode}
	if err := s.repo.Create(ctx, m); err != nil {
		return nil, pkgErrors.Wrap(err, "create video")
	}
	resp := dto.ToVideoResponse(m)
	return &resp, nil
}

func (s *VideoByLectureService) ListByLecture(ctx context.Context, lectureCode int64) ([]dto.VideoResponse, error) {
	if err := s.ensureLecture(ctx, lectureCode, nil); err != nil {
		return nil, err
	}
	rows, err := s.repo.ListByLecture(ctx, lectureCode)
	if err != nil {
		return nil, pkgErrors.Wrap(err, "list videos")
	}
	return dto.ToVideoResponses(rows), nil
}

func (s *VideoByLectureService) CountByLectureCode(ctx context.Context, lectureCode int64) (int64, error) {
	n, err := s.repo.CountByLectureCode(ctx, lectureCode)
	return n, pkgErrors.Wrap(err, "count videos")
}

// Delete removes a video. A non-nil tutorCode must own the video's lecture.
func (s *VideoByLectureService) Delete(ctx context.Context, videoCode int64, tutorCode *int64) error {
	v, err := s.repo.FindByCode(ctx, videoCode)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return exceptions.New(exceptions.VideoNotFound)
		}
		return pkgErrors.Wrap(err, "find video")
	}
	if err := s.ensureLecture(ctx, v.LectureCode, tutorCode); err != nil {
		return err
	}
	if _, err := s.repo.Delete(ctx, videoCode); err != nil {
		return pkgErrors.Wrap(err, "delete video")
	}
	return nil
}

func (s *VideoByLectureService) ensureLecture(ctx context.Context, lectureCode int64, tutorCode *int64) error {
	lecture, err := s.lectures.FindByCode(ctx, lectureCode)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return exceptions.New(exceptions.LectureNotFound)
		}
		return pkgErrors.Wrap(err, "find lecture")
	}
	if tutorCode != nil && lecture.TutorCode != *tutorCode {
		return exceptions.WithDetail(exceptions.Forbidden, "lecture belongs to another tutor")
	}
	return nil
}

// checkVideoLink rejects links that point at an image or document file.
// Links without a known extension (streaming pages) pass.
func checkVideoLink(link string) error {
	u, err := url.Parse(link)
	if err != nil {
		return exceptions.WithDetail(exceptions.InvalidParameter, "video_link is not a valid url")
	}
	switch constants.DetectFileTypeFromExt(u.Path) {
	case constants.FileTypeImage, constants.FileTypeDocument:
		return exceptions.WithDetail(exceptions.InvalidParameter, "video_link does not point to a video")
	}
	return nil
}
